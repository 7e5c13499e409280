package api

import "github.com/nikmy/txcommand/internal/people"

//go:generate mockgen -source=interfaces_test.go -destination=mocks_test.go -package=api

type registrar interface {
	people.Registrar
	people.PetLister
}
