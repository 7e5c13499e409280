package pgtxn

//go:generate mockgen -source=interfaces_test.go -destination=mocks_test.go -package=pgtxn

type conn interface {
	Conn
}
