package mongotxn

//go:generate mockgen -source=interfaces_test.go -destination=mocks_test.go -package=mongotxn

type client interface {
	Client
}
