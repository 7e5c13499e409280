package txn

//go:generate mockgen -source=interfaces_test.go -destination=mocks_test.go -package=txn

type testDB struct {
	name string
}

type testTx struct {
	id int
}

type provider interface {
	Provider[*testDB, *testTx]
}

type command interface {
	Command[*testDB, *testTx]
}

type resultCommand interface {
	ResultCommand[*testDB, *testTx, string]
}
