// Package txn runs commands inside a single backend transaction. A Session
// commits only if every command validated and executed, and rolls back on the
// first failure.
package txn

import "context"

// Command is a unit of work over a backend's (database, transaction) handles.
type Command[DB, Tx any] interface {
	// Validate checks the command's own parameters. It must not touch the
	// backend and may be called more than once.
	Validate() error

	// Execute runs the backend operations. Backend errors are returned as is.
	Execute(ctx context.Context, db DB, tx Tx) error
}

// ResultCommand is a Command producing a value, see ExecuteResult.
type ResultCommand[DB, Tx, R any] interface {
	Validate() error
	Execute(ctx context.Context, db DB, tx Tx) (R, error)
}

type validatable interface {
	Validate() error
}
