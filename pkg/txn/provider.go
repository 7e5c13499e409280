package txn

import "context"

// Provider adapts one backend transaction API for a Session. It borrows the
// database handle and owns at most one transaction handle at a time.
//
// Every method fails with ErrDisposed after Close, and methods taking a
// context fail with ErrCancelled if it is done before any backend call.
type Provider[DB, Tx any] interface {
	// EnsureTxn starts a transaction unless one is already active.
	EnsureTxn(ctx context.Context) error

	// Commit and Rollback finish the active transaction, or fail with
	// ErrTxnNotStarted. The transaction is finished after either call,
	// even if the backend returned an error.
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	// Args returns the handles passed to commands. Tx is the zero value
	// until the first EnsureTxn.
	Args() (DB, Tx, error)

	// Close releases the transaction handle once. It never closes DB.
	Close(ctx context.Context) error
}
