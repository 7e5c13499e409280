package mongotxn

import (
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readconcern"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"

	"github.com/nikmy/txcommand/pkg/logger"
	"github.com/nikmy/txcommand/pkg/txn"
)

// Options left unset fall back to the driver defaults.
type Options struct {
	Isolation   *txn.IsolationLevel
	Consistency *txn.ConsistencyModel

	SessionOptions     *options.SessionOptions
	TransactionOptions *options.TransactionOptions

	Session []txn.SessionOption
	Log     logger.Logger
}

// WithIsolation selects transaction read and write concerns.
func WithIsolation(lvl txn.IsolationLevel) func(*Options) {
	return func(o *Options) {
		o.Isolation = &lvl
	}
}

func WithConsistency(model txn.ConsistencyModel) func(*Options) {
	return func(o *Options) {
		o.Consistency = &model
	}
}

func WithClientSessionOptions(opts *options.SessionOptions) func(*Options) {
	return func(o *Options) {
		o.SessionOptions = opts
	}
}

// WithTransactionOptions takes precedence over WithIsolation.
func WithTransactionOptions(opts *options.TransactionOptions) func(*Options) {
	return func(o *Options) {
		o.TransactionOptions = opts
	}
}

// WithSessionOptions applies opts to every session the factory creates.
func WithSessionOptions(opts ...txn.SessionOption) func(*Options) {
	return func(o *Options) {
		o.Session = append(o.Session, opts...)
	}
}

func WithLogger(log logger.Logger) func(*Options) {
	return func(o *Options) {
		o.Log = log
	}
}

func (o Options) sessionOptions() (*options.SessionOptions, error) {
	if o.Consistency == nil {
		return o.SessionOptions, nil
	}

	switch *o.Consistency {
	case txn.CausalConsistency, txn.SequentialConsistency:
	default:
		return nil, txn.Invalid("consistency", "only causal and sequential consistency are supported")
	}

	return options.MergeSessionOptions(
		options.Session().SetCausalConsistency(true),
		o.SessionOptions,
	), nil
}

func (o Options) transactionOptions() (*options.TransactionOptions, error) {
	if o.Isolation == nil && o.Consistency == nil {
		return o.TransactionOptions, nil
	}

	lvl := txn.ReadUncommitted
	if o.Isolation != nil {
		lvl = *o.Isolation
	}

	// sequential consistency needs majority reads on a causal session
	if o.Consistency != nil && *o.Consistency == txn.SequentialConsistency && lvl < txn.ReadCommitted {
		lvl = txn.ReadCommitted
	}

	r := readconcern.Local()
	switch lvl {
	case txn.ReadUncommitted:
	case txn.ReadCommitted:
		r = readconcern.Majority()
	case txn.SnapshotIsolation:
		r = readconcern.Snapshot()
	default:
		return nil, txn.Invalid("isolation", "unsupported by document store transactions: "+lvl.String())
	}

	return options.MergeTransactionOptions(
		options.Transaction().
			SetReadConcern(r).
			SetWriteConcern(writeconcern.Majority()),
		o.TransactionOptions,
	), nil
}
