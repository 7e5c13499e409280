package pgtxn

import (
	"github.com/jackc/pgx/v5"

	"github.com/nikmy/txcommand/pkg/logger"
	"github.com/nikmy/txcommand/pkg/txn"
)

// Options are fixed once a factory is built.
type Options struct {
	Isolation txn.IsolationLevel
	Session   []txn.SessionOption
	Log       logger.Logger
}

func WithIsolation(lvl txn.IsolationLevel) func(*Options) {
	return func(o *Options) {
		o.Isolation = lvl
	}
}

// WithLogger is used by both sessions and providers.
func WithLogger(log logger.Logger) func(*Options) {
	return func(o *Options) {
		o.Log = log
	}
}

// WithSessionOptions applies opts to every session the factory creates.
func WithSessionOptions(opts ...txn.SessionOption) func(*Options) {
	return func(o *Options) {
		o.Session = append(o.Session, opts...)
	}
}

var isoLevels = map[txn.IsolationLevel]pgx.TxIsoLevel{
	txn.ReadUncommitted:   pgx.ReadUncommitted,
	txn.ReadCommitted:     pgx.ReadCommitted,
	txn.SnapshotIsolation: pgx.RepeatableRead,
	txn.Serializable:      pgx.Serializable,
}

func (o Options) txOptions() (pgx.TxOptions, error) {
	lvl, ok := isoLevels[o.Isolation]
	if !ok {
		return pgx.TxOptions{}, txn.Invalid("isolation", o.Isolation.String())
	}
	return pgx.TxOptions{IsoLevel: lvl}, nil
}
