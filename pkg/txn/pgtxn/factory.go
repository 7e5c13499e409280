// Package pgtxn runs txn sessions over PostgreSQL transactions.
package pgtxn

import (
	"github.com/jackc/pgx/v5"

	"github.com/nikmy/txcommand/pkg/builder"
	"github.com/nikmy/txcommand/pkg/txn"
)

type (
	Session = txn.Session[Conn, pgx.Tx]
	Command = txn.Command[Conn, pgx.Tx]
)

// Factory creates sessions bound to a connection.
type Factory struct {
	conn Conn
	opts Options
}

// NewFactory binds conn as the default connection, which may be nil if
// only CreateWith is used.
func NewFactory(conn Conn, setters ...func(*Options)) *Factory {
	opts, _ := builder.New[Options]().Use(setters...).Value()
	return &Factory{conn: conn, opts: opts}
}

func (f *Factory) Options() Options {
	return f.opts
}

func (f *Factory) Create() (*Session, error) {
	return f.CreateWith(f.conn)
}

func (f *Factory) CreateWith(conn Conn) (*Session, error) {
	if conn == nil {
		return nil, txn.NilArgument("connection")
	}

	sessionOpts := f.opts.Session
	if f.opts.Log != nil {
		sessionOpts = append([]txn.SessionOption{txn.WithLogger(f.opts.Log)}, sessionOpts...)
	}

	return txn.NewFactory(func() (txn.Provider[Conn, pgx.Tx], error) {
		p, err := NewProvider(conn, f.opts, f.opts.Log)
		if err != nil {
			return nil, err
		}
		return p, nil
	}, sessionOpts...).Create()
}
