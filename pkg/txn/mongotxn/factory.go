// Package mongotxn runs txn sessions over MongoDB client session
// transactions.
package mongotxn

import (
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nikmy/txcommand/pkg/builder"
	"github.com/nikmy/txcommand/pkg/txn"
)

type (
	Session = txn.Session[Client, mongo.Session]
	Command = txn.Command[Client, mongo.Session]
)

type Factory struct {
	client Client
	opts   Options
}

func NewFactory(client Client, setters ...func(*Options)) *Factory {
	opts, _ := builder.New[Options]().Use(setters...).Value()
	return &Factory{client: client, opts: opts}
}

func (f *Factory) Options() Options {
	return f.opts
}

func (f *Factory) Create() (*Session, error) {
	if f.client == nil {
		return nil, txn.NilArgument("client")
	}

	sessionOpts := f.opts.Session
	if f.opts.Log != nil {
		sessionOpts = append([]txn.SessionOption{txn.WithLogger(f.opts.Log)}, sessionOpts...)
	}

	return txn.NewFactory(func() (txn.Provider[Client, mongo.Session], error) {
		p, err := NewProvider(f.client, f.opts, f.opts.Log)
		if err != nil {
			return nil, err
		}
		return p, nil
	}, sessionOpts...).Create()
}
