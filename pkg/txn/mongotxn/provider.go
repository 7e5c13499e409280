package mongotxn

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nikmy/txcommand/pkg/logger"
	"github.com/nikmy/txcommand/pkg/txn"
)

// Client is the database handle passed to document store commands.
// It is satisfied by *mongo.Client.
type Client interface {
	StartSession(opts ...*options.SessionOptions) (mongo.Session, error)
	Database(name string, opts ...*options.DatabaseOptions) *mongo.Database
}

var _ txn.Provider[Client, mongo.Session] = (*Provider)(nil)

// Provider runs transactions on one client session, started on demand.
type Provider struct {
	client   Client
	sessOpts *options.SessionOptions
	txOpts   *options.TransactionOptions
	log      logger.Logger

	session mongo.Session
	running bool
	closed  bool
}

func NewProvider(client Client, opts Options, log logger.Logger) (*Provider, error) {
	if client == nil {
		return nil, txn.NilArgument("client")
	}

	sessOpts, err := opts.sessionOptions()
	if err != nil {
		return nil, err
	}

	txOpts, err := opts.transactionOptions()
	if err != nil {
		return nil, err
	}

	if log == nil {
		log = logger.NewStub()
	}

	return &Provider{
		client:   client,
		sessOpts: sessOpts,
		txOpts:   txOpts,
		log:      log.With("mongotxn"),
	}, nil
}

func (p *Provider) EnsureTxn(ctx context.Context) error {
	err := p.check(ctx)
	if err != nil {
		return err
	}

	if p.running {
		return nil
	}

	if p.session == nil {
		var sessOpts []*options.SessionOptions
		if p.sessOpts != nil {
			sessOpts = append(sessOpts, p.sessOpts)
		}

		p.session, err = p.client.StartSession(sessOpts...)
		if err != nil {
			p.session = nil
			return err
		}
		p.log.Debugf("started client session")
	}

	var txOpts []*options.TransactionOptions
	if p.txOpts != nil {
		txOpts = append(txOpts, p.txOpts)
	}

	err = p.session.StartTransaction(txOpts...)
	if err != nil {
		return err
	}

	p.running = true
	p.log.Debugf("began transaction")

	return nil
}

func (p *Provider) Commit(ctx context.Context) error {
	err := p.check(ctx)
	if err != nil {
		return err
	}

	if !p.running {
		return txn.NotStarted("Commit")
	}

	p.running = false
	err = p.session.CommitTransaction(ctx)
	if err != nil {
		return err
	}

	p.log.Debugf("committed")
	return nil
}

func (p *Provider) Rollback(ctx context.Context) error {
	err := p.check(ctx)
	if err != nil {
		return err
	}

	if !p.running {
		return txn.NotStarted("Rollback")
	}

	p.running = false
	err = p.session.AbortTransaction(ctx)
	if err != nil {
		return err
	}

	p.log.Debugf("aborted")
	return nil
}

func (p *Provider) Args() (Client, mongo.Session, error) {
	if p.closed {
		return nil, nil, txn.Disposed("mongotxn provider")
	}
	return p.client, p.session, nil
}

// Close ends the client session, aborting a running transaction. The client
// is left connected.
func (p *Provider) Close(ctx context.Context) error {
	if p.closed {
		return nil
	}
	p.closed = true
	p.running = false

	if p.session != nil {
		p.session.EndSession(ctx)
		p.log.Debugf("ended client session")
	}

	return nil
}

func (p *Provider) check(ctx context.Context) error {
	if p.closed {
		return txn.Disposed("mongotxn provider")
	}
	return txn.CheckContext(ctx)
}
