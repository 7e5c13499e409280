package pgtxn

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/nikmy/txcommand/pkg/errors"
	"github.com/nikmy/txcommand/pkg/logger"
	"github.com/nikmy/txcommand/pkg/txn"
)

var _ txn.Provider[Conn, pgx.Tx] = (*Provider)(nil)

// Provider runs one pgx transaction at a time over a borrowed Conn.
type Provider struct {
	conn   Conn
	txOpts pgx.TxOptions
	log    logger.Logger

	tx     pgx.Tx
	active bool
	closed bool
}

func NewProvider(conn Conn, opts Options, log logger.Logger) (*Provider, error) {
	if conn == nil {
		return nil, txn.NilArgument("connection")
	}

	txOpts, err := opts.txOptions()
	if err != nil {
		return nil, err
	}

	if log == nil {
		log = logger.NewStub()
	}

	return &Provider{
		conn:   conn,
		txOpts: txOpts,
		log:    log.With("pgtxn"),
	}, nil
}

func (p *Provider) EnsureTxn(ctx context.Context) error {
	err := p.check(ctx)
	if err != nil {
		return err
	}

	if p.active {
		return nil
	}

	if p.conn.IsClosed() {
		err = p.conn.Open(ctx)
		if err != nil {
			return err
		}
	}

	tx, err := p.conn.BeginTx(ctx, p.txOpts)
	if err != nil {
		return err
	}

	p.tx, p.active = tx, true
	p.log.Debugf("began transaction (%s)", p.txOpts.IsoLevel)

	return nil
}

func (p *Provider) Commit(ctx context.Context) error {
	err := p.check(ctx)
	if err != nil {
		return err
	}

	if !p.active {
		return txn.NotStarted("Commit")
	}

	p.active = false
	err = p.tx.Commit(ctx)
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

	if !p.active {
		return txn.NotStarted("Rollback")
	}

	p.active = false
	err = p.tx.Rollback(ctx)
	if err != nil {
		return err
	}

	p.log.Debugf("rolled back")
	return nil
}

func (p *Provider) Args() (Conn, pgx.Tx, error) {
	if p.closed {
		return nil, nil, txn.Disposed("pgtxn provider")
	}
	return p.conn, p.tx, nil
}

// Close rolls back a transaction that is still active. The connection is
// left open.
func (p *Provider) Close(ctx context.Context) error {
	if p.closed {
		return nil
	}
	p.closed = true

	if !p.active {
		return nil
	}

	p.active = false
	err := p.tx.Rollback(ctx)
	if errors.Is(err, pgx.ErrTxClosed) {
		err = nil
	}

	p.log.Debugf("released")
	return errors.WrapFail(err, "roll back active transaction")
}

func (p *Provider) check(ctx context.Context) error {
	if p.closed {
		return txn.Disposed("pgtxn provider")
	}
	return txn.CheckContext(ctx)
}
