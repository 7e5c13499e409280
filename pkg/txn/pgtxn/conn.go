package pgtxn

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/nikmy/txcommand/pkg/errors"
)

var ErrConnClosed = errors.Error("connection is closed")

// Conn is the database handle passed to relational commands. The provider
// opens it on demand and never closes it.
type Conn interface {
	IsClosed() bool
	Open(ctx context.Context) error
	BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error)
}

// Connection is a Conn over a single pgx connection that can be reopened
// after Close. Like pgx.Conn it is not safe for concurrent use: sessions
// running at the same time need a Connection each, see Dialer.
type Connection struct {
	cfg  *pgx.ConnConfig
	conn *pgx.Conn
}

func (c *Connection) IsClosed() bool {
	return c.conn == nil || c.conn.IsClosed()
}

func (c *Connection) Open(ctx context.Context) error {
	if !c.IsClosed() {
		return nil
	}

	conn, err := pgx.ConnectConfig(ctx, c.cfg)
	if err != nil {
		return err
	}

	c.conn = conn
	return nil
}

func (c *Connection) BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error) {
	if c.IsClosed() {
		return nil, ErrConnClosed
	}
	return c.conn.BeginTx(ctx, opts)
}

// Exec runs sql outside of any transaction.
func (c *Connection) Exec(ctx context.Context, sql string, args ...any) error {
	if c.IsClosed() {
		return ErrConnClosed
	}
	_, err := c.conn.Exec(ctx, sql, args...)
	return err
}

func (c *Connection) Close(ctx context.Context) error {
	if c.IsClosed() {
		return nil
	}
	return c.conn.Close(ctx)
}

// Dialer opens a new connection for every caller that must not share one
// with concurrent sessions.
type Dialer struct {
	cfg *pgx.ConnConfig
}

func NewDialer(cfg *pgx.ConnConfig) (*Dialer, error) {
	if cfg == nil {
		return nil, errors.Fail("create dialer without config")
	}
	return &Dialer{cfg: cfg}, nil
}

func ParseDialer(url string) (*Dialer, error) {
	cfg, err := pgx.ParseConfig(url)
	if err != nil {
		return nil, errors.WrapFail(err, "parse postgres url")
	}
	return NewDialer(cfg)
}

// Dial returns an open connection owned by the caller, who must close it.
func (d *Dialer) Dial(ctx context.Context) (*Connection, error) {
	conn := &Connection{cfg: d.cfg.Copy()}

	err := conn.Open(ctx)
	if err != nil {
		return nil, errors.WrapFail(err, "dial postgres")
	}

	return conn, nil
}
