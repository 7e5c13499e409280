// Package repo connects to the backends and prepares their schema.
package repo

import (
	"context"

	"github.com/nikmy/txcommand/pkg/errors"
	"github.com/nikmy/txcommand/pkg/txn/pgtxn"
)

var schema = [...]string{
	`CREATE TABLE IF NOT EXISTS people (
		id   BIGSERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS pets (
		id        BIGSERIAL PRIMARY KEY,
		person_id BIGINT NOT NULL REFERENCES people (id),
		name      VARCHAR(255) NOT NULL UNIQUE
	)`,
}

// NewPostgres returns a dialer handing out one connection per caller. It
// does not connect by itself.
func NewPostgres(cfg PostgresConfig) (*pgtxn.Dialer, error) {
	if cfg.URL == "" {
		return nil, errors.Fail("connect to postgres without url")
	}

	dialer, err := pgtxn.ParseDialer(cfg.URL)
	if err != nil {
		return nil, errors.WrapFail(err, "configure postgres connection")
	}

	return dialer, nil
}

type schemaConn interface {
	Open(ctx context.Context) error
	Exec(ctx context.Context, sql string, args ...any) error
}

// CreateSchema creates the people and pets tables unless they exist.
func CreateSchema(ctx context.Context, conn schemaConn) error {
	err := conn.Open(ctx)
	if err != nil {
		return errors.WrapFail(err, "open postgres connection")
	}

	for _, stmt := range schema {
		err = conn.Exec(ctx, stmt)
		if err != nil {
			return errors.WrapFail(err, "create schema")
		}
	}

	return nil
}
