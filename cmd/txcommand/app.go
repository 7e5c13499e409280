package main

import (
	"context"

	"github.com/nikmy/txcommand/internal/metrics"
	"github.com/nikmy/txcommand/internal/people"
	"github.com/nikmy/txcommand/internal/people/mongopeople"
	"github.com/nikmy/txcommand/internal/people/sqlpeople"
	"github.com/nikmy/txcommand/internal/repo"
	"github.com/nikmy/txcommand/pkg/errors"
	"github.com/nikmy/txcommand/pkg/logger"
	"github.com/nikmy/txcommand/pkg/txn"
	"github.com/nikmy/txcommand/pkg/txn/mongotxn"
	"github.com/nikmy/txcommand/pkg/txn/pgtxn"
)

// app holds the registrar of the configured backend and what must be
// released on exit.
type app struct {
	log       logger.Logger
	registrar people.Registrar
	metrics   *metrics.Registry
	schema    func(ctx context.Context) error
	closers   []func(ctx context.Context) error
}

func newApp(ctx context.Context, cfg *Config, log logger.Logger) (*app, error) {
	a := &app{
		log:     log,
		metrics: metrics.NewRegistry(),
	}

	var err error
	switch cfg.Backend {
	case backendPostgres:
		err = a.setupPostgres(cfg.Postgres)
	case backendMongo:
		err = a.setupMongo(ctx, cfg.Mongo)
	default:
		err = txn.Invalid("backend", "must be one of postgres, mongo")
	}

	if err != nil {
		return nil, errors.WrapFailf(err, "set up %s backend", cfg.Backend)
	}

	return a, nil
}

func (a *app) setupPostgres(cfg repo.PostgresConfig) error {
	dialer, err := repo.NewPostgres(cfg)
	if err != nil {
		return err
	}

	// requests are served concurrently, so sessions get a connection each
	sessions := pgtxn.NewFactory(nil,
		pgtxn.WithIsolation(cfg.Isolation),
		pgtxn.WithLogger(a.log),
		pgtxn.WithSessionOptions(a.metrics.SessionOptions(backendPostgres)...),
	)

	connect := func(ctx context.Context) (sqlpeople.Conn, error) {
		conn, err := dialer.Dial(ctx)
		if err != nil {
			return nil, err
		}
		return conn, nil
	}

	a.registrar = sqlpeople.NewRegistrar(connect, sessions, a.log)
	a.schema = func(ctx context.Context) error {
		conn, err := dialer.Dial(ctx)
		if err != nil {
			return err
		}
		return errors.Join(repo.CreateSchema(ctx, conn), conn.Close(ctx))
	}

	return nil
}

func (a *app) setupMongo(ctx context.Context, cfg repo.MongoConfig) error {
	client, err := repo.NewMongo(ctx, cfg)
	if err != nil {
		return err
	}
	a.closers = append(a.closers, client.Disconnect)

	setters := []func(*mongotxn.Options){
		mongotxn.WithConsistency(txn.CausalConsistency),
		mongotxn.WithLogger(a.log),
		mongotxn.WithSessionOptions(a.metrics.SessionOptions(backendMongo)...),
	}
	if cfg.Isolation != nil {
		setters = append(setters, mongotxn.WithIsolation(*cfg.Isolation))
	}

	a.registrar = mongopeople.NewRegistrar(mongotxn.NewFactory(client, setters...), cfg.Database, a.log)
	a.schema = func(ctx context.Context) error {
		return repo.EnsureIndexes(ctx, client.Database(cfg.Database))
	}

	return nil
}

func (a *app) Close(ctx context.Context) error {
	var errs []error
	for _, closeFn := range a.closers {
		errs = append(errs, closeFn(ctx))
	}
	return errors.WrapFail(errors.Collapse(errs), "release backend")
}
