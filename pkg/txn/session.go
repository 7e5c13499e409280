package txn

import (
	"context"

	"github.com/google/uuid"

	"github.com/nikmy/txcommand/pkg/builder"
	"github.com/nikmy/txcommand/pkg/errors"
	"github.com/nikmy/txcommand/pkg/logger"
)

type sessionConfig struct {
	id    string
	log   logger.Logger
	hooks hooks
}

type SessionOption = func(cfg *sessionConfig)

func WithLogger(log logger.Logger) SessionOption {
	return func(cfg *sessionConfig) {
		cfg.log = log
	}
}

func WithID(id string) SessionOption {
	return func(cfg *sessionConfig) {
		cfg.id = id
	}
}

func WithExecutedHook(fn ExecutedHook) SessionOption {
	return func(cfg *sessionConfig) {
		cfg.hooks.onExecuted(fn)
	}
}

func WithCommittedHook(fn Hook) SessionOption {
	return func(cfg *sessionConfig) {
		cfg.hooks.onCommitted(fn)
	}
}

func WithRolledBackHook(fn Hook) SessionOption {
	return func(cfg *sessionConfig) {
		cfg.hooks.onRolledBack(fn)
	}
}

// Session runs commands in one transaction at a time. It is not safe for
// concurrent use.
//
// The transaction starts with the first Execute and stays open until Commit,
// Rollback, or a failed command. Close commits outstanding work: only a
// failing command rolls back.
type Session[DB, Tx any] struct {
	provider Provider[DB, Tx]
	id       string
	log      logger.Logger
	hooks    hooks

	completed bool
	disposed  bool
}

func NewSession[DB, Tx any](provider Provider[DB, Tx], opts ...SessionOption) (*Session[DB, Tx], error) {
	if provider == nil {
		return nil, NilArgument("provider")
	}

	cfg, _ := builder.New[sessionConfig]().Use(opts...).Value()
	if cfg.id == "" {
		cfg.id = uuid.NewString()
	}
	if cfg.log == nil {
		cfg.log = logger.NewStub()
	}

	return &Session[DB, Tx]{
		provider:  provider,
		id:        cfg.id,
		log:       cfg.log.With("session").With(cfg.id),
		hooks:     cfg.hooks.clone(),
		completed: true,
	}, nil
}

func (s *Session[DB, Tx]) ID() string {
	return s.id
}

// Completed reports that no transaction is in flight.
func (s *Session[DB, Tx]) Completed() bool {
	return s.completed
}

func (s *Session[DB, Tx]) Disposed() bool {
	return s.disposed
}

// OnExecuted registers fn to be called after each successful command.
func (s *Session[DB, Tx]) OnExecuted(fn ExecutedHook) {
	s.hooks.onExecuted(fn)
}

func (s *Session[DB, Tx]) OnCommitted(fn Hook) {
	s.hooks.onCommitted(fn)
}

func (s *Session[DB, Tx]) OnRolledBack(fn Hook) {
	s.hooks.onRolledBack(fn)
}

// Execute validates and executes cmd in the session transaction, starting it
// if needed. If cmd fails the transaction is rolled back and the command
// error is returned, unless the rollback itself fails.
func (s *Session[DB, Tx]) Execute(ctx context.Context, cmd Command[DB, Tx]) error {
	err := s.checkUsable(ctx)
	if err != nil {
		return err
	}

	if cmd == nil {
		return NilArgument("command")
	}

	_, err = execute(ctx, s, cmd, func(db DB, tx Tx) (struct{}, error) {
		return struct{}{}, cmd.Execute(ctx, db, tx)
	})
	return err
}

// ExecuteResult is Execute for commands producing a value.
func ExecuteResult[DB, Tx, R any](ctx context.Context, s *Session[DB, Tx], cmd ResultCommand[DB, Tx, R]) (R, error) {
	var zero R

	if s == nil {
		return zero, NilArgument("session")
	}

	err := s.checkUsable(ctx)
	if err != nil {
		return zero, err
	}

	if cmd == nil {
		return zero, NilArgument("command")
	}

	return execute(ctx, s, cmd, func(db DB, tx Tx) (R, error) {
		return cmd.Execute(ctx, db, tx)
	})
}

func execute[DB, Tx, R any](
	ctx context.Context,
	s *Session[DB, Tx],
	cmd validatable,
	run func(db DB, tx Tx) (R, error),
) (R, error) {
	var zero R

	err := s.provider.EnsureTxn(ctx)
	if err != nil {
		return zero, err
	}
	s.completed = false

	result, err := runCommand(s.provider, cmd, run)
	if err != nil {
		s.log.Debug(errors.Wrapf(err, "command %T failed, rolling back", cmd))

		// ctx may have been cancelled while the command was running, but
		// the transaction must not be left open.
		rollbackErr := s.Rollback(context.WithoutCancel(ctx))
		if rollbackErr != nil {
			return zero, rollbackErr
		}

		return zero, err
	}

	s.log.Debugf("executed %T", cmd)
	s.hooks.fireExecuted(cmd)

	return result, nil
}

func runCommand[DB, Tx, R any](
	provider Provider[DB, Tx],
	cmd validatable,
	run func(db DB, tx Tx) (R, error),
) (R, error) {
	var zero R

	err := cmd.Validate()
	if err != nil {
		return zero, err
	}

	db, tx, err := provider.Args()
	if err != nil {
		return zero, err
	}

	return run(db, tx)
}

// Commit commits the session transaction. It fails with ErrTxnNotStarted
// if no command has been executed since the last commit or rollback.
func (s *Session[DB, Tx]) Commit(ctx context.Context) error {
	err := s.checkUsable(ctx)
	if err != nil {
		return err
	}

	if s.completed {
		return NotStarted("Commit")
	}

	err = s.provider.Commit(ctx)
	s.completed = true
	if err != nil {
		return err
	}

	s.log.Debugf("committed")
	s.hooks.fireCommitted()

	return nil
}

// Rollback aborts the session transaction, with the same preconditions as
// Commit.
func (s *Session[DB, Tx]) Rollback(ctx context.Context) error {
	err := s.checkUsable(ctx)
	if err != nil {
		return err
	}

	if s.completed {
		return NotStarted("Rollback")
	}

	err = s.provider.Rollback(ctx)
	s.completed = true
	if err != nil {
		return err
	}

	s.log.Debugf("rolled back")
	s.hooks.fireRolledBack()

	return nil
}

// Close commits outstanding work and releases the provider. The session is
// disposed after the first call even if it returns an error; later calls
// do nothing. Cancellation of ctx is ignored.
func (s *Session[DB, Tx]) Close(ctx context.Context) error {
	if s.disposed {
		return nil
	}

	ctx = context.WithoutCancel(ctx)

	var commitErr error
	if !s.completed {
		commitErr = s.Commit(ctx)
	}

	closeErr := s.provider.Close(ctx)
	s.disposed = true
	s.log.Debugf("disposed")

	return errors.Join(commitErr, errors.WrapFail(closeErr, "release transaction provider"))
}

func (s *Session[DB, Tx]) checkUsable(ctx context.Context) error {
	if s.disposed {
		return Disposed("session " + s.id)
	}
	return CheckContext(ctx)
}
