package txn

import (
	"context"
	"fmt"

	"github.com/nikmy/txcommand/pkg/errors"
)

var (
	ErrNilArgument   = errors.Error("argument is nil")
	ErrDisposed      = errors.Error("object has been disposed")
	ErrCancelled     = errors.Error("operation has been cancelled")
	ErrTxnNotStarted = errors.Error("transaction has either not started, or been completed")
)

func NilArgument(name string) error {
	return errors.Wrap(ErrNilArgument, name)
}

func Disposed(what string) error {
	return errors.Wrap(ErrDisposed, what)
}

func NotStarted(method string) error {
	return errors.Wrapf(ErrTxnNotStarted, "can't call %s", method)
}

// CheckContext fails with ErrCancelled if ctx is already done.
// The result also matches ctx.Err() with errors.Is.
func CheckContext(ctx context.Context) error {
	return errors.Mark(ctx.Err(), ErrCancelled)
}

// ValidationError is returned by Command.Validate for bad parameters.
type ValidationError struct {
	Param  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Param, e.Reason)
}

func Invalid(param string, reason string) error {
	return &ValidationError{Param: param, Reason: reason}
}
