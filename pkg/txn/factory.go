package txn

import "github.com/nikmy/txcommand/pkg/errors"

// ProviderFunc resolves a fresh Provider for every new session.
type ProviderFunc[DB, Tx any] func() (Provider[DB, Tx], error)

// Factory creates independent sessions. Sessions are never pooled.
type Factory[DB, Tx any] struct {
	resolve ProviderFunc[DB, Tx]
	opts    []SessionOption
}

func NewFactory[DB, Tx any](resolve ProviderFunc[DB, Tx], opts ...SessionOption) *Factory[DB, Tx] {
	return &Factory[DB, Tx]{
		resolve: resolve,
		opts:    opts,
	}
}

func (f *Factory[DB, Tx]) Create() (*Session[DB, Tx], error) {
	if f.resolve == nil {
		return nil, NilArgument("provider resolver")
	}

	provider, err := f.resolve()
	if err != nil {
		return nil, errors.WrapFail(err, "resolve transaction provider")
	}

	return NewSession(provider, f.opts...)
}
