// Package metrics counts transaction session events.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nikmy/txcommand/pkg/txn"
)

const (
	EventExecuted   = "executed"
	EventCommitted  = "committed"
	EventRolledBack = "rolled_back"
)

type Registry struct {
	SessionEventsTotal *prometheus.CounterVec
	SessionsTotal      *prometheus.CounterVec

	registry *prometheus.Registry
}

func NewRegistry() *Registry {
	r := &Registry{registry: prometheus.NewRegistry()}

	r.SessionEventsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "txcommand_session_events_total",
			Help: "Total number of transaction session events",
		},
		[]string{"backend", "event"},
	)

	r.SessionsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "txcommand_sessions_total",
			Help: "Total number of observed transaction sessions",
		},
		[]string{"backend"},
	)

	return r
}

func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

type observable interface {
	OnExecuted(fn txn.ExecutedHook)
	OnCommitted(fn txn.Hook)
	OnRolledBack(fn txn.Hook)
}

// Observe counts the events of s under backend.
func (r *Registry) Observe(s observable, backend string) {
	r.SessionsTotal.WithLabelValues(backend).Inc()

	s.OnExecuted(func(any) { r.record(backend, EventExecuted) })
	s.OnCommitted(func() { r.record(backend, EventCommitted) })
	s.OnRolledBack(func() { r.record(backend, EventRolledBack) })
}

// SessionOptions counts the events of every session created with them.
func (r *Registry) SessionOptions(backend string) []txn.SessionOption {
	return []txn.SessionOption{
		txn.WithExecutedHook(func(any) { r.record(backend, EventExecuted) }),
		txn.WithCommittedHook(func() { r.record(backend, EventCommitted) }),
		txn.WithRolledBackHook(func() { r.record(backend, EventRolledBack) }),
	}
}

func (r *Registry) record(backend, event string) {
	r.SessionEventsTotal.WithLabelValues(backend, event).Inc()
}
