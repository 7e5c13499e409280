package txn

import (
	"strings"

	"github.com/nikmy/txcommand/pkg/errors"
)

type ConsistencyModel int

const (
	// CausalConsistency means that
	// all logically depending operations
	// are sequential consistent
	CausalConsistency ConsistencyModel = iota

	// SequentialConsistency means that
	// any concurrent operations execution
	// result is equivalent to some
	// sequential execution of those
	// operations
	SequentialConsistency

	// Linearizable means that
	// operations order is consistent
	// with real time order
	Linearizable
)

type IsolationLevel int

// ReadUncommitted is the zero value and the default for relational sessions.
const (
	ReadUncommitted IsolationLevel = iota
	ReadCommitted
	SnapshotIsolation
	Serializable
)

var isolationNames = [...]string{
	ReadUncommitted:   "read_uncommitted",
	ReadCommitted:     "read_committed",
	SnapshotIsolation: "snapshot",
	Serializable:      "serializable",
}

func (l IsolationLevel) String() string {
	if l < 0 || int(l) >= len(isolationNames) {
		return "unknown"
	}
	return isolationNames[l]
}

func ParseIsolation(s string) (IsolationLevel, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	if normalized == "" {
		return ReadUncommitted, nil
	}

	for lvl, name := range isolationNames {
		if name == normalized {
			return IsolationLevel(lvl), nil
		}
	}

	return 0, errors.Errorf("unknown isolation level %q", s)
}

func (l *IsolationLevel) UnmarshalYAML(unmarshal func(any) error) error {
	var raw string

	err := unmarshal(&raw)
	if err != nil {
		return err
	}

	*l, err = ParseIsolation(raw)
	return err
}
