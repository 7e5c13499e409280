package txn

type (
	Hook         func()
	ExecutedHook func(cmd any)
)

type hooks struct {
	executed   []ExecutedHook
	committed  []Hook
	rolledBack []Hook
}

func (h *hooks) onExecuted(fn ExecutedHook) {
	if fn != nil {
		h.executed = append(h.executed, fn)
	}
}

func (h *hooks) onCommitted(fn Hook) {
	if fn != nil {
		h.committed = append(h.committed, fn)
	}
}

func (h *hooks) onRolledBack(fn Hook) {
	if fn != nil {
		h.rolledBack = append(h.rolledBack, fn)
	}
}

func (h *hooks) fireExecuted(cmd any) {
	for _, fn := range h.executed {
		fn(cmd)
	}
}

func (h *hooks) fireCommitted() {
	for _, fn := range h.committed {
		fn()
	}
}

func (h *hooks) fireRolledBack() {
	for _, fn := range h.rolledBack {
		fn()
	}
}

// clone keeps sessions created from one set of options independent.
func (h hooks) clone() hooks {
	return hooks{
		executed:   append([]ExecutedHook(nil), h.executed...),
		committed:  append([]Hook(nil), h.committed...),
		rolledBack: append([]Hook(nil), h.rolledBack...),
	}
}
