package circuit

// EvalStats counts evaluator work
type EvalStats struct {
	Evaluations      int // Calls to Evaluate
	GateApplications int // Gate operators applied
}

type frame struct {
	wire     WireID
	expanded bool
}

// Evaluator resolves wire values against a network. It walks the gate graph
// depth first with an explicit stack, memoizing results in the store, so
// every wire is computed at most once per store.
type Evaluator struct {
	network *Network
	stack   []frame
	stats   EvalStats
}

// NewEvaluator creates an evaluator for the given network
func NewEvaluator(n *Network) *Evaluator {
	return &Evaluator{
		network: n,
		stack:   make([]frame, 0, 64),
	}
}

// Network returns the network being evaluated
func (e *Evaluator) Network() *Network {
	return e.network
}

// Stats returns the work counters accumulated so far
func (e *Evaluator) Stats() EvalStats {
	return e.stats
}

// ResetStats clears the work counters
func (e *Evaluator) ResetStats() {
	e.stats = EvalStats{}
}

// Evaluate returns the value of wire under the assignments in store
func (e *Evaluator) Evaluate(store *Store, wire WireID) (bool, error) {
	e.stats.Evaluations++
	if v, ok := store.Value(wire); ok {
		return v, nil
	}

	e.stack = append(e.stack[:0], frame{wire: wire})
	for len(e.stack) > 0 {
		top := &e.stack[len(e.stack)-1]
		state := store.State(top.wire)

		if state == Resolved {
			e.stack = e.stack[:len(e.stack)-1]
			continue
		}

		gate, ok := e.network.Gate(top.wire)
		if !ok {
			return false, e.fail(top.wire, ErrUnknownWire)
		}

		if !top.expanded {
			if state == Visiting {
				return false, e.fail(top.wire, ErrCycleDetected)
			}
			store.markVisiting(top.wire)
			top.expanded = true

			pending := false
			for _, op := range gate.Operands() {
				switch store.State(op) {
				case Visiting:
					return false, e.fail(op, ErrCycleDetected)
				case Unvisited:
					e.stack = append(e.stack, frame{wire: op})
					pending = true
				}
			}
			if pending {
				continue
			}
		}

		top = &e.stack[len(e.stack)-1]
		a, _ := store.Value(gate.A)
		b, _ := store.Value(gate.B)
		store.Set(top.wire, gate.Apply(a, b))
		e.stats.GateApplications++
		e.stack = e.stack[:len(e.stack)-1]
	}

	v, _ := store.Value(wire)
	return v, nil
}

// EvaluateName resolves a wire by name
func (e *Evaluator) EvaluateName(store *Store, name string) (bool, error) {
	id, ok := e.network.Lookup(name)
	if !ok {
		return false, &WireError{Op: "evaluate", Wire: name, Err: ErrUnknownWire}
	}
	return e.Evaluate(store, id)
}

// EvaluateAll resolves every wire in ids, stopping at the first error
func (e *Evaluator) EvaluateAll(store *Store, ids []WireID) error {
	for _, id := range ids {
		if _, err := e.Evaluate(store, id); err != nil {
			return err
		}
	}
	return nil
}

func (e *Evaluator) fail(wire WireID, err error) error {
	e.stack = e.stack[:0]
	return &WireError{Op: "evaluate", Wire: e.network.WireName(wire), Err: err}
}
