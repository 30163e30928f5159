package circuit

// Store holds wire values for a single evaluation pass. It is created per
// test vector and must be discarded after the pass, or after any error.
type Store struct {
	values []bool
	states []WireState
}

func newStore(size int) *Store {
	return &Store{
		values: make([]bool, size),
		states: make([]WireState, size),
	}
}

// Set assigns a value to a wire and marks it resolved
func (s *Store) Set(id WireID, value bool) {
	s.values[id] = value
	s.states[id] = Resolved
}

// Value returns a wire's value and whether it has one
func (s *Store) Value(id WireID) (bool, bool) {
	if id < 0 || int(id) >= len(s.states) {
		return false, false
	}
	return s.values[id], s.states[id] == Resolved
}

// State returns a wire's visit state
func (s *Store) State(id WireID) WireState {
	if id < 0 || int(id) >= len(s.states) {
		return Unvisited
	}
	return s.states[id]
}

func (s *Store) markVisiting(id WireID) {
	s.states[id] = Visiting
}
