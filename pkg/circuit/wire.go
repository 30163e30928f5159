package circuit

import "fmt"

// WireID is the dense index of an interned wire name
type WireID int32

// NoWire marks an unset operand
const NoWire WireID = -1

// WireState tracks the progress of a wire through one evaluation pass
type WireState uint8

const (
	Unvisited WireState = iota // No value yet
	Visiting                   // Operands are being resolved
	Resolved                   // Value is final for this pass
)

// String returns a string representation of the wire state
func (s WireState) String() string {
	switch s {
	case Unvisited:
		return "UNVISITED"
	case Visiting:
		return "VISITING"
	case Resolved:
		return "RESOLVED"
	default:
		return "UNKNOWN"
	}
}

// WireTable interns wire names into dense IDs
type WireTable struct {
	names []string
	index map[string]WireID
}

// NewWireTable creates an empty wire table
func NewWireTable() *WireTable {
	return &WireTable{
		names: make([]string, 0),
		index: make(map[string]WireID),
	}
}

// Intern returns the ID for name, allocating a new one on first use
func (t *WireTable) Intern(name string) (WireID, bool) {
	if id, ok := t.index[name]; ok {
		return id, false
	}
	id := WireID(len(t.names))
	t.names = append(t.names, name)
	t.index[name] = id
	return id, true
}

// Lookup returns the ID of an already interned name
func (t *WireTable) Lookup(name string) (WireID, bool) {
	id, ok := t.index[name]
	return id, ok
}

// Name returns the name behind an ID
func (t *WireTable) Name(id WireID) string {
	if id < 0 || int(id) >= len(t.names) {
		return fmt.Sprintf("<wire %d>", id)
	}
	return t.names[id]
}

// Len returns the number of interned wires
func (t *WireTable) Len() int {
	return len(t.names)
}

// WireName formats the name of bit i in a prefixed wire family, e.g. z07
func WireName(prefix string, bit int) string {
	return fmt.Sprintf("%s%02d", prefix, bit)
}
