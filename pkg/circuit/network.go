package circuit

import (
	"fmt"
	"sort"
	"strings"
)

// Network maps every derived wire to the gate that drives it. Wires are
// interned, so gates and stores are indexed by WireID instead of by name.
type Network struct {
	Name   string
	wires  *WireTable
	gates  []Gate
	driven []bool
}

// NewNetwork creates an empty network with the given name
func NewNetwork(name string) *Network {
	return &Network{
		Name:   name,
		wires:  NewWireTable(),
		gates:  make([]Gate, 0),
		driven: make([]bool, 0),
	}
}

// Wire interns a wire name and returns its ID
func (n *Network) Wire(name string) WireID {
	id, created := n.wires.Intern(name)
	if created {
		n.gates = append(n.gates, Gate{A: NoWire, B: NoWire})
		n.driven = append(n.driven, false)
	}
	return id
}

// Lookup returns the ID of a wire known to the network
func (n *Network) Lookup(name string) (WireID, bool) {
	return n.wires.Lookup(name)
}

// WireName returns the name of a wire
func (n *Network) WireName(id WireID) string {
	return n.wires.Name(id)
}

// NumWires returns the number of wires, driven or not
func (n *Network) NumWires() int {
	return n.wires.Len()
}

// AddGate defines output as op(a, b). A second definition of the same
// output is rejected with ErrDuplicateOutput.
func (n *Network) AddGate(output string, op GateType, a, b string) error {
	out := n.Wire(output)
	if n.driven[out] {
		return &WireError{Op: "add gate", Wire: output, Err: ErrDuplicateOutput}
	}
	n.gates[out] = Gate{Type: op, A: n.Wire(a), B: n.Wire(b)}
	n.driven[out] = true
	return nil
}

// Gate returns the gate driving a wire
func (n *Network) Gate(id WireID) (Gate, bool) {
	if id < 0 || int(id) >= len(n.gates) || !n.driven[id] {
		return Gate{}, false
	}
	return n.gates[id], true
}

// HasGate reports whether a wire is derived
func (n *Network) HasGate(id WireID) bool {
	_, ok := n.Gate(id)
	return ok
}

// GateCount returns the number of gates in the network
func (n *Network) GateCount() int {
	count := 0
	for _, d := range n.driven {
		if d {
			count++
		}
	}
	return count
}

// Outputs returns the derived wires whose name starts with prefix, sorted by name
func (n *Network) Outputs(prefix string) []WireID {
	ids := make([]WireID, 0)
	for i, d := range n.driven {
		if d && strings.HasPrefix(n.wires.Name(WireID(i)), prefix) {
			ids = append(ids, WireID(i))
		}
	}
	n.sortByName(ids)
	return ids
}

// Inputs returns the wires no gate drives, sorted by name
func (n *Network) Inputs() []WireID {
	ids := make([]WireID, 0)
	for i, d := range n.driven {
		if !d {
			ids = append(ids, WireID(i))
		}
	}
	n.sortByName(ids)
	return ids
}

// Derived returns every driven wire, sorted by name
func (n *Network) Derived() []WireID {
	ids := make([]WireID, 0, len(n.driven))
	for i, d := range n.driven {
		if d {
			ids = append(ids, WireID(i))
		}
	}
	n.sortByName(ids)
	return ids
}

func (n *Network) sortByName(ids []WireID) {
	sort.Slice(ids, func(i, j int) bool {
		return n.wires.Name(ids[i]) < n.wires.Name(ids[j])
	})
}

// NewStore creates an empty per-vector store sized for this network
func (n *Network) NewStore() *Store {
	return newStore(n.wires.Len())
}

// Assign sets a named wire's value in store
func (n *Network) Assign(store *Store, name string, value bool) error {
	id, ok := n.Lookup(name)
	if !ok {
		return &WireError{Op: "assign", Wire: name, Err: ErrMissingWire}
	}
	store.Set(id, value)
	return nil
}

// Clone returns an independent copy of the network
func (n *Network) Clone() *Network {
	c := &Network{
		Name:   n.Name,
		wires:  NewWireTable(),
		gates:  make([]Gate, len(n.gates)),
		driven: make([]bool, len(n.driven)),
	}
	for _, name := range n.wires.names {
		c.wires.Intern(name)
	}
	copy(c.gates, n.gates)
	copy(c.driven, n.driven)
	return c
}

// Equal reports whether two networks define the same gates under the same names
func (n *Network) Equal(other *Network) bool {
	if n.GateCount() != other.GateCount() {
		return false
	}
	for _, id := range n.Derived() {
		name := n.WireName(id)
		oid, ok := other.Lookup(name)
		if !ok {
			return false
		}
		g, _ := n.Gate(id)
		og, ok := other.Gate(oid)
		if !ok || g.Type != og.Type {
			return false
		}
		a, b := n.WireName(g.A), n.WireName(g.B)
		oa, ob := other.WireName(og.A), other.WireName(og.B)
		if !((a == oa && b == ob) || (a == ob && b == oa)) {
			return false
		}
	}
	return true
}

// Describe renders a gate definition in input format, e.g. "x00 AND y00 -> c00"
func (n *Network) Describe(id WireID) string {
	g, ok := n.Gate(id)
	if !ok {
		return n.WireName(id)
	}
	return fmt.Sprintf("%s %s %s -> %s", n.WireName(g.A), g.Type, n.WireName(g.B), n.WireName(id))
}

// String returns a short summary of the network
func (n *Network) String() string {
	return fmt.Sprintf("Network %s: %d wires, %d gates", n.Name, n.NumWires(), n.GateCount())
}
