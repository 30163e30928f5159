package circuit

import "fmt"

// Edit is a pending exchange of the gates driving two wires. The network is
// mutated as soon as the edit is opened; Rollback restores it unless Commit
// was called first, so callers defer Rollback right after Swap.
type Edit struct {
	network *Network
	a, b    WireID
	done    bool
}

// Swap exchanges the gates driving a and b and returns the open edit
func (n *Network) Swap(a, b WireID) (*Edit, error) {
	if !n.HasGate(a) || !n.HasGate(b) {
		return nil, fmt.Errorf("swap %s/%s: both wires must be driven by a gate",
			n.WireName(a), n.WireName(b))
	}
	if a == b {
		return nil, fmt.Errorf("swap %s with itself", n.WireName(a))
	}
	n.exchange(a, b)
	return &Edit{network: n, a: a, b: b}, nil
}

func (n *Network) exchange(a, b WireID) {
	n.gates[a], n.gates[b] = n.gates[b], n.gates[a]
}

// Commit keeps the swap
func (e *Edit) Commit() {
	e.done = true
}

// Rollback undoes the swap if it was not committed. Calling it again is a no-op.
func (e *Edit) Rollback() {
	if e.done {
		return
	}
	e.network.exchange(e.a, e.b)
	e.done = true
}

// Wires returns the swapped wire names in sorted order
func (e *Edit) Wires() (string, string) {
	a, b := e.network.WireName(e.a), e.network.WireName(e.b)
	if b < a {
		a, b = b, a
	}
	return a, b
}

// InjectSwap permanently swaps the gates driving two named wires
func (n *Network) InjectSwap(a, b string) error {
	ida, ok := n.Lookup(a)
	if !ok {
		return &WireError{Op: "inject swap", Wire: a, Err: ErrUnknownWire}
	}
	idb, ok := n.Lookup(b)
	if !ok {
		return &WireError{Op: "inject swap", Wire: b, Err: ErrUnknownWire}
	}
	edit, err := n.Swap(ida, idb)
	if err != nil {
		return err
	}
	edit.Commit()
	return nil
}
