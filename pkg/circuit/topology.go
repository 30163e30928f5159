package circuit

import (
	"fmt"
	"sort"
)

// Influencers walks backward from target through gate operands and returns
// every derived wire it reaches, target included. Primary inputs are not
// expanded or returned. The result is in visit order.
func Influencers(n *Network, target WireID) []WireID {
	if !n.HasGate(target) {
		return nil
	}
	visited := make(map[WireID]bool)
	visited[target] = true
	queue := []WireID{target}
	result := make([]WireID, 0)

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		result = append(result, current)

		gate, _ := n.Gate(current)
		for _, op := range gate.Operands() {
			if visited[op] || !n.HasGate(op) {
				continue
			}
			visited[op] = true
			queue = append(queue, op)
		}
	}
	return result
}

// SuspectSet unions the influencers of every output wire prefixLow..prefixHigh
// and returns their names sorted. Output bits missing from the network are skipped.
func SuspectSet(n *Network, prefix string, low, high int) []string {
	seen := make(map[WireID]bool)
	for bit := low; bit <= high; bit++ {
		id, ok := n.Lookup(WireName(prefix, bit))
		if !ok {
			continue
		}
		for _, w := range Influencers(n, id) {
			seen[w] = true
		}
	}

	names := make([]string, 0, len(seen))
	for w := range seen {
		names = append(names, n.WireName(w))
	}
	sort.Strings(names)
	return names
}

// Topology holds the level of every wire: inputs sit at level 0 and a gate
// output is one above its deepest operand.
type Topology struct {
	Network  *Network
	Levels   []int
	MaxLevel int
}

// AnalyzeTopology levels the network and fails with ErrCycleDetected if
// some gates can never be levelled.
func AnalyzeTopology(n *Network) (*Topology, error) {
	levels := make([]int, n.NumWires())
	for i := range levels {
		levels[i] = -1
	}
	for _, id := range n.Inputs() {
		levels[id] = 0
	}

	t := &Topology{Network: n, Levels: levels}
	derived := n.Derived()
	remaining := len(derived)

	changed := true
	for changed && remaining > 0 {
		changed = false
		for _, id := range derived {
			if levels[id] >= 0 {
				continue
			}
			gate, _ := n.Gate(id)
			la, lb := levels[gate.A], levels[gate.B]
			if la < 0 || lb < 0 {
				continue
			}
			levels[id] = max(la, lb) + 1
			t.MaxLevel = max(t.MaxLevel, levels[id])
			remaining--
			changed = true
		}
	}

	if remaining > 0 {
		for _, id := range derived {
			if levels[id] < 0 {
				return nil, &WireError{Op: "analyze", Wire: n.WireName(id),
					Err: fmt.Errorf("%w: %d gates unreachable from inputs", ErrCycleDetected, remaining)}
			}
		}
	}
	return t, nil
}

// Level returns the level of a wire, or -1 if it was never levelled
func (t *Topology) Level(id WireID) int {
	if id < 0 || int(id) >= len(t.Levels) {
		return -1
	}
	return t.Levels[id]
}
