package circuit

import (
	"fmt"
	"strings"
)

// GateType represents the operator of a two-input logic gate
type GateType int

const (
	AND GateType = iota
	OR
	XOR
)

// String returns a string representation of the gate type
func (gt GateType) String() string {
	switch gt {
	case AND:
		return "AND"
	case OR:
		return "OR"
	case XOR:
		return "XOR"
	default:
		return "UNKNOWN"
	}
}

// ParseGateType converts an operator token into a GateType
func ParseGateType(s string) (GateType, error) {
	switch strings.ToUpper(s) {
	case "AND":
		return AND, nil
	case "OR":
		return OR, nil
	case "XOR":
		return XOR, nil
	default:
		return 0, fmt.Errorf("unsupported gate type %q", s)
	}
}

// Gate is an operator applied to two operand wires. The output wire is the
// network slot the gate occupies, so swapping two slots rewires both outputs.
type Gate struct {
	Type GateType
	A    WireID
	B    WireID
}

// Apply computes the gate's output for the given operand values
func (g Gate) Apply(a, b bool) bool {
	switch g.Type {
	case AND:
		return a && b
	case OR:
		return a || b
	default:
		return a != b
	}
}

// Operands returns both operand wires
func (g Gate) Operands() [2]WireID {
	return [2]WireID{g.A, g.B}
}
