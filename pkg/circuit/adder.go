package circuit

import "fmt"

// BuildRippleCarryAdder builds a correct width-bit ripple-carry adder with
// inputs x00.., y00.. and outputs z00..z{width}, the top bit being the carry
// out. Internal wires follow the pattern h (half sum), g (generate),
// p (propagate) and c (carry), suffixed with the bit index.
func BuildRippleCarryAdder(width int) (*Network, error) {
	if width < 1 || width > MaxWidth-1 {
		return nil, fmt.Errorf("adder width %d out of range", width)
	}
	n := NewNetwork(fmt.Sprintf("adder%d", width))

	add := func(out string, op GateType, a, b string) error {
		return n.AddGate(out, op, a, b)
	}

	x, y := WireName("x", 0), WireName("y", 0)
	if err := add(WireName("z", 0), XOR, x, y); err != nil {
		return nil, err
	}
	carry := WireName("c", 0)
	if width == 1 {
		carry = WireName("z", 1)
	}
	if err := add(carry, AND, x, y); err != nil {
		return nil, err
	}

	for i := 1; i < width; i++ {
		x, y = WireName("x", i), WireName("y", i)
		h, g, p := WireName("h", i), WireName("g", i), WireName("p", i)
		next := WireName("c", i)
		if i == width-1 {
			next = WireName("z", width)
		}

		steps := []struct {
			out  string
			op   GateType
			a, b string
		}{
			{h, XOR, x, y},
			{g, AND, x, y},
			{WireName("z", i), XOR, h, carry},
			{p, AND, h, carry},
			{next, OR, g, p},
		}
		for _, s := range steps {
			if err := add(s.out, s.op, s.a, s.b); err != nil {
				return nil, err
			}
		}
		carry = next
	}
	return n, nil
}
