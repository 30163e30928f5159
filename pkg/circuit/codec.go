package circuit

import "fmt"

// MaxWidth is the widest bit vector that still leaves room for a carry in uint64
const MaxWidth = 63

// Encode writes the low width bits of value onto the wire family prefix00,
// prefix01, ... Every wire of the family must exist in the network.
func Encode(n *Network, store *Store, prefix string, value uint64, width int) error {
	if width < 0 || width > MaxWidth {
		return fmt.Errorf("encode %s: width %d out of range", prefix, width)
	}
	for i := 0; i < width; i++ {
		if err := n.Assign(store, WireName(prefix, i), value>>uint(i)&1 == 1); err != nil {
			return err
		}
	}
	return nil
}

// Decode reads width bits from the wire family prefix00, prefix01, ...
// Missing or unresolved wires are an error.
func Decode(n *Network, store *Store, prefix string, width int) (uint64, error) {
	if width < 0 || width > MaxWidth+1 {
		return 0, fmt.Errorf("decode %s: width %d out of range", prefix, width)
	}
	var value uint64
	for i := 0; i < width; i++ {
		name := WireName(prefix, i)
		id, ok := n.Lookup(name)
		if !ok {
			return 0, &WireError{Op: "decode", Wire: name, Err: ErrMissingWire}
		}
		bit, ok := store.Value(id)
		if !ok {
			return 0, &WireError{Op: "decode", Wire: name, Err: ErrUnknownWire}
		}
		if bit {
			value |= 1 << uint(i)
		}
	}
	return value, nil
}
