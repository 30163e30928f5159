package utils

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/fyerfyer/gate-repair/pkg/circuit"
)

// WriteInput writes assignments and gates in the format Parse reads.
// Gates are written in output-name order.
func WriteInput(w io.Writer, in *Input) error {
	writer := bufio.NewWriter(w)

	for _, a := range in.Assignments {
		value := 0
		if a.Value {
			value = 1
		}
		fmt.Fprintf(writer, "%s: %d\n", a.Wire, value)
	}
	writer.WriteString("\n")

	for _, id := range in.Network.Derived() {
		writer.WriteString(in.Network.Describe(id))
		writer.WriteString("\n")
	}
	return writer.Flush()
}

// WriteFile writes an input file
func WriteFile(filename string, in *Input) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if err := WriteInput(file, in); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return nil
}

// AdderInput wraps a network with assignments encoding x and y over width bits
func AdderInput(n *circuit.Network, x, y uint64, width int) *Input {
	in := &Input{Network: n, Assignments: make([]Assignment, 0, 2*width)}
	for _, family := range []struct {
		prefix string
		value  uint64
	}{{"x", x}, {"y", y}} {
		for i := 0; i < width; i++ {
			in.Assignments = append(in.Assignments, Assignment{
				Wire:  circuit.WireName(family.prefix, i),
				Value: family.value>>uint(i)&1 == 1,
			})
		}
	}
	return in
}
