package utils

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/fyerfyer/gate-repair/pkg/circuit"
)

// Regular expressions for the two input sections
var (
	assignRegex = regexp.MustCompile(`^([^:\s]+):\s*([01])$`)
	gateRegex   = regexp.MustCompile(`^(\S+)\s+(AND|OR|XOR)\s+(\S+)\s+->\s+(\S+)$`)
)

// Assignment is an initial wire value from the first input section
type Assignment struct {
	Wire  string
	Value bool
}

// Input is a parsed puzzle input: a gate network plus initial assignments
type Input struct {
	Network     *circuit.Network
	Assignments []Assignment
}

// Store builds a fresh evaluation store holding the initial assignments
func (in *Input) Store() (*circuit.Store, error) {
	store := in.Network.NewStore()
	for _, a := range in.Assignments {
		if err := in.Network.Assign(store, a.Wire, a.Value); err != nil {
			return nil, err
		}
	}
	return store, nil
}

// ParseFile reads an input file and returns its network and assignments
func ParseFile(filename string) (*Input, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	name := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	return Parse(file, name)
}

// Parse reads the assignment section, a blank line, then the gate section.
// A second gate for an already driven output fails with circuit.ErrDuplicateOutput.
func Parse(r io.Reader, name string) (*Input, error) {
	in := &Input{
		Network:     circuit.NewNetwork(name),
		Assignments: make([]Assignment, 0),
	}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	inGates := false

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		if !inGates {
			if line == "" {
				inGates = true
				continue
			}
			matches := assignRegex.FindStringSubmatch(line)
			if matches == nil {
				return nil, fmt.Errorf("line %d: invalid assignment %q", lineNo, line)
			}
			in.Network.Wire(matches[1])
			in.Assignments = append(in.Assignments, Assignment{Wire: matches[1], Value: matches[2] == "1"})
			continue
		}

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		matches := gateRegex.FindStringSubmatch(line)
		if matches == nil {
			return nil, fmt.Errorf("line %d: invalid gate %q", lineNo, line)
		}
		op, err := circuit.ParseGateType(matches[2])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		if err := in.Network.AddGate(matches[4], op, matches[1], matches[3]); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading input: %w", err)
	}
	return in, nil
}
