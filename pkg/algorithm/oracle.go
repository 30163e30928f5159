package algorithm

import (
	"github.com/fyerfyer/gate-repair/pkg/circuit"
	"github.com/fyerfyer/gate-repair/pkg/config"
	"github.com/fyerfyer/gate-repair/pkg/utils"
)

// Oracle checks whether a network behaves as an adder: x + y = z.
type Oracle struct {
	Network     *circuit.Network
	Evaluator   *circuit.Evaluator
	Logger      *utils.Logger
	Prefixes    config.PrefixConfig
	Width       int // Operand width in bits
	OperandBits int // Local tests use operands in [0, 2^OperandBits)
	outputs     []circuit.WireID
	vectors     int
}

// NewOracle creates an oracle for the network. The set of z outputs is
// fixed at construction; swaps exchange gates but never add or drop outputs.
func NewOracle(n *circuit.Network, cfg *config.Config, logger *utils.Logger) *Oracle {
	return &Oracle{
		Network:     n,
		Evaluator:   circuit.NewEvaluator(n),
		Logger:      logger,
		Prefixes:    cfg.Prefixes,
		Width:       cfg.Width,
		OperandBits: cfg.Localizer.OperandBits,
		outputs:     n.Outputs(cfg.Prefixes.Z),
	}
}

// OutputWidth returns the number of z outputs decoded per check
func (o *Oracle) OutputWidth() int {
	return len(o.outputs)
}

// Vectors returns the number of vectors evaluated so far
func (o *Oracle) Vectors() int {
	return o.vectors
}

// CheckAddition evaluates every z output under store and reports whether
// the decoded x + y equals the decoded z.
func (o *Oracle) CheckAddition(store *circuit.Store) (bool, error) {
	o.vectors++
	if err := o.Evaluator.EvaluateAll(store, o.outputs); err != nil {
		return false, err
	}

	x, err := circuit.Decode(o.Network, store, o.Prefixes.X, o.Width)
	if err != nil {
		return false, err
	}
	y, err := circuit.Decode(o.Network, store, o.Prefixes.Y, o.Width)
	if err != nil {
		return false, err
	}
	z, err := circuit.Decode(o.Network, store, o.Prefixes.Z, len(o.outputs))
	if err != nil {
		return false, err
	}

	if x+y != z {
		o.Logger.Oracle("%d + %d = %d, got %d", x, y, x+y, z)
		return false, nil
	}
	return true, nil
}

// CheckLocalRange runs CheckAddition for x = a<<shift, y = b<<shift over every
// shift in [minShift, maxShift] and every small operand pair (a, b). It stops
// at the first mismatch. A wiring defect near bit p shows up on small values
// shifted to p, so the full input space never needs to be covered.
func (o *Oracle) CheckLocalRange(minShift, maxShift int) (bool, error) {
	limit := uint64(1) << uint(o.OperandBits)
	for shift := minShift; shift <= maxShift; shift++ {
		for a := uint64(0); a < limit; a++ {
			for b := uint64(0); b < limit; b++ {
				ok, err := o.check(a<<uint(shift), b<<uint(shift))
				if err != nil {
					return false, err
				}
				if !ok {
					o.Logger.Oracle("local check failed at shift %d with a=%d b=%d", shift, a, b)
					return false, nil
				}
			}
		}
	}
	return true, nil
}

func (o *Oracle) check(x, y uint64) (bool, error) {
	store, err := o.assign(x, y)
	if err != nil {
		return false, err
	}
	return o.CheckAddition(store)
}

// Add evaluates one vector and returns the decoded z
func (o *Oracle) Add(x, y uint64) (uint64, error) {
	store, err := o.assign(x, y)
	if err != nil {
		return 0, err
	}
	o.vectors++
	if err := o.Evaluator.EvaluateAll(store, o.outputs); err != nil {
		return 0, err
	}
	return circuit.Decode(o.Network, store, o.Prefixes.Z, len(o.outputs))
}

func (o *Oracle) assign(x, y uint64) (*circuit.Store, error) {
	store := o.Network.NewStore()
	if err := circuit.Encode(o.Network, store, o.Prefixes.X, x, o.Width); err != nil {
		return nil, err
	}
	if err := circuit.Encode(o.Network, store, o.Prefixes.Y, y, o.Width); err != nil {
		return nil, err
	}
	return store, nil
}
