package circuit_test

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fyerfyer/gate-repair/pkg/circuit"
)

// halfAdder builds x00/y00 feeding AND->c00 and XOR->z00
func halfAdder(t *testing.T) *circuit.Network {
	t.Helper()
	n := circuit.NewNetwork("half")
	require.NoError(t, n.AddGate("c00", circuit.AND, "x00", "y00"))
	require.NoError(t, n.AddGate("z00", circuit.XOR, "x00", "y00"))
	return n
}

func TestEvaluateHalfAdder(t *testing.T) {
	n := halfAdder(t)
	store := n.NewStore()
	require.NoError(t, n.Assign(store, "x00", true))
	require.NoError(t, n.Assign(store, "y00", true))

	eval := circuit.NewEvaluator(n)
	z, err := eval.EvaluateName(store, "z00")
	require.NoError(t, err)
	c, err := eval.EvaluateName(store, "c00")
	require.NoError(t, err)

	assert.False(t, z, "1 XOR 1 should be 0")
	assert.True(t, c, "1 AND 1 should be 1")
}

func TestGateApply(t *testing.T) {
	tests := []struct {
		op   circuit.GateType
		want [4]bool // 00, 01, 10, 11
	}{
		{circuit.AND, [4]bool{false, false, false, true}},
		{circuit.OR, [4]bool{false, true, true, true}},
		{circuit.XOR, [4]bool{false, true, true, false}},
	}
	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			g := circuit.Gate{Type: tt.op}
			for i, want := range tt.want {
				assert.Equal(t, want, g.Apply(i&2 != 0, i&1 != 0), "inputs %02b", i)
			}
		})
	}
}

func TestParseGateType(t *testing.T) {
	op, err := circuit.ParseGateType("xor")
	require.NoError(t, err)
	assert.Equal(t, circuit.XOR, op)

	_, err = circuit.ParseGateType("NAND")
	assert.Error(t, err)
}

func TestEvaluateUnknownWire(t *testing.T) {
	n := circuit.NewNetwork("unknown")
	require.NoError(t, n.AddGate("z00", circuit.AND, "x00", "q"))

	store := n.NewStore()
	require.NoError(t, n.Assign(store, "x00", true))

	_, err := circuit.NewEvaluator(n).EvaluateName(store, "z00")
	require.Error(t, err)
	assert.True(t, errors.Is(err, circuit.ErrUnknownWire))

	var werr *circuit.WireError
	require.True(t, errors.As(err, &werr))
	assert.Equal(t, "q", werr.Wire)

	_, err = circuit.NewEvaluator(n).EvaluateName(n.NewStore(), "nope")
	assert.ErrorIs(t, err, circuit.ErrUnknownWire)
}

func TestEvaluateCycle(t *testing.T) {
	n := circuit.NewNetwork("cycle")
	require.NoError(t, n.AddGate("a", circuit.AND, "b", "x00"))
	require.NoError(t, n.AddGate("b", circuit.OR, "a", "x00"))
	require.NoError(t, n.AddGate("z00", circuit.XOR, "a", "y00"))

	store := n.NewStore()
	require.NoError(t, n.Assign(store, "x00", true))
	require.NoError(t, n.Assign(store, "y00", false))

	_, err := circuit.NewEvaluator(n).EvaluateName(store, "z00")
	assert.ErrorIs(t, err, circuit.ErrCycleDetected)
}

func TestEvaluateSelfLoop(t *testing.T) {
	n := circuit.NewNetwork("self")
	require.NoError(t, n.AddGate("a", circuit.XOR, "a", "x00"))

	store := n.NewStore()
	require.NoError(t, n.Assign(store, "x00", false))

	_, err := circuit.NewEvaluator(n).EvaluateName(store, "a")
	assert.ErrorIs(t, err, circuit.ErrCycleDetected)
}

func TestEvaluateMemoizes(t *testing.T) {
	n := halfAdder(t)
	store := n.NewStore()
	require.NoError(t, n.Assign(store, "x00", true))
	require.NoError(t, n.Assign(store, "y00", false))

	eval := circuit.NewEvaluator(n)
	for i := 0; i < 3; i++ {
		v, err := eval.EvaluateName(store, "z00")
		require.NoError(t, err)
		assert.True(t, v)
	}
	assert.Equal(t, 1, eval.Stats().GateApplications)
	assert.Equal(t, 3, eval.Stats().Evaluations)

	id, _ := n.Lookup("z00")
	assert.Equal(t, circuit.Resolved, store.State(id))

	_, err := eval.EvaluateName(store, "c00")
	require.NoError(t, err)
	assert.Equal(t, 2, eval.Stats().GateApplications)

	eval.ResetStats()
	assert.Zero(t, eval.Stats().GateApplications)
}

func TestEvaluateSharedOperandOnce(t *testing.T) {
	// d is used by both operands of z00 and must only be computed once
	n := circuit.NewNetwork("diamond")
	require.NoError(t, n.AddGate("d", circuit.AND, "x00", "y00"))
	require.NoError(t, n.AddGate("e", circuit.OR, "d", "x00"))
	require.NoError(t, n.AddGate("z00", circuit.XOR, "d", "e"))

	store := n.NewStore()
	require.NoError(t, n.Assign(store, "x00", true))
	require.NoError(t, n.Assign(store, "y00", true))

	eval := circuit.NewEvaluator(n)
	v, err := eval.EvaluateName(store, "z00")
	require.NoError(t, err)
	assert.False(t, v)
	assert.Equal(t, 3, eval.Stats().GateApplications)
}

func TestEvaluateDeepChain(t *testing.T) {
	// Deep enough that a recursive evaluator would be uncomfortable
	const depth = 200000
	n := circuit.NewNetwork("chain")
	prev := "x00"
	for i := 0; i < depth; i++ {
		out := fmt.Sprintf("w%d", i)
		require.NoError(t, n.AddGate(out, circuit.XOR, prev, "y00"))
		prev = out
	}

	store := n.NewStore()
	require.NoError(t, n.Assign(store, "x00", false))
	require.NoError(t, n.Assign(store, "y00", true))

	v, err := circuit.NewEvaluator(n).EvaluateName(store, prev)
	require.NoError(t, err)
	assert.Equal(t, depth%2 == 1, v)
}

func TestEvaluateDeterministic(t *testing.T) {
	n, err := circuit.BuildRippleCarryAdder(16)
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 50; i++ {
		x, y := rng.Uint64()&0xffff, rng.Uint64()&0xffff
		var results [2]uint64
		for k := range results {
			store := n.NewStore()
			require.NoError(t, circuit.Encode(n, store, "x", x, 16))
			require.NoError(t, circuit.Encode(n, store, "y", y, 16))
			require.NoError(t, circuit.NewEvaluator(n).EvaluateAll(store, n.Outputs("z")))
			results[k], err = circuit.Decode(n, store, "z", 17)
			require.NoError(t, err)
		}
		assert.Equal(t, results[0], results[1])
		assert.Equal(t, x+y, results[0])
	}
}
