package algorithm_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fyerfyer/gate-repair/pkg/algorithm"
	"github.com/fyerfyer/gate-repair/pkg/circuit"
	"github.com/fyerfyer/gate-repair/pkg/utils"
)

func TestRepairClusterRestoresSwap(t *testing.T) {
	const width = 12
	original := newAdder(t, width)
	n := original.Clone()
	require.NoError(t, n.InjectSwap("z05", "c05"))

	r := algorithm.NewRepairer(n, testConfig(width), utils.NopLogger())
	clusters, err := r.Localizer.ScanBits()
	require.NoError(t, err)
	require.Len(t, clusters, 1)

	swap, err := r.RepairCluster(clusters[0])
	require.NoError(t, err)
	assert.Equal(t, algorithm.Swap{A: "c05", B: "z05"}, swap)
	assert.True(t, n.Equal(original), "repaired network must match the original adder")

	ok, err := r.Oracle.CheckLocalRange(0, width-2)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, r.Stats.Committed)
	assert.Greater(t, r.Stats.Rejected, 0, "some trials should create cycles")
}

func TestRepairMultipleClusters(t *testing.T) {
	const width = 24
	original := newAdder(t, width)
	n := original.Clone()
	require.NoError(t, n.InjectSwap("z05", "c05"))
	require.NoError(t, n.InjectSwap("z15", "c15"))

	r := algorithm.NewRepairer(n, testConfig(width), utils.NopLogger())
	result, err := r.Repair()
	require.NoError(t, err)

	assert.Len(t, result.Clusters, 2)
	assert.Empty(t, result.Unresolved)
	assert.Equal(t, []string{"c05", "c15", "z05", "z15"}, result.Wires())
	assert.Equal(t, "c05,c15,z05,z15", result.Answer())
	assert.True(t, n.Equal(original))
	assert.Equal(t, 2, result.Stats.Committed)
	assert.Positive(t, result.Stats.Vectors)

	for i := uint64(0); i < 50; i++ {
		x, y := i*97531%(1<<width), i*13579%(1<<width)
		z, err := r.Oracle.Add(x, y)
		require.NoError(t, err)
		assert.Equal(t, x+y, z)
	}
}

func TestRepairCorrectNetwork(t *testing.T) {
	n := newAdder(t, 10)
	r := algorithm.NewRepairer(n, testConfig(10), utils.NopLogger())

	result, err := r.Repair()
	require.NoError(t, err)
	assert.Empty(t, result.Clusters)
	assert.Equal(t, "", result.Answer())
	assert.Zero(t, result.Stats.Trials)
}

func TestRepairClusterNoRepairFound(t *testing.T) {
	const width = 8
	// z03 uses OR instead of XOR; no swap of existing gates can fix that
	n := circuit.NewNetwork("broken")
	ref := newAdder(t, width)
	for _, id := range ref.Derived() {
		g, _ := ref.Gate(id)
		op := g.Type
		if ref.WireName(id) == "z03" {
			op = circuit.OR
		}
		require.NoError(t, n.AddGate(ref.WireName(id), op, ref.WireName(g.A), ref.WireName(g.B)))
	}
	before := n.Clone()

	r := algorithm.NewRepairer(n, testConfig(width), utils.NopLogger())
	result, err := r.Repair()
	require.Error(t, err)
	assert.ErrorIs(t, err, algorithm.ErrNoRepairFound)

	var unresolved *algorithm.UnresolvedError
	require.True(t, errors.As(err, &unresolved))
	require.NotEmpty(t, unresolved.Clusters)
	assert.Contains(t, unresolved.Clusters[0].FailingBits, 3)
	assert.Equal(t, unresolved.Clusters, result.Unresolved)
	assert.Empty(t, result.Swaps)
	assert.Contains(t, err.Error(), "no repair found")

	assert.True(t, n.Equal(before), "failed trials must leave the network untouched")
	assert.Positive(t, result.Stats.Trials)
}

func TestRepairMaxSuspects(t *testing.T) {
	const width = 12
	n := newAdder(t, width)
	require.NoError(t, n.InjectSwap("z05", "c05"))
	before := n.Clone()

	cfg := testConfig(width)
	cfg.Repair.MaxSuspects = 3
	r := algorithm.NewRepairer(n, cfg, utils.NopLogger())

	result, err := r.Repair()
	assert.ErrorIs(t, err, algorithm.ErrNoRepairFound)
	require.NotNil(t, result)
	assert.Len(t, result.Unresolved, 1)
	assert.Zero(t, result.Stats.Trials)
	assert.True(t, n.Equal(before))
}

func TestRepairRejectsCorruptNetwork(t *testing.T) {
	n := newAdder(t, 8)
	require.NoError(t, n.InjectSwap("c01", "z02"))

	r := algorithm.NewRepairer(n, testConfig(8), utils.NopLogger())
	_, err := r.Repair()
	assert.ErrorIs(t, err, circuit.ErrCycleDetected, "cycles outside a trial are fatal")
}
