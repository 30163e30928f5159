package algorithm

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/fyerfyer/gate-repair/pkg/circuit"
	"github.com/fyerfyer/gate-repair/pkg/config"
	"github.com/fyerfyer/gate-repair/pkg/utils"
)

// ErrNoRepairFound is returned when no single swap fixes a cluster
var ErrNoRepairFound = errors.New("no repair found")

// UnresolvedError lists the clusters a repair run could not fix
type UnresolvedError struct {
	Clusters []Cluster
}

func (e *UnresolvedError) Error() string {
	parts := make([]string, 0, len(e.Clusters))
	for _, c := range e.Clusters {
		parts = append(parts, c.String())
	}
	return fmt.Sprintf("%v for %d cluster(s): %s", ErrNoRepairFound, len(e.Clusters), strings.Join(parts, "; "))
}

func (e *UnresolvedError) Unwrap() error {
	return ErrNoRepairFound
}

// Stats contains statistics about a repair run
type Stats struct {
	Clusters  int           // Clusters found by the localizer
	Trials    int           // Swaps tried
	Rejected  int           // Trials rejected because the swap created a cycle
	Committed int           // Swaps kept
	Vectors   int           // Test vectors evaluated
	TotalTime time.Duration // Total execution time
}

// Swap is a committed exchange of the gates driving two wires
type Swap struct {
	A string
	B string
}

// Result is the outcome of a repair run
type Result struct {
	Clusters   []Cluster
	Swaps      []Swap
	Unresolved []Cluster
	Stats      Stats
}

// Wires returns every wire involved in a committed swap, sorted
func (r *Result) Wires() []string {
	wires := make([]string, 0, 2*len(r.Swaps))
	for _, s := range r.Swaps {
		wires = append(wires, s.A, s.B)
	}
	sort.Strings(wires)
	return wires
}

// Answer returns the swapped wires joined by commas
func (r *Result) Answer() string {
	return strings.Join(r.Wires(), ",")
}

// Repairer localizes miswired outputs and fixes them with pairwise swaps.
// It assumes one swap per non-overlapping cluster.
type Repairer struct {
	Network     *circuit.Network
	Oracle      *Oracle
	Localizer   *Localizer
	Logger      *utils.Logger
	MaxSuspects int
	Stats       Stats
}

// NewRepairer wires an oracle and localizer around the network
func NewRepairer(n *circuit.Network, cfg *config.Config, logger *utils.Logger) *Repairer {
	oracle := NewOracle(n, cfg, logger)
	localizer := NewLocalizer(oracle, cfg.Width, cfg.Localizer.ClusterExtension, logger)
	localizer.Network = n
	localizer.OutputPrefix = cfg.Prefixes.Z

	return &Repairer{
		Network:     n,
		Oracle:      oracle,
		Localizer:   localizer,
		Logger:      logger,
		MaxSuspects: cfg.Repair.MaxSuspects,
	}
}

// Repair scans for clusters and repairs them in ascending bit order.
// Clusters that cannot be fixed are reported through an *UnresolvedError
// alongside the partial result.
func (r *Repairer) Repair() (*Result, error) {
	startTime := time.Now()
	r.Stats = Stats{}
	r.Logger.Info("Starting repair of %s", r.Network)
	r.Logger.Indent()
	defer r.Logger.Outdent()

	clusters, err := r.Localizer.ScanBits()
	if err != nil {
		return nil, fmt.Errorf("fault localization failed: %w", err)
	}
	r.Stats.Clusters = len(clusters)
	r.Logger.Info("Found %d failing cluster(s)", len(clusters))

	result := &Result{
		Clusters:   clusters,
		Swaps:      make([]Swap, 0, len(clusters)),
		Unresolved: make([]Cluster, 0),
	}
	for _, c := range clusters {
		swap, err := r.RepairCluster(c)
		if errors.Is(err, ErrNoRepairFound) {
			r.Logger.Warning("Unresolved cluster %s", c)
			result.Unresolved = append(result.Unresolved, c)
			continue
		}
		if err != nil {
			return nil, err
		}
		result.Swaps = append(result.Swaps, swap)
	}

	r.Stats.Vectors = r.Oracle.Vectors()
	r.Stats.TotalTime = time.Since(startTime)
	result.Stats = r.Stats
	r.logStats()

	if len(result.Unresolved) > 0 {
		return result, &UnresolvedError{Clusters: result.Unresolved}
	}
	return result, nil
}

// RepairCluster tries every pair of suspects in sorted order and keeps the
// first swap that makes the cluster's bit range pass. The network is left
// untouched when no pair works.
func (r *Repairer) RepairCluster(c Cluster) (Swap, error) {
	suspects := make([]string, len(c.Suspects))
	copy(suspects, c.Suspects)
	sort.Strings(suspects)

	if r.MaxSuspects > 0 && len(suspects) > r.MaxSuspects {
		r.Logger.Repair("cluster %s exceeds %d suspects", c, r.MaxSuspects)
		return Swap{}, fmt.Errorf("%w: %d suspects exceed limit %d", ErrNoRepairFound, len(suspects), r.MaxSuspects)
	}

	ids := make([]circuit.WireID, 0, len(suspects))
	for _, name := range suspects {
		id, ok := r.Network.Lookup(name)
		if !ok || !r.Network.HasGate(id) {
			return Swap{}, &circuit.WireError{Op: "repair", Wire: name, Err: circuit.ErrUnknownWire}
		}
		ids = append(ids, id)
	}

	r.Logger.Repair("searching %d suspects for %s", len(ids), c)
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			ok, err := r.trial(ids[i], ids[j], c)
			if err != nil {
				return Swap{}, err
			}
			if ok {
				swap := Swap{A: suspects[i], B: suspects[j]}
				r.Stats.Committed++
				r.Logger.Repair("swapped %s <-> %s", swap.A, swap.B)
				return swap, nil
			}
		}
	}
	return Swap{}, ErrNoRepairFound
}

// trial swaps a and b and keeps the swap only if the cluster range passes.
// Every other exit path rolls the network back.
func (r *Repairer) trial(a, b circuit.WireID, c Cluster) (bool, error) {
	r.Stats.Trials++
	edit, err := r.Network.Swap(a, b)
	if err != nil {
		return false, err
	}
	defer edit.Rollback()

	ok, err := r.Oracle.CheckLocalRange(c.Low, c.High)
	if errors.Is(err, circuit.ErrCycleDetected) {
		r.Stats.Rejected++
		r.Logger.Trial("%s <-> %s creates a cycle", r.Network.WireName(a), r.Network.WireName(b))
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	edit.Commit()
	return true, nil
}

func (r *Repairer) logStats() {
	r.Logger.Info("Repair statistics:")
	r.Logger.Info("  Clusters: %d", r.Stats.Clusters)
	r.Logger.Info("  Trials: %d (%d rejected for cycles)", r.Stats.Trials, r.Stats.Rejected)
	r.Logger.Info("  Swaps committed: %d", r.Stats.Committed)
	r.Logger.Info("  Vectors evaluated: %d", r.Stats.Vectors)
	r.Logger.Info("  Total time: %v", r.Stats.TotalTime)
}
