package algorithm

import (
	"fmt"

	"github.com/fyerfyer/gate-repair/pkg/circuit"
	"github.com/fyerfyer/gate-repair/pkg/utils"
)

// RangeChecker tests adder correctness over a range of bit shifts
type RangeChecker interface {
	CheckLocalRange(minShift, maxShift int) (bool, error)
}

// Cluster is a contiguous run of failing output bits and the wires that
// could be responsible for it
type Cluster struct {
	FailingBits []int
	Low         int // Inclusive
	High        int // Inclusive, extended above the highest failing bit
	Suspects    []string
}

// String returns a string representation of the cluster
func (c Cluster) String() string {
	return fmt.Sprintf("bits %v (range %d-%d, %d suspects)", c.FailingBits, c.Low, c.High, len(c.Suspects))
}

// Localizer finds clusters of output bits the network gets wrong
type Localizer struct {
	Checker   RangeChecker
	Logger    *utils.Logger
	Width     int
	Extension int // Bits added above the highest failing bit
	// Network and OutputPrefix are optional; when set, each cluster gets its suspect set
	Network      *circuit.Network
	OutputPrefix string
}

// NewLocalizer creates a localizer driven by checker
func NewLocalizer(checker RangeChecker, width, extension int, logger *utils.Logger) *Localizer {
	return &Localizer{
		Checker:   checker,
		Logger:    logger,
		Width:     width,
		Extension: extension,
	}
}

// ScanBits tests each bit position 0..Width-2 on its own and groups
// consecutive failures into clusters. A carry defect usually shows one bit
// above the faulty gate, hence the range extension.
func (l *Localizer) ScanBits() ([]Cluster, error) {
	clusters := make([]Cluster, 0)
	run := make([]int, 0)

	closeRun := func() {
		if len(run) == 0 {
			return
		}
		c := Cluster{
			FailingBits: run,
			Low:         run[0],
			High:        run[len(run)-1] + l.Extension,
		}
		if l.Network != nil {
			c.Suspects = circuit.SuspectSet(l.Network, l.OutputPrefix, c.Low, c.High)
		}
		l.Logger.Localize("cluster %s", c)
		clusters = append(clusters, c)
		run = make([]int, 0)
	}

	for bit := 0; bit <= l.Width-2; bit++ {
		ok, err := l.Checker.CheckLocalRange(bit, bit)
		if err != nil {
			return nil, fmt.Errorf("scan bit %d: %w", bit, err)
		}
		if ok {
			closeRun()
			continue
		}
		l.Logger.Localize("bit %d fails", bit)
		run = append(run, bit)
	}
	closeRun()

	return clusters, nil
}
