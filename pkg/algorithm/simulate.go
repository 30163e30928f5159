package algorithm

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fyerfyer/gate-repair/pkg/circuit"
	"github.com/fyerfyer/gate-repair/pkg/utils"
)

// Simulate evaluates every output wire under the input's own assignments and
// returns the number they encode, bit i coming from prefix{i}.
func Simulate(in *utils.Input, prefix string, logger *utils.Logger) (uint64, error) {
	store, err := in.Store()
	if err != nil {
		return 0, err
	}

	eval := circuit.NewEvaluator(in.Network)
	var value uint64
	for _, id := range in.Network.Outputs(prefix) {
		name := in.Network.WireName(id)
		bit, err := strconv.Atoi(strings.TrimPrefix(name, prefix))
		if err != nil || bit < 0 || bit > circuit.MaxWidth {
			return 0, fmt.Errorf("output wire %s has no valid bit index", name)
		}
		v, err := eval.Evaluate(store, id)
		if err != nil {
			return 0, err
		}
		logger.Trace("%s = %v", name, v)
		if v {
			value |= 1 << uint(bit)
		}
	}

	stats := eval.Stats()
	logger.Debug("Simulated %s: %d gate applications", in.Network.Name, stats.GateApplications)
	return value, nil
}
