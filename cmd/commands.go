package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fyerfyer/gate-repair/pkg/algorithm"
	"github.com/fyerfyer/gate-repair/pkg/circuit"
	"github.com/fyerfyer/gate-repair/pkg/config"
	"github.com/fyerfyer/gate-repair/pkg/utils"
)

var evalCmd = &cobra.Command{
	Use:   "eval [file]",
	Short: "Evaluate the network and print the number on the z wires",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		answer, err := runPart(1, args[0], cfg, logger)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), answer)
		return nil
	},
}

var scanCmd = &cobra.Command{
	Use:   "scan [file]",
	Short: "List clusters of output bits the adder gets wrong",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := loadNetwork(args[0], logger)
		if err != nil {
			return err
		}
		repairer := algorithm.NewRepairer(in.Network, cfg, logger)
		clusters, err := repairer.Localizer.ScanBits()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if len(clusters) == 0 {
			fmt.Fprintln(out, "no failing bits")
		}
		for _, c := range clusters {
			fmt.Fprintln(out, c)
		}
		return nil
	},
}

var repairCmd = &cobra.Command{
	Use:   "repair [file]",
	Short: "Find swapped gate outputs and print them sorted and comma-joined",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		answer, err := runPart(2, args[0], cfg, logger)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), answer)
		return nil
	},
}

var (
	genOutput string
	genSwaps  []string
	genX      uint64
	genY      uint64
)

var genCmd = &cobra.Command{
	Use:     "gen",
	Short:   "Write a ripple-carry adder input, optionally with swapped outputs",
	Example: `  gate-repair gen -w 16 --swap z05,c05 --x 1234 --y 4321 -o broken.txt`,
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := circuit.BuildRippleCarryAdder(cfg.Width)
		if err != nil {
			return err
		}
		for _, pair := range genSwaps {
			a, b, ok := strings.Cut(pair, ",")
			if !ok {
				return fmt.Errorf("invalid swap %q (expected: a,b)", pair)
			}
			if err := n.InjectSwap(a, b); err != nil {
				return err
			}
			logger.Info("Injected swap %s <-> %s", a, b)
		}

		in := utils.AdderInput(n, genX, genY, cfg.Width)
		if genOutput == "" {
			return utils.WriteInput(cmd.OutOrStdout(), in)
		}
		logger.Info("Writing %s to %s", n, genOutput)
		return utils.WriteFile(genOutput, in)
	},
}

func init() {
	genCmd.Flags().StringVarP(&genOutput, "output", "o", "", "Output file (default: stdout)")
	genCmd.Flags().StringArrayVar(&genSwaps, "swap", nil, "Swap the gates driving two wires, e.g. z05,c05 (repeatable)")
	genCmd.Flags().Uint64Var(&genX, "x", 0, "Value assigned to the x wires")
	genCmd.Flags().Uint64Var(&genY, "y", 0, "Value assigned to the y wires")
}

// loadNetwork parses an input file and rejects cyclic networks up front
func loadNetwork(filename string, logger *utils.Logger) (*utils.Input, error) {
	logger.Info("Parsing network from %s", filename)
	in, err := utils.ParseFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to parse network: %w", err)
	}
	topo, err := circuit.AnalyzeTopology(in.Network)
	if err != nil {
		return nil, fmt.Errorf("invalid network: %w", err)
	}
	logger.Zap().Debug("Network loaded",
		zap.String("name", in.Network.Name),
		zap.Int("wires", in.Network.NumWires()),
		zap.Int("gates", in.Network.GateCount()),
		zap.Int("depth", topo.MaxLevel))
	return in, nil
}

// runPart runs part 1 (evaluate) or part 2 (repair) on a file and returns the answer
func runPart(part int, filename string, cfg *config.Config, logger *utils.Logger) (string, error) {
	in, err := loadNetwork(filename, logger)
	if err != nil {
		return "", err
	}

	switch part {
	case 1:
		value, err := algorithm.Simulate(in, cfg.Prefixes.Z, logger)
		if err != nil {
			return "", err
		}
		return fmt.Sprint(value), nil
	case 2:
		result, err := algorithm.NewRepairer(in.Network, cfg, logger).Repair()
		if err != nil {
			return "", err
		}
		return result.Answer(), nil
	default:
		return "", fmt.Errorf("unknown part %d", part)
	}
}
