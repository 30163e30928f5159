package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fyerfyer/gate-repair/pkg/config"
	"github.com/fyerfyer/gate-repair/pkg/utils"
)

var (
	// Global flags
	configPath string
	verbose    bool
	width      int

	cfg    *config.Config
	logger *utils.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "gate-repair",
	Short: "Evaluate and repair miswired ripple-carry adder gate networks",
	Long: `gate-repair loads a gate network of AND/OR/XOR gates between named wires,
evaluates it, and finds pairs of gate outputs that were swapped so the
network no longer computes x + y = z.

Input files hold "wire: 0|1" assignments, a blank line, then one
"a OP b -> out" gate per line.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("width") {
			cfg.Width = width
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		level, err := utils.ParseLogLevel(cfg.Logging.Level)
		if err != nil {
			return err
		}
		if verbose {
			level = utils.DebugLevel
		}
		logger, err = utils.NewLogger(level, cfg.Logging.Development)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "gate-repair.yaml", "Config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().IntVarP(&width, "width", "w", 45, "Operand width in bits (overrides config)")

	rootCmd.AddCommand(evalCmd, scanCmd, repairCmd, genCmd, checkCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
