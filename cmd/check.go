package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/fyerfyer/gate-repair/pkg/config"
	"github.com/fyerfyer/gate-repair/pkg/utils"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Replay the known answers listed in the config",
	Long: `Runs every part/file pair under check.answers and compares the result with
the expected answer. Files are processed concurrently, each with its own network.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(cfg.Check.Answers) == 0 {
			return fmt.Errorf("no known answers configured in %s", configPath)
		}
		outcomes, err := runChecks(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}
		failed := reportChecks(cmd.OutOrStdout(), outcomes)
		if failed > 0 {
			return fmt.Errorf("%d of %d checks failed", failed, len(outcomes))
		}
		return nil
	},
}

// checkOutcome is the result of replaying one known answer
type checkOutcome struct {
	Answer   config.Answer
	Got      string
	Err      error
	Duration time.Duration
}

// Passed reports whether the run matched the expected answer
func (o checkOutcome) Passed() bool {
	return o.Err == nil && o.Got == o.Answer.Answer
}

// runChecks replays every configured answer. Per-file failures are recorded
// in the outcomes; only cancellation aborts the run.
func runChecks(ctx context.Context, cfg *config.Config, logger *utils.Logger) ([]checkOutcome, error) {
	outcomes := make([]checkOutcome, len(cfg.Check.Answers))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Check.Concurrency)
	for i, answer := range cfg.Check.Answers {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			got, err := runPart(answer.Part, answer.File, cfg, logger.With(zap.String("file", answer.File)))
			outcomes[i] = checkOutcome{
				Answer:   answer,
				Got:      got,
				Err:      err,
				Duration: time.Since(start),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outcomes, nil
}

// reportChecks prints one line per outcome plus a summary and returns the failure count
func reportChecks(w io.Writer, outcomes []checkOutcome) int {
	passed, failed := 0, 0
	for _, o := range outcomes {
		switch {
		case o.Err != nil:
			fmt.Fprintf(w, "FAIL part %d, file '%s': %v\n", o.Answer.Part, o.Answer.File, o.Err)
			failed++
		case !o.Passed():
			fmt.Fprintf(w, "FAIL part %d, file '%s': got %s, want %s\n", o.Answer.Part, o.Answer.File, o.Got, o.Answer.Answer)
			failed++
		default:
			fmt.Fprintf(w, "ok   part %d, file '%s': %s [%.2fs]\n", o.Answer.Part, o.Answer.File, o.Got, o.Duration.Seconds())
			passed++
		}
	}
	fmt.Fprintf(w, "Test results: %d passed, %d failed.\n", passed, failed)
	return failed
}
