package cli

import (
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/johnny-rice/shredvardson-dl-starter-sub005/internal/config"
	"github.com/johnny-rice/shredvardson-dl-starter-sub005/internal/trace"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// runCheck is the root command: load the graph from the configured tier
// directories, run both checkers, render the report, and map the outcome to
// an exit code.
func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if cfg.NoColor {
		color.NoColor = true
	}

	sp := startScanSpinner(cfg)
	g, result, err := trace.Run(trace.Sources(cfg.SpecsDir, cfg.PlansDir, cfg.TasksDir))
	if sp != nil {
		sp.Stop()
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if cfg.Quiet {
		if !result.Valid {
			trace.RenderErrors(out, result)
		}
	} else {
		trace.RenderSummary(out, g, result)
	}

	if !result.Valid {
		return NewExitError(ExitValidationFailed)
	}
	return nil
}

// startScanSpinner starts the directory-scan spinner when configured and
// attached to a terminal. Returns nil otherwise; callers nil-check.
// The spinner writes to stderr so report output stays clean for pipes.
func startScanSpinner(cfg *config.Configuration) *spinner.Spinner {
	if !cfg.ShowProgress || !term.IsTerminal(int(os.Stderr.Fd())) {
		return nil
	}
	sp := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	sp.Writer = os.Stderr
	sp.Suffix = " scanning artifact directories..."
	sp.Start()
	return sp
}
