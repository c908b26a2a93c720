package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/johnny-rice/shredvardson-dl-starter-sub005/internal/trace"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Inspect tier directories and effective configuration",
	Long: `Report the effective configuration, whether each tier directory is
present, and how many artifacts loaded from each. With --verbose, list the
artifacts grouped by issue number.

doctor never fails the run; use the root command as the CI gate.`,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
	doctorCmd.Flags().BoolP("verbose", "v", false, "List artifacts grouped by issue")
}

func runDoctor(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.NoColor {
		color.NoColor = true
	}
	verbose, _ := cmd.Flags().GetBool("verbose")
	out := cmd.OutOrStdout()

	green := color.New(color.FgGreen).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	fmt.Fprintln(out, "Configuration:")
	fmt.Fprintf(out, "  specs_dir: %s\n", cfg.SpecsDir)
	fmt.Fprintf(out, "  plans_dir: %s\n", cfg.PlansDir)
	fmt.Fprintf(out, "  tasks_dir: %s\n", cfg.TasksDir)
	fmt.Fprintln(out)

	sources := trace.Sources(cfg.SpecsDir, cfg.PlansDir, cfg.TasksDir)
	g, loadErrs, err := trace.Load(sources)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "Directories:")
	for _, src := range sources {
		if _, statErr := os.Stat(src.Dir); statErr != nil {
			fmt.Fprintf(out, "  %s %s (%s): absent, contributes zero records\n", yellow("-"), src.Dir, src.Tier)
			continue
		}
		fmt.Fprintf(out, "  %s %s (%s): %d artifact(s)\n", green("+"), src.Dir, src.Tier, g.Count(src.Tier))
	}
	fmt.Fprintln(out)

	if len(loadErrs) > 0 {
		fmt.Fprintf(out, "%d file(s) failed to load; run 'traceability' for details\n", len(loadErrs))
	}

	if verbose {
		fmt.Fprintln(out, "Issues:")
		for _, issue := range g.Issues() {
			ids := trace.IssueArtifacts(g, issue)
			fmt.Fprintf(out, "  #%d: %s\n", issue, strings.Join(ids, ", "))
		}
	}

	return nil
}
