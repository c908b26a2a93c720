// Package cli provides the Cobra-based command tree for the traceability
// validator: the root command runs the full graph validation, with doctor
// and version as supporting commands.
package cli

import (
	"fmt"
	"os"

	"github.com/johnny-rice/shredvardson-dl-starter-sub005/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "traceability",
	Short: "Validate the spec -> plan -> task traceability graph",
	Long: `traceability validates the lineage of engineering artifacts.

Every plan must reference an existing spec, every task an existing plan,
and each tracked issue must have exactly one spec once any plan or task
exists for it. The tool scans the three tier directories, reports every
violation in one pass, and exits non-zero when the graph is invalid —
suitable as a CI gate.`,
	Example: `  # Validate the graph in the conventional directories
  traceability

  # Validate custom directories, errors only
  traceability --specs-dir specs --plans-dir plans --tasks-dir tasks --quiet

  # Inspect directory layout and effective configuration
  traceability doctor`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runCheck,
}

// Execute runs the root command. Fatal errors are printed as a single
// labeled line; validation failures have already rendered their report.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil && !isExitError(err) {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", config.DefaultConfigPath, "Path to config file")
	rootCmd.PersistentFlags().String("specs-dir", "", "Directory containing spec artifacts")
	rootCmd.PersistentFlags().String("plans-dir", "", "Directory containing plan artifacts")
	rootCmd.PersistentFlags().String("tasks-dir", "", "Directory containing task artifacts")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress the summary, print errors only")
}

// loadConfig loads the configuration and applies command-line overrides.
func loadConfig(cmd *cobra.Command) (*config.Configuration, error) {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("specs-dir") {
		cfg.SpecsDir, _ = cmd.Flags().GetString("specs-dir")
	}
	if cmd.Flags().Changed("plans-dir") {
		cfg.PlansDir, _ = cmd.Flags().GetString("plans-dir")
	}
	if cmd.Flags().Changed("tasks-dir") {
		cfg.TasksDir, _ = cmd.Flags().GetString("tasks-dir")
	}
	if cmd.Flags().Changed("no-color") {
		cfg.NoColor, _ = cmd.Flags().GetBool("no-color")
	}
	if cmd.Flags().Changed("quiet") {
		cfg.Quiet, _ = cmd.Flags().GetBool("quiet")
	}

	return cfg, nil
}
