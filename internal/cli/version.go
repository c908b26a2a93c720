package cli

import (
	"fmt"

	"github.com/johnny-rice/shredvardson-dl-starter-sub005/internal/build"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "traceability %s\n", build.Version)
		fmt.Fprintf(out, "  commit: %s\n", build.Commit)
		fmt.Fprintf(out, "  built:  %s\n", build.BuildDate)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
