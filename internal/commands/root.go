package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dompet-dev/dompet/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var dataDir string

	rootCmd := &cobra.Command{
		Use:     "dompet",
		Short:   "Personal finance tracking for transactions, investments and savings goals",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".", "data directory")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newTxCommand(&dataDir))
	rootCmd.AddCommand(newInvestCommand(&dataDir))
	rootCmd.AddCommand(newGoalCommand(&dataDir))
	rootCmd.AddCommand(newCategoryCommand(&dataDir))
	rootCmd.AddCommand(newReportCommand(&dataDir))
	rootCmd.AddCommand(newAdviseCommand(&dataDir))
	rootCmd.AddCommand(newWatchCommand(&dataDir))

	return rootCmd
}
