package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/errfold/internal/domain"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [paths...]",
		Short: "List source files and detected range counts",
		Long:  listLongDescription,
		RunE: func(_ *cobra.Command, args []string) error {
			return newWorkflow(depthGateFlag).Estimate(domain.EstimateArgs{
				Paths:   parsePaths(args),
				Exclude: excludeFlags,
			})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
