package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/errfold/internal/domain"
	m "github.com/mouse-blink/errfold/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "View previously persisted folding ranges",
		Long:  viewLongDescription,
		Args:  cobra.ExactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			return newWorkflow(depthGateFlag).View(domain.ViewArgs{
				Reports: m.Path(reportsOutputDirFlag),
			})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
