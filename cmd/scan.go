package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/errfold/internal/domain"
	m "github.com/mouse-blink/errfold/internal/model"
)

// scanCmd represents the scan command.
var scanCmd = newScanCmd()

func newScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan [paths...]",
		Short: "Scan source files and persist folding ranges",
		Long:  scanLongDescription,
		RunE: func(_ *cobra.Command, args []string) error {
			shardIndex, totalShards := parseShardFlag(shardFlag)
			paths := parsePaths(args)

			return newWorkflow(depthGateFlag).Scan(domain.ScanArgs{
				EstimateArgs: domain.EstimateArgs{
					Paths:   paths,
					Exclude: excludeFlags,
				},
				Reports:         m.Path(reportsOutputDirFlag),
				Threads:         parallelFlag,
				ShardIndex:      shardIndex,
				TotalShardCount: totalShards,
			})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(scanCmd)
}
