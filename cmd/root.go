// Package cmd provides the root command and CLI setup for errfold.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/errfold/internal/adapter"
	"github.com/mouse-blink/errfold/internal/controller"
	"github.com/mouse-blink/errfold/internal/domain"
	m "github.com/mouse-blink/errfold/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var reportStore adapter.ReportStore
var ui controller.UI

func init() {
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	reportStore = adapter.NewReportStore()
}

// newWorkflow builds the workflow for a command invocation. Declared as a
// variable so command tests can substitute a mock workflow.
var newWorkflow = func(depthGate bool) domain.Workflow {
	var options []domain.ClassifierOption
	if depthGate {
		options = append(options, domain.WithDepthGate())
	}

	return domain.NewWorkflow(fsAdapter, reportStore, ui, domain.NewEngine(options...))
}

var listFlag bool
var parallelFlag int
var shardFlag string
var excludeFlags []string
var reportsOutputDirFlag string
var depthGateFlag bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "errfold [paths...]",
		Short: "Detect error-handling blocks for folding",
		Long:  rootLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(_ *cobra.Command, args []string) error {
			shardIndex, totalShards := parseShardFlag(shardFlag)
			paths := parsePaths(args)

			wf := newWorkflow(depthGateFlag)

			if listFlag {
				return wf.Estimate(domain.EstimateArgs{
					Paths:   paths,
					Exclude: excludeFlags,
				})
			}

			return wf.Scan(domain.ScanArgs{
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
	cmd.Flags().BoolVarP(&listFlag, "list", "l", false, "list source files and detected range counts without persisting")
	cmd.PersistentFlags().IntVarP(&parallelFlag, "parallel", "p", 1, "number of parallel workers")
	cmd.PersistentFlags().StringVarP(&shardFlag, "shard", "s", "", "shard index and total shard count in the format INDEX/TOTAL (e.g., 0/3)")
	cmd.PersistentFlags().StringArrayVarP(&excludeFlags, "exclude", "x", nil, "exclude files matching regex (can be repeated)")
	cmd.PersistentFlags().StringVarP(&reportsOutputDirFlag, "reports-dir", "r", ".errfold-reports", "directory for persisted scan reports")
	cmd.PersistentFlags().BoolVar(&depthGateFlag, "depth-gate", false, "reject shallow blocks unless preceded by a label")

	return cmd
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	if len(paths) == 0 {
		paths = append(paths, m.Path("./..."))
	}

	return paths
}

func parseShardFlag(shard string) (int, int) {
	if shard == "" {
		return 0, 1
	}

	var index, total int

	_, err := fmt.Sscanf(shard, "%d/%d", &index, &total)
	if err != nil || total <= 0 || index < 0 || index >= total {
		return 0, 1
	}

	return index, total
}
