package domain

import (
	"fmt"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/errfold/internal/adapter"
	"github.com/mouse-blink/errfold/internal/controller"
	m "github.com/mouse-blink/errfold/internal/model"
)

// EstimateArgs configures a file-listing pass.
type EstimateArgs struct {
	Paths   []m.Path
	Exclude []string
}

// ScanArgs configures a full scan.
type ScanArgs struct {
	EstimateArgs
	Reports         m.Path
	Threads         int
	ShardIndex      int
	TotalShardCount int
}

// ViewArgs configures report viewing.
type ViewArgs struct {
	Reports m.Path
}

// Workflow ties the filesystem, the engine, the report store and the UI
// together for the CLI commands.
type Workflow interface {
	// Scan analyzes all matching files, persists the reports and shows a
	// summary.
	Scan(args ScanArgs) error

	// Estimate lists matching files with their detected range counts
	// without persisting anything.
	Estimate(args EstimateArgs) error

	// View renders previously persisted reports.
	View(args ViewArgs) error
}

type workflow struct {
	fs     adapter.SourceFSAdapter
	store  adapter.ReportStore
	ui     controller.UI
	engine Engine
}

// NewWorkflow creates a Workflow wired to the provided collaborators.
func NewWorkflow(fs adapter.SourceFSAdapter, store adapter.ReportStore, ui controller.UI, engine Engine) Workflow {
	return &workflow{
		fs:     fs,
		store:  store,
		ui:     ui,
		engine: engine,
	}
}

func (w *workflow) Scan(args ScanArgs) error {
	sources, err := w.fs.Get(args.Paths, args.Exclude)
	if err != nil {
		return fmt.Errorf("failed to get sources: %w", err)
	}

	totalShards := args.TotalShardCount
	if totalShards <= 1 {
		totalShards = 1
	}

	sources = shardSources(sources, args.ShardIndex, totalShards)

	threads := args.Threads
	if threads <= 0 {
		threads = 1
	}

	if err := w.ui.Start(controller.WithScanMode()); err != nil {
		return err
	}
	defer w.ui.Close()

	w.ui.DisplayConcurrencyInfo(threads, args.ShardIndex, totalShards)

	reports, err := w.analyzeAll(sources, threads)
	if err != nil {
		return err
	}

	result := m.ScanResult{Reports: reports}

	if args.Reports != "" {
		if err := w.store.SaveResult(args.Reports, result); err != nil {
			return fmt.Errorf("failed to save reports: %w", err)
		}
	}

	return w.ui.DisplaySummary(result)
}

func (w *workflow) Estimate(args EstimateArgs) error {
	sources, err := w.fs.Get(args.Paths, args.Exclude)
	if err != nil {
		return w.ui.DisplayEstimation(nil, err)
	}

	reports, err := w.analyzeAll(sources, 1)

	return w.ui.DisplayEstimation(reports, err)
}

func (w *workflow) View(args ViewArgs) error {
	result, err := w.store.LoadResult(args.Reports)
	if err != nil {
		return fmt.Errorf("failed to load reports: %w", err)
	}

	if err := w.ui.Start(controller.WithViewMode()); err != nil {
		return err
	}
	defer w.ui.Close()

	return w.ui.DisplayReports(result.Reports)
}

// analyzeAll runs the engine over every source with a bounded worker pool.
// Report order follows source order regardless of completion order.
func (w *workflow) analyzeAll(sources []m.Source, threads int) ([]m.FileReport, error) {
	reports := make([]m.FileReport, len(sources))

	var mu sync.Mutex

	var g errgroup.Group

	g.SetLimit(threads)

	for i, source := range sources {
		g.Go(func() error {
			report, err := w.analyzeOne(source)
			if err != nil {
				return err
			}

			mu.Lock()
			reports[i] = report
			mu.Unlock()

			w.ui.DisplayFileScanned(report)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return reports, nil
}

func (w *workflow) analyzeOne(source m.Source) (m.FileReport, error) {
	if source.Origin == nil {
		return m.FileReport{}, fmt.Errorf("source origin is nil")
	}

	content, err := w.fs.ReadFile(source.Origin.Path)
	if err != nil {
		return m.FileReport{}, fmt.Errorf("failed to read %s: %w", source.Origin.Path, err)
	}

	return m.FileReport{
		Path:     source.Origin.Path,
		Hash:     source.Origin.Hash,
		Language: source.Language,
		Ranges:   w.engine.Analyze(string(content)),
	}, nil
}

// shardSources keeps every TotalShardCount-th source starting at
// ShardIndex, after sorting by path so shards are stable across machines.
func shardSources(sources []m.Source, shardIndex, totalShards int) []m.Source {
	if totalShards <= 1 {
		return sources
	}

	sorted := make([]m.Source, len(sources))
	copy(sorted, sources)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Origin.Path < sorted[j].Origin.Path
	})

	var sharded []m.Source

	for i, source := range sorted {
		if i%totalShards == shardIndex {
			sharded = append(sharded, source)
		}
	}

	return sharded
}
