package controller

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	m "github.com/mouse-blink/errfold/internal/model"
)

// interactiveThreshold is the number of rows below which the TUI prints a
// static view instead of starting a Bubble Tea program.
const interactiveThreshold = 20

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output io.Writer
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start initializes the UI.
func (t *TUI) Start(_ ...StartOption) error {
	return nil
}

// Close finalizes the UI.
func (t *TUI) Close() {

}

// DisplayEstimation shows per-file range counts, interactively when the
// list is long enough to need paging.
func (t *TUI) DisplayEstimation(reports []m.FileReport, err error) error {
	if err != nil {
		_, _ = fmt.Fprintf(t.output, "estimation error: %v\n", err)

		return err
	}

	return t.browse(reports, "Detected error-handling ranges")
}

// DisplayConcurrencyInfo shows concurrency and shard settings.
func (t *TUI) DisplayConcurrencyInfo(threads int, shardIndex int, shardCount int) {
	if shardCount > 1 {
		_, _ = fmt.Fprintf(t.output, "Scanning shard %d/%d with %d worker(s)\n", shardIndex, shardCount, threads)

		return
	}

	_, _ = fmt.Fprintf(t.output, "Scanning with %d worker(s)\n", threads)
}

// DisplayFileScanned reports a completed file.
func (t *TUI) DisplayFileScanned(report m.FileReport) {
	_, _ = fmt.Fprintf(t.output, "Scanned %s: %d range(s)\n", report.Path, len(report.Ranges))
}

// DisplaySummary prints totals after a scan.
func (t *TUI) DisplaySummary(result m.ScanResult) error {
	_, _ = fmt.Fprintf(t.output, "Found %d foldable range(s) across %d file(s)\n",
		result.TotalRanges(), len(result.Reports))

	return nil
}

// DisplayReports browses stored reports interactively.
func (t *TUI) DisplayReports(reports []m.FileReport) error {
	return t.browse(reports, "Stored error-handling ranges")
}

func (t *TUI) browse(reports []m.FileReport, title string) error {
	sorted := make([]m.FileReport, len(reports))
	copy(sorted, reports)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Path < sorted[j].Path
	})

	items := make([]list.Item, 0, len(sorted))

	for _, report := range sorted {
		ranges := make([]string, 0, len(report.Ranges))
		for _, r := range report.Ranges {
			ranges = append(ranges, fmt.Sprintf("lines %d-%d", r.StartLine, r.EndLine))
		}

		items = append(items, fileItem{
			path:   string(report.Path),
			count:  len(report.Ranges),
			ranges: ranges,
		})
	}

	model := newReportModel(items, title)

	// Get initial terminal size
	if f, ok := t.output.(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			model.width = width
			model.height = height
			model.files.SetSize(width, height-2)
		}
	}

	// If the list is small, just print and exit.
	if len(items) < interactiveThreshold {
		for _, item := range items {
			file, ok := item.(fileItem)
			if !ok {
				continue
			}

			_, _ = fmt.Fprintf(t.output, "%6d  %s\n", file.count, file.path)
		}

		return nil
	}

	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}
