package controller

import (
	"bytes"
	"fmt"
	"sort"

	m "github.com/mouse-blink/errfold/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(_ ...StartOption) error {
	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {

}

// DisplayEstimation prints per-file range counts or the estimation error.
func (s *SimpleUI) DisplayEstimation(reports []m.FileReport, err error) error {
	if err != nil {
		s.printf("estimation error: %v\n", err)
		return err
	}

	s.renderTable(reports)

	return nil
}

// DisplayConcurrencyInfo shows concurrency and shard settings.
func (s *SimpleUI) DisplayConcurrencyInfo(threads int, shardIndex int, shardCount int) {
	if shardCount > 1 {
		s.printf("Scanning shard %d/%d with %d worker(s)\n", shardIndex, shardCount, threads)
		return
	}

	s.printf("Scanning with %d worker(s)\n", threads)
}

// DisplayFileScanned reports a completed file.
func (s *SimpleUI) DisplayFileScanned(report m.FileReport) {
	s.printf("Scanned %s: %d range(s)\n", report.Path, len(report.Ranges))
}

// DisplaySummary prints the scan summary table.
func (s *SimpleUI) DisplaySummary(result m.ScanResult) error {
	s.renderTable(result.Reports)

	return nil
}

// DisplayReports prints stored reports with their individual ranges.
func (s *SimpleUI) DisplayReports(reports []m.FileReport) error {
	for _, report := range sortedByPath(reports) {
		s.printf("%s (%s): %d range(s)\n", report.Path, report.Language, len(report.Ranges))

		for _, r := range report.Ranges {
			s.printf("  lines %d-%d\n", r.StartLine, r.EndLine)
		}
	}

	return nil
}

func (s *SimpleUI) renderTable(reports []m.FileReport) {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Ranges"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	total := 0

	sorted := sortedByPath(reports)
	for _, report := range sorted {
		table.Append([]string{string(report.Path), fmt.Sprintf("%d", len(report.Ranges))})

		total += len(report.Ranges)
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(sorted)),
		fmt.Sprintf("%d", total),
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())
}

func sortedByPath(reports []m.FileReport) []m.FileReport {
	sorted := make([]m.FileReport, len(reports))
	copy(sorted, reports)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Path < sorted[j].Path
	})

	return sorted
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
