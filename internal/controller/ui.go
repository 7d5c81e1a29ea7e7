// Package controller provides output adapters for displaying scan results.
package controller

import (
	"io"
	"os"

	m "github.com/mouse-blink/errfold/internal/model"
	"github.com/spf13/cobra"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeEstimate StartMode = iota
	ModeScan
	ModeView
)

// StartOption is a functional option for the Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithEstimateMode sets the UI to estimation mode.
func WithEstimateMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeEstimate
	}
}

// WithScanMode sets the UI to scan execution mode.
func WithScanMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeScan
	}
}

// WithViewMode sets the UI to report viewing mode.
func WithViewMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeView
	}
}

// UI defines the interface for displaying scan progress and results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(options ...StartOption) error
	Close()
	DisplayEstimation(reports []m.FileReport, err error) error
	DisplayConcurrencyInfo(threads int, shardIndex int, shardCount int)
	DisplayFileScanned(report m.FileReport)
	DisplaySummary(result m.ScanResult) error
	DisplayReports(reports []m.FileReport) error
}

// NewUI creates a UI based on whether TTY mode is enabled.
// When useTTY is true it returns a TUI (Bubble Tea), otherwise a SimpleUI.
func NewUI(cmd *cobra.Command, useTTY bool) UI {
	if useTTY {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY checks if the given writer is an interactive terminal. Returns
// false when output is redirected to a file or pipe.
func IsTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	fileInfo, err := file.Stat()
	if err != nil {
		return false
	}

	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}
