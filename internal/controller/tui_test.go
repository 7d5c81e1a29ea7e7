package controller

import (
	"bytes"
	"errors"
	"testing"

	m "github.com/mouse-blink/errfold/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTUI_DisplayFileScanned(t *testing.T) {
	buf := &bytes.Buffer{}
	ui := NewTUI(buf)

	ui.DisplayFileScanned(m.FileReport{
		Path:   "src/app.js",
		Ranges: []m.FoldingRange{{StartLine: 1, EndLine: 2}},
	})

	assert.Contains(t, buf.String(), "Scanned src/app.js: 1 range(s)")
}

func TestTUI_DisplaySummary(t *testing.T) {
	buf := &bytes.Buffer{}
	ui := NewTUI(buf)

	result := m.ScanResult{
		Reports: []m.FileReport{
			{Path: "a.js", Ranges: []m.FoldingRange{{StartLine: 1, EndLine: 2}}},
			{Path: "b.js"},
		},
	}

	require.NoError(t, ui.DisplaySummary(result))
	assert.Contains(t, buf.String(), "Found 1 foldable range(s) across 2 file(s)")
}

func TestTUI_DisplayEstimationError(t *testing.T) {
	buf := &bytes.Buffer{}
	ui := NewTUI(buf)

	wantErr := errors.New("no such path")
	err := ui.DisplayEstimation(nil, wantErr)

	require.ErrorIs(t, err, wantErr)
	assert.Contains(t, buf.String(), "estimation error")
}

func TestTUI_SmallReportListPrintsStatically(t *testing.T) {
	buf := &bytes.Buffer{}
	ui := NewTUI(buf)

	reports := []m.FileReport{
		{Path: "b.js", Ranges: []m.FoldingRange{{StartLine: 1, EndLine: 2}}},
		{Path: "a.js"},
	}

	require.NoError(t, ui.DisplayReports(reports))

	out := buf.String()
	assert.Contains(t, out, "a.js")
	assert.Contains(t, out, "b.js")

	// Sorted by path.
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("a.js")), bytes.Index(buf.Bytes(), []byte("b.js")))
}

func TestIsTTY_NonFileWriter(t *testing.T) {
	assert.False(t, IsTTY(&bytes.Buffer{}))
}
