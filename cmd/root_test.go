package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/errfold/internal/domain"
	m "github.com/mouse-blink/errfold/internal/model"
)

func newTestRootCmd() *bytes.Buffer {
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)

	return buf
}

func resetFlags() {
	listFlag = false
	parallelFlag = 1
	shardFlag = ""
	excludeFlags = nil
	reportsOutputDirFlag = ".errfold-reports"
	depthGateFlag = false
}

func TestRootCmd_ScansByDefault(t *testing.T) {
	defer resetFlags()
	newTestRootCmd()

	wf := new(mockWorkflow)
	withMockWorkflow(t, wf)

	wf.On("Scan", mock.MatchedBy(func(args domain.ScanArgs) bool {
		return len(args.Paths) == 1 && args.Paths[0] == m.Path("./src") &&
			args.Reports == m.Path(".errfold-reports") &&
			args.Threads == 1 &&
			args.TotalShardCount == 1
	})).Return(nil)

	rootCmd.SetArgs([]string{"./src"})
	require.NoError(t, rootCmd.Execute())
	wf.AssertExpectations(t)
}

func TestRootCmd_ListFlagEstimates(t *testing.T) {
	defer resetFlags()
	newTestRootCmd()

	wf := new(mockWorkflow)
	withMockWorkflow(t, wf)

	wf.On("Estimate", mock.MatchedBy(func(args domain.EstimateArgs) bool {
		return len(args.Paths) == 1 && args.Paths[0] == m.Path("./...")
	})).Return(nil)

	rootCmd.SetArgs([]string{"--list"})
	require.NoError(t, rootCmd.Execute())
	wf.AssertExpectations(t)
}

func TestRootCmd_ParallelAndShardFlags(t *testing.T) {
	defer resetFlags()
	newTestRootCmd()

	wf := new(mockWorkflow)
	withMockWorkflow(t, wf)

	wf.On("Scan", mock.MatchedBy(func(args domain.ScanArgs) bool {
		return args.Threads == 4 && args.ShardIndex == 1 && args.TotalShardCount == 3
	})).Return(nil)

	rootCmd.SetArgs([]string{"-p", "4", "-s", "1/3", "./src"})
	require.NoError(t, rootCmd.Execute())
	wf.AssertExpectations(t)
}

func TestParsePaths(t *testing.T) {
	assert.Equal(t, []m.Path{"./..."}, parsePaths(nil))
	assert.Equal(t, []m.Path{"a", "b/..."}, parsePaths([]string{"a", "b/..."}))
}

func TestParseShardFlag(t *testing.T) {
	tests := []struct {
		name      string
		shard     string
		wantIndex int
		wantTotal int
	}{
		{"empty", "", 0, 1},
		{"valid", "1/3", 1, 3},
		{"index out of range", "3/3", 0, 1},
		{"negative index", "-1/3", 0, 1},
		{"zero total", "0/0", 0, 1},
		{"garbage", "abc", 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			index, total := parseShardFlag(tt.shard)
			assert.Equal(t, tt.wantIndex, index)
			assert.Equal(t, tt.wantTotal, total)
		})
	}
}
