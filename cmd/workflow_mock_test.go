package cmd

import (
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/mouse-blink/errfold/internal/domain"
)

// mockWorkflow substitutes the real workflow in command tests.
type mockWorkflow struct {
	mock.Mock
}

func (w *mockWorkflow) Scan(args domain.ScanArgs) error {
	return w.Called(args).Error(0)
}

func (w *mockWorkflow) Estimate(args domain.EstimateArgs) error {
	return w.Called(args).Error(0)
}

func (w *mockWorkflow) View(args domain.ViewArgs) error {
	return w.Called(args).Error(0)
}

// withMockWorkflow swaps the workflow factory for the duration of a test.
func withMockWorkflow(t *testing.T, wf *mockWorkflow) {
	t.Helper()

	original := newWorkflow
	newWorkflow = func(_ bool) domain.Workflow { return wf }

	t.Cleanup(func() {
		newWorkflow = original
	})
}
