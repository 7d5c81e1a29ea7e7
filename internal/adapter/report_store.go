package adapter

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	m "github.com/mouse-blink/errfold/internal/model"
)

const reportFileName = "ranges.json"

// ReportStore persists and retrieves scan results.
type ReportStore interface {
	SaveResult(dir m.Path, result m.ScanResult) error
	LoadResult(dir m.Path) (m.ScanResult, error)
}

type reportStore struct{}

// NewReportStore constructs a ReportStore backed by JSON files.
func NewReportStore() ReportStore {
	return &reportStore{}
}

func (rs *reportStore) SaveResult(dir m.Path, result m.ScanResult) error {
	if err := os.MkdirAll(string(dir), 0o750); err != nil {
		return fmt.Errorf("failed to create reports dir: %w", err)
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode reports: %w", err)
	}

	path := filepath.Join(string(dir), reportFileName)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}

func (rs *reportStore) LoadResult(dir m.Path) (m.ScanResult, error) {
	path := filepath.Join(string(dir), reportFileName)

	data, err := os.ReadFile(path)
	if err != nil {
		return m.ScanResult{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var result m.ScanResult
	if err := json.Unmarshal(data, &result); err != nil {
		return m.ScanResult{}, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	return result, nil
}
