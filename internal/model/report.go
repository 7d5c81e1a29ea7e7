package model

// FileReport holds the folding ranges detected in a single source file.
type FileReport struct {
	Path     Path           `json:"path"`
	Hash     string         `json:"hash"`
	Language Language       `json:"language"`
	Ranges   []FoldingRange `json:"ranges"`
}

// ScanResult aggregates the reports of one scan invocation.
type ScanResult struct {
	Reports []FileReport `json:"reports"`
}

// TotalRanges returns the number of detected ranges across all files.
func (r ScanResult) TotalRanges() int {
	total := 0
	for _, report := range r.Reports {
		total += len(report.Ranges)
	}

	return total
}
