package controller

import "time"

// tickMsg drives the selected-row scroll animation.
type tickMsg time.Time

// fileItem is one file row in the report list.
type fileItem struct {
	path   string
	count  int
	ranges []string
}

func (f fileItem) FilterValue() string {
	return f.path
}
