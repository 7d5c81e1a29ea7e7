package domain

import (
	"sort"
	"strings"

	m "github.com/mouse-blink/errfold/internal/model"
)

// Engine turns raw document text into folding ranges for error-handling
// blocks. It is a pure function of its input: no state survives between
// invocations and concurrent calls are independent.
type Engine interface {
	Analyze(text string) []m.FoldingRange
	AnalyzeLines(lines []string) []m.FoldingRange
}

type engine struct {
	classifier *Classifier
}

// NewEngine creates an Engine with the given classifier options.
func NewEngine(options ...ClassifierOption) Engine {
	return &engine{classifier: NewClassifier(options...)}
}

// Analyze splits text into logical lines and delegates to AnalyzeLines.
func (e *engine) Analyze(text string) []m.FoldingRange {
	return e.AnalyzeLines(SplitLines(text))
}

// AnalyzeLines segments the lines into blocks, classifies each block and
// returns the accepted ranges sorted by start line.
func (e *engine) AnalyzeLines(lines []string) []m.FoldingRange {
	var ranges []m.FoldingRange

	for _, block := range Segment(lines) {
		if suppressed(block, lines) {
			continue
		}

		if !e.classifier.Classify(block, lines) {
			continue
		}

		endColumn := 0
		if block.EndLine < len(lines) {
			endColumn = len(lines[block.EndLine])
		}

		ranges = append(ranges, m.FoldingRange{
			StartLine: block.StartLine,
			EndLine:   block.EndLine,
			EndColumn: endColumn,
		})
	}

	sort.Slice(ranges, func(i, j int) bool {
		return ranges[i].StartLine < ranges[j].StartLine
	})

	return ranges
}

// SplitLines breaks document text into logical lines, recognizing both LF
// and CRLF endings.
func SplitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	return lines
}
