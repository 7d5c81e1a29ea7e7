// Package domain contains the block segmentation and classification engine
// and the scanning workflow built on top of it.
package domain

import (
	"strings"

	m "github.com/mouse-blink/errfold/internal/model"
)

// Segment converts an ordered sequence of source lines into code blocks by
// tracking indentation transitions. It is a single-counter approximation of
// nesting: one start marker is pushed per indentation increase regardless of
// how many levels the jump spans, and one marker is popped per decrease.
// Blocks are emitted in the order their closing boundary is encountered.
//
// Blocks still open at end of input are never emitted; their closing
// boundary cannot be observed by this method.
func Segment(lines []string) []m.CodeBlock {
	var blocks []m.CodeBlock

	var starts []int

	currentIndentLevel := 0

	for i, line := range lines {
		if skipLine(line) {
			continue
		}

		level := indentLevel(line)

		switch {
		case level > currentIndentLevel:
			starts = append(starts, i)
			currentIndentLevel = level

		case level < currentIndentLevel:
			if len(starts) > 0 {
				start := starts[len(starts)-1]
				starts = starts[:len(starts)-1]

				blocks = append(blocks, m.CodeBlock{
					StartLine:   start,
					EndLine:     i - 1,
					IndentLevel: currentIndentLevel,
				})
			}

			currentIndentLevel = level
		}
	}

	return blocks
}

// indentLevel counts leading whitespace characters. Tabs count as one
// character each; there is no tab-width normalization.
func indentLevel(line string) int {
	for i := 0; i < len(line); i++ {
		if line[i] != ' ' && line[i] != '\t' {
			return i
		}
	}

	return len(line)
}

// skipLine reports whether segmentation ignores the line entirely: blank
// lines, line comments and preprocessor directives carry no structure.
func skipLine(line string) bool {
	trimmed := strings.TrimSpace(line)

	return trimmed == "" ||
		strings.HasPrefix(trimmed, "//") ||
		strings.HasPrefix(trimmed, "#")
}
