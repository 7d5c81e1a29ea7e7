package domain

import (
	"strings"

	m "github.com/mouse-blink/errfold/internal/model"
)

// suppressDirective excludes a block from the results when it appears in a
// comment on the block's opening line or on the comment line directly above
// it.
const suppressDirective = "errfold:ignore"

// suppressed reports whether the block carries an ignore directive.
func suppressed(block m.CodeBlock, lines []string) bool {
	// Opening line first, then at most one comment line above it.
	for i := block.StartLine - 1; i >= 0 && i >= block.StartLine-2; i-- {
		if i >= len(lines) {
			continue
		}

		if strings.Contains(lines[i], suppressDirective) {
			return true
		}
	}

	return false
}
