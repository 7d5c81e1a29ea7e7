package domain

import (
	"strings"

	"github.com/mouse-blink/errfold/internal/domain/rules"
	m "github.com/mouse-blink/errfold/internal/model"
)

// shallowIndentLimit is the indentation level at or below which the depth
// gate rejects blocks. Blocks this close to top level are rarely
// narrowly-scoped error branches.
const shallowIndentLimit = 4

// Classifier decides whether a code block is an error-handling branch.
// The rule tables are built once at construction and never mutated, so a
// single Classifier is safe for concurrent use.
type Classifier struct {
	conditions []rules.Rule
	keywords   []rules.Rule
	logCalls   []rules.Rule
	depthGate  bool
}

// ClassifierOption configures a Classifier.
type ClassifierOption func(*Classifier)

// WithDepthGate rejects blocks at or near top level unless the preceding
// line ends with a label. Shallow blocks are unlikely to be error branches;
// labeled sections (e.g. "err:") are a strong signal regardless of depth.
func WithDepthGate() ClassifierOption {
	return func(c *Classifier) {
		c.depthGate = true
	}
}

// NewClassifier constructs a Classifier with the full rule tables.
func NewClassifier(options ...ClassifierOption) *Classifier {
	c := &Classifier{
		conditions: rules.Conditions(),
		keywords:   rules.Keywords(),
		logCalls:   rules.LogCalls(),
	}

	for _, option := range options {
		option(c)
	}

	return c
}

// Classify reports whether the block is an error-handling branch, checking
// in order: the depth gate, the guard on the line preceding the block, and
// finally the block's own statements.
func (c *Classifier) Classify(block m.CodeBlock, lines []string) bool {
	preceding := ""
	if block.StartLine > 0 && block.StartLine-1 < len(lines) {
		preceding = strings.TrimSpace(lines[block.StartLine-1])
	}

	if c.depthGate && block.IndentLevel <= shallowIndentLimit && !rules.IsLabel(preceding) {
		return false
	}

	// A block controlled by a guard is presumed to be the guard's
	// error-handling consequence; its contents are not inspected.
	for _, rule := range c.conditions {
		if rule.Match(preceding) {
			return true
		}
	}

	return c.scanContents(block, lines)
}

// scanContents looks for an error-signaling statement at the block's own
// indentation level. Nested sub-blocks are left to their own classification.
func (c *Classifier) scanContents(block m.CodeBlock, lines []string) bool {
	for i := block.StartLine; i <= block.EndLine && i < len(lines); i++ {
		line := lines[i]
		if skipLine(line) {
			continue
		}

		if indentLevel(line) > block.IndentLevel {
			continue
		}

		trimmed := strings.TrimSpace(line)

		for _, rule := range c.keywords {
			if rule.Match(trimmed) {
				return true
			}
		}

		for _, rule := range c.logCalls {
			if rule.Match(trimmed) {
				return true
			}
		}
	}

	return false
}
