// Package rules provides the pattern tables used to recognize
// error-handling code in raw source lines.
package rules

// Rule matches a single trimmed source line against one heuristic shape.
// Rules are stateless and safe for concurrent use once constructed.
type Rule interface {
	// Name identifies the rule for debugging and reporting.
	Name() string

	// Match reports whether the trimmed line satisfies the rule.
	Match(trimmed string) bool
}
