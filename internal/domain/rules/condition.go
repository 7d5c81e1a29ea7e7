package rules

import "regexp"

// conditionRule recognizes one guard-style condition shape on the line
// that opens a block. Sentinel values (null, NULL, nil, undefined) match
// case-insensitively; the conditional keyword itself must be lowercase.
type conditionRule struct {
	name    string
	pattern *regexp.Regexp
}

func (r conditionRule) Name() string { return r.name }

func (r conditionRule) Match(trimmed string) bool {
	return r.pattern.MatchString(trimmed)
}

// condPrefix limits guard matching to lines that actually open a
// conditional. Loop headers and plain expressions are not guards.
const condPrefix = `^(?:if|else if|elif)\b`

var conditionRules = []Rule{
	conditionRule{
		name:    "null-compare",
		pattern: regexp.MustCompile(condPrefix + `.*[!=]==?\s*(?i:null|nil|undefined|none)\b`),
	},
	conditionRule{
		name:    "null-compare-reversed",
		pattern: regexp.MustCompile(condPrefix + `.*\b(?i:null|nil|undefined|none)\s*[!=]==?`),
	},
	conditionRule{
		name:    "numeric-threshold",
		pattern: regexp.MustCompile(condPrefix + `.*(?:<=?|>=?|[!=]==?)\s*-?\d`),
	},
	conditionRule{
		name:    "empty-check",
		pattern: regexp.MustCompile(condPrefix + `.*(?:\.(?i:is_?empty|empty|length|size|count)\b|\blen\s*\(|[!=]==?\s*(?:""|''))`),
	},
}

// Conditions returns the ordered guard-condition rule set.
func Conditions() []Rule {
	return conditionRules
}
