package rules

import (
	"regexp"
	"strings"
)

// keywordRule accepts a line that starts with a control-flow keyword and
// matches at least one of the keyword's patterns. The keyword token is
// case-sensitive; sentinel values inside the patterns are not.
type keywordRule struct {
	keyword  string
	patterns []*regexp.Regexp
}

func (r keywordRule) Name() string { return r.keyword }

func (r keywordRule) Match(trimmed string) bool {
	if !strings.HasPrefix(trimmed, r.keyword) {
		return false
	}

	// The keyword must be a whole token ("returned" is not "return").
	rest := trimmed[len(r.keyword):]
	if rest != "" && isIdentChar(rest[0]) {
		return false
	}

	for _, pattern := range r.patterns {
		if pattern.MatchString(trimmed) {
			return true
		}
	}

	return false
}

func isIdentChar(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}

var keywordRules = []Rule{
	keywordRule{
		keyword: "return",
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`^return\s+-\d`),
			regexp.MustCompile(`^return\s+(?i:false|null|nil|undefined|none)\b`),
			regexp.MustCompile(`^return\s+(?:new\s+)?\w*(?i:err|fail)\w*`),
		},
	},
	keywordRule{
		keyword: "throw",
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`^throw\s+\S`),
		},
	},
	keywordRule{
		keyword: "goto",
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`^goto\s+[A-Za-z_]\w*`),
		},
	},
	keywordRule{
		keyword: "break",
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`^break\s*;?\s*$`),
		},
	},
	keywordRule{
		keyword: "continue",
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`^continue\s*;?\s*$`),
		},
	},
}

// Keywords returns the ordered control-flow keyword rule set.
func Keywords() []Rule {
	return keywordRules
}
