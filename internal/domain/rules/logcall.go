package rules

import "regexp"

// logCallRule recognizes a call-like expression whose quoted string
// argument mentions a failure. The error vocabulary is matched
// case-insensitively anywhere inside the literal.
type logCallRule struct {
	name    string
	pattern *regexp.Regexp
}

func (r logCallRule) Name() string { return r.name }

func (r logCallRule) Match(trimmed string) bool {
	return r.pattern.MatchString(trimmed)
}

var logCallRules = []Rule{
	logCallRule{
		name: "log-error-word",
		pattern: regexp.MustCompile(
			`[\w.$]+\s*\(.*["'][^"']*(?i:error|fail|invalid|unable|cannot|denied|fatal|exception|timed out)[^"']*["']`,
		),
	},
}

// LogCalls returns the logging-call rule set.
func LogCalls() []Rule {
	return logCallRules
}
