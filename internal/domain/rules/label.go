package rules

import "regexp"

// labelSuffix matches a trailing identifier followed by a colon, e.g. the
// "err:" and "cleanup:" sections gotos jump to.
var labelSuffix = regexp.MustCompile(`(?:^|\s)[A-Za-z_]\w*:\s*$`)

// IsLabel reports whether the trimmed line ends with a label-like suffix.
func IsLabel(trimmed string) bool {
	return labelSuffix.MatchString(trimmed)
}
