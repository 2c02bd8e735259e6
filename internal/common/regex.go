package common

import (
	"regexp"
	"strings"
)

// CompileInsensitive compiles a pattern case-insensitively, prepending (?i)
// unless the pattern already carries it.
func CompileInsensitive(pattern string) (*regexp.Regexp, error) {
	if !strings.HasPrefix(pattern, "(?i)") {
		pattern = "(?i)" + pattern
	}
	return regexp.Compile(pattern)
}
