package search

import (
	"errors"
	"regexp"
)

// ErrInvalidPattern marks queries that fail to compile. The session turns it
// into the sentinel result entry instead of aborting the tick.
var ErrInvalidPattern = errors.New("invalid regex pattern")

// Compile builds the matcher for one tick. Queries change on every keystroke,
// so the pattern is recompiled each time rather than cached.
func Compile(pattern string, caseInsensitive bool) (*regexp.Regexp, error) {
	if caseInsensitive {
		pattern = "(?i)" + pattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, ErrInvalidPattern
	}
	return re, nil
}
