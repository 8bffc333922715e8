package search

import "regexp"

// MatchSpan is a half-open byte interval [Start, End) into a line.
type MatchSpan struct {
	Start int
	End   int
}

// FindMatchSpans returns every non-overlapping, leftmost-first match of re in
// line as byte spans. Adjacent searches resume at the end of the previous
// match, so overlapping candidates collapse into the leftmost hit.
func FindMatchSpans(re *regexp.Regexp, line string) []MatchSpan {
	indexes := re.FindAllStringIndex(line, -1)
	if len(indexes) == 0 {
		return nil
	}
	spans := make([]MatchSpan, len(indexes))
	for i, idx := range indexes {
		spans[i] = MatchSpan{Start: idx[0], End: idx[1]}
	}
	return spans
}
