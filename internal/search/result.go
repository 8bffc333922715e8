package search

// InvalidPatternMessage is the display line of the sentinel entry shown while
// the query does not compile.
const InvalidPatternMessage = "Invalid regex pattern"

// ResultEntry is one render-ready row: the source file, the (possibly
// windowed) display line, and highlight spans in display coordinates.
type ResultEntry struct {
	Path    string
	Display string
	Spans   []MatchSpan
}

// InvalidPatternEntry returns the sentinel entry for a malformed query.
func InvalidPatternEntry() ResultEntry {
	return ResultEntry{Display: InvalidPatternMessage}
}

// IsSentinel reports whether the entry stands in for a compile failure rather
// than a real match.
func (e ResultEntry) IsSentinel() bool {
	return e.Path == "" && e.Display == InvalidPatternMessage
}

// EqualSequences reports structural equality of two result sequences. The
// session only redraws when this returns false.
func EqualSequences(a, b []ResultEntry) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !equalEntries(a[i], b[i]) {
			return false
		}
	}
	return true
}

func equalEntries(a, b ResultEntry) bool {
	if a.Path != b.Path || a.Display != b.Display || len(a.Spans) != len(b.Spans) {
		return false
	}
	for i := range a.Spans {
		if a.Spans[i] != b.Spans[i] {
			return false
		}
	}
	return true
}
