package search

import "strings"

// ContentSource supplies file text for scanning. The content cache satisfies
// this; tests substitute in-memory sources.
type ContentSource interface {
	GetOrLoad(path string) (string, error)
}

// Scanner runs the per-tick pipeline: compile the query, scan every indexed
// file's lines, and window each hit for the current terminal width.
type Scanner struct {
	files  []string
	source ContentSource
}

// NewScanner creates a Scanner over an immutable, ordered file set.
func NewScanner(files []string, source ContentSource) *Scanner {
	return &Scanner{files: files, source: source}
}

// Search recomputes the full result sequence for the current query. An empty
// query lists every file once with no highlight spans; a malformed query
// yields exactly the sentinel entry without touching the content source.
// Files that fail to load are skipped for this scan only.
func (s *Scanner) Search(query string, caseInsensitive bool, termWidth int) []ResultEntry {
	if query == "" {
		results := make([]ResultEntry, len(s.files))
		for i, path := range s.files {
			results[i] = ResultEntry{Path: path}
		}
		return results
	}

	re, err := Compile(query, caseInsensitive)
	if err != nil {
		return []ResultEntry{InvalidPatternEntry()}
	}

	budget := WidthBudget(termWidth)
	var results []ResultEntry
	for _, path := range s.files {
		content, err := s.source.GetOrLoad(path)
		if err != nil {
			continue
		}
		for _, line := range splitLines(content) {
			spans := FindMatchSpans(re, line)
			if len(spans) == 0 {
				continue
			}
			display, displaySpans := WindowLine(line, spans, budget)
			results = append(results, ResultEntry{
				Path:    path,
				Display: display,
				Spans:   displaySpans,
			})
		}
	}
	return results
}

// splitLines splits on '\n', trimming a trailing '\r' from each line and
// dropping the empty remainder after a final newline.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.Split(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
