package state

import (
	search "github.com/grepscope/grepscope/internal/search"
)

type MatchSpan = search.MatchSpan
type ResultEntry = search.ResultEntry

const (
	// initialPromptRow is where the first prompt is drawn; results leave one
	// blank row under the prompt.
	initialPromptRow = 0
	promptResultGap  = 2
)

// SessionState is the single source of truth for one search session.
type SessionState struct {
	// Query editing
	Query string

	// Results of the current tick and the sequence last handed to the
	// renderer; the renderer is invoked only when they differ.
	Results  []ResultEntry
	Rendered []ResultEntry

	// Row layout. Committed blocks stay above PromptRow and are never
	// redrawn; ResultsRow advances on every commit.
	PromptRow  int
	ResultsRow int

	// Dimensions
	ScreenWidth  int
	ScreenHeight int
}

// NewSessionState returns the initial editing state for a fresh session.
func NewSessionState(width, height int) *SessionState {
	return &SessionState{
		PromptRow:    initialPromptRow,
		ResultsRow:   initialPromptRow + promptResultGap,
		ScreenWidth:  width,
		ScreenHeight: height,
	}
}

// VisibleRows reports how many result rows fit between ResultsRow and the
// bottom of the screen, keeping the last row free.
func (s *SessionState) VisibleRows() int {
	rows := s.ScreenHeight - s.ResultsRow - 1
	if rows < 0 {
		return 0
	}
	return rows
}

// RenderedCount is the number of entries actually drawn this tick: the result
// count clamped to the visible area.
func (s *SessionState) RenderedCount() int {
	n := len(s.Results)
	if max := s.VisibleRows(); n > max {
		return max
	}
	return n
}

// ExitRow is where the cursor lands when the session terminates: just below
// the last rendered entry, or the penultimate screen row when the block
// filled the visible area.
func (s *SessionState) ExitRow() int {
	if len(s.Results) >= s.VisibleRows() {
		row := s.ScreenHeight - 2
		if row < 0 {
			return 0
		}
		return row
	}
	return s.ResultsRow + len(s.Results)
}
