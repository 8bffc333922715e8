package state

import "unicode/utf8"

// SessionReducer applies actions to the session state. Quit is not handled
// here; the application loop owns termination.
type SessionReducer struct{}

// NewSessionReducer creates a reducer.
func NewSessionReducer() *SessionReducer {
	return &SessionReducer{}
}

// Reduce mutates state according to action and reports whether it handled it.
func (r *SessionReducer) Reduce(state *SessionState, action Action) bool {
	switch a := action.(type) {
	case QueryCharAction:
		state.Query += string(a.Char)
		return true
	case QueryBackspaceAction:
		r.backspace(state)
		return true
	case CommitAction:
		r.commit(state)
		return true
	case ResizeAction:
		state.ScreenWidth = a.Width
		state.ScreenHeight = a.Height
		state.Rendered = nil
		return true
	default:
		return false
	}
}

// backspace removes the last rune of the query; a no-op on an empty query.
func (r *SessionReducer) backspace(state *SessionState) {
	if state.Query == "" {
		return
	}
	_, size := utf8.DecodeLastRuneInString(state.Query)
	state.Query = state.Query[:len(state.Query)-size]
}

// commit freezes the rendered block where it stands and moves the prompt and
// results region below it. The advance is the number of entries actually
// rendered, clamped to the visible area.
func (r *SessionReducer) commit(state *SessionState) {
	rendered := state.RenderedCount()
	state.PromptRow = state.ResultsRow + rendered
	state.ResultsRow = state.PromptRow + promptResultGap
	state.Query = ""
	state.Results = nil
	state.Rendered = nil
}
