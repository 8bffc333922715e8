package state

// Action is the base interface for all session mutations
type Action interface{}

// ===== QUERY ACTIONS =====

type QueryCharAction struct {
	Char rune
}
type QueryBackspaceAction struct{}

// CommitAction freezes the current result block on screen and starts a fresh
// query below it.
type CommitAction struct{}

// ===== VIEW ACTIONS =====

type ResizeAction struct {
	Width  int
	Height int
}

// ===== APPLICATION ACTIONS =====

type QuitAction struct{}
