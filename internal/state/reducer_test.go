package state

import "testing"

func newTestState() *SessionState {
	return NewSessionState(80, 24)
}

func TestQueryCharAppends(t *testing.T) {
	state := newTestState()
	reducer := NewSessionReducer()

	for _, ch := range "wor" {
		if !reducer.Reduce(state, QueryCharAction{Char: ch}) {
			t.Fatalf("char action not handled")
		}
	}
	if state.Query != "wor" {
		t.Fatalf("expected query %q, got %q", "wor", state.Query)
	}
}

func TestQueryBackspace(t *testing.T) {
	state := newTestState()
	reducer := NewSessionReducer()

	state.Query = "abc"
	reducer.Reduce(state, QueryBackspaceAction{})
	if state.Query != "ab" {
		t.Fatalf("expected %q, got %q", "ab", state.Query)
	}
}

func TestQueryBackspaceEmptyIsNoop(t *testing.T) {
	state := newTestState()
	reducer := NewSessionReducer()

	reducer.Reduce(state, QueryBackspaceAction{})
	if state.Query != "" {
		t.Fatalf("backspace on empty query changed it to %q", state.Query)
	}
}

func TestQueryBackspaceRemovesWholeRune(t *testing.T) {
	state := newTestState()
	reducer := NewSessionReducer()

	state.Query = "añ"
	reducer.Reduce(state, QueryBackspaceAction{})
	if state.Query != "a" {
		t.Fatalf("expected multi-byte rune removed, got %q", state.Query)
	}
}

func TestCommitAdvancesRowsAndResetsQuery(t *testing.T) {
	state := newTestState()
	reducer := NewSessionReducer()

	state.Query = "wor"
	state.Results = []ResultEntry{
		{Path: "a.txt", Display: "hello world"},
		{Path: "b.txt", Display: "world again"},
	}
	state.Rendered = state.Results
	prevResultsRow := state.ResultsRow

	reducer.Reduce(state, CommitAction{})

	if state.Query != "" {
		t.Fatalf("commit must reset the query, got %q", state.Query)
	}
	if state.Results != nil || state.Rendered != nil {
		t.Fatalf("commit must clear result sequences")
	}
	wantPrompt := prevResultsRow + 2
	if state.PromptRow != wantPrompt {
		t.Fatalf("expected prompt row %d, got %d", wantPrompt, state.PromptRow)
	}
	if state.ResultsRow != state.PromptRow+2 {
		t.Fatalf("expected results row %d, got %d", state.PromptRow+2, state.ResultsRow)
	}
}

func TestCommitClampsToVisibleRows(t *testing.T) {
	state := NewSessionState(80, 10) // ResultsRow 2, 7 visible rows
	reducer := NewSessionReducer()

	for i := 0; i < 50; i++ {
		state.Results = append(state.Results, ResultEntry{Path: "a.txt", Display: "x"})
	}
	visible := state.VisibleRows()

	reducer.Reduce(state, CommitAction{})

	if state.PromptRow != 2+visible {
		t.Fatalf("advance must clamp to %d rendered rows, prompt at %d", visible, state.PromptRow)
	}
}

func TestResizeUpdatesDimensionsAndForcesRedraw(t *testing.T) {
	state := newTestState()
	reducer := NewSessionReducer()

	state.Rendered = []ResultEntry{{Path: "a.txt"}}
	reducer.Reduce(state, ResizeAction{Width: 100, Height: 40})

	if state.ScreenWidth != 100 || state.ScreenHeight != 40 {
		t.Fatalf("dimensions not updated: %dx%d", state.ScreenWidth, state.ScreenHeight)
	}
	if state.Rendered != nil {
		t.Fatalf("resize must invalidate the rendered snapshot")
	}
}

func TestVisibleRowsNeverNegative(t *testing.T) {
	state := NewSessionState(80, 2)
	if got := state.VisibleRows(); got != 0 {
		t.Fatalf("expected 0 visible rows on tiny screen, got %d", got)
	}
}

func TestExitRowPlacement(t *testing.T) {
	state := NewSessionState(80, 24)

	state.Results = []ResultEntry{{Path: "a.txt"}, {Path: "b.txt"}}
	if got := state.ExitRow(); got != state.ResultsRow+2 {
		t.Fatalf("expected exit just below results, got %d", got)
	}

	state.Results = nil
	for i := 0; i < 100; i++ {
		state.Results = append(state.Results, ResultEntry{Path: "a.txt"})
	}
	if got := state.ExitRow(); got != 22 {
		t.Fatalf("full screen of results should exit at height-2, got %d", got)
	}
}
