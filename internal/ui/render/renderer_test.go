package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	searchpkg "github.com/grepscope/grepscope/internal/search"
	statepkg "github.com/grepscope/grepscope/internal/state"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func rowText(screen tcell.Screen, y, width int) string {
	var b strings.Builder
	for x := 0; x < width; x++ {
		ru, _, _, _ := screen.GetContent(x, y)
		b.WriteRune(ru)
	}
	return strings.TrimRight(b.String(), " ")
}

func cellForeground(screen tcell.Screen, x, y int) tcell.Color {
	_, _, style, _ := screen.GetContent(x, y)
	fg, _, _ := style.Decompose()
	return fg
}

func TestRenderPromptEchoesQuery(t *testing.T) {
	screen := newSimScreen(t, 80, 24)
	r := NewRenderer(screen)
	state := statepkg.NewSessionState(80, 24)
	state.Query = "wor"

	r.Render(state)

	if got := rowText(screen, state.PromptRow, 80); got != "Search: wor" {
		t.Fatalf("prompt row reads %q", got)
	}
}

func TestRenderEntryHighlightsMatchSpan(t *testing.T) {
	screen := newSimScreen(t, 80, 24)
	r := NewRenderer(screen)
	state := statepkg.NewSessionState(80, 24)
	state.Results = []statepkg.ResultEntry{
		{Path: "a.txt", Display: "hello world", Spans: []statepkg.MatchSpan{{Start: 6, End: 9}}},
	}

	r.Render(state)

	row := rowText(screen, state.ResultsRow, 80)
	if !strings.HasPrefix(row, "a.txt") {
		t.Fatalf("expected path at row start, got %q", row)
	}
	if !strings.HasSuffix(row, "hello world") {
		t.Fatalf("expected matched text right-aligned, got %q", row)
	}

	theme := GetColorTheme()
	lineStart := 80 - len("hello world")
	if got := cellForeground(screen, lineStart, state.ResultsRow); got != theme.ContextFg {
		t.Fatalf("context cell has fg %v, want %v", got, theme.ContextFg)
	}
	// Byte 6 of "hello world" is the 'w' of the matched span.
	if got := cellForeground(screen, lineStart+6, state.ResultsRow); got != theme.MatchFg {
		t.Fatalf("match cell has fg %v, want %v", got, theme.MatchFg)
	}
	if got := cellForeground(screen, lineStart+9, state.ResultsRow); got != theme.ContextFg {
		t.Fatalf("cell past span has fg %v, want %v", got, theme.ContextFg)
	}
}

func TestRenderSentinelInRed(t *testing.T) {
	screen := newSimScreen(t, 80, 24)
	r := NewRenderer(screen)
	state := statepkg.NewSessionState(80, 24)
	state.Results = []statepkg.ResultEntry{searchpkg.InvalidPatternEntry()}

	r.Render(state)

	if got := rowText(screen, state.ResultsRow, 80); got != searchpkg.InvalidPatternMessage {
		t.Fatalf("sentinel row reads %q", got)
	}
	if got := cellForeground(screen, 0, state.ResultsRow); got != GetColorTheme().ErrorFg {
		t.Fatalf("sentinel fg %v, want red", got)
	}
}

func TestRenderClampsToVisibleRows(t *testing.T) {
	screen := newSimScreen(t, 80, 6)
	r := NewRenderer(screen)
	state := statepkg.NewSessionState(80, 6)
	for i := 0; i < 20; i++ {
		state.Results = append(state.Results, statepkg.ResultEntry{Path: "f.txt", Display: "line"})
	}

	r.Render(state)

	// Bottom row stays free.
	if got := rowText(screen, 5, 80); got != "" {
		t.Fatalf("expected last screen row untouched, got %q", got)
	}
}

func TestRenderLeavesCommittedRowsAlone(t *testing.T) {
	screen := newSimScreen(t, 80, 24)
	r := NewRenderer(screen)
	state := statepkg.NewSessionState(80, 24)
	state.Query = "wor"
	state.Results = []statepkg.ResultEntry{
		{Path: "a.txt", Display: "hello world", Spans: []statepkg.MatchSpan{{Start: 6, End: 9}}},
	}
	r.Render(state)
	committedRow := state.ResultsRow

	reducer := statepkg.NewSessionReducer()
	reducer.Reduce(state, statepkg.CommitAction{})
	r.Render(state)

	if got := rowText(screen, committedRow, 80); !strings.HasSuffix(got, "hello world") {
		t.Fatalf("committed block was disturbed: %q", got)
	}
	if got := rowText(screen, state.PromptRow, 80); got != "Search:" {
		t.Fatalf("new prompt row reads %q", got)
	}
}

func TestTruncatePathTail(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		width  int
		expect string
	}{
		{
			name:   "fits untouched",
			path:   "src/main.go",
			width:  30,
			expect: "src/main.go",
		},
		{
			name:   "keeps tail with ellipsis",
			path:   "deeply/nested/directory/file.txt",
			width:  15,
			expect: "...ory/file.txt",
		},
		{
			name:   "zero width",
			path:   "file.txt",
			width:  0,
			expect: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncatePathTail(tt.path, tt.width); got != tt.expect {
				t.Fatalf("expected %q, got %q", tt.expect, got)
			}
		})
	}
}
