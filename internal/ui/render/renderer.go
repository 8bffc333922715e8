package render

import (
	"github.com/gdamore/tcell/v2"

	searchpkg "github.com/grepscope/grepscope/internal/search"
	statepkg "github.com/grepscope/grepscope/internal/state"
	textutil "github.com/grepscope/grepscope/internal/textutil"
)

const promptLabel = "Search: "

// Renderer draws the prompt and result rows onto a tcell screen. Rows above
// the current prompt hold committed blocks and are never touched.
type Renderer struct {
	screen tcell.Screen
	theme  ColorTheme
}

// NewRenderer creates a new renderer
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen: screen,
		theme:  GetColorTheme(),
	}
}

// Render redraws the prompt and the whole result area, then flushes.
func (r *Renderer) Render(state *statepkg.SessionState) {
	r.renderPrompt(state)
	r.renderResults(state)
	r.screen.Show()
}

// RenderPrompt redraws only the query line. The session calls this every tick
// so the echoed query and cursor stay current even when results are unchanged.
func (r *Renderer) RenderPrompt(state *statepkg.SessionState) {
	r.renderPrompt(state)
	r.screen.Show()
}

func (r *Renderer) renderPrompt(state *statepkg.SessionState) {
	w := state.ScreenWidth
	y := state.PromptRow
	style := tcell.StyleDefault.Foreground(r.theme.PromptFg)

	x := r.drawText(0, y, w, promptLabel, style)
	query := textutil.SanitizeTerminalText(state.Query)
	x = r.drawText(x, y, w, query, style)
	cursorX := x
	for ; x < w; x++ {
		r.screen.SetContent(x, y, ' ', nil, style)
	}
	r.screen.ShowCursor(cursorX, y)
}

func (r *Renderer) renderResults(state *statepkg.SessionState) {
	w := state.ScreenWidth
	rows := state.VisibleRows()
	base := tcell.StyleDefault

	for i := 0; i < rows; i++ {
		r.clearRow(state.ResultsRow+i, w, base)
	}

	count := state.RenderedCount()
	for i := 0; i < count; i++ {
		r.renderEntry(state, state.Results[i], state.ResultsRow+i)
	}
}

func (r *Renderer) renderEntry(state *statepkg.SessionState, entry statepkg.ResultEntry, y int) {
	w := state.ScreenWidth

	if entry.IsSentinel() {
		r.drawText(0, y, w, entry.Display, tcell.StyleDefault.Foreground(r.theme.ErrorFg))
		return
	}

	pathBudget := searchpkg.PathColumnWidth
	if half := w / 2; half < pathBudget {
		pathBudget = half
	}
	displayPath := truncatePathTail(textutil.SanitizeTerminalText(entry.Path), pathBudget)
	pathEnd := r.drawText(0, y, w, displayPath, tcell.StyleDefault.Foreground(r.theme.PathFg))

	// Right-align the matched text against the terminal edge.
	x := w - displayWidth(entry.Display)
	if x < pathEnd {
		x = pathEnd
	}
	r.drawSpanLine(x, y, w, entry.Display, entry.Spans,
		tcell.StyleDefault.Foreground(r.theme.ContextFg),
		tcell.StyleDefault.Foreground(r.theme.MatchFg))
}
