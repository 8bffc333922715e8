package app

import (
	"time"

	"github.com/gdamore/tcell/v2"

	searchpkg "github.com/grepscope/grepscope/internal/search"
	statepkg "github.com/grepscope/grepscope/internal/state"
)

// pollInterval bounds how long one loop iteration waits for input; an idle
// tick still recomputes results so external file changes surface promptly.
const pollInterval = 100 * time.Millisecond

// Run drives the session loop until Escape. Each iteration recomputes the
// result sequence from the current query, redraws only when it changed, then
// waits for the next key event or tick.
func (app *Application) Run() {
	eventCh := make(chan tcell.Event)
	go func() {
		for {
			ev := app.screen.PollEvent()
			if ev == nil {
				return
			}
			eventCh <- ev
		}
	}()

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for !app.shouldQuit {
		app.refresh()

		select {
		case ev := <-eventCh:
			app.handleEvent(ev)
		case action := <-app.actionCh:
			app.handleAction(action)
		case <-ticker.C:
		}

		app.drainActions()
	}

	app.parkCursor()
}

// refresh recomputes results for the current query and hands them to the
// renderer only when they differ from the last rendered sequence. The prompt
// line is redrawn unconditionally so the echoed query never lags a keystroke.
func (app *Application) refresh() {
	results := app.scanner.Search(app.state.Query, app.caseInsensitive, app.state.ScreenWidth)
	app.state.Results = results

	if searchpkg.EqualSequences(results, app.state.Rendered) {
		app.renderer.RenderPrompt(app.state)
		return
	}
	app.renderer.Render(app.state)
	app.state.Rendered = results
}

func (app *Application) handleEvent(ev tcell.Event) {
	if !app.input.ProcessEvent(ev) {
		app.shouldQuit = true
	}
}

func (app *Application) handleAction(action statepkg.Action) {
	if action == nil {
		return
	}
	if _, ok := action.(statepkg.QuitAction); ok {
		app.shouldQuit = true
		return
	}
	app.reducer.Reduce(app.state, action)
}

func (app *Application) drainActions() {
	for {
		select {
		case action := <-app.actionCh:
			app.handleAction(action)
		default:
			return
		}
	}
}

// parkCursor leaves the terminal cursor below the last rendered content so
// the shell prompt lands somewhere sensible after the screen is released.
func (app *Application) parkCursor() {
	app.screen.HideCursor()
	app.screen.ShowCursor(0, app.state.ExitRow())
	app.screen.Show()
}
