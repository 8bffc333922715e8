package app

import (
	"github.com/gdamore/tcell/v2"

	cachepkg "github.com/grepscope/grepscope/internal/cache"
	fsutil "github.com/grepscope/grepscope/internal/fs"
	searchpkg "github.com/grepscope/grepscope/internal/search"
	statepkg "github.com/grepscope/grepscope/internal/state"
	inputui "github.com/grepscope/grepscope/internal/ui/input"
	renderui "github.com/grepscope/grepscope/internal/ui/render"
)

// Config carries the command-line surface into the session.
type Config struct {
	Root            string
	CaseInsensitive bool
	Extensions      []string
}

// Application represents the running app.
type Application struct {
	screen          tcell.Screen
	state           *statepkg.SessionState
	reducer         *statepkg.SessionReducer
	renderer        *renderui.Renderer
	input           *inputui.InputHandler
	actionCh        chan statepkg.Action
	scanner         *searchpkg.Scanner
	caseInsensitive bool
	shouldQuit      bool
}

// NewApplication indexes the file set, initializes the terminal screen, and
// wires the session together.
func NewApplication(cfg Config) (*Application, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	app, err := newApplication(screen, cfg)
	if err != nil {
		screen.Fini()
		return nil, err
	}
	return app, nil
}

func newApplication(screen tcell.Screen, cfg Config) (*Application, error) {
	root := cfg.Root
	if root == "" {
		root = "."
	}
	files, err := fsutil.CollectTextFiles(root, fsutil.IndexOptions{Extensions: cfg.Extensions})
	if err != nil {
		return nil, err
	}
	contentCache, err := cachepkg.New(cachepkg.DefaultCapacity)
	if err != nil {
		return nil, err
	}

	w, h := screen.Size()
	state := statepkg.NewSessionState(w, h)
	actionCh := make(chan statepkg.Action, 10)

	return &Application{
		screen:          screen,
		state:           state,
		reducer:         statepkg.NewSessionReducer(),
		renderer:        renderui.NewRenderer(screen),
		input:           inputui.NewInputHandler(actionCh),
		actionCh:        actionCh,
		scanner:         searchpkg.NewScanner(files, contentCache),
		caseInsensitive: cfg.CaseInsensitive,
	}, nil
}

// Close cleans up resources.
func (app *Application) Close() error {
	app.screen.Fini()
	return nil
}
