package input

import (
	"github.com/gdamore/tcell/v2"

	statepkg "github.com/grepscope/grepscope/internal/state"
)

// InputHandler converts tcell events to Actions
type InputHandler struct {
	actionChan chan statepkg.Action
}

// NewInputHandler creates a new input handler
func NewInputHandler(actionChan chan statepkg.Action) *InputHandler {
	return &InputHandler{
		actionChan: actionChan,
	}
}

// ProcessEvent converts a tcell event into an Action. It returns false when
// the event asks the session to terminate.
func (ih *InputHandler) ProcessEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return ih.processKeyEvent(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		ih.actionChan <- statepkg.ResizeAction{Width: w, Height: h}
		return true
	default:
		return true
	}
}

func (ih *InputHandler) processKeyEvent(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		ih.actionChan <- statepkg.QuitAction{}
		return false
	case tcell.KeyEnter:
		ih.actionChan <- statepkg.CommitAction{}
		return true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		ih.actionChan <- statepkg.QueryBackspaceAction{}
		return true
	case tcell.KeyRune:
		ih.actionChan <- statepkg.QueryCharAction{Char: ev.Rune()}
		return true
	default:
		return true
	}
}
