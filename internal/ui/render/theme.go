package render

import "github.com/gdamore/tcell/v2"

// ColorTheme defines application colors.
type ColorTheme struct {
	PromptFg  tcell.Color
	PathFg    tcell.Color
	ContextFg tcell.Color
	MatchFg   tcell.Color
	ErrorFg   tcell.Color
}

// GetColorTheme returns the default color scheme: white paths, cyan context
// around magenta match spans, red for the invalid-pattern sentinel.
func GetColorTheme() ColorTheme {
	return ColorTheme{
		PromptFg:  tcell.ColorDefault,
		PathFg:    tcell.ColorWhite,
		ContextFg: tcell.ColorAqua,
		MatchFg:   tcell.ColorFuchsia,
		ErrorFg:   tcell.ColorRed,
	}
}
