package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	searchpkg "github.com/grepscope/grepscope/internal/search"
)

const pathEllipsis = "..."

// drawText writes text at (startX, y), clipping at maxX, and returns the next
// free column. Tabs render as single spaces so columns stay aligned with the
// byte spans computed by the search pipeline.
func (r *Renderer) drawText(startX, y, maxX int, text string, style tcell.Style) int {
	x := startX
	for _, ru := range text {
		if x >= maxX {
			break
		}
		if ru == '\t' {
			ru = ' '
		}
		w := runewidth.RuneWidth(ru)
		if w <= 0 {
			continue
		}
		r.screen.SetContent(x, y, ru, nil, style)
		for i := 1; i < w && x+i < maxX; i++ {
			r.screen.SetContent(x+i, y, ' ', nil, style)
		}
		x += w
	}
	return x
}

// drawSpanLine writes a display line whose highlight spans are byte intervals
// into text; bytes inside a span use matchStyle, the rest baseStyle.
func (r *Renderer) drawSpanLine(startX, y, maxX int, text string, spans []searchpkg.MatchSpan, baseStyle, matchStyle tcell.Style) int {
	x := startX
	spanIdx := 0
	for i, ru := range text {
		if x >= maxX {
			break
		}
		for spanIdx < len(spans) && i >= spans[spanIdx].End {
			spanIdx++
		}
		style := baseStyle
		if spanIdx < len(spans) && i >= spans[spanIdx].Start && i < spans[spanIdx].End {
			style = matchStyle
		}
		if ru == '\t' {
			ru = ' '
		}
		w := runewidth.RuneWidth(ru)
		if w <= 0 {
			continue
		}
		r.screen.SetContent(x, y, ru, nil, style)
		for j := 1; j < w && x+j < maxX; j++ {
			r.screen.SetContent(x+j, y, ' ', nil, style)
		}
		x += w
	}
	return x
}

// truncatePathTail fits a file path into maxWidth columns, keeping the tail
// and marking the cut with a leading "...".
func truncatePathTail(path string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if displayWidth(path) <= maxWidth {
		return path
	}
	budget := maxWidth - len(pathEllipsis)
	if budget <= 0 {
		return pathEllipsis[:maxWidth]
	}

	runes := []rune(path)
	width := 0
	start := len(runes)
	for i := len(runes) - 1; i >= 0; i-- {
		w := runewidth.RuneWidth(runes[i])
		if w < 0 {
			w = 0
		}
		if width+w > budget {
			break
		}
		width += w
		start = i
	}
	return pathEllipsis + string(runes[start:])
}

func displayWidth(text string) int {
	width := 0
	for _, ru := range text {
		w := runewidth.RuneWidth(ru)
		if w < 0 {
			w = 0
		}
		width += w
	}
	return width
}

func (r *Renderer) clearRow(y, width int, style tcell.Style) {
	for x := 0; x < width; x++ {
		r.screen.SetContent(x, y, ' ', nil, style)
	}
}
