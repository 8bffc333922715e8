package search

const (
	// PathColumnWidth is the fixed margin reserved for the file path column.
	PathColumnWidth = 30
	columnPadding   = 3

	// windowContext is how many bytes of left context stay visible before the
	// anchor match when a long line is windowed.
	windowContext = 20

	ellipsis = "..."
)

// WidthBudget returns the display budget for matched text given the terminal
// width: the path column plus padding is reserved off the top.
func WidthBudget(termWidth int) int {
	budget := termWidth - PathColumnWidth - columnPadding
	if budget < 0 {
		return 0
	}
	return budget
}

// WindowLine shapes a matched line for display within budget bytes. Lines that
// fit pass through with their spans untouched. Longer lines are windowed
// around the first match: up to windowContext bytes of left context, then
// forward to fill the budget, with "..." markers on whichever ends were cut.
// Spans are remapped into the display string's coordinate space; spans that
// start before the window are dropped, which by construction never includes
// the anchor match.
func WindowLine(line string, spans []MatchSpan, budget int) (string, []MatchSpan) {
	if len(line) <= budget {
		return line, spans
	}

	firstStart := 0
	if len(spans) > 0 {
		firstStart = spans[0].Start
	}

	context := windowContext
	if firstStart < context {
		context = firstStart
	}
	startPos := firstStart - context
	endPos := startPos + budget
	if endPos > len(line) {
		endPos = len(line)
	}

	display := line[startPos:endPos]
	prefixOffset := 0
	if startPos > 0 {
		display = ellipsis + display
		prefixOffset = len(ellipsis)
	}
	if endPos < len(line) {
		display += ellipsis
	}

	var remapped []MatchSpan
	for _, span := range spans {
		if span.Start < startPos {
			continue
		}
		newStart := span.Start - startPos + prefixOffset
		newEnd := span.End - startPos + prefixOffset
		if newEnd > len(display) {
			newEnd = len(display)
		}
		if newStart >= len(display) {
			continue
		}
		remapped = append(remapped, MatchSpan{Start: newStart, End: newEnd})
	}

	return display, remapped
}
