package formatter

import "strings"

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderBar renders a horizontal bar scaled against max, like ████░░░░.
// A zero max yields an all-empty bar so an idle dataset still renders.
func RenderBar(count, max, width int) string {
	if width < 1 {
		width = 1
	}

	filled := 0
	if max > 0 && count > 0 {
		filled = count * width / max
		if filled == 0 {
			filled = 1
		}
		if filled > width {
			filled = width
		}
	}

	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleBlue
	if max > 0 && count == max {
		style = StyleGreen
	}
	return style.Render(bar)
}
