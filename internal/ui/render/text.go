package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// drawText writes s starting at (x, y), clipped to maxWidth display cells.
// Returns the x position after the last cell written.
func drawText(screen tcell.Screen, x, y, maxWidth int, style tcell.Style, s string) int {
	col := x
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if col+w > x+maxWidth {
			break
		}
		screen.SetContent(col, y, r, nil, style)
		col += w
	}
	return col
}

// truncate shortens s to fit width display cells, appending an ellipsis when
// anything was cut.
func truncate(s string, width int) string {
	if runewidth.StringWidth(s) <= width {
		return s
	}
	if width <= 1 {
		return runewidth.Truncate(s, width, "")
	}
	return runewidth.Truncate(s, width, "…")
}

// padRight extends s with spaces to exactly width display cells.
func padRight(s string, width int) string {
	return runewidth.FillRight(truncate(s, width), width)
}
