package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// compositeAt splices a popup's rows into the base frame at cell (x, y).
// Rows outside the frame are dropped; base content left and right of the
// popup survives with its ANSI sequences intact.
func compositeAt(base []string, popup string, x, y int) []string {
	for i, row := range strings.Split(popup, "\n") {
		target := y + i
		if target < 0 || target >= len(base) {
			continue
		}
		base[target] = spliceRow(base[target], row, x)
	}
	return base
}

func spliceRow(line, content string, x int) string {
	w := ansi.StringWidth(content)
	if w == 0 {
		return line
	}
	left := ansi.Truncate(line, x, "")
	if pad := x - ansi.StringWidth(left); pad > 0 {
		left += strings.Repeat(" ", pad)
	}
	right := ansi.TruncateLeft(line, x+w, "")
	return left + content + right
}
