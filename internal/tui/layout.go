package tui

import (
	"strings"

	xansi "github.com/charmbracelet/x/ansi"
)

// fitLine forces s to exactly width columns (ANSI-aware), cutting with an
// ellipsis when it is too wide.
func fitLine(s string, width int) string {
	if width <= 0 {
		return ""
	}
	w := xansi.StringWidth(s)
	if w > width {
		ell := glyphEllipsis()
		ellW := xansi.StringWidth(ell)
		if width <= ellW {
			return xansi.Cut(s, 0, width)
		}
		s = xansi.Cut(s, 0, width-ellW) + ell
		w = xansi.StringWidth(s)
	}
	if w < width {
		s += strings.Repeat(" ", width-w)
	}
	return s
}

func contentWidth(termW int) int {
	w := termW - 2
	if w > maxContentW {
		w = maxContentW
	}
	if w < minContentW {
		w = minContentW
	}
	return w
}
