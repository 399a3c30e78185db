// Package cellwidth maps rune offsets in a line to terminal cell columns.
package cellwidth

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// DefaultTabWidth is used when a non-positive tab width is passed.
const DefaultTabWidth = 4

// Placeholder is drawn in place of control characters.
const Placeholder = '?'

// RuneWidth returns the number of cells r occupies, not counting tabs.
func RuneWidth(r rune) int {
	if isControl(r) {
		return 1
	}
	w := runewidth.RuneWidth(r)
	if w == 0 {
		if fallback := uniseg.StringWidth(string(r)); fallback > w {
			w = fallback
		}
	}
	return w
}

// TabAdvance returns the cells a tab starting at visualCol occupies.
func TabAdvance(visualCol, tabWidth int) int {
	if tabWidth <= 0 {
		tabWidth = DefaultTabWidth
	}
	adv := tabWidth - visualCol%tabWidth
	if adv < 1 {
		return 1
	}
	return adv
}

// Column returns the cell column at rune offset x in line.
// Offsets past the end of line are treated as the end of line.
func Column(line []rune, x, tabWidth int) int {
	if x > len(line) {
		x = len(line)
	}
	col := 0
	for _, r := range line[:max(x, 0)] {
		col += advance(r, col, tabWidth)
	}
	return col
}

// Expand renders line for the terminal: tabs become spaces up to the next
// stop and control characters become Placeholder.
func Expand(line []rune, tabWidth int) string {
	return ExpandAt(line, 0, tabWidth)
}

// ExpandAt is Expand for a fragment whose first rune sits at cell startCol.
func ExpandAt(line []rune, startCol, tabWidth int) string {
	var sb strings.Builder
	sb.Grow(len(line))
	col := startCol
	for _, r := range line {
		switch {
		case r == '\t':
			n := TabAdvance(col, tabWidth)
			sb.WriteString(strings.Repeat(" ", n))
			col += n
			continue
		case isControl(r):
			sb.WriteRune(Placeholder)
		default:
			sb.WriteRune(r)
		}
		col += RuneWidth(r)
	}
	return sb.String()
}

func advance(r rune, col, tabWidth int) int {
	if r == '\t' {
		return TabAdvance(col, tabWidth)
	}
	return RuneWidth(r)
}

func isControl(r rune) bool {
	return r < 0x20 || r == 0x7f || (r >= 0x80 && r < 0xa0)
}
