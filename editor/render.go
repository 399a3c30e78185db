package editor

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"

	"github.com/iw2rmb/jot/internal/cellwidth"
)

// Frame is one rendered screen: rows from top to bottom and the cell the
// terminal cursor belongs in.
type Frame struct {
	Rows      []string
	CursorCol int
	CursorRow int
}

// Frame renders the session into a width x height screen. The last row is
// the status bar and the rest show document lines from the scroll offset,
// which first moves just enough to keep the cursor row visible.
// A non-positive width leaves rows untruncated.
func (s *Session) Frame(width, height int) Frame {
	return s.frame(width, height, false)
}

// frame draws the cursor cell with Style.Cursor when drawCursor is set, for
// hosts that do not position a hardware cursor.
func (s *Session) frame(width, height int, drawCursor bool) Frame {
	height = max(height, 1)
	textRows := max(height-1, 1)
	s.follow(textRows)

	digits := max(gutterDigits(s.doc.LineCount()), s.cfg.MinGutterDigits)
	gutterWidth := digits + utf8.RuneCountInString(gutterSeparator)

	f := Frame{Rows: make([]string, 0, height)}
	for i := range textRows {
		row := s.top + i
		line := s.gutterCell(row, digits)
		if row < s.doc.LineCount() {
			line += s.renderText(row, drawCursor && row == s.cursor.Row)
		}
		f.Rows = append(f.Rows, clip(line, width))
	}
	if height > 1 {
		f.Rows = append(f.Rows, s.statusBar(width))
	}

	f.CursorCol = gutterWidth + cellwidth.Column(s.lineRunes(s.cursor.Row), s.cursor.Col, s.cfg.TabWidth)
	f.CursorRow = s.cursor.Row - s.top
	if width > 0 && f.CursorCol >= width {
		f.CursorCol = width - 1
	}
	return f
}

// follow moves top so the cursor row falls inside a window of rows lines.
func (s *Session) follow(rows int) {
	if s.cursor.Row < s.top {
		s.top = s.cursor.Row
	}
	if s.cursor.Row >= s.top+rows {
		s.top = s.cursor.Row - rows + 1
	}
	s.top = max(s.top, 0)
}

func (s *Session) lineRunes(row int) []rune {
	line, _ := s.doc.Line(row)
	return []rune(line)
}

func (s *Session) renderText(row int, withCursor bool) string {
	st := s.cfg.Style
	tw := s.cfg.TabWidth
	line := s.lineRunes(row)
	if !withCursor {
		return st.Text.Render(cellwidth.Expand(line, tw))
	}

	x := min(s.cursor.Col, len(line))
	before := cellwidth.Expand(line[:x], tw)
	if x == len(line) {
		return st.Text.Render(before) + st.Cursor.Render(" ")
	}
	at := cellwidth.ExpandAt(line[x:x+1], cellwidth.Column(line, x, tw), tw)
	after := cellwidth.ExpandAt(line[x+1:], cellwidth.Column(line, x+1, tw), tw)
	return st.Text.Render(before) + st.Cursor.Render(at) + st.Text.Render(after)
}

func (s *Session) statusBar(width int) string {
	name := s.filename
	if name == "" {
		name = "[no name]"
	}
	left := " " + name
	if s.dirty {
		left += " [+]"
	}
	if s.status.text != "" {
		left += "  " + s.status.text
	}
	right := fmt.Sprintf(" %d:%d ", s.cursor.Row+1, s.cursor.Col+1)

	style := s.cfg.Style.Status
	if s.status.text != "" && s.status.kind == statusWarning {
		style = s.cfg.Style.StatusWarning
	}

	if width <= 0 {
		return style.Render(left + right)
	}
	rw := ansi.StringWidth(right)
	if rw >= width {
		return style.Render(ansi.Truncate(right, width, ""))
	}
	left = ansi.Truncate(left, width-rw, "…")
	gap := width - ansi.StringWidth(left) - rw
	return style.Render(left + strings.Repeat(" ", gap) + right)
}

func clip(row string, width int) string {
	if width <= 0 {
		return row
	}
	return ansi.Truncate(row, width, "")
}
