package editor

import (
	"fmt"
	"unicode/utf8"
)

const gutterSeparator = " │ "

// GutterWidth returns the gutter width for a document of lineCount lines:
// the line number padded to at least minDigits, then a separator.
func GutterWidth(lineCount, minDigits int) int {
	return max(gutterDigits(lineCount), minDigits) + utf8.RuneCountInString(gutterSeparator)
}

func gutterDigits(lineCount int) int {
	if lineCount < 1 {
		lineCount = 1
	}
	return len(fmt.Sprintf("%d", lineCount))
}

// gutterCell renders the gutter for row, or the filler mark when row is
// past the end of the document.
func (s *Session) gutterCell(row, digits int) string {
	st := s.cfg.Style
	if row >= s.doc.LineCount() {
		return st.Filler.Render(fmt.Sprintf("%*s", digits, "~"))
	}
	num := st.LineNum
	if row == s.cursor.Row {
		num = st.LineNumActive
	}
	return num.Render(fmt.Sprintf("%*d", digits, row+1)) + st.Gutter.Render(gutterSeparator)
}
