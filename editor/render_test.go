package editor

import (
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/iw2rmb/jot/buffer"
)

// quiet clears the startup key hint so status rows are predictable.
func (h *harness) quiet() *harness {
	h.clock.Advance(DefaultStatusTimeout)
	h.s.Tick(h.clock.Now())
	return h
}

func TestFrame_RowsAndCursor(t *testing.T) {
	h := newHarness("ab\ncd").quiet()
	h.s.SetCursor(buffer.Pos{Row: 1, Col: 1})

	f := h.s.Frame(20, 4)
	want := []string{
		"   1 │ ab",
		"   2 │ cd",
		"   ~",
		" note.txt       2:2 ",
	}
	if fmt.Sprintf("%q", f.Rows) != fmt.Sprintf("%q", want) {
		t.Fatalf("unexpected rows:\n got: %q\nwant: %q", f.Rows, want)
	}
	if f.CursorCol != 8 || f.CursorRow != 1 {
		t.Fatalf("cursor cell: got (%d,%d), want (8,1)", f.CursorCol, f.CursorRow)
	}
}

func TestFrame_CursorColumnCountsCells(t *testing.T) {
	h := newHarness("\tx日y").quiet()
	h.s.SetCursor(buffer.Pos{Col: 3})

	f := h.s.Frame(40, 3)
	if got := f.Rows[0]; got != "   1 │     x日y" {
		t.Fatalf("row: got %q", got)
	}
	if f.CursorCol != 7+7 {
		t.Fatalf("cursor col: got %d, want %d", f.CursorCol, 14)
	}
}

func TestFrame_ControlCharsUsePlaceholder(t *testing.T) {
	h := newHarness("a\x01b").quiet()
	if got := h.s.Frame(40, 2).Rows[0]; got != "   1 │ a?b" {
		t.Fatalf("row: got %q", got)
	}
}

func TestFrame_FollowsCursor(t *testing.T) {
	var lines []string
	for i := 1; i <= 10; i++ {
		lines = append(lines, fmt.Sprintf("line %d", i))
	}
	h := newHarness(strings.Join(lines, "\n")).quiet()

	h.s.SetCursor(buffer.Pos{Row: 5})
	f := h.s.Frame(40, 4)
	if f.CursorRow != 2 {
		t.Fatalf("cursor row: got %d, want 2", f.CursorRow)
	}
	if !strings.HasSuffix(f.Rows[0], "line 4") || !strings.HasSuffix(f.Rows[2], "line 6") {
		t.Fatalf("unexpected window: %q", f.Rows)
	}

	// Moving within the window does not scroll.
	h.s.SetCursor(buffer.Pos{Row: 3})
	if f := h.s.Frame(40, 4); f.CursorRow != 0 || !strings.HasSuffix(f.Rows[0], "line 4") {
		t.Fatalf("scrolled inside window: row=%d rows=%q", f.CursorRow, f.Rows)
	}

	h.s.SetCursor(buffer.Pos{Row: 0})
	if f := h.s.Frame(40, 4); f.CursorRow != 0 || !strings.HasSuffix(f.Rows[0], "line 1") {
		t.Fatalf("did not scroll back up: row=%d rows=%q", f.CursorRow, f.Rows)
	}
}

func TestFrame_TruncatesToWidth(t *testing.T) {
	h := newHarness(strings.Repeat("x", 50)).quiet()
	h.s.SetCursor(buffer.Pos{Col: 50})
	h.apply(Insert('!'))

	f := h.s.Frame(12, 3)
	for i, row := range f.Rows {
		if w := ansi.StringWidth(row); w > 12 {
			t.Fatalf("row %d is %d cells wide: %q", i, w, row)
		}
	}
	if f.CursorCol != 11 {
		t.Fatalf("cursor col: got %d, want 11", f.CursorCol)
	}
}

func TestFrame_StatusShowsDirtyAndMessage(t *testing.T) {
	h := newHarness("ab").quiet()
	h.apply(Insert('x'))
	h.apply(cmd(CmdQuit))

	status := h.s.Frame(80, 2).Rows[1]
	if !strings.HasPrefix(status, " note.txt [+]  unsaved changes") {
		t.Fatalf("status: %q", status)
	}
	if !strings.HasSuffix(status, " 1:2 ") || ansi.StringWidth(status) != 80 {
		t.Fatalf("status not padded to width: %q", status)
	}
}

func TestFrame_StatusTruncatesLeftSide(t *testing.T) {
	h := newHarness("ab")
	status := h.s.Frame(16, 2).Rows[1]
	if ansi.StringWidth(status) != 16 || !strings.HasSuffix(status, "… 1:1 ") {
		t.Fatalf("status: %q", status)
	}
}

func TestFrame_HeightOneHasNoStatus(t *testing.T) {
	h := newHarness("ab\ncd")
	f := h.s.Frame(20, 1)
	if len(f.Rows) != 1 || f.Rows[0] != "   1 │ ab" {
		t.Fatalf("rows: %q", f.Rows)
	}
}

func TestFrame_DefaultStyleKeepsText(t *testing.T) {
	h := newHarness("ab\ncd").quiet()
	h.s.cfg.Style = DefaultStyle()

	f := h.s.Frame(20, 3)
	if got := ansi.Strip(f.Rows[0]); got != "   1 │ ab" {
		t.Fatalf("styled row: got %q", got)
	}
}

func TestGutterWidth(t *testing.T) {
	cases := []struct {
		lines, minDigits, want int
	}{
		{lines: 0, minDigits: 4, want: 7},
		{lines: 1, minDigits: 4, want: 7},
		{lines: 9999, minDigits: 4, want: 7},
		{lines: 10000, minDigits: 4, want: 8},
		{lines: 12, minDigits: 1, want: 5},
	}
	for _, tc := range cases {
		if got := GutterWidth(tc.lines, tc.minDigits); got != tc.want {
			t.Fatalf("GutterWidth(%d,%d) = %d, want %d", tc.lines, tc.minDigits, got, tc.want)
		}
	}
}
