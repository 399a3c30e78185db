package cellwidth

import "testing"

func TestColumn(t *testing.T) {
	cases := []struct {
		name string
		line string
		x    int
		tab  int
		want int
	}{
		{name: "ascii", line: "abc", x: 2, tab: 4, want: 2},
		{name: "append position", line: "abc", x: 3, tab: 4, want: 3},
		{name: "past end clamps", line: "abc", x: 9, tab: 4, want: 3},
		{name: "leading tab", line: "\tx", x: 1, tab: 4, want: 4},
		{name: "tab after text", line: "ab\tx", x: 3, tab: 4, want: 4},
		{name: "tab at stop", line: "abcd\tx", x: 5, tab: 4, want: 8},
		{name: "default tab", line: "\t", x: 1, tab: 0, want: DefaultTabWidth},
		{name: "wide rune", line: "日本", x: 1, tab: 4, want: 2},
		{name: "control", line: "\x01a", x: 1, tab: 4, want: 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Column([]rune(tc.line), tc.x, tc.tab); got != tc.want {
				t.Fatalf("Column(%q, %d) = %d, want %d", tc.line, tc.x, got, tc.want)
			}
		})
	}
}

func TestExpand(t *testing.T) {
	cases := []struct {
		line string
		want string
	}{
		{line: "", want: ""},
		{line: "plain", want: "plain"},
		{line: "\tx", want: "    x"},
		{line: "ab\tx", want: "ab  x"},
		{line: "a\x1bb", want: "a?b"},
		{line: "日\tx", want: "日  x"},
	}

	for _, tc := range cases {
		if got := Expand([]rune(tc.line), 4); got != tc.want {
			t.Fatalf("Expand(%q) = %q, want %q", tc.line, got, tc.want)
		}
	}
}

func TestExpand_MatchesColumn(t *testing.T) {
	line := []rune("a\tβ日\tz")
	expanded := []rune(Expand(line, 4))
	end := Column(line, len(line), 4)

	cells := 0
	for _, r := range expanded {
		cells += RuneWidth(r)
	}
	if cells != end {
		t.Fatalf("expanded cells=%d, column at end=%d", cells, end)
	}
}

func TestExpandAt_TabStopsFollowStartColumn(t *testing.T) {
	if got := ExpandAt([]rune("\tx"), 2, 4); got != "  x" {
		t.Fatalf("ExpandAt at col 2 = %q, want %q", got, "  x")
	}
	line := []rune("ab\tc\td")
	whole := Expand(line, 4)
	split := Expand(line[:3], 4) + ExpandAt(line[3:], Column(line, 3, 4), 4)
	if whole != split {
		t.Fatalf("split expansion %q != whole %q", split, whole)
	}
}
