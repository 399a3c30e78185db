package terminal

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

const esc = 0x1b

// Decode reads one key from the front of b and returns it along with the
// number of bytes consumed. Unrecognized sequences are consumed and reported
// as KeyNone. Decode returns 0 only for empty input.
func Decode(b []byte) (KeyEvent, int) {
	if len(b) == 0 {
		return KeyEvent{}, 0
	}

	c := b[0]
	switch {
	case c == esc:
		return decodeEscape(b)
	case c == '\r':
		if len(b) > 1 && b[1] == '\n' {
			return KeyEvent{Code: KeyEnter}, 2
		}
		return KeyEvent{Code: KeyEnter}, 1
	case c == '\n':
		return KeyEvent{Code: KeyEnter}, 1
	case c == '\t':
		return KeyEvent{Code: KeyTab}, 1
	case c == 0x7f:
		return KeyEvent{Code: KeyBackspace}, 1
	case c == 0:
		return KeyEvent{Code: KeyRune, Rune: '@', Mod: ModCtrl}, 1
	case c <= 26:
		return KeyEvent{Code: KeyRune, Rune: rune('a' + c - 1), Mod: ModCtrl}, 1
	case c < 0x20:
		return KeyEvent{Code: KeyRune, Rune: rune(c + 0x40), Mod: ModCtrl}, 1
	}

	r, size := utf8.DecodeRune(b)
	if r == utf8.RuneError && size <= 1 {
		return KeyEvent{}, 1
	}
	return KeyEvent{Code: KeyRune, Rune: r}, size
}

func decodeEscape(b []byte) (KeyEvent, int) {
	if len(b) == 1 || b[1] == esc {
		return KeyEvent{Code: KeyEscape}, 1
	}

	switch b[1] {
	case '[':
		return decodeCSI(b)
	case 'O':
		if len(b) < 3 {
			return KeyEvent{Code: KeyRune, Rune: 'O', Mod: ModAlt}, 2
		}
		if code, ok := finalKeys[b[2]]; ok {
			return KeyEvent{Code: code}, 3
		}
		return KeyEvent{}, 3
	}

	// ESC followed by a key is the alt-modified key.
	ev, n := Decode(b[1:])
	if ev.Code == KeyNone {
		return ev, n + 1
	}
	ev.Mod |= ModAlt
	return ev, n + 1
}

var finalKeys = map[byte]KeyCode{
	'A': KeyUp,
	'B': KeyDown,
	'C': KeyRight,
	'D': KeyLeft,
	'H': KeyHome,
	'F': KeyEnd,
}

var tildeKeys = map[int]KeyCode{
	1: KeyHome,
	3: KeyDelete,
	4: KeyEnd,
	5: KeyPageUp,
	6: KeyPageDown,
	7: KeyHome,
	8: KeyEnd,
}

// decodeCSI handles ESC [ params final.
func decodeCSI(b []byte) (KeyEvent, int) {
	end := -1
	for i := 2; i < len(b); i++ {
		if b[i] >= 0x40 && b[i] <= 0x7e {
			end = i
			break
		}
	}
	if end < 0 {
		return KeyEvent{}, len(b)
	}

	params := parseParams(string(b[2:end]))
	final := b[end]
	n := end + 1

	switch {
	case final == '~':
		if len(params) == 0 {
			return KeyEvent{}, n
		}
		code, ok := tildeKeys[params[0]]
		if !ok {
			return KeyEvent{}, n
		}
		ev := KeyEvent{Code: code}
		if len(params) > 1 {
			ev.Mod = csiModifier(params[1])
		}
		return ev, n
	case final == 'Z':
		return KeyEvent{Code: KeyTab, Mod: ModShift}, n
	}

	code, ok := finalKeys[final]
	if !ok {
		return KeyEvent{}, n
	}
	ev := KeyEvent{Code: code}
	if len(params) > 1 {
		ev.Mod = csiModifier(params[1])
	}
	return ev, n
}

func parseParams(s string) []int {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ";")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			v = 0
		}
		out = append(out, v)
	}
	return out
}

// csiModifier converts an xterm modifier parameter (1 + bitmask) to flags.
func csiModifier(p int) Modifier {
	if p <= 1 {
		return 0
	}
	bits := p - 1
	var m Modifier
	if bits&1 != 0 {
		m |= ModShift
	}
	if bits&2 != 0 {
		m |= ModAlt
	}
	if bits&4 != 0 {
		m |= ModCtrl
	}
	return m
}

// incomplete reports whether b may be the start of a longer key sequence
// whose remaining bytes have not arrived yet.
func incomplete(b []byte) bool {
	if len(b) == 0 {
		return false
	}
	if b[0] == esc {
		if len(b) == 1 {
			return true
		}
		switch b[1] {
		case '[':
			for _, c := range b[2:] {
				if c >= 0x40 && c <= 0x7e {
					return false
				}
			}
			return true
		case 'O':
			return len(b) < 3
		}
		return false
	}
	return b[0] >= 0x80 && !utf8.FullRune(b)
}
