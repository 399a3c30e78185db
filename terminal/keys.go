package terminal

import (
	"strings"
	"unicode/utf8"
)

// KeyCode is the logical key of a KeyEvent.
type KeyCode int

const (
	KeyNone KeyCode = iota
	KeyRune         // printable or ctrl-combined rune, see KeyEvent.Rune
	KeyEnter
	KeyBackspace
	KeyTab
	KeyEscape
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyDelete
	KeyPageUp
	KeyPageDown
)

// Modifier is a set of modifier flags held with a key.
type Modifier uint8

const (
	ModShift Modifier = 1 << iota
	ModAlt
	ModCtrl
)

func (m Modifier) Has(f Modifier) bool { return m&f == f }

// KeyEvent is one decoded key press.
type KeyEvent struct {
	Code KeyCode
	Rune rune // valid when Code == KeyRune
	Mod  Modifier
}

var keyNames = map[KeyCode]string{
	KeyEnter:     "enter",
	KeyBackspace: "backspace",
	KeyTab:       "tab",
	KeyEscape:    "esc",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyDelete:    "delete",
	KeyPageUp:    "pgup",
	KeyPageDown:  "pgdown",
}

// String returns the key name in Bubble Tea notation, e.g. "ctrl+s",
// "alt+left", "shift+tab" or "x".
func (k KeyEvent) String() string {
	var name string
	switch k.Code {
	case KeyNone:
		return ""
	case KeyRune:
		name = string(k.Rune)
	default:
		name = keyNames[k.Code]
	}

	var sb strings.Builder
	if k.Mod.Has(ModAlt) {
		sb.WriteString("alt+")
	}
	if k.Mod.Has(ModCtrl) {
		sb.WriteString("ctrl+")
	}
	if k.Mod.Has(ModShift) {
		sb.WriteString("shift+")
	}
	sb.WriteString(name)
	return sb.String()
}

// Printable reports whether k inserts its rune as text.
func (k KeyEvent) Printable() bool {
	return k.Code == KeyRune && k.Rune >= 0x20 && k.Rune != 0x7f &&
		!k.Mod.Has(ModCtrl) && !k.Mod.Has(ModAlt)
}

// ParseKey parses a key name in the notation produced by String.
func ParseKey(name string) (KeyEvent, bool) {
	var ev KeyEvent
	for {
		switch {
		case len(name) > len("alt+") && strings.HasPrefix(name, "alt+"):
			ev.Mod |= ModAlt
			name = name[len("alt+"):]
			continue
		case len(name) > len("ctrl+") && strings.HasPrefix(name, "ctrl+"):
			ev.Mod |= ModCtrl
			name = name[len("ctrl+"):]
			continue
		case len(name) > len("shift+") && strings.HasPrefix(name, "shift+"):
			ev.Mod |= ModShift
			name = name[len("shift+"):]
			continue
		}
		break
	}
	for code, n := range keyNames {
		if n == name {
			ev.Code = code
			return ev, true
		}
	}
	if utf8.RuneCountInString(name) != 1 {
		return KeyEvent{}, false
	}
	r, _ := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return KeyEvent{}, false
	}
	ev.Code = KeyRune
	ev.Rune = r
	return ev, true
}
