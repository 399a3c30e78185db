package editor

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/jot/terminal"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = max(msg.Width, 0), max(msg.Height, 0)
		return m, nil
	case tickMsg:
		m.s.Tick(time.Time(msg))
		return m, m.tick()
	case tea.KeyMsg:
		return m.updateKey(msg)
	}
	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Paste events should always insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && (msg.Paste || len(msg.Runes) > 1) {
		m.s.InsertText(string(msg.Runes))
		return m, nil
	}

	ev, ok := FromTeaKey(msg)
	if !ok {
		return m, nil
	}
	sig, err := m.s.Apply(m.s.cfg.KeyMap.Translate(ev))
	if err != nil {
		m.err = err
		return m, tea.Quit
	}
	if sig == Quit {
		return m, tea.Quit
	}
	return m, nil
}

// FromTeaKey converts a Bubble Tea key message to a terminal key event.
// Multi-rune messages, which Bubble Tea sends for unbracketed pastes and
// input methods, have no single-key equivalent and report false.
func FromTeaKey(msg tea.KeyMsg) (terminal.KeyEvent, bool) {
	var ev terminal.KeyEvent
	switch msg.Type {
	case tea.KeyRunes:
		if len(msg.Runes) != 1 {
			return ev, false
		}
		ev = terminal.KeyEvent{Code: terminal.KeyRune, Rune: msg.Runes[0]}
	case tea.KeySpace:
		ev = terminal.KeyEvent{Code: terminal.KeyRune, Rune: ' '}
	default:
		return terminal.ParseKey(msg.String())
	}
	if msg.Alt {
		ev.Mod |= terminal.ModAlt
	}
	return ev, true
}
