package editor

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Model hosts a Session as a Bubble Tea component. The program should use
// the alternate screen; View fills the whole window.
type Model struct {
	s *Session

	width, height int

	err error
}

// tickMsg drives Session.Tick while the program is idle.
type tickMsg time.Time

func NewModel(s *Session) Model {
	return Model{s: s}
}

func (m Model) Session() *Session { return m.s }

// Err returns the save error that ended the program, if any.
func (m Model) Err() error { return m.err }

func (m Model) Init() tea.Cmd { return m.tick() }

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.s.cfg.PollTimeout, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Model) View() string {
	if m.height <= 0 {
		return ""
	}
	f := m.s.frame(m.width, m.height, true)
	return strings.Join(f.Rows, "\n")
}
