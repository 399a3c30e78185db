package editor

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"

	"github.com/iw2rmb/jot/terminal"
)

// KeyMap defines the editor key bindings.
//
// Bindings use Bubble Tea key names, so the same KeyMap serves terminal
// key events and tea.KeyMsg.
type KeyMap struct {
	Up, Down, Left, Right key.Binding
	Home, End             key.Binding

	Backspace, Delete key.Binding
	Enter, Tab        key.Binding

	Save, Quit key.Binding

	CopyLine, CutLine, Paste key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),

		Home: key.NewBinding(key.WithKeys("home", "ctrl+a"), key.WithHelp("home", "line start")),
		End:  key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "line end")),

		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Delete:    key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "delete right")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "newline")),
		Tab:       key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "insert tab")),

		Save: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Quit: key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("ctrl+q", "quit")),

		CopyLine: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "copy line")),
		CutLine:  key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "cut line")),
		Paste:    key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste")),
	}
}

// Translate maps a key event to a command. Printable keys without a
// binding insert their rune; anything else is CmdNone.
func (km KeyMap) Translate(ev terminal.KeyEvent) Command {
	bindings := []struct {
		b    key.Binding
		kind CommandKind
	}{
		{km.Up, CmdMoveUp},
		{km.Down, CmdMoveDown},
		{km.Left, CmdMoveLeft},
		{km.Right, CmdMoveRight},
		{km.Home, CmdHome},
		{km.End, CmdEnd},
		{km.Backspace, CmdBackspace},
		{km.Delete, CmdDelete},
		{km.Enter, CmdEnter},
		{km.Tab, CmdInsertTab},
		{km.Save, CmdSave},
		{km.Quit, CmdQuit},
		{km.CopyLine, CmdCopyLine},
		{km.CutLine, CmdCutLine},
		{km.Paste, CmdPaste},
	}
	for _, kb := range bindings {
		if key.Matches(ev, kb.b) {
			return Command{Kind: kb.kind}
		}
	}
	if ev.Printable() {
		return Insert(ev.Rune)
	}
	return Command{}
}

// ShortHelp returns the bindings shown in the status bar hint.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Save, km.Quit}
}

// FullHelp returns every binding, grouped by concern.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Up, km.Down, km.Left, km.Right, km.Home, km.End},
		{km.Backspace, km.Delete, km.Enter, km.Tab},
		{km.CopyLine, km.CutLine, km.Paste},
		{km.Save, km.Quit},
	}
}

// helpHint renders the short help as plain text for the status bar.
func helpHint(km KeyMap) string {
	h := help.New()
	h.Styles = help.Styles{}
	h.ShortSeparator = " · "
	return h.ShortHelpView(km.ShortHelp())
}
