package editor

// CommandKind identifies an editing command.
type CommandKind int

const (
	CmdNone CommandKind = iota
	CmdMoveUp
	CmdMoveDown
	CmdMoveLeft
	CmdMoveRight
	CmdHome
	CmdEnd
	CmdInsertRune
	CmdInsertTab
	CmdBackspace
	CmdDelete
	CmdEnter
	CmdCopyLine
	CmdCutLine
	CmdPaste
	CmdSave
	CmdQuit
)

var commandNames = [...]string{
	CmdNone:       "none",
	CmdMoveUp:     "move-up",
	CmdMoveDown:   "move-down",
	CmdMoveLeft:   "move-left",
	CmdMoveRight:  "move-right",
	CmdHome:       "home",
	CmdEnd:        "end",
	CmdInsertRune: "insert",
	CmdInsertTab:  "insert-tab",
	CmdBackspace:  "backspace",
	CmdDelete:     "delete",
	CmdEnter:      "enter",
	CmdCopyLine:   "copy-line",
	CmdCutLine:    "cut-line",
	CmdPaste:      "paste",
	CmdSave:       "save",
	CmdQuit:       "quit",
}

func (k CommandKind) String() string {
	if k < 0 || int(k) >= len(commandNames) {
		return "unknown"
	}
	return commandNames[k]
}

// Command is one editing command. Rune is used by CmdInsertRune only.
type Command struct {
	Kind CommandKind
	Rune rune
}

// Insert returns the command that inserts r at the cursor.
func Insert(r rune) Command { return Command{Kind: CmdInsertRune, Rune: r} }

// Signal tells the caller whether to keep the session running.
type Signal int

const (
	Continue Signal = iota
	Quit
)
