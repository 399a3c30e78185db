package editor

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/iw2rmb/jot/buffer"
)

// Session is the editing state for one document: the cursor, the dirty
// flag, the quit guard and the status line.
//
// A Session is not safe for concurrent use.
type Session struct {
	cfg      Config
	doc      *buffer.Document
	filename string

	cursor buffer.Pos
	dirty  bool

	// top is the first document row shown by Frame.
	top int

	quit   quitGuard
	status status
}

// New returns a session editing doc, which is saved to filename.
// The cursor starts at (0, 0) and the document is clean.
func New(doc *buffer.Document, filename string, cfg Config) *Session {
	if doc == nil {
		doc = buffer.New("")
	}
	cfg = cfg.withDefaults()
	s := &Session{cfg: cfg, doc: doc, filename: filename}
	s.setStatus(statusInfo, helpHint(cfg.KeyMap))
	return s
}

// Open loads filename through cfg.FS and returns a session for it.
func Open(filename string, cfg Config) (*Session, error) {
	cfg = cfg.withDefaults()
	doc, err := buffer.Load(cfg.FS, filename)
	if err != nil {
		return nil, err
	}
	cfg.Logger.Printf("opened %s: %d lines", filename, doc.LineCount())
	return New(doc, filename, cfg), nil
}

func (s *Session) Document() *buffer.Document { return s.doc }
func (s *Session) Filename() string           { return s.filename }
func (s *Session) Cursor() buffer.Pos         { return s.cursor }
func (s *Session) Dirty() bool                { return s.dirty }
func (s *Session) Lines() []string            { return s.doc.Lines() }

// SetCursor moves the cursor to p, clamped into the document.
func (s *Session) SetCursor(p buffer.Pos) {
	s.cursor = s.doc.ClampPos(p)
}

// Status returns the current status message and whether it is a warning.
func (s *Session) Status() (string, bool) {
	return s.status.text, s.status.kind == statusWarning
}

// Apply runs one command and reports whether the session should continue.
// The only error is a failed save; the document stays dirty in that case.
func (s *Session) Apply(cmd Command) (Signal, error) {
	if cmd.Kind != CmdQuit {
		s.disarmQuit()
	}

	switch cmd.Kind {
	case CmdNone:
	case CmdMoveUp:
		s.moveVertical(-1)
	case CmdMoveDown:
		s.moveVertical(1)
	case CmdMoveLeft:
		if s.cursor.Col > 0 {
			s.cursor.Col--
		}
	case CmdMoveRight:
		if s.cursor.Col < s.doc.LineLen(s.cursor.Row) {
			s.cursor.Col++
		}
	case CmdHome:
		s.cursor.Col = 0
	case CmdEnd:
		s.cursor.Col = s.doc.LineLen(s.cursor.Row)
	case CmdInsertRune:
		s.insertRune(cmd.Rune)
	case CmdInsertTab:
		s.insertRune('\t')
	case CmdBackspace:
		s.backspace()
	case CmdDelete:
		s.deleteForward()
	case CmdEnter:
		if s.doc.SplitLine(s.cursor.Row, s.cursor.Col) {
			s.cursor = buffer.Pos{Row: s.cursor.Row + 1}
			s.dirty = true
		}
	case CmdCopyLine:
		s.copyLine()
	case CmdCutLine:
		s.cutLine()
	case CmdPaste:
		s.paste()
	case CmdSave:
		return Continue, s.Save()
	case CmdQuit:
		return s.requestQuit(), nil
	default:
		s.cfg.Logger.Printf("ignoring unknown command %d", cmd.Kind)
	}
	return Continue, nil
}

// Save writes the document to the session's file. On success the
// document is clean; on failure it stays dirty.
func (s *Session) Save() error {
	if err := s.doc.Save(s.cfg.FS, s.filename); err != nil {
		s.cfg.Logger.Printf("save %s: %v", s.filename, err)
		s.setStatus(statusWarning, fmt.Sprintf("save failed: %v", err))
		return fmt.Errorf("save: %w", err)
	}
	s.dirty = false
	s.cfg.Logger.Printf("saved %s: %d lines", s.filename, s.doc.LineCount())
	s.setStatus(statusInfo, fmt.Sprintf("wrote %d lines to %s", s.doc.LineCount(), filepath.Base(s.filename)))
	return nil
}

// InsertText inserts text at the cursor and leaves the cursor after it.
// CRLF and CR line breaks are inserted as line splits.
func (s *Session) InsertText(text string) {
	s.disarmQuit()
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	if text == "" {
		return
	}
	if end, ok := s.doc.InsertText(s.cursor.Row, s.cursor.Col, text); ok {
		s.cursor = end
		s.dirty = true
	}
}

// Tick expires the quit guard and status messages that are older than
// their window. Run calls it on every loop iteration.
func (s *Session) Tick(now time.Time) {
	if s.quit.expired(now, s.cfg.ForceQuitWindow) {
		s.disarmQuit()
	}
	if s.status.expired(now) {
		s.status = status{}
	}
}

func (s *Session) moveVertical(delta int) {
	row := s.cursor.Row + delta
	if row < 0 || row >= s.doc.LineCount() {
		return
	}
	s.cursor.Row = row
	s.cursor.Col = min(s.cursor.Col, s.doc.LineLen(row))
}

func (s *Session) insertRune(r rune) {
	if s.doc.InsertRune(s.cursor.Row, s.cursor.Col, r) {
		s.cursor.Col++
		s.dirty = true
	}
}

func (s *Session) backspace() {
	if s.cursor.Col > 0 {
		if s.doc.DeleteBefore(s.cursor.Row, s.cursor.Col) {
			s.cursor.Col--
			s.dirty = true
		}
		return
	}
	if s.cursor.Row == 0 {
		return
	}
	if at, ok := s.doc.MergeWithPrevious(s.cursor.Row); ok {
		s.cursor = buffer.Pos{Row: s.cursor.Row - 1, Col: at}
		s.dirty = true
	}
}

func (s *Session) deleteForward() {
	if s.cursor.Col < s.doc.LineLen(s.cursor.Row) {
		if s.doc.DeleteAt(s.cursor.Row, s.cursor.Col) {
			s.dirty = true
		}
		return
	}
	if s.cursor.Row+1 >= s.doc.LineCount() {
		return
	}
	if _, ok := s.doc.MergeWithPrevious(s.cursor.Row + 1); ok {
		s.dirty = true
	}
}
