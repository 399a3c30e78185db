package editor

import (
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/iw2rmb/jot/buffer"
)

// Clipboard provides editor-level clipboard integration.
//
// Errors must not end the session; failures are reported on the status line.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}

// SystemClipboard is the OS clipboard.
type SystemClipboard struct{}

func (SystemClipboard) ReadText() (string, error) { return clipboard.ReadAll() }
func (SystemClipboard) WriteText(s string) error  { return clipboard.WriteAll(s) }

// DefaultClipboard returns SystemClipboard, or nil when the platform has no
// clipboard tool available.
func DefaultClipboard() Clipboard {
	if clipboard.Unsupported {
		return nil
	}
	return SystemClipboard{}
}

// Lines are copied with a trailing newline so pasting at column 0 puts the
// whole line back above the cursor.
func (s *Session) copyLine() {
	if s.cfg.Clipboard == nil {
		return
	}
	line, _ := s.doc.Line(s.cursor.Row)
	if err := s.cfg.Clipboard.WriteText(line + "\n"); err != nil {
		s.setStatus(statusWarning, fmt.Sprintf("copy failed: %v", err))
		return
	}
	s.setStatus(statusInfo, fmt.Sprintf("copied line %d", s.cursor.Row+1))
}

func (s *Session) cutLine() {
	if s.cfg.Clipboard == nil {
		return
	}
	if s.doc.LineCount() == 1 && s.doc.LineLen(0) == 0 {
		return
	}
	row := s.cursor.Row
	line, _ := s.doc.Line(row)
	if err := s.cfg.Clipboard.WriteText(line + "\n"); err != nil {
		s.setStatus(statusWarning, fmt.Sprintf("cut failed: %v", err))
		return
	}
	if _, ok := s.doc.RemoveLine(row); ok {
		s.cursor = s.doc.ClampPos(buffer.Pos{Row: row})
		s.dirty = true
	}
}

func (s *Session) paste() {
	if s.cfg.Clipboard == nil {
		return
	}
	text, err := s.cfg.Clipboard.ReadText()
	if err != nil {
		s.setStatus(statusWarning, fmt.Sprintf("paste failed: %v", err))
		return
	}
	s.InsertText(text)
}
