package editor

import (
	"fmt"
	"time"
)

type statusKind int

const (
	statusInfo statusKind = iota
	statusWarning
)

type status struct {
	kind    statusKind
	text    string
	expires time.Time
}

func (st status) expired(now time.Time) bool {
	return st.text != "" && !now.Before(st.expires)
}

// setStatus shows text until StatusTimeout passes. Warnings about the quit
// guard are cleared by disarmQuit instead.
func (s *Session) setStatus(kind statusKind, text string) {
	s.status = status{kind: kind, text: text, expires: s.cfg.Now().Add(s.cfg.StatusTimeout)}
}

// quitGuard holds the one-shot override armed by a refused quit.
type quitGuard struct {
	armed   bool
	armedAt time.Time
}

// expired uses the same boundary as the warning status it shows, so the
// guard never outlives its warning.
func (q quitGuard) expired(now time.Time, window time.Duration) bool {
	return q.armed && !now.Before(q.armedAt.Add(window))
}

// requestQuit quits a clean session. A dirty session quits only when the
// guard was armed by a previous quit within ForceQuitWindow; otherwise the
// guard is armed and a warning is shown.
func (s *Session) requestQuit() Signal {
	if !s.dirty {
		s.cfg.Logger.Printf("quit %s", s.filename)
		return Quit
	}
	now := s.cfg.Now()
	if s.quit.armed && !s.quit.expired(now, s.cfg.ForceQuitWindow) {
		s.cfg.Logger.Printf("quit %s: discarding unsaved changes", s.filename)
		return Quit
	}
	s.quit = quitGuard{armed: true, armedAt: now}
	s.status = status{
		kind:    statusWarning,
		text:    fmt.Sprintf("unsaved changes: press %s again within %s to discard", s.cfg.KeyMap.Quit.Help().Key, s.cfg.ForceQuitWindow),
		expires: now.Add(s.cfg.ForceQuitWindow),
	}
	return Continue
}

func (s *Session) disarmQuit() {
	if !s.quit.armed {
		return
	}
	s.quit = quitGuard{}
	if s.status.kind == statusWarning {
		s.status = status{}
	}
}
