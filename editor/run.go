package editor

import (
	"context"
	"fmt"
	"time"

	"github.com/iw2rmb/jot/terminal"
)

// Surface is the screen a Session runs on. *terminal.Terminal implements it.
type Surface interface {
	Enter() error
	// Leave must be safe to call after a failed Enter.
	Leave() error
	Size() (width, height int)

	Clear() error
	WriteLine(row int, text string) error
	MoveCursor(col, row int) error
	Flush() error

	// PollKey waits up to timeout for a key; ok is false on timeout.
	PollKey(timeout time.Duration) (ev terminal.KeyEvent, ok bool, err error)
}

var _ Surface = (*terminal.Terminal)(nil)

// Run enters surf and loops: render, poll for a key, apply its command.
// It returns nil once a quit is accepted, the first render, input or save
// error otherwise, or ctx.Err() when ctx is cancelled between polls.
//
// surf.Leave runs on every return path, a failed Enter and panics included.
// Its error is returned only when everything else succeeded.
func (s *Session) Run(ctx context.Context, surf Surface) (err error) {
	defer func() {
		if lerr := surf.Leave(); lerr != nil && err == nil {
			err = fmt.Errorf("leave terminal: %w", lerr)
		}
		if err != nil {
			s.cfg.Logger.Printf("run %s: %v", s.filename, err)
		}
	}()
	if err := surf.Enter(); err != nil {
		return fmt.Errorf("enter terminal: %w", err)
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.Tick(s.cfg.Now())
		if err := s.Render(surf); err != nil {
			return err
		}

		ev, ok, err := surf.PollKey(s.cfg.PollTimeout)
		if err != nil {
			return fmt.Errorf("read key: %w", err)
		}
		if !ok {
			continue
		}

		sig, err := s.Apply(s.cfg.KeyMap.Translate(ev))
		if err != nil {
			return err
		}
		if sig == Quit {
			return nil
		}
	}
}

// Render draws one frame on surf and flushes it.
func (s *Session) Render(surf Surface) error {
	w, h := surf.Size()
	f := s.Frame(w, h)

	if err := surf.Clear(); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	for i, row := range f.Rows {
		if err := surf.WriteLine(i, row); err != nil {
			return fmt.Errorf("render: %w", err)
		}
	}
	if err := surf.MoveCursor(f.CursorCol, f.CursorRow); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if err := surf.Flush(); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}
