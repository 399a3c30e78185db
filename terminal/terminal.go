package terminal

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// ErrNotTerminal is returned by Enter when input is not an interactive terminal.
var ErrNotTerminal = errors.New("input is not a terminal")

// escTimeout bounds the wait for the rest of an escape or UTF-8 sequence.
const escTimeout = 50 * time.Millisecond

const (
	defaultWidth  = 80
	defaultHeight = 24
)

// Terminal is the raw-mode terminal surface.
type Terminal struct {
	in    *os.File
	out   io.Writer
	inFd  int
	outFd int // -1 when out is not a file

	state  *term.State // saved terminal state
	active bool

	frame bytes.Buffer
	seq   *termenv.Output // writes escape sequences into frame

	pending []byte
	readBuf [256]byte
}

// New returns a Terminal reading keys from in and drawing to out.
func New(in *os.File, out io.Writer) *Terminal {
	t := &Terminal{
		in:    in,
		out:   out,
		inFd:  int(in.Fd()),
		outFd: -1,
	}
	if f, ok := out.(*os.File); ok {
		t.outFd = int(f.Fd())
	}
	t.seq = termenv.NewOutput(&t.frame, termenv.WithProfile(termenv.Ascii))
	return t
}

// Enter switches to raw mode and the alternate screen. Calling Enter on an
// active terminal is a no-op. When Enter fails the terminal is left as it
// was found.
func (t *Terminal) Enter() error {
	if t.active {
		return nil
	}
	if !term.IsTerminal(t.inFd) {
		return ErrNotTerminal
	}

	state, err := term.MakeRaw(t.inFd)
	if err != nil {
		return fmt.Errorf("enter raw mode: %w", err)
	}
	t.state = state
	t.active = true

	t.frame.Reset()
	t.seq.AltScreen()
	t.seq.ClearScreen()
	t.seq.HideCursor()
	if err := t.writeFrame(); err != nil {
		t.active = false
		t.state = nil
		if rerr := term.Restore(t.inFd, state); rerr != nil {
			return errors.Join(err, fmt.Errorf("restore terminal: %w", rerr))
		}
		return err
	}
	return nil
}

// Leave shows the cursor, leaves the alternate screen and restores the saved
// terminal state. It is safe to call more than once and after a failed Enter.
func (t *Terminal) Leave() error {
	if !t.active {
		return nil
	}
	t.active = false
	t.pending = t.pending[:0]

	t.frame.Reset()
	t.seq.ShowCursor()
	t.seq.ExitAltScreen()
	werr := t.writeFrame()

	var rerr error
	if t.state != nil {
		if err := term.Restore(t.inFd, t.state); err != nil {
			rerr = fmt.Errorf("restore terminal: %w", err)
		}
		t.state = nil
	}
	return errors.Join(werr, rerr)
}

// Size returns the terminal size in cells, falling back to 80x24.
func (t *Terminal) Size() (width, height int) {
	fd := t.outFd
	if fd < 0 {
		fd = t.inFd
	}
	w, h, err := term.GetSize(fd)
	if err != nil || w <= 0 || h <= 0 {
		return defaultWidth, defaultHeight
	}
	return w, h
}

// Clear starts a new frame: the cursor is hidden and the screen erased.
func (t *Terminal) Clear() error {
	t.frame.Reset()
	t.seq.HideCursor()
	t.seq.ClearScreen()
	return nil
}

// WriteLine draws text at the start of row (0-based).
func (t *Terminal) WriteLine(row int, text string) error {
	t.seq.MoveCursor(row+1, 1)
	t.frame.WriteString(text)
	return nil
}

// MoveCursor places the cursor at (col, row), both 0-based.
func (t *Terminal) MoveCursor(col, row int) error {
	t.seq.MoveCursor(row+1, col+1)
	return nil
}

// Flush shows the cursor and writes the composed frame.
func (t *Terminal) Flush() error {
	t.seq.ShowCursor()
	return t.writeFrame()
}

func (t *Terminal) writeFrame() error {
	defer t.frame.Reset()
	if t.frame.Len() == 0 {
		return nil
	}
	if _, err := t.out.Write(t.frame.Bytes()); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}

// PollKey waits up to timeout for a key. It returns false when no key
// arrived in time. Bytes beyond the first key stay queued for the next call.
func (t *Terminal) PollKey(timeout time.Duration) (KeyEvent, bool, error) {
	if len(t.pending) == 0 {
		ready, err := t.wait(timeout)
		if err != nil || !ready {
			return KeyEvent{}, false, err
		}
		if err := t.fill(); err != nil {
			return KeyEvent{}, false, err
		}
	}

	if incomplete(t.pending) {
		ready, err := t.wait(escTimeout)
		if err != nil {
			return KeyEvent{}, false, err
		}
		if ready {
			if err := t.fill(); err != nil {
				return KeyEvent{}, false, err
			}
		}
	}

	ev, n := Decode(t.pending)
	if n <= 0 || n > len(t.pending) {
		n = len(t.pending)
	}
	t.pending = append(t.pending[:0], t.pending[n:]...)
	if ev.Code == KeyNone {
		return KeyEvent{}, false, nil
	}
	return ev, true, nil
}

func (t *Terminal) fill() error {
	n, err := t.in.Read(t.readBuf[:])
	if n > 0 {
		t.pending = append(t.pending, t.readBuf[:n]...)
	}
	if err != nil && n == 0 {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}
