package editor

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/iw2rmb/jot/buffer"
)

type memFS struct {
	files    map[string][]byte
	writeErr error
}

func newMemFS() *memFS { return &memFS{files: map[string][]byte{}} }

func (m *memFS) ReadFile(name string) ([]byte, error) {
	data, ok := m.files[name]
	if !ok {
		return nil, fmt.Errorf("open %s: %w", name, errors.New("file does not exist"))
	}
	return append([]byte(nil), data...), nil
}

func (m *memFS) WriteFile(name string, data []byte) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	m.files[name] = append([]byte(nil), data...)
	return nil
}

type fakeClock struct{ now time.Time }

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type fakeClipboard struct {
	text string
	err  error
}

func (c *fakeClipboard) ReadText() (string, error) { return c.text, c.err }
func (c *fakeClipboard) WriteText(s string) error {
	if c.err != nil {
		return c.err
	}
	c.text = s
	return nil
}

type harness struct {
	s     *Session
	fs    *memFS
	clock *fakeClock
	clip  *fakeClipboard
}

func newHarness(text string) *harness {
	h := &harness{fs: newMemFS(), clock: newFakeClock(), clip: &fakeClipboard{}}
	h.s = New(buffer.New(text), "note.txt", Config{
		FS:        h.fs,
		Now:       h.clock.Now,
		Clipboard: h.clip,
	})
	return h
}

func (h *harness) apply(cmds ...Command) Signal {
	var sig Signal
	for _, c := range cmds {
		var err error
		sig, err = h.s.Apply(c)
		if err != nil {
			panic(err)
		}
	}
	return sig
}

func cmd(k CommandKind) Command { return Command{Kind: k} }

func joinLines(lines []string) string { return strings.Join(lines, "|") }
