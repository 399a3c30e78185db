package buffer

import (
	"errors"
	"io/fs"
	"runtime"
	"strings"
	"unicode/utf8"
)

// ErrInvalidUTF8 is returned by Load for files that are not UTF-8 text.
var ErrInvalidUTF8 = errors.New("not valid UTF-8 text")

// Document is the in-memory line buffer of one file.
type Document struct {
	lines   [][]rune
	newline string
}

// New builds a document from text. An empty text yields one empty line.
func New(text string) *Document {
	lines, newline := splitLines(text)
	return &Document{lines: lines, newline: newline}
}

// Load reads path through fsys and splits it into lines.
// Read errors are returned unchanged.
func Load(fsys FS, path string) (*Document, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(data) {
		return nil, &fs.PathError{Op: "read", Path: path, Err: ErrInvalidUTF8}
	}
	return New(string(data)), nil
}

// Save writes every line joined by the document terminator to path.
func (d *Document) Save(fsys FS, path string) error {
	return fsys.WriteFile(path, []byte(d.Text()))
}

func (d *Document) LineCount() int { return len(d.lines) }

// Line returns the text of row, or false when row is out of range.
func (d *Document) Line(row int) (string, bool) {
	if row < 0 || row >= len(d.lines) {
		return "", false
	}
	return string(d.lines[row]), true
}

// LineLen returns the rune length of row, or 0 when row is out of range.
func (d *Document) LineLen(row int) int {
	if row < 0 || row >= len(d.lines) {
		return 0
	}
	return len(d.lines[row])
}

func (d *Document) Lines() []string {
	out := make([]string, len(d.lines))
	for i, line := range d.lines {
		out[i] = string(line)
	}
	return out
}

// Newline returns the terminator used when the document is written out.
func (d *Document) Newline() string { return d.newline }

func (d *Document) Text() string {
	var sb strings.Builder
	for i, line := range d.lines {
		if i > 0 {
			sb.WriteString(d.newline)
		}
		sb.WriteString(string(line))
	}
	return sb.String()
}

// ClampPos clamps p into the bounds of d.
func (d *Document) ClampPos(p Pos) Pos {
	return ClampPos(p, len(d.lines), d.LineLen)
}

func platformNewline() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}

// splitLines splits on '\n' and drops the '\r' of each "\r\n", so joining
// the result with the detected terminator restores the input. A '\r' that
// is not followed by '\n' stays in its line.
func splitLines(text string) ([][]rune, string) {
	newline := platformNewline()
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		newline = "\n"
		if i > 0 && text[i-1] == '\r' {
			newline = "\r\n"
		}
	}

	parts := strings.Split(text, "\n")
	lines := make([][]rune, 0, len(parts))
	for i, s := range parts {
		if i < len(parts)-1 {
			s = strings.TrimSuffix(s, "\r")
		}
		lines = append(lines, []rune(s))
	}
	if len(lines) == 0 {
		lines = append(lines, nil)
	}
	return lines, newline
}
