package buffer

import (
	"slices"
	"strings"
)

// Mutators report whether they applied. A false result means the position
// was outside the document; the document is left unchanged.

func (d *Document) validPos(row, col int) bool {
	return row >= 0 && row < len(d.lines) && col >= 0 && col <= len(d.lines[row])
}

// InsertRune inserts r at (row, col).
func (d *Document) InsertRune(row, col int, r rune) bool {
	if !d.validPos(row, col) {
		return false
	}
	line := d.lines[row]
	next := make([]rune, 0, len(line)+1)
	next = append(next, line[:col]...)
	next = append(next, r)
	next = append(next, line[col:]...)
	d.lines[row] = next
	return true
}

// InsertText inserts s at (row, col). Each '\n' in s starts a new line.
// It returns the position just after the inserted text.
func (d *Document) InsertText(row, col int, s string) (Pos, bool) {
	if !d.validPos(row, col) {
		return Pos{}, false
	}

	line := d.lines[row]
	prefix := slices.Clone(line[:col])
	suffix := slices.Clone(line[col:])

	parts := strings.Split(s, "\n")
	if len(parts) == 1 {
		ins := []rune(parts[0])
		d.lines[row] = slices.Concat(prefix, ins, suffix)
		return Pos{Row: row, Col: col + len(ins)}, true
	}

	repl := make([][]rune, 0, len(parts))
	repl = append(repl, slices.Concat(prefix, []rune(parts[0])))
	for _, p := range parts[1 : len(parts)-1] {
		repl = append(repl, []rune(p))
	}
	last := []rune(parts[len(parts)-1])
	repl = append(repl, slices.Concat(last, suffix))

	d.lines = slices.Concat(d.lines[:row], repl, d.lines[row+1:])
	return Pos{Row: row + len(parts) - 1, Col: len(last)}, true
}

// DeleteBefore removes the rune immediately left of col on row.
func (d *Document) DeleteBefore(row, col int) bool {
	if !d.validPos(row, col) || col == 0 {
		return false
	}
	line := d.lines[row]
	d.lines[row] = append(line[:col-1:col-1], line[col:]...)
	return true
}

// DeleteAt removes the rune at col on row.
func (d *Document) DeleteAt(row, col int) bool {
	if !d.validPos(row, col) || col == len(d.lines[row]) {
		return false
	}
	line := d.lines[row]
	d.lines[row] = append(line[:col:col], line[col+1:]...)
	return true
}

// MergeWithPrevious appends row to row-1 and removes row. It returns the
// length the previous line had before the merge, which is where the joined
// text starts.
func (d *Document) MergeWithPrevious(row int) (int, bool) {
	if row <= 0 || row >= len(d.lines) {
		return 0, false
	}
	prev := d.lines[row-1]
	at := len(prev)
	d.lines[row-1] = slices.Concat(prev, d.lines[row])
	d.lines = slices.Delete(d.lines, row, row+1)
	return at, true
}

// SplitLine truncates row at col and inserts the remainder as row+1.
func (d *Document) SplitLine(row, col int) bool {
	if !d.validPos(row, col) {
		return false
	}
	line := d.lines[row]
	head := slices.Clone(line[:col])
	tail := slices.Clone(line[col:])
	d.lines[row] = head
	d.lines = slices.Insert(d.lines, row+1, tail)
	return true
}

// RemoveLine deletes row and returns its text. Removing the only line
// leaves a single empty line.
func (d *Document) RemoveLine(row int) (string, bool) {
	if row < 0 || row >= len(d.lines) {
		return "", false
	}
	removed := string(d.lines[row])
	if len(d.lines) == 1 {
		d.lines[0] = nil
		return removed, true
	}
	d.lines = slices.Delete(d.lines, row, row+1)
	return removed, true
}
