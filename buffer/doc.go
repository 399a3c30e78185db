// Package buffer implements the document model for jot.
//
// A Document is an ordered list of lines addressed by (Row, Col) in runes,
// both 0-based. Line terminators are not stored; the terminator seen at load
// is reapplied on save. A Document always holds at least one line.
package buffer
