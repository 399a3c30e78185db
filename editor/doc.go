// Package editor holds the editing state machine that sits between a
// buffer.Document and a terminal.
//
// A Session owns the cursor, the dirty flag, the quit guard and status
// messages. Commands come from a KeyMap and are applied one at a time.
// Frame renders the visible state into rows; Run drives a Surface in a
// render/poll loop and Model hosts the same Session inside Bubble Tea.
package editor
