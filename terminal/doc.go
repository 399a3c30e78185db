// Package terminal drives a raw-mode, alternate-screen terminal for jot.
//
// A Terminal composes each frame in memory and writes it with a single
// Write on Flush. Input is polled with a bounded timeout and decoded into
// KeyEvent values whose String form uses Bubble Tea key names, so the same
// bubbles/key bindings work for both.
package terminal
