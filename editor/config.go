package editor

import (
	"io"
	"log"
	"time"

	"github.com/iw2rmb/jot/buffer"
	"github.com/iw2rmb/jot/internal/cellwidth"
)

const (
	DefaultPollTimeout     = 500 * time.Millisecond
	DefaultForceQuitWindow = 2 * time.Second
	DefaultStatusTimeout   = 5 * time.Second
	DefaultMinGutterDigits = 4
)

// Config configures a Session.
//
// Zero values are replaced with defaults by New, except Style and
// Clipboard: a zero Style renders plain text and a nil Clipboard disables
// the clipboard commands.
type Config struct {
	// FS is used to save the document. Defaults to buffer.OSFS.
	FS buffer.FS

	// PollTimeout bounds how long Run waits for a key before redrawing.
	PollTimeout time.Duration

	// ForceQuitWindow is how long a second quit press discards unsaved
	// changes after the first one was refused.
	ForceQuitWindow time.Duration

	// StatusTimeout is how long informational status messages stay visible.
	StatusTimeout time.Duration

	TabWidth        int
	MinGutterDigits int

	// KeyMap maps key events to commands. A KeyMap without a Quit binding
	// is replaced with DefaultKeyMap.
	KeyMap KeyMap
	Style  Style

	Clipboard Clipboard

	// Logger receives save and quit diagnostics. Defaults to a discarding logger.
	Logger *log.Logger

	// Now is the clock used by the quit guard and status timeouts.
	Now func() time.Time
}

func (cfg Config) withDefaults() Config {
	if cfg.FS == nil {
		cfg.FS = buffer.OSFS{}
	}
	if cfg.PollTimeout <= 0 {
		cfg.PollTimeout = DefaultPollTimeout
	}
	if cfg.ForceQuitWindow <= 0 {
		cfg.ForceQuitWindow = DefaultForceQuitWindow
	}
	if cfg.StatusTimeout <= 0 {
		cfg.StatusTimeout = DefaultStatusTimeout
	}
	if cfg.TabWidth <= 0 {
		cfg.TabWidth = cellwidth.DefaultTabWidth
	}
	if cfg.MinGutterDigits <= 0 {
		cfg.MinGutterDigits = DefaultMinGutterDigits
	}
	if len(cfg.KeyMap.Quit.Keys()) == 0 {
		cfg.KeyMap = DefaultKeyMap()
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard, "", 0)
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return cfg
}
