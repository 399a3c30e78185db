package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/iw2rmb/jot"
	"github.com/iw2rmb/jot/editor"
	"github.com/iw2rmb/jot/terminal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGHUP)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr, editor.Config{
		Style:     editor.DefaultStyle(),
		Clipboard: editor.DefaultClipboard(),
	})
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, in *os.File, out, errOut io.Writer, cfg editor.Config) int {
	if len(args) != 1 {
		fmt.Fprintf(errOut, "usage: jot <file>\njot %s\n", jot.VersionTag())
		return 1
	}
	path := args[0]

	s, err := editor.Open(path, cfg)
	if err != nil {
		var pe *fs.PathError
		if errors.As(err, &pe) {
			err = pe.Err
		}
		fmt.Fprintf(errOut, "jot: cannot open %s: %v\n", path, err)
		return 1
	}

	if err := s.Run(ctx, terminal.New(in, out)); err != nil {
		fmt.Fprintf(errOut, "jot: %v\n", err)
		return 1
	}
	return 0
}
