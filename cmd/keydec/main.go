// Package main is the entry point for the keydec input inspector.
//
// It puts the terminal into raw mode and prints every decoded key event,
// driving the decoder exactly the way an embedding event loop would:
// poll for readability, drain events, and force-resolve partial escape
// sequences when the wait time expires.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rivo/uniseg"
	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"github.com/dshills/keydec/decoder"
	"github.com/dshills/keydec/key"
	"github.com/dshills/keydec/termcap"
)

// Version information (set via ldflags during build).
var version = "dev"

const eventColumn = 28

type options struct {
	term        string
	wait        time.Duration
	keymap      string
	vim         bool
	showVersion bool
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	if opts.showVersion {
		fmt.Printf("keydec %s\n", version)
		return 0
	}

	table, err := termcap.ForTerm(opts.term)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load capability table: %v\n", err)
		return 1
	}

	if opts.keymap != "" {
		data, err := os.ReadFile(opts.keymap)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to read keymap: %v\n", err)
			return 1
		}
		if err := table.LoadOverrides(data); err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to apply keymap: %v\n", err)
			return 1
		}
	}

	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		fmt.Fprintln(os.Stderr, "Error: stdin is not a terminal")
		return 1
	}

	dec, err := decoder.New(os.Stdin, table, decoder.WithWaittime(opts.wait))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create decoder: %v\n", err)
		return 1
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to enter raw mode: %v\n", err)
		return 1
	}
	defer term.Restore(fd, state) //nolint:errcheck // best effort on exit

	fmt.Print("Press keys to see decoded events. Ctrl+C twice to quit.\r\n")

	inspector := &inspector{dec: dec, vim: opts.vim}
	return inspector.loop(fd)
}

func parseFlags() options {
	opts := options{}
	flag.StringVar(&opts.term, "term", os.Getenv("TERM"), "terminal type for the capability table")
	flag.DurationVar(&opts.wait, "wait", 50*time.Millisecond, "escape disambiguation wait time")
	flag.StringVar(&opts.keymap, "keymap", "", "JSON file with sequence overrides")
	flag.BoolVar(&opts.vim, "vim", false, "print Vim-style notation only")
	flag.BoolVar(&opts.showVersion, "version", false, "print version information and exit")
	flag.Parse()
	return opts
}

// inspector drives the decoder from a poll loop and prints every event.
type inspector struct {
	dec *decoder.Decoder
	vim bool

	pending    bool
	interrupts int
}

// loop is the event loop the decoder itself deliberately does not own:
// readability notification, the single outstanding wait-time timer, and
// the forced resolution when it fires.
func (in *inspector) loop(fd int) int {
	for {
		// A pending partial match arms the timeout; new bytes
		// arriving first cancel it simply by virtue of the poll
		// returning readable.
		timeout := -1
		if in.pending {
			timeout = int(in.dec.Waittime() / time.Millisecond)
		}

		fds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
		n, err := unix.Poll(fds, timeout)
		if err != nil {
			if errors.Is(err, unix.EINTR) {
				continue
			}
			fmt.Fprintf(os.Stderr, "Error: poll: %v\r\n", err)
			return 1
		}

		if n == 0 {
			// Timer fired with no intervening bytes.
			in.pending = false
			ev, res := in.dec.GetKeyForce()
			if res == decoder.ResultKey {
				if in.report(ev) {
					return 0
				}
			}
			if quit, code := in.drain(); quit {
				return code
			}
			continue
		}

		switch in.dec.AdviseReadable() {
		case decoder.ResultEOF:
			return 0
		case decoder.ResultNone:
			continue
		}

		in.pending = false
		if quit, code := in.drain(); quit {
			return code
		}
	}
}

// drain pulls events until the decoder wants more bytes or time.
func (in *inspector) drain() (bool, int) {
	for {
		ev, res := in.dec.GetKey()
		switch res {
		case decoder.ResultKey:
			if in.report(ev) {
				return true, 0
			}
		case decoder.ResultAgain:
			in.pending = true
			return false, 0
		case decoder.ResultEOF:
			return true, 0
		default:
			return false, 0
		}
	}
}

// report prints one event and returns true when it is time to quit.
func (in *inspector) report(ev key.Event) bool {
	if in.vim {
		fmt.Printf("%s\r\n", key.Format(ev, key.FormatVim))
	} else {
		canonical := key.Format(ev, 0)
		pad := eventColumn - uniseg.StringWidth(canonical)
		if pad < 1 {
			pad = 1
		}
		fmt.Printf("%s%s%s\r\n", canonical, strings.Repeat(" ", pad), key.Format(ev, key.FormatVim))
	}

	if ev.Key == key.KeyRune && ev.Rune == 'c' && ev.Modifiers == key.ModCtrl {
		in.interrupts++
		if in.interrupts >= 2 {
			return true
		}
		fmt.Print("(press Ctrl+C again to quit)\r\n")
		return false
	}
	in.interrupts = 0
	return false
}
