package progress

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/briandowns/spinner"
)

// Display shows one spinner at a time. Outside a terminal it prints the
// message once, or nothing when quiet.
type Display struct {
	caps    Capabilities
	symbols Symbols
	out     io.Writer
	quiet   bool

	mu      sync.Mutex
	spinner *spinner.Spinner
}

// NewDisplay creates a display writing to stderr.
func NewDisplay(caps Capabilities) *Display {
	return &Display{caps: caps, symbols: SelectSymbols(caps), out: os.Stderr}
}

// WithWriter redirects output, mainly for tests.
func (d *Display) WithWriter(w io.Writer) *Display {
	d.out = w
	return d
}

// Quiet suppresses the non-terminal fallback message.
func (d *Display) Quiet() *Display {
	d.quiet = true
	return d
}

// Start begins a spinner with msg, replacing any running one.
func (d *Display) Start(msg string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopLocked()

	if !d.caps.IsTTY {
		if !d.quiet {
			fmt.Fprintln(d.out, msg)
		}
		return
	}
	s := spinner.New(spinner.CharSets[d.symbols.SpinnerSet], 100*time.Millisecond, spinner.WithWriter(d.out))
	s.Suffix = " " + msg
	s.Start()
	d.spinner = s
}

// Stop removes the spinner without printing a result.
func (d *Display) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopLocked()
}

// Finish stops the spinner and prints msg behind a success or failure mark.
func (d *Display) Finish(ok bool, msg string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopLocked()
	fmt.Fprintf(d.out, "%s %s\n", Mark(d.symbols, ok, d.caps.SupportsColor), msg)
}

func (d *Display) stopLocked() {
	if d.spinner != nil {
		d.spinner.Stop()
		d.spinner = nil
	}
}
