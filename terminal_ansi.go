package line

import (
	"bytes"
	"fmt"
	"os"
	"os/signal"
	"time"

	"golang.org/x/term"
)

// ANSITerminal implements Terminal for a real tty using ANSI escape
// sequences. Output is buffered until Flush so each frame reaches the
// terminal in a single write. Raw mode state is tracked so ExitRawMode
// always restores exactly what EnterRawMode saw.
type ANSITerminal struct {
	in       *os.File
	out      *os.File
	wbuf     bytes.Buffer
	caps     Capabilities
	rawState *term.State
	sigCh    chan os.Signal
}

var _ Terminal = (*ANSITerminal)(nil)

// NewANSITerminal creates a terminal over the given input and output
// files (usually os.Stdin and os.Stdout) with auto-detected
// capabilities, registered for resize signals where the platform
// delivers them.
func NewANSITerminal(in, out *os.File) *ANSITerminal {
	t := &ANSITerminal{
		in:    in,
		out:   out,
		caps:  DetectCapabilities(),
		sigCh: make(chan os.Signal, 1),
	}
	notifyResize(t.sigCh)
	return t
}

// Read fills p with at least one available input byte, blocking until
// input arrives. os.File retries interrupted reads internally.
func (t *ANSITerminal) Read(p []byte) (int, error) {
	n, err := t.in.Read(p)
	if err != nil {
		return n, fmt.Errorf("read terminal: %w", err)
	}
	return n, nil
}

// Poll waits until input is readable or the timeout elapses. A signal
// arriving during the wait reports (false, nil) so the caller can check
// Resized before blocking again.
func (t *ANSITerminal) Poll(timeout time.Duration) (bool, error) {
	return pollFd(int(t.in.Fd()), timeout)
}

// WriteString queues s for output.
func (t *ANSITerminal) WriteString(s string) (int, error) {
	return t.wbuf.WriteString(s)
}

// Flush writes all queued output in a single write.
func (t *ANSITerminal) Flush() error {
	if t.wbuf.Len() == 0 {
		return nil
	}
	_, err := t.out.Write(t.wbuf.Bytes())
	t.wbuf.Reset()
	if err != nil {
		return fmt.Errorf("write terminal: %w", err)
	}
	return nil
}

// Size returns the terminal dimensions.
// Returns a default of 80x24 if the size cannot be determined.
func (t *ANSITerminal) Size() (width, height int) {
	w, h, err := term.GetSize(int(t.out.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return 80, 24
	}
	return w, h
}

// EnterRawMode puts the terminal into raw mode, remembering the mode it
// was in.
func (t *ANSITerminal) EnterRawMode() error {
	state, err := term.MakeRaw(int(t.in.Fd()))
	if err != nil {
		return fmt.Errorf("enter raw mode: %w", err)
	}
	t.rawState = state
	return nil
}

// ExitRawMode restores the terminal to the mode EnterRawMode saw.
func (t *ANSITerminal) ExitRawMode() error {
	if t.rawState == nil {
		return nil
	}
	state := t.rawState
	t.rawState = nil
	if err := term.Restore(int(t.in.Fd()), state); err != nil {
		return fmt.Errorf("exit raw mode: %w", err)
	}
	return nil
}

// Resized drains pending resize signals, reporting whether any arrived.
func (t *ANSITerminal) Resized() bool {
	resized := false
	for {
		select {
		case <-t.sigCh:
			resized = true
		default:
			return resized
		}
	}
}

// Suspend hands control back to the shell until the user resumes the
// process. Unsupported platforms return an error.
func (t *ANSITerminal) Suspend() error {
	return suspendProcess()
}

// Caps returns the terminal's capabilities.
func (t *ANSITerminal) Caps() Capabilities {
	return t.caps
}

// SetCaps overrides the auto-detected capabilities.
func (t *ANSITerminal) SetCaps(caps Capabilities) {
	t.caps = caps
}

// Close unregisters the resize signal handler. The underlying files are
// left open; the terminal does not own them.
func (t *ANSITerminal) Close() error {
	signal.Stop(t.sigCh)
	return nil
}
