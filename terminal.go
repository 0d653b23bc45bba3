package line

import "time"

// Terminal abstracts the platform boundary: blocking byte input with a
// readability poll, buffered escape-sequence output, size queries, raw
// mode, and resize notification. Implementations are ANSITerminal for a
// real tty and MockTerminal for tests; the engine itself performs no
// platform calls.
type Terminal interface {
	// Read fills p with at least one available input byte, blocking
	// until input arrives. Interrupted system calls are retried.
	Read(p []byte) (int, error)

	// Poll waits until input is readable or the timeout elapses,
	// reporting (false, nil) on timeout. A negative timeout blocks
	// indefinitely; zero checks without waiting. Poll also returns
	// (false, nil) when a signal interrupts the wait, so callers get a
	// chance to notice a pending resize.
	Poll(timeout time.Duration) (bool, error)

	// WriteString queues s for output.
	WriteString(s string) (int, error)

	// Flush writes all queued output to the terminal in one write.
	Flush() error

	// Size returns the terminal dimensions in cells.
	Size() (width, height int)

	// EnterRawMode puts the terminal into raw mode for
	// character-by-character input.
	EnterRawMode() error

	// ExitRawMode restores the terminal to the mode it was in before
	// EnterRawMode. Safe to call when raw mode is not active.
	ExitRawMode() error

	// Resized drains any pending resize notification, reporting whether
	// one arrived since the last call.
	Resized() bool

	// Suspend stops the controlling process until the user resumes it,
	// where the platform supports that. Callers restore cooked mode
	// before suspending and re-enter raw mode after.
	Suspend() error

	// Caps returns the terminal's capabilities.
	Caps() Capabilities

	// Close releases platform resources such as signal registrations.
	// It does not close the underlying files.
	Close() error
}
