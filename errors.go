package line

import "errors"

var (
	// ErrEOF is returned by Read when end-of-input is requested on an
	// empty buffer (Ctrl+D) or the input source is exhausted.
	ErrEOF = errors.New("end of input")

	// ErrInterrupted is returned by Read when the session is interrupted
	// (Ctrl+C).
	ErrInterrupted = errors.New("interrupted")

	// ErrBadInput is returned by Read when the decoder receives bytes it
	// cannot interpret even after passthrough handling (for example an
	// invalid UTF-8 encoding). The editor remains usable for a
	// subsequent Read.
	ErrBadInput = errors.New("undecodable input")

	// ErrClosed is returned by Read after Close has been called.
	ErrClosed = errors.New("editor closed")
)
