package line

import (
	"errors"
	"fmt"
	"io"
	"time"
)

// escTimeout is how long the reader waits for the rest of an incomplete
// escape sequence before flushing what it has: a lone ESC is delivered
// as the Escape key, anything else as a RawEvent. Long enough for the
// remaining bytes of a keypress to arrive over a slow connection, short
// enough that an Escape press does not feel laggy.
const escTimeout = 50 * time.Millisecond

// keyReader turns the terminal's byte stream into key events. It owns
// all decoder state that crosses read boundaries: parsed events not yet
// delivered, the bytes of an incomplete trailing sequence, and the
// deadline after which those bytes are flushed rather than waited on.
type keyReader struct {
	term     Terminal
	timeout  time.Duration
	buf      []byte
	pending  []Event
	partial  []byte
	deadline time.Time
}

func newKeyReader(t Terminal) *keyReader {
	return &keyReader{
		term:    t,
		timeout: escTimeout,
		buf:     make([]byte, 256),
	}
}

// next returns the next event, blocking until one is available. Resize
// notifications take priority over queued input so a redraw happens
// against the new width before more editing applies. The end of the
// input stream surfaces as ErrEOF once all buffered input, including a
// flushed partial sequence, has been delivered.
func (r *keyReader) next() (Event, error) {
	for {
		if r.term.Resized() {
			w, h := r.term.Size()
			return ResizeEvent{Width: w, Height: h}, nil
		}
		if len(r.pending) > 0 {
			ev := r.pending[0]
			r.pending = r.pending[1:]
			return ev, nil
		}

		// Block indefinitely unless a partial sequence is waiting on its
		// flush deadline.
		timeout := time.Duration(-1)
		if len(r.partial) > 0 {
			timeout = time.Until(r.deadline)
			if timeout < 0 {
				timeout = 0
			}
		}
		ready, err := r.term.Poll(timeout)
		if err != nil {
			return nil, fmt.Errorf("poll terminal: %w", err)
		}
		if !ready {
			// Timeout or signal wakeup. Flush an expired partial; a
			// signal wakeup falls through to recheck Resized.
			if len(r.partial) > 0 && !time.Now().Before(r.deadline) {
				r.flushPartial()
			}
			continue
		}

		n, err := r.term.Read(r.buf)
		if n > 0 {
			r.decode(r.buf[:n])
			continue
		}
		// No bytes: the input stream ended.
		if len(r.partial) > 0 {
			r.flushPartial()
			continue
		}
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
		return nil, ErrEOF
	}
}

// decode runs freshly read bytes, prefixed by any held-back partial
// sequence, through the parser and queues the events. RawEvent bytes
// are copied because the read buffer is reused.
func (r *keyReader) decode(data []byte) {
	if len(r.partial) > 0 {
		data = append(r.partial, data...)
		r.partial = nil
	}
	events, remainder := parseInput(data, false)
	for _, ev := range events {
		if raw, ok := ev.(RawEvent); ok {
			raw.Bytes = append([]byte(nil), raw.Bytes...)
			ev = raw
		}
		r.pending = append(r.pending, ev)
	}
	if len(remainder) > 0 {
		r.partial = append([]byte(nil), remainder...)
		r.deadline = time.Now().Add(r.timeout)
	} else {
		r.deadline = time.Time{}
	}
}

// flushPartial decodes the held-back bytes with no more input expected.
func (r *keyReader) flushPartial() {
	events, _ := parseInput(r.partial, true)
	for _, ev := range events {
		if raw, ok := ev.(RawEvent); ok {
			raw.Bytes = append([]byte(nil), raw.Bytes...)
			ev = raw
		}
		r.pending = append(r.pending, ev)
	}
	r.partial = nil
	r.deadline = time.Time{}
}
