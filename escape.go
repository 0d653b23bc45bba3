package line

import "strconv"

// escBuilder efficiently builds ANSI escape sequences.
// It uses a pre-allocated buffer to minimize allocations.
type escBuilder struct {
	buf []byte
}

// newEscBuilder creates a new escape sequence builder with the given initial capacity.
func newEscBuilder(capacity int) *escBuilder {
	return &escBuilder{
		buf: make([]byte, 0, capacity),
	}
}

// Reset clears the buffer for reuse.
func (e *escBuilder) Reset() {
	e.buf = e.buf[:0]
}

// Len returns the current length of the buffer.
func (e *escBuilder) Len() int {
	return len(e.buf)
}

// String returns the built sequence.
func (e *escBuilder) String() string {
	return string(e.buf)
}

// writeCSI writes the Control Sequence Introducer (ESC [).
func (e *escBuilder) writeCSI() {
	e.buf = append(e.buf, '\x1b', '[')
}

// writeInt writes an integer to the buffer.
func (e *escBuilder) writeInt(n int) {
	e.buf = strconv.AppendInt(e.buf, int64(n), 10)
}

// CarriageReturn moves the cursor to column 0 of the current row.
func (e *escBuilder) CarriageReturn() {
	e.buf = append(e.buf, '\r')
}

// Newline moves the cursor to column 0 of the next row, scrolling when
// the cursor is already on the terminal's last row. Plain CSI B cannot
// scroll, which is why row advances go through this instead.
func (e *escBuilder) Newline() {
	e.buf = append(e.buf, '\r', '\n')
}

// MoveUp moves the cursor up by n rows.
func (e *escBuilder) MoveUp(n int) {
	if n <= 0 {
		return
	}
	e.writeCSI()
	if n > 1 {
		e.writeInt(n)
	}
	e.buf = append(e.buf, 'A')
}

// MoveRight moves the cursor right by n columns.
func (e *escBuilder) MoveRight(n int) {
	if n <= 0 {
		return
	}
	e.writeCSI()
	if n > 1 {
		e.writeInt(n)
	}
	e.buf = append(e.buf, 'C')
}

// EraseToEnd clears from the cursor to the end of the current row.
func (e *escBuilder) EraseToEnd() {
	e.writeCSI()
	e.buf = append(e.buf, 'K')
}

// EraseBelow clears from the cursor to the end of the screen.
func (e *escBuilder) EraseBelow() {
	e.writeCSI()
	e.buf = append(e.buf, 'J')
}

// ClearScreen homes the cursor and clears the whole screen.
func (e *escBuilder) ClearScreen() {
	e.writeCSI()
	e.buf = append(e.buf, 'H')
	e.writeCSI()
	e.buf = append(e.buf, '2', 'J')
}

// HideCursor makes the cursor invisible.
func (e *escBuilder) HideCursor() {
	e.writeCSI()
	e.buf = append(e.buf, '?', '2', '5', 'l')
}

// ShowCursor makes the cursor visible.
func (e *escBuilder) ShowCursor() {
	e.writeCSI()
	e.buf = append(e.buf, '?', '2', '5', 'h')
}

// WriteString appends a string to the buffer.
func (e *escBuilder) WriteString(s string) {
	e.buf = append(e.buf, s...)
}
