package line

import "unicode"

// Buffer is the multi-line edit buffer: an ordered sequence of runes plus
// a cursor expressed as a rune offset. Every operation is total; calls at
// the buffer edges are no-ops rather than errors, so the cursor can never
// land inside a multi-byte encoding or outside [0, Len].
type Buffer struct {
	text   []rune
	cursor int
}

// Text returns the buffer contents.
func (b *Buffer) Text() string {
	return string(b.text)
}

// Runes returns the backing rune slice. It is shared, not copied, and
// stays valid only until the next edit.
func (b *Buffer) Runes() []rune {
	return b.text
}

// Cursor returns the cursor position as a rune offset.
func (b *Buffer) Cursor() int {
	return b.cursor
}

// Len returns the number of runes in the buffer.
func (b *Buffer) Len() int {
	return len(b.text)
}

// Empty reports whether the buffer holds no text.
func (b *Buffer) Empty() bool {
	return len(b.text) == 0
}

// SetText replaces the buffer contents and places the cursor at the end.
func (b *Buffer) SetText(s string) {
	b.text = []rune(s)
	b.cursor = len(b.text)
}

// SetCursor moves the cursor to pos, clamped to the buffer bounds.
func (b *Buffer) SetCursor(pos int) {
	if pos < 0 {
		pos = 0
	}
	if pos > len(b.text) {
		pos = len(b.text)
	}
	b.cursor = pos
}

// Reset empties the buffer.
func (b *Buffer) Reset() {
	b.text = b.text[:0]
	b.cursor = 0
}

// InsertRune inserts r at the cursor and advances past it.
func (b *Buffer) InsertRune(r rune) {
	b.text = append(b.text[:b.cursor], append([]rune{r}, b.text[b.cursor:]...)...)
	b.cursor++
}

// InsertString inserts s at the cursor and advances past it.
func (b *Buffer) InsertString(s string) {
	rs := []rune(s)
	if len(rs) == 0 {
		return
	}
	b.text = append(b.text[:b.cursor], append(rs, b.text[b.cursor:]...)...)
	b.cursor += len(rs)
}

// InsertNewline inserts a line break at the cursor.
func (b *Buffer) InsertNewline() {
	b.InsertRune('\n')
}

// ReplaceSpan replaces the rune range [start, end) with s, clamping the
// range to the buffer bounds, and places the cursor after the inserted
// text.
func (b *Buffer) ReplaceSpan(start, end int, s string) {
	if start < 0 {
		start = 0
	}
	if end > len(b.text) {
		end = len(b.text)
	}
	if start > end {
		start = end
	}
	rs := []rune(s)
	out := make([]rune, 0, len(b.text)-(end-start)+len(rs))
	out = append(out, b.text[:start]...)
	out = append(out, rs...)
	out = append(out, b.text[end:]...)
	b.text = out
	b.cursor = start + len(rs)
}

// DeleteBack removes the rune before the cursor.
func (b *Buffer) DeleteBack() {
	if b.cursor == 0 {
		return
	}
	b.text = append(b.text[:b.cursor-1], b.text[b.cursor:]...)
	b.cursor--
}

// DeleteForward removes the rune at the cursor.
func (b *Buffer) DeleteForward() {
	if b.cursor >= len(b.text) {
		return
	}
	b.text = append(b.text[:b.cursor], b.text[b.cursor+1:]...)
}

// DeleteWordBack removes from the previous word boundary to the cursor.
func (b *Buffer) DeleteWordBack() {
	start := b.wordLeft()
	if start == b.cursor {
		return
	}
	b.text = append(b.text[:start], b.text[b.cursor:]...)
	b.cursor = start
}

// DeleteWordForward removes from the cursor to the next word boundary.
func (b *Buffer) DeleteWordForward() {
	end := b.wordRight()
	if end == b.cursor {
		return
	}
	b.text = append(b.text[:b.cursor], b.text[end:]...)
}

// MoveLeft moves the cursor one rune left.
func (b *Buffer) MoveLeft() {
	if b.cursor > 0 {
		b.cursor--
	}
}

// MoveRight moves the cursor one rune right.
func (b *Buffer) MoveRight() {
	if b.cursor < len(b.text) {
		b.cursor++
	}
}

// MoveWordLeft moves the cursor to the start of the previous word.
func (b *Buffer) MoveWordLeft() {
	b.cursor = b.wordLeft()
}

// MoveWordRight moves the cursor past the end of the next word.
func (b *Buffer) MoveWordRight() {
	b.cursor = b.wordRight()
}

// MoveLineStart moves the cursor to the start of the current line.
func (b *Buffer) MoveLineStart() {
	b.cursor = b.lineStart(b.cursor)
}

// MoveLineEnd moves the cursor to the end of the current line.
func (b *Buffer) MoveLineEnd() {
	b.cursor = b.lineEnd(b.cursor)
}

// MoveStart moves the cursor to the start of the buffer.
func (b *Buffer) MoveStart() {
	b.cursor = 0
}

// MoveEnd moves the cursor to the end of the buffer.
func (b *Buffer) MoveEnd() {
	b.cursor = len(b.text)
}

// MoveUp moves the cursor to the previous logical line, preserving the
// rune column where possible. It reports false when the cursor is
// already on the first line, which the read loop takes as a cue to
// browse history instead.
func (b *Buffer) MoveUp() bool {
	start := b.lineStart(b.cursor)
	if start == 0 {
		return false
	}
	col := b.cursor - start
	prevStart := b.lineStart(start - 1)
	prevLen := (start - 1) - prevStart
	if col > prevLen {
		col = prevLen
	}
	b.cursor = prevStart + col
	return true
}

// MoveDown moves the cursor to the next logical line, preserving the
// rune column where possible. It reports false when the cursor is
// already on the last line.
func (b *Buffer) MoveDown() bool {
	end := b.lineEnd(b.cursor)
	if end == len(b.text) {
		return false
	}
	col := b.cursor - b.lineStart(b.cursor)
	nextStart := end + 1
	nextLen := b.lineEnd(nextStart) - nextStart
	if col > nextLen {
		col = nextLen
	}
	b.cursor = nextStart + col
	return true
}

// KillToEnd removes from the cursor to the end of the current line. On
// an empty line it removes the line break instead, joining the next
// line, so repeated kills keep making progress.
func (b *Buffer) KillToEnd() {
	end := b.lineEnd(b.cursor)
	if end == b.cursor && end < len(b.text) {
		end++
	}
	b.text = append(b.text[:b.cursor], b.text[end:]...)
}

// KillToStart removes from the start of the current line to the cursor.
func (b *Buffer) KillToStart() {
	start := b.lineStart(b.cursor)
	if start == b.cursor {
		return
	}
	b.text = append(b.text[:start], b.text[b.cursor:]...)
	b.cursor = start
}

// Transpose swaps the rune before the cursor with the rune at the
// cursor and advances; at the end of the buffer it swaps the final two
// runes instead.
func (b *Buffer) Transpose() {
	if len(b.text) < 2 || b.cursor == 0 {
		return
	}
	if b.cursor == len(b.text) {
		b.text[b.cursor-2], b.text[b.cursor-1] = b.text[b.cursor-1], b.text[b.cursor-2]
		return
	}
	b.text[b.cursor-1], b.text[b.cursor] = b.text[b.cursor], b.text[b.cursor-1]
	b.cursor++
}

// lineStart returns the offset just after the newline preceding pos.
func (b *Buffer) lineStart(pos int) int {
	for pos > 0 && b.text[pos-1] != '\n' {
		pos--
	}
	return pos
}

// lineEnd returns the offset of the newline following pos, or Len.
func (b *Buffer) lineEnd(pos int) int {
	for pos < len(b.text) && b.text[pos] != '\n' {
		pos++
	}
	return pos
}

// wordLeft returns the offset of the start of the word before the
// cursor: whitespace is skipped first, then the word itself.
func (b *Buffer) wordLeft() int {
	pos := b.cursor
	for pos > 0 && unicode.IsSpace(b.text[pos-1]) {
		pos--
	}
	for pos > 0 && !unicode.IsSpace(b.text[pos-1]) {
		pos--
	}
	return pos
}

// wordRight returns the offset just past the end of the word after the
// cursor.
func (b *Buffer) wordRight() int {
	pos := b.cursor
	for pos < len(b.text) && unicode.IsSpace(b.text[pos]) {
		pos++
	}
	for pos < len(b.text) && !unicode.IsSpace(b.text[pos]) {
		pos++
	}
	return pos
}
