package line

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
)

// renderer paints the edit buffer onto the terminal and keeps it
// current with minimal writes. It remembers the rows of the last frame
// and repaints only the ones whose content changed, tracking the cursor
// relatively so the frame can sit anywhere on screen and scroll with
// it.
//
// Frames are laid out one column short of the terminal width. Writing
// into the last column puts terminals in a pending-wrap state whose
// behavior varies; giving that column up entirely keeps cursor math
// exact everywhere.
type renderer struct {
	term       Terminal
	prompt     string
	contPrompt string
	hintStyle  Style

	rows      []string
	cursorRow int
	cursorCol int
	width     int
	valid     bool
	clear     bool
}

func newRenderer(t Terminal, prompt, contPrompt string, hintStyle Style) *renderer {
	return &renderer{
		term:       t,
		prompt:     prompt,
		contPrompt: contPrompt,
		hintStyle:  hintStyle,
		valid:      true,
	}
}

func (r *renderer) setPrompt(prompt string) {
	r.prompt = prompt
}

// invalidate forces the next draw to repaint every row. Used after a
// resize or after another process may have written to the screen.
func (r *renderer) invalidate() {
	r.valid = false
}

// scheduleClear makes the next draw erase the whole screen first and
// repaint the frame at the top.
func (r *renderer) scheduleClear() {
	r.clear = true
}

// draw brings the screen in sync with the given buffer state. spans
// carry optional highlighting of the full text and hint an optional
// ghost completion shown after the last row.
func (r *renderer) draw(text []rune, cursor int, spans []Span, hint string) error {
	termW, _ := r.term.Size()
	layoutW := termW - 1
	if layoutW < 2 {
		layoutW = 2
	}
	if layoutW != r.width {
		r.width = layoutW
		r.valid = false
	}

	lay := ComputeLayout(text, cursor, VisibleWidth(r.prompt), VisibleWidth(r.contPrompt), layoutW)
	profile := r.term.Caps().Profile
	frame := r.buildRows(text, lay, spans, hint, profile)

	esc := newEscBuilder(256)
	if r.clear {
		esc.ClearScreen()
		r.clear = false
		r.rows = nil
		r.cursorRow = 0
		r.valid = true
	}

	prev := r.rows
	if !r.valid {
		prev = nil
	}

	var changed []int
	for i, row := range frame {
		if i < len(prev) && prev[i] == row {
			continue
		}
		changed = append(changed, i)
	}
	// Invalidation discards row content, not geometry: the retained row
	// count still says how far down the old frame reached, so a full
	// redraw erases the rows it no longer covers.
	stale := len(r.rows) > len(frame)

	if esc.Len() == 0 && len(changed) == 0 && !stale {
		if lay.CursorRow == r.cursorRow && lay.CursorCol == r.cursorCol {
			return nil
		}
		// Only the cursor moved.
		r.moveToRow(esc, lay.CursorRow)
		esc.CarriageReturn()
		esc.MoveRight(lay.CursorCol)
		r.cursorCol = lay.CursorCol
		return r.flush(esc)
	}

	esc.HideCursor()
	for _, i := range changed {
		r.moveToRow(esc, i)
		esc.CarriageReturn()
		esc.WriteString(frame[i])
		esc.EraseToEnd()
	}
	if stale {
		r.moveToRow(esc, len(frame))
		esc.CarriageReturn()
		esc.EraseBelow()
	}
	r.moveToRow(esc, lay.CursorRow)
	esc.CarriageReturn()
	esc.MoveRight(lay.CursorCol)
	esc.ShowCursor()

	r.rows = frame
	r.cursorCol = lay.CursorCol
	r.valid = true
	return r.flush(esc)
}

// finish ends the visual session: the cursor moves below the frame so
// whatever the host program prints next starts on a fresh line, and the
// renderer resets for the next read.
func (r *renderer) finish() error {
	esc := newEscBuilder(16)
	if n := len(r.rows); n > 0 {
		r.moveToRow(esc, n-1)
	}
	esc.Newline()
	r.reset()
	return r.flush(esc)
}

func (r *renderer) reset() {
	r.rows = nil
	r.cursorRow = 0
	r.cursorCol = 0
	r.width = 0
	r.valid = true
	r.clear = false
}

func (r *renderer) flush(esc *escBuilder) error {
	if esc.Len() == 0 {
		return nil
	}
	if _, err := r.term.WriteString(esc.String()); err != nil {
		return err
	}
	return r.term.Flush()
}

// moveToRow emits the vertical motion from the current cursor row to
// row i. Downward motion goes through Newline so the screen scrolls
// when the frame grows past the bottom row; the column is left
// unspecified and callers follow with a carriage return.
func (r *renderer) moveToRow(esc *escBuilder, i int) {
	if i < r.cursorRow {
		esc.MoveUp(r.cursorRow - i)
	} else {
		for j := r.cursorRow; j < i; j++ {
			esc.Newline()
		}
	}
	r.cursorRow = i
}

// buildRows renders each layout row to the exact string written to the
// terminal: prompt or continuation prompt, then the row's text with any
// highlighting applied, with the ghost hint appended to the last row.
func (r *renderer) buildRows(text []rune, lay Layout, spans []Span, hint string, p termenv.Profile) []string {
	styles := expandSpans(text, spans)
	rows := make([]string, len(lay.Rows))
	for i, row := range lay.Rows {
		var sb strings.Builder
		if i == 0 {
			sb.WriteString(r.prompt)
		} else if row.Indent > 0 {
			sb.WriteString(r.contPrompt)
		}
		if styles == nil {
			sb.WriteString(string(text[row.Start:row.End]))
		} else {
			writeStyled(&sb, text, row.Start, row.End, styles, p)
		}
		rows[i] = sb.String()
	}

	if hint != "" {
		if i := strings.IndexByte(hint, '\n'); i >= 0 {
			hint = hint[:i]
		}
		last := len(rows) - 1
		if space := r.width - VisibleWidth(rows[last]); space > 0 {
			if h := ansi.Truncate(hint, space, ""); h != "" {
				rows[last] += r.hintStyle.render(p, h)
			}
		}
	}
	return rows
}

// expandSpans flattens highlight spans into a per-rune style table. It
// returns nil when the span texts do not reproduce the buffer text
// exactly, in which case the frame renders unstyled.
func expandSpans(text []rune, spans []Span) []Style {
	if len(spans) == 0 {
		return nil
	}
	styles := make([]Style, 0, len(text))
	i := 0
	for _, sp := range spans {
		for _, sr := range sp.Text {
			if i >= len(text) || text[i] != sr {
				return nil
			}
			styles = append(styles, sp.Style)
			i++
		}
	}
	if i != len(text) {
		return nil
	}
	return styles
}

// writeStyled writes text[start:end] grouping runs of equal style into
// single styled segments.
func writeStyled(sb *strings.Builder, text []rune, start, end int, styles []Style, p termenv.Profile) {
	for i := start; i < end; {
		j := i + 1
		for j < end && styles[j].Equal(styles[i]) {
			j++
		}
		sb.WriteString(styles[i].render(p, string(text[i:j])))
		i = j
	}
}
