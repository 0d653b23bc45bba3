package line

import (
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// RuneWidth returns the display width of r in terminal cells: 0 for
// zero-width and combining codepoints, 2 for wide scripts and most
// emoji, 1 otherwise.
func RuneWidth(r rune) int {
	return runewidth.RuneWidth(r)
}

// VisibleWidth returns the display width of s, ignoring ANSI escape
// sequences and measuring grapheme clusters rather than runes, so
// pre-styled prompt strings measure correctly.
func VisibleWidth(s string) int {
	return uniseg.StringWidth(ansi.Strip(s))
}

// Row is one terminal row of a layout: the rune range [Start, End) of
// the buffer text it displays and the column where that text begins.
// Indent is the prompt width on rows that start a logical line and zero
// on soft-wrapped continuation rows.
type Row struct {
	Start  int
	End    int
	Indent int
}

// Layout maps buffer text onto terminal rows at a fixed width, plus the
// screen position of the cursor within those rows.
type Layout struct {
	Rows      []Row
	CursorRow int
	CursorCol int
}

// Height returns the number of terminal rows the layout occupies.
func (l Layout) Height() int {
	return len(l.Rows)
}

// ComputeLayout folds text into terminal rows at most width columns
// wide. Logical newlines always end a row. A codepoint that would
// exceed the width moves wholly to the next row; it is never split. A
// codepoint wider than an entire empty row occupies that row anyway so
// layout always makes progress. The first row is indented by
// firstIndent (the prompt), rows after a newline by contIndent (the
// continuation prompt), soft-wrapped rows not at all.
//
// The cursor is reported as a (row, column) screen position. A cursor
// sitting exactly on a soft wrap boundary belongs to the row after the
// wrap, so a cursor at the end of an exactly-full final row lands at
// column zero of an empty trailing row.
//
// The function is pure: identical inputs always produce the identical
// layout.
func ComputeLayout(text []rune, cursor, firstIndent, contIndent, width int) Layout {
	if width < 1 {
		width = 1
	}

	l := Layout{CursorRow: -1}
	rowStart := 0
	indent := firstIndent
	col := firstIndent

	for i := 0; i <= len(text); i++ {
		if l.CursorRow < 0 && i == cursor {
			l.CursorRow = len(l.Rows)
			l.CursorCol = col
		}
		if i == len(text) {
			break
		}
		r := text[i]
		if r == '\n' {
			l.Rows = append(l.Rows, Row{Start: rowStart, End: i, Indent: indent})
			rowStart = i + 1
			indent = contIndent
			col = contIndent
			continue
		}
		w := RuneWidth(r)
		if col+w > width && col > indent {
			l.Rows = append(l.Rows, Row{Start: rowStart, End: i, Indent: indent})
			rowStart = i
			indent = 0
			col = 0
			if i == cursor {
				l.CursorRow = len(l.Rows)
				l.CursorCol = 0
			}
		}
		col += w
	}
	l.Rows = append(l.Rows, Row{Start: rowStart, End: len(text), Indent: indent})

	// A cursor at the end of an exactly-full last row gets an empty row
	// of its own rather than a column past the edge.
	if cursor == len(text) && l.CursorCol >= width {
		l.Rows = append(l.Rows, Row{Start: len(text), End: len(text)})
		l.CursorRow = len(l.Rows) - 1
		l.CursorCol = 0
	}
	return l
}
