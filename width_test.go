package line

import (
	"reflect"
	"testing"
)

func TestRuneWidth(t *testing.T) {
	type tc struct {
		r    rune
		want int
	}

	tests := map[string]tc{
		"ascii":           {r: 'a', want: 1},
		"digit":           {r: '7', want: 1},
		"space":           {r: ' ', want: 1},
		"cjk":             {r: '世', want: 2},
		"hiragana":        {r: 'あ', want: 2},
		"emoji":           {r: '🙂', want: 2},
		"combining mark":  {r: '́', want: 0},
		"zero width space": {r: '​', want: 0},
		"precomposed":     {r: 'é', want: 1},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := RuneWidth(tt.r); got != tt.want {
				t.Errorf("RuneWidth(%q) = %d, want %d", tt.r, got, tt.want)
			}
		})
	}
}

func TestVisibleWidth(t *testing.T) {
	type tc struct {
		s    string
		want int
	}

	tests := map[string]tc{
		"empty":             {s: "", want: 0},
		"ascii":             {s: "hello", want: 5},
		"cjk":               {s: "日本", want: 4},
		"mixed":             {s: "go言語", want: 6},
		"ansi stripped":     {s: "\x1b[1mhi\x1b[0m", want: 2},
		"colored prompt":    {s: "\x1b[38;5;204m> \x1b[0m", want: 2},
		"combining cluster": {s: "é", want: 1},
		"emoji":             {s: "🙂", want: 2},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := VisibleWidth(tt.s); got != tt.want {
				t.Errorf("VisibleWidth(%q) = %d, want %d", tt.s, got, tt.want)
			}
		})
	}
}

func TestComputeLayout(t *testing.T) {
	type tc struct {
		text        string
		cursor      int
		firstIndent int
		contIndent  int
		width       int
		want        Layout
	}

	tests := map[string]tc{
		"empty text": {
			text: "", cursor: 0, firstIndent: 2, contIndent: 2, width: 10,
			want: Layout{
				Rows:      []Row{{Start: 0, End: 0, Indent: 2}},
				CursorRow: 0, CursorCol: 2,
			},
		},
		"single row no wrap": {
			text: "hello", cursor: 3, firstIndent: 2, contIndent: 2, width: 80,
			want: Layout{
				Rows:      []Row{{Start: 0, End: 5, Indent: 2}},
				CursorRow: 0, CursorCol: 5,
			},
		},
		"soft wrap": {
			text: "abcdefg", cursor: 7, firstIndent: 2, contIndent: 2, width: 5,
			want: Layout{
				Rows: []Row{
					{Start: 0, End: 3, Indent: 2},
					{Start: 3, End: 7, Indent: 0},
				},
				CursorRow: 1, CursorCol: 4,
			},
		},
		"hard newline uses continuation indent": {
			text: "ab\ncd", cursor: 3, firstIndent: 2, contIndent: 4, width: 80,
			want: Layout{
				Rows: []Row{
					{Start: 0, End: 2, Indent: 2},
					{Start: 3, End: 5, Indent: 4},
				},
				CursorRow: 1, CursorCol: 4,
			},
		},
		"empty logical line gets its own row": {
			text: "a\n\nb", cursor: 2, firstIndent: 2, contIndent: 2, width: 10,
			want: Layout{
				Rows: []Row{
					{Start: 0, End: 1, Indent: 2},
					{Start: 2, End: 2, Indent: 2},
					{Start: 3, End: 4, Indent: 2},
				},
				CursorRow: 1, CursorCol: 2,
			},
		},
		"trailing newline yields empty final row": {
			text: "ab\n", cursor: 3, firstIndent: 2, contIndent: 4, width: 10,
			want: Layout{
				Rows: []Row{
					{Start: 0, End: 2, Indent: 2},
					{Start: 3, End: 3, Indent: 4},
				},
				CursorRow: 1, CursorCol: 4,
			},
		},
		"wide rune moves wholly to next row": {
			text: "abc世", cursor: 4, firstIndent: 0, contIndent: 0, width: 4,
			want: Layout{
				Rows: []Row{
					{Start: 0, End: 3, Indent: 0},
					{Start: 3, End: 4, Indent: 0},
				},
				CursorRow: 1, CursorCol: 2,
			},
		},
		"wide rune fills row exactly": {
			text: "ab世", cursor: 2, firstIndent: 0, contIndent: 0, width: 4,
			want: Layout{
				Rows:      []Row{{Start: 0, End: 3, Indent: 0}},
				CursorRow: 0, CursorCol: 2,
			},
		},
		"zero width rune stays on full row": {
			text: "abéx", cursor: 0, firstIndent: 0, contIndent: 0, width: 3,
			want: Layout{
				Rows: []Row{
					{Start: 0, End: 4, Indent: 0},
					{Start: 4, End: 5, Indent: 0},
				},
				CursorRow: 0, CursorCol: 0,
			},
		},
		"cursor at end of exactly full row gets empty row": {
			text: "abcd", cursor: 4, firstIndent: 0, contIndent: 0, width: 4,
			want: Layout{
				Rows: []Row{
					{Start: 0, End: 4, Indent: 0},
					{Start: 4, End: 4, Indent: 0},
				},
				CursorRow: 1, CursorCol: 0,
			},
		},
		"cursor on wrap boundary belongs to next row": {
			text: "abcdef", cursor: 4, firstIndent: 0, contIndent: 0, width: 4,
			want: Layout{
				Rows: []Row{
					{Start: 0, End: 4, Indent: 0},
					{Start: 4, End: 6, Indent: 0},
				},
				CursorRow: 1, CursorCol: 0,
			},
		},
		"cursor before newline on full row parks at width": {
			text: "abcd\nef", cursor: 4, firstIndent: 0, contIndent: 0, width: 4,
			want: Layout{
				Rows: []Row{
					{Start: 0, End: 4, Indent: 0},
					{Start: 5, End: 7, Indent: 0},
				},
				CursorRow: 0, CursorCol: 4,
			},
		},
		"oversized rune still makes progress": {
			text: "世", cursor: 1, firstIndent: 0, contIndent: 0, width: 1,
			want: Layout{
				Rows: []Row{
					{Start: 0, End: 1, Indent: 0},
					{Start: 1, End: 1, Indent: 0},
				},
				CursorRow: 1, CursorCol: 0,
			},
		},
		"width clamped to one": {
			text: "ab", cursor: 0, firstIndent: 0, contIndent: 0, width: 0,
			want: Layout{
				Rows: []Row{
					{Start: 0, End: 1, Indent: 0},
					{Start: 1, End: 2, Indent: 0},
				},
				CursorRow: 0, CursorCol: 0,
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := ComputeLayout([]rune(tt.text), tt.cursor, tt.firstIndent, tt.contIndent, tt.width)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ComputeLayout() = %+v, want %+v", got, tt.want)
			}
			if got.Height() != len(tt.want.Rows) {
				t.Errorf("Height() = %d, want %d", got.Height(), len(tt.want.Rows))
			}
		})
	}
}

func TestComputeLayout_IsPure(t *testing.T) {
	text := []rune("first line\nsecond longer line that wraps 日本語 around")
	a := ComputeLayout(text, 17, 2, 4, 12)
	b := ComputeLayout(text, 17, 2, 4, 12)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("repeated calls disagree: %+v vs %+v", a, b)
	}
}

func TestComputeLayout_RowsTileText(t *testing.T) {
	type tc struct {
		text        string
		firstIndent int
		contIndent  int
		width       int
	}

	tests := map[string]tc{
		"plain wrap":       {text: "the quick brown fox jumps over the lazy dog", firstIndent: 2, contIndent: 2, width: 10},
		"multiline":        {text: "one\ntwo\nthree four five six seven", firstIndent: 3, contIndent: 5, width: 8},
		"wide runes":       {text: "日本語のテキストが折り返される", firstIndent: 2, contIndent: 2, width: 7},
		"narrow terminal":  {text: "abcdefghij", firstIndent: 1, contIndent: 1, width: 2},
		"trailing newline": {text: "ab\ncd\n", firstIndent: 2, contIndent: 2, width: 10},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			text := []rune(tt.text)
			l := ComputeLayout(text, 0, tt.firstIndent, tt.contIndent, tt.width)

			// Rows must cover the text in order, with exactly the
			// newline runes falling between consecutive rows.
			pos := 0
			for i, row := range l.Rows {
				if row.Start != pos {
					t.Fatalf("row %d starts at %d, want %d", i, row.Start, pos)
				}
				if row.End < row.Start {
					t.Fatalf("row %d has End %d before Start %d", i, row.End, row.Start)
				}
				pos = row.End
				if pos < len(text) && text[pos] == '\n' {
					pos++
				}
			}
			if pos != len(text) {
				t.Fatalf("rows end at %d, want %d", pos, len(text))
			}

			// No row exceeds the terminal width unless a single rune
			// is wider than the row.
			for i, row := range l.Rows {
				w := row.Indent
				for _, r := range text[row.Start:row.End] {
					w += RuneWidth(r)
				}
				if w > tt.width && row.End-row.Start > 1 {
					t.Errorf("row %d is %d cells wide, max %d", i, w, tt.width)
				}
			}
		})
	}
}
