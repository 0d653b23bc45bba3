package line

import (
	"errors"
	"testing"
)

// newTestReader returns a keyReader over a mock terminal with the
// escape timeout removed, so held-back sequences flush on the first
// quiet poll instead of after real waiting.
func newTestReader(m *MockTerminal) *keyReader {
	r := newKeyReader(m)
	r.timeout = 0
	return r
}

func mustNext(t *testing.T, r *keyReader) Event {
	t.Helper()
	ev, err := r.next()
	if err != nil {
		t.Fatalf("next() error: %v", err)
	}
	return ev
}

func TestKeyReader_DeliversKeysInOrder(t *testing.T) {
	m := NewMockTerminal(80, 24)
	m.Feed("abc")
	r := newTestReader(m)

	for _, want := range []rune{'a', 'b', 'c'} {
		ev := mustNext(t, r)
		ke, ok := ev.(KeyEvent)
		if !ok || ke.Rune != want {
			t.Fatalf("got %+v, want rune %q", ev, want)
		}
	}
	if _, err := r.next(); !errors.Is(err, ErrEOF) {
		t.Fatalf("after input: err = %v, want ErrEOF", err)
	}
}

func TestKeyReader_ReassemblesSequenceAcrossReads(t *testing.T) {
	type tc struct {
		chunks []string
		want   KeyEvent
	}

	tests := map[string]tc{
		"csi split after introducer": {
			chunks: []string{"\x1b[", "A"},
			want:   KeyEvent{Key: KeyUp},
		},
		"csi split byte by byte": {
			chunks: []string{"\x1b", "[", "1", ";", "5", "C"},
			want:   KeyEvent{Key: KeyRight, Mod: ModCtrl},
		},
		"utf8 rune split mid encoding": {
			chunks: []string{"\xf0\x9f", "\x99\x82"},
			want:   KeyEvent{Key: KeyRune, Rune: '🙂'},
		},
		"alt key split after escape": {
			chunks: []string{"\x1b", "f"},
			want:   KeyEvent{Key: KeyRune, Rune: 'f', Mod: ModAlt},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			m := NewMockTerminal(80, 24)
			for _, c := range tt.chunks {
				m.Feed(c)
			}
			r := newTestReader(m)

			ev := mustNext(t, r)
			ke, ok := ev.(KeyEvent)
			if !ok || ke != tt.want {
				t.Errorf("got %+v, want %+v", ev, tt.want)
			}
		})
	}
}

func TestKeyReader_FlushesPartialOnTimeout(t *testing.T) {
	type tc struct {
		input string
		check func(t *testing.T, ev Event)
	}

	tests := map[string]tc{
		"lone escape becomes escape key": {
			input: "\x1b",
			check: func(t *testing.T, ev Event) {
				if ke, ok := ev.(KeyEvent); !ok || ke.Key != KeyEscape {
					t.Errorf("got %+v, want Escape", ev)
				}
			},
		},
		"stuck csi passes through": {
			input: "\x1b[12",
			check: func(t *testing.T, ev Event) {
				raw, ok := ev.(RawEvent)
				if !ok {
					t.Fatalf("got %T, want RawEvent", ev)
				}
				if string(raw.Bytes) != "\x1b[12" || raw.Malformed {
					t.Errorf("got %+v, want passthrough of %q", raw, "\x1b[12")
				}
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			m := NewMockTerminal(80, 24)
			m.SetQuiet(true)
			m.Feed(tt.input)
			r := newTestReader(m)

			tt.check(t, mustNext(t, r))
		})
	}
}

func TestKeyReader_FlushesPartialAtEndOfInput(t *testing.T) {
	m := NewMockTerminal(80, 24)
	m.Feed("\x1b")
	r := newKeyReader(m)

	// The stream ends right after the escape byte; it must still come
	// out as a key before EOF, without waiting out the escape timeout.
	ev := mustNext(t, r)
	if ke, ok := ev.(KeyEvent); !ok || ke.Key != KeyEscape {
		t.Fatalf("got %+v, want Escape", ev)
	}
	if _, err := r.next(); !errors.Is(err, ErrEOF) {
		t.Fatalf("err = %v, want ErrEOF", err)
	}
}

func TestKeyReader_ResizeTakesPriority(t *testing.T) {
	m := NewMockTerminal(80, 24)
	m.Feed("ab")
	m.ResizeTo(100, 50)
	r := newTestReader(m)

	ev := mustNext(t, r)
	re, ok := ev.(ResizeEvent)
	if !ok {
		t.Fatalf("first event = %+v, want ResizeEvent", ev)
	}
	if re.Width != 100 || re.Height != 50 {
		t.Errorf("resize = %dx%d, want 100x50", re.Width, re.Height)
	}

	// The queued keys follow once the resize is consumed.
	ev = mustNext(t, r)
	if ke, ok := ev.(KeyEvent); !ok || ke.Rune != 'a' {
		t.Errorf("after resize: got %+v, want rune 'a'", ev)
	}
}

func TestKeyReader_EmptyInputIsEOF(t *testing.T) {
	m := NewMockTerminal(80, 24)
	r := newKeyReader(m)

	if _, err := r.next(); !errors.Is(err, ErrEOF) {
		t.Fatalf("err = %v, want ErrEOF", err)
	}
}
