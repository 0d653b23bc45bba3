package line

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"strings"
	"sync/atomic"

	"github.com/mattn/go-isatty"
)

// Highlighter colors buffer text for display. It returns spans whose
// concatenated Text fields reproduce the input exactly; the frame
// renders unstyled otherwise. Called once per render.
type Highlighter func(text string) []Span

// Hinter supplies ghost text drawn after the buffer, dimmed and not
// editable. An empty string means no hint. Called once per render.
type Hinter func(text string, cursor int) string

// ContinueFunc reports whether text is incomplete, in which case Enter
// inserts a newline instead of submitting.
type ContinueFunc func(text string) bool

// Editor reads lines from a terminal with editing, history, completion
// and multi-line support. Editors are not safe for concurrent use; the
// one exception is NotifyResize, which may be called from any
// goroutine.
type Editor struct {
	term Terminal
	in   *os.File
	out  *os.File

	reader *keyReader
	rend   *renderer
	buf    *Buffer
	keymap *KeyMap

	history   *History
	histDedup bool
	histIdx   int
	saved     string

	comp completionState

	prompt     string
	contPrompt string
	hintStyle  Style

	highlighter Highlighter
	hinter      Hinter
	completer   Completer
	continueFn  ContinueFunc

	resized atomic.Bool

	// plain is set when stdin or stdout is not a terminal; reads then
	// degrade to buffered line reads with no editing.
	plain       bool
	plainReader *bufio.Reader

	iterErr error
	closed  bool
}

// New returns an Editor that displays prompt before the input. When
// standard input or output is not a terminal the editor transparently
// degrades to plain line reads, so programs using it keep working in
// pipes.
func New(prompt string, opts ...Option) (*Editor, error) {
	e := &Editor{
		prompt:     prompt,
		contPrompt: "... ",
		keymap:     DefaultKeyMap(),
		history:    NewHistory(defaultHistoryCap),
		histDedup:  true,
		hintStyle:  NewStyle().Dim(),
		in:         os.Stdin,
		out:        os.Stdout,
		buf:        &Buffer{},
	}
	for _, opt := range opts {
		opt(e)
	}
	// Applied after the options so WithHistoryDedup holds regardless of
	// its position relative to WithHistory.
	e.history.SetDedup(e.histDedup)

	if e.term == nil {
		if !isTTY(e.in) || !isTTY(e.out) {
			e.plain = true
			e.plainReader = bufio.NewReader(e.in)
			return e, nil
		}
		e.term = NewANSITerminal(e.in, e.out)
	}
	e.reader = newKeyReader(e.term)
	e.rend = newRenderer(e.term, e.prompt, e.contPrompt, e.hintStyle)
	return e, nil
}

// Close releases the terminal. The editor is unusable afterwards.
func (e *Editor) Close() error {
	if e.closed {
		return nil
	}
	e.closed = true
	if e.term != nil {
		return e.term.Close()
	}
	return nil
}

// NotifyResize tells the editor the display size changed. On Unix the
// terminal layer picks up SIGWINCH itself; hosts on other platforms, or
// embedding a custom Terminal, call this instead. The redraw happens
// when the next event is processed.
func (e *Editor) NotifyResize() {
	e.resized.Store(true)
}

// History returns the editor's history store, for preloading entries or
// persisting them across runs.
func (e *Editor) History() *History {
	return e.history
}

// KeyMap returns the editor's key bindings for extension at runtime.
func (e *Editor) KeyMap() *KeyMap {
	return e.keymap
}

// SetPrompt changes the prompt used by subsequent renders.
func (e *Editor) SetPrompt(prompt string) {
	e.prompt = prompt
	if e.rend != nil {
		e.rend.setPrompt(prompt)
	}
}

// Lines iterates over submitted lines until end of input, interruption
// or failure. Err distinguishes the three afterwards.
func (e *Editor) Lines() iter.Seq[string] {
	return func(yield func(string) bool) {
		e.iterErr = nil
		for {
			text, err := e.Read()
			if err != nil {
				if !errors.Is(err, ErrEOF) {
					e.iterErr = err
				}
				return
			}
			if !yield(text) {
				return
			}
		}
	}
}

// Err reports the error that ended the last Lines iteration. It is nil
// when iteration reached end of input or was stopped by the caller.
func (e *Editor) Err() error {
	return e.iterErr
}

// readPlain is the degraded path for non-terminal input: one buffered
// line per call, no prompt, no editing.
func (e *Editor) readPlain() (string, error) {
	text, err := e.plainReader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read input: %w", err)
		}
		if text == "" {
			return "", ErrEOF
		}
	}
	text = strings.TrimRight(text, "\r\n")
	if text != "" {
		e.history.Push(text)
	}
	return text, nil
}

func isTTY(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
