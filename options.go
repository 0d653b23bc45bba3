package line

import "os"

// Option configures an Editor.
type Option func(*Editor)

// --- Callback Options ---

// WithHighlighter sets the callback that colors the buffer for display.
func WithHighlighter(fn Highlighter) Option {
	return func(e *Editor) {
		e.highlighter = fn
	}
}

// WithHinter sets the callback that supplies ghost text shown after the
// buffer.
func WithHinter(fn Hinter) Option {
	return func(e *Editor) {
		e.hinter = fn
	}
}

// WithCompleter sets the callback that supplies completion candidates.
func WithCompleter(fn Completer) Option {
	return func(e *Editor) {
		e.completer = fn
	}
}

// WithContinue sets the predicate deciding whether Enter submits the
// buffer or starts another line.
func WithContinue(fn ContinueFunc) Option {
	return func(e *Editor) {
		e.continueFn = fn
	}
}

// --- Behavior Options ---

// WithKeyMap replaces the default key bindings.
func WithKeyMap(km *KeyMap) Option {
	return func(e *Editor) {
		e.keymap = km
	}
}

// WithHistory sets the history capacity; zero or negative means
// unbounded.
func WithHistory(capacity int) Option {
	return func(e *Editor) {
		e.history = NewHistory(capacity)
	}
}

// WithHistoryDedup controls whether consecutive identical submissions
// collapse into one history entry. On by default.
func WithHistoryDedup(dedup bool) Option {
	return func(e *Editor) {
		e.histDedup = dedup
	}
}

// WithContinuationPrompt sets the prompt shown on the second and later
// lines of a multi-line buffer.
func WithContinuationPrompt(prompt string) Option {
	return func(e *Editor) {
		e.contPrompt = prompt
	}
}

// WithHintStyle sets the style ghost text renders in. Dim by default.
func WithHintStyle(s Style) Option {
	return func(e *Editor) {
		e.hintStyle = s
	}
}

// --- I/O Options ---

// WithTerminal supplies the Terminal directly, bypassing tty detection.
// Tests pass a MockTerminal here.
func WithTerminal(t Terminal) Option {
	return func(e *Editor) {
		e.term = t
	}
}

// WithInput reads from f instead of standard input.
func WithInput(f *os.File) Option {
	return func(e *Editor) {
		e.in = f
	}
}

// WithOutput writes to f instead of standard output.
func WithOutput(f *os.File) Option {
	return func(e *Editor) {
		e.out = f
	}
}
