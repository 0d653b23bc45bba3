// Package line provides an interactive line editor for terminals.
//
// Users import this single package for the complete public API: the
// read loop, key decoding, multi-line editing, Unicode-aware wrapping,
// history, completion, hints and highlighting.
//
// The minimal session is three lines:
//
//	ed, _ := line.New("> ")
//	defer ed.Close()
//	text, err := ed.Read()
//
// Read returns the submitted text, ErrEOF on Ctrl+D at an empty prompt,
// or ErrInterrupted on Ctrl+C, always leaving the terminal in the mode
// it found it in. Behavior is extended through options: WithCompleter,
// WithHinter, WithHighlighter, WithContinue for multi-line input, and
// WithKeyMap for custom bindings.
package line
