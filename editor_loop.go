package line

import (
	"errors"

	"github.com/grindlemire/go-line/internal/debug"
)

// Read performs one interactive read: it takes the terminal into raw
// mode, edits until the input resolves and restores the terminal. It
// returns the submitted text, or ErrEOF for end of input on an empty
// buffer, ErrInterrupted for Ctrl+C, ErrBadInput for undecodable bytes,
// or a wrapped I/O failure. Cooked mode is restored on every path out,
// panics included.
func (e *Editor) Read() (string, error) {
	if e.closed {
		return "", ErrClosed
	}
	if e.plain {
		return e.readPlain()
	}

	if err := e.term.EnterRawMode(); err != nil {
		return "", err
	}
	restored := false
	restore := func() error {
		if restored {
			return nil
		}
		restored = true
		return e.term.ExitRawMode()
	}
	defer func() { _ = restore() }()

	text, err := e.edit()
	// Move below the frame while \n still needs the explicit \r.
	if ferr := e.rend.finish(); ferr != nil && err == nil {
		err = ferr
	}
	if rerr := restore(); rerr != nil && err == nil {
		err = rerr
	}
	if err != nil {
		return "", err
	}
	if text != "" {
		e.history.Push(text)
	}
	return text, nil
}

// edit runs the decode, dispatch, render cycle until the read resolves.
func (e *Editor) edit() (string, error) {
	e.buf.Reset()
	e.comp.commit()
	e.histIdx = 0
	e.saved = ""

	if err := e.drawWith(true); err != nil {
		return "", err
	}
	for {
		ev, err := e.reader.next()
		if err != nil {
			if errors.Is(err, ErrEOF) && !e.buf.Empty() {
				// The stream ended mid-line; deliver what was typed.
				return e.buf.Text(), nil
			}
			return "", err
		}
		if e.resized.Swap(false) {
			e.rend.invalidate()
		}

		switch ev := ev.(type) {
		case ResizeEvent:
			e.rend.invalidate()
		case RawEvent:
			if ev.Malformed {
				return "", ErrBadInput
			}
			debug.Log("dropping unhandled sequence %q", ev.Bytes)
		case KeyEvent:
			done, text, err := e.handleKey(ev)
			if err != nil {
				return "", err
			}
			if done {
				// Repaint without the hint so the accepted line is what
				// stays on screen.
				if err := e.drawWith(false); err != nil {
					return "", err
				}
				return text, nil
			}
		}

		if err := e.drawWith(true); err != nil {
			return "", err
		}
	}
}

// handleKey resolves one key event through the keymap and applies the
// action, reporting whether the read resolved and with what text.
func (e *Editor) handleKey(ev KeyEvent) (done bool, text string, err error) {
	action := e.keymap.Lookup(ev)

	// Anything besides another trigger press commits an active
	// completion; the preview is already ordinary buffer content.
	if action != ActionComplete && action != ActionCompletePrev {
		e.comp.commit()
	}

	switch action {
	case ActionNone:
		debug.Log("unbound key %v", ev)
	case ActionInsert:
		e.buf.InsertRune(ev.Rune)
	case ActionMoveLeft:
		e.buf.MoveLeft()
	case ActionMoveRight:
		e.buf.MoveRight()
	case ActionMoveWordLeft:
		e.buf.MoveWordLeft()
	case ActionMoveWordRight:
		e.buf.MoveWordRight()
	case ActionMoveLineStart:
		e.buf.MoveLineStart()
	case ActionMoveLineEnd:
		e.buf.MoveLineEnd()
	case ActionMoveStart:
		e.buf.MoveStart()
	case ActionMoveEnd:
		e.buf.MoveEnd()
	case ActionMoveUp:
		if !e.buf.MoveUp() {
			e.historyPrev()
		}
	case ActionMoveDown:
		if !e.buf.MoveDown() {
			e.historyNext()
		}
	case ActionDeleteBack:
		e.buf.DeleteBack()
	case ActionDeleteForward:
		e.buf.DeleteForward()
	case ActionDeleteWordBack:
		e.buf.DeleteWordBack()
	case ActionDeleteWordForward:
		e.buf.DeleteWordForward()
	case ActionKillToEnd:
		e.buf.KillToEnd()
	case ActionKillToStart:
		e.buf.KillToStart()
	case ActionTranspose:
		e.buf.Transpose()
	case ActionNewline:
		e.buf.InsertNewline()
	case ActionSubmit:
		t := e.buf.Text()
		if e.continueFn != nil && e.continueFn(t) {
			e.buf.InsertNewline()
			break
		}
		return true, t, nil
	case ActionComplete:
		e.comp.trigger(e.buf, e.completer, 1)
	case ActionCompletePrev:
		e.comp.trigger(e.buf, e.completer, -1)
	case ActionHistoryPrev:
		e.historyPrev()
	case ActionHistoryNext:
		e.historyNext()
	case ActionClearScreen:
		e.rend.scheduleClear()
	case ActionSuspend:
		if err := e.suspend(); err != nil {
			return false, "", err
		}
	case ActionInterrupt:
		return false, "", ErrInterrupted
	case ActionEndOfInput:
		if e.buf.Empty() {
			return false, "", ErrEOF
		}
	}
	return false, "", nil
}

// historyPrev recalls the next older entry, saving the in-progress
// buffer on the first step back.
func (e *Editor) historyPrev() {
	if e.histIdx >= e.history.Len() {
		return
	}
	if e.histIdx == 0 {
		e.saved = e.buf.Text()
	}
	e.histIdx++
	entry, _ := e.history.Get(e.history.Len() - e.histIdx)
	e.buf.SetText(entry)
}

// historyNext recalls the next newer entry, restoring the saved
// in-progress buffer when browsing moves past the newest one.
func (e *Editor) historyNext() {
	if e.histIdx == 0 {
		return
	}
	e.histIdx--
	if e.histIdx == 0 {
		e.buf.SetText(e.saved)
		return
	}
	entry, _ := e.history.Get(e.history.Len() - e.histIdx)
	e.buf.SetText(entry)
}

// suspend stops the process until the host resumes it, with the
// terminal back in cooked mode while stopped. A terminal that cannot
// suspend resumes editing immediately.
func (e *Editor) suspend() error {
	if err := e.rend.finish(); err != nil {
		return err
	}
	if err := e.term.ExitRawMode(); err != nil {
		return err
	}
	if err := e.term.Suspend(); err != nil {
		debug.Log("suspend: %v", err)
	}
	return e.term.EnterRawMode()
}

// drawWith repaints the frame from current editor state, with or
// without the ghost hint.
func (e *Editor) drawWith(hints bool) error {
	text := e.buf.Text()
	var spans []Span
	if e.highlighter != nil {
		spans = e.highlighter(text)
	}
	var hint string
	if hints && e.hinter != nil {
		hint = e.hinter(text, e.buf.Cursor())
	}
	return e.rend.draw(e.buf.Runes(), e.buf.Cursor(), spans, hint)
}
