package line

import "unicode/utf8"

// maxSequenceLen bounds how many bytes a single escape sequence may span
// before the decoder gives up and passes it through as a RawEvent. The
// bound keeps a malformed or terminal-specific sequence from swallowing
// input forever; 16 bytes covers every sequence a keyboard produces.
const maxSequenceLen = 16

// parseInput decodes buffered bytes into events. It handles:
//   - printable characters, including multi-byte UTF-8 -> KeyEvent{KeyRune}
//   - control bytes (0x00-0x1f, 0x7f) -> control KeyEvents
//   - CSI sequences (ESC [ ...) -> arrows, Home/End, Delete, paging, with
//     xterm modifier parameters
//   - SS3 sequences (ESC O ...) -> arrow/Home/End variants
//   - ESC + byte -> Alt-modified key
//
// A trailing sequence that may still be completed by bytes from the next
// read is returned as the remainder instead of being decoded. When flush
// is set (the escape timeout expired) nothing is held back: a lone ESC
// becomes KeyEscape and any other incomplete sequence is passed through
// as a RawEvent.
func parseInput(data []byte, flush bool) (events []Event, remainder []byte) {
	i := 0

	for i < len(data) {
		b := data[i]

		if b == 0x1b {
			ev, consumed := parseEscape(data[i:], flush)
			if consumed == 0 {
				// Incomplete, wait for more bytes.
				return events, data[i:]
			}
			if ev != nil {
				events = append(events, ev)
			}
			i += consumed
			continue
		}

		if b < 0x20 {
			events = append(events, KeyEvent{Key: controlKey(b)})
			i++
			continue
		}

		// DEL is backspace on most terminals.
		if b == 0x7f {
			events = append(events, KeyEvent{Key: KeyBackspace})
			i++
			continue
		}

		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size == 1 {
			if !flush && isPartialRuneSuffix(data[i:]) {
				return events, data[i:]
			}
			events = append(events, RawEvent{Bytes: data[i : i+1], Malformed: true})
			i++
			continue
		}
		events = append(events, KeyEvent{Key: KeyRune, Rune: r})
		i += size
	}

	return events, nil
}

// parseEscape decodes one ESC-prefixed sequence at data[0]. It returns
// the event (nil when the sequence should be dropped) and the number of
// bytes consumed; consumed == 0 means the sequence is incomplete and the
// caller should retry with more bytes.
func parseEscape(data []byte, flush bool) (Event, int) {
	if len(data) == 1 {
		if !flush {
			return nil, 0
		}
		// The timeout expired with nothing following: a real Escape press.
		return KeyEvent{Key: KeyEscape}, 1
	}

	switch data[1] {
	case '[':
		return parseCSI(data, flush)

	case 'O':
		if len(data) < 3 {
			if !flush {
				return nil, 0
			}
			return RawEvent{Bytes: data[:2]}, 2
		}
		if key := ss3Key(data[2]); key != KeyNone {
			return KeyEvent{Key: key}, 3
		}
		return RawEvent{Bytes: data[:3]}, 3

	case 0x1b:
		// ESC ESC: emit Escape, leave the second ESC to prefix whatever
		// follows it.
		return KeyEvent{Key: KeyEscape}, 1

	default:
		// Alt-modified key: ESC followed by the key's usual encoding.
		b := data[1]
		if b < 0x20 {
			return KeyEvent{Key: controlKey(b), Mod: ModAlt}, 2
		}
		if b == 0x7f {
			return KeyEvent{Key: KeyBackspace, Mod: ModAlt}, 2
		}
		r, size := utf8.DecodeRune(data[1:])
		if r == utf8.RuneError && size == 1 {
			if !flush && isPartialRuneSuffix(data[1:]) {
				return nil, 0
			}
			return RawEvent{Bytes: data[:2], Malformed: true}, 2
		}
		return KeyEvent{Key: KeyRune, Rune: r, Mod: ModAlt}, 1 + size
	}
}

// parseCSI decodes a CSI sequence (ESC [ parameters final). Parameter
// bytes are 0x30-0x3f and intermediate bytes 0x20-0x2f per ECMA-48; the
// final byte is 0x40-0x7e. Unrecognized or over-long sequences become
// RawEvents rather than blocking or corrupting later input.
func parseCSI(data []byte, flush bool) (Event, int) {
	i := 2
	for {
		if i >= len(data) {
			if !flush && i < maxSequenceLen {
				return nil, 0
			}
			return RawEvent{Bytes: data[:i]}, i
		}
		if i >= maxSequenceLen {
			// Over the bound: swallow the rest of the run (and its final
			// byte if buffered) so stray parameters cannot leak into the
			// text as literal input.
			j := i
			for j < len(data) && data[j] >= 0x20 && data[j] <= 0x3f {
				j++
			}
			if j < len(data) && data[j] >= 0x40 && data[j] <= 0x7e {
				j++
			}
			return RawEvent{Bytes: data[:j]}, j
		}

		b := data[i]
		if b >= 0x40 && b <= 0x7e {
			// Final byte.
			i++
			if key, mod, ok := csiKey(data[2:i-1], b); ok {
				return KeyEvent{Key: key, Mod: mod}, i
			}
			return RawEvent{Bytes: data[:i]}, i
		}
		if b >= 0x20 && b <= 0x3f {
			i++
			continue
		}
		// A byte that cannot belong to a CSI sequence (for example a
		// control byte). Pass the prefix through and let the byte decode
		// on its own.
		return RawEvent{Bytes: data[:i]}, i
	}
}

// csiKey classifies a complete CSI sequence from its parameter bytes and
// final byte. ok is false for sequences the editor does not recognize.
func csiKey(params []byte, final byte) (Key, Modifier, bool) {
	nums, ok := csiParams(params)
	if !ok {
		return KeyNone, ModNone, false
	}

	mod := ModNone
	if len(nums) >= 2 {
		mod = decodeModifier(nums[1])
	}

	switch final {
	case 'A':
		return KeyUp, mod, true
	case 'B':
		return KeyDown, mod, true
	case 'C':
		return KeyRight, mod, true
	case 'D':
		return KeyLeft, mod, true
	case 'H':
		return KeyHome, mod, true
	case 'F':
		return KeyEnd, mod, true
	case 'Z':
		// Backtab.
		return KeyTab, ModShift, true
	case '~':
		if len(nums) == 0 {
			return KeyNone, ModNone, false
		}
		switch nums[0] {
		case 1, 7:
			return KeyHome, mod, true
		case 2:
			return KeyInsert, mod, true
		case 3:
			return KeyDelete, mod, true
		case 4, 8:
			return KeyEnd, mod, true
		case 5:
			return KeyPageUp, mod, true
		case 6:
			return KeyPageDown, mod, true
		}
	}
	return KeyNone, ModNone, false
}

// csiParams parses semicolon-separated decimal parameters. ok is false
// when the bytes contain anything other than digits and separators
// (private-use or intermediate bytes), which marks the sequence as one
// we do not interpret.
func csiParams(params []byte) ([]int, bool) {
	if len(params) == 0 {
		return nil, true
	}
	var nums []int
	cur := 0
	for _, b := range params {
		switch {
		case b >= '0' && b <= '9':
			cur = cur*10 + int(b-'0')
		case b == ';':
			nums = append(nums, cur)
			cur = 0
		default:
			return nil, false
		}
	}
	return append(nums, cur), true
}

// ss3Key classifies an SS3 (ESC O) final byte.
func ss3Key(b byte) Key {
	switch b {
	case 'A':
		return KeyUp
	case 'B':
		return KeyDown
	case 'C':
		return KeyRight
	case 'D':
		return KeyLeft
	case 'H':
		return KeyHome
	case 'F':
		return KeyEnd
	}
	return KeyNone
}

// controlKey maps a control byte (0x00-0x1f) to its Key. Bytes with a
// dedicated editing meaning get named keys; the rest map onto the
// KeyCtrlA..KeyCtrlZ range.
func controlKey(b byte) Key {
	switch b {
	case 0x00:
		return KeyCtrlSpace
	case 0x08:
		return KeyBackspace
	case 0x09:
		return KeyTab
	case 0x0d:
		return KeyEnter
	case 0x1b:
		return KeyEscape
	}
	if b >= 0x01 && b <= 0x1a {
		return KeyCtrlA + Key(b-0x01)
	}
	return KeyNone
}

// decodeModifier decodes the xterm modifier parameter, encoded as
// 1 + (shift ? 1 : 0) + (alt ? 2 : 0) + (ctrl ? 4 : 0).
func decodeModifier(param int) Modifier {
	if param <= 1 {
		return ModNone
	}
	flags := param - 1
	var mod Modifier
	if flags&1 != 0 {
		mod |= ModShift
	}
	if flags&2 != 0 {
		mod |= ModAlt
	}
	if flags&4 != 0 {
		mod |= ModCtrl
	}
	return mod
}

// isPartialRuneSuffix reports whether data is the start of a multi-byte
// UTF-8 encoding that ran out of bytes, meaning the rest may arrive with
// the next read.
func isPartialRuneSuffix(data []byte) bool {
	if len(data) == 0 || len(data) >= utf8.UTFMax {
		return false
	}
	b := data[0]
	var need int
	switch {
	case b >= 0xf0:
		need = 4
	case b >= 0xe0:
		need = 3
	case b >= 0xc0:
		need = 2
	default:
		return false
	}
	if len(data) >= need {
		return false
	}
	for _, c := range data[1:] {
		if c < 0x80 || c >= 0xc0 {
			return false
		}
	}
	return true
}
