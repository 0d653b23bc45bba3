package line

// Action identifies the edit action a key event resolves to.
type Action uint8

const (
	// ActionNone ignores the event.
	ActionNone Action = iota
	// ActionInsert inserts the event's rune at the cursor.
	ActionInsert
	ActionMoveLeft
	ActionMoveRight
	ActionMoveWordLeft
	ActionMoveWordRight
	ActionMoveLineStart
	ActionMoveLineEnd
	ActionMoveStart
	ActionMoveEnd
	// ActionMoveUp moves to the previous logical line, or browses
	// history when already on the first line. ActionMoveDown mirrors it.
	ActionMoveUp
	ActionMoveDown
	ActionDeleteBack
	ActionDeleteForward
	ActionDeleteWordBack
	ActionDeleteWordForward
	ActionKillToEnd
	ActionKillToStart
	ActionTranspose
	// ActionNewline always inserts a line break.
	ActionNewline
	// ActionSubmit finishes the read, unless the continuation predicate
	// asks for another line.
	ActionSubmit
	ActionComplete
	// ActionCompletePrev cycles an active completion backward.
	ActionCompletePrev
	ActionHistoryPrev
	ActionHistoryNext
	ActionClearScreen
	ActionSuspend
	ActionInterrupt
	ActionEndOfInput
)

var actionNames = map[Action]string{
	ActionNone:              "None",
	ActionInsert:            "Insert",
	ActionMoveLeft:          "MoveLeft",
	ActionMoveRight:         "MoveRight",
	ActionMoveWordLeft:      "MoveWordLeft",
	ActionMoveWordRight:     "MoveWordRight",
	ActionMoveLineStart:     "MoveLineStart",
	ActionMoveLineEnd:       "MoveLineEnd",
	ActionMoveStart:         "MoveStart",
	ActionMoveEnd:           "MoveEnd",
	ActionMoveUp:            "MoveUp",
	ActionMoveDown:          "MoveDown",
	ActionDeleteBack:        "DeleteBack",
	ActionDeleteForward:     "DeleteForward",
	ActionDeleteWordBack:    "DeleteWordBack",
	ActionDeleteWordForward: "DeleteWordForward",
	ActionKillToEnd:         "KillToEnd",
	ActionKillToStart:       "KillToStart",
	ActionTranspose:         "Transpose",
	ActionNewline:           "Newline",
	ActionSubmit:            "Submit",
	ActionComplete:          "Complete",
	ActionCompletePrev:      "CompletePrev",
	ActionHistoryPrev:       "HistoryPrev",
	ActionHistoryNext:       "HistoryNext",
	ActionClearScreen:       "ClearScreen",
	ActionSuspend:           "Suspend",
	ActionInterrupt:         "Interrupt",
	ActionEndOfInput:        "EndOfInput",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// KeyPattern identifies which key events match a binding.
type KeyPattern struct {
	Key           Key      // Specific key (KeyCtrlK, KeyEnter, etc.), or 0
	Rune          rune     // Specific rune, or 0
	AnyRune       bool     // Match any printable character
	Mod           Modifier // Required modifiers (when non-zero, event must have exactly these mods)
	RequireNoMods bool     // When true, event must have no modifiers (Mod field is ignored)
}

// matches checks if the pattern matches a key event.
func (p KeyPattern) matches(ke KeyEvent) bool {
	if p.RequireNoMods && ke.Mod != 0 {
		return false
	}
	if p.Mod != 0 && ke.Mod != p.Mod {
		return false
	}

	if p.AnyRune && ke.Key == KeyRune {
		return true
	}
	if p.Rune != 0 && ke.Rune == p.Rune && ke.Key == KeyRune {
		return true
	}
	if p.Key != 0 && ke.Key == p.Key {
		return true
	}
	return false
}

// KeyBinding associates a key pattern with an edit action.
type KeyBinding struct {
	Pattern KeyPattern
	Action  Action
}

// KeyMap resolves key events to edit actions. Bindings are consulted in
// order and the first match wins; bindings added through Bind are
// consulted before earlier ones, so callers can override defaults.
type KeyMap struct {
	bindings []KeyBinding
}

// Bind adds a binding that takes precedence over all existing ones.
func (m *KeyMap) Bind(p KeyPattern, a Action) {
	m.bindings = append([]KeyBinding{{Pattern: p, Action: a}}, m.bindings...)
}

// Lookup resolves ke to an action. Printable events with no Ctrl or Alt
// modifier fall back to ActionInsert when nothing is bound; everything
// else unbound resolves to ActionNone.
func (m *KeyMap) Lookup(ke KeyEvent) Action {
	for _, b := range m.bindings {
		if b.Pattern.matches(ke) {
			return b.Action
		}
	}
	if ke.Key == KeyRune && !ke.Mod.Has(ModCtrl) && !ke.Mod.Has(ModAlt) {
		return ActionInsert
	}
	return ActionNone
}

// DefaultKeyMap returns the familiar binding set: emacs-style movement
// and editing, arrow keys with Ctrl-modified word movement, history on
// Up/Down past the buffer edge and on PageUp/PageDown, Tab completion
// with Shift+Tab cycling backward, and the session controls (Enter, Alt+Enter, Ctrl+C, Ctrl+D, Ctrl+L,
// Ctrl+Z). Modifier-specific bindings come before their plain
// counterparts so they match first.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{bindings: []KeyBinding{
		{KeyPattern{Key: KeyLeft, Mod: ModCtrl}, ActionMoveWordLeft},
		{KeyPattern{Key: KeyRight, Mod: ModCtrl}, ActionMoveWordRight},
		{KeyPattern{Key: KeyLeft}, ActionMoveLeft},
		{KeyPattern{Key: KeyRight}, ActionMoveRight},
		{KeyPattern{Key: KeyUp}, ActionMoveUp},
		{KeyPattern{Key: KeyDown}, ActionMoveDown},
		{KeyPattern{Key: KeyHome}, ActionMoveLineStart},
		{KeyPattern{Key: KeyEnd}, ActionMoveLineEnd},
		{KeyPattern{Key: KeyPageUp}, ActionHistoryPrev},
		{KeyPattern{Key: KeyPageDown}, ActionHistoryNext},
		{KeyPattern{Rune: 'b', Mod: ModAlt}, ActionMoveWordLeft},
		{KeyPattern{Rune: 'f', Mod: ModAlt}, ActionMoveWordRight},
		{KeyPattern{Rune: 'd', Mod: ModAlt}, ActionDeleteWordForward},
		{KeyPattern{Rune: '<', Mod: ModAlt}, ActionMoveStart},
		{KeyPattern{Rune: '>', Mod: ModAlt}, ActionMoveEnd},
		{KeyPattern{Key: KeyBackspace, Mod: ModAlt}, ActionDeleteWordBack},
		{KeyPattern{Key: KeyBackspace}, ActionDeleteBack},
		{KeyPattern{Key: KeyDelete}, ActionDeleteForward},
		{KeyPattern{Key: KeyEnter, Mod: ModAlt}, ActionNewline},
		{KeyPattern{Key: KeyEnter}, ActionSubmit},
		// Accept-line on Ctrl+J so pasted text with line feeds submits
		// line by line, as Enter would have.
		{KeyPattern{Key: KeyCtrlJ}, ActionSubmit},
		{KeyPattern{Key: KeyTab, Mod: ModShift}, ActionCompletePrev},
		{KeyPattern{Key: KeyTab}, ActionComplete},
		{KeyPattern{Key: KeyCtrlA}, ActionMoveLineStart},
		{KeyPattern{Key: KeyCtrlE}, ActionMoveLineEnd},
		{KeyPattern{Key: KeyCtrlB}, ActionMoveLeft},
		{KeyPattern{Key: KeyCtrlF}, ActionMoveRight},
		{KeyPattern{Key: KeyCtrlP}, ActionMoveUp},
		{KeyPattern{Key: KeyCtrlN}, ActionMoveDown},
		{KeyPattern{Key: KeyCtrlW}, ActionDeleteWordBack},
		{KeyPattern{Key: KeyCtrlK}, ActionKillToEnd},
		{KeyPattern{Key: KeyCtrlU}, ActionKillToStart},
		{KeyPattern{Key: KeyCtrlT}, ActionTranspose},
		{KeyPattern{Key: KeyCtrlL}, ActionClearScreen},
		{KeyPattern{Key: KeyCtrlZ}, ActionSuspend},
		{KeyPattern{Key: KeyCtrlC}, ActionInterrupt},
		{KeyPattern{Key: KeyCtrlD}, ActionEndOfInput},
	}}
}
