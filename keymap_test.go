package line

import "testing"

func TestKeyPattern_Matches(t *testing.T) {
	type tc struct {
		pattern KeyPattern
		event   KeyEvent
		want    bool
	}

	tests := map[string]tc{
		"exact key": {
			pattern: KeyPattern{Key: KeyEnter},
			event:   KeyEvent{Key: KeyEnter},
			want:    true,
		},
		"different key": {
			pattern: KeyPattern{Key: KeyEnter},
			event:   KeyEvent{Key: KeyTab},
			want:    false,
		},
		"key with no mod constraint matches modified event": {
			pattern: KeyPattern{Key: KeyLeft},
			event:   KeyEvent{Key: KeyLeft, Mod: ModShift},
			want:    true,
		},
		"mod must match exactly": {
			pattern: KeyPattern{Key: KeyLeft, Mod: ModCtrl},
			event:   KeyEvent{Key: KeyLeft, Mod: ModCtrl},
			want:    true,
		},
		"mod mismatch": {
			pattern: KeyPattern{Key: KeyLeft, Mod: ModCtrl},
			event:   KeyEvent{Key: KeyLeft, Mod: ModAlt},
			want:    false,
		},
		"mod superset does not match": {
			pattern: KeyPattern{Key: KeyLeft, Mod: ModCtrl},
			event:   KeyEvent{Key: KeyLeft, Mod: ModCtrl | ModShift},
			want:    false,
		},
		"mod constraint rejects unmodified event": {
			pattern: KeyPattern{Key: KeyLeft, Mod: ModCtrl},
			event:   KeyEvent{Key: KeyLeft},
			want:    false,
		},
		"exact rune": {
			pattern: KeyPattern{Rune: 'b', Mod: ModAlt},
			event:   KeyEvent{Key: KeyRune, Rune: 'b', Mod: ModAlt},
			want:    true,
		},
		"rune pattern needs rune event": {
			pattern: KeyPattern{Rune: 'b'},
			event:   KeyEvent{Key: KeyCtrlB},
			want:    false,
		},
		"any rune": {
			pattern: KeyPattern{AnyRune: true},
			event:   KeyEvent{Key: KeyRune, Rune: 'x'},
			want:    true,
		},
		"any rune ignores non-rune keys": {
			pattern: KeyPattern{AnyRune: true},
			event:   KeyEvent{Key: KeyEnter},
			want:    false,
		},
		"require no mods": {
			pattern: KeyPattern{Key: KeyUp, RequireNoMods: true},
			event:   KeyEvent{Key: KeyUp},
			want:    true,
		},
		"require no mods rejects modified": {
			pattern: KeyPattern{Key: KeyUp, RequireNoMods: true},
			event:   KeyEvent{Key: KeyUp, Mod: ModShift},
			want:    false,
		},
		"empty pattern matches nothing": {
			pattern: KeyPattern{},
			event:   KeyEvent{Key: KeyRune, Rune: 'a'},
			want:    false,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.pattern.matches(tt.event); got != tt.want {
				t.Errorf("matches(%+v) = %v, want %v", tt.event, got, tt.want)
			}
		})
	}
}

func TestKeyMap_Lookup(t *testing.T) {
	type tc struct {
		event KeyEvent
		want  Action
	}

	km := DefaultKeyMap()

	tests := map[string]tc{
		"enter submits":                {event: KeyEvent{Key: KeyEnter}, want: ActionSubmit},
		"ctrl j submits":               {event: KeyEvent{Key: KeyCtrlJ}, want: ActionSubmit},
		"alt enter inserts newline":    {event: KeyEvent{Key: KeyEnter, Mod: ModAlt}, want: ActionNewline},
		"tab completes":                {event: KeyEvent{Key: KeyTab}, want: ActionComplete},
		"shift tab cycles backward":    {event: KeyEvent{Key: KeyTab, Mod: ModShift}, want: ActionCompletePrev},
		"ctrl c interrupts":            {event: KeyEvent{Key: KeyCtrlC}, want: ActionInterrupt},
		"ctrl d ends input":            {event: KeyEvent{Key: KeyCtrlD}, want: ActionEndOfInput},
		"ctrl l clears screen":         {event: KeyEvent{Key: KeyCtrlL}, want: ActionClearScreen},
		"ctrl z suspends":              {event: KeyEvent{Key: KeyCtrlZ}, want: ActionSuspend},
		"left arrow":                   {event: KeyEvent{Key: KeyLeft}, want: ActionMoveLeft},
		"ctrl left moves by word":      {event: KeyEvent{Key: KeyLeft, Mod: ModCtrl}, want: ActionMoveWordLeft},
		"up arrow":                     {event: KeyEvent{Key: KeyUp}, want: ActionMoveUp},
		"page up browses history":      {event: KeyEvent{Key: KeyPageUp}, want: ActionHistoryPrev},
		"alt b moves word left":        {event: KeyEvent{Key: KeyRune, Rune: 'b', Mod: ModAlt}, want: ActionMoveWordLeft},
		"alt backspace deletes word":   {event: KeyEvent{Key: KeyBackspace, Mod: ModAlt}, want: ActionDeleteWordBack},
		"backspace deletes":            {event: KeyEvent{Key: KeyBackspace}, want: ActionDeleteBack},
		"ctrl a to line start":         {event: KeyEvent{Key: KeyCtrlA}, want: ActionMoveLineStart},
		"ctrl k kills to end":          {event: KeyEvent{Key: KeyCtrlK}, want: ActionKillToEnd},
		"ctrl w deletes word back":     {event: KeyEvent{Key: KeyCtrlW}, want: ActionDeleteWordBack},
		"ctrl t transposes":            {event: KeyEvent{Key: KeyCtrlT}, want: ActionTranspose},
		"plain rune falls back":        {event: KeyEvent{Key: KeyRune, Rune: 'q'}, want: ActionInsert},
		"shifted rune falls back":      {event: KeyEvent{Key: KeyRune, Rune: 'Q', Mod: ModShift}, want: ActionInsert},
		"alt rune does not insert":     {event: KeyEvent{Key: KeyRune, Rune: 'q', Mod: ModAlt}, want: ActionNone},
		"unbound key resolves to none": {event: KeyEvent{Key: KeyInsert}, want: ActionNone},
		"unbound ctrl key is none":     {event: KeyEvent{Key: KeyCtrlG}, want: ActionNone},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := km.Lookup(tt.event); got != tt.want {
				t.Errorf("Lookup(%+v) = %v, want %v", tt.event, got, tt.want)
			}
		})
	}
}

func TestKeyMap_BindOverridesDefaults(t *testing.T) {
	km := DefaultKeyMap()
	km.Bind(KeyPattern{Key: KeyCtrlB}, ActionDeleteBack)

	if got := km.Lookup(KeyEvent{Key: KeyCtrlB}); got != ActionDeleteBack {
		t.Errorf("Lookup after Bind = %v, want %v", got, ActionDeleteBack)
	}
	// Unrelated bindings are untouched.
	if got := km.Lookup(KeyEvent{Key: KeyCtrlF}); got != ActionMoveRight {
		t.Errorf("Lookup(CtrlF) = %v, want %v", got, ActionMoveRight)
	}

	// The newest binding wins when several cover the same event.
	km.Bind(KeyPattern{Key: KeyCtrlB}, ActionMoveLeft)
	if got := km.Lookup(KeyEvent{Key: KeyCtrlB}); got != ActionMoveLeft {
		t.Errorf("Lookup after rebinding = %v, want %v", got, ActionMoveLeft)
	}
}

func TestAction_String(t *testing.T) {
	if got := ActionSubmit.String(); got != "Submit" {
		t.Errorf("String() = %q, want %q", got, "Submit")
	}
	if got := Action(200).String(); got != "Unknown" {
		t.Errorf("String() = %q, want %q", got, "Unknown")
	}
}
