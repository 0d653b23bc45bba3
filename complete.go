package line

// Completion is a completer's answer: the candidate replacement strings,
// in display order, and the rune span [Start, End) of the buffer they
// replace. All candidates share the one span.
type Completion struct {
	Start      int
	End        int
	Candidates []string
}

// Completer produces completion candidates for the given buffer text and
// cursor offset. Returning nil or no candidates means nothing to
// complete. Called when the completion key (Tab by default) is pressed
// outside an active completion cycle.
type Completer func(text string, cursor int) *Completion

// completionState is the two-state completion machine. Idle until a
// trigger produces two or more candidates; while active, further
// triggers cycle through the candidates and any other action commits the
// previewed one by simply returning to idle, since the preview is
// already ordinary buffer content.
type completionState struct {
	active     bool
	start      int // rune offset where the replaced span begins
	length     int // rune length of the currently previewed candidate
	index      int
	candidates []string
}

// trigger starts a completion cycle, or steps an active one by dir
// (+1 forward, -1 backward). Direction only matters while cycling; a
// fresh cycle always previews the first candidate.
func (c *completionState) trigger(buf *Buffer, complete Completer, dir int) {
	if c.active {
		c.cycle(buf, dir)
		return
	}
	if complete == nil {
		return
	}
	res := complete(buf.Text(), buf.Cursor())
	if res == nil || len(res.Candidates) == 0 {
		return
	}
	first := res.Candidates[0]
	buf.ReplaceSpan(res.Start, res.End, first)
	if len(res.Candidates) == 1 {
		return
	}
	c.active = true
	c.start = buf.Cursor() - len([]rune(first))
	c.length = len([]rune(first))
	c.index = 0
	c.candidates = res.Candidates
}

// cycle replaces the current preview with an adjacent candidate,
// wrapping at either end.
func (c *completionState) cycle(buf *Buffer, dir int) {
	n := len(c.candidates)
	c.index = (c.index + dir + n) % n
	next := c.candidates[c.index]
	buf.ReplaceSpan(c.start, c.start+c.length, next)
	c.length = len([]rune(next))
}

// commit ends the cycle, leaving the previewed candidate in the buffer.
func (c *completionState) commit() {
	c.active = false
	c.candidates = nil
}
