package line

import (
	"io"
	"strings"
	"time"

	"github.com/muesli/termenv"
)

// MockTerminal is a scripted in-memory Terminal for testing. Input is
// fed as byte chunks, each returned by one Read call so tests can
// exercise reassembly across read boundaries; output is captured per
// Flush so tests can inspect individual frames.
type MockTerminal struct {
	inputs  [][]byte
	pending strings.Builder
	frames  []string
	width   int
	height  int
	caps    Capabilities

	inRawMode bool
	resized   bool
	closed    bool

	// quiet makes Poll report no input once the queue is empty instead
	// of letting Read surface EOF, modelling an open but idle terminal.
	quiet bool

	// Transition counters for verifying scoped raw mode and suspend.
	rawEnterCount int
	rawExitCount  int
	suspendCount  int
}

// Ensure MockTerminal implements Terminal.
var _ Terminal = (*MockTerminal)(nil)

// NewMockTerminal creates a mock terminal with the given dimensions.
// Capabilities default to a monochrome UTF-8 terminal so captured
// frames contain no color sequences unless a test asks for them.
func NewMockTerminal(width, height int) *MockTerminal {
	return &MockTerminal{
		width:  width,
		height: height,
		caps:   Capabilities{Profile: termenv.Ascii, Unicode: true},
	}
}

// Feed queues s as one input chunk for a single Read call.
func (m *MockTerminal) Feed(s string) {
	m.inputs = append(m.inputs, []byte(s))
}

// FeedBytes queues b as one input chunk for a single Read call.
func (m *MockTerminal) FeedBytes(b []byte) {
	chunk := make([]byte, len(b))
	copy(chunk, b)
	m.inputs = append(m.inputs, chunk)
}

// Read returns the next queued input chunk, or io.EOF when exhausted.
func (m *MockTerminal) Read(p []byte) (int, error) {
	if len(m.inputs) == 0 {
		return 0, io.EOF
	}
	chunk := m.inputs[0]
	n := copy(p, chunk)
	if n < len(chunk) {
		m.inputs[0] = chunk[n:]
	} else {
		m.inputs = m.inputs[1:]
	}
	return n, nil
}

// Poll reports readiness immediately so timeout-driven paths run
// without real waiting. Once the queue is empty it keeps reporting
// ready, letting Read surface EOF, unless SetQuiet put the terminal in
// idle mode.
func (m *MockTerminal) Poll(timeout time.Duration) (bool, error) {
	if len(m.inputs) > 0 {
		return true, nil
	}
	if m.quiet {
		return false, nil
	}
	return true, nil
}

// SetQuiet controls whether an exhausted input queue looks like an idle
// terminal (Poll times out) rather than a closed one (Read returns
// EOF). Tests exercising the escape flush deadline need the idle form.
func (m *MockTerminal) SetQuiet(quiet bool) {
	m.quiet = quiet
}

// WriteString queues s for output.
func (m *MockTerminal) WriteString(s string) (int, error) {
	return m.pending.WriteString(s)
}

// Flush captures the queued output as one frame.
func (m *MockTerminal) Flush() error {
	if m.pending.Len() == 0 {
		return nil
	}
	m.frames = append(m.frames, m.pending.String())
	m.pending.Reset()
	return nil
}

// Size returns the terminal dimensions.
func (m *MockTerminal) Size() (width, height int) {
	return m.width, m.height
}

// EnterRawMode simulates entering raw mode.
func (m *MockTerminal) EnterRawMode() error {
	m.inRawMode = true
	m.rawEnterCount++
	return nil
}

// ExitRawMode simulates exiting raw mode.
func (m *MockTerminal) ExitRawMode() error {
	m.inRawMode = false
	m.rawExitCount++
	return nil
}

// Resized reports and clears the pending resize flag.
func (m *MockTerminal) Resized() bool {
	r := m.resized
	m.resized = false
	return r
}

// Suspend records the call without stopping anything.
func (m *MockTerminal) Suspend() error {
	m.suspendCount++
	return nil
}

// Caps returns the terminal's capabilities.
func (m *MockTerminal) Caps() Capabilities {
	return m.caps
}

// SetCaps sets the terminal's capabilities for testing.
func (m *MockTerminal) SetCaps(caps Capabilities) {
	m.caps = caps
}

// Close records that the terminal was closed.
func (m *MockTerminal) Close() error {
	m.closed = true
	return nil
}

// --- Test helper methods ---

// ResizeTo changes the reported dimensions and flags a pending resize,
// as a SIGWINCH would on a real terminal.
func (m *MockTerminal) ResizeTo(width, height int) {
	m.width = width
	m.height = height
	m.resized = true
}

// Frames returns the output captured by each Flush call.
func (m *MockTerminal) Frames() []string {
	return m.frames
}

// LastFrame returns the most recently flushed output, or "".
func (m *MockTerminal) LastFrame() string {
	if len(m.frames) == 0 {
		return ""
	}
	return m.frames[len(m.frames)-1]
}

// Output returns all flushed output concatenated.
func (m *MockTerminal) Output() string {
	return strings.Join(m.frames, "")
}

// IsInRawMode returns whether the terminal is in raw mode.
func (m *MockTerminal) IsInRawMode() bool {
	return m.inRawMode
}

// RawEnterCount returns the number of EnterRawMode calls.
func (m *MockTerminal) RawEnterCount() int {
	return m.rawEnterCount
}

// RawExitCount returns the number of ExitRawMode calls.
func (m *MockTerminal) RawExitCount() int {
	return m.rawExitCount
}

// SuspendCount returns the number of Suspend calls.
func (m *MockTerminal) SuspendCount() int {
	return m.suspendCount
}

// IsClosed returns whether Close was called.
func (m *MockTerminal) IsClosed() bool {
	return m.closed
}
