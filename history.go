package line

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// defaultHistoryCap bounds history growth when the caller does not pick
// a capacity.
const defaultHistoryCap = 1000

// History is a bounded, ordered store of previously submitted entries,
// oldest first. When the capacity is reached the oldest entry is
// evicted. History belongs to a single Editor and needs no locking.
type History struct {
	entries []string
	cap     int
	dedup   bool
}

// NewHistory returns a History holding at most capacity entries. A
// capacity of zero or less means unbounded. Consecutive duplicates are
// coalesced until SetDedup turns that off.
func NewHistory(capacity int) *History {
	return &History{cap: capacity, dedup: true}
}

// SetDedup controls whether consecutive duplicate entries are coalesced.
func (h *History) SetDedup(on bool) {
	h.dedup = on
}

// Push appends an entry, evicting the oldest if the store is full. With
// dedup enabled an entry equal to the newest one is dropped.
func (h *History) Push(entry string) {
	if h.dedup && len(h.entries) > 0 && h.entries[len(h.entries)-1] == entry {
		return
	}
	if h.cap > 0 && len(h.entries) >= h.cap {
		n := copy(h.entries, h.entries[len(h.entries)-h.cap+1:])
		h.entries = h.entries[:n]
	}
	h.entries = append(h.entries, entry)
}

// Len returns the number of stored entries.
func (h *History) Len() int {
	return len(h.entries)
}

// Get returns the entry at index i (0 = oldest) and whether it exists.
func (h *History) Get(i int) (string, bool) {
	if i < 0 || i >= len(h.entries) {
		return "", false
	}
	return h.entries[i], true
}

// Entries returns a copy of the stored entries, oldest first.
func (h *History) Entries() []string {
	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}

// Load reads line-per-entry history from r and pushes each line,
// applying the usual capacity and dedup rules.
func (h *History) Load(r io.Reader) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if line := sc.Text(); line != "" {
			h.Push(line)
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("load history: %w", err)
	}
	return nil
}

// Save writes the stored entries to w, one per line. Entries that
// themselves contain newlines come back as separate entries on the next
// Load.
func (h *History) Save(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, e := range h.entries {
		if _, err := bw.WriteString(e); err != nil {
			return fmt.Errorf("save history: %w", err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("save history: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("save history: %w", err)
	}
	return nil
}

// LoadFile loads history from path. A missing file is not an error.
func (h *History) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load history: %w", err)
	}
	defer f.Close()
	return h.Load(f)
}

// SaveFile writes history to path, replacing any previous contents.
func (h *History) SaveFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save history: %w", err)
	}
	if err := h.Save(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("save history: %w", err)
	}
	return nil
}
