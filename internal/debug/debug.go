package debug

import (
	"fmt"
	"os"
	"sync"
	"time"
)

var (
	mu   sync.Mutex
	file *os.File
	off  bool
)

// Log appends a timestamped message to the file named by the LINE_DEBUG
// environment variable. With the variable unset calls are nearly free,
// and nothing ever goes to the terminal, so logging is safe while raw
// mode owns the screen.
func Log(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	if off {
		return
	}
	if file == nil {
		path := os.Getenv("LINE_DEBUG")
		if path == "" {
			off = true
			return
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			off = true
			return
		}
		file = f
	}

	timestamp := time.Now().Format("15:04:05.000")
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(file, "[%s] %s\n", timestamp, msg)
}

// Close closes the log file if one was opened.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	if file == nil {
		return nil
	}
	err := file.Close()
	file = nil
	off = false
	return err
}
