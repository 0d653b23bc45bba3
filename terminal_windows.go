//go:build windows

package line

import (
	"errors"
	"os"
	"time"

	"golang.org/x/sys/windows"
)

// pollFd waits for the console handle to signal pending input. The
// console wakes the wait for non-key events too, so a ready result only
// means the subsequent read probably will not block.
func pollFd(fd int, timeout time.Duration) (bool, error) {
	ms := uint32(windows.INFINITE)
	if timeout >= 0 {
		ms = uint32(timeout / time.Millisecond)
	}
	ev, err := windows.WaitForSingleObject(windows.Handle(fd), ms)
	if err != nil {
		return false, err
	}
	return ev == windows.WAIT_OBJECT_0, nil
}

// notifyResize is a no-op: Windows delivers no resize signal, so
// embedders call NotifyResize themselves when their console layer
// reports a size change.
func notifyResize(ch chan os.Signal) {}

// suspendProcess is unsupported on Windows.
func suspendProcess() error {
	return errors.New("suspend not supported on this platform")
}
