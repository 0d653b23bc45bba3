//go:build unix

package line

import (
	"os"
	"os/signal"
	"time"

	"golang.org/x/sys/unix"
)

// pollFd performs a select() call on the given fd with timeout.
// Returns (true, nil) if the fd is ready for reading.
// Returns (false, nil) on timeout or when a signal interrupts the wait.
// Returns (false, err) on error.
func pollFd(fd int, timeout time.Duration) (ready bool, err error) {
	var readFds unix.FdSet
	readFds.Zero()
	readFds.Set(fd)

	// A nil timeval means block indefinitely.
	var tv *unix.Timeval
	if timeout >= 0 {
		tvVal := unix.NsecToTimeval(timeout.Nanoseconds())
		tv = &tvVal
	}

	n, err := unix.Select(fd+1, &readFds, nil, nil, tv)
	if err != nil {
		// EINTR is expected when signals arrive; the caller rechecks
		// its resize flag and polls again.
		if err == unix.EINTR {
			return false, nil
		}
		return false, err
	}

	return n > 0, nil
}

// notifyResize registers ch for terminal size-change signals.
func notifyResize(ch chan os.Signal) {
	signal.Notify(ch, unix.SIGWINCH)
}

// suspendProcess stops the process group with SIGTSTP, handing control
// back to the shell until the user resumes with fg.
func suspendProcess() error {
	return unix.Kill(0, unix.SIGTSTP)
}
