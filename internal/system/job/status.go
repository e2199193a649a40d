package job

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Status is the tagged completion state of a child process: either
// an exit code or the number of the signal that terminated it. The
// zero value renders as an exit value of 0, which is what the status
// built-in reports before any foreground command has ever run.
type Status struct {
	code     int
	signaled bool
}

// Exited is the status of a process that exited with code.
func Exited(code int) Status {
	return Status{code: code}
}

// Terminated is the status of a process killed by signal sig.
func Terminated(sig int) Status {
	return Status{code: sig, signaled: true}
}

// Signaled reports whether the process was killed by a signal.
func (s Status) Signaled() bool {
	return s.signaled
}

// String renders one of the two fixed status lines.
func (s Status) String() string {
	if s.signaled {
		return fmt.Sprintf("terminated by signal %d", s.code)
	}

	return fmt.Sprintf("exit value %d", s.code)
}

func status(ws unix.WaitStatus) Status {
	if ws.Signaled() {
		return Terminated(int(ws.Signal()))
	}

	return Exited(ws.ExitStatus())
}
