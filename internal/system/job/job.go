// Released under an MIT license. See LICENSE.

// Package job spawns, waits on, and reclaims child processes, and
// owns the interpreter's run-wide state.
package job

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync/atomic"

	"github.com/charmbracelet/log"
	"github.com/michaelmacinnis/adapted"
	"golang.org/x/sys/unix"

	"smallsh/internal/command"
	"smallsh/internal/system/process"
)

// Banners written when the stop signal toggles foreground-only mode.
// They go out as raw, unbuffered writes on the terminal descriptor:
// the monitor can fire while the main loop is blocked anywhere.
const (
	entering = "\nEntering foreground-only mode (& is now ignored)\n"
	exiting  = "\nExiting foreground-only mode\n"
	marker   = ": "
)

// childExitEnv marks a process spawned only to carry a failed
// background command's exit status.
const childExitEnv = "SMALLSH_CHILD_EXIT"

// ExitIfStandIn terminates the process immediately when it was
// spawned as a failure stand-in (see failed). It must run before
// anything else at startup.
func ExitIfStandIn() {
	if os.Getenv(childExitEnv) != "" {
		os.Exit(1)
	}
}

// T (job controller) is the interpreter's process-wide state: the
// current foreground child, the last foreground completion, the
// foreground-only flag, and the set of unreaped background children.
// A single instance lives for the interpreter's entire run.
type T struct {
	w   io.Writer
	log *log.Logger

	foreground int // Pid of the current foreground child; 0 when none.
	last       Status
	background map[int]struct{}

	fgOnly  atomic.Bool
	signalq chan os.Signal
}

type job = T

// New creates the job controller. Shell output is written to w.
func New(w io.Writer, logger *log.Logger) *T {
	return &T{
		w:          w,
		log:        logger,
		background: map[int]struct{}{},
	}
}

// Monitor installs the interpreter's signal dispositions and starts
// the goroutine that services them. The interrupt is swallowed so it
// can never kill the interpreter; the stop signal flips the
// foreground-only flag. Each child's dispositions are set at spawn
// time (see process.SysProcAttr).
func (j *job) Monitor() {
	signals := []os.Signal{unix.SIGINT, unix.SIGTSTP}

	j.signalq = make(chan os.Signal, len(signals)+1)

	signal.Notify(j.signalq, signals...)

	go j.monitor()
}

// Background returns the number of background children not yet
// reaped.
func (j *job) Background() int {
	return len(j.background)
}

// Foreground returns the pid of the current foreground child, or 0
// when the interpreter itself is in control.
func (j *job) Foreground() int {
	return j.foreground
}

// ForegroundOnly reports whether the stop signal has forced all
// commands into the foreground.
func (j *job) ForegroundOnly() bool {
	return j.fgOnly.Load()
}

// Last returns the completion status of the most recent foreground
// command.
func (j *job) Last() Status {
	return j.last
}

// Launch resolves and spawns c. The background flag is taken as
// given; callers apply the foreground-only override before calling.
//
// Foreground: block until that exact child changes state, store the
// tagged status, and report a signal termination. Background: report
// the assigned pid immediately and let Reap collect it later. A
// lookup or redirection failure costs the command an exit status of
// 1 and is never fatal to the interpreter; a spawn failure is.
func (j *job) Launch(c *command.T) {
	name := c.Name()

	arg0, executable, err := adapted.LookPath(name, os.Getenv("PATH"))
	if err != nil || !executable {
		fmt.Fprintf(os.Stderr, "bash: %s: command not found\n", name)

		j.failed(c)

		return
	}

	files, err := j.files(c)
	if err != nil {
		fmt.Fprintf(j.w, "bash: %v\n", err)

		j.failed(c)

		return
	}

	attr := &os.ProcAttr{
		Env:   os.Environ(),
		Files: files,
		Sys:   process.SysProcAttr(c.Background),
	}

	p, err := os.StartProcess(arg0, c.Args, attr)

	closeExtra(files)

	if err != nil {
		// Out of processes or memory. Not recoverable.
		fmt.Fprintf(os.Stderr, "smallsh: spawn failed: %v\n", err)
		os.Exit(1)
	}

	j.log.Debug("spawned", "pid", p.Pid, "argv", c.Args, "background", c.Background)

	if c.Background {
		fmt.Fprintf(j.w, "Background pid is %d\n", p.Pid)

		j.background[p.Pid] = struct{}{}

		return
	}

	j.foreground = p.Pid
	ws := wait(p.Pid)
	j.foreground = 0

	j.last = status(ws)
	j.log.Debug("waited", "pid", p.Pid, "status", j.last)

	if j.last.Signaled() {
		fmt.Fprintf(j.w, "%s\n", j.last)
	}
}

// Reap performs exactly one non-blocking check for a finished
// background child. A burst of simultaneous completions is drained
// one per call, never all at once. The stored foreground status is
// left untouched.
func (j *job) Reap() {
	if len(j.background) == 0 {
		return
	}

	var ws unix.WaitStatus

	pid, err := unix.Wait4(-1, &ws, unix.WNOHANG, nil)
	if err != nil || pid <= 0 {
		return
	}

	delete(j.background, pid)

	j.log.Debug("reaped", "pid", pid, "status", status(ws))

	fmt.Fprintf(j.w, "background pid %d is done: %s\n", pid, status(ws))
}

// Exit terminates every outstanding background child, then the
// interpreter, with exit code 0. Child exit codes are never folded
// into the interpreter's own. No return.
func (j *job) Exit() {
	for pid := range j.background {
		// Each background child leads its own group.
		process.TerminateGroup(pid)
	}

	os.Exit(0)
}

// failed records a command that could not be resolved: the failure
// belongs to the child, not the interpreter. A foreground failure is
// stored as the last completion. A background failure must still go
// through the pid-report/reap lifecycle, so a stand-in child is
// spawned that does nothing but exit 1 in place of the command that
// never ran.
func (j *job) failed(c *command.T) {
	if !c.Background {
		j.last = Exited(1)

		return
	}

	self, err := os.Executable()
	if err == nil {
		attr := &os.ProcAttr{
			Env:   append(os.Environ(), childExitEnv+"=1"),
			Files: []*os.File{os.Stdin, os.Stdout, os.Stderr},
			Sys:   process.SysProcAttr(true),
		}

		var p *os.Process

		p, err = os.StartProcess(self, []string{self}, attr)
		if err == nil {
			j.log.Debug("spawned stand-in", "pid", p.Pid)

			fmt.Fprintf(j.w, "Background pid is %d\n", p.Pid)

			j.background[p.Pid] = struct{}{}

			return
		}
	}

	fmt.Fprintf(os.Stderr, "smallsh: spawn failed: %v\n", err)
	os.Exit(1)
}

func (j *job) monitor() {
	for s := range j.signalq {
		switch s {
		case unix.SIGINT:
			// Swallowed. The foreground child, back on the
			// default disposition after exec, dies alone.

		case unix.SIGTSTP:
			banner := entering
			if j.fgOnly.Load() {
				banner = exiting
			}

			j.fgOnly.Store(banner == entering)

			_, _ = unix.Write(1, []byte(banner))
			_, _ = unix.Write(1, []byte(marker))

			j.log.Debug("foreground-only mode", "enabled", banner == entering)
		}
	}
}

// wait blocks until pid changes state. The stop signal can interrupt
// the wait; retry until the child is actually collected.
func wait(pid int) unix.WaitStatus {
	var ws unix.WaitStatus

	for {
		_, err := unix.Wait4(pid, &ws, 0, nil)
		if err != unix.EINTR {
			break
		}
	}

	return ws
}
