// Released under an MIT license. See LICENSE.

//go:build aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris
// +build aix darwin dragonfly freebsd linux netbsd openbsd solaris

package process

import (
	"golang.org/x/sys/unix"
)

//nolint:gochecknoglobals
var (
	Platform = "unix"

	id       = unix.Getpid()
	group, _ = unix.Getpgid(id)
)

// Group returns the group ID for the current process.
func Group() int {
	return group
}

// ID returns the process ID for the current process.
func ID() int {
	return id
}

// SysProcAttr returns the attributes for a spawned child. A
// background child becomes its own group leader so an interrupt
// typed at the terminal never reaches it. A foreground child stays
// in the interpreter's group; exec resets its interrupt disposition
// to the default, so the interrupt kills the child and only the
// child.
func SysProcAttr(background bool) *unix.SysProcAttr {
	if !background {
		return nil
	}

	return &unix.SysProcAttr{Setpgid: true}
}

// Terminate sends a SIGTERM to the process ID pid.
func Terminate(pid int) {
	_ = unix.Kill(pid, unix.SIGTERM)
}

// TerminateGroup sends a SIGTERM to every process in group g.
func TerminateGroup(g int) {
	_ = unix.Kill(-g, unix.SIGTERM)
}
