// Package engine evaluates one line at a time: built-ins are handled
// here, everything else goes to the job controller.
package engine

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"smallsh/internal/command"
	"smallsh/internal/reader"
	"smallsh/internal/system/job"
)

// T (engine) ties a reader to the job controller.
type T struct {
	w io.Writer
	j *job.T
	r *reader.T
}

type engine = T

// New creates an engine that writes built-in output to w.
func New(j *job.T, w io.Writer) *T {
	return &T{w: w, j: j, r: reader.Self()}
}

// Reap collects at most one finished background child. The UI calls
// this at the top of every iteration, before showing the prompt.
func (e *engine) Reap() {
	e.j.Reap()
}

// Evaluate expands, tokenizes, and dispatches one line. Built-ins
// match on the raw first token; anything else is parsed into a
// command and launched, with the foreground-only flag overriding a
// background request.
func (e *engine) Evaluate(line string) {
	tokens, err := e.r.Scan(line)
	if err != nil {
		fmt.Fprintf(os.Stderr, "smallsh: %v\n", err)

		return
	}

	// Blank line or comment.
	if tokens == nil {
		return
	}

	switch tokens[0] {
	case "exit":
		e.j.Exit()

	case "status":
		fmt.Fprintf(e.w, "%s\n", e.j.Last())

	case "cd":
		e.cd(tokens)

	default:
		c, err := command.Parse(tokens)
		if err != nil {
			fmt.Fprintf(os.Stderr, "smallsh: %v\n", err)

			return
		}

		if e.j.ForegroundOnly() {
			c.Background = false
		}

		e.j.Launch(c)
	}
}

// cd with no argument changes to $HOME. An argument with a leading
// separator is taken as absolute; anything else is joined onto the
// current working directory. Failure is reported and the working
// directory is left unchanged.
func (e *engine) cd(args []string) {
	var dir string

	switch {
	case len(args) == 1:
		dir = os.Getenv("HOME")

	case strings.HasPrefix(args[1], string(os.PathSeparator)):
		dir = args[1]

	default:
		wd, _ := os.Getwd()
		dir = filepath.Join(wd, args[1])
	}

	if err := os.Chdir(dir); err != nil {
		fmt.Fprintf(os.Stderr, "Error changing directory: %v\n", err)
	}
}
