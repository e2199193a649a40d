/*
Smallsh is a minimal interactive command interpreter. It reads one
line at a time, expands $$ to its own process id, and runs built-ins
(exit, status, cd) or external programs in the foreground or, with a
trailing &, the background:

	: echo hello $$
	hello 4829
	: sleep 30 &
	Background pid is 4923
	: status
	exit value 0

Redirection with < and > is supported. A stop signal (SIGTSTP)
toggles foreground-only mode, in which & is ignored.
*/
package main

import (
	"os"

	"github.com/charmbracelet/log"

	"smallsh/internal/engine"
	"smallsh/internal/system/job"
	"smallsh/internal/system/options"
	"smallsh/internal/ui"
)

func main() {
	// A failed background command is carried by a re-exec of this
	// binary that only exits 1.
	job.ExitIfStandIn()

	options.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "smallsh",
	})
	if options.Debug() {
		logger.SetLevel(log.DebugLevel)
	}

	j := job.New(os.Stdout, logger)
	j.Monitor()

	e := engine.New(j, os.Stdout)

	if c := options.Command(); c != "" {
		e.Reap()
		e.Evaluate(c)

		return
	}

	ui.Run(e)
}
