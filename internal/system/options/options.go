package options

import (
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

//nolint:gochecknoglobals
var (
	command     string
	debug       bool
	interactive bool
	usage       = `smallsh

Usage:
  smallsh [-x]
  smallsh [-x] -c COMMAND
  smallsh -h
  smallsh -v

Options:
  -c, --command=COMMAND  Run the specified command and exit.
  -x, --debug            Log process lifecycle events to stderr.
  -h, --help             Display this help.
  -v, --version          Print smallsh version.

If smallsh's stdin is a TTY and no command was given, lines are read
interactively with editing and history. Otherwise lines are read from
stdin until it is exhausted.
`
	version = "smallsh 1.0.0"
)

func Command() string {
	return command
}

func Debug() bool {
	return debug
}

func Interactive() bool {
	return interactive
}

func Parse() {
	opts, err := docopt.ParseDoc(usage)
	if err != nil {
		// Error in the usage doc. This should never happen.
		panic(err.Error())
	}

	if v, _ := opts.Bool("--version"); v {
		println(version)
		os.Exit(0)
	}

	command, _ = opts.String("--command")
	debug, _ = opts.Bool("--debug")

	if command == "" && isatty.IsTerminal(os.Stdin.Fd()) {
		interactive = true
	}
}
