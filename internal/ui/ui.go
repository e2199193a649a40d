// Released under an MIT license. See LICENSE.

// Package ui reads lines and feeds them to the evaluator.
package ui

import (
	"bufio"
	"os"

	"github.com/peterh/liner"

	"smallsh/internal/system/history"
	"smallsh/internal/system/options"
)

// Prompt is the marker shown before every read.
const Prompt = ": "

// Evaluator is the interface for things that want to process lines.
type Evaluator interface {
	Evaluate(line string)
	Reap()
}

// Run reads lines and sends them to the Evaluator until input is
// exhausted. At the top of every iteration, before the prompt, at
// most one finished background child is reaped.
func Run(e Evaluator) {
	if options.Interactive() {
		interactive(e)
	} else {
		piped(e)
	}
}

func interactive(e Evaluator) {
	cooked, err := liner.TerminalMode()
	if err != nil {
		println(err.Error())
		os.Exit(1)
	}

	cli := liner.NewLiner()
	defer cli.Close()

	uncooked, err := liner.TerminalMode()
	if err != nil {
		println(err.Error())
		os.Exit(1)
	}

	cli.SetCtrlCAborts(true)

	_ = history.Load(cli.ReadHistory)

	for {
		e.Reap()

		merr := uncooked.ApplyMode()
		if merr != nil {
			println(merr.Error())
			os.Exit(1)
		}

		line, err := cli.Prompt(Prompt)

		// Children run on a cooked terminal.
		merr = cooked.ApplyMode()
		if merr != nil {
			println(merr.Error())
			os.Exit(1)
		}

		switch err {
		case nil:
			cli.AppendHistory(line)
			_ = history.Save(cli.WriteHistory)

			e.Evaluate(line)

		case liner.ErrPromptAborted:
			// The interrupt cancels the line, never the loop.

		default:
			return
		}
	}
}

func piped(e Evaluator) {
	s := bufio.NewScanner(os.Stdin)

	for {
		e.Reap()

		os.Stdout.WriteString(Prompt)

		if !s.Scan() {
			return
		}

		e.Evaluate(s.Text())
	}
}
