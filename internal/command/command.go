// Package command models a single parsed command line.
package command

import (
	"errors"
	"fmt"
)

// ErrEmpty is returned when nothing is left to run after the
// redirection operators and background marker are removed.
var ErrEmpty = errors.New("missing command name")

// T (command) is one command: an argument vector, at most one
// redirection per direction, and whether the line asked to run in
// the background. An empty In or Out means that direction was never
// redirected; there is no other sentinel.
type T struct {
	Args       []string
	In         string
	Out        string
	Background bool
}

type command = T

// Parse builds a command from a non-empty token sequence. A trailing
// "&" is always stripped and recorded, whether or not it will be
// honored. Each "<" or ">" consumes the following token as its path
// and both are excised from the argument vector; a later operator
// for the same direction overwrites the earlier one. An operator in
// final position has no path and is an error.
func Parse(tokens []string) (*T, error) {
	c := &T{}

	if n := len(tokens); n > 0 && tokens[n-1] == "&" {
		c.Background = true
		tokens = tokens[:n-1]
	}

	for i := 0; i < len(tokens); i++ {
		t := tokens[i]

		if t != "<" && t != ">" {
			c.Args = append(c.Args, t)
			continue
		}

		if i == len(tokens)-1 {
			return nil, fmt.Errorf("missing path after %q", t)
		}

		i++
		if t == "<" {
			c.In = tokens[i]
		} else {
			c.Out = tokens[i]
		}
	}

	if len(c.Args) == 0 {
		return nil, ErrEmpty
	}

	return c, nil
}

// Name is the program or built-in the command refers to.
func (c *command) Name() string {
	return c.Args[0]
}
