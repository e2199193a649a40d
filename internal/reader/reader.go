// Package reader turns raw input lines into token sequences.
package reader

import (
	"errors"
	"strconv"
	"strings"

	"smallsh/internal/system/process"
)

// Input limits. A line or argument list that exceeds these is an
// error, never silently truncated.
const (
	MaxLineLength = 2048
	MaxArguments  = 512
)

// Pid is the literal token replaced by the interpreter's process id.
const Pid = "$$"

var (
	ErrLineTooLong      = errors.New("line exceeds " + strconv.Itoa(MaxLineLength) + " characters")
	ErrTooManyArguments = errors.New("more than " + strconv.Itoa(MaxArguments) + " arguments")
)

// T (reader) expands and tokenizes one line at a time.
type T struct {
	pid string
}

type reader = T

// New creates a reader that expands the pid token to id.
func New(id int) *T {
	return &T{pid: strconv.Itoa(id)}
}

// Self creates a reader for the current process.
func Self() *T {
	return New(process.ID())
}

// Expand replaces every non-overlapping occurrence of the pid token
// in line, rescanning until none remain. It operates on the whole
// line, before any splitting, so a token embedded in a larger word
// still expands.
func (r *reader) Expand(line string) string {
	for strings.Contains(line, Pid) {
		line = strings.Replace(line, Pid, r.pid, 1)
	}

	return line
}

// Scan expands and tokenizes line. A nil token sequence with a nil
// error means the line was blank or a comment and there is nothing
// to run.
func (r *reader) Scan(line string) ([]string, error) {
	if len(line) > MaxLineLength {
		return nil, ErrLineTooLong
	}

	line = strings.TrimSuffix(line, "\n")

	tokens := strings.Fields(r.Expand(line))

	if len(tokens) == 0 || strings.HasPrefix(tokens[0], "#") {
		return nil, nil
	}

	if len(tokens) > MaxArguments {
		return nil, ErrTooManyArguments
	}

	return tokens, nil
}
