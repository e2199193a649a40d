package job

import (
	"fmt"
	"os"

	"smallsh/internal/command"
)

// files builds the child's three standard streams. An explicit
// output target is created or truncated write-only; an explicit
// input target must already exist. A background command with no
// explicit redirection for a direction is attached to the null
// device so it never touches the terminal. The returned error names
// the path that could not be opened.
func (j *job) files(c *command.T) ([]*os.File, error) {
	stdin, stdout := os.Stdin, os.Stdout

	var opened []*os.File

	fail := func(path string) ([]*os.File, error) {
		for _, f := range opened {
			f.Close()
		}

		return nil, fmt.Errorf("%s: No such file or directory", path)
	}

	switch {
	case c.In != "":
		f, err := os.Open(c.In)
		if err != nil {
			return fail(c.In)
		}

		opened = append(opened, f)
		stdin = f

	case c.Background:
		if f, err := os.Open(os.DevNull); err == nil {
			opened = append(opened, f)
			stdin = f
		}
	}

	switch {
	case c.Out != "":
		f, err := os.OpenFile(c.Out, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
		if err != nil {
			return fail(c.Out)
		}

		opened = append(opened, f)
		stdout = f

	case c.Background:
		if f, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0); err == nil {
			opened = append(opened, f)
			stdout = f
		}
	}

	return []*os.File{stdin, stdout, os.Stderr}, nil
}

// closeExtra closes redirection targets in the parent once the child
// has been spawned with its own duplicates.
func closeExtra(files []*os.File) {
	for _, f := range files {
		if f != os.Stdin && f != os.Stdout && f != os.Stderr {
			f.Close()
		}
	}
}
