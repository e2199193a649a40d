// Package history persists the interactive line history between
// runs of the interpreter.
package history

import (
	"io"
	"os"
)

// Load feeds the saved history file to read, typically a line
// editor's ReadHistory. Missing files surface as errors; a first run
// has no history to load.
func Load(read func(r io.Reader) (int, error)) error {
	f, err := file(os.Open)
	if err != nil {
		return err
	}

	_, err = read(f)
	if err != nil {
		return err
	}

	return f.Close()
}

// Save replaces the history file with whatever write produces,
// typically a line editor's WriteHistory.
func Save(write func(w io.Writer) (int, error)) error {
	f, err := file(os.Create)
	if err != nil {
		return err
	}

	_, err = write(f)
	if err != nil {
		return err
	}

	return f.Close()
}
