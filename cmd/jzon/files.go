package main

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// stdinName stands for standard input when no file is given.
const stdinName = "<stdin>"

func (e *env) readFile(name string) ([]byte, error) {
	if name == stdinName {
		data, err := io.ReadAll(e.stdin)
		return data, errors.Wrap(err, "failed to read stdin")
	}
	data, err := afero.ReadFile(e.fs, name)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", name)
	}
	return data, nil
}

// writeFile replaces the content of name keeping its permissions.
func (e *env) writeFile(name string, data []byte) error {
	perm := os.FileMode(0o644)
	if fi, err := e.fs.Stat(name); err == nil {
		perm = fi.Mode().Perm()
	}
	if err := afero.WriteFile(e.fs, name, data, perm); err != nil {
		return errors.Wrapf(err, "failed to write %s", name)
	}
	return nil
}
