package main

import (
	"fmt"

	"github.com/alecthomas/kingpin/v2"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"

	jzon "github.com/Zguy/Jzon"
)

// validateCommand parses every file and reports the first fault of each.
type validateCommand struct {
	e     *env
	files *[]string
	parse *parseFlags
}

func (cmd *validateCommand) run(_ *kingpin.ParseContext) error {
	parser := jzon.NewParser(cmd.parse.options()...)

	files := *cmd.files
	if len(files) == 0 {
		files = []string{stdinName}
	}

	failed := 0
	for _, name := range files {
		data, err := cmd.e.readFile(name)
		if err != nil {
			return err
		}
		if !parser.ParseBytes(data).IsValid() {
			failed++
			fmt.Fprintf(cmd.e.stderr, "%s: %s\n", name, parser.Err())
			continue
		}
		level.Debug(cmd.e.logger).Log("msg", "document is valid", "file", name)
	}

	if failed > 0 {
		return errors.Errorf("%d of %d documents are invalid", failed, len(files))
	}
	level.Info(cmd.e.logger).Log("msg", "all documents are valid", "count", len(files))
	return nil
}

func addValidateCommand(app *kingpin.Application, e *env) {
	cmd := &validateCommand{e: e}
	clause := app.Command("validate", "Check that files are well formed.").Action(cmd.run)
	cmd.files = clause.Arg("file", "The files to check, stdin if there are none.").Strings()
	cmd.parse = addParseFlags(clause)
}
