package main

import (
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/go-kit/log/level"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"

	jzon "github.com/Zguy/Jzon"
)

// fmtCommand rewrites a document with a chosen format.
type fmtCommand struct {
	e *env

	file      *string
	write     *bool
	compact   *bool
	tabs      *bool
	indent    *uint
	noSpacing *bool
	config    *string
	color     *string
	parse     *parseFlags
}

func (cmd *fmtCommand) run(_ *kingpin.ParseContext) error {
	name := *cmd.file
	if name == "" {
		name = stdinName
	}
	if *cmd.write && name == stdinName {
		return errors.New("can't write the result back to stdin")
	}

	data, err := cmd.e.readFile(name)
	if err != nil {
		return err
	}
	node, err := jzon.ParseBytes(data, cmd.parse.options()...)
	if err != nil {
		return errors.Wrapf(err, "failed to parse %s", name)
	}

	format, err := cmd.format()
	if err != nil {
		return err
	}
	var opts []jzon.WriteOption
	if cmd.colored() {
		opts = append(opts, jzon.WithColors(jzon.NewColors()))
	}
	out := jzon.NewWriter(format, opts...).Append(make([]byte, 0, len(data)), node)
	out = append(out, '\n')

	if *cmd.write {
		level.Debug(cmd.e.logger).Log("msg", "rewriting file", "file", name, "bytes", len(out))
		return cmd.e.writeFile(name, out)
	}
	_, err = cmd.e.stdout.Write(out)
	return errors.Wrap(err, "failed to write output")
}

// format applies the flags on top of the config file, or the standard
// format when there is none.
func (cmd *fmtCommand) format() (jzon.Format, error) {
	format := jzon.StandardFormat
	if *cmd.config != "" {
		f, err := loadFormat(cmd.e.fs, *cmd.config)
		if err != nil {
			return jzon.Format{}, err
		}
		format = f
	}
	if *cmd.compact {
		format = jzon.CompactFormat
	}
	if *cmd.tabs {
		format.UseTabs = true
	}
	if *cmd.indent > 0 {
		format.IndentSize = *cmd.indent
	}
	if *cmd.noSpacing {
		format.Spacing = false
	}
	return format, nil
}

func (cmd *fmtCommand) colored() bool {
	if *cmd.write {
		return false
	}
	switch *cmd.color {
	case "always":
		return true
	case "never":
		return false
	}
	f, ok := cmd.e.stdout.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func addFmtCommand(app *kingpin.Application, e *env) {
	cmd := &fmtCommand{e: e}
	clause := app.Command("fmt", "Reformat a document.").Action(cmd.run)
	cmd.file = clause.Arg("file", "The file to format, stdin if not given.").String()
	cmd.write = clause.Flag("write", "Write the result back to the file.").Short('w').Bool()
	cmd.compact = clause.Flag("compact", "Drop all optional whitespace.").Bool()
	cmd.tabs = clause.Flag("tabs", "Indent with tabs.").Bool()
	cmd.indent = clause.Flag("indent", "Indentation characters per level.").Default("0").Uint()
	cmd.noSpacing = clause.Flag("no-spacing", "No space after name separators.").Bool()
	cmd.config = clause.Flag("config", "YAML file with the format to use.").String()
	cmd.color = clause.Flag("color", "Paint the output.").Default("auto").Enum("auto", "always", "never")
	cmd.parse = addParseFlags(clause)
}
