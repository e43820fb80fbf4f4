package main

import (
	"github.com/alecthomas/kingpin/v2"

	jzon "github.com/Zguy/Jzon"
)

// parseFlags are the parser switches every command accepts.
type parseFlags struct {
	scalarRoot   *bool
	unicode      *bool
	noComments   *bool
	noScientific *bool
}

func addParseFlags(cmd *kingpin.CmdClause) *parseFlags {
	return &parseFlags{
		scalarRoot:   cmd.Flag("scalar-root", "Accept a single value as the whole document.").Bool(),
		unicode:      cmd.Flag("unicode", `Decode \uXXXX escapes in strings.`).Bool(),
		noComments:   cmd.Flag("no-comments", "Treat comments as unknown tokens.").Bool(),
		noScientific: cmd.Flag("no-scientific", "Reject numbers with an exponent.").Bool(),
	}
}

func (f *parseFlags) options() []jzon.ParseOption {
	var opts []jzon.ParseOption
	if *f.scalarRoot {
		opts = append(opts, jzon.AllowScalarRoot())
	}
	if *f.unicode {
		opts = append(opts, jzon.UnicodeEscapes())
	}
	if *f.noComments {
		opts = append(opts, jzon.NoComments())
	}
	if *f.noScientific {
		opts = append(opts, jzon.NoScientific())
	}
	return opts
}
