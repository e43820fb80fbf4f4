package main

import (
	"fmt"

	"github.com/alecthomas/kingpin/v2"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/pkg/errors"

	jzon "github.com/Zguy/Jzon"
)

type docStats struct {
	size    uint64
	objects int
	arrays  int
	strings int
	numbers int
	bools   int
	nulls   int
	names   int

	depth  int
	widest int
}

func (s *docStats) collect(n jzon.Node, depth int) {
	if depth > s.depth {
		s.depth = depth
	}
	switch n.Type() {
	case jzon.TypeObject:
		s.objects++
	case jzon.TypeArray:
		s.arrays++
	case jzon.TypeString:
		s.strings++
	case jzon.TypeNumber:
		s.numbers++
	case jzon.TypeBool:
		s.bools++
	case jzon.TypeNull:
		s.nulls++
	}
	if !n.IsContainer() {
		return
	}

	if n.Count() > s.widest {
		s.widest = n.Count()
	}
	if n.IsObject() {
		s.names += n.Count()
	}
	for _, child := range n.All() {
		s.collect(child, depth+1)
	}
}

// statsCommand prints what a document is made of.
type statsCommand struct {
	e     *env
	files *[]string
	parse *parseFlags
}

func (cmd *statsCommand) run(_ *kingpin.ParseContext) error {
	files := *cmd.files
	if len(files) == 0 {
		files = []string{stdinName}
	}
	for _, name := range files {
		if err := cmd.printStats(name); err != nil {
			return err
		}
	}
	return nil
}

func (cmd *statsCommand) printStats(name string) error {
	data, err := cmd.e.readFile(name)
	if err != nil {
		return err
	}
	node, err := jzon.ParseBytes(data, cmd.parse.options()...)
	if err != nil {
		return errors.Wrapf(err, "failed to parse %s", name)
	}

	s := &docStats{size: uint64(len(data))}
	s.collect(node, 0)

	out := cmd.e.stdout
	bold := color.New(color.Bold)
	bold.Fprintf(out, "%s:\n", name)
	fmt.Fprintf(out, "\tsize: %v, depth: %d, widest container: %d\n", humanize.Bytes(s.size), s.depth, s.widest)
	fmt.Fprintf(out, "\tobjects: %d, arrays: %d, named members: %d\n", s.objects, s.arrays, s.names)
	fmt.Fprintf(out, "\tstrings: %d, numbers: %d, bools: %d, nulls: %d\n", s.strings, s.numbers, s.bools, s.nulls)
	return nil
}

func addStatsCommand(app *kingpin.Application, e *env) {
	cmd := &statsCommand{e: e}
	clause := app.Command("stats", "Print stats for each document.").Action(cmd.run)
	cmd.files = clause.Arg("file", "The files to inspect, stdin if there are none.").Strings()
	cmd.parse = addParseFlags(clause)
}
