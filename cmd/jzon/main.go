package main

import (
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/spf13/afero"
)

// env is what the commands share: where files live and where output goes.
type env struct {
	fs     afero.Fs
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	logger log.Logger
}

func newApp(e *env) *kingpin.Application {
	app := kingpin.New("jzon", "A tool for validating, formatting and inspecting JSON documents.")
	app.HelpFlag.Short('h')
	app.UsageWriter(e.stdout)
	app.ErrorWriter(e.stderr)

	logLevel := app.Flag("log.level", "Only log messages with the given severity or above.").
		Default("info").Enum("debug", "info", "warn", "error")
	app.PreAction(func(_ *kingpin.ParseContext) error {
		e.logger = newLogger(e.stderr, *logLevel)
		return nil
	})

	addValidateCommand(app, e)
	addFmtCommand(app, e)
	addStatsCommand(app, e)
	return app
}

func newLogger(w io.Writer, lvl string) log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC)

	var opt level.Option
	switch lvl {
	case "debug":
		opt = level.AllowDebug()
	case "warn":
		opt = level.AllowWarn()
	case "error":
		opt = level.AllowError()
	default:
		opt = level.AllowInfo()
	}
	return level.NewFilter(logger, opt)
}

func main() {
	e := &env{
		fs:     afero.NewOsFs(),
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
		logger: log.NewNopLogger(),
	}
	app := newApp(e)
	if _, err := app.Parse(os.Args[1:]); err != nil {
		level.Error(e.logger).Log("msg", "command failed", "err", err)
		os.Exit(1)
	}
}
