package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"

	"beatmap-reader/internal/config"
	"beatmap-reader/internal/logger"
	"beatmap-reader/internal/match"
)

const (
	exitOK      = 0
	exitFailed  = 1
	exitUsage   = 2
	programName = "beatmap-inspect"
)

// errFailed marks a command that ran but found problems.
var errFailed = errors.New("problems found")

// app carries what every command needs.
type app struct {
	cfg    *config.Config
	logger *slog.Logger
	stdout io.Writer
	stderr io.Writer
}

type command struct {
	name    string
	usage   string
	summary string
	run     func(ctx context.Context, a *app, args []string) error
}

var commands = []command{
	{"detect", "detect FILE", "print the layout a beatmap file matches", runDetect},
	{"dump", "dump [-format yaml|json|spew] [-counts] FILE", "print a normalized beatmap", runDump},
	{"info", "info [-format yaml|json|spew] FILE", "print set metadata from an info.dat file", runInfo},
	{"check", "check [-jobs N] [-fail-on SEVERITY] [-quiet] DIR", "load a whole set and report problems", runCheck},
	{"config", "config", "print the effective configuration", runConfig},
}

func lookup(name string) (command, bool) {
	for _, c := range commands {
		if c.name == name {
			return c, true
		}
	}

	return command{}, false
}

func commandNames() []string {
	names := make([]string, 0, len(commands))
	for _, c := range commands {
		names = append(names, c.name)
	}

	return names
}

func usage(w io.Writer, global *flag.FlagSet) {
	fmt.Fprintf(w, "usage: %s [flags] COMMAND [args]\n\ncommands:\n", programName)

	for _, c := range commands {
		fmt.Fprintf(w, "  %-52s %s\n", c.usage, c.summary)
	}

	fmt.Fprintf(w, "\nflags:\n")
	global.SetOutput(w)
	global.PrintDefaults()
}

// run executes one command line and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	global := flag.NewFlagSet(programName, flag.ContinueOnError)
	global.SetOutput(io.Discard)

	configPath := global.String("config", "", "YAML configuration file")
	logLevel := global.String("log-level", "", "log level: debug, info, warn, error")
	logFormat := global.String("log-format", "", "log format: text or json")

	if err := global.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			usage(stdout, global)

			return exitOK
		}

		fmt.Fprintf(stderr, "%s: %v\n", programName, err)
		usage(stderr, global)

		return exitUsage
	}

	if global.NArg() == 0 {
		usage(stderr, global)

		return exitUsage
	}

	cmd, ok := lookup(global.Arg(0))
	if !ok {
		fmt.Fprintf(stderr, "%s: unknown command %q\n", programName, global.Arg(0))

		if hint, ok := match.Closest(global.Arg(0), commandNames(), match.DefaultThreshold); ok {
			fmt.Fprintf(stderr, "did you mean %q?\n", hint)
		}

		usage(stderr, global)

		return exitUsage
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", programName, err)

		return exitUsage
	}

	global.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "log-level":
			cfg.Log.Level = *logLevel
		case "log-format":
			cfg.Log.Format = *logFormat
		}
	})

	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", programName, err)

		return exitUsage
	}

	a := &app{
		cfg: cfg,
		logger: logger.New(logger.Config{
			Writer: stderr,
			Format: cfg.Log.Format,
			Level:  logger.ParseLevel(cfg.Log.Level),
		}),
		stdout: stdout,
		stderr: stderr,
	}

	err = cmd.run(ctx, a, global.Args()[1:])

	var uerr *usageError

	switch {
	case err == nil:
		return exitOK
	case errors.As(err, &uerr):
		fmt.Fprintf(stderr, "%s %s: %v\nusage: %s %s\n", programName, cmd.name, uerr.err, programName, cmd.usage)

		return exitUsage
	case errors.Is(err, errFailed):
		return exitFailed
	default:
		fmt.Fprintf(stderr, "%s %s: %v\n", programName, cmd.name, err)

		return exitFailed
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}

	return config.LoadFile(path)
}

// usageError is a command line mistake rather than a failure of the command.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }

func (e *usageError) Unwrap() error { return e.err }

func usagef(format string, args ...any) error {
	return &usageError{err: fmt.Errorf(format, args...)}
}

// parseFlags parses command flags and requires exactly nargs positional arguments.
func parseFlags(fs *flag.FlagSet, args []string, nargs int) error {
	fs.SetOutput(io.Discard)

	if err := fs.Parse(args); err != nil {
		return &usageError{err: err}
	}

	if fs.NArg() != nargs {
		return usagef("expected %d argument(s), got %d", nargs, fs.NArg())
	}

	return nil
}
