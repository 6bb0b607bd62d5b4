package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"beatmap-reader/beatmap"
	"beatmap-reader/internal/check"
	"beatmap-reader/internal/config"
	"beatmap-reader/internal/diagnostic"
	"beatmap-reader/internal/render"
	"beatmap-reader/schema"
)

func runDetect(_ context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("detect", flag.ContinueOnError)
	if err := parseFlags(fs, args, 1); err != nil {
		return err
	}

	path := fs.Arg(0)

	data, err := os.ReadFile(path)
	if err != nil {
		return &beatmap.ReadError{Path: path, Err: err}
	}

	file, err := schema.Detect(data)
	if err != nil {
		var parseErr *schema.BeatmapParseError
		if !errors.As(err, &parseErr) {
			return err
		}

		fmt.Fprintf(a.stdout, "%s: matches neither layout\n  new: %v\n  old: %v\n", path, parseErr.AsNew, parseErr.AsOld)

		return errFailed
	}

	a.logger.Debug("detected layout", "path", path, "format", file.Format())
	fmt.Fprintf(a.stdout, "%s: %s\n", path, file.Format())

	return nil
}

func formatFlag(fs *flag.FlagSet, a *app) *string {
	return fs.String("format", a.cfg.Dump.Format, "output format: yaml, json or spew")
}

func runDump(_ context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("dump", flag.ContinueOnError)
	formatName := formatFlag(fs, a)
	counts := fs.Bool("counts", false, "print event counts per kind only")

	if err := parseFlags(fs, args, 1); err != nil {
		return err
	}

	format, err := render.ParseFormat(*formatName)
	if err != nil {
		return &usageError{err: err}
	}

	bm, err := beatmap.ReadBeatmapFile(fs.Arg(0))
	if err != nil {
		return err
	}

	if *counts {
		return render.Counts(a.stdout, bm)
	}

	return render.Beatmap(a.stdout, bm, format)
}

func runInfo(_ context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("info", flag.ContinueOnError)
	formatName := formatFlag(fs, a)

	if err := parseFlags(fs, args, 1); err != nil {
		return err
	}

	format, err := render.ParseFormat(*formatName)
	if err != nil {
		return &usageError{err: err}
	}

	meta, err := beatmap.ReadSetMetaFile(fs.Arg(0))
	if err != nil {
		return err
	}

	return render.Value(a.stdout, meta, format)
}

func runCheck(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	jobs := fs.Int("jobs", a.cfg.Load.Concurrency, "difficulty files decoded at once")
	failOn := fs.String("fail-on", a.cfg.Check.FailOn, "lowest severity that fails the check: info, warning or error")
	quiet := fs.Bool("quiet", false, "hide info diagnostics")

	if err := parseFlags(fs, args, 1); err != nil {
		return err
	}

	if *jobs < 1 {
		return usagef("-jobs must be at least 1")
	}

	threshold, err := diagnostic.ParseSeverity(*failOn)
	if err != nil {
		return &usageError{err: err}
	}

	if err := check.ValidateCodes(a.cfg.Check.Disabled); err != nil {
		return &usageError{err: err}
	}

	_, diags := check.Dir(ctx, fs.Arg(0), check.Options{
		LoadOptions: []beatmap.LoadOption{
			beatmap.WithLogger(a.logger),
			beatmap.WithConcurrency(*jobs),
		},
		Disabled: a.cfg.Check.Disabled,
	})

	shown := diagnostic.DiagnosticInfo
	if *quiet {
		shown = diagnostic.DiagnosticWarning
	}

	if err := render.Diagnostics(a.stdout, &diags, shown); err != nil {
		return err
	}

	if len(diags.AtLeast(threshold)) > 0 {
		return errFailed
	}

	return nil
}

func runConfig(_ context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	if err := parseFlags(fs, args, 0); err != nil {
		return err
	}

	data, err := config.Marshal(a.cfg)
	if err != nil {
		return err
	}

	_, err = a.stdout.Write(data)

	return err
}
