// Package main provides the beatmap-inspect CLI.
//
// beatmap-inspect reads beatmap sets and single difficulty files in either
// layout and reports what it finds:
//
//	beatmap-inspect detect ExpertPlusStandard.dat
//	beatmap-inspect dump -format json HardStandard.dat
//	beatmap-inspect info Info.dat
//	beatmap-inspect check -jobs 8 ./MySong
//	beatmap-inspect -config inspect.yaml config
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)

	stop()
	os.Exit(code)
}
