// Package check inspects a loaded beatmap set for consistency problems.
package check

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"slices"

	"beatmap-reader/beatmap"
	"beatmap-reader/internal/diagnostic"
	"beatmap-reader/internal/match"
)

// Diagnostic codes.
const (
	CodeInfoUnreadable      = "info-unreadable"
	CodeDifficultyFailed    = "difficulty-failed"
	CodeRankMismatch        = "rank-mismatch"
	CodeDuplicate           = "duplicate-difficulty"
	CodeEmptyCharacteristic = "empty-characteristic"
	CodeFormat              = "format"
	CodeEventCounts         = "event-counts"
)

// rule inspects a set and records diagnostics.
type rule struct {
	code  string
	check func(set *beatmap.Set, d *diagnostic.Diagnostics)
}

var rules = []rule{
	{CodeDifficultyFailed, checkLoadFailures},
	{CodeRankMismatch, checkRanks},
	{CodeDuplicate, checkDuplicates},
	{CodeEmptyCharacteristic, checkEmptySets},
	{CodeFormat, reportFormats},
	{CodeEventCounts, reportEventCounts},
}

// ErrUnknownCode is returned by ValidateCodes.
var ErrUnknownCode = errors.New("unknown diagnostic code")

// Codes lists the codes of every rule that can be disabled.
func Codes() []string {
	out := make([]string, 0, len(rules))
	for _, r := range rules {
		out = append(out, r.code)
	}

	return out
}

// ValidateCodes rejects codes no rule reports, suggesting the nearest
// known one.
func ValidateCodes(codes []string) error {
	known := Codes()

	var errs []error

	for _, code := range codes {
		if slices.Contains(known, code) {
			continue
		}

		if hint, ok := match.Closest(code, known, match.DefaultThreshold); ok {
			errs = append(errs, fmt.Errorf("%w %q (did you mean %q?)", ErrUnknownCode, code, hint))
			continue
		}

		errs = append(errs, fmt.Errorf("%w %q", ErrUnknownCode, code))
	}

	return errors.Join(errs...)
}

// Options configures Dir and Set.
type Options struct {
	LoadOptions []beatmap.LoadOption
	// Disabled codes are neither checked nor reported.
	Disabled []string
}

// Dir loads the set in dir and checks it. A set whose metadata cannot be
// loaded yields a single error diagnostic and a nil set.
func Dir(ctx context.Context, dir string, opts Options) (*beatmap.Set, diagnostic.Diagnostics) {
	var diags diagnostic.Diagnostics

	set, err := beatmap.LoadSet(ctx, dir, opts.LoadOptions...)
	if err != nil {
		diags.AddError(CodeInfoUnreadable, err.Error(), "", "")

		return nil, diags
	}

	diags.Merge(Set(set, opts))

	return set, diags
}

// Set runs every enabled rule over set.
func Set(set *beatmap.Set, opts Options) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics
	for _, r := range rules {
		if slices.Contains(opts.Disabled, r.code) {
			continue
		}

		r.check(set, &diags)
	}

	return diags
}

func label(d *beatmap.LoadedDifficulty) string {
	return d.Characteristic + "/" + d.Meta.Difficulty.String()
}

func relPath(set *beatmap.Set, d *beatmap.LoadedDifficulty) string {
	if rel, err := filepath.Rel(set.Dir, d.Path); err == nil {
		return rel
	}

	return d.Path
}

func checkLoadFailures(set *beatmap.Set, diags *diagnostic.Diagnostics) {
	for i := range set.Difficulties {
		d := &set.Difficulties[i]
		if d.Err != nil {
			diags.AddError(CodeDifficultyFailed, d.Err.Error(), relPath(set, d), label(d))
		}
	}
}

func checkRanks(set *beatmap.Set, diags *diagnostic.Diagnostics) {
	for i := range set.Difficulties {
		d := &set.Difficulties[i]

		want := d.Meta.Difficulty.Rank()
		if d.Meta.Rank != want {
			diags.AddWarning(CodeRankMismatch,
				fmt.Sprintf("difficulty rank is %d, %s is ranked %d", d.Meta.Rank, d.Meta.Difficulty, want),
				relPath(set, d), label(d))
		}
	}
}

func checkDuplicates(set *beatmap.Set, diags *diagnostic.Diagnostics) {
	seen := make(map[string]bool, len(set.Difficulties))
	for i := range set.Difficulties {
		d := &set.Difficulties[i]

		key := label(d)
		if seen[key] {
			diags.AddWarning(CodeDuplicate, "difficulty is listed more than once", relPath(set, d), key)
			continue
		}

		seen[key] = true
	}
}

func checkEmptySets(set *beatmap.Set, diags *diagnostic.Diagnostics) {
	for _, ds := range set.Meta.DifficultySets {
		if len(ds.Beatmaps) == 0 {
			diags.AddWarning(CodeEmptyCharacteristic,
				fmt.Sprintf("characteristic %s lists no difficulties", ds.GameMode), "", ds.GameMode)
		}
	}
}

func reportFormats(set *beatmap.Set, diags *diagnostic.Diagnostics) {
	for i := range set.Difficulties {
		d := &set.Difficulties[i]
		if d.Err == nil {
			diags.AddInfo(CodeFormat,
				fmt.Sprintf("%s layout, version %s", d.Format, d.Beatmap.Version),
				relPath(set, d), label(d))
		}
	}
}

func reportEventCounts(set *beatmap.Set, diags *diagnostic.Diagnostics) {
	for i := range set.Difficulties {
		d := &set.Difficulties[i]
		if d.Err != nil {
			continue
		}

		counts := beatmap.CountByKind(d.Beatmap.Events)
		diags.AddInfo(CodeEventCounts,
			fmt.Sprintf("%d events, %d notes, %d bombs, %d obstacles",
				len(d.Beatmap.Events),
				counts[beatmap.EventKindNote],
				counts[beatmap.EventKindBomb],
				counts[beatmap.EventKindObstacle]),
			relPath(set, d), label(d))
	}
}
