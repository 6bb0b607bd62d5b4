package schema

import (
	"errors"
	"fmt"
)

var (
	ErrInfoParsing    = errors.New("failed to parse info.dat file")
	ErrBeatmapParsing = errors.New("failed to parse a beatmap file")
)

// FieldError reports a required key that is absent or null.
type FieldError struct {
	// Path locates the key, e.g. "colorNotes[2].d".
	Path   string
	Reason string

	// Suggestion is an undeclared key of the same object that is probably
	// a misspelling of the missing one.
	Suggestion string
}

func (e *FieldError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("%s: %s (did you mean %q?)", e.Path, e.Reason, e.Suggestion)
	}

	return fmt.Sprintf("%s: %s", e.Path, e.Reason)
}

// InfoParseError wraps a failure to decode the set metadata document.
type InfoParseError struct {
	Err error
}

func (e *InfoParseError) Error() string {
	return fmt.Sprintf("%v: %v", ErrInfoParsing, e.Err)
}

func (e *InfoParseError) Unwrap() []error {
	return []error{ErrInfoParsing, e.Err}
}

// BeatmapParseError is returned when a document matches neither beatmap
// layout. It carries the diagnostic of each attempt.
type BeatmapParseError struct {
	AsNew error
	AsOld error
}

func (e *BeatmapParseError) Error() string {
	return fmt.Sprintf("%v (new format: %v, old format: %v)", ErrBeatmapParsing, e.AsNew, e.AsOld)
}

func (e *BeatmapParseError) Unwrap() []error {
	return []error{ErrBeatmapParsing, e.AsNew, e.AsOld}
}
