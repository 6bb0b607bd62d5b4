package diagnostic

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Diagnostics holds all diagnostic information from a set check.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity DiagnosticSeverity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// File is the set-relative file the diagnostic is about (if any).
	File string
	// Difficulty identifies the difficulty as "Characteristic/Difficulty" (if any).
	Difficulty string
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticInfo DiagnosticSeverity = iota
	DiagnosticWarning
	DiagnosticError
)

// String returns a human-readable severity name.
func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticInfo:
		return "info"
	case DiagnosticWarning:
		return "warning"
	case DiagnosticError:
		return "error"
	default:
		return "unknown"
	}
}

// ParseSeverity is the inverse of DiagnosticSeverity.String.
func ParseSeverity(s string) (DiagnosticSeverity, error) {
	switch strings.ToLower(s) {
	case "info":
		return DiagnosticInfo, nil
	case "warning", "warn":
		return DiagnosticWarning, nil
	case "error":
		return DiagnosticError, nil
	default:
		return 0, fmt.Errorf("unknown severity %q", s)
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, file, difficulty string) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity:   DiagnosticError,
		Code:       code,
		Message:    message,
		File:       file,
		Difficulty: difficulty,
	})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, file, difficulty string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity:   DiagnosticWarning,
		Code:       code,
		Message:    message,
		File:       file,
		Difficulty: difficulty,
	})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, file, difficulty string) {
	d.Infos = append(d.Infos, Diagnostic{
		Severity:   DiagnosticInfo,
		Code:       code,
		Message:    message,
		File:       file,
		Difficulty: difficulty,
	})
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// Len returns the number of diagnostics of every severity.
func (d *Diagnostics) Len() int {
	return len(d.Errors) + len(d.Warnings) + len(d.Infos)
}

// AtLeast returns the diagnostics of severity min or higher, most severe first.
func (d *Diagnostics) AtLeast(minSeverity DiagnosticSeverity) []Diagnostic {
	var out []Diagnostic
	for _, group := range [][]Diagnostic{d.Errors, d.Warnings, d.Infos} {
		for _, diag := range group {
			if diag.Severity >= minSeverity {
				out = append(out, diag)
			}
		}
	}

	return out
}

// Codes returns the distinct codes present, sorted.
func (d *Diagnostics) Codes() []string {
	var codes []string
	for _, diag := range d.AtLeast(DiagnosticInfo) {
		codes = append(codes, diag.Code)
	}

	slices.Sort(codes)

	return slices.Compact(codes)
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Difficulty != "" {
		prefix = append(prefix, "["+d.Difficulty+"]")
	}

	if d.File != "" {
		prefix = append(prefix, d.File)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
