// Package match provides name normalization, Levenshtein distance and
// candidate ranking used to suggest the intended name for a mistyped key,
// command or diagnostic code.
//
// Key functions:
//   - NormalizeIdent: folds names for fuzzy matching
//   - Levenshtein: computes edit distance between strings
//   - Rank: ranks known names against an unknown one
//   - Closest: picks an unambiguous suggestion
package match
