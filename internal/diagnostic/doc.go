// Package diagnostic provides structured errors, warnings and infos
// collected while checking a beatmap set.
//
// Key capabilities:
//   - Severity-bucketed collection with stable codes
//   - File and difficulty attribution
//   - Merging results from independent checks
package diagnostic
