// Package schema mirrors the on-disk JSON shapes of beatmap set metadata
// (info.dat) and of the two beatmap file generations.
//
// # Shapes
//
//   - [Info]: the set metadata document.
//   - [NewBeatmapFile]: the current ("v3") beatmap layout with terse keys
//     (b, x, y, c, d, ...) and one list per record kind.
//   - [OldBeatmapFile]: the legacy ("v2") layout with underscore keys
//     (_time, _lineIndex, ...) and merged note/event lists.
//
// Struct fields keep the wire names; no semantic adjustment happens here.
// Renaming and defaulting is left to package beatmap.
//
// # Strict decoding
//
// Decoding is strict in the same way for every shape: a key without
// omitempty in its json tag is required at every nesting level and may not
// be null, values must have the declared JSON type, and enumeration codes
// must be declared members. Unknown keys are ignored. Optional keys that are
// absent decode to empty collections or nil pointers.
//
// # Detection
//
// Old files carry no format tag, so [Detect] tells the generations apart by
// shape alone: it tries the new layout first and falls back to the old one,
// returning a [BeatmapParseError] with both diagnostics when neither fits.
package schema
