// Package enum holds the fixed enumerations used by beatmap files.
//
// Every integer-coded enumeration is backed by a [Table] that maps wire codes
// to symbolic names and back. Decoding from JSON is strict: only integer
// literals naming a declared member are accepted.
//
//	c, err := enum.NoteColors.Parse("Blue")  // enum.NoteColorBlue
//	d, err := enum.Directions.FromCode(8)    // enum.DirectionAny
//	enum.EasingNone.String()                 // "None"
package enum
