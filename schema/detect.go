package schema

import "beatmap-reader/internal/textenc"

// Format identifies a beatmap file generation.
type Format int

const (
	FormatUnknown Format = iota
	FormatNew
	FormatOld
)

// String returns a short format name.
func (f Format) String() string {
	switch f {
	case FormatNew:
		return "new"
	case FormatOld:
		return "old"
	default:
		return "unknown"
	}
}

// BeatmapFile is a decoded beatmap in one of the two layouts:
// *NewBeatmapFile or *OldBeatmapFile.
type BeatmapFile interface {
	Format() Format
	isBeatmapFile()
}

type attempt struct {
	format Format
	decode func([]byte) (BeatmapFile, error)
}

// attempts is ordered by priority; a document matching both layouts is new.
var attempts = []attempt{
	{format: FormatNew, decode: decodeAs[NewBeatmapFile, *NewBeatmapFile]},
	{format: FormatOld, decode: decodeAs[OldBeatmapFile, *OldBeatmapFile]},
}

func decodeAs[T any, PT interface {
	*T
	BeatmapFile
}](data []byte) (BeatmapFile, error) {
	var file T
	if err := decodeStrict(data, &file); err != nil {
		return nil, err
	}

	return PT(&file), nil
}

// Detect decodes data as whichever beatmap layout it matches exactly.
// The new layout is tried first and wins when both match. When neither
// matches, the returned *BeatmapParseError holds both diagnostics.
func Detect(data []byte) (BeatmapFile, error) {
	data = textenc.Clean(data)

	failures := make(map[Format]error, len(attempts))
	for _, a := range attempts {
		file, err := a.decode(data)
		if err == nil {
			return file, nil
		}

		failures[a.format] = err
	}

	return nil, &BeatmapParseError{AsNew: failures[FormatNew], AsOld: failures[FormatOld]}
}

// DecodeNew strictly decodes data as the new layout only.
func DecodeNew(data []byte) (*NewBeatmapFile, error) {
	var file NewBeatmapFile
	if err := decodeStrict(textenc.Clean(data), &file); err != nil {
		return nil, err
	}

	return &file, nil
}

// DecodeOld strictly decodes data as the old layout only.
func DecodeOld(data []byte) (*OldBeatmapFile, error) {
	var file OldBeatmapFile
	if err := decodeStrict(textenc.Clean(data), &file); err != nil {
		return nil, err
	}

	return &file, nil
}
