package beatmap

import (
	"errors"
	"fmt"
	"os"

	"beatmap-reader/schema"
)

// ErrIO matches every *ReadError.
var ErrIO = errors.New("failed to read file")

// ReadError reports a file that could not be read.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("%s %s: %v", ErrIO, e.Path, e.Err)
}

func (e *ReadError) Unwrap() []error {
	return []error{ErrIO, e.Err}
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}

	return data, nil
}

// ReadSetMeta decodes an info.dat document. Failures match schema.ErrInfoParsing.
func ReadSetMeta(data []byte) (*BeatmapSetMeta, error) {
	info, err := schema.DecodeInfo(data)
	if err != nil {
		return nil, err
	}

	return NewSetMeta(info), nil
}

func ReadSetMetaString(s string) (*BeatmapSetMeta, error) {
	return ReadSetMeta([]byte(s))
}

// ReadSetMetaFile reads and decodes an info.dat file.
func ReadSetMetaFile(path string) (*BeatmapSetMeta, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	return ReadSetMeta(data)
}

// ReadBeatmap detects the layout of a beatmap document and normalizes it.
// Failures are *schema.BeatmapParseError carrying both layout diagnostics.
func ReadBeatmap(data []byte) (*Beatmap, error) {
	file, err := schema.Detect(data)
	if err != nil {
		return nil, err
	}

	return Normalize(file), nil
}

func ReadBeatmapString(s string) (*Beatmap, error) {
	return ReadBeatmap([]byte(s))
}

// ReadBeatmapFile reads, detects and normalizes a beatmap file.
func ReadBeatmapFile(path string) (*Beatmap, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	return ReadBeatmap(data)
}
