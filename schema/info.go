package schema

import (
	"beatmap-reader/enum"
	"beatmap-reader/internal/textenc"
)

// Info is the set metadata document (info.dat).
type Info struct {
	Version                      string                 `json:"_version"`
	SongName                     string                 `json:"_songName"`
	SongSubName                  string                 `json:"_songSubName"`
	SongAuthorName               string                 `json:"_songAuthorName"`
	LevelAuthorName              string                 `json:"_levelAuthorName"`
	BeatsPerMinute               float64                `json:"_beatsPerMinute"`
	Shuffle                      float64                `json:"_shuffle"`
	ShufflePeriod                float64                `json:"_shufflePeriod"`
	PreviewStartTime             float64                `json:"_previewStartTime"`
	PreviewDuration              float64                `json:"_previewDuration"`
	SongFilename                 string                 `json:"_songFilename"`
	CoverImageFilename           string                 `json:"_coverImageFilename"`
	EnvironmentName              string                 `json:"_environmentName"`
	AllDirectionsEnvironmentName *string                `json:"_allDirectionsEnvironmentName,omitempty"`
	SongTimeOffset               float64                `json:"_songTimeOffset"`
	CustomData                   CustomData             `json:"_customData,omitempty"`
	DifficultyBeatmapSets        []DifficultyBeatmapSet `json:"_difficultyBeatmapSets"`
}

type DifficultyBeatmapSet struct {
	BeatmapCharacteristicName string              `json:"_beatmapCharacteristicName"`
	DifficultyBeatmaps        []DifficultyBeatmap `json:"_difficultyBeatmaps"`
}

type DifficultyBeatmap struct {
	Difficulty              enum.Difficulty `json:"_difficulty"`
	DifficultyRank          int32           `json:"_difficultyRank"`
	BeatmapFilename         string          `json:"_beatmapFilename"`
	NoteJumpMovementSpeed   float64         `json:"_noteJumpMovementSpeed"`
	NoteJumpStartBeatOffset float64         `json:"_noteJumpStartBeatOffset"`
	CustomData              CustomData      `json:"_customData,omitempty"`
}

// DecodeInfo strictly decodes a set metadata document.
func DecodeInfo(data []byte) (*Info, error) {
	var info Info
	if err := decodeStrict(textenc.Clean(data), &info); err != nil {
		return nil, &InfoParseError{Err: err}
	}

	return &info, nil
}
