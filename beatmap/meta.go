package beatmap

import (
	"maps"

	"beatmap-reader/enum"
	"beatmap-reader/schema"
)

// BeatmapSetMeta is the song and difficulty listing of a beatmap set.
type BeatmapSetMeta struct {
	Version                      string            `json:"version"`
	SongName                     string            `json:"song_name"`
	SongSubName                  string            `json:"song_subname"`
	SongAuthor                   string            `json:"song_author"`
	MapAuthor                    string            `json:"map_author"`
	BPM                          float64           `json:"bpm"`
	Shuffle                      float64           `json:"shuffle"`
	ShufflePeriod                float64           `json:"shuffle_period"`
	PreviewStart                 float64           `json:"preview_start"`
	PreviewDuration              float64           `json:"preview_duration"`
	SongFilename                 string            `json:"song_filename"`
	CoverImageFilename           string            `json:"cover_image_filename"`
	EnvironmentName              string            `json:"environment_name"`
	AllDirectionsEnvironmentName *string           `json:"all_directions_environment_name,omitempty"`
	SongOffset                   float64           `json:"song_offset"`
	CustomData                   schema.CustomData `json:"custom_data,omitempty"`
	DifficultySets               []DifficultySet   `json:"difficulty_sets"`
}

// DifficultySet groups the difficulties of one characteristic (game mode).
type DifficultySet struct {
	GameMode string        `json:"game_mode"`
	Beatmaps []BeatmapMeta `json:"beatmaps"`
}

type BeatmapMeta struct {
	Difficulty              enum.Difficulty   `json:"difficulty"`
	Rank                    int               `json:"rank"`
	Filename                string            `json:"filename"`
	NoteJumpSpeed           float64           `json:"note_jump_speed"`
	NoteJumpStartBeatOffset float64           `json:"note_jump_start_beat_offset"`
	CustomData              schema.CustomData `json:"custom_data,omitempty"`
}

// NewSetMeta converts a decoded info document.
func NewSetMeta(info *schema.Info) *BeatmapSetMeta {
	meta := &BeatmapSetMeta{
		Version:            info.Version,
		SongName:           info.SongName,
		SongSubName:        info.SongSubName,
		SongAuthor:         info.SongAuthorName,
		MapAuthor:          info.LevelAuthorName,
		BPM:                info.BeatsPerMinute,
		Shuffle:            info.Shuffle,
		ShufflePeriod:      info.ShufflePeriod,
		PreviewStart:       info.PreviewStartTime,
		PreviewDuration:    info.PreviewDuration,
		SongFilename:       info.SongFilename,
		CoverImageFilename: info.CoverImageFilename,
		EnvironmentName:    info.EnvironmentName,
		SongOffset:         info.SongTimeOffset,
		CustomData:         maps.Clone(info.CustomData),
		DifficultySets:     make([]DifficultySet, 0, len(info.DifficultyBeatmapSets)),
	}

	if info.AllDirectionsEnvironmentName != nil {
		name := *info.AllDirectionsEnvironmentName
		meta.AllDirectionsEnvironmentName = &name
	}

	for i := range info.DifficultyBeatmapSets {
		set := &info.DifficultyBeatmapSets[i]
		meta.DifficultySets = append(meta.DifficultySets, DifficultySet{
			GameMode: set.BeatmapCharacteristicName,
			Beatmaps: mapSlice(set.DifficultyBeatmaps, beatmapMeta),
		})
	}

	return meta
}

func beatmapMeta(b *schema.DifficultyBeatmap) BeatmapMeta {
	return BeatmapMeta{
		Difficulty:              b.Difficulty,
		Rank:                    int(b.DifficultyRank),
		Filename:                b.BeatmapFilename,
		NoteJumpSpeed:           b.NoteJumpMovementSpeed,
		NoteJumpStartBeatOffset: b.NoteJumpStartBeatOffset,
		CustomData:              maps.Clone(b.CustomData),
	}
}

// Difficulties returns the number of difficulties over all sets.
func (m *BeatmapSetMeta) Difficulties() int {
	n := 0
	for _, set := range m.DifficultySets {
		n += len(set.Beatmaps)
	}

	return n
}
