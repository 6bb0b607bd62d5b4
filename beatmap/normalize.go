package beatmap

import (
	"fmt"
	"maps"

	"beatmap-reader/schema"
)

// category is one record list of a file layout. Categories are emitted in
// table order.
type category[F any] struct {
	name    string
	collect func(f F, dst []Event) []Event
}

var newCategories = []category[*schema.NewBeatmapFile]{
	{"bpmEvents", func(f *schema.NewBeatmapFile, dst []Event) []Event {
		return convertAll(dst, f.BPMEvents, bpmEvent)
	}},
	{"rotationEvents", func(f *schema.NewBeatmapFile, dst []Event) []Event {
		return convertAll(dst, f.RotationEvents, rotationEvent)
	}},
	{"colorNotes", func(f *schema.NewBeatmapFile, dst []Event) []Event {
		return convertAll(dst, f.ColorNotes, colorNote)
	}},
	{"bombNotes", func(f *schema.NewBeatmapFile, dst []Event) []Event {
		return convertAll(dst, f.BombNotes, bombNote)
	}},
	{"sliders", func(f *schema.NewBeatmapFile, dst []Event) []Event {
		return convertAll(dst, f.Sliders, slider)
	}},
	{"obstacles", func(f *schema.NewBeatmapFile, dst []Event) []Event {
		return convertAll(dst, f.Obstacles, obstacle)
	}},
	{"burstSliders", func(f *schema.NewBeatmapFile, dst []Event) []Event {
		return convertAll(dst, f.BurstSliders, burstSlider)
	}},
	{"basicBeatmapEvents", func(f *schema.NewBeatmapFile, dst []Event) []Event {
		return convertAll(dst, f.BasicBeatmapEvents, basicEvent)
	}},
	{"colorBoostBeatmapEvents", func(f *schema.NewBeatmapFile, dst []Event) []Event {
		return convertAll(dst, f.ColorBoostBeatmapEvents, colorBoost)
	}},
	{"lightColorEventBoxGroups", func(f *schema.NewBeatmapFile, dst []Event) []Event {
		return convertAll(dst, f.LightColorEventBoxGroups, convertBoxGroup(colorLane))
	}},
	{"lightRotationEventBoxGroups", func(f *schema.NewBeatmapFile, dst []Event) []Event {
		return convertAll(dst, f.LightRotationEventBoxGroups, convertBoxGroup(rotationLane))
	}},
	{"lightTranslationEventBoxGroups", func(f *schema.NewBeatmapFile, dst []Event) []Event {
		return convertAll(dst, f.LightTranslationEventBoxGroups, convertBoxGroup(translationLane))
	}},
}

var oldCategories = []category[*schema.OldBeatmapFile]{
	{"_notes", func(f *schema.OldBeatmapFile, dst []Event) []Event {
		return convertAll(dst, f.Notes, oldNote)
	}},
	{"_sliders", func(f *schema.OldBeatmapFile, dst []Event) []Event {
		return convertAll(dst, f.Sliders, oldSlider)
	}},
	{"_obstacles", func(f *schema.OldBeatmapFile, dst []Event) []Event {
		return convertAll(dst, f.Obstacles, oldObstacle)
	}},
	{"_events", func(f *schema.OldBeatmapFile, dst []Event) []Event {
		return convertAll(dst, f.Events, oldEvent)
	}},
}

// CategoryNames lists the record lists of a layout in the order their
// events appear in Beatmap.Events.
func CategoryNames(format schema.Format) []string {
	switch format {
	case schema.FormatNew:
		return categoryNames(newCategories)
	case schema.FormatOld:
		return categoryNames(oldCategories)
	default:
		return nil
	}
}

func categoryNames[F any](table []category[F]) []string {
	names := make([]string, 0, len(table))
	for _, c := range table {
		names = append(names, c.name)
	}

	return names
}

func collect[F any](table []category[F], f F) []Event {
	events := make([]Event, 0)
	for _, c := range table {
		events = c.collect(f, events)
	}

	return events
}

// Normalize converts a decoded beatmap file of either layout. Files
// produced by schema.Detect, schema.DecodeNew or schema.DecodeOld always
// convert. Normalize panics on hand-built files holding codes the decoders
// reject, such as an undeclared box filter or obstacle kind.
func Normalize(file schema.BeatmapFile) *Beatmap {
	switch f := file.(type) {
	case *schema.NewBeatmapFile:
		return normalizeNew(f)
	case *schema.OldBeatmapFile:
		return normalizeOld(f)
	default:
		panic(fmt.Sprintf("beatmap: unsupported beatmap file %T", file))
	}
}

func normalizeNew(f *schema.NewBeatmapFile) *Beatmap {
	keywords := maps.Clone(f.BasicEventTypesWithKeywords)
	if keywords == nil {
		keywords = map[string]any{}
	}

	return &Beatmap{
		Version:                           f.Version,
		Events:                            collect(newCategories, f),
		Waypoints:                         append([]any{}, f.Waypoints...),
		BasicEventTypesWithKeywords:       keywords,
		UseNormalEventsAsCompatibleEvents: f.UseNormalEventsAsCompatibleEvents,
		CustomData:                        maps.Clone(f.CustomData),
	}
}

func normalizeOld(f *schema.OldBeatmapFile) *Beatmap {
	return &Beatmap{
		Version:                           f.Version,
		Events:                            collect(oldCategories, f),
		Waypoints:                         append([]any{}, f.Waypoints...),
		BasicEventTypesWithKeywords:       map[string]any{},
		UseNormalEventsAsCompatibleEvents: true,
		CustomData:                        maps.Clone(f.CustomData),
	}
}

// convertAll appends the converted records of src to dst. A converter
// returning nil drops the record.
func convertAll[S any](dst []Event, src []S, conv func(*S) Event) []Event {
	for i := range src {
		if e := conv(&src[i]); e != nil {
			dst = append(dst, e)
		}
	}

	return dst
}

func mapSlice[S, T any](src []S, conv func(*S) T) []T {
	out := make([]T, 0, len(src))
	for i := range src {
		out = append(out, conv(&src[i]))
	}

	return out
}
