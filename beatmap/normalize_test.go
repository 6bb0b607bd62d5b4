package beatmap_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beatmap-reader/beatmap"
	"beatmap-reader/enum"
	"beatmap-reader/schema"
)

func kinds(events []beatmap.Event) []beatmap.EventKind {
	out := make([]beatmap.EventKind, 0, len(events))
	for _, e := range events {
		out = append(out, e.Kind())
	}

	return out
}

func TestNormalize_OldLayout(t *testing.T) {
	t.Parallel()

	bm, err := beatmap.ReadBeatmapFile("testdata/HardStandard.dat")
	require.NoError(t, err)

	assert.Equal(t, "2.6.0", bm.Version)
	assert.True(t, bm.UseNormalEventsAsCompatibleEvents)
	assert.NotNil(t, bm.BasicEventTypesWithKeywords)
	assert.Empty(t, bm.BasicEventTypesWithKeywords)
	assert.Empty(t, bm.Waypoints)
	assert.Equal(t, schema.CustomData{"_time": 14.0}, bm.CustomData)

	assert.Equal(t, []beatmap.EventKind{
		beatmap.EventKindNote,
		beatmap.EventKindNote,
		beatmap.EventKindBomb,
		beatmap.EventKindSlider,
		beatmap.EventKindObstacle,
		beatmap.EventKindObstacle,
		beatmap.EventKindBasicEvent,
		beatmap.EventKindBasicEvent,
	}, kinds(bm.Events))

	assert.Equal(t, &beatmap.Note{
		Beat: 4, X: 1, Y: 0, Color: enum.NoteColorRed, Direction: enum.DirectionDown, AngleOffset: 0,
	}, bm.Events[0])
	assert.Equal(t, &beatmap.Note{
		Beat: 5, X: 2, Y: 1, Color: enum.NoteColorBlue, Direction: enum.DirectionUp,
	}, bm.Events[1])
	assert.Equal(t, &beatmap.Bomb{Beat: 6, X: 3, Y: 2}, bm.Events[2])

	assert.Equal(t, &beatmap.Slider{
		HeadBeat: 8, Color: enum.NoteColorBlue, HeadX: 2, HeadY: 0, HeadDirection: enum.DirectionDown, HeadBulge: 1,
		TailBeat: 9, TailX: 3, TailY: 1, TailDirection: enum.DirectionUp, TailBulge: 0.5,
		SpecialCurving: enum.SliderMidAnchorModeClockwise,
	}, bm.Events[3])

	assert.Equal(t, &beatmap.Obstacle{Beat: 10, X: 0, Y: 0, Duration: 2, Width: 1, Height: 5}, bm.Events[4])
	assert.Equal(t, &beatmap.Obstacle{Beat: 12, X: 0, Y: 2, Duration: 1, Width: 4, Height: 2}, bm.Events[5])

	plain, ok := bm.Events[6].(*beatmap.BasicEvent)
	require.True(t, ok)
	assert.Nil(t, plain.FloatValue)
	assert.Empty(t, plain.CustomData)

	tinted, ok := bm.Events[7].(*beatmap.BasicEvent)
	require.True(t, ok)
	assert.Equal(t, 4, tinted.Type)
	assert.Equal(t, 1, tinted.Value)
	require.NotNil(t, tinted.FloatValue)
	assert.InDelta(t, 0.75, *tinted.FloatValue, 0)
	assert.Equal(t, schema.CustomData{"_color": []any{1.0, 0.0, 0.0}}, tinted.CustomData)
}

func TestNormalize_NewLayout(t *testing.T) {
	t.Parallel()

	bm, err := beatmap.ReadBeatmapFile("testdata/ExpertPlusStandard.dat")
	require.NoError(t, err)

	assert.Equal(t, "3.2.0", bm.Version)
	assert.True(t, bm.UseNormalEventsAsCompatibleEvents)
	assert.Equal(t, map[string]any{"d": []any{}}, bm.BasicEventTypesWithKeywords)
	assert.Len(t, bm.Waypoints, 1)
	assert.Equal(t, schema.CustomData{"time": 20.0}, bm.CustomData)

	assert.Equal(t, []beatmap.EventKind{
		beatmap.EventKindBPM,
		beatmap.EventKindRotation,
		beatmap.EventKindNote,
		beatmap.EventKindNote,
		beatmap.EventKindBomb,
		beatmap.EventKindSlider,
		beatmap.EventKindObstacle,
		beatmap.EventKindBurstSlider,
		beatmap.EventKindBasicEvent,
		beatmap.EventKindBasicEvent,
		beatmap.EventKindColorBoost,
		beatmap.EventKindLightEventBox,
		beatmap.EventKindLightEventBox,
		beatmap.EventKindLightEventBox,
	}, kinds(bm.Events))

	assert.Equal(t, &beatmap.BPMEvent{Beat: 0, Value: 140}, bm.Events[0])
	assert.Equal(t, &beatmap.Rotation{Beat: 16, IsLate: true, Value: 15}, bm.Events[1])
	assert.Equal(t, &beatmap.Note{
		Beat: 4, X: 2, Y: 0, Color: enum.NoteColorBlue, Direction: enum.DirectionDown, AngleOffset: 15,
	}, bm.Events[3])
	assert.Equal(t, &beatmap.BurstSlider{
		HeadBeat: 12, Color: enum.NoteColorBlue, HeadX: 2, HeadY: 0, HeadDirection: enum.DirectionDown,
		TailBeat: 12.5, TailX: 3, TailY: 1, SegmentCount: 4, Squish: 0.5,
	}, bm.Events[7])

	basic, ok := bm.Events[8].(*beatmap.BasicEvent)
	require.True(t, ok)
	require.NotNil(t, basic.FloatValue)
	assert.InDelta(t, 1.0, *basic.FloatValue, 0)
	assert.Empty(t, basic.CustomData)

	assert.Equal(t, &beatmap.ColorBoost{Beat: 8, Enable: true}, bm.Events[10])
}

func TestNormalize_LightLanes(t *testing.T) {
	t.Parallel()

	bm, err := beatmap.ReadBeatmapFile("testdata/ExpertPlusStandard.dat")
	require.NoError(t, err)

	boxes := bm.EventsOf(beatmap.EventKindLightEventBox)
	require.Len(t, boxes, 3)

	t.Run("color", func(t *testing.T) {
		t.Parallel()

		box := boxes[0].(*beatmap.LightEventBox)
		assert.InDelta(t, 2.0, box.Beat, 0)
		assert.Equal(t, 0, box.Group)
		require.Len(t, box.Lanes, 1)

		lane := box.Lanes[0]
		assert.InDelta(t, 0.5, lane.Dist, 0, "color lane dist comes from r")
		assert.Equal(t, enum.DistributionKindWave, lane.BeatDistKind)
		assert.Equal(t, enum.DistributionKindStep, lane.DistKind)
		assert.False(t, lane.DistAffectsFirstEvent)
		require.NotNil(t, lane.DistEasing)
		assert.Equal(t, enum.EasingLinear, *lane.DistEasing)
		assert.Nil(t, lane.Axis)
		assert.Nil(t, lane.Reverse)
		assert.Equal(t, beatmap.SectionsFilter{Count: 2, Index: 1}, lane.Filter.Settings)

		events, ok := lane.Events.(beatmap.ColorEvents)
		require.True(t, ok)
		assert.Equal(t, beatmap.ColorEvents{
			{Beat: 0, Transition: enum.TransitionKindInstant, Color: enum.LightColorWhite, Brightness: 1, Frequency: 0},
			{Beat: 1, Transition: enum.TransitionKindTransition, Color: enum.LightColorRed, Brightness: 0.5, Frequency: 4},
		}, events)
	})

	t.Run("rotation", func(t *testing.T) {
		t.Parallel()

		box := boxes[1].(*beatmap.LightEventBox)
		lane := box.Lanes[0]
		assert.InDelta(t, 45.0, lane.Dist, 0, "rotation lane dist comes from s")
		assert.True(t, lane.DistAffectsFirstEvent)
		assert.Nil(t, lane.DistEasing)
		require.NotNil(t, lane.Axis)
		assert.Equal(t, enum.AxisY, *lane.Axis)
		require.NotNil(t, lane.Reverse)
		assert.False(t, *lane.Reverse)

		assert.Equal(t, beatmap.BoxFilter{
			Chunks:     1,
			Settings:   beatmap.StepAndOffsetFilter{Start: 0, Skip: 2},
			Reverse:    true,
			Ordering:   enum.BoxFilterOrderingRandom,
			RandomSeed: 7,
			Limit:      0.5,
			LimitKind:  enum.LimitKindSectionsDurationBrightness,
		}, lane.Filter)
		assert.Equal(t, enum.BoxFilterKindStepAndOffset, lane.Filter.Settings.FilterKind())

		assert.Equal(t, beatmap.RotationEvents{{
			Beat: 0, Behaviour: enum.RotationBehaviourTransition, Loops: 1, Easing: enum.EasingEaseInOutQuad,
			Value: 90, Direction: enum.RotationDirectionCounterClockwise,
		}}, lane.Events)
	})

	t.Run("translation", func(t *testing.T) {
		t.Parallel()

		box := boxes[2].(*beatmap.LightEventBox)
		lane := box.Lanes[0]
		assert.InDelta(t, 1.5, lane.Dist, 0)
		require.NotNil(t, lane.DistEasing)
		assert.Equal(t, enum.EasingNone, *lane.DistEasing)
		assert.Equal(t, enum.AxisZ, *lane.Axis)
		assert.True(t, *lane.Reverse)
		assert.Equal(t, 1, lane.Events.Len())
		assert.Equal(t, beatmap.TranslationEvents{{
			Beat: 0, Behaviour: enum.RotationBehaviourExtend, Easing: enum.EasingLinear, Value: 3,
		}}, lane.Events)
	})
}

func sectionsFilter() schema.FilterObject {
	return schema.FilterObject{C: 1, F: enum.BoxFilterKindSections, P: 1}
}

func TestNormalize_PreservesCountsPerCategory(t *testing.T) {
	t.Parallel()

	file := &schema.NewBeatmapFile{
		Version:                 "3.0.0",
		BPMEvents:               make([]schema.BPMEvent, 2),
		RotationEvents:          make([]schema.RotationEvent, 1),
		ColorNotes:              make([]schema.ColorNote, 5),
		BombNotes:               make([]schema.BombNote, 3),
		Obstacles:               make([]schema.Obstacle, 4),
		Sliders:                 make([]schema.Slider, 2),
		BurstSliders:            make([]schema.BurstSlider, 1),
		BasicBeatmapEvents:      make([]schema.BasicBeatmapEvent, 6),
		ColorBoostBeatmapEvents: make([]schema.ColorBoostBeatmapEvent, 2),
		LightColorEventBoxGroups: []schema.LightColorEventBoxGroup{
			{E: []schema.LightColorEventBoxGroupLane{{LaneBase: schema.LaneBase{F: sectionsFilter()}}}},
		},
		LightRotationEventBoxGroups: []schema.LightRotationEventBoxGroup{{}, {}},
	}

	bm := beatmap.Normalize(file)

	counts := beatmap.CountByKind(bm.Events)
	assert.Equal(t, map[beatmap.EventKind]int{
		beatmap.EventKindBPM:           2,
		beatmap.EventKindRotation:      1,
		beatmap.EventKindNote:          5,
		beatmap.EventKindBomb:          3,
		beatmap.EventKindObstacle:      4,
		beatmap.EventKindSlider:        2,
		beatmap.EventKindBurstSlider:   1,
		beatmap.EventKindBasicEvent:    6,
		beatmap.EventKindColorBoost:    2,
		beatmap.EventKindLightEventBox: 3,
	}, counts)
	assert.Len(t, bm.Events, 29)

	assert.NotNil(t, bm.BasicEventTypesWithKeywords, "absent keywords normalize to an empty map")
}

func TestNormalize_SourceOrderWithinCategory(t *testing.T) {
	t.Parallel()

	file := &schema.NewBeatmapFile{
		ColorNotes: []schema.ColorNote{{B: 9}, {B: 1}, {B: 5}},
		BPMEvents:  []schema.BPMEvent{{B: 3, M: 120}},
	}

	bm := beatmap.Normalize(file)

	beats := make([]float64, 0, len(bm.Events))
	for _, e := range bm.Events {
		beats = append(beats, e.StartBeat())
	}

	assert.Equal(t, []float64{3, 9, 1, 5}, beats, "events are grouped by category, not sorted")
}

func TestNormalize_OldNotesDropUnused(t *testing.T) {
	t.Parallel()

	file := &schema.OldBeatmapFile{
		Notes: []schema.OldNote{
			{Time: 1, Type: schema.OldNoteKindUnused},
			{Time: 2, Type: schema.OldNoteKindUnused},
			{Time: 3, Type: schema.OldNoteKindRed},
		},
	}

	bm := beatmap.Normalize(file)
	require.Len(t, bm.Events, 1)
	assert.InDelta(t, 3.0, bm.Events[0].StartBeat(), 0)
}

func TestNormalize_OldEventCountMatches(t *testing.T) {
	t.Parallel()

	file := &schema.OldBeatmapFile{
		Notes:     []schema.OldNote{{Type: schema.OldNoteKindBlue}, {Type: schema.OldNoteKindBomb}, {Type: schema.OldNoteKindUnused}},
		Sliders:   make([]schema.OldSlider, 2),
		Obstacles: []schema.OldObstacle{{Type: schema.OldObstacleKindCrouch}},
		Events:    make([]schema.OldEvent, 4),
	}

	bm := beatmap.Normalize(file)

	// notes minus unused, plus sliders, obstacles and events
	assert.Len(t, bm.Events, 2+2+1+4)
}

func TestNormalize_OwnsItsData(t *testing.T) {
	t.Parallel()

	easing := enum.EasingLinear
	floatValue := 0.5
	file := &schema.NewBeatmapFile{
		BasicBeatmapEvents: []schema.BasicBeatmapEvent{{F: &floatValue}},
		LightColorEventBoxGroups: []schema.LightColorEventBoxGroup{{E: []schema.LightColorEventBoxGroupLane{
			{LaneBase: schema.LaneBase{F: sectionsFilter(), I: &easing}},
		}}},
		CustomData: schema.CustomData{"k": "v"},
	}

	bm := beatmap.Normalize(file)

	floatValue = 2
	easing = enum.EasingEaseInQuad
	file.CustomData["k"] = "changed"

	assert.InDelta(t, 0.5, *bm.Events[0].(*beatmap.BasicEvent).FloatValue, 0)
	assert.Equal(t, enum.EasingLinear, *bm.Events[1].(*beatmap.LightEventBox).Lanes[0].DistEasing)
	assert.Equal(t, "v", bm.CustomData["k"])
}

func TestObstacleGeometry(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind       schema.OldObstacleKind
		wantY      int
		wantHeight float64
	}{
		{kind: schema.OldObstacleKindFull, wantY: 0, wantHeight: 5},
		{kind: schema.OldObstacleKindCrouch, wantY: 2, wantHeight: 2},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			t.Parallel()

			y, height, ok := beatmap.ObstacleGeometry(tt.kind)
			require.True(t, ok)
			assert.Equal(t, tt.wantY, y)
			assert.InDelta(t, tt.wantHeight, height, 0)
		})
	}

	_, _, ok := beatmap.ObstacleGeometry(schema.OldObstacleKind(5))
	assert.False(t, ok)
}

func TestCategoryNames(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"_notes", "_sliders", "_obstacles", "_events"}, beatmap.CategoryNames(schema.FormatOld))
	assert.Equal(t, []string{
		"bpmEvents", "rotationEvents", "colorNotes", "bombNotes", "sliders", "obstacles", "burstSliders",
		"basicBeatmapEvents", "colorBoostBeatmapEvents",
		"lightColorEventBoxGroups", "lightRotationEventBoxGroups", "lightTranslationEventBoxGroups",
	}, beatmap.CategoryNames(schema.FormatNew))
	assert.Nil(t, beatmap.CategoryNames(schema.FormatUnknown))
}

func TestNormalize_PanicsOnNil(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { beatmap.Normalize(nil) })
}

func TestNormalize_PanicsOnUndeclaredKinds(t *testing.T) {
	t.Parallel()

	filter := schema.FilterObject{F: enum.BoxFilterKind(7)}
	assert.Panics(t, func() {
		beatmap.Normalize(&schema.NewBeatmapFile{
			LightColorEventBoxGroups: []schema.LightColorEventBoxGroup{{E: []schema.LightColorEventBoxGroupLane{
				{LaneBase: schema.LaneBase{F: filter}},
			}}},
		})
	})

	assert.Panics(t, func() {
		beatmap.Normalize(&schema.OldBeatmapFile{
			Obstacles: []schema.OldObstacle{{Type: schema.OldObstacleKind(4)}},
		})
	})
}

func TestNormalize_EmptyFileEncodesEmptyLists(t *testing.T) {
	t.Parallel()

	files := []schema.BeatmapFile{&schema.NewBeatmapFile{}, &schema.OldBeatmapFile{}}
	for _, file := range files {
		bm := beatmap.Normalize(file)
		require.NotNil(t, bm.Events, file.Format().String())
		assert.Empty(t, bm.Events)

		data, err := json.Marshal(bm)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"events":[]`)
		assert.Contains(t, string(data), `"waypoints":[]`)
	}
}

func TestEventKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "LightEventBox", beatmap.EventKindLightEventBox.String())
	assert.Equal(t, "BPM", beatmap.EventKindBPM.String())
	assert.Equal(t, "Unknown", beatmap.EventKind(99).String())
}
