package beatmap

import (
	"beatmap-reader/enum"
	"beatmap-reader/schema"
)

// convertBoxGroup builds the converter for one light event box group kind
// from the converter of its lanes.
func convertBoxGroup[L any](lane func(*L) LightEventLane) func(*schema.EventBoxGroup[L]) Event {
	return func(g *schema.EventBoxGroup[L]) Event {
		return &LightEventBox{Beat: g.B, Group: int(g.G), Lanes: mapSlice(g.E, lane)}
	}
}

func baseLane(l *schema.LaneBase, dist float64, events LightEvents) LightEventLane {
	return LightEventLane{
		Filter:                boxFilter(&l.F),
		BeatDist:              l.W,
		BeatDistKind:          l.D,
		Dist:                  dist,
		DistKind:              l.T,
		DistAffectsFirstEvent: bool(l.B),
		DistEasing:            clonePtr(l.I),
		Events:                events,
	}
}

func colorLane(l *schema.LightColorEventBoxGroupLane) LightEventLane {
	return baseLane(&l.LaneBase, l.R, ColorEvents(mapSlice(l.E, colorEventData)))
}

func rotationLane(l *schema.LightRotationEventBoxGroupLane) LightEventLane {
	lane := baseLane(&l.LaneBase, l.S, RotationEvents(mapSlice(l.E, rotationEventData)))
	lane.Axis, lane.Reverse = ptr(l.A), ptr(bool(l.R))

	return lane
}

func translationLane(l *schema.LightTranslationEventBoxGroupLane) LightEventLane {
	lane := baseLane(&l.LaneBase, l.S, TranslationEvents(mapSlice(l.L, translationEventData)))
	lane.Axis, lane.Reverse = ptr(l.A), ptr(bool(l.R))

	return lane
}

func colorEventData(e *schema.LightColorEventData) LightColorEvent {
	return LightColorEvent{Beat: e.B, Transition: e.I, Color: e.C, Brightness: e.S, Frequency: int(e.F)}
}

func rotationEventData(e *schema.LightRotationEventData) LightRotationEvent {
	return LightRotationEvent{Beat: e.B, Behaviour: e.P, Loops: int(e.L), Easing: e.E, Value: e.R, Direction: e.O}
}

func translationEventData(e *schema.LightTranslationEventData) LightTranslationEvent {
	return LightTranslationEvent{Beat: e.B, Behaviour: e.P, Easing: e.E, Value: e.T}
}

func boxFilter(f *schema.FilterObject) BoxFilter {
	return BoxFilter{
		Chunks:     int(f.C),
		Settings:   filterSettings(f),
		Reverse:    bool(f.R),
		Ordering:   f.N,
		RandomSeed: int(f.S),
		Limit:      f.L,
		LimitKind:  f.D,
	}
}

// filterSettings reads the p and t parameters according to the filter kind.
func filterSettings(f *schema.FilterObject) BoxFilterSettings {
	switch f.F {
	case enum.BoxFilterKindSections:
		return SectionsFilter{Count: int(f.P), Index: int(f.T)}
	case enum.BoxFilterKindStepAndOffset:
		return StepAndOffsetFilter{Start: int(f.P), Skip: int(f.T)}
	default:
		panic("beatmap: unknown box filter kind " + f.F.String())
	}
}

func ptr[T any](v T) *T { return &v }
