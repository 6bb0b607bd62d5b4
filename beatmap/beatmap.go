package beatmap

import "beatmap-reader/schema"

// Beatmap is one difficulty in the version independent model.
type Beatmap struct {
	Version string `json:"version"`
	// Events holds every event grouped by category in a fixed order, each
	// category in source order. It is not sorted by beat.
	Events                            []Event           `json:"events"`
	Waypoints                         []any             `json:"waypoints"`
	BasicEventTypesWithKeywords       map[string]any    `json:"basic_event_types_with_keywords"`
	UseNormalEventsAsCompatibleEvents bool              `json:"use_normal_events_as_compatible_events"`
	CustomData                        schema.CustomData `json:"custom_data,omitempty"`
}

// EventsOf returns the events of kind k in their stored order.
func (b *Beatmap) EventsOf(k EventKind) []Event {
	var out []Event
	for _, e := range b.Events {
		if e.Kind() == k {
			out = append(out, e)
		}
	}

	return out
}
