package beatmap

import (
	"beatmap-reader/enum"
	"beatmap-reader/schema"
)

// EventKind discriminates the variants of Event.
type EventKind int

const (
	EventKindUnknown EventKind = iota
	EventKindBPM
	EventKindRotation
	EventKindNote
	EventKindBomb
	EventKindObstacle
	EventKindSlider
	EventKindBurstSlider
	EventKindBasicEvent
	EventKindColorBoost
	EventKindLightEventBox

	// EventKindTotal is the number of kinds, including EventKindUnknown.
	EventKindTotal = int(iota)
)

var eventKindNames = [EventKindTotal]string{
	"Unknown", "BPM", "Rotation", "Note", "Bomb", "Obstacle",
	"Slider", "BurstSlider", "BasicEvent", "ColorBoost", "LightEventBox",
}

func (k EventKind) String() string {
	if k < 0 || int(k) >= EventKindTotal {
		return eventKindNames[EventKindUnknown]
	}

	return eventKindNames[k]
}

// Event is one timestamped gameplay or lighting instruction. The set of
// implementations is closed: *BPMEvent, *Rotation, *Note, *Bomb, *Obstacle,
// *Slider, *BurstSlider, *BasicEvent, *ColorBoost and *LightEventBox.
type Event interface {
	Kind() EventKind
	// StartBeat is the beat the event starts at (the head beat for sliders).
	StartBeat() float64
	isEvent()
}

type BPMEvent struct {
	Beat  float64 `json:"beat"`
	Value float64 `json:"value"`
}

type Rotation struct {
	Beat   float64 `json:"beat"`
	IsLate bool    `json:"is_late"`
	Value  float64 `json:"value"`
}

type Note struct {
	Beat        float64        `json:"beat"`
	X           int            `json:"x"`
	Y           int            `json:"y"`
	Color       enum.NoteColor `json:"color"`
	Direction   enum.Direction `json:"direction"`
	AngleOffset float64        `json:"angle_offset"`
}

type Bomb struct {
	Beat float64 `json:"beat"`
	X    int     `json:"x"`
	Y    int     `json:"y"`
}

type Obstacle struct {
	Beat     float64 `json:"beat"`
	X        int     `json:"x"`
	Y        int     `json:"y"`
	Duration float64 `json:"duration"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
}

// Slider is an arc between two notes. The bulge values scale the control
// points at each end.
type Slider struct {
	HeadBeat       float64                  `json:"head_beat"`
	Color          enum.NoteColor           `json:"color"`
	HeadX          int                      `json:"head_x"`
	HeadY          int                      `json:"head_y"`
	HeadDirection  enum.Direction           `json:"head_direction"`
	HeadBulge      float64                  `json:"head_bulge"`
	TailBeat       float64                  `json:"tail_beat"`
	TailX          int                      `json:"tail_x"`
	TailY          int                      `json:"tail_y"`
	TailDirection  enum.Direction           `json:"tail_direction"`
	TailBulge      float64                  `json:"tail_bulge"`
	SpecialCurving enum.SliderMidAnchorMode `json:"special_curving"`
}

// BurstSlider is a chain of segments starting at a head note.
type BurstSlider struct {
	HeadBeat      float64        `json:"head_beat"`
	Color         enum.NoteColor `json:"color"`
	HeadX         int            `json:"head_x"`
	HeadY         int            `json:"head_y"`
	HeadDirection enum.Direction `json:"head_direction"`
	TailBeat      float64        `json:"tail_beat"`
	TailX         int            `json:"tail_x"`
	TailY         int            `json:"tail_y"`
	SegmentCount  int            `json:"segment_count"`
	Squish        float64        `json:"squish"`
}

// BasicEvent is a classic lighting or environment event. Type is the
// environment-specific event type and Value its integer payload.
type BasicEvent struct {
	Beat       float64           `json:"beat"`
	Type       int               `json:"type"`
	Value      int               `json:"value"`
	FloatValue *float64          `json:"float_value,omitempty"`
	CustomData schema.CustomData `json:"custom_data,omitempty"`
}

type ColorBoost struct {
	Beat   float64 `json:"beat"`
	Enable bool    `json:"enable"`
}

func (*BPMEvent) Kind() EventKind      { return EventKindBPM }
func (*Rotation) Kind() EventKind      { return EventKindRotation }
func (*Note) Kind() EventKind          { return EventKindNote }
func (*Bomb) Kind() EventKind          { return EventKindBomb }
func (*Obstacle) Kind() EventKind      { return EventKindObstacle }
func (*Slider) Kind() EventKind        { return EventKindSlider }
func (*BurstSlider) Kind() EventKind   { return EventKindBurstSlider }
func (*BasicEvent) Kind() EventKind    { return EventKindBasicEvent }
func (*ColorBoost) Kind() EventKind    { return EventKindColorBoost }
func (*LightEventBox) Kind() EventKind { return EventKindLightEventBox }

func (e *BPMEvent) StartBeat() float64      { return e.Beat }
func (e *Rotation) StartBeat() float64      { return e.Beat }
func (e *Note) StartBeat() float64          { return e.Beat }
func (e *Bomb) StartBeat() float64          { return e.Beat }
func (e *Obstacle) StartBeat() float64      { return e.Beat }
func (e *Slider) StartBeat() float64        { return e.HeadBeat }
func (e *BurstSlider) StartBeat() float64   { return e.HeadBeat }
func (e *BasicEvent) StartBeat() float64    { return e.Beat }
func (e *ColorBoost) StartBeat() float64    { return e.Beat }
func (e *LightEventBox) StartBeat() float64 { return e.Beat }

func (*BPMEvent) isEvent()      {}
func (*Rotation) isEvent()      {}
func (*Note) isEvent()          {}
func (*Bomb) isEvent()          {}
func (*Obstacle) isEvent()      {}
func (*Slider) isEvent()        {}
func (*BurstSlider) isEvent()   {}
func (*BasicEvent) isEvent()    {}
func (*ColorBoost) isEvent()    {}
func (*LightEventBox) isEvent() {}

// CountByKind tallies events per kind.
func CountByKind(events []Event) map[EventKind]int {
	counts := make(map[EventKind]int, EventKindTotal)
	for _, e := range events {
		counts[e.Kind()]++
	}

	return counts
}
