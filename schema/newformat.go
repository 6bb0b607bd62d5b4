package schema

import "beatmap-reader/enum"

// NewBeatmapFile is the current beatmap layout. Each record kind has its own list.
type NewBeatmapFile struct {
	Version                           string                          `json:"version"`
	BPMEvents                         []BPMEvent                      `json:"bpmEvents"`
	RotationEvents                    []RotationEvent                 `json:"rotationEvents"`
	ColorNotes                        []ColorNote                     `json:"colorNotes"`
	BombNotes                         []BombNote                      `json:"bombNotes"`
	Obstacles                         []Obstacle                      `json:"obstacles"`
	Sliders                           []Slider                        `json:"sliders"`
	BurstSliders                      []BurstSlider                   `json:"burstSliders"`
	Waypoints                         []any                           `json:"waypoints"`
	BasicBeatmapEvents                []BasicBeatmapEvent             `json:"basicBeatmapEvents"`
	ColorBoostBeatmapEvents           []ColorBoostBeatmapEvent        `json:"colorBoostBeatmapEvents"`
	LightColorEventBoxGroups          []LightColorEventBoxGroup       `json:"lightColorEventBoxGroups"`
	LightRotationEventBoxGroups       []LightRotationEventBoxGroup    `json:"lightRotationEventBoxGroups"`
	LightTranslationEventBoxGroups    []LightTranslationEventBoxGroup `json:"lightTranslationEventBoxGroups,omitempty"`
	BasicEventTypesWithKeywords       map[string]any                  `json:"basicEventTypesWithKeywords,omitempty"`
	UseNormalEventsAsCompatibleEvents bool                            `json:"useNormalEventsAsCompatibleEvents"`
	CustomData                        CustomData                      `json:"customData,omitempty"`
}

func (*NewBeatmapFile) Format() Format { return FormatNew }

func (*NewBeatmapFile) isBeatmapFile() {}

type BPMEvent struct {
	B float64 `json:"b"`
	M float64 `json:"m"`
}

type RotationEvent struct {
	B float64 `json:"b"`
	E Flag    `json:"e"` // late
	R float64 `json:"r"`
}

type ColorNote struct {
	B float64        `json:"b"`
	X int32          `json:"x"`
	Y int32          `json:"y"`
	C enum.NoteColor `json:"c"`
	D enum.Direction `json:"d"`
	A int32          `json:"a"`
}

type BombNote struct {
	B float64 `json:"b"`
	X int32   `json:"x"`
	Y int32   `json:"y"`
}

type Obstacle struct {
	B float64 `json:"b"`
	X int32   `json:"x"`
	Y int32   `json:"y"`
	D float64 `json:"d"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

type Slider struct {
	B   float64                  `json:"b"`
	C   enum.NoteColor           `json:"c"`
	X   int32                    `json:"x"`
	Y   int32                    `json:"y"`
	D   enum.Direction           `json:"d"`
	Mu  float64                  `json:"mu"`
	Tb  float64                  `json:"tb"`
	Tx  int32                    `json:"tx"`
	Ty  int32                    `json:"ty"`
	Tc  enum.Direction           `json:"tc"`
	Tmu float64                  `json:"tmu"`
	M   enum.SliderMidAnchorMode `json:"m"`
}

type BurstSlider struct {
	B  float64        `json:"b"`
	C  enum.NoteColor `json:"c"`
	X  int32          `json:"x"`
	Y  int32          `json:"y"`
	D  enum.Direction `json:"d"`
	Tb float64        `json:"tb"`
	Tx int32          `json:"tx"`
	Ty int32          `json:"ty"`
	Sc int32          `json:"sc"`
	S  float64        `json:"s"`
}

type BasicBeatmapEvent struct {
	B  float64  `json:"b"`
	Et int32    `json:"et"`
	I  int32    `json:"i"`
	F  *float64 `json:"f,omitempty"`
}

type ColorBoostBeatmapEvent struct {
	B float64 `json:"b"`
	O bool    `json:"o"`
}

// EventBoxGroup is the envelope shared by the three light event box group kinds.
type EventBoxGroup[L any] struct {
	B float64 `json:"b"`
	G int32   `json:"g"`
	E []L     `json:"e"`
}

type (
	LightColorEventBoxGroup       = EventBoxGroup[LightColorEventBoxGroupLane]
	LightRotationEventBoxGroup    = EventBoxGroup[LightRotationEventBoxGroupLane]
	LightTranslationEventBoxGroup = EventBoxGroup[LightTranslationEventBoxGroupLane]
)

// LaneBase holds the keys every light lane kind has in common.
type LaneBase struct {
	F FilterObject          `json:"f"`
	W float64               `json:"w"` // beat distribution
	D enum.DistributionKind `json:"d"`
	T enum.DistributionKind `json:"t"`
	B Flag                  `json:"b"` // distribution affects first event
	I *enum.Easing          `json:"i,omitempty"`
}

type LightColorEventBoxGroupLane struct {
	LaneBase
	R float64               `json:"r"` // brightness distribution
	E []LightColorEventData `json:"e"`
}

type LightColorEventData struct {
	B float64             `json:"b"`
	I enum.TransitionKind `json:"i"`
	C enum.LightColor     `json:"c"`
	S float64             `json:"s"`
	F int32               `json:"f"`
}

type LightRotationEventBoxGroupLane struct {
	LaneBase
	S float64                  `json:"s"` // rotation distribution
	A enum.Axis                `json:"a"`
	R Flag                     `json:"r"` // reverse
	E []LightRotationEventData `json:"e"`
}

type LightRotationEventData struct {
	B float64                `json:"b"`
	P enum.RotationBehaviour `json:"p"`
	L int32                  `json:"l"`
	E enum.Easing            `json:"e"`
	R float64                `json:"r"`
	O enum.RotationDirection `json:"o"`
}

type LightTranslationEventBoxGroupLane struct {
	LaneBase
	S float64                     `json:"s"` // translation distribution
	A enum.Axis                   `json:"a"`
	R Flag                        `json:"r"` // reverse
	L []LightTranslationEventData `json:"l"`
}

type LightTranslationEventData struct {
	B float64                `json:"b"`
	P enum.RotationBehaviour `json:"p"`
	E enum.Easing            `json:"e"`
	T float64                `json:"t"`
}

// FilterObject selects the fixtures a lane applies to. P and T are
// interpreted according to F.
type FilterObject struct {
	C int32                  `json:"c"`
	F enum.BoxFilterKind     `json:"f"`
	P int32                  `json:"p"`
	T int32                  `json:"t"`
	R Flag                   `json:"r"`
	N enum.BoxFilterOrdering `json:"n"`
	S int32                  `json:"s"`
	L float64                `json:"l"`
	D enum.LimitKind         `json:"d"`
}
