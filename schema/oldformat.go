package schema

import "beatmap-reader/enum"

// OldBeatmapFile is the legacy beatmap layout. Lighting is a single merged
// event list and there are no light box groups or burst sliders.
type OldBeatmapFile struct {
	Version    string        `json:"_version"`
	Notes      []OldNote     `json:"_notes"`
	Sliders    []OldSlider   `json:"_sliders,omitempty"`
	Obstacles  []OldObstacle `json:"_obstacles"`
	Events     []OldEvent    `json:"_events"`
	Waypoints  []any         `json:"_waypoints,omitempty"`
	CustomData CustomData    `json:"customData,omitempty"`
}

func (*OldBeatmapFile) Format() Format { return FormatOld }

func (*OldBeatmapFile) isBeatmapFile() {}

// OldNoteKind overloads note color with bombs and an unused slot.
type OldNoteKind int8

const (
	OldNoteKindRed    OldNoteKind = 0
	OldNoteKindBlue   OldNoteKind = 1
	OldNoteKindUnused OldNoteKind = 2
	OldNoteKindBomb   OldNoteKind = 3
)

var OldNoteKinds = enum.NewTable("OldNoteKind",
	enum.Entry[OldNoteKind]{Code: OldNoteKindRed, Symbol: "Red"},
	enum.Entry[OldNoteKind]{Code: OldNoteKindBlue, Symbol: "Blue"},
	enum.Entry[OldNoteKind]{Code: OldNoteKindUnused, Symbol: "Unused"},
	enum.Entry[OldNoteKind]{Code: OldNoteKindBomb, Symbol: "Bomb"},
)

func (k OldNoteKind) String() string { return OldNoteKinds.Symbol(k) }

func (k *OldNoteKind) UnmarshalJSON(data []byte) error { return OldNoteKinds.Decode(data, k) }

// OldObstacleKind is the legacy obstacle shape. Geometry is implied by the kind.
type OldObstacleKind int8

const (
	OldObstacleKindFull   OldObstacleKind = 0
	OldObstacleKindCrouch OldObstacleKind = 1
)

var OldObstacleKinds = enum.NewTable("OldObstacleKind",
	enum.Entry[OldObstacleKind]{Code: OldObstacleKindFull, Symbol: "Full"},
	enum.Entry[OldObstacleKind]{Code: OldObstacleKindCrouch, Symbol: "Crouch"},
)

func (k OldObstacleKind) String() string { return OldObstacleKinds.Symbol(k) }

func (k *OldObstacleKind) UnmarshalJSON(data []byte) error { return OldObstacleKinds.Decode(data, k) }

type OldNote struct {
	Time         float64        `json:"_time"`
	LineIndex    int32          `json:"_lineIndex"`
	LineLayer    int32          `json:"_lineLayer"`
	Type         OldNoteKind    `json:"_type"`
	CutDirection enum.Direction `json:"_cutDirection"`
	CustomData   CustomData     `json:"_customData,omitempty"`
}

type OldSlider struct {
	ColorType                        enum.NoteColor           `json:"_colorType"`
	HeadTime                         float64                  `json:"_headTime"`
	HeadLineIndex                    int32                    `json:"_headLineIndex"`
	HeadLineLayer                    int32                    `json:"_headLineLayer"`
	HeadControlPointLengthMultiplier float64                  `json:"_headControlPointLengthMultiplier"`
	HeadCutDirection                 enum.Direction           `json:"_headCutDirection"`
	TailTime                         float64                  `json:"_tailTime"`
	TailLineIndex                    int32                    `json:"_tailLineIndex"`
	TailLineLayer                    int32                    `json:"_tailLineLayer"`
	TailControlPointLengthMultiplier float64                  `json:"_tailControlPointLengthMultiplier"`
	TailCutDirection                 enum.Direction           `json:"_tailCutDirection"`
	SliderMidAnchorMode              enum.SliderMidAnchorMode `json:"_sliderMidAnchorMode"`
	CustomData                       CustomData               `json:"_customData,omitempty"`
}

type OldObstacle struct {
	Time       float64         `json:"_time"`
	LineIndex  int32           `json:"_lineIndex"`
	Type       OldObstacleKind `json:"_type"`
	Duration   float64         `json:"_duration"`
	Width      float64         `json:"_width"`
	CustomData CustomData      `json:"_customData,omitempty"`
}

type OldEvent struct {
	Time       float64    `json:"_time"`
	Type       int32      `json:"_type"`
	Value      int32      `json:"_value"`
	FloatValue *float64   `json:"_floatValue,omitempty"`
	CustomData CustomData `json:"_customData,omitempty"`
}
