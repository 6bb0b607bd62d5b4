package beatmap

import "beatmap-reader/enum"

// LightEventBox is one light event box group: a set of lanes addressing the
// fixtures of light group Group, starting at Beat.
type LightEventBox struct {
	Beat  float64          `json:"beat"`
	Group int              `json:"group"`
	Lanes []LightEventLane `json:"lanes"`
}

// LightEventLane is one lane of a LightEventBox. Dist is the brightness
// distribution for color lanes and the rotation or translation distribution
// otherwise. Axis and Reverse are only set for rotation and translation lanes.
type LightEventLane struct {
	Filter                BoxFilter             `json:"filter"`
	BeatDist              float64               `json:"beat_dist"`
	BeatDistKind          enum.DistributionKind `json:"beat_dist_kind"`
	Dist                  float64               `json:"dist"`
	DistKind              enum.DistributionKind `json:"dist_kind"`
	DistAffectsFirstEvent bool                  `json:"dist_affects_first_event"`
	DistEasing            *enum.Easing          `json:"dist_easing,omitempty"`
	Axis                  *enum.Axis            `json:"axis,omitempty"`
	Reverse               *bool                 `json:"reverse,omitempty"`
	Events                LightEvents           `json:"events"`
}

// LightEvents is the event list of a lane. Implementations are ColorEvents,
// RotationEvents and TranslationEvents.
type LightEvents interface {
	Len() int
	isLightEvents()
}

type (
	ColorEvents       []LightColorEvent
	RotationEvents    []LightRotationEvent
	TranslationEvents []LightTranslationEvent
)

func (e ColorEvents) Len() int       { return len(e) }
func (e RotationEvents) Len() int    { return len(e) }
func (e TranslationEvents) Len() int { return len(e) }

func (ColorEvents) isLightEvents()       {}
func (RotationEvents) isLightEvents()    {}
func (TranslationEvents) isLightEvents() {}

type LightColorEvent struct {
	Beat       float64             `json:"beat"`
	Transition enum.TransitionKind `json:"transition"`
	Color      enum.LightColor     `json:"color"`
	Brightness float64             `json:"brightness"`
	Frequency  int                 `json:"frequency"`
}

type LightRotationEvent struct {
	Beat      float64                `json:"beat"`
	Behaviour enum.RotationBehaviour `json:"behaviour"`
	Loops     int                    `json:"loops"`
	Easing    enum.Easing            `json:"easing"`
	Value     float64                `json:"value"`
	Direction enum.RotationDirection `json:"direction"`
}

type LightTranslationEvent struct {
	Beat      float64                `json:"beat"`
	Behaviour enum.RotationBehaviour `json:"behaviour"`
	Easing    enum.Easing            `json:"easing"`
	Value     float64                `json:"value"`
}

// BoxFilter selects which fixtures of the group a lane drives.
type BoxFilter struct {
	Chunks     int                    `json:"chunks"`
	Settings   BoxFilterSettings      `json:"settings"`
	Reverse    bool                   `json:"reverse"`
	Ordering   enum.BoxFilterOrdering `json:"ordering"`
	RandomSeed int                    `json:"random_seed"`
	Limit      float64                `json:"limit"`
	LimitKind  enum.LimitKind         `json:"limit_kind"`
}

// BoxFilterSettings is SectionsFilter or StepAndOffsetFilter.
type BoxFilterSettings interface {
	FilterKind() enum.BoxFilterKind
	isBoxFilterSettings()
}

// SectionsFilter splits the group into Count sections and selects the one at Index.
type SectionsFilter struct {
	Count int `json:"count"`
	Index int `json:"index"`
}

// StepAndOffsetFilter selects every Skip-th fixture starting at Start.
type StepAndOffsetFilter struct {
	Start int `json:"start"`
	Skip  int `json:"skip"`
}

func (SectionsFilter) FilterKind() enum.BoxFilterKind      { return enum.BoxFilterKindSections }
func (StepAndOffsetFilter) FilterKind() enum.BoxFilterKind { return enum.BoxFilterKindStepAndOffset }

func (SectionsFilter) isBoxFilterSettings()      {}
func (StepAndOffsetFilter) isBoxFilterSettings() {}
