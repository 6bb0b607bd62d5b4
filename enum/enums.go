package enum

// NoteColor is the color of a note, slider or burst slider.
type NoteColor int8

const (
	NoteColorRed  NoteColor = 0
	NoteColorBlue NoteColor = 1
)

var NoteColors = NewTable("NoteColor",
	Entry[NoteColor]{NoteColorRed, "Red"},
	Entry[NoteColor]{NoteColorBlue, "Blue"},
)

func (n NoteColor) String() string { return NoteColors.Symbol(n) }
func (n NoteColor) IsValid() bool { return NoteColors.Has(n) }

func (n NoteColor) MarshalText() ([]byte, error) { return []byte(n.String()), nil }

func (n *NoteColor) UnmarshalJSON(data []byte) error { return NoteColors.Decode(data, n) }

// Direction is the cut direction of a note or slider end.
type Direction int8

const (
	DirectionUp        Direction = 0
	DirectionDown      Direction = 1
	DirectionLeft      Direction = 2
	DirectionRight     Direction = 3
	DirectionUpLeft    Direction = 4
	DirectionUpRight   Direction = 5
	DirectionDownLeft  Direction = 6
	DirectionDownRight Direction = 7
	DirectionAny       Direction = 8
)

var Directions = NewTable("Direction",
	Entry[Direction]{DirectionUp, "Up"},
	Entry[Direction]{DirectionDown, "Down"},
	Entry[Direction]{DirectionLeft, "Left"},
	Entry[Direction]{DirectionRight, "Right"},
	Entry[Direction]{DirectionUpLeft, "UpLeft"},
	Entry[Direction]{DirectionUpRight, "UpRight"},
	Entry[Direction]{DirectionDownLeft, "DownLeft"},
	Entry[Direction]{DirectionDownRight, "DownRight"},
	Entry[Direction]{DirectionAny, "Any"},
)

func (d Direction) String() string { return Directions.Symbol(d) }
func (d Direction) IsValid() bool { return Directions.Has(d) }

func (d Direction) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

func (d *Direction) UnmarshalJSON(data []byte) error { return Directions.Decode(data, d) }

type SliderMidAnchorMode int8

const (
	SliderMidAnchorModeStraight         SliderMidAnchorMode = 0
	SliderMidAnchorModeClockwise        SliderMidAnchorMode = 1
	SliderMidAnchorModeCounterClockwise SliderMidAnchorMode = 2
)

var SliderMidAnchorModes = NewTable("SliderMidAnchorMode",
	Entry[SliderMidAnchorMode]{SliderMidAnchorModeStraight, "Straight"},
	Entry[SliderMidAnchorMode]{SliderMidAnchorModeClockwise, "Clockwise"},
	Entry[SliderMidAnchorMode]{SliderMidAnchorModeCounterClockwise, "CounterClockwise"},
)

func (s SliderMidAnchorMode) String() string { return SliderMidAnchorModes.Symbol(s) }
func (s SliderMidAnchorMode) IsValid() bool { return SliderMidAnchorModes.Has(s) }

func (s SliderMidAnchorMode) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *SliderMidAnchorMode) UnmarshalJSON(data []byte) error { return SliderMidAnchorModes.Decode(data, s) }

// RotationBehaviour tells whether a light rotation or translation event
// transitions from the previous event or extends it.
type RotationBehaviour int8

const (
	RotationBehaviourTransition RotationBehaviour = 0
	RotationBehaviourExtend     RotationBehaviour = 1
)

var RotationBehaviours = NewTable("RotationBehaviour",
	Entry[RotationBehaviour]{RotationBehaviourTransition, "Transition"},
	Entry[RotationBehaviour]{RotationBehaviourExtend, "Extend"},
)

func (r RotationBehaviour) String() string { return RotationBehaviours.Symbol(r) }
func (r RotationBehaviour) IsValid() bool { return RotationBehaviours.Has(r) }

func (r RotationBehaviour) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

func (r *RotationBehaviour) UnmarshalJSON(data []byte) error { return RotationBehaviours.Decode(data, r) }

type RotationDirection int8

const (
	RotationDirectionAutomatic        RotationDirection = 0
	RotationDirectionClockwise        RotationDirection = 1
	RotationDirectionCounterClockwise RotationDirection = 2
)

var RotationDirections = NewTable("RotationDirection",
	Entry[RotationDirection]{RotationDirectionAutomatic, "Automatic"},
	Entry[RotationDirection]{RotationDirectionClockwise, "Clockwise"},
	Entry[RotationDirection]{RotationDirectionCounterClockwise, "CounterClockwise"},
)

func (r RotationDirection) String() string { return RotationDirections.Symbol(r) }
func (r RotationDirection) IsValid() bool { return RotationDirections.Has(r) }

func (r RotationDirection) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

func (r *RotationDirection) UnmarshalJSON(data []byte) error { return RotationDirections.Decode(data, r) }

// DistributionKind controls how a lane spreads beat or value offsets over
// the filtered fixtures.
type DistributionKind int8

const (
	DistributionKindWave DistributionKind = 1
	DistributionKindStep DistributionKind = 2
)

var DistributionKinds = NewTable("DistributionKind",
	Entry[DistributionKind]{DistributionKindWave, "Wave"},
	Entry[DistributionKind]{DistributionKindStep, "Step"},
)

func (d DistributionKind) String() string { return DistributionKinds.Symbol(d) }
func (d DistributionKind) IsValid() bool { return DistributionKinds.Has(d) }

func (d DistributionKind) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

func (d *DistributionKind) UnmarshalJSON(data []byte) error { return DistributionKinds.Decode(data, d) }

type Easing int8

const (
	EasingNone          Easing = -1
	EasingLinear        Easing = 0
	EasingEaseInQuad    Easing = 1
	EasingEaseOutQuad   Easing = 2
	EasingEaseInOutQuad Easing = 3
)

var Easings = NewTable("Easing",
	Entry[Easing]{EasingNone, "None"},
	Entry[Easing]{EasingLinear, "Linear"},
	Entry[Easing]{EasingEaseInQuad, "EaseInQuad"},
	Entry[Easing]{EasingEaseOutQuad, "EaseOutQuad"},
	Entry[Easing]{EasingEaseInOutQuad, "EaseInOutQuad"},
)

func (e Easing) String() string { return Easings.Symbol(e) }
func (e Easing) IsValid() bool { return Easings.Has(e) }

func (e Easing) MarshalText() ([]byte, error) { return []byte(e.String()), nil }

func (e *Easing) UnmarshalJSON(data []byte) error { return Easings.Decode(data, e) }

type Axis int8

const (
	AxisX Axis = 0
	AxisY Axis = 1
	AxisZ Axis = 2
)

var Axes = NewTable("Axis",
	Entry[Axis]{AxisX, "X"},
	Entry[Axis]{AxisY, "Y"},
	Entry[Axis]{AxisZ, "Z"},
)

func (a Axis) String() string { return Axes.Symbol(a) }
func (a Axis) IsValid() bool { return Axes.Has(a) }

func (a Axis) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

func (a *Axis) UnmarshalJSON(data []byte) error { return Axes.Decode(data, a) }

type TransitionKind int8

const (
	TransitionKindInstant    TransitionKind = 0
	TransitionKindTransition TransitionKind = 1
	TransitionKindExtend     TransitionKind = 2
)

var TransitionKinds = NewTable("TransitionKind",
	Entry[TransitionKind]{TransitionKindInstant, "Instant"},
	Entry[TransitionKind]{TransitionKindTransition, "Transition"},
	Entry[TransitionKind]{TransitionKindExtend, "Extend"},
)

func (t TransitionKind) String() string { return TransitionKinds.Symbol(t) }
func (t TransitionKind) IsValid() bool { return TransitionKinds.Has(t) }

func (t TransitionKind) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

func (t *TransitionKind) UnmarshalJSON(data []byte) error { return TransitionKinds.Decode(data, t) }

type LightColor int8

const (
	LightColorRed   LightColor = 0
	LightColorBlue  LightColor = 1
	LightColorWhite LightColor = 2
)

var LightColors = NewTable("LightColor",
	Entry[LightColor]{LightColorRed, "Red"},
	Entry[LightColor]{LightColorBlue, "Blue"},
	Entry[LightColor]{LightColorWhite, "White"},
)

func (l LightColor) String() string { return LightColors.Symbol(l) }
func (l LightColor) IsValid() bool { return LightColors.Has(l) }

func (l LightColor) MarshalText() ([]byte, error) { return []byte(l.String()), nil }

func (l *LightColor) UnmarshalJSON(data []byte) error { return LightColors.Decode(data, l) }

type BoxFilterOrdering int8

const (
	BoxFilterOrderingStandard1           BoxFilterOrdering = 0
	BoxFilterOrderingStandard2           BoxFilterOrdering = 1
	BoxFilterOrderingRandom              BoxFilterOrdering = 2
	BoxFilterOrderingRandomStartingIndex BoxFilterOrdering = 3
)

var BoxFilterOrderings = NewTable("BoxFilterOrdering",
	Entry[BoxFilterOrdering]{BoxFilterOrderingStandard1, "Standard1"},
	Entry[BoxFilterOrdering]{BoxFilterOrderingStandard2, "Standard2"},
	Entry[BoxFilterOrdering]{BoxFilterOrderingRandom, "Random"},
	Entry[BoxFilterOrdering]{BoxFilterOrderingRandomStartingIndex, "RandomStartingIndex"},
)

func (b BoxFilterOrdering) String() string { return BoxFilterOrderings.Symbol(b) }
func (b BoxFilterOrdering) IsValid() bool { return BoxFilterOrderings.Has(b) }

func (b BoxFilterOrdering) MarshalText() ([]byte, error) { return []byte(b.String()), nil }

func (b *BoxFilterOrdering) UnmarshalJSON(data []byte) error { return BoxFilterOrderings.Decode(data, b) }

// LimitKind selects which properties a box filter limit also applies to.
type LimitKind int8

const (
	LimitKindSections                   LimitKind = 0
	LimitKindSectionsDuration           LimitKind = 1
	LimitKindSectionsBrightness         LimitKind = 2
	LimitKindSectionsDurationBrightness LimitKind = 3
)

var LimitKinds = NewTable("LimitKind",
	Entry[LimitKind]{LimitKindSections, "Sections"},
	Entry[LimitKind]{LimitKindSectionsDuration, "SectionsDuration"},
	Entry[LimitKind]{LimitKindSectionsBrightness, "SectionsBrightness"},
	Entry[LimitKind]{LimitKindSectionsDurationBrightness, "SectionsDurationBrightness"},
)

func (l LimitKind) String() string { return LimitKinds.Symbol(l) }
func (l LimitKind) IsValid() bool { return LimitKinds.Has(l) }

func (l LimitKind) MarshalText() ([]byte, error) { return []byte(l.String()), nil }

func (l *LimitKind) UnmarshalJSON(data []byte) error { return LimitKinds.Decode(data, l) }

// BoxFilterKind discriminates the two box filter settings shapes.
type BoxFilterKind int8

const (
	BoxFilterKindSections      BoxFilterKind = 1
	BoxFilterKindStepAndOffset BoxFilterKind = 2
)

var BoxFilterKinds = NewTable("BoxFilterKind",
	Entry[BoxFilterKind]{BoxFilterKindSections, "Sections"},
	Entry[BoxFilterKind]{BoxFilterKindStepAndOffset, "StepAndOffset"},
)

func (b BoxFilterKind) String() string { return BoxFilterKinds.Symbol(b) }
func (b BoxFilterKind) IsValid() bool { return BoxFilterKinds.Has(b) }

func (b BoxFilterKind) MarshalText() ([]byte, error) { return []byte(b.String()), nil }

func (b *BoxFilterKind) UnmarshalJSON(data []byte) error { return BoxFilterKinds.Decode(data, b) }
