package beatmap

import (
	"maps"

	"beatmap-reader/enum"
	"beatmap-reader/schema"
)

func bpmEvent(e *schema.BPMEvent) Event {
	return &BPMEvent{Beat: e.B, Value: e.M}
}

func rotationEvent(e *schema.RotationEvent) Event {
	return &Rotation{Beat: e.B, IsLate: bool(e.E), Value: e.R}
}

func colorNote(n *schema.ColorNote) Event {
	return &Note{
		Beat:        n.B,
		X:           int(n.X),
		Y:           int(n.Y),
		Color:       n.C,
		Direction:   n.D,
		AngleOffset: float64(n.A),
	}
}

func bombNote(n *schema.BombNote) Event {
	return &Bomb{Beat: n.B, X: int(n.X), Y: int(n.Y)}
}

func obstacle(o *schema.Obstacle) Event {
	return &Obstacle{Beat: o.B, X: int(o.X), Y: int(o.Y), Duration: o.D, Width: o.W, Height: o.H}
}

func slider(s *schema.Slider) Event {
	return &Slider{
		HeadBeat:       s.B,
		Color:          s.C,
		HeadX:          int(s.X),
		HeadY:          int(s.Y),
		HeadDirection:  s.D,
		HeadBulge:      s.Mu,
		TailBeat:       s.Tb,
		TailX:          int(s.Tx),
		TailY:          int(s.Ty),
		TailDirection:  s.Tc,
		TailBulge:      s.Tmu,
		SpecialCurving: s.M,
	}
}

func burstSlider(s *schema.BurstSlider) Event {
	return &BurstSlider{
		HeadBeat:      s.B,
		Color:         s.C,
		HeadX:         int(s.X),
		HeadY:         int(s.Y),
		HeadDirection: s.D,
		TailBeat:      s.Tb,
		TailX:         int(s.Tx),
		TailY:         int(s.Ty),
		SegmentCount:  int(s.Sc),
		Squish:        s.S,
	}
}

// basicEvent carries no custom data; the new layout has none per event.
func basicEvent(e *schema.BasicBeatmapEvent) Event {
	return &BasicEvent{Beat: e.B, Type: int(e.Et), Value: int(e.I), FloatValue: clonePtr(e.F)}
}

func colorBoost(e *schema.ColorBoostBeatmapEvent) Event {
	return &ColorBoost{Beat: e.B, Enable: e.O}
}

var oldNoteColors = map[schema.OldNoteKind]enum.NoteColor{
	schema.OldNoteKindRed:  enum.NoteColorRed,
	schema.OldNoteKindBlue: enum.NoteColorBlue,
}

// oldNote returns nil for OldNoteKindUnused.
func oldNote(n *schema.OldNote) Event {
	if color, ok := oldNoteColors[n.Type]; ok {
		return &Note{
			Beat:      n.Time,
			X:         int(n.LineIndex),
			Y:         int(n.LineLayer),
			Color:     color,
			Direction: n.CutDirection,
		}
	}

	if n.Type == schema.OldNoteKindBomb {
		return &Bomb{Beat: n.Time, X: int(n.LineIndex), Y: int(n.LineLayer)}
	}

	return nil
}

func oldSlider(s *schema.OldSlider) Event {
	return &Slider{
		HeadBeat:       s.HeadTime,
		Color:          s.ColorType,
		HeadX:          int(s.HeadLineIndex),
		HeadY:          int(s.HeadLineLayer),
		HeadDirection:  s.HeadCutDirection,
		HeadBulge:      s.HeadControlPointLengthMultiplier,
		TailBeat:       s.TailTime,
		TailX:          int(s.TailLineIndex),
		TailY:          int(s.TailLineLayer),
		TailDirection:  s.TailCutDirection,
		TailBulge:      s.TailControlPointLengthMultiplier,
		SpecialCurving: s.SliderMidAnchorMode,
	}
}

type obstacleShape struct {
	y      int
	height float64
}

// obstacleGeometry gives the vertical placement implied by a legacy obstacle kind.
var obstacleGeometry = map[schema.OldObstacleKind]obstacleShape{
	schema.OldObstacleKindFull:   {y: 0, height: 5.0},
	schema.OldObstacleKindCrouch: {y: 2, height: 2.0},
}

// ObstacleGeometry returns the y position and height of a legacy obstacle kind.
func ObstacleGeometry(kind schema.OldObstacleKind) (y int, height float64, ok bool) {
	shape, ok := obstacleGeometry[kind]

	return shape.y, shape.height, ok
}

func oldObstacle(o *schema.OldObstacle) Event {
	shape, ok := obstacleGeometry[o.Type]
	if !ok {
		panic("beatmap: unknown obstacle kind " + o.Type.String())
	}

	return &Obstacle{
		Beat:     o.Time,
		X:        int(o.LineIndex),
		Y:        shape.y,
		Duration: o.Duration,
		Width:    o.Width,
		Height:   shape.height,
	}
}

func oldEvent(e *schema.OldEvent) Event {
	return &BasicEvent{
		Beat:       e.Time,
		Type:       int(e.Type),
		Value:      int(e.Value),
		FloatValue: clonePtr(e.FloatValue),
		CustomData: maps.Clone(e.CustomData),
	}
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}

	v := *p

	return &v
}
