package turtle

import (
	"math"

	"github.com/pkg/errors"
)

// ErrStackUnderflow is returned when a pop finds no saved pose. A grammar
// that pairs every push with a pop never triggers it.
var ErrStackUnderflow = errors.New("turtle: pop with an empty pose stack")

type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

func (v Vec2) Scale(k float64) Vec2 { return Vec2{v.X * k, v.Y * k} }

// Pose is the complete state of the turtle at one instant.
type Pose struct {
	Position  Vec2
	Heading   float64 // radians in [0, 2π)
	Color     Color
	Thickness float64
	PenDown   bool
}

// Segment is a stroke emitted by a move with the pen down, styled with the
// pose at the time of the move.
type Segment struct {
	Start, End Vec2
	Color      Color
	Thickness  float64
}

// InitialPose is the pose of a fresh turtle: at the origin, heading up,
// pen down.
func InitialPose(color Color, thickness float64) Pose {
	return Pose{
		Heading:   math.Pi / 2,
		Color:     color,
		Thickness: thickness,
		PenDown:   true,
	}
}

// Turtle interprets actions one at a time. It owns its pose and a stack of
// saved poses; saved poses are copies.
type Turtle struct {
	initial Pose
	pose    Pose
	stack   []Pose
}

func New(color Color, thickness float64) *Turtle {
	p := InitialPose(color, thickness)
	return &Turtle{initial: p, pose: p}
}

// Pose returns the current pose.
func (t *Turtle) Pose() Pose {
	return t.pose
}

// Depth returns the number of saved poses.
func (t *Turtle) Depth() int {
	return len(t.stack)
}

// Reset restores the initial pose and empties the stack.
func (t *Turtle) Reset() {
	t.pose = t.initial
	t.stack = t.stack[:0]
}

// Step consumes one action. The segment is valid only when ok is true.
func (t *Turtle) Step(a Action) (seg Segment, ok bool, err error) {
	switch a.Kind {
	case ActionRaisePen:
		t.pose.PenDown = false
	case ActionLowerPen:
		t.pose.PenDown = true
	case ActionRotate:
		t.pose.Heading = normalize(t.pose.Heading + a.Value)
	case ActionSetColor:
		t.pose.Color = a.Color
	case ActionSetThickness:
		t.pose.Thickness = a.Value
	case ActionMove:
		start := t.pose.Position
		end := start.Add(Vec2{math.Cos(t.pose.Heading), math.Sin(t.pose.Heading)}.Scale(a.Value))
		t.pose.Position = end
		if t.pose.PenDown {
			return Segment{Start: start, End: end, Color: t.pose.Color, Thickness: t.pose.Thickness}, true, nil
		}
	case ActionPush:
		t.stack = append(t.stack, t.pose)
	case ActionPop:
		if len(t.stack) == 0 {
			return Segment{}, false, ErrStackUnderflow
		}
		t.pose = t.stack[len(t.stack)-1]
		t.stack = t.stack[:len(t.stack)-1]
	default:
		return Segment{}, false, errors.Errorf("turtle: unknown action %v", a.Kind)
	}
	return Segment{}, false, nil
}

// Run consumes actions in order and returns the emitted segments. It stops
// at the first failing action.
func (t *Turtle) Run(actions []Action) ([]Segment, error) {
	var segments []Segment
	for i, a := range actions {
		seg, ok, err := t.Step(a)
		if err != nil {
			return segments, errors.Wrapf(err, "action %d (%v)", i, a)
		}
		if ok {
			segments = append(segments, seg)
		}
	}
	return segments, nil
}

// Trace interprets actions with a fresh turtle, so replaying the same
// actions always yields the same segments.
func Trace(actions []Action, color Color, thickness float64) ([]Segment, error) {
	return New(color, thickness).Run(actions)
}

// normalize wraps a heading into [0, 2π).
func normalize(heading float64) float64 {
	h := math.Mod(heading, 2*math.Pi)
	if h < 0 {
		h += 2 * math.Pi
	}
	if h >= 2*math.Pi {
		h = 0
	}
	return h
}
