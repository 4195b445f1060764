package turtle

import (
	"fmt"

	"github.com/gogpu/gg"
)

// Color is the pen colour. It is a plain value; the turtle never draws.
type Color = gg.RGBA

type ActionKind uint8

const (
	ActionRaisePen ActionKind = iota
	ActionLowerPen
	ActionRotate
	ActionMove
	ActionSetColor
	ActionSetThickness
	ActionPush
	ActionPop
)

func (k ActionKind) String() string {
	switch k {
	case ActionRaisePen:
		return "penup"
	case ActionLowerPen:
		return "pendown"
	case ActionRotate:
		return "rotate"
	case ActionMove:
		return "move"
	case ActionSetColor:
		return "color"
	case ActionSetThickness:
		return "thickness"
	case ActionPush:
		return "push"
	case ActionPop:
		return "pop"
	default:
		return fmt.Sprintf("ActionKind(%d)", uint8(k))
	}
}

// Action is one instruction for the turtle. Value carries the angle of a
// rotation (radians), the length of a move or the width of a thickness
// change; Color is only meaningful for ActionSetColor.
type Action struct {
	Kind  ActionKind
	Value float64
	Color Color
}

func RaisePen() Action { return Action{Kind: ActionRaisePen} }
func LowerPen() Action { return Action{Kind: ActionLowerPen} }
func Push() Action     { return Action{Kind: ActionPush} }
func Pop() Action      { return Action{Kind: ActionPop} }

// Rotate turns the heading counter-clockwise by angle radians.
func Rotate(angle float64) Action { return Action{Kind: ActionRotate, Value: angle} }

// Move advances along the heading, drawing when the pen is down.
func Move(length float64) Action { return Action{Kind: ActionMove, Value: length} }

func SetColor(c Color) Action { return Action{Kind: ActionSetColor, Color: c} }

func SetThickness(width float64) Action { return Action{Kind: ActionSetThickness, Value: width} }

func (a Action) String() string {
	switch a.Kind {
	case ActionRotate, ActionMove, ActionSetThickness:
		return fmt.Sprintf("%s %g", a.Kind, a.Value)
	case ActionSetColor:
		return fmt.Sprintf("%s rgba(%.3f, %.3f, %.3f, %.3f)", a.Kind, a.Color.R, a.Color.G, a.Color.B, a.Color.A)
	default:
		return a.Kind.String()
	}
}
