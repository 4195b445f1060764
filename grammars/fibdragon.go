package grammars

import (
	"math"

	"github.com/gogpu/gg"

	"github.com/viktordanov/lturtle/render"
	"github.com/viktordanov/lturtle/turtle"
)

type FibKind uint8

const (
	FibLineF FibKind = iota
	FibLineB
	FibRotate
)

// FibSymbol carries a line length for FibLineF and FibLineB and an angle
// for FibRotate.
type FibSymbol struct {
	Kind  FibKind
	Value float64
}

// Angles and ratios of the golden dragon.
const (
	fibTheta1 = 0.82006
	fibTheta2 = 0.57411
	fibM1     = 0.5516670817897428991373945094665101561710649903290951692334613572
	fibM2     = 0.7427429446246816413695660476057885141497552527069779641441434078
)

func ProduceFibDragon(s FibSymbol) []FibSymbol {
	l := s.Value
	switch s.Kind {
	case FibLineF:
		return []FibSymbol{
			{FibRotate, -fibTheta1},
			{FibLineB, l * fibM1},
			{FibRotate, fibTheta1 + fibTheta2},
			{FibLineF, l * fibM2},
			{FibRotate, -fibTheta2},
		}
	case FibLineB:
		return []FibSymbol{
			{FibRotate, fibTheta2},
			{FibLineB, l * fibM2},
			{FibRotate, -(fibTheta1 + fibTheta2)},
			{FibLineF, l * fibM1},
			{FibRotate, fibTheta1},
		}
	default:
		return []FibSymbol{s}
	}
}

func FibDragonAction(s FibSymbol) []turtle.Action {
	if s.Kind == FibRotate {
		return []turtle.Action{turtle.Rotate(s.Value)}
	}
	return []turtle.Action{turtle.Move(s.Value)}
}

func FibDragon() Figure {
	return NewFigure(Template[FibSymbol]{
		Name: "fibdragon",
		Defaults: Defaults{
			Depth:     17,
			Color:     gg.White,
			Thickness: 3,
			Render: render.Options{
				Width:      1000,
				Height:     1000,
				Background: gg.Black,
				Viewport: turtle.Viewport{
					Scale:  turtle.Vec2{X: 1, Y: 1},
					Origin: turtle.Vec2{X: 800, Y: 850},
				},
			},
			Gradient: []turtle.Color{Red, Blue},
		},
		Action:   FibDragonAction,
		Prelude:  []turtle.Action{turtle.Push(), turtle.SetThickness(1), turtle.Rotate(math.Pi / 4)},
		Epilogue: []turtle.Action{turtle.Pop()},
	}, []FibSymbol{{FibLineF, 550 * math.Sqrt2}}, ProduceFibDragon)
}
