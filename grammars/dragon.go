package grammars

import (
	"math"

	"github.com/gogpu/gg"

	"github.com/viktordanov/lturtle/render"
	"github.com/viktordanov/lturtle/turtle"
)

type DragonKind uint8

const (
	DragonForward DragonKind = iota
	DragonRotate
	DragonX
	DragonY
	DragonPush
	DragonPop
)

// DragonSymbol is a symbol of the Heighway dragon. Angle is only set for
// DragonRotate.
type DragonSymbol struct {
	Kind  DragonKind
	Angle float64
}

var (
	dragonForward = DragonSymbol{Kind: DragonForward}
	dragonX       = DragonSymbol{Kind: DragonX}
	dragonY       = DragonSymbol{Kind: DragonY}
	dragonLeft    = DragonSymbol{Kind: DragonRotate, Angle: math.Pi / 2}
	dragonRight   = DragonSymbol{Kind: DragonRotate, Angle: -math.Pi / 2}
)

// DragonAxiom is [Push, Forward, X, Pop].
var DragonAxiom = []DragonSymbol{{Kind: DragonPush}, dragonForward, dragonX, {Kind: DragonPop}}

var (
	dragonXRule = []DragonSymbol{dragonX, dragonLeft, dragonY, dragonForward}
	dragonYRule = []DragonSymbol{dragonForward, dragonX, dragonRight, dragonY}
)

// ProduceDragon rewrites X -> X +90 Y F and Y -> F X -90 Y.
func ProduceDragon(s DragonSymbol) []DragonSymbol {
	switch s.Kind {
	case DragonX:
		return dragonXRule
	case DragonY:
		return dragonYRule
	default:
		return []DragonSymbol{s}
	}
}

func DragonAction(s DragonSymbol) []turtle.Action {
	switch s.Kind {
	case DragonForward:
		return []turtle.Action{turtle.Move(3)}
	case DragonRotate:
		return []turtle.Action{turtle.Rotate(s.Angle)}
	case DragonPush:
		return []turtle.Action{turtle.Push()}
	case DragonPop:
		return []turtle.Action{turtle.Pop()}
	default:
		return nil
	}
}

func Dragon() Figure {
	return NewFigure(Template[DragonSymbol]{
		Name: "dragon",
		Defaults: Defaults{
			Depth:     15,
			Color:     gg.White,
			Thickness: 3,
			Render: render.Options{
				Width:      1000,
				Height:     1000,
				Background: gg.Black,
				Viewport: turtle.Viewport{
					Scale:  turtle.Vec2{X: 1, Y: 1},
					Origin: turtle.Vec2{X: 300, Y: 700},
				},
			},
			Gradient: []turtle.Color{Yellow, Red},
		},
		Action:  DragonAction,
		Prelude: []turtle.Action{turtle.SetThickness(1)},
	}, DragonAxiom, ProduceDragon)
}
