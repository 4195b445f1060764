package grammars

import (
	"math"

	"github.com/gogpu/gg"

	lsystem "github.com/viktordanov/lturtle"
	"github.com/viktordanov/lturtle/render"
	"github.com/viktordanov/lturtle/turtle"
)

type HilbertSymbol uint8

const (
	HilbertForward HilbertSymbol = iota
	HilbertLeft
	HilbertRight
	HilbertMetaL
	HilbertMetaR
)

// HilbertRules draws the curve from two mirrored meta symbols.
var HilbertRules = lsystem.Rules[HilbertSymbol]{
	HilbertMetaR: {
		HilbertRight, HilbertMetaL, HilbertForward, HilbertLeft, HilbertMetaR, HilbertForward,
		HilbertMetaR, HilbertLeft, HilbertForward, HilbertMetaL, HilbertRight,
	},
	HilbertMetaL: {
		HilbertLeft, HilbertMetaR, HilbertForward, HilbertRight, HilbertMetaL, HilbertForward,
		HilbertMetaL, HilbertRight, HilbertForward, HilbertMetaR, HilbertLeft,
	},
}

func HilbertAction(s HilbertSymbol) []turtle.Action {
	switch s {
	case HilbertForward:
		return []turtle.Action{turtle.Move(3.5)}
	case HilbertLeft:
		return []turtle.Action{turtle.Rotate(math.Pi / 2)}
	case HilbertRight:
		return []turtle.Action{turtle.Rotate(-math.Pi / 2)}
	default:
		return nil
	}
}

func Hilbert() Figure {
	return NewFigure(Template[HilbertSymbol]{
		Name: "hilbert",
		Defaults: Defaults{
			Depth:     8,
			Color:     gg.White,
			Thickness: 3,
			Render: render.Options{
				Width:      1000,
				Height:     1000,
				Background: gg.Black,
				Viewport: turtle.Viewport{
					Scale:  turtle.Vec2{X: 1, Y: 1},
					Origin: turtle.Vec2{X: 50, Y: 950},
				},
			},
			Gradient: []turtle.Color{Red, Blue},
		},
		Action:   HilbertAction,
		Prelude:  []turtle.Action{turtle.SetThickness(1), turtle.Push()},
		Epilogue: []turtle.Action{turtle.Pop()},
	}, []HilbertSymbol{HilbertMetaR}, HilbertRules.Produce)
}
