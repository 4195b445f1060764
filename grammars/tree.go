package grammars

import (
	"math"

	"github.com/gogpu/gg"

	lsystem "github.com/viktordanov/lturtle"
	"github.com/viktordanov/lturtle/render"
	"github.com/viktordanov/lturtle/turtle"
)

type TreeKind uint8

const (
	TreeLeaf TreeKind = iota
	TreeRotate
	TreeOldWood
	TreeNewWood
	TreePush
	TreePop
)

type TreeSymbol struct {
	Kind  TreeKind
	Angle float64
}

var (
	treeLeaf  = TreeSymbol{Kind: TreeLeaf}
	treeNew   = TreeSymbol{Kind: TreeNewWood}
	treeOld   = TreeSymbol{Kind: TreeOldWood}
	treePush  = TreeSymbol{Kind: TreePush}
	treePop   = TreeSymbol{Kind: TreePop}
	treeLeft  = TreeSymbol{Kind: TreeRotate, Angle: math.Pi / 6}
	treeRight = TreeSymbol{Kind: TreeRotate, Angle: -math.Pi / 6}
)

// TreeLeafRules splits a leaf in two branches (0.7) or three (0.3).
var TreeLeafRules = lsystem.MustRuleSet([]float64{0.7, 0.3},
	[]TreeSymbol{treePush, treeNew, treePush, treeLeft, treeLeaf, treePop, treeRight, treeLeaf, treePop},
	[]TreeSymbol{
		treePush, treeNew, treePush, treeLeft, treeLeaf, treePop,
		treePush, treeLeaf, treePop, treeRight, treeLeaf, treePop,
	},
)

var treeNewWoodRule = []TreeSymbol{treeOld, treeNew}

func ProduceTree(s TreeSymbol, r float64) []TreeSymbol {
	switch s.Kind {
	case TreeLeaf:
		return TreeLeafRules.Choose(r)
	case TreeNewWood:
		return treeNewWoodRule
	default:
		return []TreeSymbol{s}
	}
}

func TreeAction(s TreeSymbol) []turtle.Action {
	switch s.Kind {
	case TreeLeaf:
		return []turtle.Action{turtle.SetColor(Lime), turtle.Move(20)}
	case TreeNewWood:
		return []turtle.Action{turtle.SetColor(Brown), turtle.Move(20)}
	case TreeOldWood:
		return []turtle.Action{turtle.SetColor(gg.Black), turtle.Move(20)}
	case TreeRotate:
		return []turtle.Action{turtle.Rotate(s.Angle)}
	case TreePush:
		return []turtle.Action{turtle.Push()}
	case TreePop:
		return []turtle.Action{turtle.Pop()}
	default:
		return nil
	}
}

func Tree() Figure {
	return NewStochasticFigure(Template[TreeSymbol]{
		Name: "tree",
		Defaults: Defaults{
			Depth:     10,
			Color:     gg.White,
			Thickness: 3,
			Render: render.Options{
				Width:      1000,
				Height:     1000,
				Background: gg.White,
				Viewport: turtle.Viewport{
					Scale:  turtle.Vec2{X: 0.5, Y: 0.5},
					Origin: turtle.Vec2{X: 500, Y: 700},
				},
			},
		},
		Action: TreeAction,
	}, []TreeSymbol{treeLeaf}, ProduceTree)
}
