package config

import (
	"math"
	"strings"
	"testing"

	"github.com/gogpu/gg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	lsystem "github.com/viktordanov/lturtle"
	"github.com/viktordanov/lturtle/turtle"
)

func TestLoadDragon(t *testing.T) {
	file, err := Load("testdata/dragon.yaml")
	require.NoError(t, err)

	assert.Equal(t, "dragon", file.Name)
	assert.Equal(t, 10, file.Depth)
	assert.Nil(t, file.Seed)
	assert.Equal(t, 1000, file.Render.Width)
	assert.Equal(t, []float64{1, 1}, file.Render.Scale)
	assert.Equal(t, []float64{300, 700}, file.Render.Origin)

	fig, err := file.Figure()
	require.NoError(t, err)
	assert.Equal(t, "dragon", fig.Name())
	assert.Equal(t, gg.Black, fig.Defaults().Render.Background)
	assert.Len(t, fig.Defaults().Gradient, 2)

	actions, err := fig.Generate(6, 0)
	require.NoError(t, err)
	segments, err := turtle.Trace(actions, fig.Defaults().Color, fig.Defaults().Thickness)
	require.NoError(t, err)
	assert.Len(t, segments, 64)
}

func TestLoadTreeIsStochastic(t *testing.T) {
	file, err := Load("testdata/tree.yaml")
	require.NoError(t, err)
	require.NotNil(t, file.Seed)
	assert.Equal(t, uint64(42), *file.Seed)

	g, axiom, err := file.Grammar()
	require.NoError(t, err)
	assert.True(t, g.Stochastic())
	assert.Equal(t, []lsystem.Token{"L"}, axiom)

	fig, err := file.Figure()
	require.NoError(t, err)
	first, err := fig.Generate(5, *file.Seed)
	require.NoError(t, err)
	second, err := fig.Generate(5, *file.Seed)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	_, err = turtle.Trace(first, fig.Defaults().Color, fig.Defaults().Thickness)
	assert.NoError(t, err)
	assert.True(t, fig.Defaults().Fit)
	assert.Equal(t, 40.0, fig.Defaults().Margin)
}

func TestLoadPlant(t *testing.T) {
	file, err := Load("testdata/plant.yaml")
	require.NoError(t, err)

	fig, err := file.Figure()
	require.NoError(t, err)
	actions, err := fig.Generate(3, 0)
	require.NoError(t, err)
	_, err = turtle.Trace(actions, fig.Defaults().Color, fig.Defaults().Thickness)
	assert.NoError(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("testdata/missing.yaml")
	assert.Error(t, err)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{name: "unknown key", doc: "axiom: F\ncolour: red\n", want: "colour"},
		{name: "empty axiom", doc: "depth: 2\n", want: "axiom is empty"},
		{name: "negative depth", doc: "axiom: F\ndepth: -1\n", want: "negative"},
		{name: "bad weights", doc: "axiom: F\nrules:\n  F: \"0.5 F; 0.6 G\"\n", want: "probability overflow"},
		{name: "nan weight", doc: "axiom: F\nrules:\n  F: \"NaN F; 1 G\"\n", want: "not a finite number"},
		{name: "bad action", doc: "axiom: F\nactions:\n  F: [\"jump 3\"]\n", want: "unknown action"},
		{name: "bad colour", doc: "axiom: F\nturtle:\n  color: blue\n", want: "turtle.color"},
		{name: "bad scale", doc: "axiom: F\nrender:\n  scale: [1]\n", want: "render.scale"},
		{name: "bad gradient", doc: "axiom: F\ngradient: [\"#fff\"]\n", want: "gradient"},
		{name: "empty surface", doc: "axiom: F\nrender:\n  width: 0\n", want: "surface"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestParseAction(t *testing.T) {
	tests := []struct {
		in   string
		want turtle.Action
	}{
		{in: "move 3", want: turtle.Move(3)},
		{in: "forward 2.5", want: turtle.Move(2.5)},
		{in: "rotate pi / 2", want: turtle.Rotate(math.Pi / 2)},
		{in: "turn -pi/2", want: turtle.Rotate(-math.Pi / 2)},
		{in: "rotate deg(90)", want: turtle.Rotate(math.Pi / 2)},
		{in: "move 550 * sqrt(2)", want: turtle.Move(550 * math.Sqrt2)},
		{in: "thickness 4", want: turtle.SetThickness(4)},
		{in: "color #ff0000", want: turtle.SetColor(gg.Red)},
		{in: "colour #00f", want: turtle.SetColor(gg.Blue)},
		{in: "push", want: turtle.Push()},
		{in: "Pop", want: turtle.Pop()},
		{in: "penup", want: turtle.RaisePen()},
		{in: "pendown", want: turtle.LowerPen()},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAction(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want.Kind, got.Kind)
			assert.InDelta(t, tt.want.Value, got.Value, 1e-9)
			assert.Equal(t, tt.want.Color, got.Color)
		})
	}
}

func TestParseActionErrors(t *testing.T) {
	for _, in := range []string{"", "move", "push 3", "rotate banana(", "move 1 / 0", "color", "color #12", "fly 2"} {
		_, err := ParseAction(in)
		assert.Error(t, err, in)
	}
}
