// Package config loads grammars described in YAML files.
//
//	name: dragon
//	axiom: "[ F X ]"
//	depth: 12
//	rules:
//	  X: "X + Y F"
//	  Y: "F X - Y"
//	actions:
//	  F: ["move 3"]
//	  "+": ["rotate pi / 2"]
//	  "-": ["rotate -pi / 2"]
//	  "[": [push]
//	  "]": [pop]
package config

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	lsystem "github.com/viktordanov/lturtle"
	"github.com/viktordanov/lturtle/grammars"
	"github.com/viktordanov/lturtle/render"
	"github.com/viktordanov/lturtle/turtle"
)

type File struct {
	Name      string              `yaml:"name"`
	Axiom     string              `yaml:"axiom"`
	Depth     int                 `yaml:"depth"`
	Seed      *uint64             `yaml:"seed"`
	MaxLength int                 `yaml:"max_length"`
	Rules     map[string]string   `yaml:"rules"`
	Actions   map[string][]string `yaml:"actions"`
	Turtle    TurtleConfig        `yaml:"turtle"`
	Render    RenderConfig        `yaml:"render"`
	Gradient  []string            `yaml:"gradient"`
}

type TurtleConfig struct {
	Color     string  `yaml:"color"`
	Thickness float64 `yaml:"thickness"`
}

type RenderConfig struct {
	Width      int       `yaml:"width"`
	Height     int       `yaml:"height"`
	Background string    `yaml:"background"`
	Scale      []float64 `yaml:"scale"`
	Origin     []float64 `yaml:"origin"`
	Fit        bool      `yaml:"fit"`
	Margin     float64   `yaml:"margin"`
}

// Default returns the values used for keys a file leaves out.
func Default() File {
	return File{
		Name:  "grammar",
		Depth: 4,
		Turtle: TurtleConfig{
			Color:     "#ffffff",
			Thickness: 3,
		},
		Render: RenderConfig{
			Width:      1000,
			Height:     1000,
			Background: "#000000",
			Scale:      []float64{1, 1},
			Origin:     []float64{500, 500},
			Margin:     20,
		},
	}
}

// Load reads and validates the grammar file at path.
func Load(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening grammar file")
	}
	defer f.Close()

	file, err := Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", path)
	}
	return file, nil
}

// Parse decodes a grammar document over Default. Unknown keys are errors.
func Parse(r io.Reader) (*File, error) {
	file := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, errors.Wrap(err, "decoding grammar")
	}
	if err := file.Validate(); err != nil {
		return nil, err
	}
	return &file, nil
}

// Validate checks everything that does not need the grammar to run.
func (f *File) Validate() error {
	if len(lsystem.ParseState(f.Axiom)) == 0 {
		return errors.New("axiom is empty")
	}
	if f.Depth < 0 {
		return errors.Errorf("depth %d is negative", f.Depth)
	}
	if f.MaxLength < 0 {
		return errors.Errorf("max_length %d is negative", f.MaxLength)
	}
	if len(f.Render.Scale) != 2 {
		return errors.Errorf("render.scale needs 2 values, got %d", len(f.Render.Scale))
	}
	if len(f.Render.Origin) != 2 {
		return errors.Errorf("render.origin needs 2 values, got %d", len(f.Render.Origin))
	}
	if f.Render.Width <= 0 || f.Render.Height <= 0 {
		return errors.Errorf("render surface %dx%d is empty", f.Render.Width, f.Render.Height)
	}
	if len(f.Gradient) != 0 && len(f.Gradient) != 2 {
		return errors.Errorf("gradient needs 2 colours, got %d", len(f.Gradient))
	}
	if _, _, err := f.Grammar(); err != nil {
		return err
	}
	if _, err := f.ActionTable(); err != nil {
		return err
	}
	_, err := f.defaults()
	return err
}

// Grammar parses the rules and the axiom.
func (f *File) Grammar() (*lsystem.Grammar, []lsystem.Token, error) {
	rules := make(map[lsystem.Token]string, len(f.Rules))
	for k, v := range f.Rules {
		rules[lsystem.Token(k)] = v
	}
	g, err := lsystem.ParseRules(rules)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "grammar %s", f.Name)
	}
	return g, lsystem.ParseState(f.Axiom), nil
}

// ActionTable parses the action lists keyed by token.
func (f *File) ActionTable() (map[lsystem.Token][]turtle.Action, error) {
	table := make(map[lsystem.Token][]turtle.Action, len(f.Actions))
	for token, list := range f.Actions {
		actions := make([]turtle.Action, 0, len(list))
		for i, s := range list {
			a, err := ParseAction(s)
			if err != nil {
				return nil, errors.Wrapf(err, "action %d of %q", i, token)
			}
			actions = append(actions, a)
		}
		table[lsystem.Token(token)] = actions
	}
	return table, nil
}

func (f *File) defaults() (grammars.Defaults, error) {
	color, err := parseColor(f.Turtle.Color)
	if err != nil {
		return grammars.Defaults{}, errors.Wrap(err, "turtle.color")
	}
	background, err := parseColor(f.Render.Background)
	if err != nil {
		return grammars.Defaults{}, errors.Wrap(err, "render.background")
	}
	var gradient []turtle.Color
	for i, s := range f.Gradient {
		c, err := parseColor(s)
		if err != nil {
			return grammars.Defaults{}, errors.Wrapf(err, "gradient %d", i)
		}
		gradient = append(gradient, c)
	}

	return grammars.Defaults{
		Depth:     f.Depth,
		Color:     color,
		Thickness: f.Turtle.Thickness,
		Render: render.Options{
			Width:      f.Render.Width,
			Height:     f.Render.Height,
			Background: background,
			Viewport: turtle.Viewport{
				Scale:  turtle.Vec2{X: f.Render.Scale[0], Y: f.Render.Scale[1]},
				Origin: turtle.Vec2{X: f.Render.Origin[0], Y: f.Render.Origin[1]},
			},
		},
		Fit:      f.Render.Fit,
		Margin:   f.Render.Margin,
		Gradient: gradient,
	}, nil
}

// Figure couples the parsed grammar with its action table. Grammars with a
// weighted rule expand stochastically. Tokens without actions draw nothing.
func (f *File) Figure() (grammars.Figure, error) {
	g, axiom, err := f.Grammar()
	if err != nil {
		return nil, err
	}
	table, err := f.ActionTable()
	if err != nil {
		return nil, err
	}
	defaults, err := f.defaults()
	if err != nil {
		return nil, err
	}

	tmpl := grammars.Template[lsystem.Token]{
		Name:     f.Name,
		Defaults: defaults,
		Action: func(t lsystem.Token) []turtle.Action {
			return table[t]
		},
	}
	if g.Stochastic() {
		return grammars.NewStochasticFigure(tmpl, axiom, g.ProduceStochastic), nil
	}
	return grammars.NewFigure(tmpl, axiom, g.Produce), nil
}
