// Package grammars holds ready-made figures: each couples a grammar with
// its action mapping and the framing it was designed for.
package grammars

import (
	"sort"
	"sync"

	"github.com/pkg/errors"

	lsystem "github.com/viktordanov/lturtle"
	"github.com/viktordanov/lturtle/render"
	"github.com/viktordanov/lturtle/turtle"
)

// Defaults is how a figure is drawn when the caller does not say otherwise.
type Defaults struct {
	Depth     int
	Color     turtle.Color
	Thickness float64
	Render    render.Options

	// Fit reframes the drawing to the surface, ignoring Render.Viewport.
	Fit    bool
	Margin float64

	// Gradient, when it holds two colours, recolours the path from the
	// first to the second.
	Gradient []turtle.Color
}

// Figure expands a grammar and maps it to turtle actions.
type Figure interface {
	Name() string
	Defaults() Defaults
	// Generate returns the actions for depth generations. Deterministic
	// figures ignore seed.
	Generate(depth int, seed uint64, opts ...lsystem.Option) ([]turtle.Action, error)
	// Analyse measures the growth of the grammar up to depth. Stochastic
	// figures average samples runs seeded from seed onwards; deterministic
	// ones run once.
	Analyse(depth, samples int, seed uint64, opts ...lsystem.Option) (lsystem.ProductionRate, error)
}

type expandFunc[S any] func(depth int, seed uint64, opts []lsystem.Option) ([]S, error)

type analyseFunc func(name string, depth, samples int, seed uint64, opts []lsystem.Option) (lsystem.ProductionRate, error)

type figure[S any] struct {
	name     string
	defaults Defaults
	expand   expandFunc[S]
	analyse  analyseFunc
	action   turtle.ActionFunc[S]
	prelude  []turtle.Action
	epilogue []turtle.Action
}

// Template gathers the pieces of a figure besides its engine.
type Template[S any] struct {
	Name     string
	Defaults Defaults
	Action   turtle.ActionFunc[S]
	// Prelude and Epilogue wrap the mapped actions.
	Prelude  []turtle.Action
	Epilogue []turtle.Action
}

// NewFigure builds a figure over a deterministic axiom and production.
func NewFigure[S any](tmpl Template[S], axiom []S, produce lsystem.ProductionFunc[S]) Figure {
	return tmpl.build(
		func(depth int, _ uint64, opts []lsystem.Option) ([]S, error) {
			return lsystem.New(axiom, produce, opts...).Iterate(depth)
		},
		func(name string, depth, _ int, _ uint64, opts []lsystem.Option) (lsystem.ProductionRate, error) {
			return lsystem.New(axiom, produce, opts...).AnalyseProductionRate(name, depth)
		},
	)
}

// NewStochasticFigure builds a figure whose productions draw random values.
func NewStochasticFigure[S any](tmpl Template[S], axiom []S, produce lsystem.StochasticFunc[S]) Figure {
	return tmpl.build(
		func(depth int, seed uint64, opts []lsystem.Option) ([]S, error) {
			return lsystem.NewStochastic(axiom, produce, opts...).IterateSeed(depth, seed)
		},
		func(name string, depth, samples int, seed uint64, opts []lsystem.Option) (lsystem.ProductionRate, error) {
			return lsystem.NewStochastic(axiom, produce, opts...).AnalyseProductionRate(name, depth, samples, seed)
		},
	)
}

func (tmpl Template[S]) build(expand expandFunc[S], analyse analyseFunc) Figure {
	return &figure[S]{
		name:     tmpl.Name,
		defaults: tmpl.Defaults,
		expand:   expand,
		analyse:  analyse,
		action:   tmpl.Action,
		prelude:  tmpl.Prelude,
		epilogue: tmpl.Epilogue,
	}
}

func (f *figure[S]) Name() string { return f.name }

func (f *figure[S]) Defaults() Defaults { return f.defaults }

func (f *figure[S]) Analyse(depth, samples int, seed uint64, opts ...lsystem.Option) (lsystem.ProductionRate, error) {
	return f.analyse(f.name, depth, samples, seed, opts)
}

func (f *figure[S]) Generate(depth int, seed uint64, opts ...lsystem.Option) ([]turtle.Action, error) {
	symbols, err := f.expand(depth, seed, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "%s: depth %d", f.name, depth)
	}

	actions := make([]turtle.Action, 0, len(f.prelude)+len(symbols)+len(f.epilogue))
	actions = append(actions, f.prelude...)
	actions = append(actions, turtle.Actions(symbols, f.action)...)
	actions = append(actions, f.epilogue...)

	if g := f.defaults.Gradient; len(g) == 2 {
		actions = turtle.Gradient(actions, g[0], g[1])
	}
	return actions, nil
}

var (
	registryMu sync.RWMutex
	registry   = map[string]Figure{}
)

// Register makes a figure available to Lookup. Registering a name twice
// replaces the earlier figure.
func Register(f Figure) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[f.Name()] = f
}

func Lookup(name string) (Figure, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	f, ok := registry[name]
	return f, ok
}

// Names lists the registered figures in lexical order.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	Register(Dragon())
	Register(Hilbert())
	Register(FibDragon())
	Register(Tree())
}
