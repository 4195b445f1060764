package lsystem

import "pgregory.net/rand"

// StochasticFunc maps one symbol to its replacement given a uniform draw r
// in [0, 1). One draw is taken per symbol per generation.
type StochasticFunc[S any] func(s S, r float64) []S

// Stochastic is a context-free rewriting system whose productions may pick
// among weighted alternatives. It holds no random state: every Iterate call
// owns a generator seeded for that call only.
type Stochastic[S any] struct {
	axiom   []S
	produce StochasticFunc[S]
	opts    options
}

func NewStochastic[S any](axiom []S, produce StochasticFunc[S], opts ...Option) *Stochastic[S] {
	if produce == nil {
		produce = func(s S, _ float64) []S { return []S{s} }
	}
	return &Stochastic[S]{
		axiom:   append([]S(nil), axiom...),
		produce: produce,
		opts:    applyOptions(opts),
	}
}

// Axiom returns a copy of the initial sequence.
func (l *Stochastic[S]) Axiom() []S {
	return append([]S(nil), l.axiom...)
}

// Iterate picks a seed and rewrites depth generations with it. The seed is
// returned so the run can be replayed with IterateSeed.
func (l *Stochastic[S]) Iterate(depth int) ([]S, uint64, error) {
	seed := rand.Uint64()
	Logger().Debug("lsystem: chose seed", "seed", seed)
	out, err := l.IterateSeed(depth, seed)
	return out, seed, err
}

// IterateSeed rewrites a copy of the axiom depth times drawing from a
// generator seeded with seed. Equal seeds yield equal sequences on every
// platform.
func (l *Stochastic[S]) IterateSeed(depth int, seed uint64) ([]S, error) {
	return l.run(depth, seed, nil)
}

// WalkSeed calls visit with every generation of the run seeded with seed,
// from the axiom up to depth. The sequence is only valid during the call.
func (l *Stochastic[S]) WalkSeed(depth int, seed uint64, visit func(generation int, sequence []S)) error {
	_, err := l.run(depth, seed, visit)
	return err
}

func (l *Stochastic[S]) run(depth int, seed uint64, visit func(int, []S)) ([]S, error) {
	if err := l.opts.checkDepth(depth); err != nil {
		return nil, err
	}
	if err := l.opts.checkAxiom(len(l.axiom)); err != nil {
		return nil, err
	}

	rng := rand.New(seed)
	pool := NewBufferPool[S](len(l.axiom)*4, l.opts.maxLength)
	pool.Reset(l.axiom)
	if visit != nil {
		visit(0, pool.Active())
	}
	for gen := 1; gen <= depth; gen++ {
		if err := l.rewrite(pool, rng, gen); err != nil {
			return nil, err
		}
		Logger().Debug("lsystem: generation", "generation", gen, "length", len(pool.Active()), "seed", seed)
		if visit != nil {
			visit(gen, pool.Active())
		}
	}
	return pool.Active(), nil
}

// Step applies a single generation to input using draws from rng.
func (l *Stochastic[S]) Step(input []S, rng *rand.Rand) ([]S, error) {
	pool := NewBufferPool[S](len(input)*4, l.opts.maxLength)
	pool.Reset(input)
	if err := l.rewrite(pool, rng, 1); err != nil {
		return nil, err
	}
	return pool.Active(), nil
}

func (l *Stochastic[S]) rewrite(pool *BufferPool[S], rng *rand.Rand, generation int) error {
	pool.ResetWritingHead()
	for _, s := range pool.Active() {
		successor := l.produce(s, rng.Float64())
		if !pool.AppendSlice(successor) {
			return tooLong(pool, generation, pool.Len()+len(successor))
		}
	}
	pool.Swap()
	return nil
}
