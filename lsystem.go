package lsystem

// ProductionFunc maps one symbol to its replacement for one generation.
// It must be pure: the result may depend on the symbol only.
type ProductionFunc[S any] func(S) []S

// Identity is the production of symbols without a declared rule.
func Identity[S any](s S) []S {
	return []S{s}
}

// Rules is a table of deterministic productions. Symbols missing from the
// table reproduce themselves.
type Rules[S comparable] map[S][]S

func (r Rules[S]) Produce(s S) []S {
	if successor, ok := r[s]; ok {
		return successor
	}
	return []S{s}
}

// LSystem is a deterministic, context-free rewriting system over the
// alphabet S.
type LSystem[S any] struct {
	axiom   []S
	produce ProductionFunc[S]
	opts    options
}

// New returns an engine for the given axiom. The axiom is copied.
func New[S any](axiom []S, produce ProductionFunc[S], opts ...Option) *LSystem[S] {
	if produce == nil {
		produce = Identity[S]
	}
	return &LSystem[S]{
		axiom:   append([]S(nil), axiom...),
		produce: produce,
		opts:    applyOptions(opts),
	}
}

// Axiom returns a copy of the initial sequence.
func (l *LSystem[S]) Axiom() []S {
	return append([]S(nil), l.axiom...)
}

// Iterate rewrites a copy of the axiom depth times. Every generation
// replaces each symbol by its production, in order. The result is a pure
// function of the axiom and depth.
func (l *LSystem[S]) Iterate(depth int) ([]S, error) {
	return l.run(depth, nil)
}

// Walk calls visit with every generation, from the axiom (generation 0) up
// to depth. The sequence handed to visit is only valid during the call.
func (l *LSystem[S]) Walk(depth int, visit func(generation int, sequence []S)) error {
	_, err := l.run(depth, visit)
	return err
}

func (l *LSystem[S]) run(depth int, visit func(int, []S)) ([]S, error) {
	if err := l.opts.checkDepth(depth); err != nil {
		return nil, err
	}
	if err := l.opts.checkAxiom(len(l.axiom)); err != nil {
		return nil, err
	}

	pool := NewBufferPool[S](len(l.axiom)*4, l.opts.maxLength)
	pool.Reset(l.axiom)
	if visit != nil {
		visit(0, pool.Active())
	}
	for gen := 1; gen <= depth; gen++ {
		if err := l.rewrite(pool, gen); err != nil {
			return nil, err
		}
		Logger().Debug("lsystem: generation", "generation", gen, "length", len(pool.Active()))
		if visit != nil {
			visit(gen, pool.Active())
		}
	}
	return pool.Active(), nil
}

// Step applies a single generation to input, which is left untouched.
func (l *LSystem[S]) Step(input []S) ([]S, error) {
	pool := NewBufferPool[S](len(input)*4, l.opts.maxLength)
	pool.Reset(input)
	if err := l.rewrite(pool, 1); err != nil {
		return nil, err
	}
	return pool.Active(), nil
}

func (l *LSystem[S]) rewrite(pool *BufferPool[S], generation int) error {
	pool.ResetWritingHead()
	for _, s := range pool.Active() {
		successor := l.produce(s)
		if !pool.AppendSlice(successor) {
			return tooLong(pool, generation, pool.Len()+len(successor))
		}
	}
	pool.Swap()
	return nil
}
