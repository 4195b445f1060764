package lsystem

// Option configures an engine at construction.
type Option func(*options)

type options struct {
	maxLength int
	maxDepth  int
}

// WithMaxLength bounds the length of every generation. A generation that
// would grow past n symbols fails with ErrSequenceTooLong instead of
// allocating further. n <= 0 disables the guard.
func WithMaxLength(n int) Option {
	return func(o *options) {
		o.maxLength = max(n, 0)
	}
}

// WithMaxDepth rejects Iterate calls asking for more than d generations.
// d <= 0 disables the guard.
func WithMaxDepth(d int) Option {
	return func(o *options) {
		o.maxDepth = max(d, 0)
	}
}

func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o options) checkDepth(depth int) error {
	if depth < 0 {
		return ErrNegativeDepth
	}
	if o.maxDepth > 0 && depth > o.maxDepth {
		Logger().Warn("lsystem: depth guard tripped", "depth", depth, "max_depth", o.maxDepth)
		return &ResourceError{Err: ErrDepthExceeded, Generation: depth, Length: depth, Limit: o.maxDepth}
	}
	return nil
}

func (o options) checkAxiom(n int) error {
	if o.maxLength > 0 && n > o.maxLength {
		return &ResourceError{Err: ErrSequenceTooLong, Generation: 0, Length: n, Limit: o.maxLength}
	}
	return nil
}

func tooLong[S any](pool *BufferPool[S], generation, attempted int) error {
	Logger().Warn("lsystem: length guard tripped",
		"generation", generation, "length", attempted, "max_length", pool.Limit())
	return &ResourceError{
		Err:        ErrSequenceTooLong,
		Generation: generation,
		Length:     attempted,
		Limit:      pool.Limit(),
	}
}
