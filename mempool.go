package lsystem

// BufferPool is a pair of generation buffers. The active buffer holds the
// generation being read while the other one receives the next generation;
// Swap exchanges their roles so both backing arrays are reused.
type BufferPool[S any] struct {
	active   []S
	inactive []S

	// limit caps the length of the writing buffer, 0 means unbounded.
	limit int
}

func NewBufferPool[S any](capacity, limit int) *BufferPool[S] {
	if limit > 0 && capacity > limit {
		capacity = limit
	}
	return &BufferPool[S]{
		active:   make([]S, 0, capacity),
		inactive: make([]S, 0, capacity),
		limit:    limit,
	}
}

// Reset loads a copy of seed as the active generation.
func (m *BufferPool[S]) Reset(seed []S) {
	m.active = append(m.active[:0], seed...)
	m.inactive = m.inactive[:0]
}

func (m *BufferPool[S]) Active() []S {
	return m.active
}

// Len returns the length written so far into the next generation.
func (m *BufferPool[S]) Len() int {
	return len(m.inactive)
}

func (m *BufferPool[S]) Limit() int {
	return m.limit
}

// AppendSlice writes symbols into the next generation. It reports false,
// leaving the buffer untouched, when that would exceed the limit.
func (m *BufferPool[S]) AppendSlice(symbols []S) bool {
	n := len(m.inactive) + len(symbols)
	if m.limit > 0 && n > m.limit {
		return false
	}
	if n > cap(m.inactive) {
		m.Grow(n)
	}
	m.inactive = append(m.inactive, symbols...)
	return true
}

// Grow doubles the writing buffer until it holds at least n symbols,
// never past the limit.
func (m *BufferPool[S]) Grow(n int) {
	newCap := max(cap(m.inactive)*2, 16)
	for newCap < n {
		newCap *= 2
	}
	if m.limit > 0 && newCap > m.limit {
		newCap = m.limit
	}
	grown := make([]S, len(m.inactive), newCap)
	copy(grown, m.inactive)
	m.inactive = grown
}

func (m *BufferPool[S]) Swap() {
	m.active, m.inactive = m.inactive, m.active[:0]
}

func (m *BufferPool[S]) ResetWritingHead() {
	m.inactive = m.inactive[:0]
}
