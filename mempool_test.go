package lsystem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBufferPoolSwap(t *testing.T) {
	pool := NewBufferPool[int](2, 0)
	seed := []int{1, 2}
	pool.Reset(seed)
	seed[0] = 9

	assert.Equal(t, []int{1, 2}, pool.Active())
	assert.True(t, pool.AppendSlice([]int{3, 4, 5}))
	assert.Equal(t, 3, pool.Len())

	pool.Swap()
	assert.Equal(t, []int{3, 4, 5}, pool.Active())
	assert.Zero(t, pool.Len())
}

func TestBufferPoolLimit(t *testing.T) {
	pool := NewBufferPool[int](16, 4)
	pool.Reset(nil)

	assert.Equal(t, 4, pool.Limit())
	assert.True(t, pool.AppendSlice([]int{1, 2, 3}))
	assert.False(t, pool.AppendSlice([]int{4, 5}))
	assert.Equal(t, 3, pool.Len())
	assert.True(t, pool.AppendSlice([]int{4}))
	assert.Equal(t, 4, pool.Len())
}

func TestBufferPoolGrowCapsAtLimit(t *testing.T) {
	pool := NewBufferPool[int](1, 40)
	pool.Reset(nil)
	pool.Grow(20)

	assert.True(t, pool.AppendSlice(make([]int, 40)))
	assert.Equal(t, 40, pool.Len())
}

func TestBufferPoolResetWritingHead(t *testing.T) {
	pool := NewBufferPool[int](4, 0)
	pool.Reset([]int{1})
	pool.AppendSlice([]int{7, 7})
	pool.ResetWritingHead()

	assert.Zero(t, pool.Len())
	assert.Equal(t, []int{1}, pool.Active())
}
