package nodepool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	p := New[int](6)
	assert.Equal(t, 6, p.Capacity())
	assert.Equal(t, 6, p.Size())
	assert.False(t, p.IsEmpty())
}

func TestNewPanicsOnNonPositiveCapacity(t *testing.T) {
	assert.Panics(t, func() { New[int](0) })
	assert.Panics(t, func() { New[int](-1) })
}

func TestPopUntilExhausted(t *testing.T) {
	p := New[int](2)

	h1, err := p.Pop()
	require.NoError(t, err)
	h2, err := p.Pop()
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)
	assert.True(t, p.IsEmpty())

	_, err = p.Pop()
	assert.ErrorIs(t, err, ErrPoolExhausted)
}

func TestPushReturnsHandleForReuse(t *testing.T) {
	p := New[string](1)

	h, err := p.Pop()
	require.NoError(t, err)
	p.At(h).Key = "hello"
	p.At(h).Next = None

	require.NoError(t, p.Push(h))
	assert.Equal(t, 1, p.Size())

	h2, err := p.Pop()
	require.NoError(t, err)
	assert.Equal(t, h, h2)
}

func TestPushDetectsDoubleFree(t *testing.T) {
	p := New[int](1)
	h, err := p.Pop()
	require.NoError(t, err)
	require.NoError(t, p.Push(h))

	err = p.Push(h)
	assert.ErrorIs(t, err, ErrDoubleFree)
}

func TestAtMutatesArenaCell(t *testing.T) {
	p := New[int](3)
	h, err := p.Pop()
	require.NoError(t, err)

	p.At(h).Key = 42
	p.At(h).Next = None

	assert.Equal(t, 42, p.At(h).Key)
	assert.Equal(t, None, p.At(h).Next)
}
