package stack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func popValue(t *testing.T, s *Stack[int]) int {
	t.Helper()

	v, err := s.Pop()
	require.NoError(t, err)
	return v
}

func TestStack(t *testing.T) {
	t.Parallel()

	s := New[int]()
	_, err := s.Pop()
	assert.ErrorIs(t, err, ErrEmptyStack)

	s.Push(1)
	s.Push(2)
	s.Push(3)
	assert.Equal(t, 3, popValue(t, s))
	assert.Equal(t, 2, popValue(t, s))

	s.Push(4)
	s.Push(5)
	assert.False(t, s.IsEmpty())
	assert.Equal(t, 3, s.Len())

	assert.Equal(t, 5, popValue(t, s))
	assert.Equal(t, 4, popValue(t, s))
	assert.Equal(t, 1, popValue(t, s))

	_, err = s.Pop()
	assert.ErrorIs(t, err, ErrEmptyStack)
	assert.True(t, s.IsEmpty())
}

func TestStack_SpareQueueStaysEmpty(t *testing.T) {
	t.Parallel()

	s := New[int]()
	for v := range 10 {
		s.Push(v)
	}

	for want := 9; want >= 0; want-- {
		assert.Equal(t, want, popValue(t, s))
		assert.True(t, s.spare.IsEmpty())
		assert.Equal(t, want, s.primary.Len())
	}
}
