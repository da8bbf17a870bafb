package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueue(t *testing.T) {
	t.Parallel()

	q := New[string]()
	assert.True(t, q.IsEmpty())

	_, err := q.Dequeue()
	assert.ErrorIs(t, err, ErrEmptyQueue)
	_, err = q.Peek()
	assert.ErrorIs(t, err, ErrEmptyQueue)

	q.Enqueue("a")
	q.Enqueue("b")
	q.Enqueue("c")
	assert.Equal(t, 3, q.Len())

	head, err := q.Peek()
	require.NoError(t, err)
	assert.Equal(t, "a", head)
	assert.Equal(t, 3, q.Len())

	for _, want := range []string{"a", "b", "c"} {
		got, err := q.Dequeue()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	assert.True(t, q.IsEmpty())
}

func TestQueue_Clone(t *testing.T) {
	t.Parallel()

	q := New[int]()
	q.Enqueue(1)
	q.Enqueue(2)

	clone := q.Clone()
	_, err := q.Dequeue()
	require.NoError(t, err)
	q.Enqueue(3)

	assert.Equal(t, 2, clone.Len())
	head, err := clone.Peek()
	require.NoError(t, err)
	assert.Equal(t, 1, head)
}
