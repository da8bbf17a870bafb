package queue

import (
	"errors"
	"slices"
)

var ErrEmptyQueue = errors.New("queue is empty")

// Queue is a first-in first-out queue backed by a slice.
type Queue[T any] struct {
	elements []T
}

func New[T any]() *Queue[T] {
	return &Queue[T]{}
}

func (me *Queue[T]) Enqueue(value T) {
	me.elements = append(me.elements, value)
}

func (me *Queue[T]) Dequeue() (out T, _ error) {
	if len(me.elements) == 0 {
		return out, ErrEmptyQueue
	}

	out = me.elements[0]
	var zero T
	me.elements[0] = zero
	me.elements = me.elements[1:]
	return out, nil
}

func (me *Queue[T]) Peek() (out T, _ error) {
	if len(me.elements) == 0 {
		return out, ErrEmptyQueue
	}
	return me.elements[0], nil
}

func (me *Queue[T]) Len() int {
	return len(me.elements)
}

func (me *Queue[T]) IsEmpty() bool {
	return len(me.elements) == 0
}

func (me *Queue[T]) Clone() *Queue[T] {
	return &Queue[T]{elements: slices.Clone(me.elements)}
}
