// Package stack implements a last-in first-out stack on top of two FIFO
// queues. Pop costs O(n): every element but the newest is rotated into the
// spare queue before the newest is dequeued.
package stack

import (
	"errors"

	"github.com/navijation/njalgo/structures/queue"
)

var ErrEmptyStack = errors.New("stack is empty")

type Stack[T any] struct {
	primary *queue.Queue[T]
	spare   *queue.Queue[T]
}

func New[T any]() *Stack[T] {
	return &Stack[T]{
		primary: queue.New[T](),
		spare:   queue.New[T](),
	}
}

func (me *Stack[T]) Push(value T) {
	me.primary.Enqueue(value)
}

func (me *Stack[T]) Pop() (out T, _ error) {
	if me.primary.IsEmpty() {
		return out, ErrEmptyStack
	}

	for me.primary.Len() > 1 {
		value, err := me.primary.Dequeue()
		if err != nil {
			return out, err
		}
		me.spare.Enqueue(value)
	}

	out, err := me.primary.Dequeue()
	if err != nil {
		return out, err
	}

	me.primary, me.spare = me.spare, me.primary
	return out, nil
}

func (me *Stack[T]) Len() int {
	return me.primary.Len()
}

func (me *Stack[T]) IsEmpty() bool {
	return me.primary.IsEmpty()
}
