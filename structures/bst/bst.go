// Package bst implements an unbalanced binary search tree holding unique values.
package bst

import (
	"cmp"
	"iter"
)

type treeNode[T any] struct {
	value T
	left  *treeNode[T]
	right *treeNode[T]
}

type Tree[T any] struct {
	compare func(a, b T) int
	root    *treeNode[T]
	size    int
}

func New[T cmp.Ordered]() *Tree[T] {
	return NewFunc(cmp.Compare[T])
}

// NewFunc returns a tree ordered by compare, which returns a negative number
// when a < b, zero when they are equal and a positive number otherwise.
func NewFunc[T any](compare func(a, b T) int) *Tree[T] {
	return &Tree[T]{compare: compare}
}

func (me *Tree[T]) Len() int {
	return me.size
}

// Insert adds value to the tree. It returns false and leaves the tree unchanged
// if an equal value is already present.
func (me *Tree[T]) Insert(value T) bool {
	link := &me.root
	for *link != nil {
		c := me.compare(value, (*link).value)
		switch {
		case c == 0:
			return false
		case c > 0:
			link = &(*link).right
		default:
			link = &(*link).left
		}
	}

	*link = &treeNode[T]{value: value}
	me.size++
	return true
}

func (me *Tree[T]) Contains(value T) bool {
	cur := me.root
	for cur != nil {
		c := me.compare(value, cur.value)
		switch {
		case c == 0:
			return true
		case c > 0:
			cur = cur.right
		default:
			cur = cur.left
		}
	}
	return false
}

// All yields the values in ascending order.
func (me *Tree[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		var stack []*treeNode[T]
		cur := me.root
		for cur != nil || len(stack) > 0 {
			for cur != nil {
				stack = append(stack, cur)
				cur = cur.left
			}
			cur = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(cur.value) {
				return
			}
			cur = cur.right
		}
	}
}
