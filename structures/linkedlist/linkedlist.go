package linkedlist

import (
	"cmp"
	"fmt"
	"iter"
	"strings"

	"github.com/navijation/njalgo/util"
)

type node[T any] struct {
	value T
	next  *node[T]
}

// List is a singly linked list that appends at the tail in constant time.
type List[T any] struct {
	start  *node[T]
	end    *node[T]
	length int
}

func New[T any]() *List[T] {
	return &List[T]{}
}

// FromSeq builds a list holding the values of seq in order.
func FromSeq[T any](seq iter.Seq[T]) *List[T] {
	out := New[T]()
	for value := range seq {
		out.Add(value)
	}
	return out
}

func (me *List[T]) Len() int {
	return me.length
}

func (me *List[T]) Add(value T) {
	n := &node[T]{value: value}
	if me.end == nil {
		me.start = n
	} else {
		me.end.next = n
	}
	me.end = n
	me.length++
}

func (me *List[T]) Get(idx int) util.Optional[T] {
	if idx < 0 {
		return util.None[T]()
	}
	for cur := me.start; cur != nil; cur = cur.next {
		if idx == 0 {
			return util.Some(cur.value)
		}
		idx--
	}
	return util.None[T]()
}

func (me *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for cur := me.start; cur != nil; cur = cur.next {
			if !yield(cur.value) {
				return
			}
		}
	}
}

func (me *List[T]) String() string {
	var sb strings.Builder
	for cur := me.start; cur != nil; cur = cur.next {
		if cur != me.start {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, cur.value)
	}
	return sb.String()
}

// Merge combines two ascending lists into a new ascending list.
func Merge[T cmp.Ordered](a, b *List[T]) *List[T] {
	return MergeFunc(a, b, cmp.Compare[T])
}

// MergeFunc combines two lists sorted by compare into a new sorted list. When
// values compare equal, the one from a comes first. Neither input is modified.
func MergeFunc[T any](a, b *List[T], compare func(x, y T) int) *List[T] {
	out := New[T]()

	left, right := a.start, b.start
	for left != nil && right != nil {
		if compare(left.value, right.value) <= 0 {
			out.Add(left.value)
			left = left.next
		} else {
			out.Add(right.value)
			right = right.next
		}
	}

	// at most one side has values left
	for ; left != nil; left = left.next {
		out.Add(left.value)
	}
	for ; right != nil; right = right.next {
		out.Add(right.value)
	}

	return out
}
