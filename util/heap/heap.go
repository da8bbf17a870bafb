package heap

import (
	"cmp"
	"errors"
	"iter"
)

var ErrEmptyContainer = errors.New("heap is empty")

// Heap is a binary heap ordered by a caller-supplied predicate.
//
// Items are stored as a complete binary tree rooted at index 1; index 0 is an
// unused sentinel so that the parent of i is always i/2. A Heap is not safe for
// concurrent use.
type Heap[T any] struct {
	// higherPriority(a, b) reports whether a must sit above b. It must be a
	// strict ordering: higherPriority(a, a) is false.
	higherPriority func(a, b T) bool
	items          []T
	count          int
}

func New[T any](higherPriority func(a, b T) bool) *Heap[T] {
	return &Heap[T]{
		higherPriority: higherPriority,
		items:          make([]T, 1),
	}
}

// NewMin returns a heap that yields the smallest value first.
func NewMin[T cmp.Ordered]() *Heap[T] {
	return New(func(a, b T) bool { return a < b })
}

// NewMax returns a heap that yields the largest value first.
func NewMax[T cmp.Ordered]() *Heap[T] {
	return New(func(a, b T) bool { return a > b })
}

func (me *Heap[T]) Len() int {
	return me.count
}

func (me *Heap[T]) IsEmpty() bool {
	return me.Len() == 0
}

func (me *Heap[T]) Add(value T) {
	me.items = append(me.items, value)
	me.count++

	cur := me.count
	for cur != 1 {
		parent := parentIdx(cur)
		if !me.higherPriority(me.items[cur], me.items[parent]) {
			break
		}
		me.swap(cur, parent)
		cur = parent
	}
}

func (me *Heap[T]) Peek() (out T, _ error) {
	if me.count == 0 {
		return out, ErrEmptyContainer
	}
	return me.items[1], nil
}

// ExtractTop removes and returns the highest-priority value.
func (me *Heap[T]) ExtractTop() (out T, _ error) {
	if me.count == 0 {
		return out, ErrEmptyContainer
	}

	out = me.items[1]
	last := me.count

	if last == 1 {
		me.truncate()
		return out, nil
	}

	me.items[1] = me.items[last]
	me.truncate()

	cur := 1
	for me.childrenPresent(cur) {
		child := me.priorityChildIdx(cur)
		if !me.higherPriority(me.items[child], me.items[cur]) {
			break
		}
		me.swap(child, cur)
		cur = child
	}

	return out, nil
}

// Drain returns a single-use sequence that extracts values in priority order.
// It yields at most as many values as the heap held when Drain was called, and
// stops early if the heap runs empty in between pulls.
func (me *Heap[T]) Drain() iter.Seq[T] {
	remaining := me.Len()
	return func(yield func(T) bool) {
		for ; remaining > 0; remaining-- {
			value, err := me.ExtractTop()
			if err != nil {
				remaining = 0
				return
			}
			if !yield(value) {
				remaining--
				return
			}
		}
	}
}

// truncate drops the last live slot, zeroing it so the heap does not retain a
// reference to the removed value.
func (me *Heap[T]) truncate() {
	var zero T
	me.items[me.count] = zero
	me.items = me.items[:me.count]
	me.count--
}

func (me *Heap[T]) swap(i, j int) {
	me.items[i], me.items[j] = me.items[j], me.items[i]
}

func (me *Heap[T]) childrenPresent(idx int) bool {
	return leftChildIdx(idx) <= me.count
}

// priorityChildIdx picks the child that should move up. The left child wins
// ties. Only valid when childrenPresent(idx).
func (me *Heap[T]) priorityChildIdx(idx int) int {
	left, right := leftChildIdx(idx), rightChildIdx(idx)
	if right <= me.count && me.higherPriority(me.items[right], me.items[left]) {
		return right
	}
	return left
}

func parentIdx(idx int) int {
	return idx / 2
}

func leftChildIdx(idx int) int {
	return idx * 2
}

func rightChildIdx(idx int) int {
	return leftChildIdx(idx) + 1
}
