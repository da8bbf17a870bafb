package util

import "iter"

func SeqOf[T any](items ...T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range items {
			if !yield(item) {
				return
			}
		}
	}
}

// SeqAt returns the idx-th value of seq, stopping the iteration once found.
func SeqAt[T any](seq iter.Seq[T], idx int) (out T, exists bool) {
	if idx < 0 {
		return out, false
	}
	var i int
	for item := range seq {
		if i == idx {
			return item, true
		}
		i++
	}
	return out, false
}
