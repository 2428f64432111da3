// Package combo generates k-combinations in lexicographic order of their
// index tuples. Sequences are lazy and restartable: every range over the
// returned iterator starts again from the first combination.
package combo

import "iter"

// Indices yields every strictly increasing k-tuple drawn from 0..n-1 in
// lexicographic order. Each yielded slice is freshly allocated and may be
// retained by the caller. Invalid arguments yield nothing.
func Indices(n, k int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		if k < 0 || n < 0 || k > n {
			return
		}
		idx := make([]int, k)
		for i := range idx {
			idx[i] = i
		}
		for {
			if !yield(append([]int(nil), idx...)) {
				return
			}
			// Find the rightmost position that can still move right.
			i := k - 1
			for i >= 0 && idx[i] == n-k+i {
				i--
			}
			if i < 0 {
				return
			}
			idx[i]++
			for j := i + 1; j < k; j++ {
				idx[j] = idx[j-1] + 1
			}
		}
	}
}

// Of yields every k-element selection of items, preserving the order of
// items within each selection.
func Of[T any](items []T, k int) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		for idx := range Indices(len(items), k) {
			sel := make([]T, len(idx))
			for i, j := range idx {
				sel[i] = items[j]
			}
			if !yield(sel) {
				return
			}
		}
	}
}

// Count returns the binomial coefficient C(n, k), or 0 when k is out of
// range.
func Count(n, k int) int {
	if k < 0 || n < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	c := 1
	for i := 1; i <= k; i++ {
		c = c * (n - k + i) / i
	}
	return c
}
