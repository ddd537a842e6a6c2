package lattice

import "fmt"

// Sublists lazily enumerates every size-k selection of m's elements in
// lexicographic order by index tuple, preserving each element's
// original relative order within the emitted sublist. For k=0 it
// yields exactly one empty sublist. Panics are never raised; a k>m
// request surfaces ErrPrecondition through the returned error.
//
// The sequence length is C(len(m), k). Enumeration is lazy: the
// caller's yield function can return false to stop early without
// penalty, matching the iter.Seq convention.
func Sublists[T any](m []T, k int) (func(yield func([]T) bool), error) {
	n := len(m)
	if k < 0 || k > n {
		return nil, fmt.Errorf("%w: sublist size %d exceeds list length %d", ErrPrecondition, k, n)
	}

	return func(yield func([]T) bool) {
		if k == 0 {
			yield(nil)
			return
		}

		idx := make([]int, k)
		for i := range idx {
			idx[i] = i
		}

		for {
			out := make([]T, k)
			for i, ix := range idx {
				out[i] = m[ix]
			}
			if !yield(out) {
				return
			}

			// advance to the next index tuple in lexicographic order
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
	}, nil
}

// Binomial returns C(n, k), the expected sequence length of Sublists.
func Binomial(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	result := 1
	for i := 0; i < k; i++ {
		result = result * (n - i) / (i + 1)
	}
	return result
}
