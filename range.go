package sift

import "golang.org/x/exp/constraints"

// Range is a restartable source counting from lo up to but excluding hi.
func Range[N constraints.Integer](lo, hi N) Source[N] {
	return SourceFunc(func() Seq[N] {
		next := lo
		return func() (n N, ok bool, err error) {
			if next >= hi {
				return
			}
			n = next
			next++
			ok = true
			return
		}
	})
}
