// Package stats is the numeric aggregation engine: streaming reductions
// over sift cursors, computed through the sift/number kind tower.
package stats

import (
	"sift"
)

// Fold folds the cursor without a seed: the first element becomes the
// accumulator verbatim, without passing through combine, and every later
// element is folded in sequence order. ok is false for an empty cursor.
func Fold[E any](s sift.Seq[E], combine func(acc, e E) (E, error)) (acc E, ok bool, err error) {
	acc, ok, err = s()
	if err != nil || !ok {
		return
	}
	for {
		e, more, nerr := s()
		if nerr != nil {
			err = nerr
			return
		}
		if !more {
			return
		}
		acc, err = combine(acc, e)
		if err != nil {
			return
		}
	}
}

// FoldSeed folds the cursor starting from seed; every element, the first
// included, goes through combine, in sequence order.
func FoldSeed[E any](s sift.Seq[E], seed E, combine func(acc, e E) (E, error)) (acc E, err error) {
	acc = seed
	for {
		e, ok, nerr := s()
		if nerr != nil {
			err = nerr
			return
		}
		if !ok {
			return
		}
		acc, err = combine(acc, e)
		if err != nil {
			return
		}
	}
}
