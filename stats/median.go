package stats

import (
	"sift"
	"sift/number"
)

// MedianConvention selects which pair of elements the even-count median
// averages. Some systems index the pair one past the textbook midpair;
// both conventions are kept explicit so compatibility runs can reproduce
// either.
type MedianConvention int

const (
	// MedianMidpair averages the two middle elements, positions n/2-1 and
	// n/2 (zero-based). Sorted [1 2 3 4] gives (2+3)/2.
	MedianMidpair MedianConvention = iota
	// MedianUpperPair averages positions n/2 and n/2+1 (zero-based), one
	// past the midpair. Sorted [1 2 3 4] gives (3+4)/2.
	MedianUpperPair
)

// Median is the middle projected value, computed with MedianMidpair.
// Absent for an empty sequence.
func Median[E any](src sift.Source[E], proj Proj[E]) (number.Value, error) {
	return MedianWith(src, proj, MedianMidpair)
}

// MedianWith computes the median under an explicit even-count convention.
func MedianWith[E any](src sift.Source[E], proj Proj[E], conv MedianConvention) (v number.Value, err error) {
	acc := newSortedAcc()
	cursor := numbers(src.Cursor(), proj)
	for {
		x, ok, nerr := cursor()
		if nerr != nil {
			err = nerr
			return
		}
		if !ok {
			break
		}
		acc.push(x)
	}
	n := acc.len()
	if n == 0 {
		return
	}
	if n%2 == 1 {
		v = acc.at(n / 2)
		return
	}
	lower := n/2 - 1
	upper := n / 2
	if conv == MedianUpperPair {
		lower = n / 2
		upper = n/2 + 1
		if upper >= n {
			upper = n - 1
		}
	}
	mid, err := number.Add(acc.at(lower), acc.at(upper))
	if err != nil {
		return
	}
	return number.Divide(mid, two)
}
