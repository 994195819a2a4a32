package stats

import (
	"sift"
	"sift/number"
)

// Proj extracts the numeric value of interest from an element.
type Proj[E any] func(E) (number.Value, error)

// Identity is the projection for elements that are already numeric.
func Identity[E any](e E) (number.Value, error) {
	return number.Of(e)
}

// two is the constant divisor of the midrange and even-median formulas.
var two = number.Int32(2)

// numbers projects a cursor of elements into a cursor of values.
func numbers[E any](s sift.Seq[E], proj Proj[E]) sift.Seq[number.Value] {
	return func() (v number.Value, ok bool, err error) {
		e, ok, err := s()
		if err != nil || !ok {
			return
		}
		v, err = proj(e)
		if err != nil {
			ok = false
			return
		}
		return
	}
}

// Sum folds the projected values with add, the first element as the base.
// Absent for an empty sequence.
func Sum[E any](src sift.Source[E], proj Proj[E]) (v number.Value, err error) {
	v, _, err = Fold(numbers(src.Cursor(), proj), number.Add)
	return
}

// Count reports how many elements the source produces.
func Count[E any](src sift.Source[E]) (n int, err error) {
	return sift.Count(src.Cursor())
}

// minMax tracks the running extremes in a single pass. Either extreme stays
// absent for an empty sequence; an absent running value loses every
// comparison to a present one.
func minMax[E any](src sift.Source[E], proj Proj[E]) (lo, hi number.Value, err error) {
	cursor := numbers(src.Cursor(), proj)
	for {
		v, ok, nerr := cursor()
		if nerr != nil {
			err = nerr
			return
		}
		if !ok {
			return
		}
		if lo.IsAbsent() || number.Compare(v, lo) < 0 {
			lo = v
		}
		if hi.IsAbsent() || number.Compare(v, hi) > 0 {
			hi = v
		}
	}
}

// Min returns the smallest projected value, absent for an empty sequence.
func Min[E any](src sift.Source[E], proj Proj[E]) (v number.Value, err error) {
	v, _, err = minMax(src, proj)
	return
}

// Max returns the largest projected value, absent for an empty sequence.
func Max[E any](src sift.Source[E], proj Proj[E]) (v number.Value, err error) {
	_, v, err = minMax(src, proj)
	return
}

// Amplitude is max - min, absent for an empty sequence.
func Amplitude[E any](src sift.Source[E], proj Proj[E]) (v number.Value, err error) {
	lo, hi, err := minMax(src, proj)
	if err != nil || lo.IsAbsent() {
		return
	}
	return number.Subtract(hi, lo)
}

// Mean is the midrange, (min + max) / 2. Use Average for the arithmetic
// mean.
func Mean[E any](src sift.Source[E], proj Proj[E]) (v number.Value, err error) {
	lo, hi, err := minMax(src, proj)
	if err != nil || lo.IsAbsent() {
		return
	}
	mid, err := number.Add(lo, hi)
	if err != nil {
		return
	}
	return number.Divide(mid, two)
}

// Average is the arithmetic mean: running sum and count in one pass, then
// sum / count. Absent for an empty sequence; the count is checked before
// dividing, so no division by zero can occur here.
func Average[E any](src sift.Source[E], proj Proj[E]) (v number.Value, err error) {
	cursor := numbers(src.Cursor(), proj)
	var sum number.Value
	count := 0
	for {
		x, ok, nerr := cursor()
		if nerr != nil {
			err = nerr
			return
		}
		if !ok {
			break
		}
		if count == 0 {
			sum = x
		} else {
			sum, err = number.Add(sum, x)
			if err != nil {
				return
			}
		}
		count++
	}
	if count == 0 {
		return
	}
	return number.Divide(sum, number.Int32(int32(count)))
}
