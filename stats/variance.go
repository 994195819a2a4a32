package stats

import (
	"github.com/pkg/errors"

	"sift"
	"sift/common"
	"sift/number"
)

// sumSquaredDev is the second pass: the sum of (x - mu)^2 plus the element
// count from a fresh cursor.
func sumSquaredDev[E any](src sift.Source[E], proj Proj[E], mu number.Value) (sum number.Value, n int, err error) {
	cursor := numbers(src.Cursor(), proj)
	for {
		x, ok, nerr := cursor()
		if nerr != nil {
			err = nerr
			return
		}
		if !ok {
			return
		}
		dev, derr := number.Subtract(x, mu)
		if derr != nil {
			err = derr
			return
		}
		sq, derr := number.Power(dev, two)
		if derr != nil {
			err = derr
			return
		}
		sum, err = number.Add(sum, sq)
		if err != nil {
			return
		}
		n++
	}
}

// VariancePop is the population variance, sum of (x - mu)^2 over N. Two passes: the
// first computes the average, the second the squared deviations, each over
// its own cursor. Absent for an empty sequence.
func VariancePop[E any](src sift.Source[E], proj Proj[E]) (v number.Value, err error) {
	mu, err := Average(src, proj)
	if err != nil || mu.IsAbsent() {
		return
	}
	sum, n, err := sumSquaredDev(src, proj, mu)
	if err != nil {
		return
	}
	return number.Divide(sum, number.Int32(int32(n)))
}

// VarianceSample divides by N - 1 instead of N. Absent for an empty
// sequence; a single element is a division by zero, raised rather than
// returned as infinity.
func VarianceSample[E any](src sift.Source[E], proj Proj[E]) (v number.Value, err error) {
	mu, err := Average(src, proj)
	if err != nil || mu.IsAbsent() {
		return
	}
	sum, n, err := sumSquaredDev(src, proj, mu)
	if err != nil {
		return
	}
	if n <= 1 {
		err = errors.Wrapf(common.ErrDivisionByZero, "sample variance of %d element(s)", n)
		return
	}
	return number.Divide(sum, number.Int32(int32(n-1)))
}

// StdDevPop is the square root of the population variance.
func StdDevPop[E any](src sift.Source[E], proj Proj[E]) (number.Value, error) {
	v, err := VariancePop(src, proj)
	return stdDev(v, err)
}

// StdDevSample is the square root of the sample variance.
func StdDevSample[E any](src sift.Source[E], proj Proj[E]) (number.Value, error) {
	v, err := VarianceSample(src, proj)
	return stdDev(v, err)
}

// stdDev roots a variance. Floating-point cancellation can leave a variance
// a hair below zero; that is clamped to the kind's zero instead of raising.
func stdDev(v number.Value, err error) (number.Value, error) {
	if err != nil || v.IsAbsent() {
		return v, err
	}
	if number.Compare(v, number.Int64(0)) < 0 {
		v = number.Convert(number.Int64(0), v.Kind())
	}
	return number.SquareRoot(v)
}
