package stats

import (
	"sift"
	"sift/number"
)

// Real is the set of plain Go numerics the slice entry points accept; each
// classifies directly into the kind tower.
type Real interface {
	int16 | int32 | int64 | int | float32 | float64
}

// The slice entry points index directly, so callers holding materialized
// data never think about cursor exhaustion.

func SumSlice[N Real](list []N) (number.Value, error) {
	return Sum(sift.FromSlice(list), Identity[N])
}

func AverageSlice[N Real](list []N) (number.Value, error) {
	return Average(sift.FromSlice(list), Identity[N])
}

func MeanSlice[N Real](list []N) (number.Value, error) {
	return Mean(sift.FromSlice(list), Identity[N])
}

func MinSlice[N Real](list []N) (number.Value, error) {
	return Min(sift.FromSlice(list), Identity[N])
}

func MaxSlice[N Real](list []N) (number.Value, error) {
	return Max(sift.FromSlice(list), Identity[N])
}

func AmplitudeSlice[N Real](list []N) (number.Value, error) {
	return Amplitude(sift.FromSlice(list), Identity[N])
}

func MedianSlice[N Real](list []N) (number.Value, error) {
	return Median(sift.FromSlice(list), Identity[N])
}

func ModeSlice[N Real](list []N) (number.Value, error) {
	return Mode(sift.FromSlice(list), Identity[N])
}

func VariancePopSlice[N Real](list []N) (number.Value, error) {
	return VariancePop(sift.FromSlice(list), Identity[N])
}

func VarianceSampleSlice[N Real](list []N) (number.Value, error) {
	return VarianceSample(sift.FromSlice(list), Identity[N])
}

func StdDevPopSlice[N Real](list []N) (number.Value, error) {
	return StdDevPop(sift.FromSlice(list), Identity[N])
}

func StdDevSampleSlice[N Real](list []N) (number.Value, error) {
	return StdDevSample(sift.FromSlice(list), Identity[N])
}
