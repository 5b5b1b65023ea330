// Package discrete implements inverse CDF sampling from unnormalized
// discrete distributions over {0, ..., n-1}.
package discrete

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// Sample returns the first index i of weights where sum(weights[:i+1]) >= x * sum(weights).
// x must be in [0, 1), as returned by rand.Float64.
func Sample(weights []float64, x float64) (int, error) {
	total, err := normalization(weights)
	if err != nil {
		return 0, err
	}

	if err := checkDraw(x); err != nil {
		return 0, err
	}

	return Quantile(weights, target(x, total))
}

// Quantile walks the cumulative sum of weights and returns the first index
// whose cumulative mass reaches r. Ties resolve to the lower index.
// Weights must be finite and non-negative but need not be normalized.
func Quantile(weights []float64, r float64) (int, error) {
	if err := checkWeights(weights); err != nil {
		return 0, err
	}

	if math.IsNaN(r) {
		return 0, errors.Wrap(ErrInvalidInput, "target mass is NaN")
	}

	i := 0
	a := weights[0]
	for a < r {
		i++
		if i == len(weights) {
			return 0, errors.Wrapf(ErrOutOfRange,
				"target mass %v exceeds cumulative sum %v of %d weights", r, a, len(weights))
		}

		a += weights[i]
	}

	return i, nil
}

// Normalize returns a copy of weights scaled to sum to 1.
func Normalize(weights []float64) ([]float64, error) {
	total, err := normalization(weights)
	if err != nil {
		return nil, err
	}

	result := make([]float64, len(weights))
	floats.ScaleTo(result, 1.0/total, weights)
	return result, nil
}

// normalization validates weights and returns their sum.
func normalization(weights []float64) (float64, error) {
	if err := checkWeights(weights); err != nil {
		return 0, err
	}

	total := floats.Sum(weights)
	if !(total > 0) || math.IsInf(total, 0) {
		return 0, errors.Wrapf(ErrInvalidInput, "weights sum to %v", total)
	}

	return total, nil
}

// target returns the mass x*total, rounded up to the smallest positive
// float64 when a positive draw underflows so that zero weights are skipped.
func target(x, total float64) float64 {
	r := x * total
	if r == 0 && x > 0 {
		return math.SmallestNonzeroFloat64
	}

	return r
}

func checkWeights(weights []float64) error {
	if len(weights) == 0 {
		return errors.Wrap(ErrInvalidInput, "empty weight vector")
	}

	for i, w := range weights {
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return errors.Wrapf(ErrInvalidInput, "weight %d is %v", i, w)
		}
	}

	return nil
}

func checkDraw(x float64) error {
	if !(x >= 0 && x < 1) {
		return errors.Wrapf(ErrInvalidInput, "draw %v is not in [0, 1)", x)
	}

	return nil
}
