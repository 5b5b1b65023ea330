package discrete

import (
	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// Source is a source of uniform random values in [0, 1).
// *rand.Rand implements Source.
type Source interface {
	Float64() float64
}

// Sampler draws indices from discrete distributions using its Source.
// A Sampler is safe for concurrent use if its Source is.
type Sampler struct {
	src Source
}

// NewSampler returns a Sampler drawing from src, which must be non-nil.
func NewSampler(src Source) *Sampler {
	return &Sampler{src: src}
}

// Sample draws one index from the distribution implied by weights.
// Exactly one value is consumed from the Source.
func (s *Sampler) Sample(weights []float64) (int, error) {
	return Sample(weights, s.src.Float64())
}

// SampleN draws n independent indices from the distribution implied by weights.
func (s *Sampler) SampleN(weights []float64, n int) ([]int, error) {
	if n < 0 {
		return nil, errors.Wrapf(ErrInvalidInput, "cannot draw %d samples", n)
	}

	total, err := normalization(weights)
	if err != nil {
		return nil, err
	}

	result := make([]int, n)
	for k := range result {
		x := s.src.Float64()
		if err := checkDraw(x); err != nil {
			return nil, err
		}

		i, err := Quantile(weights, target(x, total))
		if err != nil {
			return nil, err
		}

		result[k] = i
	}

	glog.V(2).Infof("Drew %d samples from %d weights (total mass %v)", n, len(weights), total)
	return result, nil
}
