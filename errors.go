package discrete

import (
	"github.com/pkg/errors"
)

var (
	// ErrInvalidInput is returned for an empty or malformed weight vector,
	// a non-positive normalization, or a draw outside [0, 1).
	ErrInvalidInput = errors.New("invalid input")
	// ErrOutOfRange is returned when the cumulative walk runs off the end
	// of the weight vector before reaching the target mass.
	ErrOutOfRange = errors.New("out of range")
)

// IsInvalidInput reports whether err was caused by ErrInvalidInput.
func IsInvalidInput(err error) bool {
	return errors.Cause(err) == ErrInvalidInput
}

// IsOutOfRange reports whether err was caused by ErrOutOfRange.
func IsOutOfRange(err error) bool {
	return errors.Cause(err) == ErrOutOfRange
}
