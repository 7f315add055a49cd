package evaluation

import (
	apperrors "github.com/zatekoja/price-accuracy/pkg/errors"
)

// ValidateSamples checks that predicted and actual are index-aligned and, when
// requireNonEmpty is set, that there is at least one pair to average.
func ValidateSamples(predicted, actual []float64, requireNonEmpty bool) error {
	if len(predicted) != len(actual) {
		return apperrors.NewLengthMismatchError(len(predicted), len(actual))
	}
	if requireNonEmpty && len(actual) == 0 {
		return apperrors.NewEmptyInputError("predicted and actual are empty")
	}
	return nil
}

// CountZeroActuals returns how many actual values are exactly zero.
func CountZeroActuals(actual []float64) int {
	n := 0
	for _, a := range actual {
		if a == 0 {
			n++
		}
	}
	return n
}
