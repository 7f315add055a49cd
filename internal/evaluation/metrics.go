package evaluation

import (
	"math"
)

// RelativeErrorRatio computes the mean of |predicted[i]-actual[i]| / actual[i].
// Terms are summed in index order. A zero actual yields an infinite (or NaN)
// term that propagates into the result.
// Returns a LENGTH_MISMATCH error for unequal lengths and EMPTY_INPUT for empty input.
func RelativeErrorRatio(predicted, actual []float64) (float64, error) {
	if err := ValidateSamples(predicted, actual, true); err != nil {
		return 0, err
	}
	return relativeErrorRatio(predicted, actual), nil
}

// relativeErrorRatio returns NaN for empty input.
func relativeErrorRatio(predicted, actual []float64) float64 {
	if len(actual) == 0 {
		return math.NaN()
	}

	sum := 0.0
	for i := range actual {
		sum += math.Abs(predicted[i]-actual[i]) / actual[i]
	}

	return sum / float64(len(actual))
}

// SegmentedMAE computes the mean absolute error per fixed price band (see PriceSegments).
// Bands with no samples report a nil MAE. Actual values above the last bound are excluded.
// Returns a LENGTH_MISMATCH error for unequal lengths; empty input is not an error.
func SegmentedMAE(predicted, actual []float64) (*SegmentedReport, error) {
	if err := ValidateSamples(predicted, actual, false); err != nil {
		return nil, err
	}
	return segmentedMAE(predicted, actual, priceSegments), nil
}

func segmentedMAE(predicted, actual []float64, segments Segments) *SegmentedReport {
	report := &SegmentedReport{
		Results: make([]SegmentResult, len(segments)),
	}

	matched := 0
	for i, bound := range segments {
		sum := 0.0
		count := 0
		for j := range actual {
			if segments.Contains(i, actual[j]) {
				sum += math.Abs(predicted[j] - actual[j])
				count++
			}
		}

		res := SegmentResult{UpperBound: bound, Count: count}
		if count > 0 {
			mae := sum / float64(count)
			res.MAE = &mae
		}
		report.Results[i] = res
		matched += count
	}

	report.Excluded = len(actual) - matched
	return report
}
