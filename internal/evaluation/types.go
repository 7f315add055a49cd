package evaluation

import (
	"slices"
	"time"
)

// Segments is an ascending list of upper bounds that bucket actual prices.
// Segment 0 has no lower bound; segment i covers (s[i-1], s[i]].
type Segments []float64

// priceSegments are the fixed price bands. Never modified; callers get a copy.
var priceSegments = Segments{10000, 25000, 50000, 75000, 100000}

// PriceSegments returns a copy of the fixed price band upper bounds.
func PriceSegments() Segments {
	return slices.Clone(priceSegments)
}

// Contains reports whether v falls in segment i.
func (s Segments) Contains(i int, v float64) bool {
	// NaN compares false and lands in no segment.
	if !(v <= s[i]) {
		return false
	}
	return i == 0 || v > s[i-1]
}

// SegmentResult holds the MAE of a single price band.
type SegmentResult struct {
	UpperBound float64  `json:"upper_bound"`
	MAE        *float64 `json:"mae"` // nil when no sample fell in the band
	Count      int      `json:"count"`
}

// HasData reports whether at least one sample fell in the band.
func (r SegmentResult) HasData() bool {
	return r.MAE != nil
}

// SegmentedReport is the per-band MAE breakdown, in ascending bound order.
type SegmentedReport struct {
	Results  []SegmentResult `json:"results"`
	Excluded int             `json:"excluded"` // samples that fell in no band (above the last bound or NaN)
}

// Segments returns the band upper bounds, aligned with MAE.
func (r *SegmentedReport) Segments() []float64 {
	out := make([]float64, len(r.Results))
	for i, res := range r.Results {
		out[i] = res.UpperBound
	}
	return out
}

// MAE returns the per-band MAE values, nil for empty bands.
func (r *SegmentedReport) MAE() []*float64 {
	out := make([]*float64, len(r.Results))
	for i, res := range r.Results {
		out[i] = res.MAE
	}
	return out
}

// Report holds the outcome of a single Evaluator run.
type Report struct {
	RunID              string
	SampleCount        int
	RelativeErrorRatio float64
	Segments           *SegmentedReport
	ExcludedCount      int // samples that fell in no band
	ZeroActualCount    int // samples with actual == 0, which make the ratio infinite or NaN
	Duration           time.Duration
}
