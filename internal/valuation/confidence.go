package valuation

import "math"

// Confidence bounds.
const (
	MinConfidence    = 0.1
	MaxConfidence    = 1.0
	SingleConfidence = 0.5
)

// Confidence scores how tightly a set of estimates agree: one minus their
// coefficient of variation, clamped to [MinConfidence, MaxConfidence]. A
// single estimate has nothing to agree with and scores SingleConfidence.
// Estimates averaging zero or below are rejected.
func Confidence(estimates []float64) (float64, error) {
	if len(estimates) == 0 {
		return 0, invalidInput("confidence needs at least one estimate")
	}
	for i, v := range estimates {
		if !finite(v) {
			return 0, invalidInput("estimate %d is not a finite number", i+1)
		}
	}

	var sum float64
	for _, v := range estimates {
		sum += v
	}
	mean := sum / float64(len(estimates))
	if mean <= 0 {
		return 0, invalidInput("estimates must average above zero, got %v", mean)
	}
	if len(estimates) == 1 {
		return SingleConfidence, nil
	}

	var sq float64
	for _, v := range estimates {
		d := v - mean
		sq += d * d
	}
	std := math.Sqrt(sq / float64(len(estimates)))

	return clampConfidence(1 - std/mean), nil
}

func clampConfidence(v float64) float64 {
	return math.Max(MinConfidence, math.Min(MaxConfidence, v))
}
