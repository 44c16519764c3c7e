package valuation

import "fmt"

// ValueByComparison values subject from the mean of its comparables'
// adjusted unit prices. Confidence reflects how closely the adjusted prices
// agree.
func ValueByComparison(subject SubjectProperty, comparables []ComparableProperty, weights AdjustmentWeights) (Result, error) {
	if len(comparables) == 0 {
		return Result{}, insufficientData("sales comparison needs at least one comparable")
	}
	if err := positive("subject area", subject.Area); err != nil {
		return Result{}, err
	}

	prices := make([]float64, 0, len(comparables))
	details := make([]BreakdownEntry, 0, len(comparables))
	var sum float64
	for i, comp := range comparables {
		adj, err := Adjust(subject, comp, weights)
		if err != nil {
			return Result{}, err
		}
		prices = append(prices, adj.AdjustedPrice)
		sum += adj.AdjustedPrice

		details = append(details, BreakdownEntry{
			Key:   fmt.Sprintf("comparable_%d", i+1),
			Label: comp.ID,
			Value: adj.AdjustedPrice,
			Notes: append([]string(nil), adj.Reasons...),
			Details: []BreakdownEntry{
				entry("base_price", adj.BasePrice),
				entry("total_adjustment", adj.Total),
				entry("adjusted_price", adj.AdjustedPrice),
			},
		})
	}

	perUnit := sum / float64(len(prices))
	total, err := checked("total value", perUnit*subject.Area)
	if err != nil {
		return Result{}, err
	}
	confidence, err := Confidence(prices)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Method:           MethodSalesComparison,
		TotalValue:       total,
		ValuePerUnitArea: perUnit,
		Confidence:       ptr(confidence),
		Breakdown: []BreakdownEntry{
			entry("comparable_count", float64(len(comparables))),
			entry("mean_adjusted_price", perUnit),
			entry("subject_area", subject.Area),
			{Key: "comparables", Value: float64(len(details)), Details: details},
		},
	}, nil
}
