package valuation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "appraisal/internal/errors"
)

func TestValueByComparison(t *testing.T) {
	t.Run("three_comparables_with_structural_rules_only", func(t *testing.T) {
		subject := SubjectProperty{Area: 1000, Category: CategoryResidential, AgeYears: 5, Condition: 3}
		comps := []ComparableProperty{
			{UnitPrice: 100, Area: 1200, AgeYears: 5, Condition: 3},
			{UnitPrice: 90, Area: 1500, AgeYears: 5, Condition: 3},
			{UnitPrice: 110, Area: 1000, AgeYears: 5, Condition: 3},
		}

		res, err := ValueByComparison(subject, comps, nil)
		require.NoError(t, err)

		// 100 * 1.05, 90 * 1.10, 110
		mean := (105.0 + 99.0 + 110.0) / 3
		assert.Equal(t, MethodSalesComparison, res.Method)
		assert.InDelta(t, mean, res.ValuePerUnitArea, 1e-9)
		assert.GreaterOrEqual(t, res.ValuePerUnitArea, 90.0)
		assert.LessOrEqual(t, res.ValuePerUnitArea, 126.5)
		assert.InDelta(t, res.ValuePerUnitArea*1000, res.TotalValue, 1e-6)
		require.NotNil(t, res.Confidence)
		assert.InDelta(t, 0.957, *res.Confidence, 1e-3)

		count, ok := res.Figure("comparable_count")
		require.True(t, ok)
		assert.Equal(t, 3.0, count)
	})

	t.Run("identical_comparables_give_full_confidence", func(t *testing.T) {
		subject := baseSubject()
		comps := []ComparableProperty{baseComparable(), baseComparable(), baseComparable()}

		res, err := ValueByComparison(subject, comps, nil)
		require.NoError(t, err)
		assert.Equal(t, 100.0, res.ValuePerUnitArea)
		assert.Equal(t, 1.0, *res.Confidence)

		for _, e := range res.Breakdown {
			if e.Key != "comparables" {
				continue
			}
			for _, c := range e.Details {
				assert.Equal(t, 0.0, c.Details[1].Value, "total adjustment for %s", c.Key)
			}
		}
	})

	t.Run("single_comparable_uses_default_confidence", func(t *testing.T) {
		res, err := ValueByComparison(baseSubject(), []ComparableProperty{baseComparable()}, nil)
		require.NoError(t, err)
		assert.Equal(t, SingleConfidence, *res.Confidence)
	})

	t.Run("breakdown_carries_reasons_per_comparable", func(t *testing.T) {
		comp := baseComparable()
		comp.ID = "sale-17"
		comp.Area = 1500
		res, err := ValueByComparison(baseSubject(), []ComparableProperty{comp}, nil)
		require.NoError(t, err)

		var found bool
		for _, e := range res.Breakdown {
			if e.Key != "comparables" {
				continue
			}
			require.Len(t, e.Details, 1)
			assert.Equal(t, "comparable_1", e.Details[0].Key)
			assert.Equal(t, "sale-17", e.Details[0].Label)
			assert.Equal(t, []string{"area: +10.0%"}, e.Details[0].Notes)
			assert.Equal(t, "base_price", e.Details[0].Details[0].Key)
			assert.Equal(t, 100.0, e.Details[0].Details[0].Value)
			found = true
		}
		assert.True(t, found)
	})

	t.Run("fails_without_comparables", func(t *testing.T) {
		_, err := ValueByComparison(baseSubject(), nil, nil)
		assert.ErrorIs(t, err, apperrors.ErrInsufficientData)
	})

	t.Run("fails_on_invalid_comparable", func(t *testing.T) {
		comp := baseComparable()
		comp.UnitPrice = 0
		_, err := ValueByComparison(baseSubject(), []ComparableProperty{comp}, nil)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})
}
