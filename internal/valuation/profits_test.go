package valuation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "appraisal/internal/errors"
)

func hotelTrading() BusinessFinancials {
	return BusinessFinancials{
		RevenueSources:       map[string]float64{"rooms": 6_000_000, "food": 3_000_000, "other": 1_000_000},
		OperatingExpenseRate: 0.60,
		DepreciationRate:     0.05,
		TaxRate:              0.20,
		OperatorRate:         0.10,
		RentShareRate:        0.50,
		TotalArea:            5000,
	}
}

func TestValueByProfits(t *testing.T) {
	t.Run("derives_rent_from_divisible_balance", func(t *testing.T) {
		res, err := ValueByProfits(hotelTrading())
		require.NoError(t, err)

		assert.Equal(t, MethodProfits, res.Method)
		assert.InDelta(t, 10_000_000, figure(t, res, "total_revenue"), 1e-6)
		assert.InDelta(t, 4_000_000, figure(t, res, "ebitda"), 1e-6)
		assert.InDelta(t, 700_000, figure(t, res, "tax"), 1e-6)
		assert.InDelta(t, 1_800_000, figure(t, res, "divisible_balance"), 1e-6)
		assert.InDelta(t, 900_000, res.TotalValue, 1e-6)
		assert.InDelta(t, 0.09, figure(t, res, "rent_to_revenue_ratio"), 1e-12)
		assert.InDelta(t, 180, res.ValuePerUnitArea, 1e-9)
		_, ok := res.Figure("implied_value")
		assert.False(t, ok)
	})

	t.Run("revenue_sources_are_listed_in_name_order", func(t *testing.T) {
		res, err := ValueByProfits(hotelTrading())
		require.NoError(t, err)
		require.Equal(t, "total_revenue", res.Breakdown[0].Key)
		keys := make([]string, 0, 3)
		for _, d := range res.Breakdown[0].Details {
			keys = append(keys, d.Key)
		}
		assert.Equal(t, []string{"food", "other", "rooms"}, keys)
	})

	t.Run("ebitda_multiple_cross_check", func(t *testing.T) {
		b := hotelTrading()
		b.EBITDAMultiple = ptr(8)
		res, err := ValueByProfits(b)
		require.NoError(t, err)
		assert.InDelta(t, 32_000_000, figure(t, res, "implied_value"), 1e-6)
		assert.InDelta(t, 2_560_000, figure(t, res, "implied_rent"), 1e-6)

		b.AssumedYield = ptr(0.1)
		res, err = ValueByProfits(b)
		require.NoError(t, err)
		assert.InDelta(t, 3_200_000, figure(t, res, "implied_rent"), 1e-6)
	})

	t.Run("rent_never_exceeds_divisible_balance", func(t *testing.T) {
		for _, share := range []float64{0, 0.25, 0.5, 1} {
			b := hotelTrading()
			b.RentShareRate = share
			res, err := ValueByProfits(b)
			require.NoError(t, err)
			assert.LessOrEqual(t, res.TotalValue, figure(t, res, "divisible_balance"))
		}
	})

	t.Run("rejects_negative_divisible_balance", func(t *testing.T) {
		// opex 85% and operator 20% leave 1,000,000 of revenue 120,000 short
		b := BusinessFinancials{
			RevenueSources:       map[string]float64{"rooms": 1_000_000},
			OperatingExpenseRate: 0.85,
			DepreciationRate:     0.05,
			TaxRate:              0.20,
			OperatorRate:         0.20,
			RentShareRate:        0.5,
		}
		_, err := ValueByProfits(b)
		assert.ErrorIs(t, err, apperrors.ErrInvalidAssumption)

		_, err = ValueByProfits(b, WithSensitivity())
		assert.ErrorIs(t, err, apperrors.ErrInvalidAssumption)
	})

	t.Run("area_is_optional", func(t *testing.T) {
		b := hotelTrading()
		b.TotalArea = 0
		res, err := ValueByProfits(b)
		require.NoError(t, err)
		assert.Equal(t, 0.0, res.ValuePerUnitArea)
		_, ok := res.Figure("rent_per_unit_area")
		assert.False(t, ok)
	})

	t.Run("revenue_sensitivity_is_linear", func(t *testing.T) {
		res, err := ValueByProfits(hotelTrading(), WithSensitivity())
		require.NoError(t, err)
		require.NotNil(t, res.Sensitivity)
		assert.Len(t, res.Sensitivity.Scenarios, len(RevenueChanges))

		v, ok := res.Sensitivity.Lookup(0.10)
		require.True(t, ok)
		assert.InDelta(t, 990_000, v, 1e-6)
		v, ok = res.Sensitivity.Lookup(-0.10)
		require.True(t, ok)
		assert.InDelta(t, 810_000, v, 1e-6)
	})

	t.Run("rejects_rent_share_above_one", func(t *testing.T) {
		b := hotelTrading()
		b.RentShareRate = 1.2
		_, err := ValueByProfits(b)
		assert.ErrorIs(t, err, apperrors.ErrInvalidAssumption)
	})

	t.Run("rejects_zero_revenue", func(t *testing.T) {
		b := hotelTrading()
		b.RevenueSources = map[string]float64{"rooms": 0}
		_, err := ValueByProfits(b)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})

	t.Run("rejects_negative_source", func(t *testing.T) {
		b := hotelTrading()
		b.RevenueSources["refunds"] = -10
		_, err := ValueByProfits(b)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})
}
