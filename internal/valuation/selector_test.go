package valuation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTierFor(t *testing.T) {
	assert.Equal(t, TierLow, TierFor(0))
	assert.Equal(t, TierLow, TierFor(-3))
	assert.Equal(t, TierMedium, TierFor(1))
	assert.Equal(t, TierMedium, TierFor(2))
	assert.Equal(t, TierHigh, TierFor(3))
	assert.Equal(t, TierHigh, TierFor(40))
}

func TestSelectMethod(t *testing.T) {
	tests := []struct {
		category PropertyCategory
		count    int
		want     Method
	}{
		{CategoryResidential, 5, MethodSalesComparison},
		{CategoryResidential, 1, MethodSalesComparison},
		{CategoryResidential, 0, MethodResidual},
		{CategoryCommercial, 3, MethodDCF},
		{CategoryCommercial, 2, MethodSalesComparison},
		{CategoryCommercial, 0, MethodResidual},
		{CategoryIndustrial, 3, MethodSalesComparison},
		{CategoryIndustrial, 1, MethodDCF},
		{CategoryIndustrial, 0, MethodResidual},
		{CategoryHotel, 4, MethodProfits},
		{CategoryHotel, 2, MethodDCF},
		{CategoryHotel, 0, MethodSalesComparison},
		{CategoryHospital, 3, MethodProfits},
		{CategoryHospital, 1, MethodDCF},
		{CategoryHospital, 0, MethodResidual},
		{CategoryFuelStation, 3, MethodProfits},
		{CategoryFuelStation, 1, MethodSalesComparison},
		{CategoryFuelStation, 0, MethodResidual},
		{CategoryLand, 3, MethodSalesComparison},
		{CategoryLand, 1, MethodResidual},
		{CategoryLand, 0, MethodResidual},
	}
	for _, tt := range tests {
		t.Run(string(tt.category)+"_"+string(TierFor(tt.count)), func(t *testing.T) {
			sel := SelectMethod(tt.category, tt.count)
			require.NotNil(t, sel.Method)
			assert.Equal(t, tt.want, sel.Method.Method())
			assert.Equal(t, TierFor(tt.count), sel.Tier)
			assert.NotEmpty(t, sel.Rationale)
		})
	}

	t.Run("unknown_category_falls_back_to_residential", func(t *testing.T) {
		for _, count := range []int{0, 1, 3} {
			got := SelectMethod("castle", count)
			want := SelectMethod(CategoryResidential, count)
			assert.Equal(t, want.Method.Method(), got.Method.Method())
		}
	})

	t.Run("always_returns_a_known_method", func(t *testing.T) {
		for _, c := range Categories {
			for count := 0; count < 5; count++ {
				assert.Contains(t, Methods, SelectMethod(c, count).Method.Method())
			}
		}
	})

	t.Run("selected_method_is_invocable", func(t *testing.T) {
		sel := SelectMethod(CategoryLand, 0)
		dev := feasibleDevelopment()
		res, err := sel.Method.Value(Request{Development: &dev})
		require.NoError(t, err)
		assert.Equal(t, MethodResidual, res.Method)
	})
}

func TestParseCategory(t *testing.T) {
	c, ok := ParseCategory("gas_station")
	assert.True(t, ok)
	assert.Equal(t, CategoryFuelStation, c)

	c, ok = ParseCategory("hotel")
	assert.True(t, ok)
	assert.Equal(t, CategoryHotel, c)

	_, ok = ParseCategory("castle")
	assert.False(t, ok)
}

func TestMethodName(t *testing.T) {
	assert.Equal(t, "Discounted cash flow", MethodDCF.Name())
	assert.Equal(t, "mystery", Method("mystery").Name())
}
