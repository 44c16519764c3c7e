package valuation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "appraisal/internal/errors"
)

func TestValueSiteRent(t *testing.T) {
	t.Run("percentage_of_land_value", func(t *testing.T) {
		res, err := ValueSiteRent(SiteRentInput{
			Basis:           BasisPercentageOfValue,
			Area:            1000,
			LandValue:       1_000_000,
			Rate:            0.08,
			LeaseType:       LeaseLongTerm,
			LeaseMultiplier: 1.5,
		})
		require.NoError(t, err)
		assert.Equal(t, MethodSiteRent, res.Method)
		assert.InDelta(t, 80_000, figure(t, res, "base_annual_rent"), 1e-9)
		assert.InDelta(t, 120_000, res.TotalValue, 1e-9)
		assert.InDelta(t, 10_000, figure(t, res, "monthly_rent"), 1e-9)
		assert.InDelta(t, 120, res.ValuePerUnitArea, 1e-9)
	})

	t.Run("share_of_expected_revenue", func(t *testing.T) {
		res, err := ValueSiteRent(SiteRentInput{
			Basis:           BasisIncomeShare,
			Area:            500,
			ExpectedRevenue: 500_000,
			RentToRevenue:   0.15,
			LeaseMultiplier: 1,
		})
		require.NoError(t, err)
		assert.InDelta(t, 75_000, res.TotalValue, 1e-9)
		assert.InDelta(t, 6_250, figure(t, res, "monthly_rent"), 1e-9)
		assert.InDelta(t, 12.5, figure(t, res, "monthly_rent_per_unit_area"), 1e-9)
	})

	t.Run("comparable_site_rents", func(t *testing.T) {
		// mean rent 100; 5 services against an average of 3 is +4%;
		// frontage 30 against 20 is +5%
		res, err := ValueSiteRent(SiteRentInput{
			Basis: BasisComparables,
			Area:  1000,
			Comparables: []SiteComparable{
				{ID: "plot-7", RentPerUnitArea: 100, ServicesCount: 3, Frontage: 20},
				{RentPerUnitArea: 90, ServicesCount: 2},
				{RentPerUnitArea: 110, ServicesCount: 4, Frontage: 20},
			},
			ServicesCount:   5,
			Frontage:        30,
			LeaseMultiplier: 1,
		})
		require.NoError(t, err)
		assert.InDelta(t, 100, figure(t, res, "mean_comparable_rent"), 1e-9)
		assert.InDelta(t, 0.04, figure(t, res, "service_adjustment"), 1e-12)
		assert.InDelta(t, 0.05, figure(t, res, "frontage_adjustment"), 1e-12)
		assert.InDelta(t, 109, figure(t, res, "adjusted_rent_per_unit_area"), 1e-9)
		assert.InDelta(t, 109_000, res.TotalValue, 1e-6)
		assert.InDelta(t, 109_000.0/12, figure(t, res, "monthly_rent"), 1e-6)
		assert.Empty(t, res.Flags)
	})

	t.Run("comparable_adjustments_are_capped", func(t *testing.T) {
		comps := []SiteComparable{{RentPerUnitArea: 100, ServicesCount: 10, Frontage: 10}}
		res, err := ValueSiteRent(SiteRentInput{
			Basis: BasisComparables, Area: 100, Comparables: comps,
			ServicesCount: 0, Frontage: 100, LeaseMultiplier: 1,
		})
		require.NoError(t, err)
		assert.InDelta(t, -ServiceAdjustmentCap, figure(t, res, "service_adjustment"), 1e-12)
		assert.InDelta(t, FrontageAdjustmentCap, figure(t, res, "frontage_adjustment"), 1e-12)
	})

	t.Run("narrower_frontage_is_not_adjusted", func(t *testing.T) {
		comps := []SiteComparable{{RentPerUnitArea: 100, ServicesCount: 2, Frontage: 40}}
		res, err := ValueSiteRent(SiteRentInput{
			Basis: BasisComparables, Area: 100, Comparables: comps,
			ServicesCount: 2, Frontage: 10, LeaseMultiplier: 1,
		})
		require.NoError(t, err)
		assert.Equal(t, 0.0, figure(t, res, "frontage_adjustment"))
		assert.InDelta(t, 10_000, res.TotalValue, 1e-9)
	})

	t.Run("comparables_required", func(t *testing.T) {
		_, err := ValueSiteRent(SiteRentInput{Basis: BasisComparables, Area: 100, LeaseMultiplier: 1})
		assert.ErrorIs(t, err, apperrors.ErrInsufficientData)
	})

	t.Run("residual_land_yield", func(t *testing.T) {
		res, err := ValueSiteRent(SiteRentInput{
			Basis:           BasisResidual,
			Area:            2000,
			LandValue:       1_000_000,
			LandYieldRate:   0.08,
			LeaseMultiplier: 1,
		})
		require.NoError(t, err)
		assert.InDelta(t, 80_000, res.TotalValue, 1e-9)
		assert.InDelta(t, 40, res.ValuePerUnitArea, 1e-9)
	})

	t.Run("residual_requires_yield", func(t *testing.T) {
		_, err := ValueSiteRent(SiteRentInput{Basis: BasisResidual, Area: 10, LandValue: 100, LeaseMultiplier: 1})
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})

	t.Run("large_rent_needs_minister_approval", func(t *testing.T) {
		in := SiteRentInput{
			Basis:           BasisPercentageOfValue,
			Area:            10_000,
			LandValue:       10_000_000,
			Rate:            0.08,
			LeaseMultiplier: 1.5,
		}
		res, err := ValueSiteRent(in)
		require.NoError(t, err)
		assert.InDelta(t, 1_200_000, res.TotalValue, 1e-6)
		assert.True(t, res.HasFlag(FlagMinisterApproval))

		in.LeaseMultiplier = 1.25
		res, err = ValueSiteRent(in)
		require.NoError(t, err)
		assert.InDelta(t, 1_000_000, res.TotalValue, 1e-6)
		assert.False(t, res.HasFlag(FlagMinisterApproval))
	})

	t.Run("rejects_unknown_basis", func(t *testing.T) {
		_, err := ValueSiteRent(SiteRentInput{Basis: "auction", Area: 10, LeaseMultiplier: 1})
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})

	t.Run("rejects_missing_multiplier", func(t *testing.T) {
		_, err := ValueSiteRent(SiteRentInput{Basis: BasisIncomeShare, Area: 10, ExpectedRevenue: 100, RentToRevenue: 0.1})
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})
}
