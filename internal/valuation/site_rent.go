package valuation

import (
	"fmt"
	"math"
)

// SiteRentBasis selects how a site's ground rent is derived.
type SiteRentBasis string

// Site rent bases.
const (
	BasisComparables       SiteRentBasis = "comparables"
	BasisResidual          SiteRentBasis = "residual"
	BasisPercentageOfValue SiteRentBasis = "percentage_of_value"
	BasisIncomeShare       SiteRentBasis = "income_share"
)

// LeaseType is the municipal lease arrangement a site is offered under.
type LeaseType string

// Lease types.
const (
	LeaseStandard  LeaseType = "standard"
	LeaseTemporary LeaseType = "temporary"
	LeaseLongTerm  LeaseType = "long_term"
	LeaseDirect    LeaseType = "direct"
	LeaseExempted  LeaseType = "exempted"
)

// Comparable site rent adjustments.
const (
	ServiceAdjustmentStep = 0.02
	ServiceAdjustmentCap  = 0.10
	FrontageAdjustment    = 0.10
	FrontageAdjustmentCap = 0.15
)

// MinisterApprovalThreshold is the annual rent above which a lease needs
// ministerial sign-off.
const MinisterApprovalThreshold = 1_000_000

// FlagMinisterApproval is raised on site rents above MinisterApprovalThreshold.
const FlagMinisterApproval = "requires_minister_approval"

// SiteComparable is a leased site used as rent evidence.
type SiteComparable struct {
	ID              string  `json:"id,omitempty" yaml:"id,omitempty"`
	RentPerUnitArea float64 `json:"rent_per_unit_area" yaml:"rent_per_unit_area"`
	ServicesCount   float64 `json:"services_count" yaml:"services_count"`
	Frontage        float64 `json:"frontage,omitempty" yaml:"frontage,omitempty"`
}

// SiteRentInput values the annual ground rent of a site.
type SiteRentInput struct {
	Basis SiteRentBasis `json:"basis" yaml:"basis"`
	Area  float64       `json:"area" yaml:"area"`
	// Comparables, ServicesCount and Frontage apply to BasisComparables.
	Comparables   []SiteComparable `json:"comparables,omitempty" yaml:"comparables,omitempty"`
	ServicesCount float64          `json:"services_count,omitempty" yaml:"services_count,omitempty"`
	Frontage      float64          `json:"frontage,omitempty" yaml:"frontage,omitempty"`
	// LandValue applies to BasisResidual with LandYieldRate and to
	// BasisPercentageOfValue with Rate.
	LandValue     float64 `json:"land_value,omitempty" yaml:"land_value,omitempty"`
	LandYieldRate float64 `json:"land_yield_rate,omitempty" yaml:"land_yield_rate,omitempty"`
	Rate          float64 `json:"rate,omitempty" yaml:"rate,omitempty"`
	// ExpectedRevenue and RentToRevenue apply to BasisIncomeShare.
	ExpectedRevenue float64   `json:"expected_revenue,omitempty" yaml:"expected_revenue,omitempty"`
	RentToRevenue   float64   `json:"rent_to_revenue,omitempty" yaml:"rent_to_revenue,omitempty"`
	LeaseType       LeaseType `json:"lease_type,omitempty" yaml:"lease_type,omitempty"`
	LeaseMultiplier float64   `json:"lease_multiplier" yaml:"lease_multiplier"`
}

// ValueSiteRent returns the annual ground rent of a site as TotalValue and
// the rent per unit area as ValuePerUnitArea. The lease multiplier scales
// the base rent for the lease arrangement. Rents above
// MinisterApprovalThreshold carry FlagMinisterApproval.
func ValueSiteRent(in SiteRentInput) (Result, error) {
	if err := firstErr(
		positive("site area", in.Area),
		positive("lease multiplier", in.LeaseMultiplier),
	); err != nil {
		return Result{}, err
	}

	var base float64
	var breakdown []BreakdownEntry
	switch in.Basis {
	case BasisComparables:
		perUnit, entries, err := comparableSiteRent(in)
		if err != nil {
			return Result{}, err
		}
		base = perUnit * in.Area
		breakdown = entries
	case BasisResidual:
		if err := firstErr(
			positive("land value", in.LandValue),
			positive("land yield rate", in.LandYieldRate),
			fraction("land yield rate", in.LandYieldRate),
		); err != nil {
			return Result{}, err
		}
		base = in.LandValue * in.LandYieldRate
		breakdown = []BreakdownEntry{entry("land_value", in.LandValue), entry("land_yield_rate", in.LandYieldRate)}
	case BasisPercentageOfValue:
		if err := firstErr(
			positive("land value", in.LandValue),
			fraction("rate", in.Rate),
		); err != nil {
			return Result{}, err
		}
		base = in.LandValue * in.Rate
		breakdown = []BreakdownEntry{entry("land_value", in.LandValue), entry("rate", in.Rate)}
	case BasisIncomeShare:
		if err := firstErr(
			positive("expected revenue", in.ExpectedRevenue),
			fraction("rent to revenue", in.RentToRevenue),
		); err != nil {
			return Result{}, err
		}
		base = in.ExpectedRevenue * in.RentToRevenue
		breakdown = []BreakdownEntry{entry("expected_revenue", in.ExpectedRevenue), entry("rent_to_revenue", in.RentToRevenue)}
	default:
		return Result{}, invalidInput("unknown site rent basis %q", in.Basis)
	}

	annual := base * in.LeaseMultiplier
	breakdown = append(breakdown,
		entry("base_annual_rent", base),
		entry("lease_multiplier", in.LeaseMultiplier),
		entry("annual_rent", annual),
		entry("monthly_rent", annual/12),
		entry("rent_per_unit_area", annual/in.Area),
		entry("monthly_rent_per_unit_area", annual/12/in.Area),
	)
	res := Result{
		Method:           MethodSiteRent,
		TotalValue:       annual,
		ValuePerUnitArea: annual / in.Area,
		Breakdown:        breakdown,
	}
	if annual > MinisterApprovalThreshold {
		res.Flags = append(res.Flags, FlagMinisterApproval)
	}
	return res, nil
}

// comparableSiteRent returns the adjusted rent per unit area from the mean
// comparable rent. Services above or below the comparables' average move it
// by ServiceAdjustmentStep each, within ±ServiceAdjustmentCap; a wider
// frontage than the comparables' average adds FrontageAdjustment of the
// relative gap, up to FrontageAdjustmentCap. Frontage is compared only when
// the site and at least one comparable state it.
func comparableSiteRent(in SiteRentInput) (float64, []BreakdownEntry, error) {
	if len(in.Comparables) == 0 {
		return 0, nil, insufficientData("comparable site rent needs at least one comparable site")
	}
	if err := firstErr(
		nonNegative("site services count", in.ServicesCount),
		nonNegative("site frontage", in.Frontage),
	); err != nil {
		return 0, nil, err
	}

	var rentSum, servicesSum, frontageSum float64
	var frontages int
	details := make([]BreakdownEntry, 0, len(in.Comparables))
	for i, c := range in.Comparables {
		n := i + 1
		if err := firstErr(
			positive(fmt.Sprintf("comparable site %d rent", n), c.RentPerUnitArea),
			nonNegative(fmt.Sprintf("comparable site %d services count", n), c.ServicesCount),
			nonNegative(fmt.Sprintf("comparable site %d frontage", n), c.Frontage),
		); err != nil {
			return 0, nil, err
		}
		rentSum += c.RentPerUnitArea
		servicesSum += c.ServicesCount
		if c.Frontage > 0 {
			frontageSum += c.Frontage
			frontages++
		}
		details = append(details, BreakdownEntry{
			Key:   fmt.Sprintf("site_%d", n),
			Label: c.ID,
			Value: c.RentPerUnitArea,
		})
	}
	count := float64(len(in.Comparables))
	meanRent := rentSum / count
	avgServices := servicesSum / count

	var reasons []string
	serviceAdj := math.Max(-ServiceAdjustmentCap, math.Min(ServiceAdjustmentCap, (in.ServicesCount-avgServices)*ServiceAdjustmentStep))
	if serviceAdj != 0 {
		reasons = append(reasons, fmt.Sprintf("services: %+.1f%%", serviceAdj*100))
	}

	var frontageAdj float64
	if in.Frontage > 0 && frontages > 0 {
		avgFrontage := frontageSum / float64(frontages)
		if in.Frontage > avgFrontage {
			frontageAdj = math.Min((in.Frontage-avgFrontage)/avgFrontage*FrontageAdjustment, FrontageAdjustmentCap)
			reasons = append(reasons, fmt.Sprintf("frontage: %+.1f%%", frontageAdj*100))
		}
	}

	total := serviceAdj + frontageAdj
	adjusted := meanRent * (1 + total)
	return adjusted, []BreakdownEntry{
		{Key: "comparables", Value: count, Details: details},
		entry("mean_comparable_rent", meanRent),
		entry("service_adjustment", serviceAdj),
		entry("frontage_adjustment", frontageAdj),
		{Key: "total_adjustment", Value: total, Notes: reasons},
		entry("adjusted_rent_per_unit_area", adjusted),
	}, nil
}
