package services

import (
	"appraisal/internal/valuation"
)

// Inputs below mirror the engine's assumption structs with every rate
// optional. Resolve fills the gaps from the configured house defaults so the
// engine always receives complete inputs.

// DevelopmentInput describes a development scheme for the residual method.
type DevelopmentInput struct {
	BuildableArea float64 `json:"buildable_area" yaml:"buildable_area"`
	// ConstructionArea defaults to BuildableArea.
	ConstructionArea    *float64 `json:"construction_area,omitempty" yaml:"construction_area,omitempty"`
	ExpectedRent        float64  `json:"expected_rent" yaml:"expected_rent"`
	OccupancyRate       *float64 `json:"occupancy_rate,omitempty" yaml:"occupancy_rate,omitempty" binding:"omitempty,fraction"`
	YieldRate           *float64 `json:"yield_rate,omitempty" yaml:"yield_rate,omitempty"`
	ConstructionCost    *float64 `json:"construction_cost,omitempty" yaml:"construction_cost,omitempty"`
	ProfessionalFeeRate *float64 `json:"professional_fee_rate,omitempty" yaml:"professional_fee_rate,omitempty"`
	MarketingRate       *float64 `json:"marketing_rate,omitempty" yaml:"marketing_rate,omitempty"`
	FinanceRate         *float64 `json:"finance_rate,omitempty" yaml:"finance_rate,omitempty"`
	ContingencyRate     *float64 `json:"contingency_rate,omitempty" yaml:"contingency_rate,omitempty"`
	DeveloperProfitRate *float64 `json:"developer_profit_rate,omitempty" yaml:"developer_profit_rate,omitempty"`
	LandYieldRate       *float64 `json:"land_yield_rate,omitempty" yaml:"land_yield_rate,omitempty"`
}

// Resolve completes the scheme with d.
func (in DevelopmentInput) Resolve(d valuation.ResidualDefaults) valuation.DevelopmentAssumptions {
	return valuation.DevelopmentAssumptions{
		BuildableArea:       in.BuildableArea,
		ConstructionArea:    or(in.ConstructionArea, in.BuildableArea),
		ExpectedRent:        in.ExpectedRent,
		OccupancyRate:       or(in.OccupancyRate, d.OccupancyRate),
		YieldRate:           or(in.YieldRate, d.YieldRate),
		ConstructionCost:    or(in.ConstructionCost, d.ConstructionCost),
		ProfessionalFeeRate: or(in.ProfessionalFeeRate, d.ProfessionalFeeRate),
		MarketingRate:       or(in.MarketingRate, d.MarketingRate),
		FinanceRate:         or(in.FinanceRate, d.FinanceRate),
		ContingencyRate:     or(in.ContingencyRate, d.ContingencyRate),
		DeveloperProfitRate: or(in.DeveloperProfitRate, d.DeveloperProfitRate),
		LandYieldRate:       or(in.LandYieldRate, d.LandYieldRate),
	}
}

// CashFlowInput describes an income property for the DCF method.
type CashFlowInput struct {
	InitialRent          float64   `json:"initial_rent" yaml:"initial_rent"`
	TotalArea            float64   `json:"total_area" yaml:"total_area"`
	HorizonYears         *int      `json:"horizon_years,omitempty" yaml:"horizon_years,omitempty" binding:"omitempty,min=1,max=100"`
	DiscountRate         *float64  `json:"discount_rate,omitempty" yaml:"discount_rate,omitempty"`
	TerminalGrowthRate   *float64  `json:"terminal_growth_rate,omitempty" yaml:"terminal_growth_rate,omitempty"`
	OccupancySchedule    []float64 `json:"occupancy_schedule,omitempty" yaml:"occupancy_schedule,omitempty" binding:"omitempty,dive,fraction"`
	RentGrowthRate       *float64  `json:"rent_growth_rate,omitempty" yaml:"rent_growth_rate,omitempty"`
	OperatingExpenseRate *float64  `json:"operating_expense_rate,omitempty" yaml:"operating_expense_rate,omitempty"`
	ManagementFeeRate    *float64  `json:"management_fee_rate,omitempty" yaml:"management_fee_rate,omitempty"`
	MaintenanceRate      *float64  `json:"maintenance_rate,omitempty" yaml:"maintenance_rate,omitempty"`
	TaxRate              *float64  `json:"tax_rate,omitempty" yaml:"tax_rate,omitempty" binding:"omitempty,fraction"`
	InitialInvestment    *float64  `json:"initial_investment,omitempty" yaml:"initial_investment,omitempty"`
}

// Resolve completes the forecast with d.
func (in CashFlowInput) Resolve(d valuation.CashFlowDefaults) valuation.CashFlowAssumptions {
	horizon := d.HorizonYears
	if in.HorizonYears != nil {
		horizon = *in.HorizonYears
	}
	schedule := in.OccupancySchedule
	if len(schedule) == 0 {
		schedule = d.OccupancySchedule
	}
	return valuation.CashFlowAssumptions{
		HorizonYears:         horizon,
		DiscountRate:         or(in.DiscountRate, d.DiscountRate),
		TerminalGrowthRate:   or(in.TerminalGrowthRate, d.TerminalGrowthRate),
		InitialRent:          in.InitialRent,
		TotalArea:            in.TotalArea,
		OccupancySchedule:    append([]float64(nil), schedule...),
		RentGrowthRate:       or(in.RentGrowthRate, d.RentGrowthRate),
		OperatingExpenseRate: or(in.OperatingExpenseRate, d.OperatingExpenseRate),
		ManagementFeeRate:    or(in.ManagementFeeRate, d.ManagementFeeRate),
		MaintenanceRate:      or(in.MaintenanceRate, d.MaintenanceRate),
		TaxRate:              or(in.TaxRate, d.TaxRate),
		InitialInvestment:    in.InitialInvestment,
	}
}

// BusinessInput describes a trading business for the profits method.
type BusinessInput struct {
	RevenueSources       map[string]float64 `json:"revenue_sources" yaml:"revenue_sources" binding:"required"`
	OperatingExpenseRate *float64           `json:"operating_expense_rate,omitempty" yaml:"operating_expense_rate,omitempty"`
	DepreciationRate     *float64           `json:"depreciation_rate,omitempty" yaml:"depreciation_rate,omitempty"`
	TaxRate              *float64           `json:"tax_rate,omitempty" yaml:"tax_rate,omitempty" binding:"omitempty,fraction"`
	OperatorRate         *float64           `json:"operator_rate,omitempty" yaml:"operator_rate,omitempty"`
	RentShareRate        *float64           `json:"rent_share_rate,omitempty" yaml:"rent_share_rate,omitempty"`
	EBITDAMultiple       *float64           `json:"ebitda_multiple,omitempty" yaml:"ebitda_multiple,omitempty"`
	AssumedYield         *float64           `json:"assumed_yield,omitempty" yaml:"assumed_yield,omitempty"`
	TotalArea            float64            `json:"total_area,omitempty" yaml:"total_area,omitempty"`
}

// Resolve completes the financials with d. A zero default multiple leaves
// the implied-value cross-check off unless the caller asks for one.
func (in BusinessInput) Resolve(d valuation.ProfitsDefaults) valuation.BusinessFinancials {
	sources := make(map[string]float64, len(in.RevenueSources))
	for k, v := range in.RevenueSources {
		sources[k] = v
	}
	b := valuation.BusinessFinancials{
		RevenueSources:       sources,
		OperatingExpenseRate: or(in.OperatingExpenseRate, d.OperatingExpenseRate),
		DepreciationRate:     or(in.DepreciationRate, d.DepreciationRate),
		TaxRate:              or(in.TaxRate, d.TaxRate),
		OperatorRate:         or(in.OperatorRate, d.OperatorRate),
		RentShareRate:        or(in.RentShareRate, d.RentShareRate),
		EBITDAMultiple:       in.EBITDAMultiple,
		AssumedYield:         in.AssumedYield,
		TotalArea:            in.TotalArea,
	}
	if b.EBITDAMultiple == nil && d.EBITDAMultiple > 0 {
		m := d.EBITDAMultiple
		b.EBITDAMultiple = &m
	}
	if b.AssumedYield == nil && d.AssumedYield > 0 {
		y := d.AssumedYield
		b.AssumedYield = &y
	}
	return b
}

// SiteRentTerms describes a site offered for lease.
type SiteRentTerms struct {
	Basis           valuation.SiteRentBasis    `json:"basis" yaml:"basis" binding:"required,site_rent_basis"`
	Area            float64                    `json:"area" yaml:"area"`
	Comparables     []valuation.SiteComparable `json:"comparables,omitempty" yaml:"comparables,omitempty"`
	ServicesCount   float64                    `json:"services_count,omitempty" yaml:"services_count,omitempty"`
	Frontage        float64                    `json:"frontage,omitempty" yaml:"frontage,omitempty"`
	LandValue       float64                    `json:"land_value,omitempty" yaml:"land_value,omitempty"`
	LandYieldRate   *float64                   `json:"land_yield_rate,omitempty" yaml:"land_yield_rate,omitempty" binding:"omitempty,fraction"`
	Rate            *float64                   `json:"rate,omitempty" yaml:"rate,omitempty" binding:"omitempty,fraction"`
	ExpectedRevenue float64                    `json:"expected_revenue,omitempty" yaml:"expected_revenue,omitempty"`
	RentToRevenue   *float64                   `json:"rent_to_revenue,omitempty" yaml:"rent_to_revenue,omitempty" binding:"omitempty,fraction"`
	LeaseType       valuation.LeaseType        `json:"lease_type,omitempty" yaml:"lease_type,omitempty" binding:"omitempty,lease_type"`
	LeaseMultiplier *float64                   `json:"lease_multiplier,omitempty" yaml:"lease_multiplier,omitempty"`
}

// Resolve completes the terms with d. The lease multiplier comes from the
// lease type's default and is 1 for lease types without one. Comparables are
// copied.
func (in SiteRentTerms) Resolve(d valuation.SiteRentDefaults) valuation.SiteRentInput {
	lease := in.LeaseType
	if lease == "" {
		lease = valuation.LeaseStandard
	}
	multiplier, ok := d.LeaseMultipliers[lease]
	if !ok {
		multiplier = 1
	}
	return valuation.SiteRentInput{
		Basis:           in.Basis,
		Area:            in.Area,
		Comparables:     append([]valuation.SiteComparable(nil), in.Comparables...),
		ServicesCount:   in.ServicesCount,
		Frontage:        in.Frontage,
		LandValue:       in.LandValue,
		LandYieldRate:   or(in.LandYieldRate, d.LandYieldRate),
		Rate:            or(in.Rate, d.PercentageRate),
		ExpectedRevenue: in.ExpectedRevenue,
		RentToRevenue:   or(in.RentToRevenue, d.RentToRevenue),
		LeaseType:       lease,
		LeaseMultiplier: or(in.LeaseMultiplier, multiplier),
	}
}

func or(v *float64, def float64) float64 {
	if v != nil {
		return *v
	}
	return def
}
