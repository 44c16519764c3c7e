package valuation

import "math"

// Option tunes an engine call.
type Option func(*options)

type options struct {
	sensitivity bool
}

// WithSensitivity attaches the method's sensitivity grid to the Result.
func WithSensitivity() Option {
	return func(o *options) { o.sensitivity = true }
}

func collect(opts []Option) options {
	var o options
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// Sensitivity inputs of the residual grid.
const (
	InputGDV             = "gdv"
	InputDevelopmentCost = "development_cost"
)

// ValueByResidual derives land value as what remains of the gross development
// value once development costs and developer profit are paid. Developer profit
// is charged on total development cost. A negative residual is reported as a
// zero land value flagged FlagInfeasible rather than as an error.
func ValueByResidual(a DevelopmentAssumptions, opts ...Option) (Result, error) {
	if !finite(a.YieldRate) || a.YieldRate <= 0 {
		return Result{}, invalidAssumption("yield rate must be greater than zero, got %v", a.YieldRate)
	}
	if err := firstErr(
		positive("buildable area", a.BuildableArea),
		nonNegative("construction area", a.ConstructionArea),
		nonNegative("expected rent", a.ExpectedRent),
		fraction("occupancy rate", a.OccupancyRate),
		nonNegative("construction cost", a.ConstructionCost),
		nonNegative("professional fee rate", a.ProfessionalFeeRate),
		nonNegative("marketing rate", a.MarketingRate),
		nonNegative("finance rate", a.FinanceRate),
		nonNegative("contingency rate", a.ContingencyRate),
		nonNegative("developer profit rate", a.DeveloperProfitRate),
		nonNegative("land yield rate", a.LandYieldRate),
	); err != nil {
		return Result{}, err
	}

	income := a.ConstructionArea * a.ExpectedRent * a.OccupancyRate
	gdv, err := checked("gross development value", income/a.YieldRate)
	if err != nil {
		return Result{}, err
	}

	construction := a.ConstructionArea * a.ConstructionCost
	fees := construction * a.ProfessionalFeeRate
	marketing := gdv * a.MarketingRate
	finance := (construction + fees) * a.FinanceRate
	contingency := construction * a.ContingencyRate
	tdc := construction + fees + marketing + finance + contingency
	profit := tdc * a.DeveloperProfitRate

	residual := gdv - (tdc + profit)
	land := math.Max(0, residual)
	groundRent := land * a.LandYieldRate
	rentPerUnit, err := checked("rent per unit area", groundRent/a.BuildableArea)
	if err != nil {
		return Result{}, err
	}

	res := Result{
		Method:           MethodResidual,
		TotalValue:       land,
		ValuePerUnitArea: land / a.BuildableArea,
		Breakdown: []BreakdownEntry{
			entry("annual_income", income),
			entry("gross_development_value", gdv),
			entry("construction_cost", construction),
			entry("professional_fees", fees),
			entry("marketing_cost", marketing),
			entry("finance_cost", finance),
			entry("contingency", contingency),
			entry("total_development_cost", tdc),
			entry("developer_profit", profit),
			entry("residual_value", residual),
			entry("land_value", land),
			entry("annual_ground_rent", groundRent),
			entry("rent_per_unit_area", rentPerUnit),
		},
	}
	if residual < 0 {
		res.Flags = append(res.Flags, FlagInfeasible)
	}

	if collect(opts).sensitivity {
		grid, err := Analyze(residualLandValue(a.DeveloperProfitRate),
			map[string]float64{InputGDV: gdv, InputDevelopmentCost: tdc},
			Axis{Input: InputGDV, Changes: GDVChanges},
			Axis{Input: InputDevelopmentCost, Changes: CostChanges},
		)
		if err != nil {
			return Result{}, err
		}
		res.Sensitivity = grid
	}
	return res, nil
}

// residualLandValue recomputes land value from a perturbed GDV and total
// development cost, charging developer profit on the perturbed cost.
func residualLandValue(profitRate float64) Func {
	return func(in map[string]float64) (float64, error) {
		cost := in[InputDevelopmentCost]
		return math.Max(0, in[InputGDV]-cost*(1+profitRate)), nil
	}
}
