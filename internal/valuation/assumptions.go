package valuation

// Engine-level defaults that apply when an optional input is absent.
const (
	DefaultInvestmentShare = 0.7
	DefaultAssumedYield    = 0.08
)

// Perturbations used by the built-in sensitivity grids.
var (
	GDVChanges     = []float64{-0.10, -0.05, 0, 0.05, 0.10}
	CostChanges    = []float64{-0.05, 0, 0.05, 0.10}
	RevenueChanges = []float64{-0.10, -0.05, 0, 0.05, 0.10}
)

// Assumptions gathers the house defaults for every method in one place.
// Engines never read it; callers use it to complete partial inputs before
// invoking an engine. It can be overridden from YAML.
type Assumptions struct {
	Comparison ComparisonDefaults `json:"comparison" yaml:"comparison"`
	Residual   ResidualDefaults   `json:"residual" yaml:"residual"`
	CashFlow   CashFlowDefaults   `json:"cash_flow" yaml:"cash_flow"`
	Profits    ProfitsDefaults    `json:"profits" yaml:"profits"`
	SiteRent   SiteRentDefaults   `json:"site_rent" yaml:"site_rent"`
}

// ComparisonDefaults holds the default adjustment matrix.
type ComparisonDefaults struct {
	Weights AdjustmentWeights `json:"weights" yaml:"weights"`
}

// ResidualDefaults fills DevelopmentAssumptions.
type ResidualDefaults struct {
	OccupancyRate       float64 `json:"occupancy_rate" yaml:"occupancy_rate"`
	YieldRate           float64 `json:"yield_rate" yaml:"yield_rate"`
	ConstructionCost    float64 `json:"construction_cost" yaml:"construction_cost"`
	ProfessionalFeeRate float64 `json:"professional_fee_rate" yaml:"professional_fee_rate"`
	MarketingRate       float64 `json:"marketing_rate" yaml:"marketing_rate"`
	FinanceRate         float64 `json:"finance_rate" yaml:"finance_rate"`
	ContingencyRate     float64 `json:"contingency_rate" yaml:"contingency_rate"`
	DeveloperProfitRate float64 `json:"developer_profit_rate" yaml:"developer_profit_rate"`
	LandYieldRate       float64 `json:"land_yield_rate" yaml:"land_yield_rate"`
}

// CashFlowDefaults fills CashFlowAssumptions.
type CashFlowDefaults struct {
	HorizonYears         int       `json:"horizon_years" yaml:"horizon_years"`
	DiscountRate         float64   `json:"discount_rate" yaml:"discount_rate"`
	TerminalGrowthRate   float64   `json:"terminal_growth_rate" yaml:"terminal_growth_rate"`
	OccupancySchedule    []float64 `json:"occupancy_schedule" yaml:"occupancy_schedule"`
	RentGrowthRate       float64   `json:"rent_growth_rate" yaml:"rent_growth_rate"`
	OperatingExpenseRate float64   `json:"operating_expense_rate" yaml:"operating_expense_rate"`
	ManagementFeeRate    float64   `json:"management_fee_rate" yaml:"management_fee_rate"`
	MaintenanceRate      float64   `json:"maintenance_rate" yaml:"maintenance_rate"`
	TaxRate              float64   `json:"tax_rate" yaml:"tax_rate"`
}

// ProfitsDefaults fills BusinessFinancials.
type ProfitsDefaults struct {
	OperatingExpenseRate float64 `json:"operating_expense_rate" yaml:"operating_expense_rate"`
	DepreciationRate     float64 `json:"depreciation_rate" yaml:"depreciation_rate"`
	TaxRate              float64 `json:"tax_rate" yaml:"tax_rate"`
	OperatorRate         float64 `json:"operator_rate" yaml:"operator_rate"`
	RentShareRate        float64 `json:"rent_share_rate" yaml:"rent_share_rate"`
	EBITDAMultiple       float64 `json:"ebitda_multiple" yaml:"ebitda_multiple"`
	AssumedYield         float64 `json:"assumed_yield" yaml:"assumed_yield"`
}

// SiteRentDefaults fills SiteRentInput.
type SiteRentDefaults struct {
	PercentageRate   float64               `json:"percentage_rate" yaml:"percentage_rate"`
	LandYieldRate    float64               `json:"land_yield_rate" yaml:"land_yield_rate"`
	RentToRevenue    float64               `json:"rent_to_revenue" yaml:"rent_to_revenue"`
	LeaseMultipliers map[LeaseType]float64 `json:"lease_multipliers" yaml:"lease_multipliers"`
}

// DefaultAssumptions returns the house defaults. Each call returns fresh maps
// and slices so callers may modify the copy.
func DefaultAssumptions() Assumptions {
	return Assumptions{
		Comparison: ComparisonDefaults{
			Weights: AdjustmentWeights{
				FactorLocation:   0.30,
				"specifications": 0.25,
				"age":            0.20,
				"condition":      0.15,
				"facilities":     0.10,
			},
		},
		Residual: ResidualDefaults{
			OccupancyRate:       0.85,
			YieldRate:           0.08,
			ConstructionCost:    3000,
			ProfessionalFeeRate: 0.12,
			MarketingRate:       0.05,
			FinanceRate:         0.08,
			ContingencyRate:     0.10,
			DeveloperProfitRate: 0.20,
			LandYieldRate:       0.05,
		},
		CashFlow: CashFlowDefaults{
			HorizonYears:         10,
			DiscountRate:         0.09,
			TerminalGrowthRate:   0.02,
			OccupancySchedule:    []float64{0.4, 0.6, 0.75, 0.85, 0.9},
			RentGrowthRate:       0.03,
			OperatingExpenseRate: 0.35,
			ManagementFeeRate:    0.03,
			MaintenanceRate:      0.02,
			TaxRate:              0.20,
		},
		Profits: ProfitsDefaults{
			OperatingExpenseRate: 0.60,
			DepreciationRate:     0.05,
			TaxRate:              0.20,
			OperatorRate:         0.10,
			RentShareRate:        0.50,
			EBITDAMultiple:       8,
			AssumedYield:         DefaultAssumedYield,
		},
		SiteRent: SiteRentDefaults{
			PercentageRate: 0.08,
			LandYieldRate:  0.08,
			RentToRevenue:  0.15,
			LeaseMultipliers: map[LeaseType]float64{
				LeaseStandard:  1.0,
				LeaseTemporary: 0.8,
				LeaseLongTerm:  1.5,
				LeaseDirect:    1.2,
				LeaseExempted:  1.0,
			},
		},
	}
}
