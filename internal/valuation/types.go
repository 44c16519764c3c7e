// Package valuation implements the appraisal methods: sales comparison,
// residual land value, discounted cash flow and the profits method, plus the
// shared adjustment, confidence and sensitivity utilities and the selector
// that picks a method for a property.
//
// Every function in this package is pure. Inputs are plain values, outputs are
// freshly allocated Results, and nothing is cached between calls, so any
// number of valuations may run concurrently.
package valuation

// PropertyCategory classifies the subject for method selection.
type PropertyCategory string

// Supported property categories.
const (
	CategoryResidential PropertyCategory = "residential"
	CategoryCommercial  PropertyCategory = "commercial"
	CategoryIndustrial  PropertyCategory = "industrial"
	CategoryHotel       PropertyCategory = "hotel"
	CategoryHospital    PropertyCategory = "hospital"
	CategoryFuelStation PropertyCategory = "fuel_station"
	CategoryLand        PropertyCategory = "land"
)

// Categories lists every supported category in table order.
var Categories = []PropertyCategory{
	CategoryResidential,
	CategoryCommercial,
	CategoryIndustrial,
	CategoryHotel,
	CategoryHospital,
	CategoryFuelStation,
	CategoryLand,
}

// Valid reports whether c is one of the supported categories.
func (c PropertyCategory) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

var categoryAliases = map[string]PropertyCategory{
	"gas_station":    CategoryFuelStation,
	"petrol_station": CategoryFuelStation,
}

// ParseCategory resolves a category name, accepting the aliases used by
// older data sets. ok is false for names it does not recognise.
func ParseCategory(name string) (c PropertyCategory, ok bool) {
	if alias, found := categoryAliases[name]; found {
		return alias, true
	}
	c = PropertyCategory(name)
	return c, c.Valid()
}

// GeoPoint is an optional WGS84 location carried for collaborators; the
// engine does not use it.
type GeoPoint struct {
	Latitude  float64 `json:"latitude" yaml:"latitude"`
	Longitude float64 `json:"longitude" yaml:"longitude"`
}

// SubjectProperty is the property being valued.
type SubjectProperty struct {
	Area      float64          `json:"area" yaml:"area"`
	Category  PropertyCategory `json:"category" yaml:"category"`
	AgeYears  float64          `json:"age_years" yaml:"age_years"`
	Condition float64          `json:"condition" yaml:"condition"`
	Zoning    string           `json:"zoning,omitempty" yaml:"zoning,omitempty"`
	// LocationScore and Frontage take part in weighted adjustments only when set.
	LocationScore *float64           `json:"location_score,omitempty" yaml:"location_score,omitempty"`
	Frontage      *float64           `json:"frontage,omitempty" yaml:"frontage,omitempty"`
	Attributes    map[string]float64 `json:"attributes,omitempty" yaml:"attributes,omitempty"`
	Location      *GeoPoint          `json:"location,omitempty" yaml:"location,omitempty"`
}

// ComparableProperty is a recent sale or letting used as market evidence.
type ComparableProperty struct {
	ID            string             `json:"id,omitempty" yaml:"id,omitempty"`
	UnitPrice     float64            `json:"unit_price" yaml:"unit_price"`
	Area          float64            `json:"area" yaml:"area"`
	AgeYears      float64            `json:"age_years" yaml:"age_years"`
	Condition     float64            `json:"condition" yaml:"condition"`
	LocationScore float64            `json:"location_score" yaml:"location_score"`
	Frontage      *float64           `json:"frontage,omitempty" yaml:"frontage,omitempty"`
	Attributes    map[string]float64 `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

// AdjustmentWeights maps a factor name to the fraction of its normalized
// difference applied to a comparable's price.
type AdjustmentWeights map[string]float64

// DevelopmentAssumptions drive the residual method.
type DevelopmentAssumptions struct {
	BuildableArea       float64 `json:"buildable_area" yaml:"buildable_area"`
	ConstructionArea    float64 `json:"construction_area" yaml:"construction_area"`
	ExpectedRent        float64 `json:"expected_rent" yaml:"expected_rent"`
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

// CashFlowAssumptions drive the discounted cash flow method.
type CashFlowAssumptions struct {
	HorizonYears         int       `json:"horizon_years" yaml:"horizon_years"`
	DiscountRate         float64   `json:"discount_rate" yaml:"discount_rate"`
	TerminalGrowthRate   float64   `json:"terminal_growth_rate" yaml:"terminal_growth_rate"`
	InitialRent          float64   `json:"initial_rent" yaml:"initial_rent"`
	TotalArea            float64   `json:"total_area" yaml:"total_area"`
	OccupancySchedule    []float64 `json:"occupancy_schedule" yaml:"occupancy_schedule"`
	RentGrowthRate       float64   `json:"rent_growth_rate" yaml:"rent_growth_rate"`
	OperatingExpenseRate float64   `json:"operating_expense_rate" yaml:"operating_expense_rate"`
	ManagementFeeRate    float64   `json:"management_fee_rate" yaml:"management_fee_rate"`
	MaintenanceRate      float64   `json:"maintenance_rate" yaml:"maintenance_rate"`
	TaxRate              float64   `json:"tax_rate" yaml:"tax_rate"`
	// InitialInvestment defaults to DefaultInvestmentShare of present value when nil.
	InitialInvestment *float64 `json:"initial_investment,omitempty" yaml:"initial_investment,omitempty"`
}

// BusinessFinancials drive the profits method.
type BusinessFinancials struct {
	RevenueSources       map[string]float64 `json:"revenue_sources" yaml:"revenue_sources"`
	OperatingExpenseRate float64            `json:"operating_expense_rate" yaml:"operating_expense_rate"`
	DepreciationRate     float64            `json:"depreciation_rate" yaml:"depreciation_rate"`
	TaxRate              float64            `json:"tax_rate" yaml:"tax_rate"`
	OperatorRate         float64            `json:"operator_rate" yaml:"operator_rate"`
	RentShareRate        float64            `json:"rent_share_rate" yaml:"rent_share_rate"`
	EBITDAMultiple       *float64           `json:"ebitda_multiple,omitempty" yaml:"ebitda_multiple,omitempty"`
	AssumedYield         *float64           `json:"assumed_yield,omitempty" yaml:"assumed_yield,omitempty"`
	TotalArea            float64            `json:"total_area,omitempty" yaml:"total_area,omitempty"`
}
