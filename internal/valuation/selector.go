package valuation

import "fmt"

// DataTier grades how much comparable evidence is available.
type DataTier string

// Data availability tiers.
const (
	TierHigh   DataTier = "high"
	TierMedium DataTier = "medium"
	TierLow    DataTier = "low"
)

// TierFor grades a comparable count: three or more is high, one or two is
// medium, none is low.
func TierFor(comparableCount int) DataTier {
	switch {
	case comparableCount >= 3:
		return TierHigh
	case comparableCount >= 1:
		return TierMedium
	default:
		return TierLow
	}
}

var methodTable = map[PropertyCategory]map[DataTier]Method{
	CategoryResidential: {TierHigh: MethodSalesComparison, TierMedium: MethodSalesComparison, TierLow: MethodResidual},
	CategoryCommercial:  {TierHigh: MethodDCF, TierMedium: MethodSalesComparison, TierLow: MethodResidual},
	CategoryIndustrial:  {TierHigh: MethodSalesComparison, TierMedium: MethodDCF, TierLow: MethodResidual},
	CategoryHotel:       {TierHigh: MethodProfits, TierMedium: MethodDCF, TierLow: MethodSalesComparison},
	CategoryHospital:    {TierHigh: MethodProfits, TierMedium: MethodDCF, TierLow: MethodResidual},
	CategoryFuelStation: {TierHigh: MethodProfits, TierMedium: MethodSalesComparison, TierLow: MethodResidual},
	CategoryLand:        {TierHigh: MethodSalesComparison, TierMedium: MethodResidual, TierLow: MethodResidual},
}

var methodNames = map[Method]string{
	MethodSalesComparison: "Sales comparison",
	MethodResidual:        "Residual",
	MethodDCF:             "Discounted cash flow",
	MethodProfits:         "Profits",
	MethodSiteRent:        "Site rental value",
}

// Name returns the display name of m.
func (m Method) Name() string {
	if n, ok := methodNames[m]; ok {
		return n
	}
	return string(m)
}

// Selection is the selector's choice and why it was made.
type Selection struct {
	Method    ValuationMethod
	Tier      DataTier
	Rationale string
}

// SelectMethod picks the method for a category given how many comparables
// are on hand. It never fails: unknown categories are treated as residential
// and missing data only lowers the tier.
func SelectMethod(category PropertyCategory, comparableCount int) Selection {
	tier := TierFor(comparableCount)
	row, ok := methodTable[category]
	if !ok {
		row = methodTable[CategoryResidential]
	}
	m := row[tier]
	impl, _ := MethodFor(m)
	return Selection{Method: impl, Tier: tier, Rationale: rationale(m, category)}
}

func rationale(m Method, category PropertyCategory) string {
	switch m {
	case MethodSalesComparison:
		return fmt.Sprintf("Recent sales or lettings of similar %s properties are available for comparison", category)
	case MethodResidual:
		return fmt.Sprintf("The %s site is held for development and lacks comparable evidence", category)
	case MethodDCF:
		return fmt.Sprintf("The %s property produces income that can be forecast over time", category)
	case MethodProfits:
		return fmt.Sprintf("The %s property is specialised and its value follows the business trading from it", category)
	}
	return "Best fit for the available data and property type"
}
