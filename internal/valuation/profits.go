package valuation

import (
	"fmt"
	"sort"
)

// InputRevenue is the sensitivity input of the profits grid.
const InputRevenue = "revenue"

// ValueByProfits derives a market rent from the divisible balance a
// business's trading leaves after costs, tax and operator remuneration.
// When an EBITDA multiple is supplied it adds an implied-value cross-check.
// A negative divisible balance leaves no rent to share and is rejected.
func ValueByProfits(b BusinessFinancials, opts ...Option) (Result, error) {
	if err := firstErr(
		nonNegative("operating expense rate", b.OperatingExpenseRate),
		nonNegative("depreciation rate", b.DepreciationRate),
		fraction("tax rate", b.TaxRate),
		nonNegative("operator rate", b.OperatorRate),
		nonNegative("total area", b.TotalArea),
	); err != nil {
		return Result{}, err
	}
	if !finite(b.RentShareRate) || b.RentShareRate < 0 || b.RentShareRate > 1 {
		return Result{}, invalidAssumption("rent share rate must be between 0 and 1, got %v", b.RentShareRate)
	}

	sources := make([]string, 0, len(b.RevenueSources))
	for name := range b.RevenueSources {
		sources = append(sources, name)
	}
	sort.Strings(sources)
	var revenue float64
	revenueDetails := make([]BreakdownEntry, 0, len(sources))
	for _, name := range sources {
		amount := b.RevenueSources[name]
		if err := nonNegative(fmt.Sprintf("revenue from %q", name), amount); err != nil {
			return Result{}, err
		}
		revenue += amount
		revenueDetails = append(revenueDetails, entry(name, amount))
	}
	if revenue <= 0 {
		return Result{}, invalidInput("total revenue must be greater than zero, got %v", revenue)
	}

	f := profitFigures(b, revenue)
	if f.divisible < 0 {
		return Result{}, invalidAssumption("divisible balance is negative (%.2f): costs, tax and operator remuneration exceed revenue", f.divisible)
	}
	res := Result{
		Method:     MethodProfits,
		TotalValue: f.marketRent,
		Breakdown: []BreakdownEntry{
			{Key: "total_revenue", Value: revenue, Details: revenueDetails},
			entry("operating_expenses", f.opex),
			entry("ebitda", f.ebitda),
			entry("depreciation", f.depreciation),
			entry("tax", f.tax),
			entry("operator_remuneration", f.operator),
			entry("divisible_balance", f.divisible),
			entry("market_rent", f.marketRent),
			entry("rent_to_revenue_ratio", f.marketRent/revenue),
		},
	}
	if b.TotalArea > 0 {
		res.ValuePerUnitArea = f.marketRent / b.TotalArea
		res.Breakdown = append(res.Breakdown, entry("rent_per_unit_area", res.ValuePerUnitArea))
	}

	if b.EBITDAMultiple != nil {
		if err := nonNegative("EBITDA multiple", *b.EBITDAMultiple); err != nil {
			return Result{}, err
		}
		yield := DefaultAssumedYield
		if b.AssumedYield != nil {
			if err := nonNegative("assumed yield", *b.AssumedYield); err != nil {
				return Result{}, err
			}
			yield = *b.AssumedYield
		}
		implied := f.ebitda * *b.EBITDAMultiple
		res.Breakdown = append(res.Breakdown,
			entry("ebitda_multiple", *b.EBITDAMultiple),
			entry("implied_value", implied),
			entry("implied_rent", implied*yield),
		)
	}

	if collect(opts).sensitivity {
		grid, err := Analyze(func(in map[string]float64) (float64, error) {
			return profitFigures(b, in[InputRevenue]).marketRent, nil
		}, map[string]float64{InputRevenue: revenue}, Axis{Input: InputRevenue, Changes: RevenueChanges})
		if err != nil {
			return Result{}, err
		}
		res.Sensitivity = grid
	}
	return res, nil
}

type profitBreakdown struct {
	opex, ebitda, depreciation, tax, operator, divisible, marketRent float64
}

func profitFigures(b BusinessFinancials, revenue float64) profitBreakdown {
	var f profitBreakdown
	f.opex = revenue * b.OperatingExpenseRate
	f.ebitda = revenue - f.opex
	f.depreciation = revenue * b.DepreciationRate
	f.tax = (f.ebitda - f.depreciation) * b.TaxRate
	f.operator = revenue * b.OperatorRate
	f.divisible = f.ebitda - f.depreciation - f.tax - f.operator
	f.marketRent = f.divisible * b.RentShareRate
	return f
}
