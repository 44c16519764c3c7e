package valuation

import (
	"fmt"
	"math"
)

// ValueByDCF projects net income over the forecast horizon, discounts each
// year, and adds a perpetuity-growth terminal value on the final year's NOI.
func ValueByDCF(a CashFlowAssumptions) (Result, error) {
	if a.HorizonYears < 1 {
		return Result{}, invalidInput("horizon must be at least one year, got %d", a.HorizonYears)
	}
	if !finite(a.DiscountRate) || a.DiscountRate <= 0 {
		return Result{}, invalidAssumption("discount rate must be greater than zero, got %v", a.DiscountRate)
	}
	if err := signed("terminal growth rate", a.TerminalGrowthRate); err != nil {
		return Result{}, err
	}
	if a.DiscountRate <= a.TerminalGrowthRate {
		return Result{}, invalidAssumption("discount rate %v must exceed terminal growth rate %v", a.DiscountRate, a.TerminalGrowthRate)
	}
	if err := firstErr(
		nonNegative("initial rent", a.InitialRent),
		positive("total area", a.TotalArea),
		signed("rent growth rate", a.RentGrowthRate),
		nonNegative("operating expense rate", a.OperatingExpenseRate),
		nonNegative("management fee rate", a.ManagementFeeRate),
		nonNegative("maintenance rate", a.MaintenanceRate),
		fraction("tax rate", a.TaxRate),
	); err != nil {
		return Result{}, err
	}
	if a.RentGrowthRate <= -1 {
		return Result{}, invalidAssumption("rent growth rate must be above -100%%, got %v", a.RentGrowthRate)
	}
	if len(a.OccupancySchedule) == 0 {
		return Result{}, invalidInput("occupancy schedule must have at least one entry")
	}
	for i, occ := range a.OccupancySchedule {
		if err := fraction(fmt.Sprintf("occupancy for year %d", i+1), occ); err != nil {
			return Result{}, err
		}
	}
	if a.InitialInvestment != nil {
		if err := nonNegative("initial investment", *a.InitialInvestment); err != nil {
			return Result{}, err
		}
	}

	costRate := a.OperatingExpenseRate + a.ManagementFeeRate + a.MaintenanceRate
	years := make([]BreakdownEntry, 0, a.HorizonYears)
	netFlows := make([]float64, 0, a.HorizonYears)
	var pvFlows, lastNOI float64

	for year := 1; year <= a.HorizonYears; year++ {
		occupancy := a.OccupancySchedule[len(a.OccupancySchedule)-1]
		if year <= len(a.OccupancySchedule) {
			occupancy = a.OccupancySchedule[year-1]
		}
		rent := a.InitialRent * math.Pow(1+a.RentGrowthRate, float64(year-1))
		gross := a.TotalArea * rent * occupancy
		costs := gross * costRate
		noi := gross - costs
		tax := noi * a.TaxRate
		net := noi - tax
		discounted, err := checked(fmt.Sprintf("discounted cashflow for year %d", year), net/math.Pow(1+a.DiscountRate, float64(year)))
		if err != nil {
			return Result{}, err
		}

		pvFlows += discounted
		lastNOI = noi
		netFlows = append(netFlows, net)
		years = append(years, BreakdownEntry{
			Key:   fmt.Sprintf("year_%d", year),
			Value: discounted,
			Details: []BreakdownEntry{
				entry("occupancy_rate", occupancy),
				entry("rent_per_unit_area", rent),
				entry("gross_income", gross),
				entry("operating_costs", costs),
				entry("noi", noi),
				entry("tax", tax),
				entry("net_cashflow", net),
				entry("discounted_cashflow", discounted),
			},
		})
	}

	terminal, err := checked("terminal value", lastNOI*(1+a.TerminalGrowthRate)/(a.DiscountRate-a.TerminalGrowthRate))
	if err != nil {
		return Result{}, err
	}
	discountedTerminal := terminal / math.Pow(1+a.DiscountRate, float64(a.HorizonYears))
	pv, err := checked("total present value", pvFlows+discountedTerminal)
	if err != nil {
		return Result{}, err
	}

	investment := pv * DefaultInvestmentShare
	if a.InitialInvestment != nil {
		investment = *a.InitialInvestment
	}
	npv := pv - investment

	res := Result{
		Method:           MethodDCF,
		TotalValue:       pv,
		ValuePerUnitArea: pv / a.TotalArea,
		Breakdown: []BreakdownEntry{
			entry("present_value_of_cashflows", pvFlows),
			entry("final_year_noi", lastNOI),
			entry("terminal_value", terminal),
			entry("discounted_terminal_value", discountedTerminal),
			entry("total_present_value", pv),
			entry("initial_investment", investment),
			entry("net_present_value", npv),
		},
	}

	// The reversion at the terminal value is received with the final year's cashflow.
	flows := make([]float64, 0, len(netFlows)+1)
	flows = append(flows, -investment)
	flows = append(flows, netFlows...)
	flows[len(flows)-1] += terminal
	if irr, ok := IRR(flows); ok {
		res.Breakdown = append(res.Breakdown, entry("irr", irr))
	} else {
		res.Flags = append(res.Flags, FlagIRRUnavailable)
	}

	res.Breakdown = append(res.Breakdown, BreakdownEntry{Key: "years", Value: float64(a.HorizonYears), Details: years})
	return res, nil
}

// CashFlows rebuilds the series a DCF result's IRR is solved over: the
// initial investment as a negative flow at year zero, then each year's net
// cashflow with the terminal value added to the last year.
func CashFlows(res Result) ([]float64, error) {
	if res.Method != MethodDCF {
		return nil, invalidInput("cashflows are only available for %s results", MethodDCF)
	}
	investment, _ := res.Figure("initial_investment")
	terminal, _ := res.Figure("terminal_value")
	flows := []float64{-investment}
	for _, e := range res.Breakdown {
		if e.Key != "years" {
			continue
		}
		for _, y := range e.Details {
			for _, d := range y.Details {
				if d.Key == "net_cashflow" {
					flows = append(flows, d.Value)
				}
			}
		}
	}
	if len(flows) < 2 {
		return nil, invalidInput("result carries no yearly cashflows")
	}
	flows[len(flows)-1] += terminal
	return flows, nil
}
