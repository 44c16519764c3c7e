package config

import (
	"fmt"
	"os"

	apperrors "appraisal/internal/errors"
	"appraisal/internal/logger"
	"appraisal/internal/valuation"

	"gopkg.in/yaml.v3"
)

// LoadAssumptions returns the house defaults overlaid with the YAML file at
// path. Keys missing from the file keep their default; weight and lease
// multiplier maps are merged key by key. An empty path returns the defaults.
func LoadAssumptions(path string) (valuation.Assumptions, error) {
	a := valuation.DefaultAssumptions()
	if path == "" {
		return a, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return valuation.Assumptions{}, fmt.Errorf("read assumptions file: %w", err)
	}
	if err := yaml.Unmarshal(raw, &a); err != nil {
		return valuation.Assumptions{}, fmt.Errorf("parse assumptions file %s: %w", path, err)
	}
	if err := ValidateAssumptions(a); err != nil {
		return valuation.Assumptions{}, err
	}

	logger.Get().Infow("Loaded valuation assumptions", "path", path)
	return a, nil
}

// ValidateAssumptions rejects defaults that would make every valuation of a
// method fail.
func ValidateAssumptions(a valuation.Assumptions) error {
	invalid := func(format string, args ...any) error {
		return apperrors.WithMessage(apperrors.ErrInvalidAssumption, fmt.Sprintf(format, args...))
	}

	for name, w := range a.Comparison.Weights {
		if w < 0 || w > 1 {
			return invalid("comparison weight %q must be between 0 and 1, got %v", name, w)
		}
	}
	if a.Residual.YieldRate <= 0 {
		return invalid("residual yield rate must be greater than zero, got %v", a.Residual.YieldRate)
	}
	if a.CashFlow.HorizonYears < 1 {
		return invalid("cash flow horizon must be at least one year, got %d", a.CashFlow.HorizonYears)
	}
	if a.CashFlow.DiscountRate <= a.CashFlow.TerminalGrowthRate {
		return invalid("discount rate %v must exceed terminal growth rate %v",
			a.CashFlow.DiscountRate, a.CashFlow.TerminalGrowthRate)
	}
	if len(a.CashFlow.OccupancySchedule) == 0 {
		return invalid("occupancy schedule must have at least one entry")
	}
	if a.Profits.RentShareRate < 0 || a.Profits.RentShareRate > 1 {
		return invalid("rent share rate must be between 0 and 1, got %v", a.Profits.RentShareRate)
	}
	if a.SiteRent.LandYieldRate <= 0 || a.SiteRent.LandYieldRate > 1 {
		return invalid("site land yield rate must be above 0 and at most 1, got %v", a.SiteRent.LandYieldRate)
	}
	for lease, m := range a.SiteRent.LeaseMultipliers {
		if m <= 0 {
			return invalid("lease multiplier for %q must be greater than zero, got %v", lease, m)
		}
	}
	return nil
}

// MarshalAssumptions renders a as YAML in the same layout LoadAssumptions reads.
func MarshalAssumptions(a valuation.Assumptions) ([]byte, error) {
	out, err := yaml.Marshal(a)
	if err != nil {
		return nil, fmt.Errorf("encode assumptions: %w", err)
	}
	return out, nil
}
