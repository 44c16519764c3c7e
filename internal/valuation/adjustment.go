package valuation

import (
	"fmt"
	"math"
	"sort"
)

// MaxAdjustment caps every individual adjustment component in either
// direction. Small comparable sets must not extrapolate further than this.
const MaxAdjustment = 0.15

const (
	areaGapFactor     = 0.3
	agePerYear        = 0.01
	conditionPerPoint = 0.02
)

// Built-in weighted factor names. Any other name is looked up in Attributes.
const (
	FactorLocation = "location"
	FactorFrontage = "frontage"
)

// Adjustment is the outcome of comparing one comparable against the subject.
type Adjustment struct {
	BasePrice     float64  `json:"base_price"`
	Total         float64  `json:"total"`
	AdjustedPrice float64  `json:"adjusted_price"`
	Reasons       []string `json:"reasons"`
}

// Adjust computes the signed adjustment that converts comp's unit price into
// an estimate for subject. Weighted factors apply only when both properties
// carry a value for them; the area, age and condition rules always apply.
func Adjust(subject SubjectProperty, comp ComparableProperty, weights AdjustmentWeights) (Adjustment, error) {
	if err := firstErr(
		positive("subject area", subject.Area),
		positive("comparable area", comp.Area),
		positive("comparable unit price", comp.UnitPrice),
		nonNegative("subject age", subject.AgeYears),
		nonNegative("comparable age", comp.AgeYears),
		conditionScore("subject condition", subject.Condition),
		conditionScore("comparable condition", comp.Condition),
	); err != nil {
		return Adjustment{}, err
	}

	var total float64
	var reasons []string
	add := func(label string, component float64) {
		component = capAdjustment(component)
		if component == 0 {
			return
		}
		total += component
		reasons = append(reasons, fmt.Sprintf("%s: %+.1f%%", label, component*100))
	}

	// Smaller lots trade at higher unit prices, so a larger comparable is adjusted up.
	if comp.Area > subject.Area {
		gap := (comp.Area - subject.Area) / comp.Area
		add("area", math.Min(gap*areaGapFactor, MaxAdjustment))
	}

	names := make([]string, 0, len(weights))
	for name := range weights {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		w := weights[name]
		if !finite(w) {
			return Adjustment{}, invalidInput("weight for %q must be a finite number", name)
		}
		s, okS := subjectFactor(subject, name)
		c, okC := comparableFactor(comp, name)
		if !okS || !okC || c == 0 {
			continue
		}
		add(name, w*(s-c)/math.Abs(c))
	}

	add("age", (comp.AgeYears-subject.AgeYears)*agePerYear)
	add("condition", (subject.Condition-comp.Condition)*conditionPerPoint)

	adjusted, err := checked("adjusted price", comp.UnitPrice*(1+total))
	if err != nil {
		return Adjustment{}, err
	}
	return Adjustment{
		BasePrice:     comp.UnitPrice,
		Total:         total,
		AdjustedPrice: adjusted,
		Reasons:       reasons,
	}, nil
}

func capAdjustment(v float64) float64 {
	return math.Max(-MaxAdjustment, math.Min(MaxAdjustment, v))
}

func conditionScore(name string, v float64) error {
	if !finite(v) || v < 1 || v > 5 {
		return invalidInput("%s must be between 1 and 5, got %v", name, v)
	}
	return nil
}

func subjectFactor(p SubjectProperty, name string) (float64, bool) {
	switch name {
	case FactorLocation:
		if p.LocationScore == nil {
			return 0, false
		}
		return *p.LocationScore, true
	case FactorFrontage:
		if p.Frontage == nil {
			return 0, false
		}
		return *p.Frontage, true
	}
	v, ok := p.Attributes[name]
	return v, ok
}

func comparableFactor(c ComparableProperty, name string) (float64, bool) {
	switch name {
	case FactorLocation:
		return c.LocationScore, true
	case FactorFrontage:
		if c.Frontage == nil {
			return 0, false
		}
		return *c.Frontage, true
	}
	v, ok := c.Attributes[name]
	return v, ok
}
