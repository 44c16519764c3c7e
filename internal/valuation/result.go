package valuation

import "fmt"

// Method tags the valuation method that produced a Result.
type Method string

// Valuation methods.
const (
	MethodSalesComparison Method = "sales_comparison"
	MethodResidual        Method = "residual"
	MethodDCF             Method = "dcf"
	MethodProfits         Method = "profits"
	MethodSiteRent        Method = "site_rent"
)

// Methods lists the methods the selector can return.
var Methods = []Method{MethodSalesComparison, MethodResidual, MethodDCF, MethodProfits}

// Flags raised on a Result.
const (
	FlagInfeasible     = "infeasible_at_stated_assumptions"
	FlagIRRUnavailable = "irr_unavailable"
)

// BreakdownEntry is one named intermediate figure. Entries may nest, e.g. one
// entry per comparable or per forecast year. Label carries caller-supplied
// identifiers such as a comparable's ID; keys stay engine-generated.
type BreakdownEntry struct {
	Key     string           `json:"key"`
	Label   string           `json:"label,omitempty"`
	Value   float64          `json:"value"`
	Notes   []string         `json:"notes,omitempty"`
	Details []BreakdownEntry `json:"details,omitempty"`
}

// Result is the only artifact that leaves the engine. It holds copies of
// everything it reports and never references the inputs.
type Result struct {
	Method           Method           `json:"method"`
	TotalValue       float64          `json:"total_value"`
	ValuePerUnitArea float64          `json:"value_per_unit_area"`
	Confidence       *float64         `json:"confidence,omitempty"`
	Breakdown        []BreakdownEntry `json:"breakdown"`
	Sensitivity      *Grid            `json:"sensitivity,omitempty"`
	Flags            []string         `json:"flags,omitempty"`
}

// Figure returns the top-level breakdown value stored under key.
func (r Result) Figure(key string) (float64, bool) {
	for _, e := range r.Breakdown {
		if e.Key == key {
			return e.Value, true
		}
	}
	return 0, false
}

// HasFlag reports whether flag was raised.
func (r Result) HasFlag(flag string) bool {
	for _, f := range r.Flags {
		if f == flag {
			return true
		}
	}
	return false
}

// Record flattens the result into string keys mapped to scalars, lists or
// nested records, for collaborators that store or render results without
// knowing the method.
func (r Result) Record() map[string]any {
	rec := map[string]any{
		"method":              string(r.Method),
		"total_value":         r.TotalValue,
		"value_per_unit_area": r.ValuePerUnitArea,
	}
	if r.Confidence != nil {
		rec["confidence"] = *r.Confidence
	}
	if len(r.Flags) > 0 {
		flags := make([]any, len(r.Flags))
		for i, f := range r.Flags {
			flags[i] = f
		}
		rec["flags"] = flags
	}
	rec["breakdown"] = breakdownRecord(r.Breakdown)
	if r.Sensitivity != nil {
		rec["sensitivity"] = r.Sensitivity.record()
	}
	return rec
}

// breakdownRecord keys entries by Key. A repeated key gets a numeric
// suffix so no entry is dropped.
func breakdownRecord(entries []BreakdownEntry) map[string]any {
	out := make(map[string]any, len(entries))
	for _, e := range entries {
		key := e.Key
		for n := 2; ; n++ {
			if _, taken := out[key]; !taken {
				break
			}
			key = fmt.Sprintf("%s_%d", e.Key, n)
		}
		if len(e.Details) == 0 && len(e.Notes) == 0 && e.Label == "" {
			out[key] = e.Value
			continue
		}
		nested := map[string]any{"value": e.Value}
		if e.Label != "" {
			nested["label"] = e.Label
		}
		if len(e.Notes) > 0 {
			notes := make([]any, len(e.Notes))
			for i, n := range e.Notes {
				notes[i] = n
			}
			nested["notes"] = notes
		}
		if len(e.Details) > 0 {
			nested["details"] = breakdownRecord(e.Details)
		}
		out[key] = nested
	}
	return out
}

func entry(key string, value float64) BreakdownEntry {
	return BreakdownEntry{Key: key, Value: value}
}

func ptr(v float64) *float64 { return &v }
