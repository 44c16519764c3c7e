package validator

import (
	"testing"

	"github.com/go-playground/validator/v10"
)

type sample struct {
	Category  string   `validate:"omitempty,property_category"`
	Method    string   `validate:"omitempty,valuation_method"`
	Occupancy *float64 `validate:"omitempty,fraction"`
	Condition float64  `validate:"omitempty,condition_score"`
	Lease     string   `validate:"omitempty,lease_type"`
	Basis     string   `validate:"omitempty,site_rent_basis"`
}

func f(v float64) *float64 { return &v }

func TestCustomValidators(t *testing.T) {
	v := validator.New()
	RegisterOn(v)

	tests := []struct {
		name  string
		input sample
		valid bool
	}{
		{name: "empty", input: sample{}, valid: true},
		{name: "known_category", input: sample{Category: "hotel"}, valid: true},
		{name: "category_alias", input: sample{Category: "gas_station"}, valid: true},
		{name: "unknown_category", input: sample{Category: "castle"}, valid: false},
		{name: "known_method", input: sample{Method: "dcf"}, valid: true},
		{name: "unknown_method", input: sample{Method: "hedonic"}, valid: false},
		{name: "fraction_in_range", input: sample{Occupancy: f(0.85)}, valid: true},
		{name: "fraction_zero", input: sample{Occupancy: f(0)}, valid: true},
		{name: "fraction_too_high", input: sample{Occupancy: f(1.2)}, valid: false},
		{name: "condition_in_range", input: sample{Condition: 4}, valid: true},
		{name: "condition_too_high", input: sample{Condition: 6}, valid: false},
		{name: "known_lease", input: sample{Lease: "long_term"}, valid: true},
		{name: "unknown_lease", input: sample{Lease: "forever"}, valid: false},
		{name: "known_basis", input: sample{Basis: "income_share"}, valid: true},
		{name: "comparables_basis", input: sample{Basis: "comparables"}, valid: true},
		{name: "residual_basis", input: sample{Basis: "residual"}, valid: true},
		{name: "unknown_basis", input: sample{Basis: "auction"}, valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.input)
			if tt.valid && err != nil {
				t.Errorf("expected valid, got %v", err)
			}
			if !tt.valid && err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestNew(t *testing.T) {
	type request struct {
		Category string `binding:"required,property_category"`
	}

	v := New()
	if err := v.Struct(request{Category: "land"}); err != nil {
		t.Errorf("expected valid, got %v", err)
	}
	if err := v.Struct(request{Category: "castle"}); err == nil {
		t.Error("expected binding tags to be enforced")
	}
}
