package models

import (
	"testing"

	"appraisal/internal/valuation"
)

func TestNewValuation(t *testing.T) {
	conf := 0.87
	res := valuation.Result{
		Method:           valuation.MethodSalesComparison,
		TotalValue:       1234567.891,
		ValuePerUnitArea: 1234.567891,
		Confidence:       &conf,
		Flags:            []string{valuation.FlagInfeasible},
	}

	v := NewValuation(res, valuation.CategoryResidential, "Lot 7")

	if v.TotalValue.String() != "1234567.89" {
		t.Errorf("expected total value 1234567.89, got %s", v.TotalValue)
	}
	if v.ValuePerUnitArea.String() != "1234.5679" {
		t.Errorf("expected value per unit area 1234.5679, got %s", v.ValuePerUnitArea)
	}
	if v.Method != valuation.MethodSalesComparison {
		t.Errorf("expected method sales_comparison, got %s", v.Method)
	}
	if v.Confidence == nil || *v.Confidence != conf {
		t.Errorf("expected confidence %v, got %v", conf, v.Confidence)
	}
	if len(v.Flags) != 1 || v.Flags[0] != valuation.FlagInfeasible {
		t.Errorf("expected infeasible flag, got %v", v.Flags)
	}
}

func TestBeforeCreate(t *testing.T) {
	t.Run("generates_id", func(t *testing.T) {
		var b Base
		if err := b.BeforeCreate(nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !IsValidID(b.ID) {
			t.Errorf("expected a valid UUID, got %q", b.ID)
		}
	})

	t.Run("keeps_existing_id", func(t *testing.T) {
		b := Base{ID: "0190c6b8-0000-7000-8000-000000000001"}
		if err := b.BeforeCreate(nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b.ID != "0190c6b8-0000-7000-8000-000000000001" {
			t.Errorf("expected ID to be kept, got %q", b.ID)
		}
	})

	t.Run("ids_are_time_ordered", func(t *testing.T) {
		var a, b Base
		_ = a.BeforeCreate(nil)
		_ = b.BeforeCreate(nil)
		if a.ID[:8] > b.ID[:8] {
			t.Errorf("expected %s to sort before %s", a.ID, b.ID)
		}
	})
}

func TestIsValidID(t *testing.T) {
	if IsValidID("not-a-uuid") {
		t.Error("expected invalid ID to be rejected")
	}
}
