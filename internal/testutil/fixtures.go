package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"gorm.io/gorm"

	"appraisal/internal/models"
	"appraisal/internal/valuation"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// TestSubject returns a mid-condition residential subject of 1000 units.
func TestSubject() valuation.SubjectProperty {
	return valuation.SubjectProperty{
		Area:      1000,
		Category:  valuation.CategoryResidential,
		AgeYears:  5,
		Condition: 3,
	}
}

// TestComparables returns n comparables around a unit price of 100.
func TestComparables(n int) []valuation.ComparableProperty {
	comps := make([]valuation.ComparableProperty, n)
	for i := range comps {
		comps[i] = valuation.ComparableProperty{
			ID:        fmt.Sprintf("sale-%d", nextID()),
			UnitPrice: 95 + float64(i%3)*5,
			Area:      1000 + float64(i)*100,
			AgeYears:  5,
			Condition: 3,
		}
	}
	return comps
}

// CreateTestValuation archives a valuation with the given method and category.
func CreateTestValuation(t *testing.T, db *gorm.DB, method valuation.Method, category valuation.PropertyCategory) *models.Valuation {
	t.Helper()
	return CreateTestValuationWithValue(t, db, method, category, 1_000_000)
}

// CreateTestValuationWithValue archives a valuation with the given total value.
func CreateTestValuationWithValue(t *testing.T, db *gorm.DB, method valuation.Method, category valuation.PropertyCategory, total float64) *models.Valuation {
	t.Helper()

	res := valuation.Result{
		Method:           method,
		TotalValue:       total,
		ValuePerUnitArea: total / 1000,
		Breakdown:        []valuation.BreakdownEntry{{Key: "fixture", Value: total}},
	}
	v := models.NewValuation(res, category, fmt.Sprintf("Fixture %d", nextID()))
	if err := db.Create(v).Error; err != nil {
		t.Fatalf("failed to create test valuation: %v", err)
	}
	return v
}
