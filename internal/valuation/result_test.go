package valuation

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultJSON(t *testing.T) {
	res, err := ValueByResidual(feasibleDevelopment(), WithSensitivity())
	require.NoError(t, err)

	raw, err := json.Marshal(res)
	require.NoError(t, err)

	var decoded Result
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, res, decoded)
}

func TestResultRecord(t *testing.T) {
	t.Run("flattens_nested_breakdown", func(t *testing.T) {
		comp := baseComparable()
		comp.ID = "sale-1"
		comp.Area = 1500
		res, err := ValueByComparison(baseSubject(), []ComparableProperty{comp, baseComparable()}, nil)
		require.NoError(t, err)

		rec := res.Record()
		assert.Equal(t, "sales_comparison", rec["method"])
		assert.Equal(t, res.TotalValue, rec["total_value"])
		assert.Contains(t, rec, "confidence")
		assert.NotContains(t, rec, "sensitivity")

		breakdown, ok := rec["breakdown"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, 2.0, breakdown["comparable_count"])

		comps, ok := breakdown["comparables"].(map[string]any)
		require.True(t, ok)
		details, ok := comps["details"].(map[string]any)
		require.True(t, ok)

		sale, ok := details["comparable_1"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "sale-1", sale["label"])
		assert.Equal(t, []any{"area: +10.0%"}, sale["notes"])
		assert.Contains(t, details, "comparable_2")
	})

	t.Run("keeps_comparables_with_shared_ids", func(t *testing.T) {
		first, second, third := baseComparable(), baseComparable(), baseComparable()
		first.ID, second.ID, third.ID = "A", "A", "comparable_1"
		res, err := ValueByComparison(baseSubject(), []ComparableProperty{first, second, third}, nil)
		require.NoError(t, err)

		comps := res.Record()["breakdown"].(map[string]any)["comparables"].(map[string]any)
		details := comps["details"].(map[string]any)
		assert.Len(t, details, 3)
		assert.Equal(t, "A", details["comparable_2"].(map[string]any)["label"])
		assert.Equal(t, "comparable_1", details["comparable_3"].(map[string]any)["label"])
	})

	t.Run("suffixes_repeated_keys", func(t *testing.T) {
		rec := Result{Breakdown: []BreakdownEntry{entry("rent", 1), entry("rent", 2), entry("rent", 3)}}.Record()
		breakdown := rec["breakdown"].(map[string]any)
		assert.Equal(t, 1.0, breakdown["rent"])
		assert.Equal(t, 2.0, breakdown["rent_2"])
		assert.Equal(t, 3.0, breakdown["rent_3"])
	})

	t.Run("carries_flags_and_grid", func(t *testing.T) {
		res, err := ValueByResidual(feasibleDevelopment(), WithSensitivity())
		require.NoError(t, err)
		res.Flags = []string{FlagInfeasible}

		rec := res.Record()
		assert.Equal(t, []any{FlagInfeasible}, rec["flags"])
		grid, ok := rec["sensitivity"].(map[string]any)
		require.True(t, ok)
		assert.Len(t, grid["scenarios"], len(GDVChanges)*len(CostChanges))
	})

	t.Run("survives_json_encoding", func(t *testing.T) {
		res, err := ValueByDCF(defaultCashFlow())
		require.NoError(t, err)
		_, err = json.Marshal(res.Record())
		assert.NoError(t, err)
	})
}
