package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	apperrors "appraisal/internal/errors"
	"appraisal/internal/valuation"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("ASSUMPTIONS_FILE", "")
	root := NewRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeInput(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const siteYAML = `
label: Riverside plot
category: land
sensitivity: true
development:
  buildable_area: 1500
  construction_area: 1000
  expected_rent: 800
  occupancy_rate: 0.9
  yield_rate: 0.08
  construction_cost: 2000
  professional_fee_rate: 0.10
  marketing_rate: 0.03
  finance_rate: 0.05
  contingency_rate: 0.05
  developer_profit_rate: 0.2
  land_yield_rate: 0.05
`

func TestSelectCommand(t *testing.T) {
	t.Run("text_output", func(t *testing.T) {
		out, err := execute(t, "select", "--category=hotel", "--comparables=4")
		require.NoError(t, err)
		assert.Contains(t, out, "Profits (profits)")
		assert.Contains(t, out, "Data tier: high")
	})

	t.Run("json_output_with_alias", func(t *testing.T) {
		out, err := execute(t, "select", "--category=petrol_station", "--output=json")
		require.NoError(t, err)

		var sel map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &sel))
		assert.Equal(t, "residual", sel["method"])
		assert.Equal(t, "low", sel["tier"])
	})

	t.Run("unknown_category", func(t *testing.T) {
		_, err := execute(t, "select", "--category=castle")
		assert.Error(t, err)
	})

	t.Run("category_required", func(t *testing.T) {
		_, err := execute(t, "select")
		assert.Error(t, err)
	})
}

func TestRunCommand(t *testing.T) {
	t.Run("named_method_from_yaml", func(t *testing.T) {
		path := writeInput(t, "site.yaml", siteYAML)

		out, err := execute(t, "run", "--method=residual", "--input="+path, "--output=json")
		require.NoError(t, err)

		var got runOutput
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.Nil(t, got.Selection)
		assert.Equal(t, valuation.MethodResidual, got.Result.Method)
		assert.InDelta(t, 5_784_000, got.Result.TotalValue, 1e-6)
		require.NotNil(t, got.Result.Sensitivity)
	})

	t.Run("selects_method_from_json", func(t *testing.T) {
		path := writeInput(t, "site.json",
			`{"category":"land","development":{"buildable_area":1000,"expected_rent":400}}`)

		out, err := execute(t, "run", "--input="+path, "--output=json")
		require.NoError(t, err)

		var got runOutput
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		require.NotNil(t, got.Selection)
		assert.Equal(t, valuation.MethodResidual, got.Selection.Method)
		assert.Equal(t, valuation.MethodResidual, got.Result.Method)
	})

	t.Run("yaml_output", func(t *testing.T) {
		path := writeInput(t, "site.yml", siteYAML)

		out, err := execute(t, "run", "--input="+path, "--sensitivity=false")
		require.NoError(t, err)

		var doc map[string]any
		require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
		result := doc["result"].(map[string]any)
		assert.Equal(t, "residual", result["method"])
		assert.NotContains(t, result, "sensitivity")
		assert.Contains(t, doc, "selection")
	})

	t.Run("missing_inputs_for_method", func(t *testing.T) {
		path := writeInput(t, "hotel.yaml", "category: hotel\n")

		_, err := execute(t, "run", "--method=profits", "--input="+path)
		assert.ErrorIs(t, err, apperrors.ErrInsufficientData)
	})

	t.Run("rejects_invalid_fields", func(t *testing.T) {
		path := writeInput(t, "bad.yaml", "category: castle\n")

		_, err := execute(t, "run", "--input="+path)
		assert.Error(t, err)
	})

	t.Run("unsupported_extension", func(t *testing.T) {
		path := writeInput(t, "site.toml", "category = 'land'\n")

		_, err := execute(t, "run", "--input="+path)
		assert.Error(t, err)
	})

	t.Run("assumptions_file_fills_gaps", func(t *testing.T) {
		assumptions := writeInput(t, "assumptions.yaml", "residual:\n  construction_cost: 10\n")
		path := writeInput(t, "site.yaml", "development:\n  buildable_area: 100\n  expected_rent: 100\n  yield_rate: 0.1\n")

		out, err := execute(t, "run", "--method=residual", "--input="+path, "--output=json", "--assumptions="+assumptions)
		require.NoError(t, err)

		var got runOutput
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		cost, ok := got.Result.Figure("construction_cost")
		require.True(t, ok)
		assert.InDelta(t, 1000, cost, 1e-9)
	})
}

func TestDefaultsCommand(t *testing.T) {
	out, err := execute(t, "defaults")
	require.NoError(t, err)

	var a valuation.Assumptions
	require.NoError(t, yaml.Unmarshal([]byte(out), &a))
	assert.Equal(t, valuation.DefaultAssumptions(), a)
}
