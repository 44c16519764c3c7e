package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"appraisal/internal/logger"
	"appraisal/internal/services"
	"appraisal/internal/validator"
	"appraisal/internal/valuation"
)

// runOutput is what run prints. Selection is set only when the selector
// chose the method.
type runOutput struct {
	Selection *services.MethodSelection `json:"selection,omitempty"`
	Result    valuation.Result          `json:"result"`
}

// RunCommand creates the run command
func RunCommand(load assumptionsLoader) *cobra.Command {
	var (
		method      string
		input       string
		output      string
		sensitivity bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Value a property described in a YAML or JSON file",
		Long: `Value a property described in a YAML or JSON file.

The file holds the same fields as the API's auto valuation request. Without
--method (and without a method in the file) the method is chosen from the
property category and the number of comparables. Optional rates left out of
the file are filled from the assumptions.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := readRequest(input)
			if err != nil {
				return err
			}
			if method != "" {
				req.Method = valuation.Method(method)
			}
			if cmd.Flags().Changed("sensitivity") {
				req.Sensitivity = sensitivity
			}
			if err := validator.New().Struct(req); err != nil {
				return fmt.Errorf("invalid input: %w", err)
			}

			a, err := load()
			if err != nil {
				return err
			}
			out, err := runRequest(req, a)
			if err != nil {
				return err
			}
			logger.Get().Debugw("valuation completed", "method", out.Result.Method, "total_value", out.Result.TotalValue)
			return writeOutput(cmd, output, out)
		},
	}

	cmd.Flags().StringVar(&method, "method", "", "Valuation method (sales_comparison, residual, dcf, profits); selected automatically when empty")
	cmd.Flags().StringVar(&input, "input", "", "Input file (.yaml, .yml or .json)")
	cmd.Flags().StringVar(&output, "output", "yaml", "Output format (yaml, json)")
	cmd.Flags().BoolVar(&sensitivity, "sensitivity", false, "Include the sensitivity grid where the method supports one")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func readRequest(path string) (services.ValuationRequest, error) {
	var req services.ValuationRequest
	raw, err := os.ReadFile(path)
	if err != nil {
		return req, fmt.Errorf("read input: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(raw, &req)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(raw, &req)
	default:
		return req, fmt.Errorf("unsupported input file %s (use .yaml, .yml or .json)", path)
	}
	if err != nil {
		return req, fmt.Errorf("parse input %s: %w", path, err)
	}
	return req, nil
}

// runRequest values req with its named method, or with the selector's
// choice when it names none.
func runRequest(req services.ValuationRequest, a valuation.Assumptions) (runOutput, error) {
	var out runOutput
	var impl valuation.ValuationMethod
	if req.Method != "" {
		m, err := valuation.MethodFor(req.Method)
		if err != nil {
			return out, err
		}
		impl = m
	} else {
		category := req.Category
		if category == "" && req.Subject != nil {
			category = req.Subject.Category
		}
		c, ok := valuation.ParseCategory(string(category))
		if !ok {
			return out, fmt.Errorf("a known category is required to select a method, got %q", category)
		}
		sel := valuation.SelectMethod(c, len(req.Comparables))
		out.Selection = services.NewMethodSelection(sel)
		impl = sel.Method
	}

	res, err := impl.Value(req.Resolve(a))
	if err != nil {
		return out, err
	}
	out.Result = res
	return out, nil
}

func writeOutput(cmd *cobra.Command, format string, out runOutput) error {
	w := cmd.OutOrStdout()
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	case "yaml":
		doc := map[string]any{"result": out.Result.Record()}
		if out.Selection != nil {
			doc["selection"] = map[string]any{
				"method":    string(out.Selection.Method),
				"name":      out.Selection.Name,
				"tier":      string(out.Selection.Tier),
				"rationale": out.Selection.Rationale,
			}
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown output format %q (use yaml or json)", format)
}
