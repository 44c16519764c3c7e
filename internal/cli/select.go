package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"appraisal/internal/services"
	"appraisal/internal/valuation"
)

// SelectCommand creates the select command
func SelectCommand() *cobra.Command {
	var (
		category    string
		comparables int
		output      string
	)

	cmd := &cobra.Command{
		Use:   "select",
		Short: "Recommend a valuation method for a property",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, ok := valuation.ParseCategory(category)
			if !ok {
				return fmt.Errorf("unknown category %q", category)
			}
			if comparables < 0 {
				return fmt.Errorf("comparables must not be negative, got %d", comparables)
			}
			sel := services.NewMethodSelection(valuation.SelectMethod(c, comparables))

			out := cmd.OutOrStdout()
			switch output {
			case "json":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(sel)
			case "text":
				_, err := fmt.Fprintf(out, "Method:    %s (%s)\nData tier: %s\nRationale: %s\n",
					sel.Name, sel.Method, sel.Tier, sel.Rationale)
				return err
			}
			return fmt.Errorf("unknown output format %q (use text or json)", output)
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Property category (residential, commercial, industrial, hotel, hospital, fuel_station, land)")
	cmd.Flags().IntVar(&comparables, "comparables", 0, "Number of comparable sales on hand")
	cmd.Flags().StringVar(&output, "output", "text", "Output format (text, json)")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}
