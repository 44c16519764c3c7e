// Package cli implements the valuate command line tool, which runs the
// valuation engine on local input files without the API or a database.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"appraisal/internal/config"
	"appraisal/internal/valuation"
)

// assumptionsLoader returns the assumptions a command should complete
// inputs with.
type assumptionsLoader func() (valuation.Assumptions, error)

// NewRootCommand creates the valuate command and its subcommands.
func NewRootCommand() *cobra.Command {
	var assumptionsFile string

	root := &cobra.Command{
		Use:   "valuate",
		Short: "Value real estate from the command line",
		Long: `Run the appraisal methods on local input files.

Examples:
  # Which method suits a hotel with four comparable sales?
  valuate select --category=hotel --comparables=4

  # Value a development site described in YAML
  valuate run --method=residual --input=site.yaml

  # Let the selector choose, and print JSON
  valuate run --input=property.json --output=json

  # Print the house defaults as a starting assumptions file
  valuate defaults > assumptions.yaml`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&assumptionsFile, "assumptions", os.Getenv("ASSUMPTIONS_FILE"),
		"YAML file overriding the default assumptions")

	load := func() (valuation.Assumptions, error) {
		return config.LoadAssumptions(assumptionsFile)
	}
	root.AddCommand(SelectCommand(), RunCommand(load), DefaultsCommand(load))
	return root
}
