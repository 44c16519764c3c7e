package cli

import (
	"github.com/spf13/cobra"

	"appraisal/internal/config"
)

// DefaultsCommand creates the defaults command
func DefaultsCommand(load assumptionsLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "defaults",
		Short: "Print the assumptions as YAML",
		Long: `Print the assumptions used to complete partial inputs, as YAML.

The output can be edited and passed back with --assumptions.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := load()
			if err != nil {
				return err
			}
			raw, err := config.MarshalAssumptions(a)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(raw)
			return err
		},
	}
}
