package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/catalog/internal/memory"
)

func newSeedCmd() *cobra.Command {
	var asYAML bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Print the built-in seed catalog",
		Long:  "Print the catalog that the server loads at startup and on every refresh.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			products := memory.SeedProducts()
			out := cmd.OutOrStdout()

			if asYAML {
				enc := yaml.NewEncoder(out)
				enc.SetIndent(2)
				if err := enc.Encode(products); err != nil {
					return sysError("encode seed: %w", err)
				}
				return enc.Close()
			}

			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			if err := enc.Encode(products); err != nil {
				return sysError("encode seed: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "output as YAML instead of JSON")
	return cmd
}
