package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/catalog/internal/config"
	"github.com/mesh-intelligence/catalog/internal/paths"
)

func newInitCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the configuration directory",
		Long:  "Create the configuration directory and write a default config.yaml if none exists.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			configDir, err := flags.resolveConfigDir()
			if err != nil {
				return err
			}
			created, err := config.EnsureDefault(configDir)
			if err != nil {
				return sysError("init: %w", err)
			}

			out := cmd.OutOrStdout()
			if created {
				fmt.Fprintln(out, "Wrote default configuration")
			} else {
				fmt.Fprintln(out, "Configuration already present")
			}
			fmt.Fprintln(out, "  config:", paths.ConfigFile(configDir))
			return nil
		},
	}
}
