package cmd

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/karolswdev/nichefinder/internal/config"
)

// configLocateRunE contains the core logic for the config locate command.
// It uses dependency injection for testability.
func configLocateRunE(cfgProvider ConfigProvider, out io.Writer) error {
	configDir, err := cfgProvider.EnsureConfigDir()
	if err != nil {
		return fmt.Errorf("error ensuring config directory: %w", err)
	}

	fmt.Fprintf(out, "Configuration directory: %s\n", configDir)
	fmt.Fprintln(out, "Expected configuration files:")
	fmt.Fprintf(out, "- %s\n", filepath.Join(configDir, config.DefaultConfigFileName))
	fmt.Fprintf(out, "- %s\n", filepath.Join(configDir, config.DefaultPromptFileName))
	fmt.Fprintf(out, "Override the directory with the %s environment variable.\n", config.ConfigDirEnvVar)

	return nil
}

// newConfigLocateCmd creates the locate command
func newConfigLocateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "locate",
		Short: "Locate nichefinder configuration files",
		Long: `Displays the paths to the configuration files being used by nichefinder.
This command helps you find where nichefinder is looking for its settings.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return configLocateRunE(&DefaultConfigProvider{}, cmd.OutOrStdout())
		},
	}
}
