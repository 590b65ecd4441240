package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/karolswdev/nichefinder/internal/config"
	"github.com/karolswdev/nichefinder/internal/llm"
)

// newConfigShowCmd creates the show command
func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current nichefinder configuration",
		Long: `Displays the currently loaded configuration values
from config files and environment variables. The API key itself is never printed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return configShowRunE(&DefaultConfigProvider{}, &defaultKeyringClient{}, cmd.OutOrStdout())
		},
	}
}

// configShowRunE contains the core logic for the 'config show' command.
func configShowRunE(cfgProvider ConfigProvider, keyringClient KeyringClient, writer io.Writer) error {
	cfg, err := cfgProvider.LoadConfig()
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}

	fmt.Fprintln(writer, "Current nichefinder Configuration:")
	fmt.Fprintf(writer, "  Server Address:   %s\n", cfg.Server.Address)
	fmt.Fprintf(writer, "  Shutdown Timeout: %s\n", cfg.Server.ShutdownTimeout)
	fmt.Fprintf(writer, "  Max Body Bytes:   %d\n", cfg.Server.MaxBodyBytes)
	fmt.Fprintf(writer, "  LLM Provider:     %s\n", cfg.LLM.Provider)

	switch cfg.LLM.Provider {
	case config.ProviderGroq, config.ProviderOpenAI:
		fmt.Fprintf(writer, "    Model:          %s\n", cfg.LLM.OpenAI.ModelName)
		baseURL := cfg.LLM.OpenAI.BaseURL
		if baseURL == "" && cfg.LLM.Provider == config.ProviderGroq {
			baseURL = llm.GroqBaseURL
		}
		if baseURL != "" {
			fmt.Fprintf(writer, "    BaseURL:        %s\n", baseURL)
		}
	case config.ProviderGemini:
		fmt.Fprintf(writer, "    Model:          %s\n", cfg.LLM.Gemini.ModelName)
	default:
		fmt.Fprintln(writer, "    (LLM disabled, fallback recommendations only)")
	}
	if cfg.LLM.Provider != config.ProviderNone {
		fmt.Fprintf(writer, "    Temperature:    %g\n", cfg.LLM.Temperature)
		fmt.Fprintf(writer, "    Max Tokens:     %d\n", cfg.LLM.MaxTokens)
		fmt.Fprintf(writer, "    Top P:          %g\n", cfg.LLM.TopP)
		if cfg.LLM.Timeout > 0 {
			fmt.Fprintf(writer, "    Timeout:        %s\n", cfg.LLM.Timeout)
		}
	}

	// Check if API key exists using the injected KeyringClient
	_, err = keyringClient.GetAPIKey(config.KeyringServiceName, config.KeyringUserName)
	apiKeyStatus := "Set (use 'niche config set-key' to change)"
	if err != nil {
		if errors.Is(err, config.ErrAPIKeyNotFound) {
			apiKeyStatus = "Not Set (use 'niche config set-key' to set)"
		} else {
			// Still show the rest of the config
			apiKeyStatus = fmt.Sprintf("Status Unknown (error checking keychain/env: %v)", err)
		}
	}
	fmt.Fprintf(writer, "  LLM API Key:      %s\n", apiKeyStatus)

	return nil
}
