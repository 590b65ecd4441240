package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// version is set during build time (e.g., via ldflags)
// Default is "dev" for local development.
var version = "dev"

// Log is the globally configured zerolog logger instance used throughout the cmd package.
// It's initialized in the root command's PersistentPreRunE based on the --log-level and
// --log-format flags.
var Log zerolog.Logger

// Supported values for --log-format.
const (
	logFormatConsole = "console"
	logFormatJSON    = "json"
)

// configureLogger sets up the global zerolog logger. The console format is meant for
// interactive use; json suits "niche serve" behind a log collector.
func configureLogger(levelStr, format string) error {
	switch strings.ToLower(format) {
	case logFormatJSON:
		log.Logger = zerolog.New(os.Stderr)
	case logFormatConsole, "":
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	default:
		return fmt.Errorf("unsupported log format %q (use %s or %s)", format, logFormatConsole, logFormatJSON)
	}

	level, err := zerolog.ParseLevel(strings.ToLower(levelStr))
	if err != nil {
		log.Warn().Msgf("Invalid log level '%s', defaulting to 'info'", levelStr)
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	log.Logger = log.Logger.With().Timestamp().Logger()
	Log = log.Logger

	Log.Debug().Msgf("Log level set to '%s'", level.String())
	return nil
}

// loadDotEnv reads a .env file from the working directory so that API keys and
// NICHEFINDER_* overrides can live next to the project. A missing file is not an error.
func loadDotEnv() error {
	err := godotenv.Load()
	if err == nil {
		Log.Debug().Msg("Loaded environment from .env")
		return nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("failed to load .env file: %w", err)
}

// persistentPreRunLogic runs before every subcommand.
func persistentPreRunLogic(cmd *cobra.Command, args []string) error {
	showVersion, _ := cmd.Flags().GetBool("version")
	if showVersion {
		fmt.Fprintln(cmd.OutOrStdout(), version)
		os.Exit(0) // Cobra does not stop after PersistentPreRunE on its own
	}

	lvl, _ := cmd.Flags().GetString("log-level")
	format, _ := cmd.Flags().GetString("log-format")
	if err := configureLogger(lvl, format); err != nil {
		return err
	}
	return loadDotEnv()
}

// Execute is the main entry point for the Cobra CLI application.
// It builds the command tree, executes the selected command and exits non-zero on failure.
// This function is typically called directly from main.main().
func Execute() {
	err := NewRootCmd().Execute()
	if err != nil {
		// Ensure logger is initialized even if PersistentPreRunE failed early
		if Log.GetLevel() == zerolog.Disabled {
			_ = configureLogger("info", logFormatConsole)
		}
		Log.Error().Err(err).Msg("Command execution failed")
		os.Exit(1)
	}
}

// NewRootCmd creates a fresh command tree. Every call returns independent command
// instances, so tests can execute commands in-process without sharing flag state.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "niche",
		Short: "nichefinder - AI-assisted business niche recommendations",
		Long: `nichefinder (niche) turns an entrepreneurial profile into a short list of
business niche recommendations. It asks an LLM (Groq, OpenAI or Gemini) for
suggestions, normalizes whatever comes back, and falls back to a built-in set
when the model is unavailable.

Run it as an HTTP API with "niche serve" or locally with "niche recommend".`,
		PersistentPreRunE: persistentPreRunLogic,
		SilenceUsage:      true,
	}

	rootCmd.PersistentFlags().String("log-level", "info", "Set log level (debug, info, warn, error, fatal, panic)")
	rootCmd.PersistentFlags().String("log-format", logFormatConsole, "Log format (console|json)")
	rootCmd.PersistentFlags().Bool("version", false, "Show application version")
	rootCmd.PersistentFlags().StringP("output", "o", "text", "Output format (text|json)")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newRecommendCmd())
	rootCmd.AddCommand(newPromptCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// newCompletionCmd creates the completion command.
func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion script",
		Long: `To load completions:

Bash:
  $ source <(niche completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ niche completion bash > /etc/bash_completion.d/niche
  # macOS:
  $ niche completion bash > /usr/local/etc/bash_completion.d/niche

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ niche completion zsh > "${fpath[1]}/_niche"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ niche completion fish | source

  # To load completions for each session, execute once:
  $ niche completion fish > ~/.config/fish/completions/niche.fish

PowerShell:
  PS> niche completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> niche completion powershell > niche.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := cmd.Root()
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return root.GenBashCompletion(out)
			case "zsh":
				return root.GenZshCompletion(out)
			case "fish":
				return root.GenFishCompletion(out, true)
			case "powershell":
				return root.GenPowerShellCompletionWithDesc(out)
			default:
				return fmt.Errorf("unsupported shell type %q", args[0])
			}
		},
	}
}
