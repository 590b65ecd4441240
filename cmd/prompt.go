package cmd

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/karolswdev/nichefinder/internal/llm"
)

// newPromptCmd creates the prompt command group
func newPromptCmd() *cobra.Command {
	promptCmd := &cobra.Command{
		Use:   "prompt",
		Short: "Inspect the prompts sent to the LLM",
		Long: `Provides subcommands to preview the user prompt built from a profile and to
show or edit the system prompt file (~/.nichefinder/system_prompt.txt).`,
	}

	promptCmd.AddCommand(newPromptShowCmd())
	promptCmd.AddCommand(newPromptSystemCmd())
	promptCmd.AddCommand(newPromptEditCmd())
	return promptCmd
}

func newPromptShowCmd() *cobra.Command {
	var profilePath string

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the prompt that would be sent for a profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Debug().Str("profile", profilePath).Msg("Executing prompt show command")
			return promptShowRunE(profilePath, cmd.OutOrStdout())
		},
	}

	showCmd.Flags().StringVarP(&profilePath, "profile", "p", "", "Path to the profile file (.yaml, .yml or .json)")
	_ = showCmd.MarkFlagRequired("profile")
	return showCmd
}

// promptShowRunE prints the user prompt built from the profile at path.
func promptShowRunE(path string, out io.Writer) error {
	p, err := loadProfile(path)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, llm.BuildPrompt(p))
	return nil
}

func newPromptSystemCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "system",
		Short: "Print the effective system prompt",
		Long: `Prints the system prompt from system_prompt.txt, or the built-in default
when that file does not exist.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Debug().Msg("Executing prompt system command")
			return promptSystemRunE(&DefaultConfigProvider{}, cmd.OutOrStdout())
		},
	}
}

// promptSystemRunE prints the system prompt the service would use.
func promptSystemRunE(cfgProvider ConfigProvider, out io.Writer) error {
	systemPrompt, err := cfgProvider.LoadSystemPrompt()
	if err != nil {
		log.Error().Err(err).Msg("Failed to load system prompt file")
		return fmt.Errorf("failed to read system prompt: %w", err)
	}
	if systemPrompt == "" {
		log.Debug().Msg("System prompt file not found, showing built-in default")
		systemPrompt = llm.DefaultSystemPrompt
	}
	fmt.Fprintln(out, systemPrompt)
	return nil
}

func newPromptEditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Edit the system prompt file using $EDITOR",
		Long: `Opens system_prompt.txt in $EDITOR, creating it with the built-in default
first if needed. Changes apply to the next "niche serve" or "niche recommend".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Debug().Msg("Executing prompt edit command")
			return promptEditRunE(&DefaultConfigProvider{}, editorCommand(), cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
}

// editorCommand determines the editor to launch.
func editorCommand() string {
	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}
	log.Debug().Msg("$EDITOR not set, using default editor for OS")
	if runtime.GOOS == "windows" {
		return "notepad"
	}
	return "vim"
}

// promptEditRunE ensures the system prompt file exists and opens it in editor.
func promptEditRunE(cfgProvider ConfigProvider, editor string, stdin io.Reader, stdout, stderr io.Writer) error {
	// Writes only missing files, so an edited prompt is never reset
	if err := cfgProvider.CreateDefaultConfigFiles(""); err != nil {
		log.Error().Err(err).Msg("Failed to ensure default configuration files")
		return fmt.Errorf("failed to ensure system prompt file: %w", err)
	}

	promptPath, err := cfgProvider.SystemPromptPath()
	if err != nil {
		log.Error().Err(err).Msg("Failed to determine system prompt path")
		return fmt.Errorf("failed to determine system prompt path: %w", err)
	}
	log.Debug().Str("path", promptPath).Str("editor", editor).Msg("Launching editor")

	editorCmd := exec.Command(editor, promptPath)
	editorCmd.Stdin = stdin
	editorCmd.Stdout = stdout
	editorCmd.Stderr = stderr

	if err := editorCmd.Run(); err != nil {
		log.Error().Err(err).Str("editor", editor).Msg("Editor command failed")
		return fmt.Errorf("failed to run editor '%s': %w", editor, err)
	}

	log.Info().Str("path", promptPath).Msg("Editor finished.")
	return nil
}
