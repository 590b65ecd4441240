package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"

	"github.com/karolswdev/nichefinder/internal/llm"
)

func TestEnsureConfigDir(t *testing.T) {
	t.Run("DirectoryDoesNotExist", func(t *testing.T) {
		tempDir := filepath.Join(t.TempDir(), "nested", "config")

		returnedDir, err := EnsureConfigDir(tempDir)
		require.NoError(t, err, "EnsureConfigDir should not return an error when creating the directory")
		require.DirExists(t, tempDir, "Base directory should be created")
		require.Equal(t, tempDir, returnedDir, "EnsureConfigDir should return the provided base directory path")
	})

	t.Run("DirectoryAlreadyExists", func(t *testing.T) {
		tempDir := t.TempDir()

		returnedDir, err := EnsureConfigDir(tempDir)
		require.NoError(t, err, "EnsureConfigDir should not return an error if the directory already exists")
		require.Equal(t, tempDir, returnedDir)
	})

	t.Run("PathIsAFile", func(t *testing.T) {
		filePath := filepath.Join(t.TempDir(), "not-a-dir")
		require.NoError(t, os.WriteFile(filePath, []byte("x"), 0600))

		_, err := EnsureConfigDir(filePath)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrConfigDirNotDir)
	})

	t.Run("EnvVarOverride", func(t *testing.T) {
		envDir := t.TempDir()
		t.Setenv(ConfigDirEnvVar, envDir)

		returnedDir, err := EnsureConfigDir("")
		require.NoError(t, err)
		assert.Equal(t, envDir, returnedDir)
	})
}

func TestLoadConfig(t *testing.T) {
	t.Run("ValidConfig", func(t *testing.T) {
		tempDir := t.TempDir()
		validYAML := `
server:
  address: ":9090"
  shutdown_timeout: "3s"
  max_body_bytes: 2048
llm:
  provider: "OpenAI"
  temperature: 0.2
  max_tokens: 1000
  timeout: "30s"
  openai:
    model_name: "gpt-4o"
    base_url: "http://localhost:1234/v1"
`
		require.NoError(t, os.WriteFile(filepath.Join(tempDir, "config.yaml"), []byte(validYAML), 0644))

		cfg, err := LoadConfig(tempDir)
		require.NoError(t, err, "LoadConfig should not return an error for a valid config")
		require.NotNil(t, cfg)
		assert.Equal(t, ":9090", cfg.Server.Address)
		assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)
		assert.Equal(t, int64(2048), cfg.Server.MaxBodyBytes)
		assert.Equal(t, ProviderOpenAI, cfg.LLM.Provider, "provider should be normalized to lower case")
		assert.InDelta(t, 0.2, cfg.LLM.Temperature, 0.0001)
		assert.Equal(t, 1000, cfg.LLM.MaxTokens)
		assert.InDelta(t, 1.0, cfg.LLM.TopP, 0.0001, "unset keys keep their defaults")
		assert.Equal(t, 30*time.Second, cfg.LLM.Timeout)
		assert.Equal(t, "gpt-4o", cfg.LLM.OpenAI.ModelName)
		assert.Equal(t, "http://localhost:1234/v1", cfg.LLM.OpenAI.BaseURL)
	})

	t.Run("FileNotFound", func(t *testing.T) {
		cfg, err := LoadConfig(t.TempDir())
		require.NoError(t, err, "LoadConfig should not return an error when the config file does not exist")
		require.NotNil(t, cfg)
		assert.Equal(t, ":8080", cfg.Server.Address)
		assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
		assert.Equal(t, int64(1048576), cfg.Server.MaxBodyBytes)
		assert.Equal(t, ProviderGroq, cfg.LLM.Provider)
		assert.Equal(t, llm.DefaultGenerationParams(), cfg.LLM.GenerationParams())
		assert.Equal(t, time.Duration(0), cfg.LLM.Timeout)
		assert.Equal(t, llm.DefaultGroqModel, cfg.LLM.OpenAI.ModelName)
		assert.Equal(t, llm.DefaultGeminiModel, cfg.LLM.Gemini.ModelName)
	})

	t.Run("EnvOverride", func(t *testing.T) {
		t.Setenv("NICHEFINDER_SERVER_ADDRESS", ":7070")
		t.Setenv("NICHEFINDER_LLM_PROVIDER", "none")

		cfg, err := LoadConfig(t.TempDir())
		require.NoError(t, err)
		assert.Equal(t, ":7070", cfg.Server.Address)
		assert.Equal(t, ProviderNone, cfg.LLM.Provider)
	})

	t.Run("UnsupportedProvider", func(t *testing.T) {
		tempDir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(tempDir, "config.yaml"), []byte("llm:\n  provider: \"anthropic\"\n"), 0644))

		_, err := LoadConfig(tempDir)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnsupportedProvider)
	})

	t.Run("InvalidYAML", func(t *testing.T) {
		tempDir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(tempDir, "config.yaml"), []byte(`llm: provider: "openai"`), 0644))

		_, err := LoadConfig(tempDir)
		require.Error(t, err, "LoadConfig should return an error for invalid YAML")
		assert.ErrorIs(t, err, ErrConfigRead)
	})
}

func TestLoadSystemPrompt(t *testing.T) {
	t.Run("ValidPrompt", func(t *testing.T) {
		tempDir := t.TempDir()
		promptContent := "Answer with JSON only."
		require.NoError(t, os.WriteFile(filepath.Join(tempDir, "system_prompt.txt"), []byte(promptContent+"\n\n"), 0644))

		prompt, err := LoadSystemPrompt(tempDir)
		require.NoError(t, err)
		assert.Equal(t, promptContent, prompt, "Should load the trimmed prompt content")
	})

	t.Run("FileNotFound", func(t *testing.T) {
		prompt, err := LoadSystemPrompt(t.TempDir())
		require.NoError(t, err, "LoadSystemPrompt should not return an error when the prompt file does not exist")
		assert.Empty(t, prompt)
	})
}

func TestCreateDefaultConfigFiles(t *testing.T) {
	t.Run("CreateDefaults", func(t *testing.T) {
		tempDir := t.TempDir()

		require.NoError(t, CreateDefaultConfigFiles(tempDir))
		require.FileExists(t, filepath.Join(tempDir, "config.yaml"))
		require.FileExists(t, filepath.Join(tempDir, "system_prompt.txt"))

		// The written defaults must load back to the built-in defaults.
		cfg, err := LoadConfig(tempDir)
		require.NoError(t, err)
		assert.Equal(t, ProviderGroq, cfg.LLM.Provider)
		assert.Equal(t, llm.DefaultGroqModel, cfg.LLM.OpenAI.ModelName)
		assert.Equal(t, llm.DefaultGeminiModel, cfg.LLM.Gemini.ModelName)

		prompt, err := LoadSystemPrompt(tempDir)
		require.NoError(t, err)
		assert.Equal(t, llm.DefaultSystemPrompt, prompt)
	})

	t.Run("FilesAlreadyExist", func(t *testing.T) {
		tempDir := t.TempDir()
		configPath := filepath.Join(tempDir, "config.yaml")
		initialContent := "llm:\n  provider: 'none'"
		require.NoError(t, os.WriteFile(configPath, []byte(initialContent), 0644))

		require.NoError(t, CreateDefaultConfigFiles(tempDir), "CreateDefaultConfigFiles should not return an error even if files exist")

		currentContentBytes, err := os.ReadFile(configPath)
		require.NoError(t, err)
		assert.Equal(t, initialContent, string(currentContentBytes), "Existing config file should not be overwritten")
		require.FileExists(t, filepath.Join(tempDir, "system_prompt.txt"))
	})
}

func TestAPIKey(t *testing.T) {
	t.Run("FromKeyring", func(t *testing.T) {
		keyring.MockInit()
		t.Setenv(EnvAPIKeyName, "env-key")
		require.NoError(t, SetAPIKey("keyring-key"))

		key, err := GetAPIKey()
		require.NoError(t, err)
		assert.Equal(t, "keyring-key", key, "keychain takes precedence over the environment")
	})

	t.Run("FromEnv", func(t *testing.T) {
		keyring.MockInit()
		t.Setenv(EnvAPIKeyName, "env-key")
		t.Setenv(EnvGroqAPIKeyName, "groq-key")

		key, err := GetAPIKey()
		require.NoError(t, err)
		assert.Equal(t, "env-key", key)
	})

	t.Run("FromGroqEnv", func(t *testing.T) {
		keyring.MockInit()
		t.Setenv(EnvAPIKeyName, "")
		t.Setenv(EnvGroqAPIKeyName, "groq-key")

		key, err := GetAPIKey()
		require.NoError(t, err)
		assert.Equal(t, "groq-key", key)
	})

	t.Run("NotFound", func(t *testing.T) {
		keyring.MockInit()
		t.Setenv(EnvAPIKeyName, "")
		t.Setenv(EnvGroqAPIKeyName, "")

		_, err := GetAPIKey()
		assert.ErrorIs(t, err, ErrAPIKeyNotFound)
	})

	t.Run("KeyringUnavailable_FromEnv", func(t *testing.T) {
		keyring.MockInitWithError(errors.New("no dbus"))
		t.Cleanup(keyring.MockInit)
		t.Setenv(EnvAPIKeyName, "")
		t.Setenv(EnvGroqAPIKeyName, "gsk-from-env")

		key, err := GetAPIKey()
		require.NoError(t, err)
		assert.Equal(t, "gsk-from-env", key)
	})

	t.Run("KeyringUnavailable_NoEnv", func(t *testing.T) {
		keyringErr := errors.New("no dbus")
		keyring.MockInitWithError(keyringErr)
		t.Cleanup(keyring.MockInit)
		t.Setenv(EnvAPIKeyName, "")
		t.Setenv(EnvGroqAPIKeyName, "")

		_, err := GetAPIKey()
		assert.ErrorIs(t, err, ErrKeyringGet)
		assert.ErrorIs(t, err, keyringErr)
	})
}
