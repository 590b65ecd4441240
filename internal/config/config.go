package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"github.com/zalando/go-keyring"

	"github.com/karolswdev/nichefinder/internal/llm"
)

const (
	// DefaultConfigFileName is the standard name for the main configuration file.
	DefaultConfigFileName = "config.yaml"
	// DefaultPromptFileName is the standard name for the system prompt file.
	DefaultPromptFileName = "system_prompt.txt"
	// DefaultConfigDirName is the standard name for the configuration directory within the user's home directory.
	DefaultConfigDirName = ".nichefinder"
	// ConfigDirEnvVar is the environment variable used to override the default configuration directory path.
	ConfigDirEnvVar = "NICHEFINDER_CONFIG_DIR"
	// EnvPrefix prefixes every environment override of a config key (e.g. NICHEFINDER_SERVER_ADDRESS).
	EnvPrefix = "NICHEFINDER"
)

// Supported values for llm.provider.
const (
	ProviderGroq   = "groq"
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
	ProviderNone   = "none"
)

// EnsureConfigDir checks if the configuration directory exists, creating it if necessary.
// It prioritizes baseDir if provided. If baseDir is empty, it checks the NICHEFINDER_CONFIG_DIR
// environment variable. If the environment variable is also empty or unset, it defaults to ~/.nichefinder.
// It returns the validated configuration directory path or an error if creation/validation fails.
func EnsureConfigDir(baseDir string) (string, error) {
	var configDirPath string

	if baseDir != "" {
		configDirPath = baseDir
		log.Debug().Str("path", configDirPath).Msg("Using provided base directory path")
	} else if envDir := os.Getenv(ConfigDirEnvVar); envDir != "" {
		configDirPath = envDir
		log.Debug().Str("path", configDirPath).Str("env_var", ConfigDirEnvVar).Msg("Using config directory path from environment variable")
	} else {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get user home directory: %w", err)
		}
		configDirPath = filepath.Join(homeDir, DefaultConfigDirName)
		log.Debug().Str("path", configDirPath).Msg("Using default config directory path")
	}

	info, err := os.Stat(configDirPath)
	if err != nil {
		if os.IsNotExist(err) {
			log.Info().Str("path", configDirPath).Msg("Config directory does not exist, attempting to create")
			if mkdirErr := os.MkdirAll(configDirPath, 0700); mkdirErr != nil {
				log.Error().Err(mkdirErr).Str("path", configDirPath).Msg("Failed to create config directory")
				return "", fmt.Errorf("%w: %w", ErrConfigDirCreate, mkdirErr)
			}
			log.Info().Str("path", configDirPath).Msg("Successfully created config directory")
			return configDirPath, nil
		}
		log.Error().Err(err).Str("path", configDirPath).Msg("Failed to stat config directory path")
		return "", fmt.Errorf("%w: %w", ErrConfigDirStat, err)
	}

	if !info.IsDir() {
		log.Error().Str("path", configDirPath).Msg("Config path exists but is not a directory")
		return "", ErrConfigDirNotDir
	}

	log.Debug().Str("path", configDirPath).Msg("Config directory exists and is a directory")
	return configDirPath, nil
}

// ServerConfig holds the HTTP API settings.
type ServerConfig struct {
	Address         string        `mapstructure:"address"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxBodyBytes    int64         `mapstructure:"max_body_bytes"`
}

// OpenAIConfig holds configuration for OpenAI-compatible providers (openai, groq).
type OpenAIConfig struct {
	ModelName string `mapstructure:"model_name"`
	BaseURL   string `mapstructure:"base_url"` // Optional custom base URL
}

// GeminiConfig holds configuration specific to the Gemini provider.
type GeminiConfig struct {
	ModelName string `mapstructure:"model_name"`
}

// LLMConfig holds the provider selection and the sampling settings shared by all providers.
// The API key is handled separately via keyring/env var (GetAPIKey).
type LLMConfig struct {
	Provider    string        `mapstructure:"provider"` // groq | openai | gemini | none
	Temperature float32       `mapstructure:"temperature"`
	MaxTokens   int           `mapstructure:"max_tokens"`
	TopP        float32       `mapstructure:"top_p"`
	Timeout     time.Duration `mapstructure:"timeout"` // 0 leaves the transport default in place
	OpenAI      OpenAIConfig  `mapstructure:"openai"`
	Gemini      GeminiConfig  `mapstructure:"gemini"`
}

// GenerationParams converts the sampling settings for the llm package.
func (c LLMConfig) GenerationParams() llm.GenerationParams {
	return llm.GenerationParams{
		Temperature: c.Temperature,
		MaxTokens:   c.MaxTokens,
		TopP:        c.TopP,
	}
}

// AppConfig holds the overall application configuration.
type AppConfig struct {
	Server ServerConfig `mapstructure:"server"`
	LLM    LLMConfig    `mapstructure:"llm"`
}

// LoadConfig loads the application configuration from the config file (e.g., ~/.nichefinder/config.yaml
// or baseDir/config.yaml), environment variables (NICHEFINDER_*), and sets defaults.
// If baseDir is empty, it uses the default ~/.nichefinder.
func LoadConfig(baseDir string) (*AppConfig, error) {
	configDir, err := EnsureConfigDir(baseDir)
	if err != nil {
		return nil, fmt.Errorf("failed to ensure config directory: %w", err)
	}

	v := viper.New()

	defaults := llm.DefaultGenerationParams()
	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("server.max_body_bytes", 1<<20)
	v.SetDefault("llm.provider", ProviderGroq)
	v.SetDefault("llm.temperature", defaults.Temperature)
	v.SetDefault("llm.max_tokens", defaults.MaxTokens)
	v.SetDefault("llm.top_p", defaults.TopP)
	v.SetDefault("llm.timeout", "0s")
	v.SetDefault("llm.openai.model_name", llm.DefaultGroqModel)
	v.SetDefault("llm.openai.base_url", "")
	v.SetDefault("llm.gemini.model_name", llm.DefaultGeminiModel)

	configPath := filepath.Join(configDir, DefaultConfigFileName)
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configDir)
	log.Debug().Str("path", configPath).Msg("Attempting to load config file")

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // llm.openai.model_name -> NICHEFINDER_LLM_OPENAI_MODEL_NAME

	err = v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			log.Warn().Str("path", configPath).Msg("Config file not found. Using defaults and environment variables.")
		} else {
			log.Error().Err(err).Str("path", configPath).Msg("Failed to read config file")
			return nil, fmt.Errorf("%w: %w", ErrConfigRead, err)
		}
	} else {
		log.Debug().Str("path", configPath).Msg("Read config file successfully")
	}

	var cfg AppConfig
	err = v.Unmarshal(&cfg)
	if err != nil {
		log.Error().Err(err).Str("path", configPath).Msg("Failed to unmarshal config file")
		return nil, fmt.Errorf("%w: %w", ErrConfigParse, err)
	}
	cfg.LLM.Provider = strings.ToLower(strings.TrimSpace(cfg.LLM.Provider))

	switch cfg.LLM.Provider {
	case ProviderGroq, ProviderOpenAI, ProviderGemini, ProviderNone:
	default:
		log.Error().Str("provider", cfg.LLM.Provider).Msg("Unsupported LLM provider in config")
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedProvider, cfg.LLM.Provider)
	}
	log.Debug().Str("path", configPath).Interface("config", cfg).Msg("Unmarshalled config successfully")

	return &cfg, nil
}

// LoadSystemPrompt loads the system prompt text from the prompt file (e.g., ~/.nichefinder/system_prompt.txt
// or baseDir/system_prompt.txt). Surrounding whitespace is trimmed.
// It returns an empty string if the file doesn't exist.
// It returns an error if the file exists but cannot be read.
func LoadSystemPrompt(baseDir string) (string, error) {
	configDir, err := EnsureConfigDir(baseDir)
	if err != nil {
		return "", fmt.Errorf("failed to ensure config directory for system prompt: %w", err)
	}

	promptPath := filepath.Join(configDir, DefaultPromptFileName)
	log.Debug().Str("path", promptPath).Msg("Attempting to load system prompt file")

	fileBytes, err := os.ReadFile(promptPath)
	if err != nil {
		if os.IsNotExist(err) {
			log.Debug().Str("path", promptPath).Msg("System prompt file not found, returning empty string")
			return "", nil
		}
		log.Error().Err(err).Str("path", promptPath).Msg("Failed to read system prompt file")
		return "", fmt.Errorf("%w: %w", ErrSystemPromptRead, err)
	}
	log.Debug().Str("path", promptPath).Int("bytes", len(fileBytes)).Msg("Read system prompt file successfully")

	return strings.TrimSpace(string(fileBytes)), nil
}

// SystemPromptPath returns the location of the system prompt file, creating the config
// directory if needed. The file itself may not exist.
func SystemPromptPath(baseDir string) (string, error) {
	configDir, err := EnsureConfigDir(baseDir)
	if err != nil {
		return "", fmt.Errorf("failed to ensure config directory for system prompt: %w", err)
	}
	return filepath.Join(configDir, DefaultPromptFileName), nil
}

// --- Default File Creation ---

const defaultConfigYAML = `# User-specific configuration for the nichefinder CLI (niche)
# Located at ~/.nichefinder/config.yaml
# Every key can be overridden by an environment variable, e.g. NICHEFINDER_SERVER_ADDRESS.

# HTTP API settings used by "niche serve".
server:
  address: ":8080"
  # How long in-flight requests may run after a shutdown signal.
  shutdown_timeout: "10s"
  # Request bodies larger than this are rejected.
  max_body_bytes: 1048576

# Large Language Model used to generate recommendations.
llm:
  # One of "groq", "openai", "gemini" or "none" (always serve the built-in fallback set).
  provider: "groq"
  temperature: 0.7
  max_tokens: 2500
  top_p: 1
  # Per-request timeout for the LLM call. "0s" keeps the transport default.
  timeout: "0s"

  # Settings for OpenAI-compatible providers (groq, openai)
  openai:
    model_name: "meta-llama/llama-4-scout-17b-16e-instruct"
    # Optional: custom base URL. Empty uses https://api.groq.com/openai/v1 for groq
    # and the official endpoint for openai.
    # base_url: ""

  gemini:
    model_name: "gemini-2.5-flash"
`

var defaultSystemPromptTXT = llm.DefaultSystemPrompt + "\n"

// writeFileIfNotExists checks if a file exists. If not, it writes the provided content.
func writeFileIfNotExists(filePath string, content string, perm os.FileMode) error {
	_, err := os.Stat(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			log.Info().Str("path", filePath).Msg("File does not exist, attempting to write default content")
			errWrite := os.WriteFile(filePath, []byte(content), perm)
			if errWrite != nil {
				log.Error().Err(errWrite).Str("path", filePath).Msg("Failed to write default file content")
				return fmt.Errorf("%w: %w", ErrDefaultFileWrite, errWrite)
			}
			log.Info().Str("path", filePath).Msg("Successfully wrote default file content")
			return nil
		}
		log.Error().Err(err).Str("path", filePath).Msg("Failed to stat file path")
		return fmt.Errorf("%w: %w", ErrDefaultFileStat, err)
	}
	log.Debug().Str("path", filePath).Msg("File already exists, no action needed")
	return nil
}

// CreateDefaultConfigFiles ensures the configuration directory exists (using default or baseDir)
// and creates default configuration files (config.yaml, system_prompt.txt) within that
// directory if they do not already exist.
func CreateDefaultConfigFiles(baseDir string) error {
	configDir, err := EnsureConfigDir(baseDir)
	if err != nil {
		return fmt.Errorf("failed to ensure config directory: %w", err)
	}

	filesToCreate := []struct {
		name    string
		content string
		perm    os.FileMode
	}{
		{DefaultConfigFileName, defaultConfigYAML, 0600},
		{DefaultPromptFileName, defaultSystemPromptTXT, 0644},
	}

	for _, file := range filesToCreate {
		filePath := filepath.Join(configDir, file.name)
		log.Debug().Str("file", file.name).Msg("Ensuring default file")
		if err := writeFileIfNotExists(filePath, file.content, file.perm); err != nil {
			return err
		}
	}

	return nil
}

// --- API Key Handling ---

const (
	// KeyringServiceName and KeyringUserName identify the API key in the OS keychain.
	KeyringServiceName = "nichefinder"
	KeyringUserName    = "llm_api_key"
	// EnvAPIKeyName is the first environment variable checked when the keychain has no key.
	EnvAPIKeyName = "NICHEFINDER_LLM_API_KEY"
	// EnvGroqAPIKeyName is checked last, so an existing Groq setup works unchanged.
	EnvGroqAPIKeyName = "GROQ_API_KEY"
)

// GetAPIKey retrieves the LLM API key.
// It first tries the OS keychain/keyring using the service "nichefinder" and user "llm_api_key",
// then the environment variables NICHEFINDER_LLM_API_KEY and GROQ_API_KEY in that order.
// A keychain that cannot be read is not fatal while an env var holds a key.
// If not found anywhere, it returns ErrAPIKeyNotFound, or ErrKeyringGet when the keychain failed.
func GetAPIKey() (string, error) {
	log.Debug().Str("service", KeyringServiceName).Str("user", KeyringUserName).Msg("Attempting to get API key from keychain")
	key, err := keyring.Get(KeyringServiceName, KeyringUserName)
	if err == nil {
		log.Debug().Msg("API key retrieved successfully (from keychain)")
		return key, nil
	}

	// Headless hosts often have no keychain at all; the env vars must still work there.
	keyringErr := err
	if errors.Is(err, keyring.ErrNotFound) {
		keyringErr = nil
	} else {
		log.Warn().Err(err).Str("service", KeyringServiceName).Str("user", KeyringUserName).Msg("Error reading key from keychain, falling back to environment")
	}

	for _, envName := range []string{EnvAPIKeyName, EnvGroqAPIKeyName} {
		log.Debug().Str("env_var", envName).Msg("API key not found in keychain, checking environment variable")
		if key = os.Getenv(envName); key != "" {
			log.Debug().Str("env_var", envName).Msg("API key retrieved successfully (from env var)")
			return key, nil
		}
	}

	if keyringErr != nil {
		return "", fmt.Errorf("%w: %w", ErrKeyringGet, keyringErr)
	}
	log.Debug().Msg("API key not found in keychain or environment")
	return "", ErrAPIKeyNotFound
}

// SetAPIKey stores the LLM API key securely in the OS keychain/keyring.
func SetAPIKey(apiKey string) error {
	log.Debug().Str("service", KeyringServiceName).Str("user", KeyringUserName).Msg("Attempting to set API key in keychain")
	err := keyring.Set(KeyringServiceName, KeyringUserName, apiKey)
	if err != nil {
		log.Error().Err(err).Str("service", KeyringServiceName).Str("user", KeyringUserName).Msg("Failed to set API key in keychain")
		return fmt.Errorf("%w: %w", ErrKeyringSet, err)
	}
	log.Info().Str("service", KeyringServiceName).Str("user", KeyringUserName).Msg("API key stored successfully in keychain")
	return nil
}
