package cmd

import (
	"context"
	"fmt"
	"io"

	openai "github.com/sashabaranov/go-openai"
	keyring "github.com/zalando/go-keyring"

	"github.com/karolswdev/nichefinder/internal/config"
	"github.com/karolswdev/nichefinder/internal/llm"
	"github.com/karolswdev/nichefinder/internal/recommend"
)

// --- Concrete Implementations of Shared Interfaces ---

// DefaultConfigProvider implements the ConfigProvider interface using the actual config package functions.
// Exported for use in integration tests.
type DefaultConfigProvider struct{}

func (p *DefaultConfigProvider) LoadConfig() (*config.AppConfig, error) {
	return config.LoadConfig("") // Pass empty string for default behavior
}

func (p *DefaultConfigProvider) LoadSystemPrompt() (string, error) {
	return config.LoadSystemPrompt("")
}

func (p *DefaultConfigProvider) SystemPromptPath() (string, error) {
	return config.SystemPromptPath("")
}

func (p *DefaultConfigProvider) GetAPIKey() (string, error) {
	return config.GetAPIKey()
}

// CreateDefaultConfigFiles calls the underlying config function to create default files.
// An empty configDir selects the default location.
func (p *DefaultConfigProvider) CreateDefaultConfigFiles(configDir string) error {
	return config.CreateDefaultConfigFiles(configDir)
}

// EnsureConfigDir calls the underlying config function to ensure the config directory exists.
func (p *DefaultConfigProvider) EnsureConfigDir() (string, error) {
	return config.EnsureConfigDir("")
}

// --- Keyring Client Implementation ---

// defaultKeyringClient implements the KeyringClient interface using the actual keyring package.
type defaultKeyringClient struct{}

// Set calls the underlying keyring package's Set function.
func (k *defaultKeyringClient) Set(service, user, password string) error {
	return keyring.Set(service, user, password)
}

// GetAPIKey resolves the key the same way the LLM client does (keychain, then env vars),
// so "config show" reports what "serve" will actually use. service and user are ignored.
func (k *defaultKeyringClient) GetAPIKey(service, user string) (string, error) {
	return config.GetAPIKey()
}

// --- LLM Client Construction ---

// newLLMClient builds the client for the configured provider and applies llm.timeout.
// It returns a nil client, without error, when the provider is "none" or no API key is
// available; the service then answers from the fallback set. The returned closer may be nil.
func newLLMClient(ctx context.Context, cfg *config.AppConfig, apiKey string) (llm.Client, io.Closer, error) {
	client, closer, err := newProviderClient(ctx, cfg, apiKey)
	if err != nil || client == nil {
		return client, closer, err
	}
	return llm.WithTimeout(client, cfg.LLM.Timeout), closer, nil
}

func newProviderClient(ctx context.Context, cfg *config.AppConfig, apiKey string) (llm.Client, io.Closer, error) {
	if cfg.LLM.Provider == config.ProviderNone {
		Log.Info().Msg("LLM provider is 'none'; every request will be answered from the fallback set.")
		return nil, nil, nil
	}
	if apiKey == "" {
		Log.Warn().Str("provider", cfg.LLM.Provider).Msg("No LLM API key available. LLM client not initialized; fallback recommendations will be served.")
		return nil, nil, nil
	}

	params := cfg.LLM.GenerationParams()

	switch cfg.LLM.Provider {
	case config.ProviderGroq, config.ProviderOpenAI:
		openAIConfig := openai.DefaultConfig(apiKey)
		switch {
		case cfg.LLM.OpenAI.BaseURL != "":
			openAIConfig.BaseURL = cfg.LLM.OpenAI.BaseURL
			Log.Debug().Str("baseURLUsed", openAIConfig.BaseURL).Msg("Using custom OpenAI-compatible BaseURL")
		case cfg.LLM.Provider == config.ProviderGroq:
			openAIConfig.BaseURL = llm.GroqBaseURL
		default:
			Log.Debug().Msg("Using default OpenAI BaseURL")
		}

		Log.Debug().Str("provider", cfg.LLM.Provider).Str("model", cfg.LLM.OpenAI.ModelName).Msg("Initializing OpenAI-compatible LLM client")
		client, err := llm.NewOpenAIClient(openai.NewClientWithConfig(openAIConfig), cfg.LLM.OpenAI.ModelName, params)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize %s client: %w", cfg.LLM.Provider, err)
		}
		return client, nil, nil

	case config.ProviderGemini:
		Log.Debug().Str("provider", cfg.LLM.Provider).Str("model", cfg.LLM.Gemini.ModelName).Msg("Initializing Gemini LLM client")
		client, err := llm.NewGeminiClient(ctx, apiKey, cfg.LLM.Gemini.ModelName, params)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize gemini client: %w", err)
		}
		return client, client, nil
	}

	return nil, nil, fmt.Errorf("%w: %q", config.ErrUnsupportedProvider, cfg.LLM.Provider)
}

// --- Central Provider ---

// Provider serves as a central dependency injection container, aggregating the loaded
// configuration and the service interfaces (ConfigProvider, KeyringClient, the LLM client
// and the recommendation service) required by the application's commands. This structure
// simplifies passing dependencies down the call stack and facilitates mocking during testing.
type Provider struct {
	Config    ConfigProvider
	Keyring   KeyringClient
	AppConfig *config.AppConfig
	LLM       llm.Client // nil when no provider is usable
	Service   *recommend.Service

	closer io.Closer
}

// Close releases resources held by the LLM client, if any.
func (p *Provider) Close() error {
	if p == nil || p.closer == nil {
		return nil
	}
	return p.closer.Close()
}

// GetProvider is the factory function responsible for initializing and returning a
// fully configured Provider instance. It loads the application configuration and the
// system prompt, resolves the API key and builds the LLM client for the configured
// provider. Errors loading configuration are returned. A missing API key is only
// logged, because the service still answers from the fallback set.
func GetProvider(ctx context.Context) (*Provider, error) {
	cfgProvider := &DefaultConfigProvider{}
	return newProvider(ctx, cfgProvider)
}

// newProvider is GetProvider with an injectable ConfigProvider.
func newProvider(ctx context.Context, cfgProvider ConfigProvider) (*Provider, error) {
	appCfg, err := cfgProvider.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load application config: %w", err)
	}

	systemPrompt, err := cfgProvider.LoadSystemPrompt()
	if err != nil {
		return nil, fmt.Errorf("failed to load system prompt: %w", err)
	}
	if systemPrompt == "" {
		Log.Debug().Msg("No system prompt file found, using built-in system prompt")
	}

	var apiKey string
	if appCfg.LLM.Provider != config.ProviderNone {
		apiKey, err = cfgProvider.GetAPIKey()
		if err != nil {
			// Log warning but don't fail provider init; the fallback set still works
			Log.Warn().Err(err).Msg("Failed to get LLM API key during provider setup. LLM operations will fall back.")
			apiKey = ""
		}
	}

	llmClient, closer, err := newLLMClient(ctx, appCfg, apiKey)
	if err != nil {
		return nil, err
	}

	provider := &Provider{
		Config:    cfgProvider,
		Keyring:   &defaultKeyringClient{},
		AppConfig: appCfg,
		LLM:       llmClient,
		Service:   recommend.NewService(llmClient, systemPrompt),
		closer:    closer,
	}

	Log.Debug().Str("provider", appCfg.LLM.Provider).Bool("llm_enabled", llmClient != nil).Msg("Service Provider initialized successfully.")
	return provider, nil
}
