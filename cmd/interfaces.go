package cmd

import (
	"context"

	"github.com/karolswdev/nichefinder/internal/apiclient"
	"github.com/karolswdev/nichefinder/internal/config"
	"github.com/karolswdev/nichefinder/internal/profile"
	"github.com/karolswdev/nichefinder/internal/recommend"
)

// ConfigProvider defines an interface for components that load the configuration of the
// nichefinder application: the main config, the system prompt and the API key. It also
// includes methods for managing the configuration directory and default files. This
// abstraction allows for easier testing by mocking configuration loading behavior.
type ConfigProvider interface {
	LoadConfig() (*config.AppConfig, error)
	LoadSystemPrompt() (string, error)
	SystemPromptPath() (string, error)
	GetAPIKey() (string, error)
	CreateDefaultConfigFiles(configDir string) error
	EnsureConfigDir() (string, error)
}

// Recommender runs the recommendation pipeline in-process.
// *recommend.Service satisfies it.
type Recommender interface {
	Analyze(ctx context.Context, p profile.UserProfile) recommend.Result
}

// NicheAPI is the subset of the remote API used by "niche recommend --server".
// *apiclient.Client satisfies it.
type NicheAPI interface {
	AnalyzeNiche(ctx context.Context, p profile.UserProfile) (*apiclient.AnalyzeResponse, error)
}

// KeyringClient defines an interface for components that interact with the
// operating system's secure credential store (keychain/keyring). It abstracts
// the operations of setting and retrieving secrets, specifically the LLM API key.
type KeyringClient interface {
	Set(service, user, password string) error
	GetAPIKey(service, user string) (string, error)
}
