package cmd

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/karolswdev/nichefinder/internal/apiclient"
	"github.com/karolswdev/nichefinder/internal/config"
	"github.com/karolswdev/nichefinder/internal/profile"
	"github.com/karolswdev/nichefinder/internal/recommend"
)

// --- Mock ConfigProvider ---

type MockConfigProvider struct {
	mock.Mock
}

// LoadConfig matches ConfigProvider interface
func (m *MockConfigProvider) LoadConfig() (*config.AppConfig, error) {
	args := m.Called()
	cfg, _ := args.Get(0).(*config.AppConfig)
	return cfg, args.Error(1)
}

// LoadSystemPrompt matches ConfigProvider interface
func (m *MockConfigProvider) LoadSystemPrompt() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

// SystemPromptPath matches ConfigProvider interface
func (m *MockConfigProvider) SystemPromptPath() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

// GetAPIKey matches ConfigProvider interface
func (m *MockConfigProvider) GetAPIKey() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

// CreateDefaultConfigFiles matches ConfigProvider interface signature
func (m *MockConfigProvider) CreateDefaultConfigFiles(configDir string) error {
	args := m.Called(configDir)
	return args.Error(0)
}

// EnsureConfigDir matches ConfigProvider interface
func (m *MockConfigProvider) EnsureConfigDir() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

// --- Mock Recommender ---

type MockRecommender struct {
	mock.Mock
}

// Analyze matches Recommender interface
func (m *MockRecommender) Analyze(ctx context.Context, p profile.UserProfile) recommend.Result {
	args := m.Called(ctx, p)
	return args.Get(0).(recommend.Result)
}

// --- Mock NicheAPI ---

type MockNicheAPI struct {
	mock.Mock
}

// AnalyzeNiche matches NicheAPI interface
func (m *MockNicheAPI) AnalyzeNiche(ctx context.Context, p profile.UserProfile) (*apiclient.AnalyzeResponse, error) {
	args := m.Called(ctx, p)
	resp, _ := args.Get(0).(*apiclient.AnalyzeResponse)
	return resp, args.Error(1)
}

// --- Mock KeyringClient ---

type MockKeyringClient struct {
	mock.Mock // Implements KeyringClient
}

// Set matches KeyringClient interface
func (m *MockKeyringClient) Set(service, user, password string) error {
	args := m.Called(service, user, password)
	return args.Error(0)
}

// GetAPIKey matches KeyringClient interface
func (m *MockKeyringClient) GetAPIKey(service, user string) (string, error) {
	args := m.Called(service, user)
	return args.String(0), args.Error(1)
}
