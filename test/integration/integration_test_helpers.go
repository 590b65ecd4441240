//go:build integration

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"

	"github.com/karolswdev/nichefinder/cmd"
	"github.com/karolswdev/nichefinder/internal/config"
)

// mockLLMServer creates a mock HTTP server simulating an OpenAI-compatible chat completion API.
// reply returns the assistant content for each request, or a non-zero status to fail it.
func mockLLMServer(t *testing.T, reply func(req openai.ChatCompletionRequest) (string, int)) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path, "LLM mock expected chat completions path")

		var req openai.ChatCompletionRequest
		if !assert.NoError(t, json.NewDecoder(r.Body).Decode(&req), "Failed to decode LLM request body") {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		content, status := reply(req)
		w.Header().Set("Content-Type", "application/json")
		if status != 0 {
			w.WriteHeader(status)
			fmt.Fprint(w, `{"error":{"message":"mock upstream failure","type":"server_error"}}`)
			return
		}
		assert.NoError(t, json.NewEncoder(w).Encode(openai.ChatCompletionResponse{
			ID:    "chatcmpl-test",
			Model: req.Model,
			Choices: []openai.ChatCompletionChoice{{
				Index:        0,
				Message:      openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: content},
				FinishReason: openai.FinishReasonStop,
			}},
		}))
	}))
	t.Cleanup(server.Close)
	return server
}

// setupTestEnvironment creates a temporary configuration directory with a config.yaml
// pointing the openai provider at llmURL, and points NICHEFINDER_CONFIG_DIR at it.
// The keychain is replaced by an in-memory mock and the API key comes from the environment.
// It returns the path to the temporary directory.
func setupTestEnvironment(t *testing.T, llmURL string) string {
	t.Helper()
	tempDir := t.TempDir()

	configContent := fmt.Sprintf(`
server:
  address: "127.0.0.1:0"
  shutdown_timeout: "2s"
  max_body_bytes: 65536
llm:
  provider: "openai"
  timeout: "5s"
  openai:
    model_name: "test-model"
    base_url: "%s/v1"
`, llmURL)

	configPath := filepath.Join(tempDir, config.DefaultConfigFileName)
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0600), "Failed to write temp config file")

	keyring.MockInit()
	t.Setenv(config.ConfigDirEnvVar, tempDir)
	t.Setenv(config.EnvAPIKeyName, "sk-integration-test")

	return tempDir
}

// writeProfile writes a profile file into dir and returns its path.
func writeProfile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600), "Failed to write profile file")
	return path
}

// executeNicheCommand runs the niche root command with given arguments in-process.
// It captures the command's stdout and stderr streams. NICHEFINDER_CONFIG_DIR must be
// set before calling this function (e.g., by setupTestEnvironment).
func executeNicheCommand(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	originalLevel := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(originalLevel) })

	var outBuf, errBuf bytes.Buffer

	rootCmd := cmd.NewRootCmd()
	rootCmd.SetOut(&outBuf)
	rootCmd.SetErr(&errBuf)
	rootCmd.SetArgs(append([]string{"--log-level", "debug"}, args...))

	execErr := rootCmd.ExecuteContext(context.Background())

	return outBuf.String(), errBuf.String(), execErr
}
