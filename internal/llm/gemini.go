package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

// DefaultGeminiModel is used when the gemini provider has no model configured.
const DefaultGeminiModel = "gemini-2.5-flash"

// GeminiClient implements the llm.Client interface for Google's Gemini API.
type GeminiClient struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiClient dials the Gemini API with apiKey. Extra client options are appended
// after the key, which lets callers override the endpoint or transport.
func NewGeminiClient(ctx context.Context, apiKey, modelName string, params GenerationParams, opts ...option.ClientOption) (*GeminiClient, error) {
	if modelName == "" {
		modelName = DefaultGeminiModel
	}
	client, err := genai.NewClient(ctx, append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLLMClientInit, err)
	}

	model := client.GenerativeModel(modelName)
	model.SetTemperature(params.Temperature)
	model.SetTopP(params.TopP)
	model.SetMaxOutputTokens(int32(params.MaxTokens))
	model.ResponseMIMEType = "application/json"

	log.Debug().Str("model", modelName).Msg("Gemini client created")
	return &GeminiClient{client: client, model: model}, nil
}

// Close releases the underlying connection.
func (g *GeminiClient) Close() error {
	if g.client == nil {
		return nil
	}
	return g.client.Close()
}

// Complete implements the llm.Client interface for Gemini.
func (g *GeminiClient) Complete(ctx context.Context, systemPrompt, prompt string) (string, error) {
	if g.model == nil {
		return "", ErrLLMClientNil
	}
	if prompt == "" {
		return "", ErrLLMPromptEmpty
	}

	// Per-call copy so concurrent requests never share a system instruction.
	model := *g.model
	model.SystemInstruction = nil
	if systemPrompt != "" {
		model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(systemPrompt)}}
	}

	log.Debug().Int("prompt_length", len(prompt)).Msg("Sending request to Gemini API")
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		log.Error().Err(err).Msg("Gemini API call failed")
		return "", fmt.Errorf("%w: %w", ErrLLMCompletion, err)
	}

	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		log.Error().Msg("Received an empty response (no candidates) from Gemini")
		return "", ErrLLMEmptyResponse
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	if sb.Len() == 0 {
		return "", ErrLLMEmptyResponse
	}
	return sb.String(), nil
}
