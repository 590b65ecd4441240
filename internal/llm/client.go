package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	openai "github.com/sashabaranov/go-openai"
)

// Groq serves an OpenAI-compatible API; these are used when the provider is "groq".
const (
	GroqBaseURL      = "https://api.groq.com/openai/v1"
	DefaultGroqModel = "meta-llama/llama-4-scout-17b-16e-instruct"
)

// Client defines the interface for interacting with different LLM providers.
type Client interface {
	// Complete sends the system instruction and the user prompt as one non-streaming
	// chat request and returns the text of the first answer.
	Complete(ctx context.Context, systemPrompt, prompt string) (string, error)
}

// WithTimeout bounds every Complete call of c by d. A non-positive d returns c unchanged.
func WithTimeout(c Client, d time.Duration) Client {
	if c == nil || d <= 0 {
		return c
	}
	return &timeoutClient{next: c, timeout: d}
}

type timeoutClient struct {
	next    Client
	timeout time.Duration
}

func (t *timeoutClient) Complete(ctx context.Context, systemPrompt, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	return t.next.Complete(ctx, systemPrompt, prompt)
}

// GenerationParams are the sampling settings sent with each request.
type GenerationParams struct {
	Temperature float32
	MaxTokens   int
	TopP        float32
}

// DefaultGenerationParams returns the settings used when none are configured.
func DefaultGenerationParams() GenerationParams {
	return GenerationParams{
		Temperature: 0.7,
		MaxTokens:   2500,
		TopP:        1,
	}
}

// OpenAIClient implements the llm.Client interface for OpenAI-compatible APIs (OpenAI, Groq).
type OpenAIClient struct {
	client    *openai.Client
	modelName string
	params    GenerationParams
}

// NewOpenAIClient creates a new OpenAI client wrapper.
// It requires a configured go-openai client and the model name to use.
func NewOpenAIClient(client *openai.Client, modelName string, params GenerationParams) (*OpenAIClient, error) {
	if client == nil {
		return nil, ErrLLMClientNil
	}
	if modelName == "" {
		log.Warn().Str("default", DefaultGroqModel).Msg("modelName is empty for OpenAIClient, using default")
		modelName = DefaultGroqModel
	}
	return &OpenAIClient{
		client:    client,
		modelName: modelName,
		params:    params,
	}, nil
}

// Complete implements the llm.Client interface for OpenAI-compatible APIs.
func (o *OpenAIClient) Complete(ctx context.Context, systemPrompt, prompt string) (string, error) {
	if o.client == nil {
		return "", ErrLLMClientNil
	}
	if prompt == "" {
		return "", ErrLLMPromptEmpty
	}

	messages := make([]openai.ChatCompletionMessage, 0, 2)
	if systemPrompt != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: systemPrompt,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: prompt,
	})

	req := openai.ChatCompletionRequest{
		Model:       o.modelName,
		Messages:    messages,
		Temperature: o.params.Temperature,
		MaxTokens:   o.params.MaxTokens,
		TopP:        o.params.TopP,
		Stream:      false,
	}

	log.Debug().Str("model", o.modelName).Int("prompt_length", len(prompt)).Msg("Sending request to OpenAI-compatible API")
	resp, err := o.client.CreateChatCompletion(ctx, req)
	if err != nil {
		log.Error().Err(err).Str("model", o.modelName).Msg("OpenAI API call failed")
		return "", fmt.Errorf("%w: %w", ErrLLMCompletion, err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		log.Error().Msg("Received an empty response (no choices) from OpenAI")
		return "", ErrLLMEmptyResponse
	}
	rawResponse := resp.Choices[0].Message.Content
	log.Debug().Str("raw_response", rawResponse).Msg("Extracted raw response content")

	return rawResponse, nil
}
