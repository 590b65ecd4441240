package llm

import "errors"

// Sentinel errors for LLM client and parsing operations.

// ErrLLMClientNil indicates the underlying SDK client was nil when used.
var ErrLLMClientNil = errors.New("LLM client cannot be nil")

// ErrLLMClientInit indicates the provider SDK client could not be created.
var ErrLLMClientInit = errors.New("failed to initialize LLM client")

// ErrLLMPromptEmpty indicates the prompt provided to the LLM was empty.
var ErrLLMPromptEmpty = errors.New("prompt cannot be empty")

// ErrLLMCompletion indicates an error occurred during the LLM API call (e.g., network error, API error).
// The underlying error from the LLM SDK should be wrapped.
var ErrLLMCompletion = errors.New("failed to create LLM completion")

// ErrLLMEmptyResponse indicates the LLM returned a response with no usable content (e.g., no choices).
var ErrLLMEmptyResponse = errors.New("received an empty response from LLM")

// ErrParse indicates the LLM's raw response could not be turned into recommendations.
// Every parsing failure below wraps it.
var ErrParse = errors.New("failed to parse LLM response")

// ErrNoArrayFound indicates no '[' ... ']' span could be located in the LLM response.
var ErrNoArrayFound = errors.New("no array found")

// ErrJSONUnmarshal indicates the extracted span was not valid JSON.
// The underlying JSON error should be wrapped.
var ErrJSONUnmarshal = errors.New("failed to unmarshal LLM response JSON")

// ErrNotArray indicates the extracted JSON parsed but was not an array.
var ErrNotArray = errors.New("not an array")
