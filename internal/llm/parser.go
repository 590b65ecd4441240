package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/karolswdev/nichefinder/internal/niche"
	"github.com/rs/zerolog/log"
)

// ParseRecommendations extracts the JSON array from the LLM's raw text and coerces every
// element into a niche.Recommendation. The span between the first '[' and the last ']'
// is taken as the array, so prose or code fences around it are ignored. Elements are
// never dropped; the result is cut to niche.MaxResults.
//
// Every error returned wraps ErrParse together with one of ErrNoArrayFound,
// ErrJSONUnmarshal or ErrNotArray.
func ParseRecommendations(rawResponse string) ([]niche.Recommendation, error) {
	log.Debug().Int("raw_length", len(rawResponse)).Msg("Attempting to parse LLM response")

	trimmed := strings.TrimSpace(rawResponse)
	start := strings.Index(trimmed, "[")
	end := strings.LastIndex(trimmed, "]")
	if start == -1 || end == -1 || end < start {
		log.Error().Str("raw_response", rawResponse).Msg("Could not find a JSON array in LLM response")
		return nil, fmt.Errorf("%w: %w", ErrParse, ErrNoArrayFound)
	}
	jsonStr := trimmed[start : end+1]
	log.Debug().Str("extracted_json", jsonStr).Msg("Extracted JSON array span")

	// Validate the whole span first; the decoder below would stop after the first value.
	var raw json.RawMessage
	if err := json.Unmarshal([]byte(jsonStr), &raw); err != nil {
		log.Error().Err(err).Str("raw_response", rawResponse).Msg("Failed to unmarshal LLM response JSON")
		return nil, fmt.Errorf("%w: %w: %w", ErrParse, ErrJSONUnmarshal, err)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var parsed any
	if err := dec.Decode(&parsed); err != nil {
		log.Error().Err(err).Str("raw_response", rawResponse).Msg("Failed to decode LLM response JSON")
		return nil, fmt.Errorf("%w: %w: %w", ErrParse, ErrJSONUnmarshal, err)
	}

	elements, ok := parsed.([]any)
	if !ok {
		log.Error().Str("raw_response", rawResponse).Msg("LLM response JSON is not an array")
		return nil, fmt.Errorf("%w: %w", ErrParse, ErrNotArray)
	}

	if len(elements) > niche.MaxResults {
		log.Debug().Int("elements", len(elements)).Int("max", niche.MaxResults).Msg("Truncating LLM result set")
		elements = elements[:niche.MaxResults]
	}

	recs := make([]niche.Recommendation, 0, len(elements))
	for i, el := range elements {
		recs = append(recs, niche.Coerce(i, el))
	}

	log.Info().Int("recommendations", len(recs)).Msg("LLM response parsed and normalized successfully")
	return recs, nil
}
