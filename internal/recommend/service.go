// Package recommend composes prompt building, the LLM call and response normalization,
// and substitutes the fixed fallback set whenever that pipeline cannot produce results.
package recommend

import (
	"context"
	"errors"
	"fmt"

	"github.com/karolswdev/nichefinder/internal/llm"
	"github.com/karolswdev/nichefinder/internal/niche"
	"github.com/karolswdev/nichefinder/internal/profile"
	"github.com/rs/zerolog/log"
)

// ErrUpstreamUnavailable covers a missing LLM client and any failure of the LLM call itself.
var ErrUpstreamUnavailable = errors.New("LLM upstream unavailable")

// ErrEmptyResult indicates the LLM answered with an empty array.
var ErrEmptyResult = errors.New("LLM returned no recommendations")

// Source reports where a result set came from.
type Source string

const (
	SourceLLM      Source = "llm"
	SourceFallback Source = "fallback"
)

// Result is the outcome of one pipeline run. Err is set when the pipeline failed;
// it is always recoverable and OrFallback turns it into the fallback set.
type Result struct {
	Recommendations []niche.Recommendation
	Source          Source
	Err             error
}

// OrFallback returns r unchanged when it holds recommendations and no error. Otherwise it
// returns the fallback set with Source set to SourceFallback, keeping Err for diagnostics.
func (r Result) OrFallback() Result {
	if r.Err == nil && len(r.Recommendations) > 0 {
		return r
	}
	err := r.Err
	if err == nil {
		err = ErrEmptyResult
	}
	log.Warn().Err(err).Msg("Serving fallback recommendations")
	return Result{
		Recommendations: niche.Fallback(),
		Source:          SourceFallback,
		Err:             err,
	}
}

// Service produces recommendations for validated profiles.
type Service struct {
	client       llm.Client
	systemPrompt string
}

// NewService creates a Service. client may be nil, in which case every request is served
// from the fallback set. An empty systemPrompt selects llm.DefaultSystemPrompt.
func NewService(client llm.Client, systemPrompt string) *Service {
	if systemPrompt == "" {
		systemPrompt = llm.DefaultSystemPrompt
	}
	return &Service{client: client, systemPrompt: systemPrompt}
}

// Recommend returns recommendations for p and never fails: any upstream or parse error
// yields the fallback set. p must already be validated.
func (s *Service) Recommend(ctx context.Context, p profile.UserProfile) []niche.Recommendation {
	return s.Analyze(ctx, p).OrFallback().Recommendations
}

// Analyze runs the pipeline once and reports the raw outcome without substituting the
// fallback set.
func (s *Service) Analyze(ctx context.Context, p profile.UserProfile) Result {
	if s.client == nil {
		log.Debug().Msg("No LLM client configured")
		return Result{Err: fmt.Errorf("%w: no LLM client configured", ErrUpstreamUnavailable)}
	}

	prompt := llm.BuildPrompt(p)
	log.Debug().Int("prompt_length", len(prompt)).Msg("Built recommendation prompt")

	raw, err := s.client.Complete(ctx, s.systemPrompt, prompt)
	if err != nil {
		log.Error().Err(err).Msg("LLM call failed")
		return Result{Err: fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)}
	}

	recs, err := llm.ParseRecommendations(raw)
	if err != nil {
		return Result{Err: err}
	}
	if len(recs) == 0 {
		return Result{Err: ErrEmptyResult}
	}

	log.Info().Int("recommendations", len(recs)).Msg("Recommendations generated by LLM")
	return Result{Recommendations: recs, Source: SourceLLM}
}
