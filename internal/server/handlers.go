package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/karolswdev/nichefinder/internal/profile"
	"github.com/karolswdev/nichefinder/internal/recommend"
)

// Messages returned in ErrorResponse bodies.
const (
	MsgInvalidBody   = "Invalid request body"
	MsgBodyTooLarge  = "Request body too large"
	MsgInternalError = "Failed to analyze niche data. Please try again."
)

// SourceHeader reports whether the body came from the LLM or the fallback set.
const SourceHeader = "X-Recommendation-Source"

const (
	contentTypeJSON = "application/json"
	contentTypeText = "text/plain; charset=utf-8"
)

// Recommender runs the recommendation pipeline for a validated profile.
// *recommend.Service satisfies it.
type Recommender interface {
	Analyze(ctx context.Context, p profile.UserProfile) recommend.Result
}

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Error string `json:"error" example:"Missing required fields: interests and skills"`
}

type handler struct {
	svc Recommender
}

// analyzeNiche godoc
// @Summary Recommend business niches for a quiz profile
// @Description Validates the profile, asks the configured LLM for recommendations and normalizes the answer.
// @Description When the LLM is unavailable or its answer cannot be parsed, a fixed fallback set is returned with status 200.
// @Tags niches
// @Accept json
// @Produce json
// @Param profile body profile.UserProfile true "Quiz profile; interests and skills are required"
// @Success 200 {array} niche.Recommendation
// @Header 200 {string} X-Recommendation-Source "llm or fallback"
// @Failure 400 {object} ErrorResponse
// @Failure 413 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/analyze-niche [post]
func (h *handler) analyzeNiche(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())

	var p profile.UserProfile
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			log.Warn().Str("request_id", reqID).Int64("limit", tooLarge.Limit).Msg("Request body too large")
			writeError(w, http.StatusRequestEntityTooLarge, MsgBodyTooLarge)
			return
		}
		log.Warn().Err(err).Str("request_id", reqID).Msg("Failed to decode request body")
		writeError(w, http.StatusBadRequest, MsgInvalidBody)
		return
	}

	if err := p.Validate(); err != nil {
		log.Warn().Err(err).Str("request_id", reqID).Msg("Profile validation failed")
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result := h.svc.Analyze(r.Context(), p).OrFallback()
	log.Info().
		Str("request_id", reqID).
		Str("source", string(result.Source)).
		Int("recommendations", len(result.Recommendations)).
		Msg("Niche analysis complete")

	w.Header().Set(SourceHeader, string(result.Source))
	writeJSON(w, http.StatusOK, result.Recommendations)
}

// health godoc
// @Summary Liveness probe
// @Tags system
// @Produce plain
// @Success 200 {string} string "OK"
// @Router /health [get]
func health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", contentTypeText)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("Failed to encode JSON response")
		status = http.StatusInternalServerError
		body, _ = json.Marshal(ErrorResponse{Error: MsgInternalError})
	}
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}
