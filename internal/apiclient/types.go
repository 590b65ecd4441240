package apiclient

import "github.com/karolswdev/nichefinder/internal/niche"

// AnalyzeResponse is the decoded result of POST /api/analyze-niche.
type AnalyzeResponse struct {
	Recommendations []niche.Recommendation
	// Source is the X-Recommendation-Source header: "llm" or "fallback".
	Source string
	// RequestID is the X-Request-ID the server assigned, useful when reading server logs.
	RequestID string
}

// ErrorResponse defines the JSON structure of a nichefinder API error body.
type ErrorResponse struct {
	Error string `json:"error"`
}
