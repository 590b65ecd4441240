package profile

import (
	"fmt"
	"strings"
)

// UserProfile is a single quiz submission describing a prospective entrepreneur.
// Field names match the JSON body accepted by POST /api/analyze-niche; YAML profile
// files use the same keys.
type UserProfile struct {
	Interests            []string `json:"interests" yaml:"interests"`
	CustomInterest       string   `json:"customInterest" yaml:"customInterest"`
	Skills               []string `json:"skills" yaml:"skills"`
	ExperienceLevel      string   `json:"experienceLevel" yaml:"experienceLevel"`
	Budget               string   `json:"budget" yaml:"budget"`
	BusinessModel        []string `json:"businessModel" yaml:"businessModel"`
	Timeline             string   `json:"timeline" yaml:"timeline"`
	TargetAudience       []string `json:"targetAudience" yaml:"targetAudience"`
	CompetitionTolerance string   `json:"competitionTolerance" yaml:"competitionTolerance"`
	WorkingHours         string   `json:"workingHours" yaml:"workingHours"`
	RiskTolerance        string   `json:"riskTolerance" yaml:"riskTolerance"`
	PreviousExperience   string   `json:"previousExperience" yaml:"previousExperience"`
	Motivations          []string `json:"motivations" yaml:"motivations"`
	Challenges           string   `json:"challenges" yaml:"challenges"`
	MarketInsights       string   `json:"marketInsights" yaml:"marketInsights"`
	UniqueValue          string   `json:"uniqueValue" yaml:"uniqueValue"`
	GeographicPreference string   `json:"geographicPreference" yaml:"geographicPreference"`
}

// ValidationError reports the required fields a profile is missing.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingRequiredFields.Error(), strings.Join(e.Missing, " and "))
}

// Unwrap lets callers match the error with errors.Is(err, ErrMissingRequiredFields).
func (e *ValidationError) Unwrap() error {
	return ErrMissingRequiredFields
}

// Validate checks that interests and skills each hold at least one non-blank entry.
func (p UserProfile) Validate() error {
	var missing []string
	if !hasValue(p.Interests) {
		missing = append(missing, "interests")
	}
	if !hasValue(p.Skills) {
		missing = append(missing, "skills")
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}

func hasValue(values []string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return true
		}
	}
	return false
}
