package llm

import (
	"strings"

	"github.com/karolswdev/nichefinder/internal/profile"
)

// DefaultSystemPrompt is the system instruction sent with every completion request
// unless the user supplies their own system_prompt.txt.
const DefaultSystemPrompt = "You are an expert business consultant and market analyst. " +
	"Provide structured business niche recommendations in valid JSON format only. " +
	"Do not include any text outside the JSON response."

// Caps applied to list fields when rendering a profile into the prompt.
const (
	maxPromptInterests      = 8
	maxPromptSkills         = 6
	maxPromptBusinessModels = 4
	maxPromptAudiences      = 4
	maxPromptMotivations    = 3
)

const notSpecified = "Not specified"

const outputSchema = `Return ONLY a valid JSON array with exactly this structure:
[
  {
    "name": "Niche Name",
    "description": "Brief description under 120 characters",
    "profitPotential": 4,
    "marketDemand": 4,
    "competitionLevel": "Medium",
    "competitionScore": 3,
    "targetAudience": "Primary audience",
    "startupCost": "$X,XXX - $X,XXX",
    "timeToProfit": "X-X months",
    "keyStrategies": ["Strategy 1", "Strategy 2", "Strategy 3"],
    "marketSize": "$XXB market",
    "growthTrend": "Growing X% annually",
    "barriers": ["Barrier 1", "Barrier 2"],
    "opportunities": ["Opportunity 1", "Opportunity 2"],
    "overallScore": 85,
    "reasoning": "Why this niche fits under 150 characters",
    "actionSteps": ["Step 1", "Step 2", "Step 3"],
    "resources": ["Resource 1", "Resource 2"]
  }
]

Requirements:
- All scores must be integers 1-5
- overallScore must be integer 1-100
- All arrays must have 2-4 items
- Keep descriptions concise
- Focus on profitable, realistic niches based on user profile`

// BuildPrompt renders a profile into the user message sent to the LLM.
// List fields are capped to bound the prompt size, keeping their original order, and
// single-choice answers are rendered with their quiz labels. Empty optional values are
// written as fallback literals. The output depends only on p.
func BuildPrompt(p profile.UserProfile) string {
	var promptBuilder strings.Builder

	promptBuilder.WriteString("Analyze this user profile and provide exactly 3 business niche recommendations as a JSON array.\n\n")

	promptBuilder.WriteString("USER PROFILE:\n")
	interests := firstN(p.Interests, maxPromptInterests)
	if custom := strings.TrimSpace(p.CustomInterest); custom != "" {
		interests = append(interests, custom)
	}
	writeLine(&promptBuilder, "Interests", joinOr(interests, notSpecified))
	writeLine(&promptBuilder, "Skills", joinOr(firstN(p.Skills, maxPromptSkills), notSpecified))
	writeLine(&promptBuilder, "Experience", labelOr("experienceLevel", p.ExperienceLevel, notSpecified))
	writeLine(&promptBuilder, "Budget", labelOr("budget", p.Budget, notSpecified))
	writeLine(&promptBuilder, "Business Models", joinOr(firstN(p.BusinessModel, maxPromptBusinessModels), notSpecified))
	writeLine(&promptBuilder, "Timeline", labelOr("timeline", p.Timeline, notSpecified))
	writeLine(&promptBuilder, "Target Audience", joinOr(firstN(p.TargetAudience, maxPromptAudiences), notSpecified))
	writeLine(&promptBuilder, "Competition Tolerance", labelOr("competitionTolerance", p.CompetitionTolerance, notSpecified))
	writeLine(&promptBuilder, "Working Hours", labelOr("workingHours", p.WorkingHours, "Flexible"))
	writeLine(&promptBuilder, "Risk Tolerance", labelOr("riskTolerance", p.RiskTolerance, "Medium"))
	writeLine(&promptBuilder, "Motivations", joinOr(firstN(p.Motivations, maxPromptMotivations), "Success"))
	promptBuilder.WriteString("\n")

	promptBuilder.WriteString(outputSchema)

	return promptBuilder.String()
}

func writeLine(b *strings.Builder, label, value string) {
	b.WriteString("- ")
	b.WriteString(label)
	b.WriteString(": ")
	b.WriteString(value)
	b.WriteString("\n")
}

// firstN takes the first n entries of values, then drops the blank ones and trims the rest.
// The cap counts blank entries, so it always covers the same prefix of the input.
func firstN(values []string, n int) []string {
	if len(values) > n {
		values = values[:n]
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func joinOr(values []string, fallback string) string {
	if len(values) == 0 {
		return fallback
	}
	return strings.Join(values, ", ")
}

func labelOr(field, value, fallback string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback
	}
	return profile.LabelFor(field, value)
}
