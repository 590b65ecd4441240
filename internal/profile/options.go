package profile

// Option is one selectable answer of a single-choice quiz question.
type Option struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

// Options lists the single-choice answers offered by the quiz, keyed by the profile's JSON field name.
var Options = map[string][]Option{
	"experienceLevel": {
		{Value: "beginner", Label: "Beginner (0-2 years)"},
		{Value: "intermediate", Label: "Intermediate (2-5 years)"},
		{Value: "advanced", Label: "Advanced (5+ years)"},
		{Value: "expert", Label: "Expert (10+ years)"},
	},
	"budget": {
		{Value: "under-1k", Label: "Under $1,000"},
		{Value: "1k-5k", Label: "$1,000 - $5,000"},
		{Value: "5k-10k", Label: "$5,000 - $10,000"},
		{Value: "10k-25k", Label: "$10,000 - $25,000"},
		{Value: "over-25k", Label: "Over $25,000"},
	},
	"timeline": {
		{Value: "1-3months", Label: "1-3 months"},
		{Value: "3-6months", Label: "3-6 months"},
		{Value: "6-12months", Label: "6-12 months"},
		{Value: "1-2years", Label: "1-2 years"},
		{Value: "over-2years", Label: "Over 2 years"},
	},
	"competitionTolerance": {
		{Value: "low", Label: "Low Competition - I prefer less crowded markets"},
		{Value: "medium", Label: "Medium Competition - Balanced opportunity and competition"},
		{Value: "high", Label: "High Competition - I can compete in saturated markets"},
		{Value: "any", Label: "Any Level - Competition doesn't concern me"},
	},
	"workingHours": {
		{Value: "part-time", Label: "Part-time (10-20 hours/week)"},
		{Value: "full-time", Label: "Full-time (40+ hours/week)"},
		{Value: "flexible", Label: "Flexible schedule"},
		{Value: "evenings-weekends", Label: "Evenings & weekends only"},
	},
	"riskTolerance": {
		{Value: "low", Label: "Low - I prefer stable, predictable returns"},
		{Value: "medium", Label: "Medium - I'm comfortable with moderate risk for better returns"},
		{Value: "high", Label: "High - I'm willing to take significant risks for high rewards"},
		{Value: "very-high", Label: "Very High - I thrive on high-risk, high-reward opportunities"},
	},
	"geographicPreference": {
		{Value: "local", Label: "Local/Regional focus"},
		{Value: "national", Label: "National market"},
		{Value: "global", Label: "Global/International"},
		{Value: "online", Label: "Online-only (location independent)"},
	},
}

// LabelFor returns the human-readable label for value under field.
// Values the quiz does not know about are returned unchanged.
func LabelFor(field, value string) string {
	for _, opt := range Options[field] {
		if opt.Value == value {
			return opt.Label
		}
	}
	return value
}
