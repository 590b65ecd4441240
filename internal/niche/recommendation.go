// Package niche holds the business-niche recommendation record and the rules that
// turn loosely-typed model output into well-formed records.
package niche

// Recommendation is one business-niche suggestion. Every field is always populated:
// scores are clamped into range, lists are bounded and strings fall back to defaults.
type Recommendation struct {
	Name             string   `json:"name"`
	Description      string   `json:"description"`
	ProfitPotential  int      `json:"profitPotential"`
	MarketDemand     int      `json:"marketDemand"`
	CompetitionLevel string   `json:"competitionLevel"`
	CompetitionScore int      `json:"competitionScore"`
	TargetAudience   string   `json:"targetAudience"`
	StartupCost      string   `json:"startupCost"`
	TimeToProfit     string   `json:"timeToProfit"`
	KeyStrategies    []string `json:"keyStrategies"`
	MarketSize       string   `json:"marketSize"`
	GrowthTrend      string   `json:"growthTrend"`
	Barriers         []string `json:"barriers"`
	Opportunities    []string `json:"opportunities"`
	OverallScore     int      `json:"overallScore"`
	Reasoning        string   `json:"reasoning"`
	ActionSteps      []string `json:"actionSteps"`
	Resources        []string `json:"resources"`
}

// MaxResults bounds the number of records in a result set.
const MaxResults = 4

// Score ranges.
const (
	MinScore        = 1
	MaxScore        = 5
	MinOverallScore = 1
	MaxOverallScore = 100
)

// List bounds.
const (
	MaxKeyStrategies = 5
	MaxBarriers      = 3
	MaxOpportunities = 3
	MaxActionSteps   = 5
	MaxResources     = 4
)

// Defaults substituted for absent or invalid fields.
const (
	DefaultDescription      = "Business opportunity description"
	DefaultScore            = 3
	DefaultOverallScore     = 70
	DefaultCompetitionLevel = "Medium"
	DefaultTargetAudience   = "General audience"
	DefaultStartupCost      = "$1,000 - $5,000"
	DefaultTimeToProfit     = "3-6 months"
	DefaultMarketSize       = "$1B+ market"
	DefaultGrowthTrend      = "Stable growth"
	DefaultReasoning        = "Good fit based on your profile"
)

func defaultKeyStrategies() []string { return []string{"Digital marketing", "Customer service"} }
func defaultBarriers() []string      { return []string{"Competition", "Market entry"} }
func defaultOpportunities() []string { return []string{"Growing demand", "Digital transformation"} }
func defaultActionSteps() []string   { return []string{"Research market", "Create business plan"} }
func defaultResources() []string     { return []string{"Industry reports", "Online courses"} }
