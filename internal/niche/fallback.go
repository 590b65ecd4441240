package niche

// Fallback returns the fixed result set served when no model output is usable.
// Each call returns a fresh copy, so callers may modify it freely.
func Fallback() []Recommendation {
	return []Recommendation{
		{
			Name:             "AI-Powered Local Business Optimization",
			Description:      "Help small businesses leverage AI tools to optimize operations, customer service, and marketing strategies.",
			ProfitPotential:  5,
			MarketDemand:     5,
			CompetitionLevel: "Medium",
			CompetitionScore: 3,
			TargetAudience:   "Small Business Owners",
			StartupCost:      "$2,000 - $5,000",
			TimeToProfit:     "3-6 months",
			KeyStrategies: []string{
				"AI tool integration consulting",
				"Custom automation solutions",
				"Performance analytics dashboards",
				"Staff training programs",
				"Ongoing optimization services",
			},
			MarketSize:  "$50B+ (SMB software market)",
			GrowthTrend: "Rapidly growing (25% YoY)",
			Barriers: []string{
				"Technical expertise required",
				"Client education needed",
			},
			Opportunities: []string{
				"AI adoption acceleration",
				"Remote work optimization",
				"Cost reduction focus",
			},
			OverallScore: 87,
			Reasoning:    "High demand for AI integration with low barrier to entry for skilled consultants.",
			ActionSteps: []string{
				"Learn popular AI business tools (ChatGPT, Zapier, etc.)",
				"Create case studies with local businesses",
				"Develop service packages and pricing",
				"Build a portfolio website",
				"Network with local business associations",
			},
			Resources: []string{
				"AI tool certifications",
				"Business automation courses",
				"Local networking groups",
			},
		},
		{
			Name:             "Sustainable Living Subscription Service",
			Description:      "Curated monthly boxes of eco-friendly products with educational content and community features.",
			ProfitPotential:  4,
			MarketDemand:     4,
			CompetitionLevel: "Medium",
			CompetitionScore: 3,
			TargetAudience:   "Environmentally Conscious Consumers",
			StartupCost:      "$10,000 - $25,000",
			TimeToProfit:     "6-12 months",
			KeyStrategies: []string{
				"Product curation partnerships",
				"Educational content creation",
				"Community building platform",
				"Influencer collaborations",
				"Corporate sustainability partnerships",
			},
			MarketSize:  "$15B+ (sustainable products market)",
			GrowthTrend: "Strong growth (15% YoY)",
			Barriers: []string{
				"Inventory management",
				"Supplier relationships",
				"Customer acquisition costs",
			},
			Opportunities: []string{
				"Corporate ESG initiatives",
				"Gen Z purchasing power",
				"Climate awareness",
			},
			OverallScore: 78,
			Reasoning:    "Growing market with strong consumer demand and subscription model provides recurring revenue.",
			ActionSteps: []string{
				"Research sustainable product suppliers",
				"Validate concept with target audience",
				"Develop MVP subscription box",
				"Create content strategy",
				"Launch pre-order campaign",
			},
			Resources: []string{
				"Sustainable product directories",
				"Subscription platform tools",
				"Content creation tools",
			},
		},
	}
}
