package niche

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// decode mirrors how model output is decoded before coercion.
func decode(t *testing.T, raw string) any {
	t.Helper()
	dec := json.NewDecoder(bytes.NewReader([]byte(raw)))
	dec.UseNumber()
	var v any
	require.NoError(t, dec.Decode(&v))
	return v
}

func TestCoerce_EmptyObjectUsesDefaults(t *testing.T) {
	rec := Coerce(1, decode(t, `{}`))

	assert.Equal(t, "Niche 2", rec.Name)
	assert.Equal(t, DefaultDescription, rec.Description)
	assert.Equal(t, DefaultScore, rec.ProfitPotential)
	assert.Equal(t, DefaultScore, rec.MarketDemand)
	assert.Equal(t, DefaultScore, rec.CompetitionScore)
	assert.Equal(t, DefaultOverallScore, rec.OverallScore)
	assert.Equal(t, DefaultCompetitionLevel, rec.CompetitionLevel)
	assert.Equal(t, DefaultTargetAudience, rec.TargetAudience)
	assert.Equal(t, DefaultStartupCost, rec.StartupCost)
	assert.Equal(t, DefaultTimeToProfit, rec.TimeToProfit)
	assert.Equal(t, DefaultMarketSize, rec.MarketSize)
	assert.Equal(t, DefaultGrowthTrend, rec.GrowthTrend)
	assert.Equal(t, DefaultReasoning, rec.Reasoning)
	assert.Equal(t, []string{"Digital marketing", "Customer service"}, rec.KeyStrategies)
	assert.Equal(t, []string{"Competition", "Market entry"}, rec.Barriers)
	assert.Equal(t, []string{"Growing demand", "Digital transformation"}, rec.Opportunities)
	assert.Equal(t, []string{"Research market", "Create business plan"}, rec.ActionSteps)
	assert.Equal(t, []string{"Industry reports", "Online courses"}, rec.Resources)
}

func TestCoerce_NonObjectElement(t *testing.T) {
	for _, raw := range []string{`"a string"`, `42`, `null`, `[1,2]`, `true`} {
		t.Run(raw, func(t *testing.T) {
			assert.Equal(t, Coerce(0, decode(t, `{}`)), Coerce(0, decode(t, raw)))
		})
	}
}

func TestCoerce_Scores(t *testing.T) {
	testCases := []struct {
		name        string
		value       string
		wantScore   int
		wantOverall int
	}{
		{name: "InRange", value: `4`, wantScore: 4, wantOverall: 4},
		{name: "Zero", value: `0`, wantScore: 3, wantOverall: 70},
		{name: "Negative", value: `-7`, wantScore: 1, wantOverall: 1},
		{name: "AboveMax", value: `150`, wantScore: 5, wantOverall: 100},
		{name: "Fraction", value: `4.6`, wantScore: 5, wantOverall: 5},
		{name: "SmallFraction", value: `0.3`, wantScore: 1, wantOverall: 1},
		{name: "NumericString", value: `"2"`, wantScore: 2, wantOverall: 2},
		{name: "NonNumericString", value: `"high"`, wantScore: 3, wantOverall: 70},
		{name: "EmptyString", value: `""`, wantScore: 3, wantOverall: 70},
		{name: "Null", value: `null`, wantScore: 3, wantOverall: 70},
		{name: "Bool", value: `true`, wantScore: 3, wantOverall: 70},
		{name: "Object", value: `{"v":4}`, wantScore: 3, wantOverall: 70},
		{name: "Array", value: `[4]`, wantScore: 3, wantOverall: 70},
		{name: "Overflow", value: `1e400`, wantScore: 5, wantOverall: 100},
		{name: "NegativeOverflow", value: `-1e400`, wantScore: 1, wantOverall: 1},
		{name: "OverflowString", value: `"1e999"`, wantScore: 5, wantOverall: 100},
		{name: "MaxFloat", value: `1e308`, wantScore: 5, wantOverall: 100},
		{name: "InfinityString", value: `"Infinity"`, wantScore: 5, wantOverall: 100},
		{name: "NaNString", value: `"NaN"`, wantScore: 3, wantOverall: 70},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			raw := `{"profitPotential":` + tc.value + `,"marketDemand":` + tc.value +
				`,"competitionScore":` + tc.value + `,"overallScore":` + tc.value + `}`
			rec := Coerce(0, decode(t, raw))

			assert.Equal(t, tc.wantScore, rec.ProfitPotential)
			assert.Equal(t, tc.wantScore, rec.MarketDemand)
			assert.Equal(t, tc.wantScore, rec.CompetitionScore)
			assert.Equal(t, tc.wantOverall, rec.OverallScore)
		})
	}
}

func TestCoerce_ScoresWithoutUseNumber(t *testing.T) {
	var v any
	require.NoError(t, json.Unmarshal([]byte(`{"overallScore": 250, "marketDemand": 2}`), &v))

	rec := Coerce(0, v)
	assert.Equal(t, 100, rec.OverallScore)
	assert.Equal(t, 2, rec.MarketDemand)
}

func TestCoerce_Strings(t *testing.T) {
	rec := Coerce(0, decode(t, `{
		"name": "  Pet Care Hub  ",
		"description": "   ",
		"competitionLevel": 3,
		"targetAudience": null,
		"reasoning": "Strong fit"
	}`))

	assert.Equal(t, "Pet Care Hub", rec.Name)
	assert.Equal(t, DefaultDescription, rec.Description)
	assert.Equal(t, DefaultCompetitionLevel, rec.CompetitionLevel)
	assert.Equal(t, DefaultTargetAudience, rec.TargetAudience)
	assert.Equal(t, "Strong fit", rec.Reasoning)
}

func TestCoerce_Lists(t *testing.T) {
	t.Run("Truncation_PreservesOrder", func(t *testing.T) {
		rec := Coerce(0, decode(t, `{
			"keyStrategies": ["a","b","c","d","e","f","g"],
			"barriers": ["a","b","c","d"],
			"opportunities": ["a","b","c","d","e"],
			"actionSteps": ["a","b","c","d","e","f"],
			"resources": ["a","b","c","d","e"]
		}`))

		assert.Equal(t, []string{"a", "b", "c", "d", "e"}, rec.KeyStrategies)
		assert.Equal(t, []string{"a", "b", "c"}, rec.Barriers)
		assert.Equal(t, []string{"a", "b", "c"}, rec.Opportunities)
		assert.Equal(t, []string{"a", "b", "c", "d", "e"}, rec.ActionSteps)
		assert.Equal(t, []string{"a", "b", "c", "d"}, rec.Resources)
	})

	t.Run("ShortArraysKept", func(t *testing.T) {
		rec := Coerce(0, decode(t, `{"barriers": [], "resources": ["only one"]}`))

		assert.Empty(t, rec.Barriers)
		assert.NotNil(t, rec.Barriers)
		assert.Equal(t, []string{"only one"}, rec.Resources)
	})

	t.Run("NonArrayUsesPlaceholder", func(t *testing.T) {
		rec := Coerce(0, decode(t, `{"keyStrategies": "just do it", "barriers": null, "resources": {"a": 1}}`))

		assert.Equal(t, []string{"Digital marketing", "Customer service"}, rec.KeyStrategies)
		assert.Equal(t, []string{"Competition", "Market entry"}, rec.Barriers)
		assert.Equal(t, []string{"Industry reports", "Online courses"}, rec.Resources)
	})

	t.Run("MixedElementsStringified", func(t *testing.T) {
		rec := Coerce(0, decode(t, `{"actionSteps": ["Plan", 42, null, true, {"step": "x"}]}`))

		assert.Equal(t, []string{"Plan", "42", "", "true", `{"step":"x"}`}, rec.ActionSteps)
	})
}

func TestCoerce_Idempotent(t *testing.T) {
	for i, rec := range Fallback() {
		b, err := json.Marshal(rec)
		require.NoError(t, err)

		once := Coerce(i, decode(t, string(b)))
		assert.Equal(t, rec, once)

		b, err = json.Marshal(once)
		require.NoError(t, err)
		assert.Equal(t, once, Coerce(i, decode(t, string(b))))
	}
}

func TestFallback(t *testing.T) {
	recs := Fallback()
	require.Len(t, recs, 2)
	assert.Equal(t, "AI-Powered Local Business Optimization", recs[0].Name)
	assert.Equal(t, 87, recs[0].OverallScore)
	assert.Equal(t, "Sustainable Living Subscription Service", recs[1].Name)
	assert.Equal(t, 78, recs[1].OverallScore)

	for _, r := range recs {
		assert.LessOrEqual(t, len(r.KeyStrategies), MaxKeyStrategies)
		assert.LessOrEqual(t, len(r.Barriers), MaxBarriers)
		assert.LessOrEqual(t, len(r.Opportunities), MaxOpportunities)
		assert.LessOrEqual(t, len(r.ActionSteps), MaxActionSteps)
		assert.LessOrEqual(t, len(r.Resources), MaxResources)
	}

	// Mutating one copy must not leak into the next.
	recs[0].Name = "changed"
	recs[0].ActionSteps[0] = "changed"
	fresh := Fallback()
	assert.Equal(t, "AI-Powered Local Business Optimization", fresh[0].Name)
	assert.Equal(t, "Learn popular AI business tools (ChatGPT, Zapier, etc.)", fresh[0].ActionSteps[0])
}

func TestSummarize(t *testing.T) {
	assert.Equal(t, Summary{}, Summarize(nil))

	s := Summarize(Fallback())
	assert.Equal(t, 2, s.Count)
	assert.Equal(t, 83, s.AverageScore) // (87+78)/2 = 82.5
	assert.Equal(t, 10, s.TotalActionSteps)
}
