package niche

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Coerce turns one decoded JSON element into a Recommendation. It never fails: an element
// that is not an object is treated as an empty object, and every absent or invalid field
// is replaced by its default. index is the element's position in the source array and
// only feeds the default name.
//
// Field rules:
//   - strings: a missing key, null, a non-string or a blank string yields the default;
//     kept values are trimmed.
//   - scores: a missing key, null, zero, a boolean, a non-numeric string, an object or an
//     array yields the default; numbers and numeric strings are clamped into range and
//     rounded to the nearest integer.
//   - lists: anything other than an array yields a fixed two-item placeholder; arrays are
//     cut to their bound and each element is rendered as a string.
func Coerce(index int, element any) Recommendation {
	obj, _ := element.(map[string]any)

	return Recommendation{
		Name:             coerceString(obj["name"], fmt.Sprintf("Niche %d", index+1)),
		Description:      coerceString(obj["description"], DefaultDescription),
		ProfitPotential:  coerceInt(obj["profitPotential"], DefaultScore, MinScore, MaxScore),
		MarketDemand:     coerceInt(obj["marketDemand"], DefaultScore, MinScore, MaxScore),
		CompetitionLevel: coerceString(obj["competitionLevel"], DefaultCompetitionLevel),
		CompetitionScore: coerceInt(obj["competitionScore"], DefaultScore, MinScore, MaxScore),
		TargetAudience:   coerceString(obj["targetAudience"], DefaultTargetAudience),
		StartupCost:      coerceString(obj["startupCost"], DefaultStartupCost),
		TimeToProfit:     coerceString(obj["timeToProfit"], DefaultTimeToProfit),
		KeyStrategies:    coerceList(obj["keyStrategies"], MaxKeyStrategies, defaultKeyStrategies),
		MarketSize:       coerceString(obj["marketSize"], DefaultMarketSize),
		GrowthTrend:      coerceString(obj["growthTrend"], DefaultGrowthTrend),
		Barriers:         coerceList(obj["barriers"], MaxBarriers, defaultBarriers),
		Opportunities:    coerceList(obj["opportunities"], MaxOpportunities, defaultOpportunities),
		OverallScore:     coerceInt(obj["overallScore"], DefaultOverallScore, MinOverallScore, MaxOverallScore),
		Reasoning:        coerceString(obj["reasoning"], DefaultReasoning),
		ActionSteps:      coerceList(obj["actionSteps"], MaxActionSteps, defaultActionSteps),
		Resources:        coerceList(obj["resources"], MaxResources, defaultResources),
	}
}

func coerceString(v any, def string) string {
	s, ok := v.(string)
	if !ok {
		return def
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	return s
}

func coerceInt(v any, def, lo, hi int) int {
	n, ok := numberValue(v)
	if !ok || n == 0 {
		return def
	}
	n = math.Max(float64(lo), math.Min(float64(hi), n))
	return int(math.Round(n))
}

// numberValue accepts the numeric shapes a decoded JSON value can take, plus numeric strings.
func numberValue(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case json.Number:
		parsed, err := parseNumber(string(n))
		if err != nil {
			return 0, false
		}
		f = parsed
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case string:
		parsed, err := parseNumber(strings.TrimSpace(n))
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

// parseNumber is strconv.ParseFloat except that out-of-range input yields the
// signed infinity instead of an error, so the caller clamps it to the bound.
func parseNumber(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if errors.Is(err, strconv.ErrRange) {
		return f, nil
	}
	return f, err
}

func coerceList(v any, limit int, placeholder func() []string) []string {
	items, ok := v.([]any)
	if !ok {
		return placeholder()
	}
	if len(items) > limit {
		items = items[:limit]
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, stringify(item))
	}
	return out
}

func stringify(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case json.Number:
		return s.String()
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(b)
}
