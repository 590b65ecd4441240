package niche

import "math"

// Summary aggregates a result set for display.
type Summary struct {
	Count            int `json:"count"`
	AverageScore     int `json:"averageScore"`
	TotalActionSteps int `json:"totalActionSteps"`
}

// Summarize computes the record count, the rounded mean overall score and the total
// number of action steps. An empty set yields a zero Summary.
func Summarize(recs []Recommendation) Summary {
	if len(recs) == 0 {
		return Summary{}
	}
	var total, steps int
	for _, r := range recs {
		total += r.OverallScore
		steps += len(r.ActionSteps)
	}
	return Summary{
		Count:            len(recs),
		AverageScore:     int(math.Round(float64(total) / float64(len(recs)))),
		TotalActionSteps: steps,
	}
}
