package llm

import (
	"strings"
	"testing"

	"github.com/karolswdev/nichefinder/internal/niche"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecommendations_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "Empty_Input", input: "", wantErr: ErrNoArrayFound},
		{name: "No_Brackets", input: "Sorry, I cannot help with that.", wantErr: ErrNoArrayFound},
		{name: "Only_Opening_Bracket", input: "here: [ {\"name\": \"x\"}", wantErr: ErrNoArrayFound},
		{name: "Brackets_Reversed", input: "] nothing here [", wantErr: ErrNoArrayFound},
		{name: "Malformed_JSON", input: `[{"name": "x",}]`, wantErr: ErrJSONUnmarshal},
		{name: "Two_Arrays", input: `[{"name":"a"}] and also [{"name":"b"}]`, wantErr: ErrJSONUnmarshal},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			recs, err := ParseRecommendations(tc.input)
			require.Error(t, err)
			assert.Nil(t, recs)
			assert.ErrorIs(t, err, ErrParse)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestParseRecommendations_ClampsAndDefaults(t *testing.T) {
	recs, err := ParseRecommendations(`Here you go: [{"name":"X","overallScore":150}]`)
	require.NoError(t, err)
	require.Len(t, recs, 1)

	want := niche.Coerce(0, map[string]any{})
	want.Name = "X"
	want.OverallScore = 100
	assert.Equal(t, want, recs[0])
}

func TestParseRecommendations_OutOfRangeNumbersClamp(t *testing.T) {
	recs, err := ParseRecommendations(`[{"overallScore":1e400,"profitPotential":-1e400,"marketDemand":"1e999","competitionScore":1e308}]`)

	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, niche.MaxOverallScore, recs[0].OverallScore)
	assert.Equal(t, 1, recs[0].ProfitPotential)
	assert.Equal(t, 5, recs[0].MarketDemand)
	assert.Equal(t, 5, recs[0].CompetitionScore)
}

func TestParseRecommendations_CodeFence(t *testing.T) {
	raw := "```json\n[\n  {\"name\": \"Pet Care\", \"profitPotential\": 4, \"barriers\": [\"Trust\", \"Insurance\"]}\n]\n```"

	recs, err := ParseRecommendations(raw)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "Pet Care", recs[0].Name)
	assert.Equal(t, 4, recs[0].ProfitPotential)
	assert.Equal(t, []string{"Trust", "Insurance"}, recs[0].Barriers)
}

func TestParseRecommendations_ResultBound(t *testing.T) {
	testCases := []struct {
		count int
		want  int
	}{
		{count: 0, want: 0},
		{count: 1, want: 1},
		{count: 4, want: 4},
		{count: 7, want: 4},
	}

	for _, tc := range testCases {
		elems := make([]string, tc.count)
		for i := range elems {
			elems[i] = "{}"
		}
		recs, err := ParseRecommendations("[" + strings.Join(elems, ",") + "]")
		require.NoError(t, err)
		require.Len(t, recs, tc.want)
		for i, r := range recs {
			assert.Equal(t, niche.Coerce(i, nil).Name, r.Name, "order and default names must be preserved")
		}
	}
}

func TestParseRecommendations_NonObjectElementsKept(t *testing.T) {
	recs, err := ParseRecommendations(`[1, "two", null, {"name": "Four"}]`)
	require.NoError(t, err)
	require.Len(t, recs, 4)
	assert.Equal(t, "Niche 1", recs[0].Name)
	assert.Equal(t, "Niche 2", recs[1].Name)
	assert.Equal(t, "Niche 3", recs[2].Name)
	assert.Equal(t, "Four", recs[3].Name)
}
