package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/karolswdev/nichefinder/internal/apiclient"
	"github.com/karolswdev/nichefinder/internal/niche"
	"github.com/karolswdev/nichefinder/internal/profile"
)

// --- Helper Functions for recommendRunner.Run ---

// loadProfile reads and validates the profile file.
func loadProfile(path string) (profile.UserProfile, error) {
	p, err := profile.LoadFile(path)
	if err != nil {
		return profile.UserProfile{}, err
	}
	if err := p.Validate(); err != nil {
		Log.Error().Err(err).Str("path", path).Msg("Profile failed validation")
		return profile.UserProfile{}, fmt.Errorf("invalid profile %s: %w", path, err)
	}
	return p, nil
}

// recommendationsOutput is the -o json document.
type recommendationsOutput struct {
	Source          string                 `json:"source"`
	Recommendations []niche.Recommendation `json:"recommendations"`
	Summary         niche.Summary          `json:"summary"`
}

// formatOutput renders recommendations based on the output flag.
func formatOutput(out io.Writer, format, source string, recs []niche.Recommendation) error {
	summary := niche.Summarize(recs)
	Log.Debug().Str("format", format).Int("count", summary.Count).Msg("Processing output for recommendations")

	switch format {
	case "json":
		jsonData, err := json.MarshalIndent(recommendationsOutput{
			Source:          source,
			Recommendations: recs,
			Summary:         summary,
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal recommendations to JSON: %w", err)
		}
		fmt.Fprintln(out, string(jsonData))
		return nil
	case "text", "":
	default:
		return fmt.Errorf("unsupported output format %q (use text or json)", format)
	}

	fmt.Fprintf(out, "Business niche recommendations (source: %s)\n", source)
	for i, r := range recs {
		fmt.Fprintf(out, "\n%d. %s  [%d/100]\n", i+1, r.Name, r.OverallScore)
		fmt.Fprintf(out, "   %s\n", r.Description)
		fmt.Fprintf(out, "   Profit potential %d/5 | Market demand %d/5 | Competition %s (%d/5)\n",
			r.ProfitPotential, r.MarketDemand, r.CompetitionLevel, r.CompetitionScore)
		fmt.Fprintf(out, "   Audience: %s\n", r.TargetAudience)
		fmt.Fprintf(out, "   Startup cost: %s | Time to profit: %s\n", r.StartupCost, r.TimeToProfit)
		fmt.Fprintf(out, "   Market: %s, %s\n", r.MarketSize, r.GrowthTrend)
		fmt.Fprintf(out, "   Why: %s\n", r.Reasoning)
		writeList(out, "Key strategies", r.KeyStrategies)
		writeList(out, "Opportunities", r.Opportunities)
		writeList(out, "Barriers", r.Barriers)
		writeList(out, "Action steps", r.ActionSteps)
		writeList(out, "Resources", r.Resources)
	}
	fmt.Fprintf(out, "\nSummary: %d niches, average score %d/100, %d action steps\n",
		summary.Count, summary.AverageScore, summary.TotalActionSteps)
	return nil
}

func writeList(out io.Writer, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(out, "   %s: %s\n", title, strings.Join(items, "; "))
}

// --- Command Runner ---

// recommendRunner holds the dependencies for the recommend command. Exactly one of
// recommender (local pipeline) and api (remote server) is set.
type recommendRunner struct {
	recommender Recommender
	api         NicheAPI
}

// Run produces recommendations for p and writes them to out.
func (r *recommendRunner) Run(ctx context.Context, p profile.UserProfile, format string, out io.Writer) error {
	var (
		recs   []niche.Recommendation
		source string
	)

	switch {
	case r.api != nil:
		resp, err := r.api.AnalyzeNiche(ctx, p)
		if err != nil {
			Log.Error().Err(err).Msg("Remote analysis failed")
			return fmt.Errorf("failed to get recommendations from server: %w", err)
		}
		recs, source = resp.Recommendations, resp.Source
		Log.Debug().Str("request_id", resp.RequestID).Msg("Received recommendations from server")
	case r.recommender != nil:
		result := r.recommender.Analyze(ctx, p).OrFallback()
		recs, source = result.Recommendations, string(result.Source)
	default:
		return errors.New("no recommendation backend configured")
	}

	return formatOutput(out, format, source, recs)
}

// --- Cobra Command Definition ---

// newRecommendCmd creates the recommend command
func newRecommendCmd() *cobra.Command {
	var profilePath, serverURL string

	recommendCmd := &cobra.Command{
		Use:   "recommend",
		Short: "Recommend business niches for a profile",
		Long: `Reads an entrepreneurial profile (YAML or JSON) and prints up to four business
niche recommendations.

By default the LLM pipeline runs in-process using your configuration. With
--server the profile is sent to a running "niche serve" instance instead.

Example profile (profile.yaml):

  interests: [technology, education]
  skills: [programming, writing]
  experienceLevel: beginner
  budget: 1k-5k`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("output")

			p, err := loadProfile(profilePath)
			if err != nil {
				return err
			}

			runner := &recommendRunner{}
			if serverURL != "" {
				client, err := apiclient.New(serverURL)
				if err != nil {
					return fmt.Errorf("failed to initialize API client: %w", err)
				}
				runner.api = client
			} else {
				provider, err := GetProvider(cmd.Context())
				if err != nil {
					Log.Error().Err(err).Msg("Failed to get service provider")
					return fmt.Errorf("failed to initialize services: %w", err)
				}
				defer provider.Close()
				runner.recommender = provider.Service
			}

			return runner.Run(cmd.Context(), p, format, cmd.OutOrStdout())
		},
	}

	recommendCmd.Flags().StringVarP(&profilePath, "profile", "p", "", "Path to the profile file (.yaml, .yml or .json)")
	recommendCmd.Flags().StringVarP(&serverURL, "server", "s", "", "Base URL of a running nichefinder API (e.g. http://localhost:8080)")
	_ = recommendCmd.MarkFlagRequired("profile")

	return recommendCmd
}
