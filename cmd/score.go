package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/charo360/tagrank/internal/config"
	"github.com/charo360/tagrank/internal/score"
)

var flagJSON bool

var scoreCmd = &cobra.Command{
	Use:   "score [hashtags...]",
	Short: "Score and rank hashtags for your business context",
	Long: `Score one or more hashtags against current trend data, your business
profile, and the target platform. Results are ranked by total score.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(flagConfig)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		eng, st, err := newEngine(cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		sctx := scoringContext(cfg)
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		results, err := eng.ScoreHashtags(ctx, args, sctx)
		if err != nil {
			return fmt.Errorf("scoring: %w", err)
		}
		recordHistory(st, sctx, results)

		if flagJSON {
			return json.NewEncoder(os.Stdout).Encode(resultsJSON(results))
		}
		printResults(results, sctx)
		return nil
	},
}

func init() {
	addContextFlags(scoreCmd)
	scoreCmd.Flags().BoolVar(&flagJSON, "json", false, "emit JSON instead of a table")
}

var (
	outTagStyle = lipgloss.NewStyle().Bold(true)
	outDimStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#626262"})
	outRecStyle = map[score.Recommendation]lipgloss.Style{
		score.RecommendHigh:   lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#25D366"}),
		score.RecommendMedium: lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#B58900", Dark: "#F0C674"}),
		score.RecommendLow:    lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#626262"}),
		score.RecommendAvoid:  lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#D33682", Dark: "#FF6B6B"}),
	}
)

func printResults(results []score.Result, sctx score.Context) {
	fmt.Printf("Context: %s · %s · %s\n\n", sctx.BusinessType, sctx.Location, sctx.Platform)
	for _, r := range results {
		rec := outRecStyle[r.Recommendation].Render(string(r.Recommendation))
		fmt.Printf("%5.1f  %s  %s (conf %.2f)\n",
			r.Total, outTagStyle.Render(r.Hashtag), rec, r.Confidence)
		fmt.Printf("       %s\n", outDimStyle.Render(breakdownLine(r.Breakdown)))
		for _, reason := range r.Reasoning {
			fmt.Printf("       %s\n", outDimStyle.Render("· "+reason))
		}
	}
}

func breakdownLine(b score.Breakdown) string {
	parts := []string{
		fmt.Sprintf("trend %.1f", b.Trending),
		fmt.Sprintf("biz %.1f", b.Business),
		fmt.Sprintf("loc %.1f", b.Location),
		fmt.Sprintf("plat %.1f", b.Platform),
		fmt.Sprintf("engage %.1f", b.Engagement),
		fmt.Sprintf("time %.1f", b.Temporal),
		fmt.Sprintf("comp %.1f", b.Competitor),
		fmt.Sprintf("sem %.1f", b.Semantic),
	}
	return strings.Join(parts, "  ")
}

type resultJSON struct {
	Hashtag        string             `json:"hashtag"`
	Total          float64            `json:"totalScore"`
	Breakdown      map[string]float64 `json:"breakdown"`
	Confidence     float64            `json:"confidence"`
	Recommendation string             `json:"recommendation"`
	Reasoning      []string           `json:"reasoning"`
}

func resultsJSON(results []score.Result) []resultJSON {
	out := make([]resultJSON, len(results))
	for i, r := range results {
		out[i] = resultJSON{
			Hashtag: r.Hashtag,
			Total:   r.Total,
			Breakdown: map[string]float64{
				"trending":   r.Breakdown.Trending,
				"business":   r.Breakdown.Business,
				"location":   r.Breakdown.Location,
				"platform":   r.Breakdown.Platform,
				"engagement": r.Breakdown.Engagement,
				"temporal":   r.Breakdown.Temporal,
				"competitor": r.Breakdown.Competitor,
				"semantic":   r.Breakdown.Semantic,
			},
			Confidence:     r.Confidence,
			Recommendation: string(r.Recommendation),
			Reasoning:      r.Reasoning,
		}
	}
	return out
}
