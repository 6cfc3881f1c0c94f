package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/charo360/tagrank/internal/ai"
	"github.com/charo360/tagrank/internal/config"
	"github.com/charo360/tagrank/internal/score"
)

var flagSuggestJSON bool

var suggestCmd = &cobra.Command{
	Use:   "suggest [post content]",
	Short: "Generate and rank hashtag candidates for a post",
	Long: `Generate hashtag candidates for the given post content and rank them
with the scoring engine. Uses the configured AI backend when available,
otherwise derives candidates from the business profile and content.`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(flagConfig)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		content := strings.Join(args, " ")
		if content == "" {
			content = flagContent
		}

		eng, st, err := newEngine(cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		sctx := scoringContext(cfg)
		sctx.PostContent = content

		ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
		defer cancel()

		var candidates []string
		if cfg.AIEnabled() {
			gen, err := ai.New(cfg.AI, cfg.AIKey())
			if err == nil {
				tags, err := gen.Hashtags(ctx, content, cfg.Business)
				if err != nil {
					fmt.Printf("  [warn] candidate generation: %v\n", err)
				} else {
					candidates = tags
				}
			}
		}
		if len(candidates) == 0 {
			candidates = score.Candidates(sctx)
		}
		if len(candidates) == 0 {
			return fmt.Errorf("no candidates: provide post content or fill in the business profile")
		}

		results, err := eng.ScoreHashtags(ctx, candidates, sctx)
		if err != nil {
			return fmt.Errorf("scoring: %w", err)
		}
		recordHistory(st, sctx, results)

		if flagSuggestJSON {
			return json.NewEncoder(os.Stdout).Encode(resultsJSON(results))
		}
		printResults(results, sctx)
		return nil
	},
}

func init() {
	addContextFlags(suggestCmd)
	suggestCmd.Flags().BoolVar(&flagSuggestJSON, "json", false, "emit JSON instead of a table")
}
