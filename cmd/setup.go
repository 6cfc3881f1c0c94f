package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/charo360/tagrank/internal/config"
	"github.com/charo360/tagrank/internal/engine"
	"github.com/charo360/tagrank/internal/score"
	"github.com/charo360/tagrank/internal/store"
	"github.com/charo360/tagrank/internal/trends"
)

// Context flags shared by score and suggest.
var (
	flagPlatform     string
	flagBusinessType string
	flagBusinessName string
	flagLocation     string
	flagIndustry     string
	flagAudience     string
	flagServices     []string
	flagContent      string
	flagHour         int
	flagWeekday      int
)

func addContextFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagPlatform, "platform", "", "target platform (instagram, facebook, twitter, linkedin, tiktok, pinterest)")
	cmd.Flags().StringVar(&flagBusinessType, "business-type", "", "business type (overrides config)")
	cmd.Flags().StringVar(&flagBusinessName, "business-name", "", "business name (overrides config)")
	cmd.Flags().StringVar(&flagLocation, "location", "", "business location (overrides config)")
	cmd.Flags().StringVar(&flagIndustry, "industry", "", "industry (overrides config)")
	cmd.Flags().StringVar(&flagAudience, "audience", "", "target audience")
	cmd.Flags().StringSliceVar(&flagServices, "service", nil, "service offered (repeatable)")
	cmd.Flags().StringVar(&flagContent, "content", "", "post content the hashtags accompany")
	cmd.Flags().IntVar(&flagHour, "hour", -1, "score as if posting at this hour (0-23)")
	cmd.Flags().IntVar(&flagWeekday, "weekday", -1, "score as if posting on this weekday (0=Sunday)")
}

// scoringContext merges config defaults with the context flags.
func scoringContext(cfg *config.Config) score.Context {
	sctx := cfg.ScoringContext(flagPlatform)
	if flagBusinessType != "" {
		sctx.BusinessType = flagBusinessType
	}
	if flagBusinessName != "" {
		sctx.BusinessName = flagBusinessName
	}
	if flagLocation != "" {
		sctx.Location = flagLocation
	}
	if flagIndustry != "" {
		sctx.Industry = flagIndustry
	}
	if flagAudience != "" {
		sctx.TargetAudience = flagAudience
	}
	if len(flagServices) > 0 {
		sctx.Services = flagServices
	}
	sctx.PostContent = flagContent
	if flagHour >= 0 && flagHour <= 23 {
		h := flagHour
		sctx.TimeOfDay = &h
	}
	if flagWeekday >= 0 && flagWeekday <= 6 {
		d := flagWeekday
		sctx.DayOfWeek = &d
	}
	return sctx
}

// newEngine wires the production engine: sqlite-backed trend service over
// the configured feeds, score cache TTL from config. Callers close the
// returned store.
func newEngine(cfg *config.Config) (*engine.Engine, *store.Store, error) {
	st, err := store.Open(config.StorePath())
	if err != nil {
		return nil, nil, fmt.Errorf("opening store: %w", err)
	}

	rss := trends.NewRSS(cfg.EnabledFeeds())
	svc := trends.NewService(st, rss, cfg.RefreshDuration())

	eng := engine.New(svc)
	eng.TTL = cfg.CacheTTLDuration()
	return eng, st, nil
}

// recordHistory persists scoring results, best-effort.
func recordHistory(st *store.Store, sctx score.Context, results []score.Result) {
	for _, r := range results {
		st.RecordScore(store.HistoryEntry{
			Hashtag:        r.Hashtag,
			BusinessType:   sctx.BusinessType,
			Location:       sctx.Location,
			Platform:       sctx.Platform,
			Total:          r.Total,
			Confidence:     r.Confidence,
			Recommendation: string(r.Recommendation),
			ScoredAt:       time.Now(),
		})
	}
}
