package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/charo360/tagrank/internal/config"
	"github.com/charo360/tagrank/internal/store"
	"github.com/charo360/tagrank/internal/trends"
)

var flagTrendsLimit int

var trendsCmd = &cobra.Command{
	Use:   "trends",
	Short: "Show the current trend snapshot",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(flagConfig)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		st, err := store.Open(config.StorePath())
		if err != nil {
			return fmt.Errorf("opening store: %w", err)
		}
		defer st.Close()

		rss := trends.NewRSS(cfg.EnabledFeeds())
		svc := trends.NewService(st, rss, cfg.RefreshDuration())

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		snap, err := svc.Trending(ctx)
		if err != nil {
			return fmt.Errorf("fetching trends: %w", err)
		}

		fmt.Printf("Snapshot: %d articles, fetched %s\n", len(snap.Articles), snap.FetchedAt.Format(time.RFC822))
		if len(snap.Keywords) > 0 {
			fmt.Printf("Keywords: %s\n", strings.Join(snap.Keywords, ", "))
		}
		if len(snap.Topics) > 0 {
			fmt.Printf("Topics: %s\n", strings.Join(snap.Topics, ", "))
		}

		limit := flagTrendsLimit
		if limit > len(snap.Articles) {
			limit = len(snap.Articles)
		}
		if limit > 0 {
			fmt.Println()
		}
		for _, a := range snap.Articles[:limit] {
			fmt.Printf("  %s  %s (%s)\n", a.Published.Format("Jan 2 15:04"), a.Title, a.Source)
		}
		return nil
	},
}

func init() {
	trendsCmd.Flags().IntVar(&flagTrendsLimit, "limit", 10, "number of articles to list")
}
