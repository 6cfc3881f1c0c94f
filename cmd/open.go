package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/charo360/tagrank/internal/browser"
	"github.com/charo360/tagrank/internal/config"
)

var flagOpenPlatform string

var openCmd = &cobra.Command{
	Use:   "open [hashtag]",
	Short: "Open a hashtag's search page in the browser",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		platform := flagOpenPlatform
		if platform == "" {
			cfg, err := config.Load(flagConfig)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			platform = cfg.ScoringContext("").Platform
		}
		return browser.OpenTag(platform, args[0])
	},
}

func init() {
	openCmd.Flags().StringVar(&flagOpenPlatform, "platform", "", "platform to open on")
}
