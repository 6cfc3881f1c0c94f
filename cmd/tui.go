package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/charo360/tagrank/internal/ai"
	"github.com/charo360/tagrank/internal/config"
	"github.com/charo360/tagrank/internal/tui"
)

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	eng, st, err := newEngine(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	var gen ai.Generator
	if cfg.AIEnabled() {
		if g, err := ai.New(cfg.AI, cfg.AIKey()); err == nil {
			gen = g
		}
	}

	return tui.Run(tui.RunOpts{
		Cfg:       cfg,
		Engine:    eng,
		Generator: gen,
		Platform:  flagPlatform,
	})
}
