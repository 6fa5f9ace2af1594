package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/tokensight/tokensight/internal/classify"
	"github.com/tokensight/tokensight/internal/config"
	"github.com/tokensight/tokensight/internal/engine"
	"github.com/tokensight/tokensight/internal/social"
)

func Execute(ctx context.Context) error {
	var configPath string

	root := &cobra.Command{
		Use:     appName,
		Short:   "Token risk scoring engine",
		Version: version,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to yaml config (optional)")

	root.AddCommand(scoreCmd(ctx, &configPath))
	root.AddCommand(serveCmd(ctx, &configPath))
	root.AddCommand(profilesCmd())

	return root.ExecuteContext(ctx)
}

// buildEngine assembles the engine with its configured external
// clients. Disabled services stay nil and the pipeline degrades per
// its documented fallbacks.
func buildEngine(cfg *config.Config) *engine.Engine {
	var classifySvc classify.Service
	if cfg.Services.Classification.Enabled {
		classifySvc = classify.NewClient(cfg.Services.Classification)
		if cfg.Services.Cache.Enabled {
			classifySvc = classify.NewCachedService(classifySvc,
				newRedis(cfg.Services.Cache), cfg.Services.Cache.TTL())
		}
	}

	var socialSvc social.Service
	if cfg.Services.Social.Enabled {
		socialSvc = social.NewClient(cfg.Services.Social)
	}

	return engine.New(cfg.Calibration, classifySvc, socialSvc)
}
