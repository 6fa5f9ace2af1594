package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/tokensight/tokensight/internal/config"
	"github.com/tokensight/tokensight/internal/model"
)

func scoreCmd(ctx context.Context, configPath *string) *cobra.Command {
	var (
		input  string
		plan   string
		symbol string
		name   string
		chain  string
		manual string
	)

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score a token metrics record (JSON on stdin or --input)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}

			var reader io.Reader = os.Stdin
			if input != "" {
				f, err := os.Open(input)
				if err != nil {
					return fmt.Errorf("open metrics file: %w", err)
				}
				defer f.Close()
				reader = f
			}

			var metrics model.TokenMetrics
			if err := json.NewDecoder(reader).Decode(&metrics); err != nil {
				return fmt.Errorf("decode metrics: %w", err)
			}

			planValue, err := parsePlan(plan)
			if err != nil {
				return err
			}

			meta := &model.TokenMeta{Symbol: symbol, Name: name, ChainFamily: chain}
			switch manual {
			case "":
			case "meme":
				cls := model.ClassMeme
				meta.Manual = &cls
			case "utility":
				cls := model.ClassUtility
				meta.Manual = &cls
			default:
				return fmt.Errorf("manual classification must be meme or utility, got %q", manual)
			}

			result, err := buildEngine(cfg).Score(ctx, &metrics, planValue, meta)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		},
	}

	cmd.Flags().StringVar(&input, "input", "", "metrics JSON file (default stdin)")
	cmd.Flags().StringVar(&plan, "plan", "free", "subscription plan: free or premium")
	cmd.Flags().StringVar(&symbol, "symbol", "", "token symbol for classification/social lookup")
	cmd.Flags().StringVar(&name, "name", "", "token name")
	cmd.Flags().StringVar(&chain, "chain", "", "chain family: evm, solana, cardano")
	cmd.Flags().StringVar(&manual, "classification", "", "manual override: meme or utility")

	return cmd
}

func parsePlan(s string) (model.Plan, error) {
	switch model.Plan(s) {
	case model.PlanFree, model.PlanPremium:
		return model.Plan(s), nil
	}
	return "", fmt.Errorf("plan must be free or premium, got %q", s)
}

func newRedis(cfg config.CacheConfig) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: cfg.Addr})
}
