package main

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/tokensight/tokensight/internal/config"
	httpapi "github.com/tokensight/tokensight/internal/interfaces/http"
	"github.com/tokensight/tokensight/internal/model"
	"github.com/tokensight/tokensight/internal/weights"
)

func serveCmd(ctx context.Context, configPath *string) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the scoring HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			if port != 0 {
				cfg.Server.Port = port
			}

			server := httpapi.NewServer(cfg.Server, buildEngine(cfg))

			errCh := make(chan error, 1)
			go func() { errCh <- server.Start() }()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			log.Info().Msg("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "listen port (overrides config)")
	return cmd
}

func profilesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profiles",
		Short: "Print the normalized weight profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			resolver := weights.NewResolver()
			names := resolver.Names()
			sort.Strings(names)

			for _, name := range names {
				profile, err := resolver.Get(name)
				if err != nil {
					return err
				}
				fmt.Printf("%s: %s\n", profile.Name, profile.Description)
				keys := make([]string, 0, len(profile.Weights))
				for k := range profile.Weights {
					keys = append(keys, string(k))
				}
				sort.Strings(keys)
				for _, k := range keys {
					fmt.Printf("  %-22s %.4f\n", k, profile.Weights[model.FactorKey(k)])
				}
			}
			return nil
		},
	}
}
