package social

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"

	"github.com/tokensight/tokensight/internal/breaker"
	"github.com/tokensight/tokensight/internal/config"
	"github.com/tokensight/tokensight/internal/model"
	"github.com/tokensight/tokensight/internal/providers"
	"github.com/tokensight/tokensight/internal/ratelimit"
)

// Client calls the HTTP social-signal service. A fallback endpoint,
// when configured, is tried after the primary through the standard
// provider chain.
type Client struct {
	endpoints []endpoint
	timeout   time.Duration
	breaker   *breaker.Breaker
	limiter   *ratelimit.Limiter
}

type endpoint struct {
	name string
	http *resty.Client
}

type signalResponse struct {
	Score   float64            `json:"score"`
	Metrics map[string]float64 `json:"metrics"`
}

// NewClient builds a client from service config.
func NewClient(cfg config.ServiceConfig) *Client {
	c := &Client{
		timeout: cfg.Timeout(),
		breaker: breaker.New("social"),
		limiter: ratelimit.NewLimiter(cfg.RPS, cfg.Burst),
	}

	urls := []struct{ name, url string }{{"social-primary", cfg.BaseURL}}
	if cfg.FallbackURL != "" {
		urls = append(urls, struct{ name, url string }{"social-fallback", cfg.FallbackURL})
	}
	for _, u := range urls {
		c.endpoints = append(c.endpoints, endpoint{
			name: u.name,
			http: resty.New().
				SetBaseURL(u.url).
				SetTimeout(cfg.Timeout()).
				SetHeader("User-Agent", "tokensight/1.0"),
		})
	}
	return c
}

// AdoptionSignal fetches the derived adoption score, trying the
// fallback endpoint if the primary yields nothing.
func (c *Client) AdoptionSignal(ctx context.Context, symbol, handle string) (*model.AdoptionSignal, error) {
	if err := c.limiter.Wait(ctx, "social"); err != nil {
		return nil, fmt.Errorf("social rate limit: %w", err)
	}

	chain := make([]providers.Provider[*model.AdoptionSignal], 0, len(c.endpoints))
	for _, ep := range c.endpoints {
		ep := ep
		chain = append(chain, providers.Provider[*model.AdoptionSignal]{
			Name:    ep.name,
			Timeout: c.timeout,
			Fetch: func(ctx context.Context) (*model.AdoptionSignal, bool, error) {
				return c.fetch(ctx, ep, symbol, handle)
			},
		})
	}

	sig, source, err := providers.Try(ctx, chain)
	if err != nil {
		log.Warn().Err(err).Str("symbol", symbol).Msg("adoption signal unavailable")
		return nil, err
	}
	sig.Source = source
	return sig, nil
}

func (c *Client) fetch(ctx context.Context, ep endpoint, symbol, handle string) (*model.AdoptionSignal, bool, error) {
	out, err := c.breaker.Execute(func() (any, error) {
		var body signalResponse
		resp, err := ep.http.R().
			SetContext(ctx).
			SetQueryParam("symbol", symbol).
			SetQueryParam("handle", handle).
			SetResult(&body).
			Get("/v1/adoption")
		if err != nil {
			return nil, err
		}
		if resp.StatusCode() == 404 {
			return nil, nil // service knows nothing about this token
		}
		if resp.IsError() {
			return nil, fmt.Errorf("%s returned %s", ep.name, resp.Status())
		}
		return &body, nil
	})
	if err != nil {
		return nil, false, err
	}
	body, _ := out.(*signalResponse)
	if body == nil {
		return nil, false, nil
	}
	return &model.AdoptionSignal{Score: body.Score, Metrics: body.Metrics}, true, nil
}
