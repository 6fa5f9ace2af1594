package classify

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"

	"github.com/tokensight/tokensight/internal/breaker"
	"github.com/tokensight/tokensight/internal/config"
	"github.com/tokensight/tokensight/internal/model"
	"github.com/tokensight/tokensight/internal/ratelimit"
)

// Client calls the HTTP classification service. The underlying resty
// client is shared and never mutated per call, so one Client may serve
// concurrent scoring requests.
type Client struct {
	http    *resty.Client
	breaker *breaker.Breaker
	limiter *ratelimit.Limiter
}

type classifyResponse struct {
	IsMeme     bool   `json:"is_meme"`
	Confidence int    `json:"confidence"`
	Reasoning  string `json:"reasoning"`
}

// NewClient builds a client from service config.
func NewClient(cfg config.ServiceConfig) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(cfg.BaseURL).
			SetTimeout(cfg.Timeout()).
			SetHeader("User-Agent", "tokensight/1.0"),
		breaker: breaker.New("classification"),
		limiter: ratelimit.NewLimiter(cfg.RPS, cfg.Burst),
	}
}

// Classify asks the service whether the token is a meme. Errors are
// returned to the resolver, which degrades to the legacy path; nothing
// here retries.
func (c *Client) Classify(ctx context.Context, hint TokenHint) (model.ClassificationResult, error) {
	if err := c.limiter.Wait(ctx, "classification"); err != nil {
		return model.ClassificationResult{}, fmt.Errorf("classification rate limit: %w", err)
	}

	out, err := c.breaker.Execute(func() (any, error) {
		var body classifyResponse
		resp, err := c.http.R().
			SetContext(ctx).
			SetBody(hint).
			SetResult(&body).
			Post("/v1/classify")
		if err != nil {
			return nil, err
		}
		if resp.IsError() {
			return nil, fmt.Errorf("classification service returned %s", resp.Status())
		}
		return body, nil
	})
	if err != nil {
		log.Warn().Err(err).Str("symbol", hint.Symbol).Msg("classification call failed")
		return model.ClassificationResult{}, err
	}

	body := out.(classifyResponse)
	return model.ClassificationResult{
		IsMeme:     body.IsMeme,
		Confidence: body.Confidence,
		Reasoning:  body.Reasoning,
	}, nil
}
