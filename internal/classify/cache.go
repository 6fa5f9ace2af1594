package classify

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/tokensight/tokensight/internal/model"
)

// CachedService wraps a classification Service with a redis cache.
// Classification for a symbol is stable over hours, so cache hits skip
// the network entirely. Cache failures degrade to the inner service;
// they never fail the call.
type CachedService struct {
	inner Service
	rdb   redis.Cmdable
	ttl   time.Duration
}

// NewCachedService wraps inner with a redis-backed cache.
func NewCachedService(inner Service, rdb redis.Cmdable, ttl time.Duration) *CachedService {
	if ttl <= 0 {
		ttl = 6 * time.Hour
	}
	return &CachedService{inner: inner, rdb: rdb, ttl: ttl}
}

func cacheKey(hint TokenHint) string {
	return "tokensight:classify:" + strings.ToUpper(hint.Symbol)
}

// Classify serves from cache when possible, otherwise calls the inner
// service and stores the result. Hints without a symbol bypass the
// cache; name/description keys would be too noisy.
func (c *CachedService) Classify(ctx context.Context, hint TokenHint) (model.ClassificationResult, error) {
	if hint.Symbol == "" {
		return c.inner.Classify(ctx, hint)
	}

	key := cacheKey(hint)
	if raw, err := c.rdb.Get(ctx, key).Result(); err == nil {
		var cached model.ClassificationResult
		if jsonErr := json.Unmarshal([]byte(raw), &cached); jsonErr == nil {
			return cached, nil
		}
	} else if err != redis.Nil {
		log.Debug().Err(err).Str("key", key).Msg("classification cache read failed")
	}

	result, err := c.inner.Classify(ctx, hint)
	if err != nil {
		return model.ClassificationResult{}, err
	}

	if raw, jsonErr := json.Marshal(result); jsonErr == nil {
		if setErr := c.rdb.Set(ctx, key, raw, c.ttl).Err(); setErr != nil {
			log.Debug().Err(setErr).Str("key", key).Msg("classification cache write failed")
		}
	}
	return result, nil
}

var _ Service = (*CachedService)(nil)

// String describes the cache for diagnostics.
func (c *CachedService) String() string {
	return fmt.Sprintf("cached-classify(ttl=%s)", c.ttl)
}
