package factors

import "github.com/tokensight/tokensight/internal/model"

// LiquidityDepth scores exit risk from absolute pool depth and the
// market-cap-to-liquidity ratio. A token with no reported liquidity
// gets the fixed fallback, never zero.
func LiquidityDepth(m *model.TokenMetrics, hasSecurity bool) float64 {
	if m.LiquidityUSD <= 0 {
		return LiquidityFallbackScore
	}

	score := 0.0

	switch liq := m.LiquidityUSD; {
	case liq < 10_000:
		score += 70
	case liq < 50_000:
		score += 50
	case liq < 250_000:
		score += 35
	case liq < 1_000_000:
		score += 20
	case liq < 5_000_000:
		score += 10
	}

	// Deep market cap sitting on a shallow pool cannot exit cleanly.
	if m.MarketCapUSD > 0 {
		switch ratio := m.MarketCapUSD / m.LiquidityUSD; {
		case ratio > 500:
			score += 30
		case ratio > 200:
			score += 20
		case ratio > 100:
			score += 10
		}
	}

	// LP-lock status is only knowable when a security provider ran.
	if hasSecurity && m.Security != nil {
		if m.Security.LPLocked {
			score -= 10
		} else {
			score += 10
		}
	}

	return clamp(score)
}
