package factors

import "github.com/tokensight/tokensight/internal/model"

// AuditTransparency scores verifiability: source availability and
// liquidity custody when a security provider ran, otherwise a fixed
// moderate-high default nudged by the market-cap/liquidity ratio.
func AuditTransparency(m *model.TokenMetrics, hasSecurity bool) float64 {
	if !hasSecurity || m.Security == nil {
		score := AuditFallbackScore
		if m.LiquidityUSD > 0 && m.MarketCapUSD > 0 {
			ratio := m.MarketCapUSD / m.LiquidityUSD
			if ratio > 100 {
				score += 10
			} else if ratio < 20 {
				score -= 10
			}
		}
		return clamp(score)
	}

	sec := m.Security
	score := 10.0
	if !sec.OpenSource {
		score += 45
	}
	if !sec.LPLocked {
		score += 25
	}
	if sec.TaxModifiable {
		score += 10
	}

	return clamp(score)
}
