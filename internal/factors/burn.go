package factors

import "github.com/tokensight/tokensight/internal/model"

// BurnDeflation rewards supply actually being destroyed. Uncapped
// supply with zero burn is the worst case; a hard cap with negligible
// burn is merely moderate.
func BurnDeflation(m *model.TokenMetrics) float64 {
	if m.TotalSupply <= 0 {
		if m.MaxSupply <= 0 {
			return 75
		}
		return 50
	}

	ratio := m.BurnedSupply / m.TotalSupply
	switch {
	case ratio >= 0.5:
		return 0
	case ratio >= 0.2:
		return 10
	case ratio >= 0.05:
		return 25
	case ratio > 0:
		return 40
	}

	// Zero burn: risk depends on whether supply has a ceiling.
	if m.MaxSupply <= 0 {
		return 75
	}
	return 50
}
