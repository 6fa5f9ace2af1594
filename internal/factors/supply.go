package factors

import "github.com/tokensight/tokensight/internal/model"

// SupplyDilution scores how much future supply can still hit the
// market: low market-cap/FDV and low circulating/total ratios mean the
// float is a fraction of what will eventually trade.
func SupplyDilution(m *model.TokenMetrics) float64 {
	score := 0.0

	// Market cap vs fully diluted valuation.
	switch {
	case m.FDVUSD <= 0 || m.MarketCapUSD <= 0:
		score += 25 // unknown dilution, assume meaningful overhang
	default:
		switch ratio := m.MarketCapUSD / m.FDVUSD; {
		case ratio < 0.2:
			score += 40
		case ratio < 0.4:
			score += 30
		case ratio < 0.6:
			score += 20
		case ratio < 0.8:
			score += 10
		}
	}

	// Circulating vs total supply.
	if m.TotalSupply > 0 {
		switch ratio := m.CirculatingSupply / m.TotalSupply; {
		case ratio < 0.3:
			score += 30
		case ratio < 0.5:
			score += 20
		case ratio < 0.7:
			score += 10
		}
	}

	// Uncapped supply with no burn means dilution has no ceiling.
	if m.MaxSupply <= 0 && m.BurnedSupply <= 0 {
		score += 20
	}

	return clamp(score)
}
