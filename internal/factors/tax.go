package factors

import "github.com/tokensight/tokensight/internal/model"

// TaxFee scores trading taxes. Taxes are only observable through a
// security provider; without one the scorer returns the fixed neutral
// value: unknown taxes are uncertainty, not safety.
func TaxFee(m *model.TokenMetrics, hasSecurity bool) float64 {
	if !hasSecurity || m.Security == nil {
		return TaxNeutralScore
	}

	sec := m.Security
	score := 0.0

	switch tax := sec.SellTax; {
	case tax >= 0.20:
		score += 80
	case tax >= 0.10:
		score += 60
	case tax >= 0.05:
		score += 40
	case tax > 0.01:
		score += 20
	}

	switch tax := sec.BuyTax; {
	case tax >= 0.10:
		score += 20
	case tax >= 0.05:
		score += 10
	}

	// A tax that can be changed after deployment can become a honeypot.
	if sec.TaxModifiable {
		score += 20
	}

	return clamp(score)
}
