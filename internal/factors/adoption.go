package factors

import "github.com/tokensight/tokensight/internal/model"

// Adoption is the default on-chain activity scorer. When the social
// service returns a signal the orchestrator replaces this score with
// the derived one; this path only sees raw transaction and volume data.
func Adoption(m *model.TokenMetrics) float64 {
	score := 0.0

	switch count := m.TxCount24h; {
	case count <= 0:
		score += 40
	case count < 50:
		score += 30
	case count < 200:
		score += 20
	case count < 1_000:
		score += 10
	}

	// Volume out of proportion with market cap cuts both ways: too low
	// means nobody trades it, too high means wash trading.
	if m.MarketCapUSD <= 0 {
		score += 20
	} else {
		switch ratio := m.Volume24hUSD / m.MarketCapUSD; {
		case ratio < 0.01:
			score += 30
		case ratio < 0.05:
			score += 15
		case ratio > 5:
			score += 25
		case ratio > 1:
			score += 10
		}
	}

	switch {
	case m.AgeDays > 0 && m.AgeDays < 7:
		score += 30
	case m.AgeDays < 30:
		score += 20
	case m.AgeDays < 90:
		score += 10
	}

	return clamp(score)
}
