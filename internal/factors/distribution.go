package factors

import "github.com/tokensight/tokensight/internal/model"

// Distribution scores how skewed initial allocation is, from the team
// share and (more heavily) the top-10 holder share. A record where
// every distribution input sits at its placeholder is scored as
// unknown, not as evenly distributed.
func Distribution(m *model.TokenMetrics) float64 {
	if m.Top10HolderShare <= 0 && m.TeamAllocShare <= 0 {
		return DistributionUnknownScore
	}

	score := 0.0

	switch share := m.Top10HolderShare; {
	case share >= 0.7:
		score += 55
	case share >= 0.5:
		score += 40
	case share >= 0.35:
		score += 25
	case share >= 0.2:
		score += 10
	}

	switch share := m.TeamAllocShare; {
	case share >= 0.4:
		score += 35
	case share >= 0.25:
		score += 25
	case share >= 0.15:
		score += 15
	case share >= 0.05:
		score += 5
	}

	return clamp(score)
}
