package factors

import "github.com/tokensight/tokensight/internal/model"

// HolderConcentration scores whale dominance from the top-10 holder
// share and the absolute holder count. The two penalties are additive
// and independently tiered.
func HolderConcentration(m *model.TokenMetrics) float64 {
	if m.Top10HolderShare <= 0 && m.HolderCount <= 0 {
		return HolderUnknownScore
	}

	score := 0.0

	switch share := m.Top10HolderShare; {
	case share <= 0:
		score += 35 // share unknown but holder count known
	case share >= 0.8:
		score += 60
	case share >= 0.6:
		score += 45
	case share >= 0.4:
		score += 30
	case share >= 0.25:
		score += 15
	}

	switch count := m.HolderCount; {
	case count <= 0:
		score += 25
	case count < 100:
		score += 40
	case count < 500:
		score += 30
	case count < 2_000:
		score += 20
	case count < 10_000:
		score += 10
	}

	return clamp(score)
}
