package factors

import "github.com/tokensight/tokensight/internal/model"

// VestingUnlock scores near-term supply unlock pressure and vesting
// discipline. Retained in the breakdown and the legacy weighting path;
// the profile-based path folds unlock risk into supply and vesting
// stays display-only there.
func VestingUnlock(m *model.TokenMetrics) float64 {
	score := 0.0

	switch share := m.Unlock30dShare; {
	case share >= 0.3:
		score += 70
	case share >= 0.2:
		score += 55
	case share >= 0.1:
		score += 40
	case share >= 0.05:
		score += 25
	case share > 0:
		score += 10
	}

	switch months := m.TeamVestingMonths; {
	case months <= 0:
		score += 25 // no vesting schedule at all
	case months < 6:
		score += 15
	case months < 12:
		score += 5
	}

	if m.TeamAllocShare >= 0.3 {
		score += 10
	}

	return clamp(score)
}
