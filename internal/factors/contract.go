package factors

import "github.com/tokensight/tokensight/internal/model"

// ContractControl scores authority risk: who can still change the
// contract, and whether trading is even honest.
//
// Rule precedence with security data, first match wins:
//  1. honeypot: maximum score, nothing else matters
//  2. market cap above the large-cap waiver: score 0 by convention,
//     battle-tested mega caps are treated as safe regardless of flags
//  3. renounced and non-mintable: score 0
//  4. mintable with active ownership: worst remaining case
//  5. renounced but still mintable: moderate
//  6. active ownership, non-mintable: moderate
//
// Without security data the scorer falls back to weak proxies: holder
// structure and token age.
func ContractControl(m *model.TokenMetrics, hasSecurity bool, largeCapUSD float64) float64 {
	if !hasSecurity || m.Security == nil {
		return contractControlProxy(m)
	}

	sec := m.Security
	switch {
	case sec.IsHoneypot:
		return 100
	case m.MarketCapUSD > largeCapUSD:
		return 0
	case sec.OwnerRenounced && !sec.IsMintable:
		return 0
	case sec.IsMintable && !sec.OwnerRenounced:
		return 85
	case sec.OwnerRenounced && sec.IsMintable:
		return 45
	default:
		return 55
	}
}

func contractControlProxy(m *model.TokenMetrics) float64 {
	score := ContractFallbackBaseScore

	if m.Top10HolderShare >= 0.5 {
		score += 20
	}
	if m.HolderCount > 0 && m.HolderCount < 1_000 {
		score += 15
	}
	if m.HolderCount > 100_000 {
		score -= 10
	}

	switch {
	case m.AgeDays > 0 && m.AgeDays < 30:
		score += 15
	case m.AgeDays > 365:
		score -= 15
	}

	return clamp(score)
}
