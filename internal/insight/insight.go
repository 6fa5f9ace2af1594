// Package insight runs the rule-based pass that turns metrics and
// factor scores into critical flags, forward-looking risks and
// narrative insights for premium output.
package insight

import (
	"fmt"

	"github.com/tokensight/tokensight/internal/model"
)

// Rule thresholds. Tuned alongside the factor tiers.
const (
	sellTaxFlagAt   = 0.10
	unlockFlagAt    = 0.10
	top10FlagAt     = 0.50
	contractNoteAt  = 70.0
	liquidityNoteAt = 60.0
	holdersNoteAt   = 60.0
	adoptionNoteAt  = 60.0
	vestingCliffMax = 6.0
)

// Flags returns the ordered critical-flag list. Rules fire
// independently; duplicates are acceptable and order is stable.
func Flags(m *model.TokenMetrics, hasSecurity bool) []string {
	flags := []string{}

	if hasSecurity && m.Security != nil {
		sec := m.Security
		if sec.IsHoneypot {
			flags = append(flags, "CRITICAL: honeypot detected, sells are blocked")
		}
		if sec.IsMintable && !sec.OwnerRenounced {
			flags = append(flags, "Owner can mint new tokens at will")
		}
		if sec.TaxModifiable {
			flags = append(flags, "Trading tax can be changed after deployment")
		}
		if sec.SellTax >= sellTaxFlagAt {
			flags = append(flags, fmt.Sprintf("High sell tax: %.0f%%", sec.SellTax*100))
		}
		if !sec.LPLocked {
			flags = append(flags, "Liquidity pool is not locked")
		}
	}

	if m.Unlock30dShare >= unlockFlagAt {
		flags = append(flags, fmt.Sprintf("%.0f%% of supply unlocks within 30 days", m.Unlock30dShare*100))
	}
	if m.Top10HolderShare >= top10FlagAt {
		flags = append(flags, fmt.Sprintf("Top 10 wallets hold %.0f%% of supply", m.Top10HolderShare*100))
	}

	return flags
}

// UpcomingRisks builds the premium forward-looking forecast from
// unlock and vesting schedules.
func UpcomingRisks(m *model.TokenMetrics, hasSecurity bool) []model.UpcomingRisk {
	risks := []model.UpcomingRisk{}

	if m.Unlock30dShare >= unlockFlagAt {
		risks = append(risks, model.UpcomingRisk{
			Kind:    "unlock",
			Detail:  fmt.Sprintf("%.0f%% of supply unlocks, expect sell pressure", m.Unlock30dShare*100),
			Horizon: "30d",
		})
	}
	if m.TeamVestingMonths > 0 && m.TeamVestingMonths < vestingCliffMax {
		risks = append(risks, model.UpcomingRisk{
			Kind:    "vesting_cliff",
			Detail:  fmt.Sprintf("Team vesting ends in %.0f months", m.TeamVestingMonths),
			Horizon: fmt.Sprintf("%.0fm", m.TeamVestingMonths),
		})
	}
	if m.MaxSupply <= 0 && hasSecurity && m.Security.IsMintable {
		risks = append(risks, model.UpcomingRisk{
			Kind:    "dilution",
			Detail:  "Uncapped supply with active mint authority",
			Horizon: "open-ended",
		})
	}

	return risks
}

// Insights produces the narrative strings keyed off factor scores.
func Insights(b *model.FactorBreakdown, hasSecurity bool) []string {
	insights := []string{}

	if b.ContractControl >= contractNoteAt {
		if hasSecurity {
			insights = append(insights, "Contract checks flag elevated authority risk: ownership and mint controls remain active.")
		} else {
			insights = append(insights, "No security provider data; contract risk inferred from holder structure and token age.")
		}
	}
	if b.LiquidityDepth >= liquidityNoteAt {
		insights = append(insights, "Liquidity is thin relative to market cap; exits at size will move the price.")
	}
	if b.HolderConcentration >= holdersNoteAt {
		insights = append(insights, "Holdings are concentrated in few wallets; a single seller can dominate the order flow.")
	}
	if b.Adoption >= adoptionNoteAt {
		insights = append(insights, "On-chain activity is low for a token of this size.")
	}
	if b.BurnDeflation <= 10 {
		insights = append(insights, "An active burn mechanism is reducing effective supply.")
	}

	return insights
}
