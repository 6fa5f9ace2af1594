// Package factors implements the per-dimension risk scorers. Each
// scorer is a total function from TokenMetrics to a 0-100 score built
// from additive tiered penalties, capped at 100.
//
// Missing data is never scored as zero risk: every scorer defines a
// pessimistic default for its primary missing input, so uncertainty
// biases toward caution rather than toward a clean score.
package factors

import "github.com/tokensight/tokensight/internal/model"

// Documented fallback scores for missing primary inputs. Exported so
// callers and tests can reference them by name.
const (
	LiquidityFallbackScore    = 85.0 // no liquidity figure at all
	HolderUnknownScore        = 65.0 // no holder data of any kind
	DistributionUnknownScore  = 60.0 // all-placeholder distribution inputs
	TaxNeutralScore           = 50.0 // no security data, taxes unknowable
	AuditFallbackScore        = 60.0 // no security data, audit unknowable
	ContractFallbackBaseScore = 50.0 // no security data, proxy-based path
)

// ScoreAll runs every scorer against the metrics. The security-data
// flag is computed once by the orchestrator and passed in; scorers
// must not re-derive it. largeCapUSD is the calibrated market-cap
// waiver for contract control.
func ScoreAll(m *model.TokenMetrics, hasSecurity bool, largeCapUSD float64) model.FactorBreakdown {
	return model.FactorBreakdown{
		SupplyDilution:      SupplyDilution(m),
		HolderConcentration: HolderConcentration(m),
		LiquidityDepth:      LiquidityDepth(m, hasSecurity),
		VestingUnlock:       VestingUnlock(m),
		ContractControl:     ContractControl(m, hasSecurity, largeCapUSD),
		TaxFee:              TaxFee(m, hasSecurity),
		Distribution:        Distribution(m),
		BurnDeflation:       BurnDeflation(m),
		Adoption:            Adoption(m),
		AuditTransparency:   AuditTransparency(m, hasSecurity),
	}
}

func clamp(score float64) float64 {
	if score > 100 {
		return 100
	}
	if score < 0 {
		return 0
	}
	return score
}
