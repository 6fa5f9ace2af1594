package factors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tokensight/tokensight/internal/model"
)

const largeCapUSD = 50_000_000_000

func healthyMetrics() *model.TokenMetrics {
	return &model.TokenMetrics{
		MarketCapUSD:      500_000_000,
		FDVUSD:            550_000_000,
		LiquidityUSD:      20_000_000,
		TotalSupply:       1_000_000_000,
		CirculatingSupply: 900_000_000,
		MaxSupply:         1_000_000_000,
		BurnedSupply:      100_000_000,
		HolderCount:       250_000,
		Top10HolderShare:  0.18,
		Volume24hUSD:      50_000_000,
		TxCount24h:        40_000,
		AgeDays:           800,
		TeamVestingMonths: 24,
		TeamAllocShare:    0.10,
	}
}

func TestContractControl_HoneypotForcesMax(t *testing.T) {
	m := healthyMetrics()
	m.Security = &model.SecuritySignals{
		IsHoneypot:     true,
		OwnerRenounced: true, // irrelevant, honeypot short-circuits
		OpenSource:     true,
		LPLocked:       true,
	}

	assert.Equal(t, 100.0, ContractControl(m, true, largeCapUSD))
}

func TestContractControl_LargeCapWaiver(t *testing.T) {
	m := healthyMetrics()
	m.MarketCapUSD = 200_000_000_000
	m.Security = &model.SecuritySignals{
		IsMintable:     true,
		OwnerRenounced: false,
	}

	// Mega cap wins even over the worst flag combination.
	assert.Equal(t, 0.0, ContractControl(m, true, largeCapUSD))
}

func TestContractControl_LargeCapWithRenounced(t *testing.T) {
	m := healthyMetrics()
	m.MarketCapUSD = 200_000_000_000
	m.Security = &model.SecuritySignals{OwnerRenounced: true, IsMintable: false}

	// Both the waiver and the renounce rule would yield 0 here; shrink
	// the cap and flip renounce to show the waiver acted alone above.
	assert.Equal(t, 0.0, ContractControl(m, true, largeCapUSD))

	m.MarketCapUSD = 400_000_000
	m.Security.OwnerRenounced = false
	assert.Greater(t, ContractControl(m, true, largeCapUSD), 0.0)
}

func TestContractControl_RenouncedNonMintable(t *testing.T) {
	m := healthyMetrics()
	m.Security = &model.SecuritySignals{OwnerRenounced: true, IsMintable: false}

	assert.Equal(t, 0.0, ContractControl(m, true, largeCapUSD))
}

func TestContractControl_MintableActiveOwnerWorst(t *testing.T) {
	m := healthyMetrics()

	m.Security = &model.SecuritySignals{IsMintable: true, OwnerRenounced: false}
	mintable := ContractControl(m, true, largeCapUSD)

	m.Security = &model.SecuritySignals{IsMintable: false, OwnerRenounced: false}
	activeOnly := ContractControl(m, true, largeCapUSD)

	assert.Greater(t, mintable, activeOnly)
}

func TestContractControl_FallbackUsesProxies(t *testing.T) {
	m := healthyMetrics()
	score := ContractControl(m, false, largeCapUSD)

	// Old, widely held token scores below the proxy base.
	assert.Less(t, score, ContractFallbackBaseScore)

	young := healthyMetrics()
	young.AgeDays = 10
	young.HolderCount = 300
	young.Top10HolderShare = 0.6
	assert.Greater(t, ContractControl(young, false, largeCapUSD), ContractFallbackBaseScore)
}

func TestLiquidityDepth_MissingLiquidityFallback(t *testing.T) {
	m := healthyMetrics()
	m.LiquidityUSD = 0

	assert.Equal(t, LiquidityFallbackScore, LiquidityDepth(m, false))

	// Even with security data the fallback stands.
	m.Security = &model.SecuritySignals{LPLocked: true}
	assert.Equal(t, LiquidityFallbackScore, LiquidityDepth(m, true))
}

func TestLiquidityDepth_Tiers(t *testing.T) {
	m := healthyMetrics()
	m.LiquidityUSD = 5_000
	thin := LiquidityDepth(m, false)

	m.LiquidityUSD = 20_000_000
	deep := LiquidityDepth(m, false)

	assert.Greater(t, thin, deep)
	assert.GreaterOrEqual(t, thin, 70.0)
	assert.Equal(t, 0.0, deep)
}

func TestLiquidityDepth_LPLockAdjustment(t *testing.T) {
	m := healthyMetrics()
	m.LiquidityUSD = 100_000

	m.Security = &model.SecuritySignals{LPLocked: false}
	unlocked := LiquidityDepth(m, true)

	m.Security = &model.SecuritySignals{LPLocked: true}
	locked := LiquidityDepth(m, true)

	assert.Equal(t, 20.0, unlocked-locked)
}

func TestHolderConcentration_WhaleScenario(t *testing.T) {
	m := healthyMetrics()
	m.Top10HolderShare = 0.85
	m.HolderCount = 40

	// Top tier on both axes: 60 + 40, capped at 100.
	assert.Equal(t, 100.0, HolderConcentration(m))
}

func TestHolderConcentration_UnknownFallback(t *testing.T) {
	m := healthyMetrics()
	m.Top10HolderShare = 0
	m.HolderCount = 0

	assert.Equal(t, HolderUnknownScore, HolderConcentration(m))
}

func TestHolderConcentration_HealthyLow(t *testing.T) {
	assert.Equal(t, 0.0, HolderConcentration(healthyMetrics()))
}

func TestTaxFee_NeutralWithoutSecurityData(t *testing.T) {
	m := healthyMetrics()
	assert.Equal(t, TaxNeutralScore, TaxFee(m, false))
}

func TestTaxFee_Tiers(t *testing.T) {
	m := healthyMetrics()
	m.Security = &model.SecuritySignals{SellTax: 0.25, BuyTax: 0.12, TaxModifiable: true}
	assert.Equal(t, 100.0, TaxFee(m, true)) // 80+20+20 capped

	m.Security = &model.SecuritySignals{SellTax: 0.06}
	assert.Equal(t, 40.0, TaxFee(m, true))

	m.Security = &model.SecuritySignals{}
	assert.Equal(t, 0.0, TaxFee(m, true))
}

func TestDistribution_UnknownPlaceholder(t *testing.T) {
	m := healthyMetrics()
	m.Top10HolderShare = 0
	m.TeamAllocShare = 0

	assert.Equal(t, DistributionUnknownScore, Distribution(m))
}

func TestDistribution_SkewedAllocation(t *testing.T) {
	m := healthyMetrics()
	m.Top10HolderShare = 0.75
	m.TeamAllocShare = 0.45

	assert.Equal(t, 90.0, Distribution(m)) // 55 + 35
}

func TestBurnDeflation(t *testing.T) {
	m := healthyMetrics()
	m.BurnedSupply = 600_000_000
	assert.Equal(t, 0.0, BurnDeflation(m))

	m.BurnedSupply = 0
	m.MaxSupply = 0
	assert.Equal(t, 75.0, BurnDeflation(m))

	m.MaxSupply = 1_000_000_000
	assert.Equal(t, 50.0, BurnDeflation(m))
}

func TestSupplyDilution_LowFloat(t *testing.T) {
	m := healthyMetrics()
	m.MarketCapUSD = 50_000_000
	m.FDVUSD = 1_000_000_000 // 5% of FDV circulating
	m.CirculatingSupply = 100_000_000

	score := SupplyDilution(m)
	assert.GreaterOrEqual(t, score, 70.0) // 40 + 30
}

func TestSupplyDilution_Healthy(t *testing.T) {
	assert.Equal(t, 0.0, SupplyDilution(healthyMetrics()))
}

func TestAdoption_DeadToken(t *testing.T) {
	m := healthyMetrics()
	m.TxCount24h = 0
	m.Volume24hUSD = 0
	m.AgeDays = 3

	assert.Equal(t, 100.0, Adoption(m))
}

func TestAdoption_WashTrading(t *testing.T) {
	m := healthyMetrics()
	m.Volume24hUSD = m.MarketCapUSD * 8

	assert.Equal(t, 25.0, Adoption(m))
}

func TestAuditTransparency(t *testing.T) {
	m := healthyMetrics()
	assert.Equal(t, AuditFallbackScore, AuditTransparency(m, false))

	m.Security = &model.SecuritySignals{OpenSource: true, LPLocked: true}
	assert.Equal(t, 10.0, AuditTransparency(m, true))

	m.Security = &model.SecuritySignals{OpenSource: false, LPLocked: false}
	assert.Equal(t, 80.0, AuditTransparency(m, true))
}

func TestVestingUnlock_NearTermCliff(t *testing.T) {
	m := healthyMetrics()
	m.Unlock30dShare = 0.35
	m.TeamVestingMonths = 0
	m.TeamAllocShare = 0.40

	assert.Equal(t, 100.0, VestingUnlock(m)) // 70+25+10 capped
}

func TestScoreAll_AllScoresInRange(t *testing.T) {
	cases := []*model.TokenMetrics{
		healthyMetrics(),
		{}, // fully empty record
		{
			LiquidityUSD:     100,
			Top10HolderShare: 0.99,
			Security:         &model.SecuritySignals{IsHoneypot: true, SellTax: 0.5},
		},
	}

	for _, m := range cases {
		b := ScoreAll(m, m.HasSecurityData(), largeCapUSD)
		for _, key := range model.AllFactors {
			score := b.Get(key)
			require.GreaterOrEqual(t, score, 0.0, "factor %s", key)
			require.LessOrEqual(t, score, 100.0, "factor %s", key)
		}
	}
}

func TestScoreAll_EmptyRecordIsNotClean(t *testing.T) {
	b := ScoreAll(&model.TokenMetrics{}, false, largeCapUSD)

	// Conservative bias: a record with no data must not look safe.
	assert.Equal(t, LiquidityFallbackScore, b.LiquidityDepth)
	assert.Equal(t, HolderUnknownScore, b.HolderConcentration)
	assert.Equal(t, DistributionUnknownScore, b.Distribution)
	assert.Equal(t, TaxNeutralScore, b.TaxFee)
}
