package model

// RiskLevel buckets the overall score. Thresholds are fixed and
// monotonic: >=75 critical, >=50 high, >=30 medium, below low.
type RiskLevel string

const (
	LevelLow      RiskLevel = "LOW"
	LevelMedium   RiskLevel = "MEDIUM"
	LevelHigh     RiskLevel = "HIGH"
	LevelCritical RiskLevel = "CRITICAL"
)

// Severity returns an ordinal for comparing levels.
func (l RiskLevel) Severity() int {
	switch l {
	case LevelLow:
		return 0
	case LevelMedium:
		return 1
	case LevelHigh:
		return 2
	case LevelCritical:
		return 3
	}
	return -1
}

// SecurityStatus tags whether security-provider data backed the run.
type SecurityStatus string

const (
	SecurityActive   SecurityStatus = "active"
	SecurityFallback SecurityStatus = "fallback"
)

// FactorKey identifies one scored risk dimension.
type FactorKey string

const (
	FactorSupply       FactorKey = "supply_dilution"
	FactorHolders      FactorKey = "holder_concentration"
	FactorLiquidity    FactorKey = "liquidity_depth"
	FactorVesting      FactorKey = "vesting_unlock"
	FactorContract     FactorKey = "contract_control"
	FactorTax          FactorKey = "tax_fee"
	FactorDistribution FactorKey = "distribution"
	FactorBurn         FactorKey = "burn_deflation"
	FactorAdoption     FactorKey = "adoption"
	FactorAudit        FactorKey = "audit_transparency"
)

// WeightedFactors lists the nine keys carried by the profile-based
// weighting scheme. Vesting is excluded there but retained in the
// breakdown for display and for the legacy path.
var WeightedFactors = []FactorKey{
	FactorSupply, FactorHolders, FactorLiquidity, FactorContract,
	FactorTax, FactorDistribution, FactorBurn, FactorAdoption, FactorAudit,
}

// AllFactors lists every factor including vesting, in breakdown order.
var AllFactors = []FactorKey{
	FactorSupply, FactorHolders, FactorLiquidity, FactorVesting,
	FactorContract, FactorTax, FactorDistribution, FactorBurn,
	FactorAdoption, FactorAudit,
}

// FactorBreakdown holds all ten sub-scores, each 0-100.
type FactorBreakdown struct {
	SupplyDilution      float64 `json:"supply_dilution"`
	HolderConcentration float64 `json:"holder_concentration"`
	LiquidityDepth      float64 `json:"liquidity_depth"`
	VestingUnlock       float64 `json:"vesting_unlock"`
	ContractControl     float64 `json:"contract_control"`
	TaxFee              float64 `json:"tax_fee"`
	Distribution        float64 `json:"distribution"`
	BurnDeflation       float64 `json:"burn_deflation"`
	Adoption            float64 `json:"adoption"`
	AuditTransparency   float64 `json:"audit_transparency"`
}

// Get returns the sub-score for a factor key.
func (b *FactorBreakdown) Get(key FactorKey) float64 {
	switch key {
	case FactorSupply:
		return b.SupplyDilution
	case FactorHolders:
		return b.HolderConcentration
	case FactorLiquidity:
		return b.LiquidityDepth
	case FactorVesting:
		return b.VestingUnlock
	case FactorContract:
		return b.ContractControl
	case FactorTax:
		return b.TaxFee
	case FactorDistribution:
		return b.Distribution
	case FactorBurn:
		return b.BurnDeflation
	case FactorAdoption:
		return b.Adoption
	case FactorAudit:
		return b.AuditTransparency
	}
	return 0
}

// UpcomingRisk is a dated forward-looking warning (premium output).
type UpcomingRisk struct {
	Kind    string `json:"kind"` // "unlock", "vesting_cliff", "dilution"
	Detail  string `json:"detail"`
	Horizon string `json:"horizon"` // e.g. "30d"
}

// ClassificationSummary is the premium-facing view of classification.
type ClassificationSummary struct {
	IsMeme           bool   `json:"is_meme"`
	Confidence       int    `json:"confidence"`
	Reasoning        string `json:"reasoning"`
	IsManualOverride bool   `json:"is_manual_override"`
	WeightProfile    string `json:"weight_profile"`
}

// AdoptionSummary is the premium-facing view of the social override.
type AdoptionSummary struct {
	Score  int    `json:"score"`
	Source string `json:"source"`
}

// Assessment is the plan-independent core of every result.
type Assessment struct {
	Score          int             `json:"score"` // 0-100
	Level          RiskLevel       `json:"level"`
	Confidence     int             `json:"confidence"`
	Factors        FactorBreakdown `json:"factors"`
	DataSources    []string        `json:"data_sources"`
	SecurityStatus SecurityStatus  `json:"security_status"`
}

// Result is the plan-shaped engine output. Exactly two implementations
// exist; callers type-switch rather than probing optional fields, so a
// free result can never leak premium-only data.
type Result interface {
	Base() Assessment
	Plan() Plan
}

// FreeResult carries the base assessment and, when the score clears the
// configured threshold, an upgrade prompt. Nothing else.
type FreeResult struct {
	Assessment
	UpgradePrompt string `json:"upgrade_prompt,omitempty"`
}

func (r FreeResult) Base() Assessment { return r.Assessment }
func (r FreeResult) Plan() Plan       { return PlanFree }

// PremiumResult carries the base assessment plus flags, forecasts and
// narrative detail.
type PremiumResult struct {
	Assessment
	CriticalFlags  []string               `json:"critical_flags"`
	UpcomingRisks  []UpcomingRisk         `json:"upcoming_risks"`
	Insights       []string               `json:"detailed_insights"`
	Classification *ClassificationSummary `json:"classification,omitempty"`
	Adoption       *AdoptionSummary       `json:"adoption,omitempty"`
}

func (r PremiumResult) Base() Assessment { return r.Assessment }
func (r PremiumResult) Plan() Plan       { return PlanPremium }
