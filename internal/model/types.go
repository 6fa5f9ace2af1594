package model

// Plan is the caller's subscription tier. It controls how much of the
// assessment is exposed, never how the score itself is computed.
type Plan string

const (
	PlanFree    Plan = "free"
	PlanPremium Plan = "premium"
)

// TokenClass is a coarse token taxonomy used to pick a weight profile.
type TokenClass string

const (
	ClassMeme    TokenClass = "meme"
	ClassUtility TokenClass = "utility"
)

// SecuritySignals holds contract-level flags from a security-analysis
// provider. The caller merges these into TokenMetrics before scoring;
// the engine never calls the provider itself.
type SecuritySignals struct {
	IsHoneypot     bool    `json:"is_honeypot" yaml:"is_honeypot"`
	IsMintable     bool    `json:"is_mintable" yaml:"is_mintable"`
	OwnerRenounced bool    `json:"owner_renounced" yaml:"owner_renounced"`
	BuyTax         float64 `json:"buy_tax" yaml:"buy_tax"`   // fraction, 0.05 = 5%
	SellTax        float64 `json:"sell_tax" yaml:"sell_tax"` // fraction
	TaxModifiable  bool    `json:"tax_modifiable" yaml:"tax_modifiable"`
	OpenSource     bool    `json:"open_source" yaml:"open_source"`
	LPLocked       bool    `json:"lp_locked" yaml:"lp_locked"`
}

// TokenMetrics is the assembled per-token input record. It is immutable
// for the duration of a scoring call.
type TokenMetrics struct {
	MarketCapUSD      float64 `json:"market_cap_usd"`
	FDVUSD            float64 `json:"fdv_usd"`
	LiquidityUSD      float64 `json:"liquidity_usd"`
	TotalSupply       float64 `json:"total_supply"`
	CirculatingSupply float64 `json:"circulating_supply"`
	MaxSupply         float64 `json:"max_supply"` // 0 = uncapped
	BurnedSupply      float64 `json:"burned_supply"`
	HolderCount       int64   `json:"holder_count"`
	Top10HolderShare  float64 `json:"top10_holder_share"` // 0..1, 0 = unknown
	Volume24hUSD      float64 `json:"volume_24h_usd"`
	TxCount24h        int64   `json:"tx_count_24h"`
	AgeDays           float64 `json:"age_days"`
	Unlock30dShare    float64 `json:"unlock_30d_share"` // fraction of supply unlocking in 30d
	TeamVestingMonths float64 `json:"team_vesting_months"`
	TeamAllocShare    float64 `json:"team_alloc_share"`

	// Security is nil when no security provider ran. Presence of the
	// struct is the single source of truth for hasSecurityData.
	Security *SecuritySignals `json:"security,omitempty"`
}

// HasSecurityData reports whether a security provider was consulted.
// Computed once at pipeline entry and threaded through every scorer;
// downstream code must not re-derive it from individual fields.
func (m *TokenMetrics) HasSecurityData() bool {
	return m.Security != nil
}

// TokenMeta carries the optional identity hints used for classification
// and social lookups. All fields may be empty.
type TokenMeta struct {
	Symbol       string      `json:"symbol,omitempty"`
	Name         string      `json:"name,omitempty"`
	Description  string      `json:"description,omitempty"`
	SocialHandle string      `json:"social_handle,omitempty"`
	ChainFamily  string      `json:"chain_family,omitempty"` // "evm", "solana", "cardano"
	Manual       *TokenClass `json:"manual_classification,omitempty"`
}

// ClassificationResult is the outcome of meme-vs-utility resolution.
// Computed fresh per scoring call, never persisted.
type ClassificationResult struct {
	IsMeme           bool   `json:"is_meme"`
	Confidence       int    `json:"confidence"` // 0-100
	Reasoning        string `json:"reasoning"`
	IsManualOverride bool   `json:"is_manual_override"`
}

// AdoptionSignal is the social-signal service's derived adoption view.
type AdoptionSignal struct {
	Score   float64            `json:"score"` // 0-100, replaces the default adoption factor
	Source  string             `json:"source"`
	Metrics map[string]float64 `json:"metrics,omitempty"`
}
