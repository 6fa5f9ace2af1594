// Package engine runs the single-pass scoring pipeline: factor scores,
// classification-driven weighting, the meme floor, confidence, and
// plan-shaped output.
package engine

import (
	"context"
	"errors"
	"math"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/tokensight/tokensight/internal/classify"
	"github.com/tokensight/tokensight/internal/config"
	"github.com/tokensight/tokensight/internal/factors"
	"github.com/tokensight/tokensight/internal/insight"
	"github.com/tokensight/tokensight/internal/model"
	"github.com/tokensight/tokensight/internal/social"
	"github.com/tokensight/tokensight/internal/weights"
)

// ErrNilMetrics is returned when Score is called without a metrics record.
var ErrNilMetrics = errors.New("nil token metrics")

// Engine is the token risk scoring engine. It holds only injected
// collaborators and calibration; no state survives a call, so a single
// Engine may score unrelated tokens concurrently.
type Engine struct {
	cal       config.Calibration
	classes   *classify.Resolver
	social    social.Service
	profiles  *weights.Resolver
	onDegrade func(service string)
}

// New creates an engine. classifySvc and socialSvc may be nil; the
// pipeline then runs on the legacy weighting path and the default
// adoption scorer respectively.
func New(cal config.Calibration, classifySvc classify.Service, socialSvc social.Service) *Engine {
	return &Engine{
		cal:      cal,
		classes:  classify.NewResolver(classifySvc),
		social:   socialSvc,
		profiles: weights.NewResolver(),
	}
}

// OnExternalDegrade registers fn, invoked with the service name each
// time a configured external call fails and scoring falls back. Set it
// before the engine takes traffic.
func (e *Engine) OnExternalDegrade(fn func(service string)) {
	e.onDegrade = fn
}

func (e *Engine) degrade(service string) {
	if e.onDegrade != nil {
		e.onDegrade(service)
	}
}

// Score runs the full pipeline. No error from an external collaborator
// ever escapes: classification failure degrades to the legacy path and
// a missing social signal leaves the default adoption score in place.
func (e *Engine) Score(ctx context.Context, m *model.TokenMetrics, plan model.Plan, meta *model.TokenMeta) (model.Result, error) {
	if m == nil {
		return nil, ErrNilMetrics
	}
	if meta == nil {
		meta = &model.TokenMeta{}
	}

	// Computed exactly once; every downstream consumer gets this value.
	hasSecurity := m.HasSecurityData()

	breakdown := factors.ScoreAll(m, hasSecurity, e.cal.LargeCapUSD)

	// The two optional external calls are independent; fetch them
	// concurrently. Both fail soft.
	var (
		wg        sync.WaitGroup
		cls       model.ClassificationResult
		clsStatus classify.Status
		adoption  *model.AdoptionSignal
		socStatus social.Status
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		cls, clsStatus = e.classes.Resolve(ctx, meta.Manual, classify.TokenHint{
			Symbol:      meta.Symbol,
			Name:        meta.Name,
			Description: meta.Description,
		})
	}()
	go func() {
		defer wg.Done()
		adoption, socStatus = social.Fetch(ctx, e.social, meta.Symbol, meta.SocialHandle)
	}()
	wg.Wait()

	if clsStatus == classify.StatusDegraded {
		e.degrade("classification")
	}
	if socStatus == social.StatusDegraded {
		e.degrade("social_signal")
	}
	clsOK := clsStatus == classify.StatusResolved
	adoptionOK := socStatus == social.StatusApplied

	if adoptionOK {
		breakdown.Adoption = adoption.Score
	}

	var (
		weighted    float64
		profileName string
	)
	if clsOK {
		profile := e.profiles.Resolve(cls.IsMeme, weights.ChainFamily(meta.ChainFamily))
		profileName = profile.Name
		weighted = weightedSum(&breakdown, profile.Weights, model.WeightedFactors)
		if cls.IsMeme && weighted < e.cal.MemeFloor {
			weighted = e.cal.MemeFloor
		}
	} else {
		weighted = weightedSum(&breakdown, weights.LegacyWeights, model.AllFactors)
	}

	score := int(math.Round(weighted))
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	base := model.Assessment{
		Score:          score,
		Level:          e.level(score),
		Confidence:     e.confidence(hasSecurity, plan),
		Factors:        breakdown,
		DataSources:    e.dataSources(hasSecurity, clsOK, cls.IsManualOverride, adoptionOK),
		SecurityStatus: securityStatus(hasSecurity),
	}

	log.Debug().
		Str("symbol", meta.Symbol).
		Int("score", score).
		Str("level", string(base.Level)).
		Bool("security_data", hasSecurity).
		Bool("profile_weights", clsOK).
		Msg("token scored")

	if plan == model.PlanPremium {
		return e.premiumResult(base, m, &breakdown, hasSecurity, clsOK, cls, profileName, adoptionOK, adoption), nil
	}
	return e.freeResult(base), nil
}

func (e *Engine) freeResult(base model.Assessment) model.FreeResult {
	out := model.FreeResult{Assessment: base}
	if base.Score > e.cal.UpgradePromptScore {
		out.UpgradePrompt = "Elevated risk detected. Upgrade for critical flags, unlock forecasts and detailed insights."
	}
	return out
}

func (e *Engine) premiumResult(base model.Assessment, m *model.TokenMetrics, b *model.FactorBreakdown,
	hasSecurity, clsOK bool, cls model.ClassificationResult, profileName string,
	adoptionOK bool, adoption *model.AdoptionSignal) model.PremiumResult {

	out := model.PremiumResult{
		Assessment:    base,
		CriticalFlags: insight.Flags(m, hasSecurity),
		UpcomingRisks: insight.UpcomingRisks(m, hasSecurity),
		Insights:      insight.Insights(b, hasSecurity),
	}

	if clsOK {
		out.Classification = &model.ClassificationSummary{
			IsMeme:           cls.IsMeme,
			Confidence:       cls.Confidence,
			Reasoning:        cls.Reasoning,
			IsManualOverride: cls.IsManualOverride,
			WeightProfile:    profileName,
		}
		if adoptionOK {
			out.Adoption = &model.AdoptionSummary{
				Score:  int(math.Round(adoption.Score)),
				Source: adoption.Source,
			}
			out.Insights = append(out.Insights, adoptionInsight(adoption.Score))
		}
	}
	return out
}

func adoptionInsight(score float64) string {
	switch {
	case score >= 70:
		return "Social signals show weak adoption; community traction is not keeping up with the token's profile."
	case score >= 40:
		return "Social signals show moderate adoption."
	default:
		return "Social signals show healthy adoption and community growth."
	}
}

func weightedSum(b *model.FactorBreakdown, table map[model.FactorKey]float64, keys []model.FactorKey) float64 {
	sum := 0.0
	for _, key := range keys {
		sum += b.Get(key) * table[key]
	}
	return sum
}

func (e *Engine) level(score int) model.RiskLevel {
	switch {
	case score >= e.cal.CriticalAt:
		return model.LevelCritical
	case score >= e.cal.HighAt:
		return model.LevelHigh
	case score >= e.cal.MediumAt:
		return model.LevelMedium
	default:
		return model.LevelLow
	}
}

// confidence is one of exactly four calibrated values keyed by
// security-data presence and plan. It measures corroboration, not risk.
func (e *Engine) confidence(hasSecurity bool, plan model.Plan) int {
	premium := plan == model.PlanPremium
	switch {
	case hasSecurity && premium:
		return e.cal.ConfidenceSecPremium
	case hasSecurity:
		return e.cal.ConfidenceSecFree
	case premium:
		return e.cal.ConfidenceNoSecPremium
	default:
		return e.cal.ConfidenceNoSecFree
	}
}

func (e *Engine) dataSources(hasSecurity, clsOK, manual, adoptionOK bool) []string {
	sources := []string{"onchain_metrics", "market_data"}
	if hasSecurity {
		sources = append(sources, "security_provider")
	}
	if clsOK && !manual {
		sources = append(sources, "classification_service")
	}
	if adoptionOK {
		sources = append(sources, "social_signal_service")
	}
	return sources
}

func securityStatus(hasSecurity bool) model.SecurityStatus {
	if hasSecurity {
		return model.SecurityActive
	}
	return model.SecurityFallback
}
