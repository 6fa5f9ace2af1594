// Package weights holds the named factor-weight profiles and the
// chain/classification-driven resolver.
package weights

import (
	"fmt"
	"math"

	"github.com/tokensight/tokensight/internal/model"
)

// ChainFamily groups chains by their dominant risk shape.
type ChainFamily string

const (
	ChainEVM     ChainFamily = "evm"
	ChainSolana  ChainFamily = "solana"
	ChainCardano ChainFamily = "cardano"
)

// Profile is a named mapping of the nine weight-bearing factors to
// weights. Raw constants are authoring input only; every profile is
// normalized before use, so the post-normalization distribution is
// authoritative even where the constants drift off 1.0.
type Profile struct {
	Name        string
	Description string
	Weights     map[model.FactorKey]float64
}

// NormalizeTolerance is the accepted deviation of a weight sum from 1.0.
const NormalizeTolerance = 0.001

const (
	ProfileStandard = "standard"
	ProfileMeme     = "meme"
	ProfileSolana   = "solana"
	ProfileCardano  = "cardano"
)

func builtinProfiles() map[string]Profile {
	return map[string]Profile{
		ProfileStandard: {
			Name:        ProfileStandard,
			Description: "General EVM-style tokens",
			Weights: map[model.FactorKey]float64{
				model.FactorSupply:       0.12,
				model.FactorHolders:      0.15,
				model.FactorLiquidity:    0.18,
				model.FactorContract:     0.15,
				model.FactorTax:          0.10,
				model.FactorDistribution: 0.10,
				model.FactorBurn:         0.05,
				model.FactorAdoption:     0.08,
				model.FactorAudit:        0.07,
			},
		},
		ProfileMeme: {
			Name:        ProfileMeme,
			Description: "Sentiment-driven tokens, liquidity and concentration dominant",
			Weights: map[model.FactorKey]float64{
				model.FactorSupply:       0.08,
				model.FactorHolders:      0.20,
				model.FactorLiquidity:    0.22,
				model.FactorContract:     0.15,
				model.FactorTax:          0.08,
				model.FactorDistribution: 0.12,
				model.FactorBurn:         0.03,
				model.FactorAdoption:     0.09,
				model.FactorAudit:        0.03,
			},
		},
		ProfileSolana: {
			Name:        ProfileSolana,
			Description: "Authority-risk-dominant chains",
			// These constants intentionally over-weight authority and
			// sum past 1.0; normalization rescales them.
			Weights: map[model.FactorKey]float64{
				model.FactorSupply:       0.10,
				model.FactorHolders:      0.18,
				model.FactorLiquidity:    0.20,
				model.FactorContract:     0.25,
				model.FactorTax:          0.05,
				model.FactorDistribution: 0.12,
				model.FactorBurn:         0.03,
				model.FactorAdoption:     0.10,
				model.FactorAudit:        0.07,
			},
		},
		ProfileCardano: {
			Name:        ProfileCardano,
			Description: "Policy-lock-dominant chains",
			Weights: map[model.FactorKey]float64{
				model.FactorSupply:       0.15,
				model.FactorHolders:      0.14,
				model.FactorLiquidity:    0.16,
				model.FactorContract:     0.10,
				model.FactorTax:          0.06,
				model.FactorDistribution: 0.12,
				model.FactorBurn:         0.10,
				model.FactorAdoption:     0.10,
				model.FactorAudit:        0.07,
			},
		},
	}
}

// LegacyWeights is the single fixed 10-factor table used when
// classification is unavailable. Vesting carries weight here.
var LegacyWeights = map[model.FactorKey]float64{
	model.FactorSupply:       0.10,
	model.FactorHolders:      0.14,
	model.FactorLiquidity:    0.16,
	model.FactorVesting:      0.08,
	model.FactorContract:     0.14,
	model.FactorTax:          0.08,
	model.FactorDistribution: 0.10,
	model.FactorBurn:         0.05,
	model.FactorAdoption:     0.08,
	model.FactorAudit:        0.07,
}

// Resolver selects and normalizes weight profiles.
type Resolver struct {
	profiles map[string]Profile
}

// NewResolver creates a resolver with the built-in profiles.
func NewResolver() *Resolver {
	return &Resolver{profiles: builtinProfiles()}
}

// Resolve picks the profile for a classification and chain family and
// returns it normalized. Meme classification always wins over chain.
func (r *Resolver) Resolve(isMeme bool, chain ChainFamily) Profile {
	name := ProfileStandard
	switch {
	case isMeme:
		name = ProfileMeme
	case chain == ChainSolana:
		name = ProfileSolana
	case chain == ChainCardano:
		name = ProfileCardano
	}
	return Normalize(r.profiles[name])
}

// Get returns a named profile, normalized.
func (r *Resolver) Get(name string) (Profile, error) {
	p, ok := r.profiles[name]
	if !ok {
		return Profile{}, fmt.Errorf("unknown weight profile %q", name)
	}
	return Normalize(p), nil
}

// Names lists the available profile names.
func (r *Resolver) Names() []string {
	names := make([]string, 0, len(r.profiles))
	for name := range r.profiles {
		names = append(names, name)
	}
	return names
}

// Normalize rescales a profile so its weights sum to 1.0. It always
// runs, even on profiles whose constants already look correct, so a
// mis-authored table cannot silently skew scores.
func Normalize(p Profile) Profile {
	sum := 0.0
	for _, w := range p.Weights {
		sum += w
	}
	if sum <= 0 {
		return p
	}

	out := Profile{Name: p.Name, Description: p.Description,
		Weights: make(map[model.FactorKey]float64, len(p.Weights))}

	if math.Abs(sum-1.0) <= NormalizeTolerance {
		for k, w := range p.Weights {
			out.Weights[k] = w
		}
		return out
	}

	for k, w := range p.Weights {
		out.Weights[k] = w / sum
	}
	return out
}
