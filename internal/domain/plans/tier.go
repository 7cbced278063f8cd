package plans

import "strings"

// Tier constants (single source of truth)
const (
	TierNone    = "none"
	TierStarter = "starter"
	TierCreator = "creator"
	TierStudio  = "studio"
)

// PlanTier returns the effective tier for a plan.
// Priority:
// 1. Explicit Tier stored in DB
// 2. Fallback inference by price (legacy safety net)
func PlanTier(p *Plan) string {
	if p == nil {
		return TierNone
	}

	tier := strings.ToLower(strings.TrimSpace(p.Tier))
	switch tier {
	case TierStarter, TierCreator, TierStudio:
		return tier
	}

	return inferTierFromPrice(p.PriceEUR)
}

// inferTierFromPrice exists ONLY as a backward-compatibility fallback
// for plans synced before the tier metadata key existed.
func inferTierFromPrice(priceEUR float64) string {
	switch {
	case priceEUR >= 29:
		return TierStudio
	case priceEUR >= 12:
		return TierCreator
	default:
		return TierStarter
	}
}
