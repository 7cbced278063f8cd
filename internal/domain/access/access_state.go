package access

import (
	"time"

	"creator-app/internal/domain/plans"
	"creator-app/internal/domain/users"
	"creator-app/internal/infra/stripe"
)

// Effective access for UI/product: trial|full|limited|locked
func ComputeEffectiveAccessState(now time.Time, u users.User) AccessState {
	// Active trial
	if u.TrialEndAt != nil && now.Before(*u.TrialEndAt) {
		return AccessTrial
	}

	// No subscription at all
	if u.SubscriptionId == nil || *u.SubscriptionId == "" {
		return AccessLocked
	}

	// Subscription exists -> interpret Stripe status
	switch stripe.NormalizeStripeStatus(u.StripeSubscriptionStatus) {
	case "active", "trialing":
		// Full vs limited decided by tier
		switch plans.PlanTier(u.Plan) {
		case plans.TierCreator, plans.TierStudio:
			return AccessFull
		default:
			return AccessLimited
		}

	case "past_due":
		return AccessLimited

	case "canceled":
		// Access continues until the paid-through end date
		if u.CurrentPeriodEnd != nil && now.Before(*u.CurrentPeriodEnd) {
			switch plans.PlanTier(u.Plan) {
			case plans.TierCreator, plans.TierStudio:
				return AccessFull
			default:
				return AccessLimited
			}
		}
		return AccessLocked

	default:
		return AccessLocked
	}
}
