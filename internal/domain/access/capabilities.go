package access

import (
	"creator-app/internal/domain/plans"
)

func CapabilitiesFor(state AccessState, plan *plans.Plan) []string {
	// locked/limited: no edit capabilities
	if state == AccessLocked || state == AccessLimited {
		return []string{}
	}

	// trial
	if state == AccessTrial {
		return []string{"edit", "publish_page"}
	}

	// full: tier-based
	switch plans.PlanTier(plan) {
	case plans.TierStarter:
		return []string{"edit", "publish_page"}
	case plans.TierCreator:
		return []string{"edit", "publish_page", "lead_capture"}
	case plans.TierStudio:
		return []string{"edit", "publish_page", "lead_capture", "remove_branding"}
	default:
		return []string{"edit", "publish_page"}
	}
}
