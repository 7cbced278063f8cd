package users

import (
	"time"

	"creator-app/internal/domain/access"
	"creator-app/internal/domain/biopage"
	"creator-app/internal/domain/plans"
	"creator-app/internal/domain/users"
	"creator-app/internal/infra/stripe"
)

func BuildPlanDTO(p *plans.Plan) *PlanDTO {
	if p == nil {
		return nil
	}
	return &PlanDTO{
		ID:            p.ID,
		Key:           p.Name,
		Interval:      p.Interval,
		PriceEUR:      p.PriceEUR,
		StripePriceID: p.StripePriceID,
	}
}

func BuildSubscriptionDTO(u users.User) *SubscriptionDTO {
	if u.SubscriptionId == nil || *u.SubscriptionId == "" {
		return nil
	}
	return &SubscriptionDTO{
		Status:               stripe.NormalizeStripeStatus(u.StripeSubscriptionStatus),
		StartsAt:             u.SubscriptionStart,
		CurrentPeriodEnd:     u.CurrentPeriodEnd,
		StripeSubscriptionID: u.SubscriptionId,
	}
}

func BuildTrialDTO(now time.Time, start, end *time.Time) *TrialDTO {
	if start == nil || end == nil {
		return nil
	}

	var daysLeft *int
	if now.Before(*end) {
		d := int(time.Until(*end).Hours() / 24)
		if d < 0 {
			d = 0
		}
		daysLeft = &d
	} else {
		d := 0
		daysLeft = &d
	}

	return &TrialDTO{
		StartsAt: start,
		EndsAt:   end,
		DaysLeft: daysLeft,
	}
}

func BuildAccessPageDTO(user users.User, policy access.Policy, limits *LimitsDTO) AccessPageDTO {
	publicURL := ""
	slug := ""

	if user.PageSlug != nil && *user.PageSlug != "" {
		publicURL = biopage.BuildPublicURL(*user.PageSlug)
		slug = *user.PageSlug
	}

	return AccessPageDTO{
		Mode:      string(policy.EditorMode),
		PublicURL: publicURL,
		Slug:      slug,
		Limits:    limits,
	}
}
