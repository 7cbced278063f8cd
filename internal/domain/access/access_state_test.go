package access

import (
	"testing"
	"time"

	"creator-app/internal/domain/plans"
	"creator-app/internal/domain/users"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string        { return &s }
func timePtr(t time.Time) *time.Time { return &t }

func TestComputeEffectiveAccessState(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	subID := strPtr("sub_123")
	creatorPlan := &plans.Plan{Tier: plans.TierCreator, PriceEUR: 15}
	starterPlan := &plans.Plan{Tier: plans.TierStarter, PriceEUR: 5}

	tests := []struct {
		name string
		user users.User
		want AccessState
	}{
		{
			name: "active trial wins over everything",
			user: users.User{TrialEndAt: timePtr(now.Add(24 * time.Hour))},
			want: AccessTrial,
		},
		{
			name: "expired trial, no subscription",
			user: users.User{TrialEndAt: timePtr(now.Add(-time.Hour))},
			want: AccessLocked,
		},
		{
			name: "active creator subscription",
			user: users.User{
				SubscriptionId:           subID,
				StripeSubscriptionStatus: strPtr("active"),
				Plan:                     creatorPlan,
			},
			want: AccessFull,
		},
		{
			name: "active starter subscription is limited",
			user: users.User{
				SubscriptionId:           subID,
				StripeSubscriptionStatus: strPtr("active"),
				Plan:                     starterPlan,
			},
			want: AccessLimited,
		},
		{
			name: "past_due drops to limited",
			user: users.User{
				SubscriptionId:           subID,
				StripeSubscriptionStatus: strPtr("past_due"),
				Plan:                     creatorPlan,
			},
			want: AccessLimited,
		},
		{
			name: "canceled but still inside paid period",
			user: users.User{
				SubscriptionId:           subID,
				StripeSubscriptionStatus: strPtr("canceled"),
				Plan:                     creatorPlan,
				CurrentPeriodEnd:         timePtr(now.Add(48 * time.Hour)),
			},
			want: AccessFull,
		},
		{
			name: "canceled past paid period",
			user: users.User{
				SubscriptionId:           subID,
				StripeSubscriptionStatus: strPtr("canceled"),
				Plan:                     creatorPlan,
				CurrentPeriodEnd:         timePtr(now.Add(-time.Hour)),
			},
			want: AccessLocked,
		},
		{
			name: "unknown status locks",
			user: users.User{
				SubscriptionId:           subID,
				StripeSubscriptionStatus: strPtr("incomplete"),
				Plan:                     creatorPlan,
			},
			want: AccessLocked,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ComputeEffectiveAccessState(now, tc.user))
		})
	}
}

func TestLimitedRulesFor(t *testing.T) {
	assert.Nil(t, LimitedRulesFor(AccessFull))
	assert.Nil(t, LimitedRulesFor(AccessTrial))

	limited := LimitedRulesFor(AccessLimited)
	assert.Equal(t, 10, limited.MaxContentCards)
	assert.Equal(t, 1, limited.MaxLeadMagnets)
	assert.False(t, limited.HideBioPage)
	assert.True(t, limited.ShowPlatformBranding)

	locked := LimitedRulesFor(AccessLocked)
	assert.True(t, locked.HideBioPage)
}

func TestCapabilitiesFor(t *testing.T) {
	assert.Empty(t, CapabilitiesFor(AccessLocked, nil))
	assert.Empty(t, CapabilitiesFor(AccessLimited, nil))
	assert.Equal(t, []string{"edit", "publish_page"}, CapabilitiesFor(AccessTrial, nil))

	studio := &plans.Plan{Tier: plans.TierStudio}
	assert.Contains(t, CapabilitiesFor(AccessFull, studio), "remove_branding")

	creator := &plans.Plan{Tier: plans.TierCreator}
	caps := CapabilitiesFor(AccessFull, creator)
	assert.Contains(t, caps, "lead_capture")
	assert.NotContains(t, caps, "remove_branding")
}

func TestComputePolicy(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	u := users.User{TrialEndAt: timePtr(now.Add(time.Hour))}

	p := ComputePolicy(now, u)
	assert.Equal(t, AccessTrial, p.State)
	assert.Equal(t, EditorFull, p.EditorMode)
	assert.Nil(t, p.Limits)
	assert.Contains(t, p.Capabilities, "edit")
}
