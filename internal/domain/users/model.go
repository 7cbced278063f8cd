package users

import (
	"creator-app/internal/domain/plans"
	"time"
)

type User struct {
	ID           uint `gorm:"primaryKey"`
	Name         string
	Lastname     string
	Email        string  `gorm:"not null;uniqueIndex:idx_users_email"`
	Password     *string `gorm:""`
	AuthProvider string  `gorm:"type:varchar(20);not null;default:'local'"`
	GoogleSub    *string `gorm:"uniqueIndex:idx_users_google_sub"`
	Role         string
	IsVerified   bool

	PlanID *uint
	Plan   *plans.Plan

	SubscriptionStart *time.Time
	SubscriptionEnd   *time.Time
	SubscriptionId    *string `gorm:"column:subscription_id;uniqueIndex:idx_users_subscription_id"`
	StripeCustomerID  *string `gorm:"column:stripe_customer_id;uniqueIndex:idx_users_stripe_customer_id"`

	StripeSubscriptionStatus *string    `gorm:"column:stripe_subscription_status"`
	CurrentPeriodEnd         *time.Time `gorm:"column:current_period_end"`

	TrialStartAt *time.Time `gorm:"column:trial_start_at"`
	TrialEndAt   *time.Time `gorm:"column:trial_end_at"`

	// Public link-in-bio page address, e.g. "john-doe-32".
	PageSlug *string `gorm:"column:page_slug;uniqueIndex:idx_users_page_slug"`

	// Set once the onboarding wizard has created a workflow.
	OnboardedAt *time.Time `gorm:"column:onboarded_at"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
