package users

import "time"

type MeResponse struct {
	User    UserDTO    `json:"user"`
	Billing BillingDTO `json:"billing"`
	Access  AccessDTO  `json:"access"`
}

/* ---------- USER ---------- */

type UserDTO struct {
	ID         uint   `json:"id"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	Lastname   string `json:"lastname"`
	Role       string `json:"role"`
	IsVerified bool   `json:"is_verified"`
	Onboarded  bool   `json:"onboarded"`
}

/* ---------- BILLING ---------- */

type BillingDTO struct {
	Plan         *PlanDTO         `json:"plan"`
	Subscription *SubscriptionDTO `json:"subscription"`
	Trial        *TrialDTO        `json:"trial"`
}

type PlanDTO struct {
	ID            uint    `json:"id"`
	Key           string  `json:"key"`
	Interval      string  `json:"interval"`
	PriceEUR      float64 `json:"price_eur"`
	StripePriceID string  `json:"stripe_price_id"`
}

type SubscriptionDTO struct {
	Status               string     `json:"status"`
	StartsAt             *time.Time `json:"starts_at"`
	CurrentPeriodEnd     *time.Time `json:"current_period_end"`
	StripeSubscriptionID *string    `json:"stripe_subscription_id"`
}

type TrialDTO struct {
	StartsAt *time.Time `json:"starts_at"`
	EndsAt   *time.Time `json:"ends_at"`
	DaysLeft *int       `json:"days_left"`
}

/* ---------- ACCESS ---------- */

type AccessDTO struct {
	State        string        `json:"state"` // trial|full|limited|locked
	Capabilities []string      `json:"capabilities"`
	Page         AccessPageDTO `json:"page"`
}

type AccessPageDTO struct {
	Mode      string     `json:"mode"` // full|limited
	PublicURL string     `json:"public_url"`
	Slug      string     `json:"slug"`
	Limits    *LimitsDTO `json:"limits,omitempty"`
}

type LimitsDTO struct {
	MaxContentCards      int  `json:"max_content_cards"`
	MaxLeadMagnets       int  `json:"max_lead_magnets"`
	HideBioPage          bool `json:"hide_bio_page"`
	ShowPlatformBranding bool `json:"show_platform_branding"`
}
