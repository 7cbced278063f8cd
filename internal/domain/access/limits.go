package access

// LimitedRules caps the product surface for limited/locked accounts.
type LimitedRules struct {
	MaxContentCards      int
	MaxLeadMagnets       int
	HideBioPage          bool
	ShowPlatformBranding bool
}

// "limited" and "locked" are the only states that carry limits.
func LimitedRulesFor(state AccessState) *LimitedRules {
	if state != AccessLimited && state != AccessLocked {
		return nil
	}

	return &LimitedRules{
		MaxContentCards:      10,
		MaxLeadMagnets:       1,
		HideBioPage:          state == AccessLocked,
		ShowPlatformBranding: true,
	}
}
