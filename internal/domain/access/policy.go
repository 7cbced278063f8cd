package access

import (
	"time"

	"creator-app/internal/domain/users"
)

type Policy struct {
	State        AccessState
	EditorMode   EditorMode
	Capabilities []string
	Limits       *LimitedRules
}

func ComputePolicy(now time.Time, u users.User) Policy {
	state := ComputeEffectiveAccessState(now, u)

	return Policy{
		State:        state,
		EditorMode:   EditorModeFromState(state),
		Capabilities: CapabilitiesFor(state, u.Plan),
		Limits:       LimitedRulesFor(state),
	}
}
