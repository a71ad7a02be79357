package usecase

import (
	"github.com/tropicoretreats/leads-api/internal/entity"
)

// statusRank orders the forward-only pipeline. WON and LOST share the
// terminal rank: lateral movement between them is allowed, movement back
// from either is not.
var statusRank = map[entity.LeadStatus]int{
	entity.StatusNew:       0,
	entity.StatusContacted: 1,
	entity.StatusQuoted:    2,
	entity.StatusWon:       3,
	entity.StatusLost:      3,
}

// ValidateTransition decides every (current, requested) pair:
//   - archiving is allowed from any state except ARCHIVED itself (a no-op
//     archive is rejected, not silently accepted);
//   - restoring from ARCHIVED may land on any pipeline state — the only
//     permitted backward movement;
//   - otherwise the requested rank must not regress.
func ValidateTransition(current, requested entity.LeadStatus) error {
	if requested == entity.StatusArchived {
		if current == entity.StatusArchived {
			return &InvalidTransitionError{Current: current, Requested: requested}
		}
		return nil
	}

	if current == entity.StatusArchived {
		return nil
	}

	if statusRank[requested] < statusRank[current] {
		return &InvalidTransitionError{Current: current, Requested: requested}
	}
	return nil
}

// applyTransition records the status delta for a validated transition.
// Archiving captures the current status so it can be restored; restoring
// clears it; any other transition leaves previousStatus untouched.
func applyTransition(changes *entity.LeadChanges, current, requested entity.LeadStatus) {
	status := requested
	changes.Status = &status

	if requested == entity.StatusArchived {
		prev := current
		changes.PreviousStatus = &prev
		return
	}
	if current == entity.StatusArchived {
		changes.ClearPreviousStatus = true
	}
}
