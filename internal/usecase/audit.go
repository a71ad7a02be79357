package usecase

import (
	"context"
	"fmt"
	"log"

	"github.com/tropicoretreats/leads-api/internal/entity"
)

// AuditTrail turns the delta between a lead's prior and new field values
// into immutable SYSTEM notes. Generation is best-effort and deliberately
// non-transactional with the lead update: a note that fails to persist is
// logged and dropped, never rolled back into the caller's result.
type AuditTrail struct {
	Notes NoteStore
	IDs   IDGenerator
	Clock Clock
}

func NewAuditTrail(notes NoteStore, ids IDGenerator, clock Clock) *AuditTrail {
	return &AuditTrail{Notes: notes, IDs: ids, Clock: clock}
}

type fieldChange struct {
	field string
	old   string
	new   string
}

// Record appends one SYSTEM note per tracked field whose value changed.
func (a *AuditTrail) Record(ctx context.Context, before, after *entity.Lead, actor Actor) {
	authorID := actor.ID
	if authorID == "" {
		authorID = "system"
	}
	authorName := actor.Name
	if authorName == "" {
		authorName = "System"
	}

	for _, change := range trackedChanges(before, after) {
		now := a.Clock.Now()
		note := &entity.Note{
			ID:         a.IDs.NewID(),
			LeadID:     after.ID,
			Type:       entity.NoteSystem,
			Content:    fmt.Sprintf("%s changed %s from %s to %s", authorName, change.field, change.old, change.new),
			AuthorID:   authorID,
			AuthorName: authorName,
			CreatedAt:  now,
			UpdatedAt:  now,
		}

		if err := a.Notes.Put(ctx, note); err != nil {
			log.Printf("audit note for lead %s (%s) not recorded: %v", after.ID, change.field, err)
		}
	}
}

func trackedChanges(before, after *entity.Lead) []fieldChange {
	var changes []fieldChange

	if before.Status != after.Status {
		changes = append(changes, fieldChange{"status", string(before.Status), string(after.Status)})
	}

	if before.Temperature != after.Temperature {
		changes = append(changes, fieldChange{"temperature", string(before.Temperature), string(after.Temperature)})
	}

	if before.AssigneeID != after.AssigneeID {
		changes = append(changes, fieldChange{
			"assignee",
			assigneeDisplay(before.AssigneeName, before.AssigneeID),
			assigneeDisplay(after.AssigneeName, after.AssigneeID),
		})
	}

	return changes
}

func assigneeDisplay(name, id string) string {
	if name != "" {
		return name
	}
	if id != "" {
		return id
	}
	return "Unassigned"
}
