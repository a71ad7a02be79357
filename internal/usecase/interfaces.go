package usecase

import (
	"context"
	"time"

	"github.com/tropicoretreats/leads-api/internal/entity"
)

// LeadStore is the storage contract the engine is written against: point
// reads and writes, a conditional sparse update, and a predicate scan that
// hands back an opaque continuation token. The store only evaluates the
// native portion of a filter; anything else is the caller's problem.
type LeadStore interface {
	// Get returns ErrLeadNotFound when the id does not resolve.
	Get(ctx context.Context, id string) (*entity.Lead, error)
	Put(ctx context.Context, lead *entity.Lead) error
	// Update applies the delta only if the lead still exists, returning the
	// updated record or ErrLeadNotFound.
	Update(ctx context.Context, id string, changes entity.LeadChanges) (*entity.Lead, error)
	// Scan returns up to limit leads matching the filter, newest first,
	// resuming after startAfter (exclusive, empty for the beginning).
	// nextToken is empty once the store is exhausted.
	Scan(ctx context.Context, filter entity.ScanFilter, limit int, startAfter string) (leads []*entity.Lead, nextToken string, err error)
	Count(ctx context.Context, filter entity.ScanFilter) (int, error)
}

type NoteStore interface {
	Put(ctx context.Context, note *entity.Note) error
	// ListByLead returns a lead's notes newest first.
	ListByLead(ctx context.Context, leadID string) ([]*entity.Note, error)
	// Get returns ErrNoteNotFound when the pair does not resolve.
	Get(ctx context.Context, leadID, noteID string) (*entity.Note, error)
	UpdateContent(ctx context.Context, leadID, noteID, content string, updatedAt time.Time) (*entity.Note, error)
}

// TeamMemberStore lists the active assignee directory.
type TeamMemberStore interface {
	List(ctx context.Context) ([]*entity.TeamMember, error)
}

// IDGenerator issues globally unique, time-ordered identifiers so that
// natural key order approximates creation order.
type IDGenerator interface {
	NewID() string
}

type Clock interface {
	Now() time.Time
}

// NotificationPublisher hands a freshly created lead to the notification
// pipeline. Delivery is asynchronous and best-effort.
type NotificationPublisher interface {
	PublishLeadCreated(ctx context.Context, lead *entity.Lead) error
}
