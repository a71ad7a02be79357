package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/tropicoretreats/leads-api/internal/entity"
)

// memLeadStore is an in-memory LeadStore honoring the scan contract: newest
// first, keyset resumption, continuation token only when more rows exist.
type memLeadStore struct {
	leads map[string]*entity.Lead

	scanCalls   int
	updateCalls int
	// failScanAfter fails every scan past the nth call (0 disables).
	failScanAfter int
}

func newMemLeadStore(leads ...*entity.Lead) *memLeadStore {
	s := &memLeadStore{leads: make(map[string]*entity.Lead)}
	for _, l := range leads {
		copied := *l
		s.leads[l.ID] = &copied
	}
	return s
}

func (s *memLeadStore) sorted() []*entity.Lead {
	out := make([]*entity.Lead, 0, len(s.leads))
	for _, l := range s.leads {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out
}

func matchesFilter(f entity.ScanFilter, l *entity.Lead) bool {
	if len(f.Statuses) > 0 {
		found := false
		for _, st := range f.Statuses {
			if l.Status == st {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if len(f.Temperatures) > 0 {
		found := false
		for _, t := range f.Temperatures {
			if l.Temperature == t {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if f.AssigneeID != "" && l.AssigneeID != f.AssigneeID {
		return false
	}
	if !f.CreatedFrom.IsZero() && l.CreatedAt.Before(f.CreatedFrom) {
		return false
	}
	if !f.CreatedUntil.IsZero() && !l.CreatedAt.Before(f.CreatedUntil) {
		return false
	}
	return true
}

func (s *memLeadStore) Get(ctx context.Context, id string) (*entity.Lead, error) {
	if l, ok := s.leads[id]; ok {
		copied := *l
		return &copied, nil
	}
	return nil, ErrLeadNotFound
}

func (s *memLeadStore) Put(ctx context.Context, lead *entity.Lead) error {
	copied := *lead
	s.leads[lead.ID] = &copied
	return nil
}

func (s *memLeadStore) Update(ctx context.Context, id string, changes entity.LeadChanges) (*entity.Lead, error) {
	s.updateCalls++
	l, ok := s.leads[id]
	if !ok {
		return nil, ErrLeadNotFound
	}
	if changes.Status != nil {
		l.Status = *changes.Status
	}
	if changes.PreviousStatus != nil {
		prev := *changes.PreviousStatus
		l.PreviousStatus = &prev
	} else if changes.ClearPreviousStatus {
		l.PreviousStatus = nil
	}
	if changes.Temperature != nil {
		l.Temperature = *changes.Temperature
	}
	if changes.AssigneeID != nil {
		l.AssigneeID = *changes.AssigneeID
	}
	if changes.AssigneeName != nil {
		l.AssigneeName = *changes.AssigneeName
	}
	l.UpdatedAt = changes.UpdatedAt
	copied := *l
	return &copied, nil
}

func (s *memLeadStore) Scan(ctx context.Context, filter entity.ScanFilter, limit int, startAfter string) ([]*entity.Lead, string, error) {
	s.scanCalls++
	if s.failScanAfter > 0 && s.scanCalls > s.failScanAfter {
		return nil, "", errors.New("store unavailable")
	}

	var out []*entity.Lead
	for _, l := range s.sorted() {
		if startAfter != "" && l.ID >= startAfter {
			continue
		}
		if !matchesFilter(filter, l) {
			continue
		}
		out = append(out, l)
		if len(out) == limit+1 {
			break
		}
	}

	next := ""
	if len(out) > limit {
		out = out[:limit]
		next = out[len(out)-1].ID
	}
	return out, next, nil
}

func (s *memLeadStore) Count(ctx context.Context, filter entity.ScanFilter) (int, error) {
	count := 0
	for _, l := range s.leads {
		if matchesFilter(filter, l) {
			count++
		}
	}
	return count, nil
}

// memNoteStore keeps notes in insertion order.
type memNoteStore struct {
	notes   []*entity.Note
	failPut bool
}

func (s *memNoteStore) Put(ctx context.Context, note *entity.Note) error {
	if s.failPut {
		return errors.New("store unavailable")
	}
	copied := *note
	s.notes = append(s.notes, &copied)
	return nil
}

func (s *memNoteStore) ListByLead(ctx context.Context, leadID string) ([]*entity.Note, error) {
	var out []*entity.Note
	for i := len(s.notes) - 1; i >= 0; i-- {
		if s.notes[i].LeadID == leadID {
			out = append(out, s.notes[i])
		}
	}
	return out, nil
}

func (s *memNoteStore) Get(ctx context.Context, leadID, noteID string) (*entity.Note, error) {
	for _, n := range s.notes {
		if n.LeadID == leadID && n.ID == noteID {
			copied := *n
			return &copied, nil
		}
	}
	return nil, ErrNoteNotFound
}

func (s *memNoteStore) UpdateContent(ctx context.Context, leadID, noteID, content string, updatedAt time.Time) (*entity.Note, error) {
	for _, n := range s.notes {
		if n.LeadID == leadID && n.ID == noteID {
			n.Content = content
			n.UpdatedAt = updatedAt
			copied := *n
			return &copied, nil
		}
	}
	return nil, ErrNoteNotFound
}

// MockPublisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishLeadCreated(ctx context.Context, lead *entity.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time {
	return c.t
}

type seqIDs struct {
	n int
}

func (s *seqIDs) NewID() string {
	s.n++
	return fmt.Sprintf("id-%04d", s.n)
}

func testLead(id string, status entity.LeadStatus, overrides func(*entity.Lead)) *entity.Lead {
	l := &entity.Lead{
		ID:          id,
		Status:      status,
		Temperature: entity.TemperatureWarm,
		FirstName:   "Ana",
		LastName:    "Torres",
		Email:       "ana@example.com",
		Message:     "Looking for a retreat",
		CreatedAt:   time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		UpdatedAt:   time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}
	if overrides != nil {
		overrides(l)
	}
	return l
}
