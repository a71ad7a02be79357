package usecase

import (
	"context"
)

type GetLeadUseCase struct {
	Leads LeadStore
	Notes NoteStore
}

func NewGetLeadUseCase(leads LeadStore, notes NoteStore) *GetLeadUseCase {
	return &GetLeadUseCase{Leads: leads, Notes: notes}
}

// Execute returns a lead together with its notes, newest note first.
func (uc *GetLeadUseCase) Execute(ctx context.Context, id string) (*LeadWithNotes, error) {
	lead, err := uc.Leads.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	notes, err := uc.Notes.ListByLead(ctx, id)
	if err != nil {
		return nil, &StoreError{Op: "list notes", Err: err}
	}

	return &LeadWithNotes{Lead: *lead, Notes: notes}, nil
}
