package usecase

import (
	"context"
	"errors"

	"github.com/tropicoretreats/leads-api/internal/entity"
)

type NotesUseCase struct {
	Leads LeadStore
	Notes NoteStore
	IDs   IDGenerator
	Clock Clock
}

func NewNotesUseCase(leads LeadStore, notes NoteStore, ids IDGenerator, clock Clock) *NotesUseCase {
	return &NotesUseCase{Leads: leads, Notes: notes, IDs: ids, Clock: clock}
}

// Add appends a MANUAL note to an existing lead.
func (uc *NotesUseCase) Add(ctx context.Context, leadID, content string, actor Actor) (*entity.Note, error) {
	if errs := ValidateNoteContent(content); len(errs) > 0 {
		return nil, errs
	}
	if actor.ID == "" {
		return nil, ValidationError{"author", "author identity is required"}
	}

	if _, err := uc.Leads.Get(ctx, leadID); err != nil {
		if errors.Is(err, ErrLeadNotFound) {
			return nil, err
		}
		return nil, &StoreError{Op: "get", Err: err}
	}

	authorName := actor.Name
	if authorName == "" {
		authorName = "Unknown"
	}

	now := uc.Clock.Now()
	note := &entity.Note{
		ID:         uc.IDs.NewID(),
		LeadID:     leadID,
		Type:       entity.NoteManual,
		Content:    content,
		AuthorID:   actor.ID,
		AuthorName: authorName,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := uc.Notes.Put(ctx, note); err != nil {
		return nil, &StoreError{Op: "put note", Err: err}
	}

	return note, nil
}

// Edit replaces the content of a MANUAL note. SYSTEM notes are immutable
// audit entries and cannot be edited; type and author never change.
func (uc *NotesUseCase) Edit(ctx context.Context, leadID, noteID, content string) (*entity.Note, error) {
	if errs := ValidateNoteContent(content); len(errs) > 0 {
		return nil, errs
	}

	note, err := uc.Notes.Get(ctx, leadID, noteID)
	if err != nil {
		if errors.Is(err, ErrNoteNotFound) {
			return nil, err
		}
		return nil, &StoreError{Op: "get note", Err: err}
	}

	if note.Type == entity.NoteSystem {
		return nil, ValidationError{"noteId", "system notes cannot be edited"}
	}

	updated, err := uc.Notes.UpdateContent(ctx, leadID, noteID, content, uc.Clock.Now())
	if err != nil {
		if errors.Is(err, ErrNoteNotFound) {
			return nil, err
		}
		return nil, &StoreError{Op: "update note", Err: err}
	}

	return updated, nil
}
