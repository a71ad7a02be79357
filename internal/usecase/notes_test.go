package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tropicoretreats/leads-api/internal/entity"
)

func newNotesFixture(leads ...*entity.Lead) (*NotesUseCase, *memNoteStore) {
	notes := &memNoteStore{}
	clock := fixedClock{t: time.Date(2026, 3, 2, 14, 0, 0, 0, time.UTC)}
	return NewNotesUseCase(newMemLeadStore(leads...), notes, &seqIDs{}, clock), notes
}

func TestAddNoteCreatesManualNote(t *testing.T) {
	uc, notes := newNotesFixture(testLead("id-0001", entity.StatusNew, nil))

	note, err := uc.Add(context.Background(), "id-0001", "Called, asked for a quote by Friday", Actor{ID: "u-2", Name: "Josh Lee"})
	require.NoError(t, err)

	assert.Equal(t, entity.NoteManual, note.Type)
	assert.Equal(t, "id-0001", note.LeadID)
	assert.Equal(t, "u-2", note.AuthorID)
	assert.Equal(t, "Josh Lee", note.AuthorName)
	assert.Len(t, notes.notes, 1)
}

func TestAddNoteDefaultsMissingAuthorName(t *testing.T) {
	uc, _ := newNotesFixture(testLead("id-0001", entity.StatusNew, nil))

	note, err := uc.Add(context.Background(), "id-0001", "Follow up next week", Actor{ID: "u-2"})

	require.NoError(t, err)
	assert.Equal(t, "Unknown", note.AuthorName)
}

func TestAddNoteRequiresAuthorIdentity(t *testing.T) {
	uc, notes := newNotesFixture(testLead("id-0001", entity.StatusNew, nil))

	_, err := uc.Add(context.Background(), "id-0001", "Anonymous note", Actor{})

	var ve ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "author", ve.Field)
	assert.Empty(t, notes.notes)
}

func TestAddNoteToMissingLead(t *testing.T) {
	uc, _ := newNotesFixture()

	_, err := uc.Add(context.Background(), "missing", "Hello", Actor{ID: "u-2"})

	assert.ErrorIs(t, err, ErrLeadNotFound)
}

func TestAddNoteRejectsEmptyContent(t *testing.T) {
	uc, _ := newNotesFixture(testLead("id-0001", entity.StatusNew, nil))

	_, err := uc.Add(context.Background(), "id-0001", "   ", Actor{ID: "u-2"})

	var errs ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Equal(t, "content", errs[0].Field)
}

func TestEditNoteReplacesContentOnly(t *testing.T) {
	uc, notes := newNotesFixture(testLead("id-0001", entity.StatusNew, nil))
	original, err := uc.Add(context.Background(), "id-0001", "First draft", Actor{ID: "u-2", Name: "Josh Lee"})
	require.NoError(t, err)

	updated, err := uc.Edit(context.Background(), "id-0001", original.ID, "Final version")
	require.NoError(t, err)

	assert.Equal(t, "Final version", updated.Content)
	assert.Equal(t, entity.NoteManual, updated.Type)
	assert.Equal(t, "u-2", updated.AuthorID)
	assert.Equal(t, original.CreatedAt, updated.CreatedAt)
	assert.Len(t, notes.notes, 1)
}

func TestEditNoteRejectsSystemNotes(t *testing.T) {
	uc, notes := newNotesFixture(testLead("id-0001", entity.StatusNew, nil))
	system := &entity.Note{
		ID:         "note-sys",
		LeadID:     "id-0001",
		Type:       entity.NoteSystem,
		Content:    "System changed status from NEW to CONTACTED",
		AuthorID:   "system",
		AuthorName: "System",
	}
	require.NoError(t, notes.Put(context.Background(), system))

	_, err := uc.Edit(context.Background(), "id-0001", "note-sys", "Rewritten history")

	var ve ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "noteId", ve.Field)
	assert.Equal(t, "System changed status from NEW to CONTACTED", notes.notes[0].Content)
}

func TestEditMissingNote(t *testing.T) {
	uc, _ := newNotesFixture(testLead("id-0001", entity.StatusNew, nil))

	_, err := uc.Edit(context.Background(), "id-0001", "missing", "Hello")

	assert.ErrorIs(t, err, ErrNoteNotFound)
}
