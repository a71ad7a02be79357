package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/tropicoretreats/leads-api/internal/entity"
	"github.com/tropicoretreats/leads-api/internal/usecase"
)

// NoteStore persists lead annotations. Chronological ordering is stable on
// (lead_id, created_at, id): ids are time-ordered, so two notes written in
// the same millisecond still sort deterministically.
type NoteStore struct {
	DB *sql.DB
}

func NewNoteStore(db *sql.DB) *NoteStore {
	return &NoteStore{DB: db}
}

const noteColumns = `id, lead_id, type, content, author_id, author_name, created_at, updated_at`

func (s *NoteStore) Put(ctx context.Context, note *entity.Note) error {
	query := `
		INSERT INTO notes (id, lead_id, type, content, author_id, author_name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := s.DB.ExecContext(ctx, query,
		note.ID,
		note.LeadID,
		string(note.Type),
		note.Content,
		note.AuthorID,
		note.AuthorName,
		note.CreatedAt,
		note.UpdatedAt,
	)
	return err
}

func (s *NoteStore) ListByLead(ctx context.Context, leadID string) ([]*entity.Note, error) {
	query := `SELECT ` + noteColumns + ` FROM notes WHERE lead_id = $1 ORDER BY created_at DESC, id DESC`

	rows, err := s.DB.QueryContext(ctx, query, leadID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notes := []*entity.Note{}
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		notes = append(notes, note)
	}
	return notes, rows.Err()
}

func (s *NoteStore) Get(ctx context.Context, leadID, noteID string) (*entity.Note, error) {
	query := `SELECT ` + noteColumns + ` FROM notes WHERE lead_id = $1 AND id = $2`

	note, err := scanNote(s.DB.QueryRowContext(ctx, query, leadID, noteID))
	if err == sql.ErrNoRows {
		return nil, usecase.ErrNoteNotFound
	}
	if err != nil {
		return nil, err
	}
	return note, nil
}

func (s *NoteStore) UpdateContent(ctx context.Context, leadID, noteID, content string, updatedAt time.Time) (*entity.Note, error) {
	query := `
		UPDATE notes SET content = $1, updated_at = $2
		WHERE lead_id = $3 AND id = $4
		RETURNING ` + noteColumns

	note, err := scanNote(s.DB.QueryRowContext(ctx, query, content, updatedAt, leadID, noteID))
	if err == sql.ErrNoRows {
		return nil, usecase.ErrNoteNotFound
	}
	if err != nil {
		return nil, err
	}
	return note, nil
}

func scanNote(row rowScanner) (*entity.Note, error) {
	var note entity.Note
	err := row.Scan(
		&note.ID,
		&note.LeadID,
		&note.Type,
		&note.Content,
		&note.AuthorID,
		&note.AuthorName,
		&note.CreatedAt,
		&note.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &note, nil
}
