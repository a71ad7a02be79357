package entity

import "time"

type NoteType string

const (
	NoteManual NoteType = "MANUAL"
	NoteSystem NoteType = "SYSTEM"
)

// Note is an append-only annotation on a single lead. SYSTEM notes are
// machine-generated audit entries and are never edited; MANUAL notes may
// have their content changed, never their type or author. Chronological
// ordering is stable on (LeadID, CreatedAt, ID) even for notes created in
// the same millisecond, because IDs are time-ordered.
type Note struct {
	ID         string    `json:"id"`
	LeadID     string    `json:"leadId"`
	Type       NoteType  `json:"type"`
	Content    string    `json:"content"`
	AuthorID   string    `json:"authorId"`
	AuthorName string    `json:"authorName"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
