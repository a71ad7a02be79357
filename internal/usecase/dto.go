package usecase

import (
	"github.com/tropicoretreats/leads-api/internal/entity"
)

// Actor identifies who performs an admin operation. The transport layer
// extracts it from gateway-injected claims; empty values fall back to the
// system identity.
type Actor struct {
	ID   string
	Name string
}

type CreateLeadInput struct {
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Company        string `json:"company"`
	GroupSize      string `json:"groupSize"`
	PreferredDates string `json:"preferredDates"`
	Destination    string `json:"destination"`
	Message        string `json:"message"`
}

type CreateLeadOutput struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// UpdateLeadInput is a sparse change set; nil means "leave untouched".
type UpdateLeadInput struct {
	ID           string
	Status       *entity.LeadStatus
	Temperature  *entity.Temperature
	AssigneeID   *string
	AssigneeName *string
	Actor        Actor
}

// FilterRequest is the caller-facing description of a lead query. It is
// ephemeral: compiled per request, never persisted.
type FilterRequest struct {
	Statuses     []entity.LeadStatus
	Temperatures []entity.Temperature
	AssigneeID   string
	Search       string
	DateFrom     string // YYYY-MM-DD, inclusive
	DateTo       string // YYYY-MM-DD, inclusive
	// IncludeArchived only matters when Statuses is empty; an explicit
	// status selection is honored as given.
	IncludeArchived bool
	Limit           int // 0 means default page size
	Cursor          string
}

type PageResult struct {
	Leads      []*entity.Lead `json:"leads"`
	NextCursor string         `json:"nextCursor,omitempty"`
	// TotalCount counts leads matching the full filter, independent of page
	// size. When TotalIsEstimate is set the count is a lower bound: the
	// residual-filtered counting pass ran out of scan budget.
	TotalCount      int  `json:"totalCount"`
	TotalIsEstimate bool `json:"totalIsEstimate,omitempty"`
}

type LeadWithNotes struct {
	entity.Lead
	Notes []*entity.Note `json:"notes"`
}
