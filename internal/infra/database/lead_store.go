package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"github.com/tropicoretreats/leads-api/internal/entity"
	"github.com/tropicoretreats/leads-api/internal/usecase"
)

// LeadStore backs the engine's store contract with Postgres. Native
// predicates become WHERE clauses; the opaque scan continuation token is the
// last row's time-ordered primary key, so "resume after token" is a keyset
// condition rather than an offset.
type LeadStore struct {
	DB *sql.DB
}

func NewLeadStore(db *sql.DB) *LeadStore {
	return &LeadStore{DB: db}
}

const leadColumns = `id, status, previous_status, temperature, assignee_id, assignee_name,
	first_name, last_name, email, phone, company, group_size, preferred_dates,
	destination, message, created_at, updated_at`

func (s *LeadStore) Get(ctx context.Context, id string) (*entity.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE id = $1`

	lead, err := scanLead(s.DB.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, usecase.ErrLeadNotFound
	}
	if err != nil {
		return nil, err
	}
	return lead, nil
}

func (s *LeadStore) Put(ctx context.Context, lead *entity.Lead) error {
	query := `
		INSERT INTO leads (
			id, status, previous_status, temperature, assignee_id, assignee_name,
			first_name, last_name, email, phone, company, group_size,
			preferred_dates, destination, message, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`

	_, err := s.DB.ExecContext(ctx, query,
		lead.ID,
		string(lead.Status),
		nullStatus(lead.PreviousStatus),
		string(lead.Temperature),
		nullString(lead.AssigneeID),
		nullString(lead.AssigneeName),
		lead.FirstName,
		lead.LastName,
		lead.Email,
		nullString(lead.Phone),
		nullString(lead.Company),
		nullString(lead.GroupSize),
		nullString(lead.PreferredDates),
		nullString(lead.Destination),
		lead.Message,
		lead.CreatedAt,
		lead.UpdatedAt,
	)
	return err
}

// Update applies a sparse delta and returns the new row, or
// usecase.ErrLeadNotFound if the lead no longer exists. The existence check
// and the write are one statement, so an update never materializes a
// deleted record.
func (s *LeadStore) Update(ctx context.Context, id string, changes entity.LeadChanges) (*entity.Lead, error) {
	sets := []string{"updated_at = $1"}
	args := []interface{}{changes.UpdatedAt}

	next := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if changes.Status != nil {
		sets = append(sets, "status = "+next(string(*changes.Status)))
	}
	if changes.PreviousStatus != nil {
		sets = append(sets, "previous_status = "+next(string(*changes.PreviousStatus)))
	} else if changes.ClearPreviousStatus {
		sets = append(sets, "previous_status = NULL")
	}
	if changes.Temperature != nil {
		sets = append(sets, "temperature = "+next(string(*changes.Temperature)))
	}
	if changes.AssigneeID != nil {
		sets = append(sets, "assignee_id = "+next(nullString(*changes.AssigneeID)))
	}
	if changes.AssigneeName != nil {
		sets = append(sets, "assignee_name = "+next(nullString(*changes.AssigneeName)))
	}

	query := fmt.Sprintf(
		`UPDATE leads SET %s WHERE id = %s RETURNING %s`,
		strings.Join(sets, ", "), next(id), leadColumns,
	)

	lead, err := scanLead(s.DB.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, usecase.ErrLeadNotFound
	}
	if err != nil {
		return nil, err
	}
	return lead, nil
}

// Scan fetches one batch, newest first. It reads limit+1 rows so the
// continuation token is only handed out when a further row actually exists.
func (s *LeadStore) Scan(ctx context.Context, filter entity.ScanFilter, limit int, startAfter string) ([]*entity.Lead, string, error) {
	where, args := buildLeadWhere(filter)
	if startAfter != "" {
		args = append(args, startAfter)
		where = append(where, fmt.Sprintf("id < $%d", len(args)))
	}

	query := `SELECT ` + leadColumns + ` FROM leads`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	args = append(args, limit+1)
	query += fmt.Sprintf(` ORDER BY id DESC LIMIT $%d`, len(args))

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, "", err
	}
	defer rows.Close()

	var leads []*entity.Lead
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, "", err
		}
		leads = append(leads, lead)
	}
	if err := rows.Err(); err != nil {
		return nil, "", err
	}

	nextToken := ""
	if len(leads) > limit {
		leads = leads[:limit]
		nextToken = leads[len(leads)-1].ID
	}
	return leads, nextToken, nil
}

func (s *LeadStore) Count(ctx context.Context, filter entity.ScanFilter) (int, error) {
	where, args := buildLeadWhere(filter)

	query := `SELECT COUNT(*) FROM leads`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}

	var count int
	if err := s.DB.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func buildLeadWhere(filter entity.ScanFilter) ([]string, []interface{}) {
	var where []string
	var args []interface{}

	if len(filter.Statuses) > 0 {
		statuses := make([]string, len(filter.Statuses))
		for i, s := range filter.Statuses {
			statuses[i] = string(s)
		}
		args = append(args, pq.Array(statuses))
		where = append(where, fmt.Sprintf("status = ANY($%d)", len(args)))
	}

	if len(filter.Temperatures) > 0 {
		temps := make([]string, len(filter.Temperatures))
		for i, t := range filter.Temperatures {
			temps[i] = string(t)
		}
		args = append(args, pq.Array(temps))
		where = append(where, fmt.Sprintf("temperature = ANY($%d)", len(args)))
	}

	if filter.AssigneeID != "" {
		args = append(args, filter.AssigneeID)
		where = append(where, fmt.Sprintf("assignee_id = $%d", len(args)))
	}

	if !filter.CreatedFrom.IsZero() {
		args = append(args, filter.CreatedFrom)
		where = append(where, fmt.Sprintf("created_at >= $%d", len(args)))
	}
	if !filter.CreatedUntil.IsZero() {
		args = append(args, filter.CreatedUntil)
		where = append(where, fmt.Sprintf("created_at < $%d", len(args)))
	}

	return where, args
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanLead(row rowScanner) (*entity.Lead, error) {
	var lead entity.Lead
	var prevStatus, assigneeID, assigneeName sql.NullString
	var phone, company, groupSize, preferredDates, destination sql.NullString

	err := row.Scan(
		&lead.ID,
		&lead.Status,
		&prevStatus,
		&lead.Temperature,
		&assigneeID,
		&assigneeName,
		&lead.FirstName,
		&lead.LastName,
		&lead.Email,
		&phone,
		&company,
		&groupSize,
		&preferredDates,
		&destination,
		&lead.Message,
		&lead.CreatedAt,
		&lead.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if prevStatus.Valid {
		prev := entity.LeadStatus(prevStatus.String)
		lead.PreviousStatus = &prev
	}
	lead.AssigneeID = assigneeID.String
	lead.AssigneeName = assigneeName.String
	lead.Phone = phone.String
	lead.Company = company.String
	lead.GroupSize = groupSize.String
	lead.PreferredDates = preferredDates.String
	lead.Destination = destination.String

	return &lead, nil
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func nullStatus(s *entity.LeadStatus) *string {
	if s == nil {
		return nil
	}
	v := string(*s)
	return &v
}
