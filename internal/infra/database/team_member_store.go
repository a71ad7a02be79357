package database

import (
	"context"
	"database/sql"

	"github.com/tropicoretreats/leads-api/internal/entity"
)

// TeamMemberStore reads the assignee directory. Rows are synced in from the
// auth system; deactivated accounts stay in the table with active = FALSE so
// historical assigneeId values keep resolving.
type TeamMemberStore struct {
	DB *sql.DB
}

func NewTeamMemberStore(db *sql.DB) *TeamMemberStore {
	return &TeamMemberStore{DB: db}
}

func (s *TeamMemberStore) List(ctx context.Context) ([]*entity.TeamMember, error) {
	query := `SELECT id, email, username FROM team_members WHERE active ORDER BY username`

	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := []*entity.TeamMember{}
	for rows.Next() {
		var m entity.TeamMember
		if err := rows.Scan(&m.ID, &m.Email, &m.Username); err != nil {
			return nil, err
		}
		members = append(members, &m)
	}
	return members, rows.Err()
}
