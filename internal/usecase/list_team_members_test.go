package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tropicoretreats/leads-api/internal/entity"
)

type stubTeamMemberStore struct {
	members []*entity.TeamMember
	err     error
}

func (s *stubTeamMemberStore) List(ctx context.Context) ([]*entity.TeamMember, error) {
	return s.members, s.err
}

func TestListTeamMembersReturnsDirectory(t *testing.T) {
	uc := NewListTeamMembersUseCase(&stubTeamMemberStore{members: []*entity.TeamMember{
		{ID: "u-1", Email: "josh@tropicoretreat.com", Username: "josh"},
		{ID: "u-2", Email: "maria@tropicoretreat.com", Username: "maria"},
	}})

	members, err := uc.Execute(context.Background())

	require.NoError(t, err)
	require.Len(t, members, 2)
	assert.Equal(t, "u-1", members[0].ID)
	assert.Equal(t, "maria", members[1].Username)
}

func TestListTeamMembersWrapsStoreFailure(t *testing.T) {
	uc := NewListTeamMembersUseCase(&stubTeamMemberStore{err: errors.New("connection refused")})

	_, err := uc.Execute(context.Background())

	var se *StoreError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "list team members", se.Op)
}
