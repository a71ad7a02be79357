package usecase

import (
	"context"

	"github.com/tropicoretreats/leads-api/internal/entity"
)

type ListTeamMembersUseCase struct {
	Members TeamMemberStore
}

func NewListTeamMembersUseCase(members TeamMemberStore) *ListTeamMembersUseCase {
	return &ListTeamMembersUseCase{Members: members}
}

// Execute returns the active team directory for assignee selection.
func (uc *ListTeamMembersUseCase) Execute(ctx context.Context) ([]*entity.TeamMember, error) {
	members, err := uc.Members.List(ctx)
	if err != nil {
		return nil, &StoreError{Op: "list team members", Err: err}
	}
	return members, nil
}
