package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tropicoretreats/leads-api/internal/entity"
	"github.com/tropicoretreats/leads-api/internal/usecase"
)

type stubTeamStore struct {
	members []*entity.TeamMember
	err     error
}

func (s *stubTeamStore) List(ctx context.Context) ([]*entity.TeamMember, error) {
	return s.members, s.err
}

func TestHandleUserListReturnsDirectory(t *testing.T) {
	handler := NewUserHandler(usecase.NewListTeamMembersUseCase(&stubTeamStore{members: []*entity.TeamMember{
		{ID: "u-1", Email: "josh@tropicoretreat.com", Username: "josh"},
	}}))

	req := httptest.NewRequest(http.MethodGet, "/admin/users", nil)
	rec := httptest.NewRecorder()
	handler.HandleList(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Users []entity.TeamMember `json:"users"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Len(t, body.Users, 1)
	assert.Equal(t, "u-1", body.Users[0].ID)
	assert.Equal(t, "josh", body.Users[0].Username)
}

func TestHandleUserListMapsStoreFailureTo500(t *testing.T) {
	handler := NewUserHandler(usecase.NewListTeamMembersUseCase(&stubTeamStore{err: errors.New("connection refused")}))

	req := httptest.NewRequest(http.MethodGet, "/admin/users", nil)
	rec := httptest.NewRecorder()
	handler.HandleList(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal server error", decodeErrorBody(t, rec).Error)
}
