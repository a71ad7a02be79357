package handlers

import (
	"net/http"

	"github.com/tropicoretreats/leads-api/internal/entity"
	"github.com/tropicoretreats/leads-api/internal/usecase"
)

type UserHandler struct {
	List *usecase.ListTeamMembersUseCase
}

func NewUserHandler(list *usecase.ListTeamMembersUseCase) *UserHandler {
	return &UserHandler{List: list}
}

type teamDirectoryResponse struct {
	Users []*entity.TeamMember `json:"users"`
}

// HandleList (GET /admin/users) returns the assignee directory the admin UI
// populates its dropdown from.
func (h *UserHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	members, err := h.List.Execute(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, teamDirectoryResponse{Users: members})
}
