package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/tropicoretreats/leads-api/internal/entity"
	"github.com/tropicoretreats/leads-api/internal/infra/http/middleware"
	"github.com/tropicoretreats/leads-api/internal/usecase"
)

type LeadAdminHandler struct {
	List   *usecase.ListLeadsUseCase
	Detail *usecase.GetLeadUseCase
	Update *usecase.UpdateLeadUseCase
	Notes  *usecase.NotesUseCase
}

func NewLeadAdminHandler(
	list *usecase.ListLeadsUseCase,
	detail *usecase.GetLeadUseCase,
	update *usecase.UpdateLeadUseCase,
	notes *usecase.NotesUseCase,
) *LeadAdminHandler {
	return &LeadAdminHandler{List: list, Detail: detail, Update: update, Notes: notes}
}

// HandleList (GET /admin/leads) answers filtered, paginated queries.
func (h *LeadAdminHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	req := usecase.FilterRequest{
		AssigneeID:      firstNonEmpty(q.Get("assignee"), q.Get("assigneeId")),
		Search:          strings.TrimSpace(q.Get("search")),
		DateFrom:        q.Get("from"),
		DateTo:          q.Get("to"),
		IncludeArchived: q.Get("archived") == "true",
		Cursor:          firstNonEmpty(q.Get("cursor"), q.Get("lastKey")),
	}

	for _, s := range splitMulti(q.Get("status")) {
		req.Statuses = append(req.Statuses, entity.LeadStatus(s))
	}
	for _, t := range splitMulti(q.Get("temperature")) {
		req.Temperatures = append(req.Temperatures, entity.Temperature(t))
	}

	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, usecase.ValidationError{Field: "limit", Message: "must be between 1 and 100"})
			return
		}
		req.Limit = limit
	}

	page, err := h.List.Execute(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, page)
}

// HandleGet (GET /admin/leads/{id}) returns a lead with its notes.
func (h *LeadAdminHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	lead, err := h.Detail.Execute(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, lead)
}

type updateLeadRequest struct {
	Status       *entity.LeadStatus  `json:"status"`
	Temperature  *entity.Temperature `json:"temperature"`
	AssigneeID   *string             `json:"assigneeId"`
	AssigneeName *string             `json:"assigneeName"`
}

// HandleUpdate (PATCH /admin/leads/{id}) applies a sparse change set.
func (h *LeadAdminHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var body updateLeadRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid JSON in request body"})
		return
	}

	input := usecase.UpdateLeadInput{
		ID:           chi.URLParam(r, "id"),
		Status:       body.Status,
		Temperature:  body.Temperature,
		AssigneeID:   body.AssigneeID,
		AssigneeName: body.AssigneeName,
		Actor:        actorFromRequest(r),
	}

	lead, err := h.Update.Execute(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	if body.Status != nil {
		middleware.RecordStatusChange(string(*body.Status))
	}

	writeJSON(w, http.StatusOK, lead)
}

type noteRequest struct {
	Content string `json:"content"`
}

// HandleAddNote (POST /admin/leads/{id}/notes) appends a manual note.
func (h *LeadAdminHandler) HandleAddNote(w http.ResponseWriter, r *http.Request) {
	var body noteRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid JSON in request body"})
		return
	}

	note, err := h.Notes.Add(r.Context(), chi.URLParam(r, "id"), body.Content, actorFromRequest(r))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, note)
}

// HandleEditNote (PATCH /admin/leads/{id}/notes/{noteId}) rewrites a manual
// note's content.
func (h *LeadAdminHandler) HandleEditNote(w http.ResponseWriter, r *http.Request) {
	var body noteRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid JSON in request body"})
		return
	}

	note, err := h.Notes.Edit(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "noteId"), body.Content)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, note)
}

// splitMulti parses comma-joined multi-value params (gateways join repeated
// params as "A,B").
func splitMulti(raw string) []string {
	if raw == "" {
		return nil
	}
	var values []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			values = append(values, part)
		}
	}
	return values
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
