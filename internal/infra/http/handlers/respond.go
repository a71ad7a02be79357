package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/tropicoretreats/leads-api/internal/usecase"
)

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

type errorResponse struct {
	Error  string              `json:"error"`
	Fields map[string][]string `json:"fields,omitempty"`
}

// writeError maps the engine's error taxonomy onto HTTP statuses. Anything
// outside the taxonomy becomes a detail-free 500: internals stay in the
// logs, not in responses.
func writeError(w http.ResponseWriter, err error) {
	var fieldErrs usecase.ValidationErrors
	var fieldErr usecase.ValidationError
	var transitionErr *usecase.InvalidTransitionError

	switch {
	case errors.As(err, &fieldErrs):
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:  "Validation failed",
			Fields: fieldMap(fieldErrs),
		})
	case errors.As(err, &fieldErr):
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:  "Validation failed",
			Fields: fieldMap(usecase.ValidationErrors{fieldErr}),
		})
	case errors.As(err, &transitionErr):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: transitionErr.Error()})
	case errors.Is(err, usecase.ErrLeadNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "Lead not found"})
	case errors.Is(err, usecase.ErrNoteNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "Note not found"})
	default:
		log.Printf("request failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Internal server error"})
	}
}

func fieldMap(errs usecase.ValidationErrors) map[string][]string {
	fields := make(map[string][]string, len(errs))
	for _, e := range errs {
		fields[e.Field] = append(fields[e.Field], e.Message)
	}
	return fields
}

// actorFromRequest reads the identity the auth gateway injected. Claim
// extraction itself happens upstream; empty headers fall back to the system
// identity inside the engine.
func actorFromRequest(r *http.Request) usecase.Actor {
	return usecase.Actor{
		ID:   r.Header.Get("X-User-Id"),
		Name: r.Header.Get("X-User-Name"),
	}
}
