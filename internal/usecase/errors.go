package usecase

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tropicoretreats/leads-api/internal/entity"
)

var (
	ErrLeadNotFound = errors.New("lead not found")
	ErrNoteNotFound = errors.New("note not found")
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, v := range e {
		msgs[i] = v.Error()
	}
	return strings.Join(msgs, "; ")
}

// InvalidTransitionError reports a rejected status change before any write
// happens. It always carries the offending (current, requested) pair.
type InvalidTransitionError struct {
	Current   entity.LeadStatus
	Requested entity.LeadStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status progression: cannot change from %s to %s", e.Current, e.Requested)
}

// StoreError wraps a failed store round-trip. Callers see it as a generic
// server-side failure; the cause stays in the logs.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s failed: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
