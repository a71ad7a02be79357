package usecase

import (
	"context"
	"errors"

	"github.com/tropicoretreats/leads-api/internal/entity"
)

type UpdateLeadUseCase struct {
	Leads LeadStore
	Audit *AuditTrail
	Clock Clock
}

func NewUpdateLeadUseCase(leads LeadStore, audit *AuditTrail, clock Clock) *UpdateLeadUseCase {
	return &UpdateLeadUseCase{Leads: leads, Audit: audit, Clock: clock}
}

// Execute applies a sparse change set to a lead. Validation and the status
// workflow run before any write; once the conditional update commits, audit
// notes are appended best-effort.
func (uc *UpdateLeadUseCase) Execute(ctx context.Context, input UpdateLeadInput) (*entity.Lead, error) {
	if errs := ValidateUpdateLeadInput(input); len(errs) > 0 {
		return nil, errs
	}

	current, err := uc.Leads.Get(ctx, input.ID)
	if err != nil {
		if errors.Is(err, ErrLeadNotFound) {
			return nil, err
		}
		return nil, &StoreError{Op: "get", Err: err}
	}

	changes := entity.LeadChanges{
		Temperature:  input.Temperature,
		AssigneeID:   input.AssigneeID,
		AssigneeName: input.AssigneeName,
		UpdatedAt:    uc.Clock.Now(),
	}

	if input.Status != nil {
		if err := ValidateTransition(current.Status, *input.Status); err != nil {
			return nil, err
		}
		applyTransition(&changes, current.Status, *input.Status)
	}

	updated, err := uc.Leads.Update(ctx, input.ID, changes)
	if err != nil {
		if errors.Is(err, ErrLeadNotFound) {
			return nil, err
		}
		return nil, &StoreError{Op: "update", Err: err}
	}

	uc.Audit.Record(ctx, current, updated, input.Actor)

	return updated, nil
}
