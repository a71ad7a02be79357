package usecase

import (
	"context"
	"log"

	"github.com/tropicoretreats/leads-api/internal/entity"
)

type CreateLeadUseCase struct {
	Leads LeadStore
	IDs   IDGenerator
	Clock Clock
	Queue NotificationPublisher
}

func NewCreateLeadUseCase(leads LeadStore, ids IDGenerator, clock Clock, queue NotificationPublisher) *CreateLeadUseCase {
	return &CreateLeadUseCase{Leads: leads, IDs: ids, Clock: clock, Queue: queue}
}

// Execute validates a contact-form submission and persists it as a NEW/WARM
// lead. Notification delivery is decoupled through the queue; a publish
// failure never fails the submission.
func (uc *CreateLeadUseCase) Execute(ctx context.Context, input CreateLeadInput) (*CreateLeadOutput, error) {
	if errs := ValidateCreateLeadInput(input); len(errs) > 0 {
		return nil, errs
	}

	now := uc.Clock.Now()
	lead := &entity.Lead{
		ID:             uc.IDs.NewID(),
		Status:         entity.StatusNew,
		Temperature:    entity.TemperatureWarm,
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		Email:          input.Email,
		Phone:          input.Phone,
		Company:        input.Company,
		GroupSize:      input.GroupSize,
		PreferredDates: input.PreferredDates,
		Destination:    input.Destination,
		Message:        input.Message,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := uc.Leads.Put(ctx, lead); err != nil {
		return nil, &StoreError{Op: "put", Err: err}
	}

	if err := uc.Queue.PublishLeadCreated(ctx, lead); err != nil {
		log.Printf("lead %s created but notification publish failed: %v", lead.ID, err)
	}

	return &CreateLeadOutput{ID: lead.ID, Message: "Lead created successfully"}, nil
}
