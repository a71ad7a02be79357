package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/tropicoretreats/leads-api/internal/entity"
)

// LeadCreatedPayload carries everything the notification worker needs to
// build both emails without reading the store back.
type LeadCreatedPayload struct {
	ID             string    `json:"id"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone,omitempty"`
	Company        string    `json:"company,omitempty"`
	GroupSize      string    `json:"group_size,omitempty"`
	PreferredDates string    `json:"preferred_dates,omitempty"`
	Destination    string    `json:"destination,omitempty"`
	Message        string    `json:"message"`
	CreatedAt      time.Time `json:"created_at"`
}

type RabbitMQProducer struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewProducer(conn *amqp.Connection, ch *amqp.Channel) *RabbitMQProducer {
	return &RabbitMQProducer{Conn: conn, Ch: ch}
}

func (p *RabbitMQProducer) PublishLeadCreated(ctx context.Context, lead *entity.Lead) error {
	payload := LeadCreatedPayload{
		ID:             lead.ID,
		FirstName:      lead.FirstName,
		LastName:       lead.LastName,
		Email:          lead.Email,
		Phone:          lead.Phone,
		Company:        lead.Company,
		GroupSize:      lead.GroupSize,
		PreferredDates: lead.PreferredDates,
		Destination:    lead.Destination,
		Message:        lead.Message,
		CreatedAt:      lead.CreatedAt,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode payload: %w", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // Mandatory
		false, // Immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish to RabbitMQ: %w", err)
	}

	return nil
}
