package queue

import (
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/tropicoretreats/leads-api/internal/infra/http/middleware"
	"github.com/tropicoretreats/leads-api/internal/infra/mail"
)

// NotificationSender is the contract the worker delivers through. The two
// sends are independent: one failing never blocks the other.
type NotificationSender interface {
	SendTeamNotification(lead mail.LeadNotification) error
	SendCustomerAutoReply(lead mail.LeadNotification, referenceNumber string) error
}

type Worker struct {
	Channel *amqp.Channel
	Sender  NotificationSender
}

func NewWorker(ch *amqp.Channel, sender NotificationSender) *Worker {
	return &Worker{Channel: ch, Sender: sender}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // auto-ack (manual is safer)
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		log.Fatalf("failed to register RabbitMQ consumer: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload LeadCreatedPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Printf("[worker] invalid JSON, rejecting: %s", err)
				// Malformed message. Reject without requeue so it cannot
				// wedge the queue.
				d.Nack(false, false)
				continue
			}

			log.Printf("[worker] processing notifications for lead %s (%s)", payload.ID, payload.Email)

			if w.process(payload) {
				d.Ack(false)
			} else {
				// Both sends failed; the DLQ keeps the evidence.
				d.Nack(false, false)
			}
		}
	}()

	log.Printf("[worker] waiting on queue %q", queueName)
	<-forever
}

// process attempts both sends and reports whether at least one succeeded.
func (w *Worker) process(payload LeadCreatedPayload) bool {
	lead := mail.LeadNotification{
		ID:             payload.ID,
		FirstName:      payload.FirstName,
		LastName:       payload.LastName,
		Email:          payload.Email,
		Phone:          payload.Phone,
		Company:        payload.Company,
		GroupSize:      payload.GroupSize,
		PreferredDates: payload.PreferredDates,
		Destination:    payload.Destination,
		Message:        payload.Message,
		CreatedAt:      payload.CreatedAt,
	}
	reference := mail.GenerateReferenceNumber()

	teamOK := true
	if err := w.Sender.SendTeamNotification(lead); err != nil {
		log.Printf("[worker] team notification for lead %s failed: %s", payload.ID, err)
		middleware.RecordNotificationError("team")
		teamOK = false
	} else {
		middleware.RecordNotificationSent("team")
	}

	customerOK := true
	if err := w.Sender.SendCustomerAutoReply(lead, reference); err != nil {
		log.Printf("[worker] customer auto-reply for lead %s failed: %s", payload.ID, err)
		middleware.RecordNotificationError("customer")
		customerOK = false
	} else {
		log.Printf("[worker] customer auto-reply sent for lead %s with ref %s", payload.ID, reference)
		middleware.RecordNotificationSent("customer")
	}

	return teamOK || customerOK
}
