package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/hibiken/asynq"

	"github.com/FedeLo13/ceramic-affair-web/internal/mailer"
	"github.com/FedeLo13/ceramic-affair-web/internal/repository"
)

type Handlers struct {
	sender         mailer.Sender
	subscriberRepo repository.SubscriberRepository
}

func NewHandlers(sender mailer.Sender, subscriberRepo repository.SubscriberRepository) *Handlers {
	return &Handlers{sender: sender, subscriberRepo: subscriberRepo}
}

// Register wires the task handlers into the worker mux.
func (h *Handlers) Register(mux *asynq.ServeMux) {
	mux.HandleFunc(TypeNewsletterDelivery, h.HandleNewsletterDelivery)
	mux.HandleFunc(TypeSubscriberCleanup, h.HandleSubscriberCleanup)
}

func (h *Handlers) HandleNewsletterDelivery(ctx context.Context, task *asynq.Task) error {
	var payload NewsletterDeliveryPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("could not unmarshal delivery payload: %v: %w", err, asynq.SkipRetry)
	}

	body := payload.Message
	if payload.UnsubscribeURL != "" {
		body += "\n\n--\nUnsubscribe: " + payload.UnsubscribeURL
	}

	if err := h.sender.Send([]string{payload.Email}, payload.Subject, body); err != nil {
		return fmt.Errorf("could not deliver newsletter to %s: %w", payload.Email, err)
	}

	return nil
}

func (h *Handlers) HandleSubscriberCleanup(ctx context.Context, task *asynq.Task) error {
	deleted, err := h.subscriberRepo.DeleteUnverifiedExpired(ctx, time.Now())
	if err != nil {
		return err
	}
	if deleted > 0 {
		log.Printf("Purged %d unverified subscribers", deleted)
	}
	return nil
}
