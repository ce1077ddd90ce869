package jobs

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

const (
	// TypeNewsletterDelivery delivers one newsletter mail to one subscriber.
	TypeNewsletterDelivery = "newsletter:delivery"
	// TypeSubscriberCleanup purges unverified subscribers with expired tokens.
	TypeSubscriberCleanup = "subscribers:cleanup"

	QueueMail    = "mail"
	QueueDefault = "default"
)

type NewsletterDeliveryPayload struct {
	Email          string `json:"email"`
	Subject        string `json:"subject"`
	Message        string `json:"message"`
	UnsubscribeURL string `json:"unsubscribeUrl"`
}

func NewNewsletterDeliveryTask(payload NewsletterDeliveryPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("could not marshal delivery payload: %w", err)
	}
	return asynq.NewTask(TypeNewsletterDelivery, data,
		asynq.Queue(QueueMail), asynq.MaxRetry(3)), nil
}

func NewSubscriberCleanupTask() *asynq.Task {
	return asynq.NewTask(TypeSubscriberCleanup, nil, asynq.Queue(QueueDefault))
}
