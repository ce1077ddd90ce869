package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FedeLo13/ceramic-affair-web/internal/models"
)

type recordingSender struct {
	sent []string
	body string
	err  error
}

func (r *recordingSender) Send(to []string, subject, body string) error {
	if r.err != nil {
		return r.err
	}
	r.sent = append(r.sent, to...)
	r.body = body
	return nil
}

type stubSubscriberRepo struct {
	purged int64
	err    error
}

func (s *stubSubscriberRepo) Create(ctx context.Context, subscriber *models.Subscriber) error {
	return nil
}

func (s *stubSubscriberRepo) GetByEmail(ctx context.Context, email string) (*models.Subscriber, error) {
	return nil, nil
}

func (s *stubSubscriberRepo) Verify(ctx context.Context, token string) error { return nil }

func (s *stubSubscriberRepo) DeleteByToken(ctx context.Context, token string) error { return nil }

func (s *stubSubscriberRepo) GetVerified(ctx context.Context) ([]models.Subscriber, error) {
	return nil, nil
}

func (s *stubSubscriberRepo) DeleteUnverifiedExpired(ctx context.Context, before time.Time) (int64, error) {
	return s.purged, s.err
}

func TestHandleNewsletterDelivery(t *testing.T) {
	sender := &recordingSender{}
	handlers := NewHandlers(sender, &stubSubscriberRepo{})

	task, err := NewNewsletterDeliveryTask(NewsletterDeliveryPayload{
		Email:          "fan@example.com",
		Subject:        "New pieces",
		Message:        "Fresh from the kiln",
		UnsubscribeURL: "https://ceramic.example.com/api/public/suscriptores/desuscribir?token=abc",
	})
	require.NoError(t, err)

	require.NoError(t, handlers.HandleNewsletterDelivery(context.Background(), task))

	assert.Equal(t, []string{"fan@example.com"}, sender.sent)
	assert.Contains(t, sender.body, "Fresh from the kiln")
	assert.Contains(t, sender.body, "Unsubscribe: https://ceramic.example.com")
}

func TestHandleNewsletterDelivery_BadPayloadSkipsRetry(t *testing.T) {
	handlers := NewHandlers(&recordingSender{}, &stubSubscriberRepo{})

	task := asynq.NewTask(TypeNewsletterDelivery, []byte("not json"))
	err := handlers.HandleNewsletterDelivery(context.Background(), task)

	assert.ErrorIs(t, err, asynq.SkipRetry)
}

func TestHandleNewsletterDelivery_SendFailureRetries(t *testing.T) {
	sender := &recordingSender{err: errors.New("smtp down")}
	handlers := NewHandlers(sender, &stubSubscriberRepo{})

	payload, err := json.Marshal(NewsletterDeliveryPayload{Email: "fan@example.com"})
	require.NoError(t, err)

	err = handlers.HandleNewsletterDelivery(context.Background(),
		asynq.NewTask(TypeNewsletterDelivery, payload))

	require.Error(t, err)
	assert.False(t, errors.Is(err, asynq.SkipRetry))
}

func TestHandleSubscriberCleanup(t *testing.T) {
	handlers := NewHandlers(&recordingSender{}, &stubSubscriberRepo{purged: 3})

	err := handlers.HandleSubscriberCleanup(context.Background(), NewSubscriberCleanupTask())

	assert.NoError(t, err)
}
