package service

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/hibiken/asynq"

	"github.com/FedeLo13/ceramic-affair-web/internal/jobs"
	"github.com/FedeLo13/ceramic-affair-web/internal/models"
	"github.com/FedeLo13/ceramic-affair-web/internal/repository"
)

type NewsletterService interface {
	GetTemplate(ctx context.Context) (*models.Newsletter, error)
	UpdateTemplate(ctx context.Context, template *models.Newsletter) error
	// Send fans the newsletter out to every verified subscriber, one delivery
	// task each, and returns how many deliveries were enqueued.
	Send(ctx context.Context, newsletter *models.Newsletter, publicBaseURL string) (int, error)
}

type newsletterService struct {
	newsletterRepo repository.NewsletterRepository
	subscriberRepo repository.SubscriberRepository
	tasks          *asynq.Client
}

func NewNewsletterService(newsletterRepo repository.NewsletterRepository, subscriberRepo repository.SubscriberRepository, tasks *asynq.Client) NewsletterService {
	return &newsletterService{
		newsletterRepo: newsletterRepo,
		subscriberRepo: subscriberRepo,
		tasks:          tasks,
	}
}

func (s *newsletterService) GetTemplate(ctx context.Context) (*models.Newsletter, error) {
	return s.newsletterRepo.GetTemplate(ctx)
}

func (s *newsletterService) UpdateTemplate(ctx context.Context, template *models.Newsletter) error {
	return s.newsletterRepo.UpdateTemplate(ctx, template)
}

func (s *newsletterService) Send(ctx context.Context, newsletter *models.Newsletter, publicBaseURL string) (int, error) {
	subscribers, err := s.subscriberRepo.GetVerified(ctx)
	if err != nil {
		return 0, err
	}

	enqueued := 0
	for _, subscriber := range subscribers {
		unsubscribeURL := fmt.Sprintf("%s/api/public/suscriptores/desuscribir?token=%s",
			strings.TrimSuffix(publicBaseURL, "/"),
			url.QueryEscape(subscriber.VerificationToken))

		task, err := jobs.NewNewsletterDeliveryTask(jobs.NewsletterDeliveryPayload{
			Email:          subscriber.Email,
			Subject:        newsletter.Subject,
			Message:        newsletter.Message,
			UnsubscribeURL: unsubscribeURL,
		})
		if err != nil {
			return enqueued, err
		}

		if _, err := s.tasks.EnqueueContext(ctx, task); err != nil {
			return enqueued, fmt.Errorf("could not enqueue delivery for %s: %w", subscriber.Email, err)
		}
		enqueued++
	}

	return enqueued, nil
}
