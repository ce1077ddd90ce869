package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/FedeLo13/ceramic-affair-web/internal/config"
	"github.com/FedeLo13/ceramic-affair-web/internal/mailer"
	"github.com/FedeLo13/ceramic-affair-web/internal/models"
	"github.com/FedeLo13/ceramic-affair-web/internal/repository"
)

var ErrAlreadySubscribed = errors.New("email is already subscribed")

type SubscriberService interface {
	Subscribe(ctx context.Context, email string) error
	Verify(ctx context.Context, token string) error
	Unsubscribe(ctx context.Context, token string) error
	CleanupExpired(ctx context.Context) (int64, error)
}

type subscriberService struct {
	subscriberRepo repository.SubscriberRepository
	cfg            *config.Config
	sender         mailer.Sender
}

func NewSubscriberService(subscriberRepo repository.SubscriberRepository, cfg *config.Config, sender mailer.Sender) SubscriberService {
	return &subscriberService{subscriberRepo: subscriberRepo, cfg: cfg, sender: sender}
}

// Subscribe registers the email unverified and mails a confirmation link.
// A pending (unverified) subscription is refreshed with a new token instead
// of being rejected.
func (s *subscriberService) Subscribe(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	existing, err := s.subscriberRepo.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, repository.ErrSubscriberNotFound) {
		return err
	}
	if existing != nil {
		if existing.Verified {
			return ErrAlreadySubscribed
		}
		// drop the stale pending row, a fresh token is issued below
		if err := s.subscriberRepo.DeleteByToken(ctx, existing.VerificationToken); err != nil {
			return err
		}
	}

	subscriber := &models.Subscriber{
		Email:             email,
		Verified:          false,
		VerificationToken: uuid.New().String(),
		TokenExpiry:       time.Now().Add(s.cfg.SubscriberTokenTTL),
	}

	if err := s.subscriberRepo.Create(ctx, subscriber); err != nil {
		return err
	}

	verifyURL := fmt.Sprintf("%s/api/public/suscriptores/verificar?token=%s",
		strings.TrimSuffix(s.cfg.PublicBaseURL, "/"),
		url.QueryEscape(subscriber.VerificationToken))

	body := fmt.Sprintf(
		"Thanks for subscribing to the Ceramic Affair newsletter!\n\n"+
			"Please confirm your address by opening this link:\n%s\n\n"+
			"If you did not request this, you can ignore this email.",
		verifyURL)

	if err := s.sender.Send([]string{email}, "Confirm your subscription", body); err != nil {
		return fmt.Errorf("could not send verification mail: %w", err)
	}

	return nil
}

func (s *subscriberService) Verify(ctx context.Context, token string) error {
	return s.subscriberRepo.Verify(ctx, token)
}

func (s *subscriberService) Unsubscribe(ctx context.Context, token string) error {
	return s.subscriberRepo.DeleteByToken(ctx, token)
}

func (s *subscriberService) CleanupExpired(ctx context.Context) (int64, error) {
	return s.subscriberRepo.DeleteUnverifiedExpired(ctx, time.Now())
}
