package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/FedeLo13/ceramic-affair-web/internal/config"
	"github.com/FedeLo13/ceramic-affair-web/internal/mailer"
)

var ErrContactNotConfigured = errors.New("contact owner address is not configured")

type ContactForm struct {
	Name    string
	Email   string
	Message string
}

type ContactService interface {
	Send(ctx context.Context, form ContactForm) error
}

type contactService struct {
	cfg    *config.Config
	sender mailer.Sender
}

func NewContactService(cfg *config.Config, sender mailer.Sender) ContactService {
	return &contactService{cfg: cfg, sender: sender}
}

func (s *contactService) Send(ctx context.Context, form ContactForm) error {
	if s.cfg.SMTP.OwnerEmail == "" {
		return ErrContactNotConfigured
	}

	subject := fmt.Sprintf("Contact form: %s", form.Name)
	body := fmt.Sprintf("From: %s <%s>\n\n%s", form.Name, form.Email, form.Message)

	if err := s.sender.Send([]string{s.cfg.SMTP.OwnerEmail}, subject, body); err != nil {
		return fmt.Errorf("could not forward contact message: %w", err)
	}

	return nil
}
