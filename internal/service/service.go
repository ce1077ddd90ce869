package service

import (
	"github.com/hibiken/asynq"

	"github.com/FedeLo13/ceramic-affair-web/internal/config"
	"github.com/FedeLo13/ceramic-affair-web/internal/mailer"
	"github.com/FedeLo13/ceramic-affair-web/internal/repository"
	"github.com/FedeLo13/ceramic-affair-web/internal/storage"
)

type Service struct {
	Product    ProductService
	Category   CategoryService
	Image      ImageService
	FindMePost FindMePostService
	Subscriber SubscriberService
	Newsletter NewsletterService
	Contact    ContactService
	Auth       AuthService
}

func NewService(repo *repository.Repository, cfg *config.Config, store storage.Storage, sender mailer.Sender, tasks *asynq.Client) *Service {
	return &Service{
		Product:    NewProductService(repo.Product, repo.Category),
		Category:   NewCategoryService(repo.Category),
		Image:      NewImageService(repo.Image, store),
		FindMePost: NewFindMePostService(repo.FindMePost),
		Subscriber: NewSubscriberService(repo.Subscriber, cfg, sender),
		Newsletter: NewNewsletterService(repo.Newsletter, repo.Subscriber, tasks),
		Contact:    NewContactService(cfg, sender),
		Auth:       NewAuthService(repo.User, cfg),
	}
}
