package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/FedeLo13/ceramic-affair-web/internal/models"
)

// ProductFilter carries the catalog filter set. Nil pointers mean
// "not filtered". Page is 0-based.
type ProductFilter struct {
	Name        string
	CategoryID  *int64
	OnlyInStock *bool
	Order       string // "nuevos" (newest first, default) or "viejos"
	Page        int
	Size        int
}

type ProductRepository interface {
	Create(ctx context.Context, product *models.Product, imageIDs []int64) error
	GetByID(ctx context.Context, id int64) (*models.Product, error)
	Filter(ctx context.Context, filter ProductFilter) ([]models.Product, int64, error)
	GetAll(ctx context.Context) ([]models.Product, error)
	Update(ctx context.Context, product *models.Product, imageIDs []int64) error
	SetSoldOut(ctx context.Context, id int64, soldOut bool) error
	Delete(ctx context.Context, id int64) error
}

type CategoryRepository interface {
	Create(ctx context.Context, category *models.Category) error
	GetByID(ctx context.Context, id int64) (*models.Category, error)
	GetAll(ctx context.Context) ([]models.Category, error)
	Update(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, id int64) error
}

type ImageRepository interface {
	Create(ctx context.Context, image *models.Image) error
	GetByID(ctx context.Context, id int64) (*models.Image, error)
	Delete(ctx context.Context, id int64) error
}

type FindMePostRepository interface {
	Create(ctx context.Context, post *models.FindMePost) error
	GetByID(ctx context.Context, id int64) (*models.FindMePost, error)
	GetAll(ctx context.Context) ([]models.FindMePost, error)
	Update(ctx context.Context, post *models.FindMePost) error
	Delete(ctx context.Context, id int64) error
}

type SubscriberRepository interface {
	Create(ctx context.Context, subscriber *models.Subscriber) error
	GetByEmail(ctx context.Context, email string) (*models.Subscriber, error)
	Verify(ctx context.Context, token string) error
	DeleteByToken(ctx context.Context, token string) error
	GetVerified(ctx context.Context) ([]models.Subscriber, error)
	DeleteUnverifiedExpired(ctx context.Context, before time.Time) (int64, error)
}

type NewsletterRepository interface {
	GetTemplate(ctx context.Context) (*models.Newsletter, error)
	UpdateTemplate(ctx context.Context, template *models.Newsletter) error
}

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User, password string) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	VerifyPassword(ctx context.Context, email, password string) (*models.User, error)
	CountUsers(ctx context.Context) (int, error)
}

type Repository struct {
	Product    ProductRepository
	Category   CategoryRepository
	Image      ImageRepository
	FindMePost FindMePostRepository
	Subscriber SubscriberRepository
	Newsletter NewsletterRepository
	User       UserRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		Product:    NewProductRepository(db),
		Category:   NewCategoryRepository(db),
		Image:      NewImageRepository(db),
		FindMePost: NewFindMePostRepository(db),
		Subscriber: NewSubscriberRepository(db),
		Newsletter: NewNewsletterRepository(db),
		User:       NewUserRepository(db),
	}
}
