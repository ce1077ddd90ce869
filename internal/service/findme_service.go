package service

import (
	"context"

	"github.com/FedeLo13/ceramic-affair-web/internal/models"
	"github.com/FedeLo13/ceramic-affair-web/internal/repository"
)

// Start/end ordering is intentionally not checked anywhere; open-ended events
// are representable.
type FindMePostService interface {
	Create(ctx context.Context, post *models.FindMePost) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.FindMePost, error)
	GetAll(ctx context.Context) ([]models.FindMePost, error)
	Update(ctx context.Context, post *models.FindMePost) error
	Delete(ctx context.Context, id int64) error
}

type findMePostService struct {
	postRepo repository.FindMePostRepository
}

func NewFindMePostService(postRepo repository.FindMePostRepository) FindMePostService {
	return &findMePostService{postRepo: postRepo}
}

func (s *findMePostService) Create(ctx context.Context, post *models.FindMePost) (int64, error) {
	if err := s.postRepo.Create(ctx, post); err != nil {
		return 0, err
	}
	return post.ID, nil
}

func (s *findMePostService) GetByID(ctx context.Context, id int64) (*models.FindMePost, error) {
	return s.postRepo.GetByID(ctx, id)
}

func (s *findMePostService) GetAll(ctx context.Context) ([]models.FindMePost, error) {
	return s.postRepo.GetAll(ctx)
}

func (s *findMePostService) Update(ctx context.Context, post *models.FindMePost) error {
	return s.postRepo.Update(ctx, post)
}

func (s *findMePostService) Delete(ctx context.Context, id int64) error {
	return s.postRepo.Delete(ctx, id)
}
