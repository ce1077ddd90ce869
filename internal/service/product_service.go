package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/FedeLo13/ceramic-affair-web/internal/models"
	"github.com/FedeLo13/ceramic-affair-web/internal/repository"
)

var ErrUnknownCategory = errors.New("category does not exist")

// ProductInput is the create/update payload after validation.
type ProductInput struct {
	Name        string
	Description string
	Price       float64
	SoldOut     bool
	CategoryID  *int64
	Height      float64
	Width       float64
	Diameter    float64
	ImageIDs    []int64
}

type ProductService interface {
	Create(ctx context.Context, input ProductInput) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Product, error)
	Filter(ctx context.Context, filter repository.ProductFilter) (models.Page[models.Product], error)
	GetAll(ctx context.Context) ([]models.Product, error)
	Update(ctx context.Context, id int64, input ProductInput) error
	SetSoldOut(ctx context.Context, id int64, soldOut bool) error
	Delete(ctx context.Context, id int64) error
}

type productService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

func NewProductService(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository) ProductService {
	return &productService{productRepo: productRepo, categoryRepo: categoryRepo}
}

func (s *productService) checkCategory(ctx context.Context, categoryID *int64) error {
	if categoryID == nil {
		return nil
	}
	_, err := s.categoryRepo.GetByID(ctx, *categoryID)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return ErrUnknownCategory
		}
		return err
	}
	return nil
}

func (s *productService) Create(ctx context.Context, input ProductInput) (int64, error) {
	if err := s.checkCategory(ctx, input.CategoryID); err != nil {
		return 0, err
	}

	product := &models.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		SoldOut:     input.SoldOut,
		CategoryID:  input.CategoryID,
		Height:      input.Height,
		Width:       input.Width,
		Diameter:    input.Diameter,
	}

	if err := s.productRepo.Create(ctx, product, input.ImageIDs); err != nil {
		return 0, err
	}

	return product.ID, nil
}

func (s *productService) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	return s.productRepo.GetByID(ctx, id)
}

func (s *productService) Filter(ctx context.Context, filter repository.ProductFilter) (models.Page[models.Product], error) {
	products, total, err := s.productRepo.Filter(ctx, filter)
	if err != nil {
		return models.Page[models.Product]{}, fmt.Errorf("could not filter products: %w", err)
	}

	size := filter.Size
	if size <= 0 {
		size = 10
	}

	return models.NewPage(products, filter.Page, size, total), nil
}

func (s *productService) GetAll(ctx context.Context) ([]models.Product, error) {
	return s.productRepo.GetAll(ctx)
}

func (s *productService) Update(ctx context.Context, id int64, input ProductInput) error {
	if err := s.checkCategory(ctx, input.CategoryID); err != nil {
		return err
	}

	product := &models.Product{
		ID:          id,
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		SoldOut:     input.SoldOut,
		CategoryID:  input.CategoryID,
		Height:      input.Height,
		Width:       input.Width,
		Diameter:    input.Diameter,
	}

	return s.productRepo.Update(ctx, product, input.ImageIDs)
}

func (s *productService) SetSoldOut(ctx context.Context, id int64, soldOut bool) error {
	return s.productRepo.SetSoldOut(ctx, id, soldOut)
}

func (s *productService) Delete(ctx context.Context, id int64) error {
	return s.productRepo.Delete(ctx, id)
}
