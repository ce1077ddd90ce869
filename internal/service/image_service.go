package service

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log"

	"github.com/FedeLo13/ceramic-affair-web/internal/models"
	"github.com/FedeLo13/ceramic-affair-web/internal/repository"
	"github.com/FedeLo13/ceramic-affair-web/internal/storage"
)

type ImageService interface {
	Upload(ctx context.Context, fileName string, file io.Reader) (*models.Image, error)
	GetByID(ctx context.Context, id int64) (*models.Image, error)
	Delete(ctx context.Context, id int64) error
}

type imageService struct {
	imageRepo repository.ImageRepository
	storage   storage.Storage
}

func NewImageService(imageRepo repository.ImageRepository, store storage.Storage) ImageService {
	return &imageService{imageRepo: imageRepo, storage: store}
}

// Upload reads the file once, decodes its dimensions and format, stores the
// object and records the metadata row. The handler has already bounded the
// request size.
func (s *imageService) Upload(ctx context.Context, fileName string, file io.Reader) (*models.Image, error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("could not read upload: %w", err)
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("unsupported image file: %w", err)
	}

	objectName, publicPath, err := s.storage.UploadImage(ctx, fileName, bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}

	img := &models.Image{
		Path:   publicPath,
		Format: format,
		Size:   int64(len(data)),
		Width:  cfg.Width,
		Height: cfg.Height,
	}

	if err := s.imageRepo.Create(ctx, img); err != nil {
		// the object is orphaned otherwise
		if delErr := s.storage.DeleteImage(ctx, objectName); delErr != nil {
			log.Printf("Warning: could not remove object %s after failed insert: %v", objectName, delErr)
		}
		return nil, fmt.Errorf("could not save image metadata: %w", err)
	}

	return img, nil
}

func (s *imageService) GetByID(ctx context.Context, id int64) (*models.Image, error) {
	return s.imageRepo.GetByID(ctx, id)
}

// Delete removes the stored object first and the row after; a failed object
// removal is logged and does not block dropping the row.
func (s *imageService) Delete(ctx context.Context, id int64) error {
	img, err := s.imageRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	objectName := img.Path
	if resolver, ok := s.storage.(interface{ ObjectNameFromPath(string) string }); ok {
		objectName = resolver.ObjectNameFromPath(img.Path)
	}

	if err := s.storage.DeleteImage(ctx, objectName); err != nil {
		log.Printf("Warning: could not delete object %s: %v", objectName, err)
	}

	return s.imageRepo.Delete(ctx, id)
}
