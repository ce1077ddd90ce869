package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FedeLo13/ceramic-affair-web/internal/models"
)

// 1x1 GIF, enough header for DecodeConfig.
var tinyGIF = []byte("GIF89a\x01\x00\x01\x00\x80\x00\x00\x00\x00\x00\xff\xff\xff")

type fakeStorage struct {
	uploaded []string
	size     int64
	deleted  []string
}

func (f *fakeStorage) UploadImage(ctx context.Context, fileName string, file io.Reader, size int64) (string, string, error) {
	f.uploaded = append(f.uploaded, fileName)
	f.size = size
	return "obj-" + fileName, "/uploads/obj-" + fileName, nil
}

func (f *fakeStorage) DeleteImage(ctx context.Context, objectName string) error {
	f.deleted = append(f.deleted, objectName)
	return nil
}

type stubImageRepo struct {
	created   []*models.Image
	createErr error
}

func (r *stubImageRepo) Create(ctx context.Context, image *models.Image) error {
	if r.createErr != nil {
		return r.createErr
	}
	image.ID = int64(len(r.created) + 1)
	r.created = append(r.created, image)
	return nil
}

func (r *stubImageRepo) GetByID(ctx context.Context, id int64) (*models.Image, error) {
	return nil, nil
}

func (r *stubImageRepo) Delete(ctx context.Context, id int64) error { return nil }

func TestImageService_UploadDecodesAndStores(t *testing.T) {
	store := &fakeStorage{}
	repo := &stubImageRepo{}
	svc := NewImageService(repo, store)

	img, err := svc.Upload(context.Background(), "dot.gif", bytes.NewReader(tinyGIF))
	require.NoError(t, err)

	assert.Equal(t, "gif", img.Format)
	assert.Equal(t, 1, img.Width)
	assert.Equal(t, 1, img.Height)
	assert.Equal(t, int64(len(tinyGIF)), img.Size)
	assert.Equal(t, "/uploads/obj-dot.gif", img.Path)

	// the stored size is derived from the bytes actually read
	assert.Equal(t, []string{"dot.gif"}, store.uploaded)
	assert.Equal(t, int64(len(tinyGIF)), store.size)
	require.Len(t, repo.created, 1)
}

func TestImageService_UploadRejectsNonImage(t *testing.T) {
	store := &fakeStorage{}
	svc := NewImageService(&stubImageRepo{}, store)

	_, err := svc.Upload(context.Background(), "notes.txt", bytes.NewReader([]byte("plain text")))
	require.Error(t, err)
	assert.Empty(t, store.uploaded)
}

func TestImageService_UploadRemovesObjectWhenInsertFails(t *testing.T) {
	store := &fakeStorage{}
	repo := &stubImageRepo{createErr: errors.New("insert failed")}
	svc := NewImageService(repo, store)

	_, err := svc.Upload(context.Background(), "dot.gif", bytes.NewReader(tinyGIF))
	require.Error(t, err)
	assert.Equal(t, []string{"obj-dot.gif"}, store.deleted)
}
