package service

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"authorsite-backend/internal/domains/upload"
	"authorsite-backend/internal/infrastructure/storage"
)

var extByContentType = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/gif":  "gif",
	"image/webp": "webp",
}

type uploadService struct {
	storage   *storage.MinIOStorage
	processor *storage.ImageProcessor
}

// NewUploadService creates an upload service
func NewUploadService(s *storage.MinIOStorage, p *storage.ImageProcessor) upload.Service {
	return &uploadService{
		storage:   s,
		processor: p,
	}
}

func (s *uploadService) Upload(ctx context.Context, data []byte) (*upload.Result, error) {
	if len(data) == 0 {
		return nil, upload.ErrMissingFile
	}

	// Validation happens before any storage write.
	if err := s.processor.ValidateImage(data); err != nil {
		return nil, fmt.Errorf("%w: %s", upload.ErrInvalidImage, err.Error())
	}

	variants, err := s.processor.ProcessImage(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", upload.ErrInvalidImage, err.Error())
	}

	contentType := http.DetectContentType(data)
	ext, ok := extByContentType[contentType]
	if !ok {
		return nil, fmt.Errorf("%w: unsupported content type %s", upload.ErrInvalidImage, contentType)
	}

	prefix := fmt.Sprintf("uploads/%s", uuid.New().String())

	originalKey := fmt.Sprintf("%s/original.%s", prefix, ext)
	originalURL, err := s.storage.Upload(ctx, originalKey, data, contentType)
	if err != nil {
		return nil, err
	}

	result := &upload.Result{
		URL:      originalURL,
		Variants: make(map[string]string, len(variants)),
	}
	for name, body := range variants {
		key := fmt.Sprintf("%s/%s.jpg", prefix, name)
		url, err := s.storage.Upload(ctx, key, body, "image/jpeg")
		if err != nil {
			// Leave nothing half-written when a variant fails.
			if cleanupErr := s.storage.DeleteByPrefix(ctx, prefix); cleanupErr != nil {
				return nil, fmt.Errorf("upload failed: %v (cleanup also failed: %w)", err, cleanupErr)
			}
			return nil, err
		}
		result.Variants[name] = url
	}

	return result, nil
}
