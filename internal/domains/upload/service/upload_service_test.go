package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"authorsite-backend/internal/domains/upload"
	"authorsite-backend/internal/infrastructure/storage"
)

// Storage is nil in these tests: every rejection path must return
// before anything would be written.

func TestUpload_EmptyPayload(t *testing.T) {
	svc := NewUploadService(nil, storage.NewImageProcessor(1024))

	_, err := svc.Upload(context.Background(), nil)
	assert.ErrorIs(t, err, upload.ErrMissingFile)
}

func TestUpload_RejectsNonImage(t *testing.T) {
	svc := NewUploadService(nil, storage.NewImageProcessor(1024*1024))

	_, err := svc.Upload(context.Background(), []byte("<html>not an image</html>"))
	assert.ErrorIs(t, err, upload.ErrInvalidImage)
}

func TestUpload_RejectsOversize(t *testing.T) {
	svc := NewUploadService(nil, storage.NewImageProcessor(16))

	_, err := svc.Upload(context.Background(), make([]byte, 64))
	assert.ErrorIs(t, err, upload.ErrInvalidImage)
}
