package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/shopfront/admin-api/internal/core/domain"
	"github.com/shopfront/admin-api/internal/core/ports"
)

// DefaultMaxUploadBytes is the 5 MiB upload ceiling.
const DefaultMaxUploadBytes int64 = 5 << 20

const (
	msgInvalidImageType = "Please select a valid image file (JPEG, PNG, GIF, or WebP)"
	msgImageTooLarge    = "File size must be less than 5MB"
)

// ErrImageTooLarge is returned for files over the size cap.
var ErrImageTooLarge = domain.NewValidationError("file", msgImageTooLarge)

// imageTypes maps accepted MIME types to the extension stored on disk.
var imageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/jpg":  ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

type UploadService struct {
	store    ports.ImageStore
	maxBytes int64
	log      zerolog.Logger
	now      func() time.Time
}

func NewUploadService(store ports.ImageStore, maxBytes int64, log zerolog.Logger) *UploadService {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxUploadBytes
	}
	return &UploadService{store: store, maxBytes: maxBytes, log: log, now: time.Now}
}

// Upload validates an image by declared type, size and sniffed content, then
// stores it under a fresh collision-resistant name. The returned URL is
// accepted as a product image.
func (s *UploadService) Upload(ctx context.Context, input ports.UploadInput) (*ports.UploadResult, error) {
	if input.Content == nil || input.Size == 0 {
		return nil, domain.NewValidationError("file", "No file uploaded")
	}
	if _, ok := imageTypes[baseMediaType(input.ContentType)]; !ok {
		return nil, domain.NewValidationError("file", msgInvalidImageType)
	}
	if input.Size > s.maxBytes {
		return nil, ErrImageTooLarge
	}

	// The declared size is client supplied; read at most one byte past the cap.
	data, err := io.ReadAll(io.LimitReader(input.Content, s.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("upload: read: %w", err)
	}
	if int64(len(data)) > s.maxBytes {
		return nil, ErrImageTooLarge
	}

	ext, ok := sniffImage(data)
	if !ok {
		return nil, domain.NewValidationError("file", msgInvalidImageType)
	}

	name := fmt.Sprintf("%d-%s%s", s.now().UnixMilli(), uuid.NewString(), ext)
	url, err := s.store.Save(ctx, name, bytes.NewReader(data))
	if err != nil {
		s.log.Error().Err(err).Str("file", name).Msg("failed to store upload")
		return nil, fmt.Errorf("upload: save: %w", err)
	}

	s.log.Info().Str("file", name).Int("bytes", len(data)).Msg("image uploaded")
	return &ports.UploadResult{URL: url}, nil
}

// sniffImage detects the real content type and returns its extension when it
// is one of the accepted image types.
func sniffImage(data []byte) (string, bool) {
	mt := mimetype.Detect(data)
	for m := mt; m != nil; m = m.Parent() {
		if ext, ok := imageTypes[m.String()]; ok {
			return ext, true
		}
	}
	return "", false
}

func baseMediaType(contentType string) string {
	if i := strings.IndexByte(contentType, ';'); i >= 0 {
		contentType = contentType[:i]
	}
	return strings.ToLower(strings.TrimSpace(contentType))
}
