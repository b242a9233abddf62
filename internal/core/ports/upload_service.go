package ports

import (
	"context"
	"io"
)

// UploadInput describes a single uploaded file as declared by the client.
type UploadInput struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// UploadResult is the public reference to a stored file.
type UploadResult struct {
	URL string
}

// ImageStore persists uploaded bytes under a given name and returns the
// public path they are served from.
type ImageStore interface {
	Save(ctx context.Context, name string, r io.Reader) (string, error)
}

type UploadService interface {
	Upload(ctx context.Context, input UploadInput) (*UploadResult, error)
}
