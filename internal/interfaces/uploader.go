package interfaces

import "context"

type Uploader interface {
	UploadBytes(ctx context.Context, folder string, filename string, b []byte) (UploadResult, error)
	Delete(ctx context.Context, publicID string) error
}

type UploadResult struct {
	URL      string
	PublicID string
}
