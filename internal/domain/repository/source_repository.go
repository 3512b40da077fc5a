package repository

import (
	"context"
)

// SourceRepository reads the raw bytes of a calculator export from a local path or an s3:// URL.
type SourceRepository interface {
	ReadEstimate(ctx context.Context, location, profile string) ([]byte, error)
}
