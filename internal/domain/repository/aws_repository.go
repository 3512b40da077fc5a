package repository

import (
	"context"
)

// AWSRepository defines the interface for AWS API interactions.
type AWSRepository interface {
	// Profile Operations
	GetAWSProfiles() []string
	GetAccountID(ctx context.Context, profile string) (string, error)

	// S3 Operations
	GetObject(ctx context.Context, profile, bucket, key string) ([]byte, error)
}
