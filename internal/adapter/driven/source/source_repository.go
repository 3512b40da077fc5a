package source

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/diillson/aws-reservation-summary/internal/domain/repository"
)

const s3Scheme = "s3://"

// stdinLocation lê a exportação da entrada padrão.
const stdinLocation = "-"

// SourceRepositoryImpl implementa o SourceRepository para arquivos locais e objetos S3.
type SourceRepositoryImpl struct {
	awsRepo repository.AWSRepository
	stdin   io.Reader
}

// NewSourceRepository cria um SourceRepository; awsRepo é usado apenas para locais s3://.
func NewSourceRepository(awsRepo repository.AWSRepository) repository.SourceRepository {
	return &SourceRepositoryImpl{awsRepo: awsRepo, stdin: os.Stdin}
}

// ReadEstimate lê a exportação em location: caminho local, "-" para stdin ou s3://bucket/key.
func (r *SourceRepositoryImpl) ReadEstimate(ctx context.Context, location, profile string) ([]byte, error) {
	switch {
	case location == "":
		return nil, fmt.Errorf("no estimate file given")
	case location == stdinLocation:
		data, err := io.ReadAll(r.stdin)
		if err != nil {
			return nil, fmt.Errorf("error reading estimate from stdin: %w", err)
		}
		return data, nil
	case strings.HasPrefix(location, s3Scheme):
		bucket, key, err := parseS3Location(location)
		if err != nil {
			return nil, err
		}
		if r.awsRepo == nil {
			return nil, fmt.Errorf("s3 input is not available: %s", location)
		}
		return r.awsRepo.GetObject(ctx, profile, bucket, key)
	default:
		return readLocalFile(location)
	}
}

func readLocalFile(path string) ([]byte, error) {
	fileInfo, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error accessing estimate file: %w", err)
	}
	if fileInfo.IsDir() {
		return nil, fmt.Errorf("%s is a directory, not a file", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading estimate file: %w", err)
	}
	return data, nil
}

// parseS3Location separa s3://bucket/key/with/slashes em bucket e key.
func parseS3Location(location string) (string, string, error) {
	u, err := url.Parse(location)
	if err != nil {
		return "", "", fmt.Errorf("invalid s3 location %q: %w", location, err)
	}
	key := strings.TrimPrefix(u.Path, "/")
	if u.Host == "" || key == "" {
		return "", "", fmt.Errorf("invalid s3 location %q: expected s3://bucket/key", location)
	}
	return u.Host, key, nil
}
