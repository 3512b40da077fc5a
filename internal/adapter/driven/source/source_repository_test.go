package source

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAWSRepository struct {
	objects map[string][]byte
	profile string
}

func (f *fakeAWSRepository) GetAWSProfiles() []string { return []string{"default"} }

func (f *fakeAWSRepository) GetAccountID(ctx context.Context, profile string) (string, error) {
	return "", errors.New("not used")
}

func (f *fakeAWSRepository) GetObject(ctx context.Context, profile, bucket, key string) ([]byte, error) {
	f.profile = profile
	data, ok := f.objects[bucket+"/"+key]
	if !ok {
		return nil, errors.New("NoSuchKey")
	}
	return data, nil
}

func TestReadEstimateLocalFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "estimate.csv")
	require.NoError(t, os.WriteFile(path, []byte("Detailed Estimate\n"), 0644))

	repo := NewSourceRepository(nil)
	data, err := repo.ReadEstimate(context.Background(), path, "")
	require.NoError(t, err)
	assert.Equal(t, "Detailed Estimate\n", string(data))

	_, err = repo.ReadEstimate(context.Background(), filepath.Join(t.TempDir(), "missing.csv"), "")
	assert.ErrorContains(t, err, "error accessing estimate file")

	_, err = repo.ReadEstimate(context.Background(), t.TempDir(), "")
	assert.ErrorContains(t, err, "is a directory")

	_, err = repo.ReadEstimate(context.Background(), "", "")
	assert.Error(t, err)
}

func TestReadEstimateStdin(t *testing.T) {
	repo := &SourceRepositoryImpl{stdin: strings.NewReader("Estimativa detalhada\n")}
	data, err := repo.ReadEstimate(context.Background(), "-", "")
	require.NoError(t, err)
	assert.Equal(t, "Estimativa detalhada\n", string(data))
}

func TestReadEstimateS3(t *testing.T) {
	fake := &fakeAWSRepository{objects: map[string][]byte{
		"estimates/clients/acme/export.csv": []byte("csv"),
	}}
	repo := NewSourceRepository(fake)

	data, err := repo.ReadEstimate(context.Background(), "s3://estimates/clients/acme/export.csv", "billing")
	require.NoError(t, err)
	assert.Equal(t, "csv", string(data))
	assert.Equal(t, "billing", fake.profile)

	_, err = repo.ReadEstimate(context.Background(), "s3://estimates/missing.csv", "")
	assert.ErrorContains(t, err, "NoSuchKey")
}

func TestParseS3Location(t *testing.T) {
	bucket, key, err := parseS3Location("s3://bucket/a/b.csv")
	require.NoError(t, err)
	assert.Equal(t, "bucket", bucket)
	assert.Equal(t, "a/b.csv", key)

	_, _, err = parseS3Location("s3://bucket")
	assert.Error(t, err)
	_, _, err = parseS3Location("s3:///key.csv")
	assert.Error(t, err)
}
