package version

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatVersion(t *testing.T) {
	origVersion, origCommit, origBuild := Version, Commit, BuildTime
	defer func() { Version, Commit, BuildTime = origVersion, origCommit, origBuild }()

	Version, Commit, BuildTime = "1.2.0", "", ""
	assert.Equal(t, "1.2.0 (development)", FormatVersion())

	Commit = "abc1234"
	assert.Equal(t, "1.2.0 (commit: abc1234)", FormatVersion())

	BuildTime = "2026-10-01T10:00:00Z"
	assert.Equal(t, "1.2.0 (commit: abc1234, built at: 2026-10-01T10:00:00Z)", FormatVersion())

	Version = ""
	assert.Equal(t, "0.0.0-dev (commit: abc1234, built at: 2026-10-01T10:00:00Z)", FormatVersion())
}

func TestIsNewer(t *testing.T) {
	tests := []struct {
		latest, current string
		want            bool
	}{
		{"1.10.0", "1.9.0", true},
		{"1.9.0", "1.10.0", false},
		{"2.0.0", "1.99.99", true},
		{"1.2.0", "1.2.0", false},
		{"1.2.0", "1.2.0-dirty", true},
		{"1.2.0-rc1", "1.2.0", false},
		{"v1.3", "1.2.9", true},
		{"1.2.0+build.5", "1.1.0", true},
		{"latest", "1.0.0", false},
		{"1.0.0", "garbage", false},
	}

	for _, tt := range tests {
		t.Run(tt.latest+"_vs_"+tt.current, func(t *testing.T) {
			assert.Equal(t, tt.want, IsNewer(tt.latest, tt.current))
		})
	}
}

func releaseServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/vnd.github+json", r.Header.Get("Accept"))
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestUpdateCheckerCheck(t *testing.T) {
	ctx := context.Background()

	srv := releaseServer(t, http.StatusOK, `{"tag_name":"v1.10.0"}`)
	latest, newer, err := NewUpdateChecker(srv.URL).Check(ctx, "1.9.0")
	require.NoError(t, err)
	assert.Equal(t, "1.10.0", latest)
	assert.True(t, newer)

	latest, newer, err = NewUpdateChecker(srv.URL).Check(ctx, "1.10.0")
	require.NoError(t, err)
	assert.Equal(t, "1.10.0", latest)
	assert.False(t, newer)

	// builds de desenvolvimento e URL vazia não fazem requisição
	latest, newer, err = NewUpdateChecker("http://127.0.0.1:1").Check(ctx, "0.0.0-dev")
	require.NoError(t, err)
	assert.Empty(t, latest)
	assert.False(t, newer)
	_, newer, err = NewUpdateChecker("").Check(ctx, "1.0.0")
	require.NoError(t, err)
	assert.False(t, newer)
}

func TestUpdateCheckerErrors(t *testing.T) {
	ctx := context.Background()

	_, _, err := NewUpdateChecker(releaseServer(t, http.StatusNotFound, `{}`).URL).Check(ctx, "1.0.0")
	assert.ErrorContains(t, err, "404")

	_, _, err = NewUpdateChecker(releaseServer(t, http.StatusOK, `not json`).URL).Check(ctx, "1.0.0")
	assert.ErrorContains(t, err, "error decoding release response")

	_, _, err = NewUpdateChecker(releaseServer(t, http.StatusOK, `{"name":"x"}`).URL).Check(ctx, "1.0.0")
	assert.ErrorContains(t, err, "no tag_name")
}

func TestReleaseURLFromEnv(t *testing.T) {
	t.Setenv(ReleaseURLEnv, " https://example.test/releases/latest ")
	assert.Equal(t, "https://example.test/releases/latest", ReleaseURLFromEnv())

	t.Setenv(ReleaseURLEnv, "OFF")
	assert.Empty(t, ReleaseURLFromEnv())
}
