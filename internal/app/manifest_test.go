package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tacogips/liscaf/internal/source"
)

func TestLoadManifest_HTTP(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("# liscaf templates\nGo service|acme/go-service\nweb=https://github.com/acme/web\n"))
	}))
	defer srv.Close()

	entries, err := LoadManifest(context.Background(), srv.URL+"/manifest.txt", time.Second)
	require.NoError(t, err)
	assert.Equal(t, []source.ManifestEntry{
		{Label: "Go service", URL: "acme/go-service"},
		{Label: "web", URL: "https://github.com/acme/web"},
	}, entries)
}

func TestLoadManifest_LocalFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "manifest.txt")
	require.NoError(t, os.WriteFile(path, []byte("https://github.com/acme/cli\n"), 0644))

	entries, err := LoadManifest(context.Background(), path, time.Second)
	require.NoError(t, err)
	assert.Equal(t, []source.ManifestEntry{{Label: "https://github.com/acme/cli", URL: "https://github.com/acme/cli"}}, entries)
}

func TestLoadManifest_Errors(t *testing.T) {
	t.Parallel()

	empty := filepath.Join(t.TempDir(), "empty.txt")
	require.NoError(t, os.WriteFile(empty, []byte("# nothing yet\n"), 0644))

	for _, location := range []string{empty, filepath.Join(t.TempDir(), "missing.txt")} {
		_, err := LoadManifest(context.Background(), location, time.Second)
		var appErr *AppError
		require.ErrorAs(t, err, &appErr, location)
		assert.Equal(t, ManifestFailed, appErr.Type)
	}
}
