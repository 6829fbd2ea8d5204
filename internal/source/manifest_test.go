package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseManifest(t *testing.T) {
	t.Parallel()

	input := `# templates
  Go service | https://github.com/acme/go-service  

web = github.com/acme/web
https://github.com/acme/bare
https://example.com/archive?ref=main
label-only|
`
	entries, err := ParseManifest(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []ManifestEntry{
		{Label: "Go service", URL: "https://github.com/acme/go-service"},
		{Label: "web", URL: "github.com/acme/web"},
		{Label: "https://github.com/acme/bare", URL: "https://github.com/acme/bare"},
		{Label: "https://example.com/archive?ref=main", URL: "https://example.com/archive?ref=main"},
	}, entries)
}

func TestParseManifest_Empty(t *testing.T) {
	t.Parallel()

	entries, err := ParseManifest(strings.NewReader("\n# nothing\n"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestFetchManifest(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/templates.txt":
			assert.Equal(t, http.MethodGet, r.Method)
			_, _ = w.Write([]byte("api|owner/api\n"))
		case "/broken":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	client := NewHTTPClient(5 * time.Second)
	ctx := context.Background()

	entries, err := FetchManifest(ctx, client, srv.URL+"/templates.txt")
	require.NoError(t, err)
	assert.Equal(t, []ManifestEntry{{Label: "api", URL: "owner/api"}}, entries)

	_, err = FetchManifest(ctx, client, srv.URL+"/missing")
	var srcErr *Error
	require.ErrorAs(t, err, &srcErr)
	assert.Equal(t, NotFound, srcErr.Type)

	_, err = FetchManifest(ctx, client, srv.URL+"/broken")
	require.ErrorAs(t, err, &srcErr)
	assert.Equal(t, FetchFailed, srcErr.Type)
	assert.Contains(t, err.Error(), "500")
}
