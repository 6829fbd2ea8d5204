package source

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tacogips/liscaf/internal/debug"
)

// ManifestEntry is one template listed in a manifest.
type ManifestEntry struct {
	Label string
	URL   string
}

// ParseManifest reads a line-oriented manifest. Blank lines and lines
// starting with "#" are ignored. Every other line is "label|url",
// "label=url" or a bare URL whose label is the URL itself. An "=" preceded
// by a "/" belongs to the URL's query and does not start a label.
func ParseManifest(r io.Reader) ([]ManifestEntry, error) {
	var entries []ManifestEntry

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		label, url := line, line
		if l, u, ok := strings.Cut(line, "|"); ok {
			label, url = l, u
		} else if l, u, ok := strings.Cut(line, "="); ok && !strings.Contains(l, "/") {
			label, url = l, u
		}
		label, url = strings.TrimSpace(label), strings.TrimSpace(url)
		if url == "" {
			debug.Debug("[source] Skipping manifest line without URL: %q", line)
			continue
		}
		if label == "" {
			label = url
		}
		entries = append(entries, ManifestEntry{Label: label, URL: url})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	return entries, nil
}

// NewHTTPClient returns the client used for manifest requests.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

// FetchManifest downloads and parses the manifest at url with a single GET.
func FetchManifest(ctx context.Context, client *http.Client, url string) ([]ManifestEntry, error) {
	debug.Debug("[source] Fetching manifest: %s", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, NewError(InvalidURL, url, "invalid manifest URL", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, NewError(FetchFailed, url, "failed to fetch manifest", err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, NewError(NotFound, url, "manifest not found", nil)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, NewError(FetchFailed, url,
			fmt.Sprintf("unexpected status code: %d", resp.StatusCode), nil)
	}

	entries, err := ParseManifest(resp.Body)
	if err != nil {
		return nil, NewError(FetchFailed, url, "failed to parse manifest", err)
	}
	debug.Debug("[source] Manifest lists %d templates", len(entries))
	return entries, nil
}
