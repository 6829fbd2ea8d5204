package app

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/tacogips/liscaf/internal/debug"
	"github.com/tacogips/liscaf/internal/source"
)

// LoadManifest returns the templates listed in the manifest at location,
// which is an http(s) URL or a local file.
func LoadManifest(ctx context.Context, location string, timeout time.Duration) ([]source.ManifestEntry, error) {
	debug.DebugValue("[app] Manifest", location)

	var (
		entries []source.ManifestEntry
		err     error
	)
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		entries, err = source.FetchManifest(ctx, source.NewHTTPClient(timeout), location)
	} else {
		entries, err = readManifestFile(location)
	}
	if err != nil {
		return nil, NewAppError(ManifestFailed, "failed to load template manifest", err)
	}
	if len(entries) == 0 {
		return nil, NewAppError(ManifestFailed, "template manifest lists no templates: "+location, nil)
	}
	return entries, nil
}

func readManifestFile(location string) ([]source.ManifestEntry, error) {
	path, err := source.LocalPath(location)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, source.NewError(source.NotFound, location, "failed to open manifest", err)
	}
	defer func() { _ = f.Close() }()
	return source.ParseManifest(f)
}
