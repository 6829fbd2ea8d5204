package scaffold

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeTree creates files under root from a map of slash-separated relative
// paths to contents.
func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
}

// readTree returns every regular file under root keyed by slash-separated
// relative path.
func readTree(t *testing.T, root string) map[string]string {
	t.Helper()
	out := map[string]string{}
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		out[filepath.ToSlash(rel)] = string(data)
		return nil
	})
	require.NoError(t, err)
	return out
}

func eventKinds(r *Report) []EventKind {
	var kinds []EventKind
	for _, e := range r.Events {
		kinds = append(kinds, e.Kind)
	}
	return kinds
}

// failingWriter delegates to a FileWriter but fails renames of one path.
type failingWriter struct {
	Writer
	failRename string
}

func (w failingWriter) Rename(oldPath, newPath string) error {
	if filepath.Base(oldPath) == w.failRename {
		return newError(RenameFailed, "injected failure", oldPath, nil)
	}
	return w.Writer.Rename(oldPath, newPath)
}
