// Package source materializes template repositories on disk and turns a
// finished scaffold into a fresh repository.
package source

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/tacogips/liscaf/internal/debug"
)

// Cloner materializes the working tree of a repository into dir.
// dir must not exist yet; it is created by the clone.
type Cloner interface {
	Clone(ctx context.Context, url, dir string) error
}

// RepoInitializer creates a new repository in dir holding a single commit
// with every file of the tree.
type RepoInitializer interface {
	Init(ctx context.Context, dir, message string) error
}

// VCSDir is the metadata directory removed after cloning and skipped by
// every scaffold walk.
const VCSDir = ".git"

// RemoveVCSMetadata deletes dir/.git so the scaffold is unlinked from the
// template's history. It reports whether the directory was present.
func RemoveVCSMetadata(dir string) (bool, error) {
	gitDir := filepath.Join(dir, VCSDir)
	if _, err := os.Lstat(gitDir); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	debug.Debug("[source] Removing %s", gitDir)
	if err := os.RemoveAll(gitDir); err != nil {
		return true, err
	}
	return true, nil
}
