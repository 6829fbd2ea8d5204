package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/tacogips/liscaf/internal/debug"
)

// LocalCloner "clones" a template that already exists on disk by copying its
// tree, including any .git directory.
type LocalCloner struct{}

// NewLocalCloner creates a LocalCloner.
func NewLocalCloner() *LocalCloner {
	return &LocalCloner{}
}

// Clone copies the directory named by url (a path or file:// URL) into dir.
func (c *LocalCloner) Clone(ctx context.Context, url, dir string) error {
	src, err := LocalPath(url)
	if err != nil {
		return err
	}
	debug.Debug("[source] Copying local template %s -> %s", src, dir)

	info, err := os.Stat(src)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return NewError(NotFound, url, "template directory not found", err)
		}
		return NewError(FetchFailed, url, "failed to stat template directory", err)
	}
	if !info.IsDir() {
		return NewError(NotFound, url, "template path is not a directory", nil)
	}
	if _, err := os.Lstat(dir); err == nil {
		return NewError(FetchFailed, url, "clone target already exists: "+dir, nil)
	}

	err = filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dir, rel)

		info, err := d.Info()
		if err != nil {
			return err
		}

		switch {
		case d.IsDir():
			return os.MkdirAll(target, info.Mode().Perm()|0700)
		case d.Type()&fs.ModeSymlink != 0:
			link, err := os.Readlink(path)
			if err != nil {
				return err
			}
			return os.Symlink(link, target)
		case d.Type().IsRegular():
			return copyFile(path, target, info.Mode().Perm())
		default:
			debug.Debug("[source] Skipping non-regular file: %s", path)
			return nil
		}
	})
	if err != nil {
		_ = os.RemoveAll(dir)
		return NewError(FetchFailed, url, "failed to copy template", err)
	}
	return nil
}

func copyFile(src, dst string, mode os.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open source file: %w", err)
	}
	defer func() { _ = in.Close() }()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return fmt.Errorf("failed to create destination file: %w", err)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return fmt.Errorf("failed to copy file content: %w", err)
	}
	return out.Close()
}

// ClonerFor picks the cloner for a normalized URL: local paths are copied,
// everything else goes through git.
func ClonerFor(url string, git Cloner) Cloner {
	if IsLocalPath(url) {
		return NewLocalCloner()
	}
	return git
}
