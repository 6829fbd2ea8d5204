package scaffold

import (
	"os"
	"path/filepath"

	"github.com/tacogips/liscaf/internal/debug"
)

// Writer performs the filesystem mutations of the scaffold steps.
type Writer interface {
	// WriteFile replaces the file at path with content.
	WriteFile(path string, content []byte, mode os.FileMode) error

	// CreateDir creates a directory and any necessary parent directories.
	CreateDir(path string) error

	// Rename moves oldPath to newPath.
	Rename(oldPath, newPath string) error
}

// FileWriter implements Writer on the local filesystem.
type FileWriter struct{}

// NewFileWriter creates a new FileWriter.
func NewFileWriter() Writer {
	return &FileWriter{}
}

// WriteFile writes content atomically through a temporary file in the same
// directory, then renames it over path. Parent directories are created.
func (w *FileWriter) WriteFile(path string, content []byte, mode os.FileMode) error {
	debug.Debug("[scaffold] Writing file: %s (size: %d bytes, mode: %o)", path, len(content), mode)

	dir := filepath.Dir(path)
	if err := w.CreateDir(dir); err != nil {
		return err
	}

	if mode&0600 == 0 {
		mode |= 0600
	}

	tmp, err := os.CreateTemp(dir, ".liscaf-*.tmp")
	if err != nil {
		return newError(WriteFailed, "failed to create temporary file", path, err)
	}
	tmpPath := tmp.Name()

	_, err = tmp.Write(content)
	closeErr := tmp.Close()
	if err != nil {
		_ = os.Remove(tmpPath)
		return newError(WriteFailed, "failed to write file content", path, err)
	}
	if closeErr != nil {
		_ = os.Remove(tmpPath)
		return newError(WriteFailed, "failed to close file", path, closeErr)
	}

	if err := os.Chmod(tmpPath, mode.Perm()); err != nil {
		_ = os.Remove(tmpPath)
		return newError(WriteFailed, "failed to set permissions", path, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return newError(WriteFailed, "failed to rename temporary file", path, err)
	}

	return nil
}

// CreateDir creates a directory and any necessary parent directories.
func (w *FileWriter) CreateDir(path string) error {
	if err := os.MkdirAll(path, 0755); err != nil {
		return newError(WriteFailed, "failed to create directory", path, err)
	}
	return nil
}

// Rename moves oldPath to newPath.
func (w *FileWriter) Rename(oldPath, newPath string) error {
	debug.Debug("[scaffold] Renaming: %s -> %s", oldPath, newPath)
	if err := os.Rename(oldPath, newPath); err != nil {
		return newError(RenameFailed, "failed to rename", oldPath, err)
	}
	return nil
}

// exists reports whether anything (including a dangling symlink) is at path.
func exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}
