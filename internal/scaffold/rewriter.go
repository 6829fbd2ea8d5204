package scaffold

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/tacogips/liscaf/internal/debug"
	"github.com/tacogips/liscaf/internal/naming"
)

// Rewriter replaces name variants inside the files of a tree.
type Rewriter struct {
	replacer naming.Replacer
	opts     Options
}

// NewRewriter creates a Rewriter applying mappings with the given strategy.
func NewRewriter(mappings naming.MappingSet, strategy naming.Strategy, opts Options) *Rewriter {
	return &Rewriter{
		replacer: naming.NewReplacer(mappings, strategy),
		opts:     opts,
	}
}

// Rewrite visits every regular file under root and rewrites its contents.
// Files containing a NUL byte or invalid UTF-8 are skipped, and files are
// written only when their content changed. Per-file failures are reported
// as warnings; only an unreadable root is returned as an error.
func (r *Rewriter) Rewrite(root string) (*Report, error) {
	debug.DebugSection("[scaffold] Rewrite contents")
	debug.DebugValue("[scaffold] Root", root)

	if err := requireDir(root, "rewrite root"); err != nil {
		return nil, err
	}

	rec := newRecorder(r.opts)
	w := r.opts.writer()

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return newError(WalkFailed, "failed to walk directory", path, err)
			}
			rec.warn("Failed to read", path, err)
			return nil
		}
		if IsVCSPath(path) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		r.rewriteFile(path, d, w, rec)
		return nil
	})
	if err != nil {
		return rec.report, err
	}

	debug.Debug("[scaffold] Rewrite complete: %d files updated", rec.report.Count(EventReplace))
	return rec.report, nil
}

func (r *Rewriter) rewriteFile(path string, d fs.DirEntry, w Writer, rec *recorder) {
	content, err := os.ReadFile(path)
	if err != nil {
		rec.warn("Failed to read file", path, err)
		return
	}

	if reason := textSkipReason(content); reason != "" {
		debug.Debug("[scaffold] Skipping %s file: %s", reason, path)
		rec.skip(path, reason)
		return
	}

	updated := r.replacer.Replace(string(content))
	if updated == string(content) {
		return
	}

	if r.opts.DryRun {
		rec.emit(Event{Kind: EventReplace, Path: path})
		return
	}

	info, err := d.Info()
	if err != nil {
		rec.warn("Failed to stat file", path, err)
		return
	}
	if err := w.WriteFile(path, []byte(updated), info.Mode().Perm()); err != nil {
		rec.warn("Failed to write file", path, err)
		return
	}
	rec.emit(Event{Kind: EventReplace, Path: path})
}

// requireDir returns a configuration error unless path is an existing directory.
func requireDir(path, what string) error {
	info, err := os.Stat(path)
	if err != nil {
		return newError(ConfigurationError, what+" does not exist", path, err)
	}
	if !info.IsDir() {
		return newError(ConfigurationError, what+" is not a directory", path, nil)
	}
	return nil
}
