package scaffold

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tacogips/liscaf/internal/debug"
	"github.com/tacogips/liscaf/internal/naming"
)

// Renamer renames files and directories whose names contain a mapped variant.
type Renamer struct {
	replacer naming.Replacer
	opts     Options
}

// NewRenamer creates a Renamer applying mappings with the given strategy.
func NewRenamer(mappings naming.MappingSet, strategy naming.Strategy, opts Options) *Renamer {
	return &Renamer{
		replacer: naming.NewReplacer(mappings, strategy),
		opts:     opts,
	}
}

// Rename renames every entry below root whose base name changes under the
// mappings. Entries are processed deepest first so that renaming a directory
// never invalidates a path collected for one of its children. When the new
// name is taken, "_1", "_2", ... is appended to it. root itself is never
// renamed.
func (r *Renamer) Rename(root string) (*Report, error) {
	debug.DebugSection("[scaffold] Rename paths")
	debug.DebugValue("[scaffold] Root", root)

	if err := requireDir(root, "rename root"); err != nil {
		return nil, err
	}

	rec := newRecorder(r.opts)

	paths, err := collectPaths(root, rec)
	if err != nil {
		return rec.report, err
	}
	sortDeepestFirst(paths)

	w := r.opts.writer()
	claimed := make(map[string]bool)

	for _, path := range paths {
		name := filepath.Base(path)
		newName := r.replacer.Replace(name)
		if newName == name {
			continue
		}

		target := freePath(filepath.Dir(path), newName, claimed)
		claimed[target] = true

		if r.opts.DryRun {
			rec.emit(Event{Kind: EventRename, Path: path, Target: target})
			continue
		}
		if err := w.Rename(path, target); err != nil {
			rec.emit(warnEvent("Failed to rename", path, target, err))
			continue
		}
		rec.emit(Event{Kind: EventRename, Path: path, Target: target})
	}

	debug.Debug("[scaffold] Rename complete: %d paths renamed", rec.report.Count(EventRename))
	return rec.report, nil
}

// collectPaths lists every entry below root, excluding root and VCS metadata.
func collectPaths(root string, rec *recorder) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return newError(WalkFailed, "failed to walk directory", path, err)
			}
			rec.warn("Failed to read", path, err)
			return nil
		}
		if path == root {
			return nil
		}
		if IsVCSPath(path) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	return paths, err
}

// sortDeepestFirst orders paths by descending depth. Paths of equal depth
// keep their lexical walk order.
func sortDeepestFirst(paths []string) {
	sort.SliceStable(paths, func(i, j int) bool {
		return depth(paths[i]) > depth(paths[j])
	})
}

func depth(path string) int {
	return strings.Count(filepath.ToSlash(filepath.Clean(path)), "/")
}

// freePath returns dir/name, or dir/name_N for the lowest N >= 1 such that
// the path neither exists nor was handed out earlier in this run.
func freePath(dir, name string, claimed map[string]bool) string {
	candidate := filepath.Join(dir, name)
	for i := 1; exists(candidate) || claimed[candidate]; i++ {
		candidate = filepath.Join(dir, fmt.Sprintf("%s_%d", name, i))
	}
	return candidate
}
