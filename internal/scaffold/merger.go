package scaffold

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/tacogips/liscaf/internal/debug"
)

// Sidecar suffixes used for binary conflicts.
const (
	IncomingSuffix = ".liscaf-incoming"
	ConflictSuffix = ".liscaf-conflict"
)

// Conflict markers written into merged text files.
const (
	markerExisting  = "<<<<<<< EXISTING"
	markerSeparator = "======="
	markerTemplate  = ">>>>>>> TEMPLATE"
)

// Merger merges a scaffold tree into an existing destination directory.
type Merger struct {
	opts Options
}

// NewMerger creates a Merger.
func NewMerger(opts Options) *Merger {
	return &Merger{opts: opts}
}

// Merge copies every file of source into dest. New files are added,
// identical files are left alone, divergent text files are replaced by a
// file holding both versions between conflict markers, and divergent binary
// files are kept while the incoming bytes go to sidecar files.
//
// dest must be an existing directory; otherwise a ConfigurationError is
// returned before anything is written.
func (m *Merger) Merge(source, dest string) (*Report, error) {
	debug.DebugSection("[scaffold] Merge into destination")
	debug.DebugValue("[scaffold] Source", source)
	debug.DebugValue("[scaffold] Destination", dest)

	if err := requireDir(dest, "destination directory"); err != nil {
		return nil, err
	}
	if err := requireDir(source, "scaffold directory"); err != nil {
		return nil, err
	}

	if !m.opts.DryRun {
		lock, err := LockDestination(dest)
		if err != nil {
			return nil, err
		}
		defer func() {
			if err := lock.Release(); err != nil {
				debug.Debug("[scaffold] %v", err)
			}
		}()
	}

	rec := newRecorder(m.opts)
	w := m.opts.writer()

	err := filepath.WalkDir(source, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == source {
				return newError(WalkFailed, "failed to walk directory", path, err)
			}
			rec.warn("Failed to read", path, err)
			return nil
		}

		rel, err := filepath.Rel(source, path)
		if err != nil {
			rec.warn("Failed to resolve relative path", path, err)
			return nil
		}
		if rel == "." {
			return nil
		}
		if IsVCSPath(path) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		target := filepath.Join(dest, rel)

		if d.IsDir() {
			if m.opts.DryRun {
				return nil
			}
			if err := w.CreateDir(target); err != nil {
				rec.warn("Failed to create directory", target, err)
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() || d.Name() == LockFileName {
			return nil
		}

		m.mergeFile(path, target, rel, d, w, rec)
		return nil
	})
	if err != nil {
		return rec.report, err
	}

	debug.Debug("[scaffold] Merge complete: %d added, %d merged, %d binary conflicts",
		rec.report.Count(EventAdd), rec.report.Count(EventMerge), rec.report.Count(EventBinaryConflict))
	return rec.report, nil
}

func (m *Merger) mergeFile(path, target, rel string, d fs.DirEntry, w Writer, rec *recorder) {
	incoming, err := os.ReadFile(path)
	if err != nil {
		rec.warn("Failed to read file", path, err)
		return
	}
	info, err := d.Info()
	if err != nil {
		rec.warn("Failed to stat file", path, err)
		return
	}

	targetInfo, err := os.Stat(target)
	if errors.Is(err, fs.ErrNotExist) {
		if !m.opts.DryRun {
			if err := w.WriteFile(target, incoming, info.Mode().Perm()); err != nil {
				rec.warn("Failed to write file", target, err)
				return
			}
		}
		rec.emit(Event{Kind: EventAdd, Path: target})
		return
	}
	if err != nil {
		rec.warn("Failed to stat file", target, err)
		return
	}
	if targetInfo.IsDir() {
		rec.warn("Destination is a directory, cannot place file", target, nil)
		return
	}

	existing, err := os.ReadFile(target)
	if err != nil {
		rec.warn("Failed to read file", target, err)
		return
	}

	if bytes.Equal(existing, incoming) {
		rec.skip(target, "identical")
		return
	}

	if IsText(existing) && IsText(incoming) {
		if !m.opts.DryRun {
			merged := MergeText(rel, existing, incoming)
			if err := w.WriteFile(target, merged, targetInfo.Mode().Perm()); err != nil {
				rec.warn("Failed to write file", target, err)
				return
			}
		}
		rec.emit(Event{Kind: EventMerge, Path: target})
		return
	}

	incomingPath := freeSidecar(target + IncomingSuffix)
	notePath := freeSidecar(target + ConflictSuffix)

	if !m.opts.DryRun {
		if err := w.WriteFile(incomingPath, incoming, info.Mode().Perm()); err != nil {
			rec.warn("Failed to write file", incomingPath, err)
			return
		}
		if err := w.WriteFile(notePath, conflictNote(target, incomingPath), 0644); err != nil {
			rec.warn("Failed to write file", notePath, err)
			return
		}
	}
	rec.emit(Event{Kind: EventBinaryConflict, Path: target, Target: incomingPath, Note: notePath})
}

// MergeText renders both versions of a file between labeled conflict markers.
func MergeText(label string, existing, incoming []byte) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s (%s)\n", markerExisting, filepath.ToSlash(label))
	writeSection(&buf, existing)
	buf.WriteString(markerSeparator + "\n")
	writeSection(&buf, incoming)
	buf.WriteString(markerTemplate + "\n")
	return buf.Bytes()
}

func writeSection(buf *bytes.Buffer, content []byte) {
	buf.Write(content)
	if len(content) > 0 && content[len(content)-1] != '\n' {
		buf.WriteByte('\n')
	}
}

// freeSidecar returns base if nothing is there, otherwise base1, base2, ...
func freeSidecar(base string) string {
	candidate := base
	for i := 1; exists(candidate); i++ {
		candidate = base + strconv.Itoa(i)
	}
	return candidate
}

func conflictNote(target, incoming string) []byte {
	return []byte(fmt.Sprintf(`liscaf binary conflict

The template provides a different version of a file that already exists and
is not text, so it could not be merged.

Existing file (left untouched): %s
Incoming template version:      %s

Keep one version, delete the other file, then delete this note.
`, target, incoming))
}
