package scaffold

import (
	"fmt"
)

// EventKind identifies what a scaffold step did to one entry.
type EventKind string

const (
	// EventReplace means file contents were rewritten.
	EventReplace EventKind = "replace"
	// EventRename means a file or directory was renamed.
	EventRename EventKind = "rename"
	// EventAdd means a file was copied into the destination.
	EventAdd EventKind = "add"
	// EventMerge means a text file was replaced by a merged conflict file.
	EventMerge EventKind = "merge"
	// EventBinaryConflict means incoming bytes were saved to sidecar files.
	EventBinaryConflict EventKind = "binary-conflict"
	// EventSkip means an entry was left alone on purpose.
	EventSkip EventKind = "skip"
	// EventWarn means an entry failed and was skipped.
	EventWarn EventKind = "warn"
)

// Event describes the outcome for a single tree entry.
type Event struct {
	Kind   EventKind `yaml:"kind"`
	Path   string    `yaml:"path"`
	Target string    `yaml:"target,omitempty"`
	Note   string    `yaml:"note,omitempty"`
	Reason string    `yaml:"reason,omitempty"`
	DryRun bool      `yaml:"dry_run,omitempty"`
	Error  string    `yaml:"error,omitempty"`
	Err    error     `yaml:"-"`
}

// Tag returns the fixed console prefix for the event, for example "REPL:"
// or "DRY RENAME:".
func (e Event) Tag() string {
	var tag string
	switch e.Kind {
	case EventReplace:
		tag = "REPL:"
	case EventRename:
		tag = "RENAME:"
	case EventAdd:
		tag = "ADD:"
	case EventMerge:
		tag = "MERGE:"
	case EventBinaryConflict:
		tag = "BIN CONFLICT:"
	case EventSkip:
		tag = "SKIP:"
	case EventWarn:
		return "WARN:"
	}
	if e.DryRun {
		return "DRY " + tag
	}
	return tag
}

// String renders the event as a single console line.
func (e Event) String() string {
	switch e.Kind {
	case EventReplace:
		if e.DryRun {
			return fmt.Sprintf("%s Would update file: %s", e.Tag(), e.Path)
		}
		return fmt.Sprintf("%s Updated file: %s", e.Tag(), e.Path)
	case EventRename:
		return fmt.Sprintf("%s %s -> %s", e.Tag(), e.Path, e.Target)
	case EventAdd:
		if e.DryRun {
			return fmt.Sprintf("%s Would add %s", e.Tag(), e.Path)
		}
		return fmt.Sprintf("%s Added %s", e.Tag(), e.Path)
	case EventMerge:
		if e.DryRun {
			return fmt.Sprintf("%s Would merge %s", e.Tag(), e.Path)
		}
		return fmt.Sprintf("%s Merged %s (review conflict markers)", e.Tag(), e.Path)
	case EventBinaryConflict:
		if e.DryRun {
			return fmt.Sprintf("%s Would flag binary conflict %s (incoming -> %s)", e.Tag(), e.Path, e.Target)
		}
		return fmt.Sprintf("%s %s kept; incoming saved to %s, note at %s", e.Tag(), e.Path, e.Target, e.Note)
	case EventSkip:
		return fmt.Sprintf("%s %s (%s)", e.Tag(), e.Path, e.Reason)
	case EventWarn:
		subject := e.Path
		if e.Target != "" {
			subject += " -> " + e.Target
		}
		if e.Err != nil {
			return fmt.Sprintf("%s %s %s: %v", e.Tag(), e.Reason, subject, e.Err)
		}
		return fmt.Sprintf("%s %s %s", e.Tag(), e.Reason, subject)
	default:
		return fmt.Sprintf("%s %s", e.Kind, e.Path)
	}
}

// Sink receives events as they happen.
type Sink interface {
	Emit(e Event)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(e Event)

// Emit calls f(e).
func (f SinkFunc) Emit(e Event) {
	f(e)
}

// Conflict records a destination file that differed from the incoming one.
type Conflict struct {
	// Path is the destination file.
	Path string `yaml:"path"`
	// Binary is true when the incoming bytes went to a sidecar file.
	Binary bool `yaml:"binary"`
	// Incoming is the sidecar holding the incoming bytes (binary only).
	Incoming string `yaml:"incoming,omitempty"`
	// Note is the sidecar describing the conflict (binary only).
	Note string `yaml:"note,omitempty"`
}

// Report collects the per-entry outcomes of one or more scaffold steps.
type Report struct {
	Events []Event `yaml:"events"`
}

// Emit appends an event. Report is itself a Sink.
func (r *Report) Emit(e Event) {
	r.Events = append(r.Events, e)
}

// Append adds all events of other to r.
func (r *Report) Append(other *Report) {
	if other == nil {
		return
	}
	r.Events = append(r.Events, other.Events...)
}

// Count returns the number of events of the given kind.
func (r *Report) Count(kind EventKind) int {
	n := 0
	for _, e := range r.Events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// Warnings returns the events for entries that failed.
func (r *Report) Warnings() []Event {
	var out []Event
	for _, e := range r.Events {
		if e.Kind == EventWarn {
			out = append(out, e)
		}
	}
	return out
}

// Conflicts returns one record per merged or flagged destination file.
func (r *Report) Conflicts() []Conflict {
	var out []Conflict
	for _, e := range r.Events {
		switch e.Kind {
		case EventMerge:
			out = append(out, Conflict{Path: e.Path})
		case EventBinaryConflict:
			out = append(out, Conflict{Path: e.Path, Binary: true, Incoming: e.Target, Note: e.Note})
		}
	}
	return out
}

// recorder fans events out to the step report and an optional caller sink.
type recorder struct {
	report *Report
	sink   Sink
	dryRun bool
}

func newRecorder(opts Options) *recorder {
	return &recorder{report: &Report{}, sink: opts.Sink, dryRun: opts.DryRun || opts.LabelDryRun}
}

func (r *recorder) emit(e Event) {
	if e.Kind != EventWarn {
		e.DryRun = r.dryRun
	}
	r.report.Emit(e)
	if r.sink != nil {
		r.sink.Emit(e)
	}
}

func (r *recorder) warn(reason, path string, err error) {
	r.emit(warnEvent(reason, path, "", err))
}

// NewWarning builds a warn event for a failure outside the tree walks.
func NewWarning(reason, path string, err error) Event {
	return warnEvent(reason, path, "", err)
}

func warnEvent(reason, path, target string, err error) Event {
	e := Event{Kind: EventWarn, Path: path, Target: target, Reason: reason, Err: err}
	if err != nil {
		e.Error = err.Error()
	}
	return e
}

func (r *recorder) skip(path, reason string) {
	r.emit(Event{Kind: EventSkip, Path: path, Reason: reason})
}
