package app

import (
	"bytes"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/tacogips/liscaf/internal/debug"
	"github.com/tacogips/liscaf/internal/scaffold"
)

// RunReport is the document written by WriteReport.
type RunReport struct {
	GeneratedAt time.Time           `yaml:"generated_at"`
	Result      ScaffoldResult      `yaml:"result"`
	Summary     Summary             `yaml:"summary"`
	Conflicts   []scaffold.Conflict `yaml:"conflicts,omitempty"`
}

// Summary counts events by kind.
type Summary struct {
	Replaced        int `yaml:"replaced"`
	Renamed         int `yaml:"renamed"`
	Added           int `yaml:"added"`
	Merged          int `yaml:"merged"`
	BinaryConflicts int `yaml:"binary_conflicts"`
	Skipped         int `yaml:"skipped"`
	Warnings        int `yaml:"warnings"`
}

// Summarize counts the events of report by kind.
func Summarize(report *scaffold.Report) Summary {
	if report == nil {
		return Summary{}
	}
	return Summary{
		Replaced:        report.Count(scaffold.EventReplace),
		Renamed:         report.Count(scaffold.EventRename),
		Added:           report.Count(scaffold.EventAdd),
		Merged:          report.Count(scaffold.EventMerge),
		BinaryConflicts: report.Count(scaffold.EventBinaryConflict),
		Skipped:         report.Count(scaffold.EventSkip),
		Warnings:        report.Count(scaffold.EventWarn),
	}
}

// WriteReport writes result as YAML to path.
func WriteReport(path string, result *ScaffoldResult, now time.Time) error {
	debug.DebugValue("[app] Report path", path)

	doc := RunReport{
		GeneratedAt: now.UTC(),
		Result:      *result,
		Summary:     Summarize(result.Report),
		Conflicts:   result.Report.Conflicts(),
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return NewAppError(ReportFailed, "failed to encode report", err)
	}
	if err := enc.Close(); err != nil {
		return NewAppError(ReportFailed, "failed to encode report", err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return NewAppError(ReportFailed, "failed to resolve report path", err)
	}
	if err := scaffold.NewFileWriter().WriteFile(abs, buf.Bytes(), 0644); err != nil {
		return NewAppError(ReportFailed, "failed to write report", err)
	}
	return nil
}

// ReadReport parses a report written by WriteReport.
func ReadReport(data []byte) (*RunReport, error) {
	var doc RunReport
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, NewAppError(ReportFailed, "failed to parse report", err)
	}
	return &doc, nil
}
