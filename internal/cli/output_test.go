package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tacogips/liscaf/internal/app"
	"github.com/tacogips/liscaf/internal/naming"
	"github.com/tacogips/liscaf/internal/scaffold"
)

func newTestPrinter(quiet, verbose, useColor bool) (*printer, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return newPrinter(&out, &errOut, quiet, verbose, useColor), &out, &errOut
}

func TestPrinter_EmitLines(t *testing.T) {
	tests := []struct {
		name  string
		event scaffold.Event
		want  string
	}{
		{
			name:  "replace",
			event: scaffold.Event{Kind: scaffold.EventReplace, Path: "/tmp/repo/README.md"},
			want:  "REPL: Updated file: /tmp/repo/README.md\n",
		},
		{
			name:  "dry replace",
			event: scaffold.Event{Kind: scaffold.EventReplace, Path: "/tmp/repo/README.md", DryRun: true},
			want:  "DRY REPL: Would update file: /tmp/repo/README.md\n",
		},
		{
			name:  "rename",
			event: scaffold.Event{Kind: scaffold.EventRename, Path: "/r/acme-app", Target: "/r/shiny-app"},
			want:  "RENAME: /r/acme-app -> /r/shiny-app\n",
		},
		{
			name:  "add",
			event: scaffold.Event{Kind: scaffold.EventAdd, Path: "/dst/main.go"},
			want:  "ADD: Added /dst/main.go\n",
		},
		{
			name:  "merge",
			event: scaffold.Event{Kind: scaffold.EventMerge, Path: "/dst/README.md"},
			want:  "MERGE: Merged /dst/README.md (review conflict markers)\n",
		},
		{
			name: "binary conflict",
			event: scaffold.Event{Kind: scaffold.EventBinaryConflict, Path: "/dst/logo.png",
				Target: "/dst/logo.png.liscaf-incoming", Note: "/dst/logo.png.liscaf-conflict"},
			want: "BIN CONFLICT: /dst/logo.png kept; incoming saved to /dst/logo.png.liscaf-incoming, note at /dst/logo.png.liscaf-conflict\n",
		},
		{
			name:  "warning",
			event: scaffold.NewWarning("Failed to read file", "/r/locked", errors.New("permission denied")),
			want:  "WARN: Failed to read file /r/locked: permission denied\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, out, _ := newTestPrinter(false, false, false)
			p.Emit(tt.event)
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestPrinter_SkipOnlyWhenVerbose(t *testing.T) {
	skip := scaffold.Event{Kind: scaffold.EventSkip, Path: "/r/logo.png", Reason: "binary"}

	p, out, _ := newTestPrinter(false, false, false)
	p.Emit(skip)
	assert.Empty(t, out.String())

	p, out, _ = newTestPrinter(false, true, false)
	p.Emit(skip)
	assert.Equal(t, "SKIP: /r/logo.png (binary)\n", out.String())
}

func TestPrinter_Quiet(t *testing.T) {
	p, out, errOut := newTestPrinter(true, true, false)
	p.Emit(scaffold.Event{Kind: scaffold.EventReplace, Path: "/r/a"})
	p.progress("Cloning")
	p.info("info")
	p.errorMsg("failed")

	assert.Empty(t, out.String())
	assert.Equal(t, "✗ failed\n", errOut.String())
}

func TestPrinter_Color(t *testing.T) {
	p, out, _ := newTestPrinter(false, false, true)
	p.Emit(scaffold.Event{Kind: scaffold.EventAdd, Path: "/dst/a"})

	assert.Contains(t, out.String(), "\x1b[")
	assert.True(t, strings.HasSuffix(out.String(), " Added /dst/a\n"))
}

func TestPrinter_Mappings(t *testing.T) {
	p, out, _ := newTestPrinter(false, false, false)
	p.mappings(naming.MappingSet{{Original: "acme-app", Replacement: "shiny-app"}})
	assert.Equal(t, "  acme-app -> shiny-app\n", out.String())
}

func TestPrinter_Summary(t *testing.T) {
	report := &scaffold.Report{}
	report.Emit(scaffold.Event{Kind: scaffold.EventReplace, Path: "/tmp/r/README.md"})
	report.Emit(scaffold.Event{Kind: scaffold.EventAdd, Path: "/dst/main.go"})
	report.Emit(scaffold.Event{Kind: scaffold.EventMerge, Path: "/dst/README.md"})
	report.Emit(scaffold.Event{Kind: scaffold.EventBinaryConflict, Path: "/dst/logo.png", Target: "/dst/logo.png.liscaf-incoming"})

	p, out, _ := newTestPrinter(false, false, false)
	p.summary(&app.ScaffoldResult{Merged: true, Path: "/dst", Report: report})

	s := out.String()
	assert.Contains(t, s, "=== Summary ===")
	assert.Contains(t, s, "Files updated:    1")
	assert.Contains(t, s, "Files added:      1")
	assert.Contains(t, s, "Binary conflicts: 1")
	assert.Contains(t, s, "  /dst/README.md\n")
	assert.Contains(t, s, "  /dst/logo.png (incoming: /dst/logo.png.liscaf-incoming)\n")
	assert.Contains(t, s, "✓ Scaffolding finished: /dst\n")
}

func TestPrinter_SummaryDryRun(t *testing.T) {
	p, out, _ := newTestPrinter(false, false, false)
	p.summary(&app.ScaffoldResult{DryRun: true, Path: "/work/shiny-app", Report: &scaffold.Report{}})

	assert.Contains(t, out.String(), "✓ Scaffolding dry-run finished\n")
	assert.NotContains(t, out.String(), "Files added")
}

func TestColorEnabled(t *testing.T) {
	assert.False(t, colorEnabled(true, true, fdOf(&bytes.Buffer{})))
	assert.False(t, colorEnabled(false, false, fdOf(&bytes.Buffer{})))
	assert.False(t, colorEnabled(false, true, fdOf(&bytes.Buffer{})))
}
