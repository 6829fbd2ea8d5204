package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/tacogips/liscaf/internal/app"
	"github.com/tacogips/liscaf/internal/naming"
	"github.com/tacogips/liscaf/internal/scaffold"
)

// printer renders progress, events and summaries for one command run.
type printer struct {
	out     io.Writer
	errOut  io.Writer
	quiet   bool
	verbose bool

	green   *color.Color
	yellow  *color.Color
	red     *color.Color
	blue    *color.Color
	cyan    *color.Color
	magenta *color.Color
	gray    *color.Color
}

func newPrinter(out, errOut io.Writer, quiet, verbose, useColor bool) *printer {
	p := &printer{
		out:     out,
		errOut:  errOut,
		quiet:   quiet,
		verbose: verbose,
		green:   color.New(color.FgGreen),
		yellow:  color.New(color.FgYellow),
		red:     color.New(color.FgRed),
		blue:    color.New(color.FgBlue),
		cyan:    color.New(color.FgCyan),
		magenta: color.New(color.FgMagenta),
		gray:    color.New(color.FgHiBlack),
	}
	for _, c := range []*color.Color{p.green, p.yellow, p.red, p.blue, p.cyan, p.magenta, p.gray} {
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// colorEnabled decides whether output to fd is colored.
func colorEnabled(noColorFlag, configColor bool, fd uintptr) bool {
	if noColorFlag || !configColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// fdOf returns the descriptor of w when it is a file, or an invalid one.
func fdOf(w io.Writer) uintptr {
	if f, ok := w.(*os.File); ok {
		return f.Fd()
	}
	return ^uintptr(0)
}

// isInteractive reports whether prompts can be shown on fd.
func isInteractive(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func (p *printer) info(msg string) {
	if p.quiet {
		return
	}
	fmt.Fprintln(p.out, msg)
}

func (p *printer) success(msg string) {
	if p.quiet {
		return
	}
	fmt.Fprintf(p.out, "%s %s\n", p.green.Sprint("✓"), msg)
}

func (p *printer) warning(msg string) {
	if p.quiet {
		return
	}
	fmt.Fprintf(p.out, "%s %s\n", p.yellow.Sprint("⚠"), msg)
}

// errorMsg prints to stderr even in quiet mode.
func (p *printer) errorMsg(msg string) {
	fmt.Fprintf(p.errOut, "%s %s\n", p.red.Sprint("✗"), msg)
}

func (p *printer) progress(msg string) {
	if p.quiet {
		return
	}
	fmt.Fprintf(p.out, "%s %s\n", p.blue.Sprint("→"), msg)
}

func (p *printer) header(title string) {
	if p.quiet {
		return
	}
	fmt.Fprintf(p.out, "\n%s\n", p.magenta.Sprintf("=== %s ===", title))
}

// Emit implements scaffold.Sink. Each event becomes one line starting with
// its fixed tag. Skips are shown only in verbose mode.
func (p *printer) Emit(e scaffold.Event) {
	if p.quiet {
		return
	}
	if e.Kind == scaffold.EventSkip && !p.verbose {
		return
	}
	tag := e.Tag()
	rest := strings.TrimPrefix(e.String(), tag)
	fmt.Fprintf(p.out, "%s%s\n", p.tagColor(e.Kind).Sprint(tag), rest)
}

func (p *printer) tagColor(kind scaffold.EventKind) *color.Color {
	switch kind {
	case scaffold.EventReplace:
		return p.cyan
	case scaffold.EventRename:
		return p.blue
	case scaffold.EventAdd:
		return p.green
	case scaffold.EventMerge:
		return p.yellow
	case scaffold.EventBinaryConflict:
		return p.magenta
	case scaffold.EventWarn:
		return p.red
	default:
		return p.gray
	}
}

func (p *printer) mappings(set naming.MappingSet) {
	if p.quiet {
		return
	}
	for _, m := range set {
		fmt.Fprintf(p.out, "  %s -> %s\n", m.Original, p.green.Sprint(m.Replacement))
	}
}

// summary prints the closing counts and any conflicts left for review.
func (p *printer) summary(result *app.ScaffoldResult) {
	s := app.Summarize(result.Report)

	p.header("Summary")
	p.info(fmt.Sprintf("Files updated:    %d", s.Replaced))
	p.info(fmt.Sprintf("Paths renamed:    %d", s.Renamed))
	if result.Merged {
		p.info(fmt.Sprintf("Files added:      %d", s.Added))
		p.info(fmt.Sprintf("Files merged:     %d", s.Merged))
		p.info(fmt.Sprintf("Binary conflicts: %d", s.BinaryConflicts))
	}
	if s.Warnings > 0 {
		p.warning(fmt.Sprintf("%d warnings (see WARN lines above)", s.Warnings))
	}

	conflicts := result.Report.Conflicts()
	if len(conflicts) > 0 && !result.DryRun {
		p.info("")
		p.warning("Review these files before committing:")
		for _, c := range conflicts {
			if c.Binary {
				p.info(fmt.Sprintf("  %s (incoming: %s)", c.Path, c.Incoming))
			} else {
				p.info("  " + c.Path)
			}
		}
	}

	p.info("")
	switch {
	case result.DryRun && !result.Merged:
		p.success("Scaffolding dry-run finished")
	case result.DryRun:
		p.success("Merge dry-run finished: " + result.Path)
	default:
		p.success("Scaffolding finished: " + result.Path)
	}
}
