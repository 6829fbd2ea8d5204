package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/google/uuid"

	"github.com/tacogips/liscaf/internal/config"
	"github.com/tacogips/liscaf/internal/debug"
	"github.com/tacogips/liscaf/internal/naming"
	"github.com/tacogips/liscaf/internal/scaffold"
	"github.com/tacogips/liscaf/internal/source"
)

// CloneDirName is the directory inside the run's temp dir holding the clone.
const CloneDirName = "repo"

// AltSuffix is appended to the project directory name when it is taken.
const AltSuffix = "_from_template"

// ScaffoldOptions holds options for a scaffold run.
type ScaffoldOptions struct {
	// NewName is the new project name.
	NewName string
	// RepoURL is the template repository (URL, owner/repo or local path).
	RepoURL string
	// TemplateBase is the project name used inside the template.
	TemplateBase string
	// Into, when set, merges the scaffold into this existing directory.
	Into string
	// OutputDir is the parent of the new project directory. Defaults to ".".
	OutputDir string
	// DryRun reports changes without touching the destination.
	DryRun bool
	// Strategy selects sequential or confluent replacement.
	Strategy naming.Strategy
	// CommitMessage is used for the initial commit of a new project.
	CommitMessage string
	// Cloner fetches the template. Defaults to git, or a local copy for paths.
	Cloner source.Cloner
	// Initializer creates the new repository. Defaults to git.
	Initializer source.RepoInitializer
	// Sink receives every event as it happens.
	Sink scaffold.Sink
	// Progress receives one line per workflow stage.
	Progress func(msg string)
	// TempRoot is where the run's temp dir is created. Defaults to os.TempDir.
	TempRoot string
}

// ScaffoldResult holds the outcome of a scaffold run.
type ScaffoldResult struct {
	RunID        string            `yaml:"run_id"`
	NewName      string            `yaml:"new_name"`
	RepoURL      string            `yaml:"repo_url"`
	TemplateBase string            `yaml:"template_base"`
	Strategy     naming.Strategy   `yaml:"strategy"`
	DryRun       bool              `yaml:"dry_run"`
	Merged       bool              `yaml:"merged"`
	Committed    bool              `yaml:"committed"`
	Mappings     naming.MappingSet `yaml:"mappings"`
	// Path is the new project or the merge destination. For a dry run it is
	// the directory the project would be written to.
	Path string `yaml:"path"`
	// TempDir is set when the run's temp dir was kept.
	TempDir string           `yaml:"temp_dir,omitempty"`
	Report  *scaffold.Report `yaml:"report"`
}

// Scaffold clones a template, replaces the template's name variants with
// the new name in contents and paths, then creates a new project next to
// OutputDir or merges into Into.
func Scaffold(ctx context.Context, opts ScaffoldOptions) (*ScaffoldResult, error) {
	debug.DebugSection("[app] Scaffold workflow start")

	if err := opts.normalize(); err != nil {
		return nil, err
	}
	debug.DebugValue("[app] NewName", opts.NewName)
	debug.DebugValue("[app] RepoURL", opts.RepoURL)
	debug.DebugValue("[app] TemplateBase", opts.TemplateBase)
	debug.DebugValue("[app] Into", opts.Into)
	debug.DebugValue("[app] DryRun", opts.DryRun)
	debug.DebugValue("[app] Strategy", opts.Strategy)

	var dest string
	if opts.Into == "" {
		var err error
		dest, err = chooseDestination(opts.OutputDir, opts.NewName)
		if err != nil {
			return nil, err
		}
	}

	result := &ScaffoldResult{
		RunID:        uuid.NewString(),
		NewName:      opts.NewName,
		RepoURL:      opts.RepoURL,
		TemplateBase: opts.TemplateBase,
		Strategy:     opts.Strategy,
		DryRun:       opts.DryRun,
		Report:       &scaffold.Report{},
	}
	debug.DebugValue("[app] RunID", result.RunID)
	opts.progress(fmt.Sprintf("Starting scaffolding for '%s'", opts.NewName))
	opts.progress("Repo URL: " + opts.RepoURL)

	tmp, err := os.MkdirTemp(opts.TempRoot, "liscaf-"+result.RunID+"-*")
	if err != nil {
		return nil, NewAppError(CloneFailed, "failed to create temporary directory", err)
	}
	keepTemp := false
	defer func() {
		if keepTemp {
			return
		}
		if err := os.RemoveAll(tmp); err != nil {
			debug.Debug("[app] Failed to remove temp dir %s: %v", tmp, err)
		}
	}()

	repoDir := filepath.Join(tmp, CloneDirName)
	opts.progress("Cloning into temporary dir: " + repoDir)
	if err := opts.Cloner.Clone(ctx, opts.RepoURL, repoDir); err != nil {
		return nil, NewAppError(CloneFailed, "failed to clone template", err)
	}

	removed, err := source.RemoveVCSMetadata(repoDir)
	switch {
	case err != nil:
		opts.emit(result.Report, scaffold.NewWarning("Failed to remove .git in", repoDir, err))
	case removed:
		opts.progress("Removed .git to unlink original repository")
	default:
		opts.emit(result.Report, scaffold.NewWarning(".git not found after clone in", repoDir, nil))
	}

	templateTokens := naming.Tokenize(opts.TemplateBase)
	newTokens := naming.Tokenize(opts.NewName)
	result.Mappings = naming.Generate(templateTokens, newTokens)
	debug.DebugValue("[app] Template tokens", templateTokens)
	debug.DebugValue("[app] New tokens", newTokens)
	debug.DebugYAML("[app] Mappings", result.Mappings)
	opts.progress(fmt.Sprintf("Generated %d variant mappings", len(result.Mappings)))
	for _, m := range result.Mappings {
		opts.progress(fmt.Sprintf("  %s -> %s", m.Original, m.Replacement))
	}

	// A merge previews against the real destination, so the owned clone is
	// transformed for real even in a dry run. Its events still carry DRY tags.
	stepOpts := scaffold.Options{DryRun: opts.DryRun && opts.Into == "", Sink: opts.Sink}
	if opts.DryRun && opts.Into != "" {
		stepOpts.LabelDryRun = true
	}

	opts.progress("Replacing content inside files...")
	rewritten, err := scaffold.NewRewriter(result.Mappings, opts.Strategy, stepOpts).Rewrite(repoDir)
	result.Report.Append(rewritten)
	if err != nil {
		return result, NewAppError(ScaffoldFailed, "failed to rewrite file contents", err)
	}

	opts.progress("Renaming files and directories where needed...")
	renamed, err := scaffold.NewRenamer(result.Mappings, opts.Strategy, stepOpts).Rename(repoDir)
	result.Report.Append(renamed)
	if err != nil {
		return result, NewAppError(ScaffoldFailed, "failed to rename paths", err)
	}

	switch {
	case opts.Into != "":
		opts.progress("Merging into " + opts.Into)
		merged, err := scaffold.NewMerger(scaffold.Options{DryRun: opts.DryRun, Sink: opts.Sink}).Merge(repoDir, opts.Into)
		result.Report.Append(merged)
		if err != nil {
			return result, NewAppError(MergeFailed, "failed to merge into destination", err)
		}
		result.Merged = true
		result.Path = opts.Into

	case opts.DryRun:
		result.Path = dest
		opts.progress("Dry run: skipping git init, commit, and moving files.")
		opts.progress("Would write scaffold into " + dest)

	default:
		opts.progress("Initializing new git repository")
		if err := opts.Initializer.Init(ctx, repoDir, opts.CommitMessage); err != nil {
			opts.emit(result.Report, scaffold.NewWarning("git init/commit failed in", repoDir, err))
		} else {
			result.Committed = true
		}

		if err := moveDir(ctx, repoDir, dest); err != nil {
			keepTemp = true
			result.Path = repoDir
			result.TempDir = tmp
			return result, NewAppError(MoveFailed,
				fmt.Sprintf("failed to move scaffold to %s (kept at %s)", dest, repoDir), err)
		}
		result.Path = dest
		opts.progress("Wrote scaffold into " + dest)
	}

	debug.Debug("[app] Scaffold complete: %d events, %d warnings",
		len(result.Report.Events), len(result.Report.Warnings()))
	return result, nil
}

func (o *ScaffoldOptions) normalize() error {
	o.NewName = strings.TrimSpace(o.NewName)
	o.TemplateBase = strings.TrimSpace(o.TemplateBase)
	o.RepoURL = source.NormalizeRepoURL(o.RepoURL)

	if o.NewName == "" {
		return NewValidationError("new project name cannot be empty", nil)
	}
	if !strings.ContainsFunc(o.NewName, isWordRune) {
		return NewValidationError(fmt.Sprintf("new project name %q has no letters or digits", o.NewName), nil)
	}
	if strings.ContainsAny(o.NewName, `/\`) || o.NewName == "." || o.NewName == ".." {
		return NewValidationError(fmt.Sprintf("new project name %q must not contain path separators", o.NewName), nil)
	}
	if o.TemplateBase == "" {
		return NewValidationError("template base name cannot be empty", nil)
	}
	if !strings.ContainsFunc(o.TemplateBase, isWordRune) {
		return NewValidationError(fmt.Sprintf("template base name %q has no letters or digits", o.TemplateBase), nil)
	}
	if err := source.ValidateRepoURL(o.RepoURL); err != nil {
		return NewValidationError("invalid repository URL", err)
	}
	if o.Strategy == "" {
		o.Strategy = naming.Sequential
	}
	if _, err := naming.ParseStrategy(string(o.Strategy)); err != nil {
		return NewValidationError("invalid replacement strategy", err)
	}

	if o.Into != "" {
		into, err := config.ExpandPath(o.Into)
		if err != nil {
			return NewValidationError("failed to resolve destination", err)
		}
		info, err := os.Stat(into)
		if err != nil {
			return NewValidationError(fmt.Sprintf("destination directory %s does not exist", into), err)
		}
		if !info.IsDir() {
			return NewValidationError(fmt.Sprintf("destination %s is not a directory", into), nil)
		}
		o.Into = into
	}

	if o.OutputDir == "" {
		o.OutputDir = "."
	}
	out, err := config.ExpandPath(o.OutputDir)
	if err != nil {
		return NewValidationError("failed to resolve output directory", err)
	}
	o.OutputDir = out

	if o.CommitMessage == "" {
		o.CommitMessage = config.DefaultCommitMessage
	}
	if o.Cloner == nil {
		o.Cloner = source.ClonerFor(o.RepoURL, source.NewGitClient("", 1))
	}
	if o.Initializer == nil {
		o.Initializer = source.NewGitClient("", 0)
	}
	return nil
}

func (o *ScaffoldOptions) progress(msg string) {
	debug.Debug("[app] %s", msg)
	if o.Progress != nil {
		o.Progress(msg)
	}
}

func (o *ScaffoldOptions) emit(report *scaffold.Report, e scaffold.Event) {
	report.Emit(e)
	if o.Sink != nil {
		o.Sink.Emit(e)
	}
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r)
}

// chooseDestination returns parent/name, or parent/name_from_template when
// the former exists. Both existing is a validation error.
func chooseDestination(parent, name string) (string, error) {
	info, err := os.Stat(parent)
	if err != nil {
		return "", NewValidationError(fmt.Sprintf("output directory %s does not exist", parent), err)
	}
	if !info.IsDir() {
		return "", NewValidationError(fmt.Sprintf("output path %s is not a directory", parent), nil)
	}

	for _, candidate := range []string{name, name + AltSuffix} {
		path := filepath.Join(parent, candidate)
		if _, err := os.Lstat(path); errors.Is(err, fs.ErrNotExist) {
			return path, nil
		}
		debug.Debug("[app] Destination taken: %s", path)
	}
	return "", NewValidationError(
		fmt.Sprintf("both %s and %s already exist in %s", name, name+AltSuffix, parent), nil)
}

// moveDir renames src to dst, copying across filesystems when a rename is
// not possible.
func moveDir(ctx context.Context, src, dst string) error {
	err := os.Rename(src, dst)
	if err == nil {
		return nil
	}
	debug.Debug("[app] Rename failed (%v), copying instead", err)

	if err := source.NewLocalCloner().Clone(ctx, src, dst); err != nil {
		return err
	}
	return os.RemoveAll(src)
}
