package source

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strconv"
	"strings"

	"github.com/tacogips/liscaf/internal/debug"
)

// GitClient clones and initializes repositories with the git binary.
type GitClient struct {
	// Binary is the git executable name or path.
	Binary string
	// Depth is passed to "git clone --depth"; 0 clones full history.
	Depth int
}

// NewGitClient creates a GitClient using binary ("git" when empty).
func NewGitClient(binary string, depth int) *GitClient {
	if binary == "" {
		binary = "git"
	}
	return &GitClient{Binary: binary, Depth: depth}
}

// Clone runs "git clone [--depth N] url dir".
func (g *GitClient) Clone(ctx context.Context, url, dir string) error {
	args := []string{"clone"}
	if g.Depth > 0 {
		args = append(args, "--depth", strconv.Itoa(g.Depth))
	}
	args = append(args, url, dir)
	return g.run(ctx, "", url, args...)
}

// Init runs "git init", "git add ." and "git commit -m message" in dir.
func (g *GitClient) Init(ctx context.Context, dir, message string) error {
	steps := [][]string{
		{"init"},
		{"add", "."},
		{"commit", "-m", message},
	}
	for _, args := range steps {
		if err := g.run(ctx, dir, dir, args...); err != nil {
			return err
		}
	}
	return nil
}

func (g *GitClient) run(ctx context.Context, workDir, url string, args ...string) error {
	debug.Debug("[source] Running: %s %s", g.Binary, strings.Join(args, " "))

	path, err := exec.LookPath(g.Binary)
	if err != nil {
		return NewError(ToolMissing, url, "git binary not found: "+g.Binary, err)
	}

	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Dir = workDir
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			e := NewError(CommandFailed, url, "git "+args[0]+" failed", nil)
			e.ExitCode = exitErr.ExitCode()
			e.Stderr = strings.TrimSpace(stderr.String())
			return e
		}
		return NewError(ToolMissing, url, "failed to run git", err)
	}
	return nil
}
