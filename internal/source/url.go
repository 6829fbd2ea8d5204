package source

import (
	"net/url"
	"path/filepath"
	"regexp"
	"strings"
)

// DefaultHost is prepended to bare owner/repo shorthands.
const DefaultHost = "github.com"

var (
	schemePattern = regexp.MustCompile(`^([a-zA-Z][a-zA-Z0-9+.\-]*)://`)
	// user@host:path, as accepted by git for SSH remotes.
	scpPattern = regexp.MustCompile(`^[^@/\s]+@[^:/\s]+:.+$`)
)

var supportedSchemes = map[string]bool{
	"http":  true,
	"https": true,
	"ssh":   true,
	"file":  true,
}

// NormalizeRepoURL converts user input into a cloneable URL.
//
//   - https://, http://, ssh://, file:// URLs and user@host:path pass unchanged
//   - ./path, ../path and absolute paths pass unchanged (local templates)
//   - host.tld/owner/repo gains "https://"
//   - owner/repo gains "https://github.com/"
func NormalizeRepoURL(raw string) string {
	s := strings.TrimSpace(raw)

	if s == "" || schemePattern.MatchString(s) || scpPattern.MatchString(s) || IsLocalPath(s) {
		return s
	}

	first, _, hasSlash := strings.Cut(s, "/")
	if !hasSlash {
		return s
	}
	if strings.Contains(first, ".") {
		return "https://" + s
	}
	return "https://" + DefaultHost + "/" + s
}

// ValidateRepoURL checks a normalized URL. Empty input, unsupported schemes
// and strings that are not a URL, an SCP-style remote or a local path are
// rejected with a configuration error.
func ValidateRepoURL(s string) error {
	if s == "" {
		return NewError(InvalidURL, s, "repository URL cannot be empty", nil)
	}

	if m := schemePattern.FindStringSubmatch(s); m != nil {
		scheme := strings.ToLower(m[1])
		if !supportedSchemes[scheme] {
			return NewError(UnsupportedScheme, s, "unsupported URL scheme "+scheme+"://", nil)
		}
		u, err := url.Parse(s)
		if err != nil {
			return NewError(InvalidURL, s, "malformed repository URL", err)
		}
		if scheme != "file" && u.Host == "" {
			return NewError(InvalidURL, s, "repository URL has no host", nil)
		}
		return nil
	}

	if scpPattern.MatchString(s) || IsLocalPath(s) {
		return nil
	}

	return NewError(InvalidURL, s, "expected owner/repo, a URL, or a local path", nil)
}

// IsLocalPath reports whether s names a local directory rather than a remote.
func IsLocalPath(s string) bool {
	if strings.HasPrefix(s, "file://") {
		return true
	}
	if filepath.IsAbs(s) {
		return true
	}
	return s == "." || s == ".." ||
		strings.HasPrefix(s, "./") || strings.HasPrefix(s, "../")
}

// LocalPath returns the filesystem path for a local template reference.
func LocalPath(s string) (string, error) {
	if !strings.HasPrefix(s, "file://") {
		return filepath.Clean(s), nil
	}
	u, err := url.Parse(s)
	if err != nil {
		return "", NewError(InvalidURL, s, "malformed file URL", err)
	}
	if u.Path == "" {
		return "", NewError(InvalidURL, s, "file URL has no path", nil)
	}
	return filepath.FromSlash(u.Path), nil
}
