package scaffold

import (
	"bytes"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/tacogips/liscaf/internal/source"
)

// IsVCSPath reports whether any component of path is the version-control
// metadata directory.
func IsVCSPath(path string) bool {
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if part == source.VCSDir {
			return true
		}
	}
	return false
}

// HasNUL reports whether content contains a NUL byte. Such content is treated
// as binary and never rewritten.
func HasNUL(content []byte) bool {
	return bytes.IndexByte(content, 0) != -1
}

// IsText reports whether content is free of NUL bytes and valid UTF-8.
func IsText(content []byte) bool {
	return !HasNUL(content) && utf8.Valid(content)
}

// textSkipReason returns why content is not rewritable, or "" if it is.
func textSkipReason(content []byte) string {
	if HasNUL(content) {
		return "binary"
	}
	if !utf8.Valid(content) {
		return "not valid UTF-8"
	}
	return ""
}
