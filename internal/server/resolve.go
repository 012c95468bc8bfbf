package server

import (
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// resolvePath turns a raw request target into an absolute filesystem path
// confined to root. The input is taken before net/http decoding so malformed
// percent-encoding is handled here rather than by the HTTP stack.
//
// The returned path is always root itself or a descendant of it. ok is false
// when the target cannot be decoded (bad escape, NUL byte); callers answer
// those with the same 404 as a missing file.
func resolvePath(root, rawTarget string) (fsPath string, ok bool) {
	// Query string and fragment are not part of the filesystem path.
	if i := strings.IndexAny(rawTarget, "?#"); i >= 0 {
		rawTarget = rawTarget[:i]
	}

	decoded, err := url.PathUnescape(rawTarget)
	if err != nil {
		return "", false
	}
	if strings.ContainsRune(decoded, 0) {
		return "", false
	}

	// Backslashes count as separators so `..\` cannot slip past the cleanup.
	p := strings.ReplaceAll(decoded, `\`, "/")

	// Cleaning a rooted path collapses every `.` and `..` segment; leading
	// parent segments cannot survive it.
	p = path.Clean("/" + p)
	p = strings.TrimPrefix(p, "/")
	if p == "" {
		return root, true
	}

	joined := filepath.Join(root, filepath.FromSlash(p))
	prefix := root
	if !strings.HasSuffix(prefix, string(os.PathSeparator)) {
		prefix += string(os.PathSeparator)
	}
	if joined != root && !strings.HasPrefix(joined, prefix) {
		return "", false
	}
	return joined, true
}
