package server

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestResolvePath(t *testing.T) {
	root := filepath.Join(string(os.PathSeparator), "srv", "www")

	tests := []struct {
		name   string
		target string
		want   string // relative to root; "." means root itself
		wantOK bool
	}{
		{
			name:   "Root path",
			target: "/",
			want:   ".",
			wantOK: true,
		},
		{
			name:   "Empty path",
			target: "",
			want:   ".",
			wantOK: true,
		},
		{
			name:   "Plain file",
			target: "/style.css",
			want:   "style.css",
			wantOK: true,
		},
		{
			name:   "Nested file",
			target: "/docs/guide/intro.html",
			want:   "docs/guide/intro.html",
			wantOK: true,
		},
		{
			name:   "Query stripped",
			target: "/style.css?v=123",
			want:   "style.css",
			wantOK: true,
		},
		{
			name:   "Query with traversal stripped",
			target: "/a.txt?path=../../etc",
			want:   "a.txt",
			wantOK: true,
		},
		{
			name:   "Fragment stripped",
			target: "/a.txt#top",
			want:   "a.txt",
			wantOK: true,
		},
		{
			name:   "Dot and double slash",
			target: "/./a//b",
			want:   "a/b",
			wantOK: true,
		},
		{
			name:   "Percent-encoded name",
			target: "/hello%20world.txt",
			want:   "hello world.txt",
			wantOK: true,
		},
		{
			name:   "Leading parent segments",
			target: "/../../etc/passwd",
			want:   "etc/passwd",
			wantOK: true,
		},
		{
			name:   "Encoded parent segments",
			target: "/%2e%2e/%2e%2e/etc/passwd",
			want:   "etc/passwd",
			wantOK: true,
		},
		{
			name:   "Encoded slashes",
			target: "/..%2f..%2fsecret",
			want:   "secret",
			wantOK: true,
		},
		{
			name:   "Backslash parent segments",
			target: `/..\..\win.ini`,
			want:   "win.ini",
			wantOK: true,
		},
		{
			name:   "Mixed separators",
			target: `/a\..\../b`,
			want:   "b",
			wantOK: true,
		},
		{
			name:   "Traversal through subdirectory",
			target: "/a/../../../b",
			want:   "b",
			wantOK: true,
		},
		{
			name:   "Trailing parent segment",
			target: "/a/..",
			want:   ".",
			wantOK: true,
		},
		{
			name:   "NUL byte",
			target: "/a%00b",
			wantOK: false,
		},
		{
			name:   "Malformed escape",
			target: "/%zz",
			wantOK: false,
		},
		{
			name:   "Truncated escape",
			target: "/abc%e",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := resolvePath(root, tt.target)
			if ok != tt.wantOK {
				t.Fatalf("resolvePath(%q) ok = %v, want %v", tt.target, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			want := filepath.Join(root, filepath.FromSlash(tt.want))
			if got != want {
				t.Errorf("resolvePath(%q) = %q, want %q", tt.target, got, want)
			}
			if got != root && !strings.HasPrefix(got, root+string(os.PathSeparator)) {
				t.Errorf("resolvePath(%q) = %q escapes root %q", tt.target, got, root)
			}
		})
	}
}
