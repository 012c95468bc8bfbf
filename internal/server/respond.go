package server

import (
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/f4ah6o/localserve-go/internal/mimetab"
)

const notFoundBody = "404 Not Found"

// respond produces exactly one response for a resolved filesystem path.
// urlPath is the decoded request path, used only for listing links.
//
// Anything unexpected — missing entry, permission error, unreadable
// directory, special file — collapses into a uniform 404 so clients never
// see error detail.
func (s *Server) respond(w http.ResponseWriter, urlPath, fsPath string) {
	info, err := os.Stat(fsPath)
	if err != nil {
		notFound(w)
		return
	}

	if info.IsDir() {
		index := filepath.Join(fsPath, "index.html")
		if fi, err := os.Stat(index); err == nil && fi.Mode().IsRegular() {
			s.serveFile(w, index)
			return
		}
		s.listDirectory(w, urlPath, fsPath)
		return
	}

	if !info.Mode().IsRegular() {
		notFound(w)
		return
	}
	s.serveFile(w, fsPath)
}

// serveFile streams a file to the client. HTML is marked uncacheable; every
// other type is a static asset assumed to change only under a new name, so it
// gets a year-long immutable cache lifetime.
func (s *Server) serveFile(w http.ResponseWriter, fsPath string) {
	f, err := os.Open(fsPath)
	if err != nil {
		notFound(w)
		return
	}
	defer f.Close()

	ct := mimetab.Lookup(fsPath)
	w.Header().Set("Content-Type", ct)
	if mimetab.IsHTML(ct) {
		w.Header().Set("Cache-Control", "no-cache")
	} else {
		w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	}

	// Headers go out on the first write. A read error after that point can
	// only be answered by stopping the stream; the client must re-request.
	_, _ = io.Copy(w, f)
}

func notFound(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/plain; charset=UTF-8")
	w.WriteHeader(http.StatusNotFound)
	_, _ = io.WriteString(w, notFoundBody)
}
