// Package server implements the request-handling core of the static file
// server: path resolution confined to the served root, file/listing/404
// dispatch, and the listener itself.
package server

import (
	"fmt"
	"log"
	"net"
	"net/http"

	"github.com/fatih/color"

	"github.com/f4ah6o/localserve-go/internal/browser"
	"github.com/f4ah6o/localserve-go/internal/config"
)

// Server serves a single root directory. Its only state is the immutable
// startup configuration, so one instance handles concurrent requests without
// locking.
type Server struct {
	cfg config.ServerConfig
}

func New(cfg config.ServerConfig) *Server {
	return &Server{cfg: cfg}
}

// URL returns the local address clients (and the launched browser) use.
func (s *Server) URL() string {
	return fmt.Sprintf("http://localhost:%d", s.cfg.Port)
}

// ServeHTTP handles one request. Every method is treated identically; only
// the path is inspected. The raw request target is resolved before net/http
// decoding so malformed escapes become 404s rather than stack-level 400s.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log.Printf("%s %s", r.Method, r.URL.Path)

	fsPath, ok := resolvePath(s.cfg.RootDir, r.RequestURI)
	if !ok {
		notFound(w)
		return
	}
	s.respond(w, r.URL.Path, fsPath)
}

// Run binds the configured port and serves until the process is terminated.
// The browser launch happens only after a successful bind; a failed bind is
// returned to the caller and is fatal to the process.
func (s *Server) Run() error {
	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", s.cfg.Port))
	if err != nil {
		return err
	}

	color.Cyan("🌐 Serving %s at %s", s.cfg.RootDir, s.URL())
	fmt.Println("Press Ctrl+C to stop")

	if s.cfg.OpenBrowser {
		browser.Open(s.URL())
	}
	return http.Serve(ln, s)
}
