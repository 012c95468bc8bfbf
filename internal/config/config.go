// Package config holds the immutable server configuration built from CLI options.
package config

import (
	"path/filepath"
	"strconv"
)

// DefaultPort is used when no port option is given, or when the given value
// is not a usable port number.
const DefaultPort = 8080

// ServerConfig is built once at startup from CLI options and never mutated
// afterwards. It is passed explicitly to the server rather than read from
// globals.
type ServerConfig struct {
	// RootDir is the absolute path of the directory tree being served.
	// All resolved request paths stay within it.
	RootDir string
	// Port is the TCP port to listen on (1–65535).
	Port int
	// OpenBrowser requests launching the platform browser after startup.
	OpenBrowser bool
}

// New builds a ServerConfig from raw option values. The directory is made
// absolute; the port string is parsed permissively via ParsePort.
func New(dir, port string, openBrowser bool) (ServerConfig, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return ServerConfig{}, err
	}
	return ServerConfig{
		RootDir:     absDir,
		Port:        ParsePort(port),
		OpenBrowser: openBrowser,
	}, nil
}

// ParsePort parses a port option value. Non-numeric or out-of-range values
// silently fall back to DefaultPort; the permissive behavior is deliberate.
func ParsePort(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > 65535 {
		return DefaultPort
	}
	return n
}
