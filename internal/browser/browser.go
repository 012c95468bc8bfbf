// Package browser opens the platform default browser.
package browser

import (
	"os/exec"
	"runtime"
)

// Open points the platform default browser at url. The subprocess is started
// detached; a missing opener or a browser failure never reaches the server
// lifecycle, so the error is dropped.
func Open(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	_ = cmd.Start()
}
