package common

import (
	"os/exec"
	"runtime"

	tea "github.com/charmbracelet/bubbletea"
)

// OpenInBrowser hands a URL to the OS opener. Unsafe URLs yield a nil
// command, which Bubble Tea treats as a no-op.
func OpenInBrowser(rawURL string) tea.Cmd {
	if !IsSafeExternalURL(rawURL) {
		return nil
	}
	return func() tea.Msg {
		var cmd *exec.Cmd
		switch runtime.GOOS {
		case "darwin":
			cmd = exec.Command("open", rawURL)
		default:
			cmd = exec.Command("xdg-open", rawURL)
		}
		_ = cmd.Start()
		return nil
	}
}
