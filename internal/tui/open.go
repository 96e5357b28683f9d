package tui

import (
	"fmt"
	"os/exec"
	"runtime"

	tea "github.com/charmbracelet/bubbletea"
)

// Opener hands an outbound link to the platform.
type Opener func(target string) error

// SystemOpener opens target with the desktop's default handler.
func SystemOpener(target string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", target)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", target)
	default:
		cmd = exec.Command("xdg-open", target)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open %s: %w", target, err)
	}
	go func() {
		_ = cmd.Wait()
	}()
	return nil
}

type linkOpenedMsg struct {
	target string
	err    error
}

func openLink(open Opener, target string) tea.Cmd {
	return func() tea.Msg {
		return linkOpenedMsg{target: target, err: open(target)}
	}
}
