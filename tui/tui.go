// Package tui provides the terminal user interface for batch downloads.
package tui

import (
	"context"

	"github.com/instasnap-cli/instasnap/download"
	"github.com/instasnap-cli/instasnap/media"
	tea "github.com/charmbracelet/bubbletea"
)

// Run executes the download progress loop for the given files and returns the
// per-file results once every worker has finished.
func Run(files []media.SelectedFile, options *download.Options) ([]download.Result, error) {
	bubble := newBubble(files, options)

	if _, err := tea.NewProgram(bubble).Run(); err != nil {
		return nil, err
	}

	if bubble.lastError != nil && bubble.lastError != context.Canceled {
		return bubble.results, bubble.lastError
	}

	return bubble.results, nil
}
