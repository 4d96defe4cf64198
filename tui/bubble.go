// Package tui provides the terminal user interface for batch downloads.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/instasnap-cli/instasnap/color"
	"github.com/instasnap-cli/instasnap/download"
	"github.com/instasnap-cli/instasnap/icon"
	"github.com/instasnap-cli/instasnap/media"
	"github.com/instasnap-cli/instasnap/style"
	"github.com/instasnap-cli/instasnap/util"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wrap"
)

type resultMsg download.Result

type doneMsg struct{}

// downloadBubble tracks the progress of one batch retrieval.
type downloadBubble struct {
	spinnerC  spinner.Model
	progressC progress.Model

	files   []media.SelectedFile
	options *download.Options

	results   []download.Result
	lastError error

	resultChannel chan download.Result
	doneChannel   chan struct{}
	errorChannel  chan error

	cancel context.CancelFunc
	width  int
}

// newBubble performs a complete initialization of the download progress model.
func newBubble(files []media.SelectedFile, options *download.Options) *downloadBubble {
	bubble := downloadBubble{
		files:   files,
		options: options,

		resultChannel: make(chan download.Result),
		doneChannel:   make(chan struct{}),
		errorChannel:  make(chan error),
	}

	bubble.spinnerC = spinner.New()
	bubble.spinnerC.Spinner = spinner.Dot
	bubble.spinnerC.Style = style.Colored(color.Purple, "")
	bubble.progressC = progress.New(progress.WithDefaultGradient())

	return &bubble
}

// Init starts the batch retrieval alongside the progress loop.
func (b *downloadBubble) Init() tea.Cmd {
	return tea.Batch(b.spinnerC.Tick, b.startDownload(), b.waitForResult())
}

// startDownload runs the worker pool in the background, forwarding per-file
// outcomes to the progress loop as they complete.
func (b *downloadBubble) startDownload() tea.Cmd {
	ctx, cancel := context.WithCancel(context.Background())
	b.cancel = cancel

	options := *b.options
	options.OnResult = func(r download.Result) {
		b.resultChannel <- r
	}

	return func() tea.Msg {
		download.All(ctx, b.files, &options)
		b.doneChannel <- struct{}{}
		return nil
	}
}

// waitForResult blocks until the next per-file outcome or batch completion.
func (b *downloadBubble) waitForResult() tea.Cmd {
	return func() tea.Msg {
		select {
		case res := <-b.resultChannel:
			return resultMsg(res)
		case <-b.doneChannel:
			return doneMsg{}
		case err := <-b.errorChannel:
			return err
		}
	}
}

func (b *downloadBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.width = msg.Width
		b.progressC.Width = util.Min(msg.Width-4, 60)
		return b, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			if b.cancel != nil {
				b.cancel()
			}
			b.lastError = context.Canceled
			return b, tea.Quit
		}
	case resultMsg:
		b.results = append(b.results, download.Result(msg))
		return b, b.waitForResult()
	case doneMsg:
		return b, tea.Quit
	case error:
		b.lastError = msg
		return b, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		b.spinnerC, cmd = b.spinnerC.Update(msg)
		return b, cmd
	}

	return b, nil
}

func (b *downloadBubble) View() string {
	if b.lastError != nil && b.lastError != context.Canceled {
		width := b.width
		if width == 0 {
			width = 80
		}
		return "\n" + style.ErrorTitle("Error") + "\n\n" + wrap.String(b.lastError.Error(), width) + "\n"
	}

	total := len(b.files)
	done := len(b.results)

	var percent float64
	if total > 0 {
		percent = float64(done) / float64(total)
	}

	lines := []string{
		"",
		fmt.Sprintf(
			"%s %s Downloading %s (%d/%d)",
			b.spinnerC.View(),
			icon.Get(icon.Download),
			util.Quantify(total, "file", "files"),
			done,
			total,
		),
		"",
		b.progressC.ViewAs(percent),
		"",
	}

	for _, result := range b.tail(3) {
		if result.Err != nil {
			lines = append(lines, "  "+icon.Get(icon.Fail)+" "+style.Fg(color.Red)(result.File.Filename))
		} else {
			lines = append(lines, "  "+icon.Get(icon.Success)+" "+result.File.Filename)
		}
	}

	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

// tail returns up to the n most recent results.
func (b *downloadBubble) tail(n int) []download.Result {
	if len(b.results) <= n {
		return b.results
	}
	return b.results[len(b.results)-n:]
}
