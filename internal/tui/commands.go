package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// fadeTickMsg advances the side panel fade by one frame.
type fadeTickMsg struct{}

// clipboardMsg reports the outcome of a copy.
type clipboardMsg struct {
	text string
	err  error
}

func fadeTickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return fadeTickMsg{}
	})
}

func copyCmd(write func(string) error, text string) tea.Cmd {
	return func() tea.Msg {
		return clipboardMsg{text: text, err: write(text)}
	}
}
