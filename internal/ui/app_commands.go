package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"fasguide/internal/browser"
)

func msgCmd(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// openURLCmd launches the browser off the update loop.
func openURLCmd(opener browser.Opener, url string) tea.Cmd {
	return func() tea.Msg {
		err := opener.Open(context.Background(), url)
		return ApplyOpenedMsg{URL: url, Err: err}
	}
}
