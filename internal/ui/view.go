package ui

import tea "github.com/charmbracelet/bubbletea"

// View is a modal body with its own update loop.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}
