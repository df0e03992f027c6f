package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"fasguide/internal/viewselect"
)

// RenderKeybindHelp renders the popup shown while a leader sequence is
// pending, at most width columns wide. Only bindings active in mode are listed.
func RenderKeybindHelp(d *KeyDispatcher, mode viewselect.ViewMode, width int) string {
	if d == nil || !d.Pending() {
		return ""
	}
	hints := d.Keymap.Hints(d.Prefix(), mode)
	if len(hints) == 0 {
		return ""
	}

	bindings := make([]key.Binding, 0, len(hints)+1)
	for _, h := range hints {
		bindings = append(bindings, key.NewBinding(key.WithKeys(h.Key), key.WithHelp(h.Key, h.Desc)))
	}
	bindings = append(bindings, key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1)
	prefix := Styles.Muted.Render(d.Prefix()) + " "
	h := newHelpModel()
	h.Width = max(width-box.GetHorizontalFrameSize()-lipgloss.Width(prefix), 1)
	return box.Render(prefix + h.ShortHelpView(bindings))
}

// RenderShortHelp renders the always-visible key hint line for mode.
func RenderShortHelp(mode viewselect.ViewMode, width int) string {
	bindings := []key.Binding{
		key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch view")),
		key.NewBinding(key.WithKeys("1", "2"), key.WithHelp("1/2", "jump")),
		key.NewBinding(key.WithKeys("j", "k"), key.WithHelp("j/k", "scroll")),
	}
	if mode == viewselect.ModeProcedure {
		bindings = append(bindings, key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "apply online")))
	}
	bindings = append(bindings,
		key.NewBinding(key.WithKeys(" "), key.WithHelp("SPC", "commands")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	)
	h := newHelpModel()
	h.Width = width
	return h.ShortHelpView(bindings)
}

func newHelpModel() help.Model {
	h := help.New()
	h.Styles.ShortKey = Styles.Selected
	h.Styles.ShortDesc = Styles.Muted
	h.Styles.ShortSeparator = Styles.Muted
	return h
}
