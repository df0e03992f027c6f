package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ConfirmModal asks before an outward action. y or enter emits Confirm;
// n or esc dismisses.
type ConfirmModal struct {
	Question string
	Body     string
	Link     string
	Confirm  tea.Msg

	maxWidth int // 0: unbounded
}

var _ View = (*ConfirmModal)(nil)

// NewApplyConfirmModal asks before opening url in the browser.
func NewApplyConfirmModal(url string) *ConfirmModal {
	return &ConfirmModal{
		Question: "Open application form?",
		Body:     "The online application opens in your browser.",
		Link:     url,
		Confirm:  OpenApplyMsg{},
	}
}

func (m *ConfirmModal) Init() tea.Cmd {
	return nil
}

func (m *ConfirmModal) Update(msg tea.Msg) (View, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "y", "enter":
		if m.Confirm != nil {
			return m, msgCmd(m.Confirm)
		}
	case "n", "esc":
		return m, msgCmd(DismissModalMsg{})
	}
	return m, nil
}

// SetMaxWidth bounds the rendered box, wrapping the text inside it.
func (m *ConfirmModal) SetMaxWidth(w int) {
	m.maxWidth = w
}

func (m *ConfirmModal) View() string {
	rows := []string{Styles.Warning.Render(m.Question), "", Styles.Normal.Render(m.Body)}
	if m.Link != "" {
		rows = append(rows, Styles.Link.Render(m.Link))
	}
	rows = append(rows, "", Styles.Muted.Render("y/enter confirm · n/esc cancel"))
	content := lipgloss.JoinVertical(lipgloss.Left, rows...)
	box := Styles.BoxWarning.Render(content)
	if m.maxWidth > 0 && lipgloss.Width(box) > m.maxWidth {
		// Width includes padding but not the border
		box = Styles.BoxWarning.Width(max(m.maxWidth-Styles.BoxWarning.GetHorizontalBorderSize(), 1)).Render(content)
	}
	return box
}
