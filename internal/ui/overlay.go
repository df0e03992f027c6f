package ui

import (
	"slices"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Overlay is a modal drawn over the body. The topmost overlay receives all
// key input.
type Overlay struct {
	View        View
	DismissKeys []string
}

// Dismisses reports whether key closes the overlay without consulting its View.
func (o Overlay) Dismisses(key string) bool {
	return slices.Contains(o.DismissKeys, key)
}

// OverlayStack is the LIFO of open modals.
type OverlayStack struct {
	items []Overlay
}

func (s *OverlayStack) Push(o Overlay) {
	s.items = append(s.items, o)
}

// Pop closes the topmost overlay. It reports false when none is open.
func (s *OverlayStack) Pop() bool {
	if len(s.items) == 0 {
		return false
	}
	s.items = s.items[:len(s.items)-1]
	return true
}

// Top returns the topmost overlay.
func (s *OverlayStack) Top() (Overlay, bool) {
	if len(s.items) == 0 {
		return Overlay{}, false
	}
	return s.items[len(s.items)-1], true
}

func (s *OverlayStack) Len() int {
	return len(s.items)
}

// HandleKey routes a key press to the topmost overlay. Dismiss keys pop it.
func (s *OverlayStack) HandleKey(msg tea.KeyMsg) tea.Cmd {
	top, ok := s.Top()
	if !ok {
		return nil
	}
	if top.Dismisses(msg.String()) {
		s.Pop()
		return nil
	}
	next, cmd := top.View.Update(msg)
	s.items[len(s.items)-1].View = next
	return cmd
}

// widthLimiter is implemented by overlay views that can reflow to fit.
type widthLimiter interface {
	SetMaxWidth(int)
}

// Render centres the topmost overlay in a width x height box, or returns
// body unchanged when nothing is open.
func (s *OverlayStack) Render(body string, width, height int) string {
	top, ok := s.Top()
	if !ok {
		return body
	}
	if wl, ok := top.View.(widthLimiter); ok {
		wl.SetMaxWidth(width)
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, top.View.View())
}
