package ui

import "fasguide/internal/viewselect"

// SetModeMsg selects a view mode directly (1, 2, SPC o, SPC p).
type SetModeMsg struct {
	Mode viewselect.ViewMode
}

// NextModeMsg moves to the next tab (tab).
type NextModeMsg struct{}

// PrevModeMsg moves to the previous tab (shift+tab).
type PrevModeMsg struct{}

// ShowApplyConfirmMsg asks to open the application link (a, SPC a).
type ShowApplyConfirmMsg struct{}

// OpenApplyMsg is sent when the user confirms opening the link.
type OpenApplyMsg struct{}

// ApplyOpenedMsg reports the outcome of launching the browser.
type ApplyOpenedMsg struct {
	URL string
	Err error
}

// DismissModalMsg closes the top overlay.
type DismissModalMsg struct{}
