package viewselect

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMode is returned for a ViewMode outside the defined set.
var ErrUnknownMode = errors.New("unknown view mode")

// ViewMode is the tab currently shown.
type ViewMode int

const (
	ModeOverview ViewMode = iota
	ModeProcedure
)

var modes = []ViewMode{ModeOverview, ModeProcedure}

// Modes returns every mode in tab order.
func Modes() []ViewMode {
	return append([]ViewMode(nil), modes...)
}

func (m ViewMode) String() string {
	switch m {
	case ModeOverview:
		return "overview"
	case ModeProcedure:
		return "procedure"
	default:
		return "unknown"
	}
}

// Title is the tab label.
func (m ViewMode) Title() string {
	switch m {
	case ModeOverview:
		return "Scheme Overview"
	case ModeProcedure:
		return "Application Steps"
	default:
		return "Unknown"
	}
}

// Valid reports whether m is one of the defined modes.
func (m ViewMode) Valid() bool {
	return m == ModeOverview || m == ModeProcedure
}

// ParseViewMode parses the String form of a mode, case-insensitively.
func ParseViewMode(s string) (ViewMode, error) {
	for _, m := range modes {
		if strings.EqualFold(strings.TrimSpace(s), m.String()) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}
