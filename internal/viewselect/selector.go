package viewselect

import "fmt"

// Selector holds the current ViewMode. The zero value is ready to use and
// starts in ModeOverview.
//
// A Selector is owned by a single UI loop and is not safe for concurrent use.
type Selector struct {
	mode ViewMode
}

// New returns a Selector in ModeOverview.
func New() *Selector {
	return &Selector{mode: ModeOverview}
}

// Mode returns the last mode set.
func (s *Selector) Mode() ViewMode {
	return s.mode
}

// SetMode makes m the current mode. Setting the current mode again is a
// no-op. Values outside the defined set return ErrUnknownMode and leave the
// selector unchanged.
func (s *Selector) SetMode(m ViewMode) error {
	if !m.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownMode, int(m))
	}
	s.mode = m
	return nil
}

// Projection returns the content for the current mode.
func (s *Selector) Projection() Projection {
	p, err := Project(s.mode)
	if err != nil {
		// unreachable: SetMode only stores valid modes
		panic(err)
	}
	return p
}
