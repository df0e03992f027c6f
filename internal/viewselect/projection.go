package viewselect

import (
	"fmt"

	"fasguide/internal/scheme"
)

// Projection is the content selected for one ViewMode.
type Projection interface {
	Mode() ViewMode
	projection()
}

// OverviewProjection lists the tiers: two shown as a pair and the bridging
// tier highlighted on its own, followed by the sequencing note.
type OverviewProjection struct {
	Paired      [2]scheme.AssistanceTier
	Highlighted scheme.AssistanceTier
	Facts       []scheme.Fact
	Subtitle    string
	Note        string
}

func (OverviewProjection) Mode() ViewMode { return ModeOverview }
func (OverviewProjection) projection()    {}

// StepEntry is a procedure step annotated for display.
type StepEntry struct {
	Step  scheme.ProcedureStep
	Label string
	Last  bool
}

// ProcedureProjection lists the steps in position order and the closing
// call-to-action link.
type ProcedureProjection struct {
	Steps        []StepEntry
	CallToAction scheme.CallToAction
}

func (ProcedureProjection) Mode() ViewMode { return ModeProcedure }
func (ProcedureProjection) projection()    {}

// Project builds the projection for mode.
func Project(mode ViewMode) (Projection, error) {
	switch mode {
	case ModeOverview:
		return projectOverview(), nil
	case ModeProcedure:
		return projectProcedure(), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, int(mode))
	}
}

func projectOverview() OverviewProjection {
	ts := scheme.Tiers()
	p := OverviewProjection{
		Facts:    scheme.BridgingFacts(),
		Subtitle: scheme.BridgingSubtitle,
		Note:     scheme.SequencingNote,
	}
	for _, t := range ts {
		switch t.Category {
		case scheme.CategoryTier1:
			p.Paired[0] = t
		case scheme.CategoryTier2:
			p.Paired[1] = t
		case scheme.CategoryBridging:
			p.Highlighted = t
		}
	}
	return p
}

func projectProcedure() ProcedureProjection {
	ss := scheme.Steps()
	entries := make([]StepEntry, len(ss))
	for i, s := range ss {
		entries[i] = StepEntry{
			Step:  s,
			Label: s.Label(),
			Last:  i == len(ss)-1,
		}
	}
	return ProcedureProjection{
		Steps:        entries,
		CallToAction: scheme.Apply(),
	}
}
