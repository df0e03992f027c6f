package viewselect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fasguide/internal/scheme"
)

func TestSelector_InitialModeIsOverview(t *testing.T) {
	assert.Equal(t, ModeOverview, New().Mode())

	var zero Selector
	assert.Equal(t, ModeOverview, zero.Mode())
}

func TestSelector_SetModeRoundTrip(t *testing.T) {
	s := New()
	for _, m := range Modes() {
		require.NoError(t, s.SetMode(m))
		assert.Equal(t, m, s.Mode())

		// Setting the same mode again yields the same observable state.
		require.NoError(t, s.SetMode(m))
		assert.Equal(t, m, s.Mode())
		assert.Equal(t, m, s.Projection().Mode())
	}
}

func TestSelector_UnknownModeLeavesStateUnchanged(t *testing.T) {
	s := New()
	require.NoError(t, s.SetMode(ModeProcedure))

	err := s.SetMode(ViewMode(42))
	require.ErrorIs(t, err, ErrUnknownMode)
	assert.Equal(t, ModeProcedure, s.Mode())
}

func TestSelector_OverviewProjection(t *testing.T) {
	s := New()

	p, ok := s.Projection().(OverviewProjection)
	require.True(t, ok, "expected OverviewProjection, got %T", s.Projection())

	assert.Equal(t, "Tier 1 Term FA", p.Paired[0].Name)
	assert.Equal(t, "Tier 2 Term FA", p.Paired[1].Name)
	assert.Equal(t, "Bridging FA (BFA)", p.Highlighted.Name)
	assert.Equal(t, scheme.CategoryBridging, p.Highlighted.Category)
	assert.Equal(t, scheme.CategoryTier1, p.Paired[0].Category)
	assert.Equal(t, scheme.CategoryTier2, p.Paired[1].Category)
	assert.Len(t, p.Facts, 3)
	assert.Contains(t, p.Note, "3-month BFA cycle")
}

func TestSelector_ProcedureProjection(t *testing.T) {
	s := New()
	require.NoError(t, s.SetMode(ModeProcedure))

	p, ok := s.Projection().(ProcedureProjection)
	require.True(t, ok, "expected ProcedureProjection, got %T", s.Projection())

	require.Len(t, p.Steps, 8)
	for i, e := range p.Steps {
		assert.Equal(t, i+1, e.Step.Position)
		assert.Equal(t, e.Step.Label(), e.Label)
		assert.Equal(t, i == len(p.Steps)-1, e.Last)
	}

	first, last := p.Steps[0], p.Steps[len(p.Steps)-1]
	assert.Equal(t, 1, first.Step.Position)
	assert.Equal(t, "Initial Request", first.Step.Title)
	assert.Equal(t, 8, last.Step.Position)
	assert.Equal(t, "Full Processing", last.Step.Title)
	assert.Equal(t, scheme.ApplyURL, p.CallToAction.URL)
}

func TestSelector_NavigationDoesNotChangeContent(t *testing.T) {
	s := New()
	initial := s.Projection()

	require.NoError(t, s.SetMode(ModeProcedure))
	require.NoError(t, s.SetMode(ModeOverview))

	assert.Equal(t, initial, s.Projection())
}

func TestSelector_ProjectionIsIsolated(t *testing.T) {
	s := New()
	p := s.Projection().(OverviewProjection)
	p.Paired[0].Eligibility[0] = "changed"

	again := s.Projection().(OverviewProjection)
	assert.Equal(t, "NSF's family is a current ComCare recipient.", again.Paired[0].Eligibility[0])
}

func TestProject_UnknownMode(t *testing.T) {
	p, err := Project(ViewMode(-1))
	assert.Nil(t, p)
	assert.ErrorIs(t, err, ErrUnknownMode)
}
