package viewselect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewMode_String(t *testing.T) {
	assert.Equal(t, "overview", ModeOverview.String())
	assert.Equal(t, "procedure", ModeProcedure.String())
	assert.Equal(t, "unknown", ViewMode(7).String())
}

func TestViewMode_Title(t *testing.T) {
	assert.Equal(t, "Scheme Overview", ModeOverview.Title())
	assert.Equal(t, "Application Steps", ModeProcedure.Title())
}

func TestParseViewMode(t *testing.T) {
	tests := []struct {
		in   string
		want ViewMode
	}{
		{"overview", ModeOverview},
		{"Procedure", ModeProcedure},
		{" PROCEDURE ", ModeProcedure},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseViewMode(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseViewMode("steps")
	assert.ErrorIs(t, err, ErrUnknownMode)
}

func TestNextPrev_Cycle(t *testing.T) {
	assert.Equal(t, ModeProcedure, Next(ModeOverview))
	assert.Equal(t, ModeOverview, Next(ModeProcedure))
	assert.Equal(t, ModeProcedure, Prev(ModeOverview))
	assert.Equal(t, ModeOverview, Prev(ModeProcedure))

	// Unknown modes fall back into the cycle.
	assert.Equal(t, ModeOverview, Next(ViewMode(9)))
	assert.Equal(t, ModeProcedure, Prev(ViewMode(9)))
}

func TestModes_ReturnsCopy(t *testing.T) {
	ms := Modes()
	ms[0] = ModeProcedure
	assert.Equal(t, ModeOverview, Modes()[0])
}
