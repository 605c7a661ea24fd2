package structgeo

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geomorph-lab/moraine-offset/pkg/geomath"
)

func TestSolveFieldScenarioA(t *testing.T) {
	fault := FaultPlane{DipDirection: 70, Dip: 50}
	slip := SlipVector{DipSlip: 33.5}

	sol, err := Solve(fault, slip, 40)
	require.NoError(t, err)

	assert.InDelta(t, 340, float64(sol.Strike), 1e-12)
	assert.InDelta(t, 45.90468727333837, float64(sol.ApparentDip), 1e-9)
	assert.InDelta(t, 69.63942512488693, float64(sol.Rake), 1e-9)
	assert.InDelta(t, 12.4, sol.HorizontalOffset, 0.05)
}

func TestSolveFieldScenarioB(t *testing.T) {
	fault := FaultPlane{DipDirection: 70, Dip: 50}
	slip := SlipVector{DipSlip: 33}

	sol, err := Solve(fault, slip, 32)
	require.NoError(t, err)

	assert.InDelta(t, 43.20158747416848, float64(sol.ApparentDip), 1e-9)
	assert.InDelta(t, 63.33416405648445, float64(sol.Rake), 1e-9)
	assert.InDelta(t, 16.6, sol.HorizontalOffset, 0.05)
}

func TestSolveMoraineAlongDipDirection(t *testing.T) {
	// a crest trending straight down the dip direction has rake 90 and no
	// lateral offset
	fault := FaultPlane{DipDirection: 70, Dip: 50}
	slip := SlipVector{DipSlip: 33.5}

	sol, err := Solve(fault, slip, 70)
	require.NoError(t, err)
	assert.InDelta(t, 90, float64(sol.Rake), 1e-9)
	assert.InDelta(t, 0, sol.HorizontalOffset, 1e-9)
}

func TestSolveMoraineAlongStrikeIsSingular(t *testing.T) {
	// a crest parallel to the strike line lies along the slip direction's
	// horizontal shadow; the projected offset is unbounded
	fault := FaultPlane{DipDirection: 70, Dip: 50}
	slip := SlipVector{DipSlip: 33.5}

	_, err := Solve(fault, slip, 340)
	assert.True(t, errors.Is(err, ErrSingularity))

	_, err = Solve(fault, slip, 160)
	assert.True(t, errors.Is(err, ErrSingularity))
}

func TestSolveVerticalFaultIsSingular(t *testing.T) {
	fault := FaultPlane{DipDirection: 70, Dip: 90}
	_, err := Solve(fault, SlipVector{DipSlip: 33.5}, 40)
	assert.True(t, errors.Is(err, ErrSingularity))
}

func TestSolveValidatesBeforeComputing(t *testing.T) {
	good := FaultPlane{DipDirection: 70, Dip: 50}

	cases := []struct {
		name    string
		fault   FaultPlane
		slip    SlipVector
		trend   geomath.Degrees
		mention string
	}{
		{"dip direction out of range", FaultPlane{DipDirection: 360, Dip: 50}, SlipVector{DipSlip: 1}, 40, "dip direction"},
		{"dip out of range", FaultPlane{DipDirection: 70, Dip: 95}, SlipVector{DipSlip: 1}, 40, "dip"},
		{"negative slip", good, SlipVector{DipSlip: -2}, 40, "dip-slip"},
		{"trend out of range", good, SlipVector{DipSlip: 1}, -10, "moraine trend"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Solve(c.fault, c.slip, c.trend)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrValidation))
			assert.Contains(t, err.Error(), c.mention)
		})
	}
}

func TestSolveMirroredTrendMirrorsOffset(t *testing.T) {
	// the sign of the offset follows the side of the rake: the same crest
	// walked in the opposite direction reports the opposite offset
	fault := FaultPlane{DipDirection: 70, Dip: 50}
	slip := SlipVector{DipSlip: 33.5}

	a, err := Solve(fault, slip, 40)
	require.NoError(t, err)
	b, err := Solve(fault, slip, 220)
	require.NoError(t, err)

	assert.InDelta(t, a.HorizontalOffset, -b.HorizontalOffset, 1e-9)
}
