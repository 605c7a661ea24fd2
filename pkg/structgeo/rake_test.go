package structgeo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/geomorph-lab/moraine-offset/pkg/geomath"
)

func TestRakeScenarios(t *testing.T) {
	cases := []struct {
		name          string
		trend, plunge float64
		strike        float64
		want          float64
		delta         float64
	}{
		{"oblique moraine", 40, 45.90468727333837, 340, 69.63942512488693, 1e-9},
		{"steeper oblique moraine", 32, 43.20158747416848, 340, 63.33416405648445, 1e-9},
		{"parallel to strike", 340, 0, 340, 0, 1e-9},
		// arccos amplifies a one-ulp dot product error to ~1e-6° near the
		// antipode, so this case gets a wider delta
		{"opposed to strike", 160, 0, 340, 180, 1e-5},
		{"down the dip direction", 70, 50, 340, 90, 1e-9},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			line := Line{Trend: geomath.Degrees(c.trend), Plunge: geomath.Degrees(c.plunge)}
			rake := Rake(line, geomath.Degrees(c.strike))
			assert.InDelta(t, c.want, float64(rake), c.delta)
		})
	}
}

func TestRakeNearAntipodeStaysSingularForOffset(t *testing.T) {
	// even with the arccos drift, a strike-opposed rake must still land
	// inside the projector's singularity guard
	rake := Rake(Line{Trend: 160, Plunge: 0}, 340)
	assert.Greater(t, float64(rake), float64(180-rakeTolerance))
}

func TestRakeAlwaysWithinRange(t *testing.T) {
	for trend := geomath.Degrees(0); trend < 360; trend += 20 {
		for plunge := geomath.Degrees(-90); plunge <= 90; plunge += 30 {
			rake := Rake(Line{Trend: trend, Plunge: plunge}, 340)
			assert.GreaterOrEqual(t, float64(rake), 0.0)
			assert.LessOrEqual(t, float64(rake), 180.0)
		}
	}
}

func TestRakeClampsFloatDrift(t *testing.T) {
	// identical orientations: the dot product may exceed 1 by an ulp but
	// the rake must come back 0, not NaN
	rake := Rake(Line{Trend: 123.456, Plunge: 67.89}, 0)
	assert.False(t, math.IsNaN(float64(rake)))

	same := Rake(Line{Trend: 213.7, Plunge: 0}, 213.7)
	assert.False(t, math.IsNaN(float64(same)))
	assert.InDelta(t, 0, float64(same), 1e-9)
}

func TestRakeConsistentWithCrossProduct(t *testing.T) {
	// |m x s| = sin(rake) for unit operands
	line := Line{Trend: 40, Plunge: 45.90468727333837}
	strike := geomath.Degrees(340)
	rake := Rake(line, strike)

	cross := line.Vector().Cross(Line{Trend: strike}.Vector())
	assert.InDelta(t, rake.Sin(), cross.Magnitude(), 1e-12)
}
