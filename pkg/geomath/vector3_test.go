package geomath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromTrendPlungeUnitNorm(t *testing.T) {
	// unit norm must hold over the whole orientation domain
	for trend := Degrees(0); trend < 360; trend += 15 {
		for plunge := Degrees(-90); plunge <= 90; plunge += 15 {
			v := FromTrendPlunge(trend, plunge)
			assert.InDelta(t, 1.0, v.Magnitude(), 1e-12, "trend=%g plunge=%g", float64(trend), float64(plunge))
		}
	}
}

func TestFromTrendPlungeAxes(t *testing.T) {
	north := FromTrendPlunge(0, 0)
	assert.InDelta(t, 1, north.X, 1e-12)
	assert.InDelta(t, 0, north.Y, 1e-12)
	assert.InDelta(t, 0, north.Z, 1e-12)

	east := FromTrendPlunge(90, 0)
	assert.InDelta(t, 0, east.X, 1e-12)
	assert.InDelta(t, 1, east.Y, 1e-12)

	down := FromTrendPlunge(123, 90)
	assert.InDelta(t, 1, down.Z, 1e-12)
	assert.InDelta(t, 0, down.X, 1e-12)
	assert.InDelta(t, 0, down.Y, 1e-12)
}

func TestTrendPlungeRoundTrip(t *testing.T) {
	cases := []struct {
		trend, plunge Degrees
	}{
		{0, 0},
		{40, 45.9},
		{220, -45.9},
		{340, 0},
		{359.5, 12},
		{90, 89},
	}
	for _, c := range cases {
		trend, plunge := FromTrendPlunge(c.trend, c.plunge).TrendPlunge()
		assert.InDelta(t, float64(c.trend), float64(trend), 1e-9, "trend for (%g,%g)", float64(c.trend), float64(c.plunge))
		assert.InDelta(t, float64(c.plunge), float64(plunge), 1e-9, "plunge for (%g,%g)", float64(c.trend), float64(c.plunge))
	}
}

func TestVectorAlgebra(t *testing.T) {
	a := Vector3{1, 2, 3}
	b := Vector3{4, -5, 6}

	assert.Equal(t, Vector3{5, -3, 9}, a.Add(b))
	assert.Equal(t, Vector3{-3, 7, -3}, a.Sub(b))
	assert.Equal(t, Vector3{2, 4, 6}, a.Scale(2))
	assert.InDelta(t, 12, a.Dot(b), 1e-12)

	// cross product is perpendicular to both operands
	c := a.Cross(b)
	assert.InDelta(t, 0, c.Dot(a), 1e-12)
	assert.InDelta(t, 0, c.Dot(b), 1e-12)

	assert.InDelta(t, 1, a.Normalize().Magnitude(), 1e-12)
	assert.True(t, Vector3{}.IsZero())
	assert.False(t, a.IsZero())

	// Normalize of the zero vector stays zero rather than dividing by zero
	assert.True(t, Vector3{}.Normalize().IsZero())
}
