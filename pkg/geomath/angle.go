package geomath

import "math"

const (
	radPerDeg = math.Pi / 180
	degPerRad = 180 / math.Pi
)

// Degrees is an angle measured in degrees. Field geologists record every
// orientation in degrees (trend, plunge, dip, rake); converting to radians
// happens only at the trigonometric boundary, so the type keeps the two
// units from being mixed silently.
type Degrees float64

// Radians returns the angle in radians.
func (d Degrees) Radians() float64 {
	return float64(d) * radPerDeg
}

// FromRadians converts an angle in radians to Degrees.
func FromRadians(r float64) Degrees {
	return Degrees(r * degPerRad)
}

// Normalized returns the equivalent compass bearing in [0, 360).
func (d Degrees) Normalized() Degrees {
	n := math.Mod(float64(d), 360)
	if n < 0 {
		n += 360
	}
	return Degrees(n)
}

// Sin returns the sine of the angle.
func (d Degrees) Sin() float64 {
	return math.Sin(d.Radians())
}

// Cos returns the cosine of the angle.
func (d Degrees) Cos() float64 {
	return math.Cos(d.Radians())
}

// Tan returns the tangent of the angle.
func (d Degrees) Tan() float64 {
	return math.Tan(d.Radians())
}
