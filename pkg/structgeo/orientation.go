package structgeo

import (
	errorsmod "cosmossdk.io/errors"

	"github.com/geomorph-lab/moraine-offset/pkg/geomath"
)

// FaultPlane is an inclined plane given by the compass bearing of its
// steepest descent and its inclination from horizontal.
type FaultPlane struct {
	DipDirection geomath.Degrees // bearing of steepest descent, [0,360)
	Dip          geomath.Degrees // inclination from horizontal, [0,90]
}

// Strike returns the bearing of the horizontal line within the plane,
// 90° counterclockwise of the dip direction.
func (f FaultPlane) Strike() geomath.Degrees {
	return (f.DipDirection - 90).Normalized()
}

// StrikeLine returns the horizontal strike line of the plane.
func (f FaultPlane) StrikeLine() Line {
	return Line{Trend: f.Strike()}
}

// Validate checks the plane orientation against its documented domain.
func (f FaultPlane) Validate() error {
	if f.DipDirection < 0 || f.DipDirection >= 360 {
		return errorsmod.Wrapf(ErrValidation, "dip direction %g° must be in [0,360)", float64(f.DipDirection))
	}
	if f.Dip < 0 || f.Dip > 90 {
		return errorsmod.Wrapf(ErrValidation, "dip %g° must be in [0,90]", float64(f.Dip))
	}
	return nil
}

// Line is a linear feature given by the bearing of its horizontal
// projection and its downward inclination from horizontal. A horizontal
// strike line has plunge 0.
type Line struct {
	Trend  geomath.Degrees // [0,360)
	Plunge geomath.Degrees // [-90,90]
}

// Vector returns the unit direction vector of the line.
func (l Line) Vector() geomath.Vector3 {
	return geomath.FromTrendPlunge(l.Trend, l.Plunge)
}

// Validate checks the line orientation against its documented domain.
func (l Line) Validate() error {
	if l.Trend < 0 || l.Trend >= 360 {
		return errorsmod.Wrapf(ErrValidation, "trend %g° must be in [0,360)", float64(l.Trend))
	}
	if l.Plunge < -90 || l.Plunge > 90 {
		return errorsmod.Wrapf(ErrValidation, "plunge %g° must be in [-90,90]", float64(l.Plunge))
	}
	return nil
}

// SlipVector is a dip-slip displacement: its magnitude is measured within
// the fault plane, in the dip direction.
type SlipVector struct {
	DipSlip float64 // length units, >= 0
}

// Validate checks the slip magnitude against its documented domain.
func (s SlipVector) Validate() error {
	if s.DipSlip < 0 {
		return errorsmod.Wrapf(ErrValidation, "dip-slip magnitude %g must be >= 0", s.DipSlip)
	}
	return nil
}
