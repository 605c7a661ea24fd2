package structgeo

import (
	"math"

	errorsmod "cosmossdk.io/errors"

	"github.com/geomorph-lab/moraine-offset/pkg/geomath"
)

// rakeTolerance is how close, in degrees, a rake may come to 0° or 180°
// before the offset is treated as unbounded. Floating point never lands on
// the endpoints exactly.
const rakeTolerance geomath.Degrees = 1e-6

// HorizontalOffset returns the horizontal component of a dip-slip
// displacement decomposed along a line of the given rake:
//
//	offset = dipSlip * tan(90° - rake)
//
// A rake of 90° gives exactly 0: slip perpendicular to the line leaves no
// lateral component. A rake at or near 0° or 180° drives the tangent
// to infinity and is rejected with ErrSingularity; no NaN or Inf is ever
// returned. The sign of the offset matches the sign of (90° - rake).
func HorizontalOffset(slip SlipVector, rake geomath.Degrees) (float64, error) {
	if rake < rakeTolerance || rake > 180-rakeTolerance {
		return 0, errorsmod.Wrapf(ErrSingularity,
			"rake %g° is parallel to the dip direction; horizontal offset is unbounded", float64(rake))
	}
	t := (90 - rake).Tan()
	if math.IsNaN(t) || math.IsInf(t, 0) {
		return 0, errorsmod.Wrapf(ErrSingularity, "tan(90° - %g°) is not finite", float64(rake))
	}
	return slip.DipSlip * t, nil
}
