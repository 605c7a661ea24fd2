package structgeo

import (
	"math"

	errorsmod "cosmossdk.io/errors"

	"github.com/geomorph-lab/moraine-offset/pkg/geomath"
)

// ApparentDip returns the dip the fault plane exhibits in a vertical section
// oriented along trend. The section dip is shallower than the true dip by a
// factor of sin of the angle between the section and the strike:
//
//	apparent = atan(sin(dipDirection - trend + 90) * tan(dip))
//
// When trend is the trend of a line crossing the plane, the result is that
// line's plunge once constrained to lie within the plane. A horizontal plane
// (dip 0) yields 0 for every trend. A vertical plane (dip 90) has no finite
// tangent and is rejected with ErrSingularity.
func ApparentDip(fault FaultPlane, trend geomath.Degrees) (geomath.Degrees, error) {
	if fault.Dip == 90 {
		return 0, errorsmod.Wrap(ErrSingularity, "dip 90°: tan(dip) is undefined on a vertical plane")
	}
	strikeDiff := fault.DipDirection - trend + 90
	return geomath.FromRadians(math.Atan(strikeDiff.Sin() * fault.Dip.Tan())), nil
}
