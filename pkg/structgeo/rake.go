package structgeo

import (
	"math"

	"github.com/geomorph-lab/moraine-offset/pkg/geomath"
)

// Rake returns the angle, measured within the fault plane, between the given
// line and the horizontal strike line of bearing strike. Both orientations
// are converted to unit vectors and the angle recovered from their dot
// product, so the result is always in [0,180].
func Rake(line Line, strike geomath.Degrees) geomath.Degrees {
	dot := line.Vector().Dot(Line{Trend: strike}.Vector())
	// floating-point drift can push the product marginally outside [-1,1]
	if dot > 1 {
		dot = 1
	} else if dot < -1 {
		dot = -1
	}
	return geomath.FromRadians(math.Acos(dot))
}
