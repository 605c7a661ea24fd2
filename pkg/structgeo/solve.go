package structgeo

import (
	errorsmod "cosmossdk.io/errors"

	"github.com/geomorph-lab/moraine-offset/pkg/geomath"
)

// Solution carries the full reduction chain for one moraine/fault pair so
// callers can report the intermediate geometry, not just the offset.
type Solution struct {
	Fault        FaultPlane
	Slip         SlipVector
	MoraineTrend geomath.Degrees

	Strike           geomath.Degrees // derived from the dip direction
	ApparentDip      geomath.Degrees // moraine plunge on the fault plane
	Rake             geomath.Degrees // moraine vs strike, within the plane
	HorizontalOffset float64         // same length units as Slip.DipSlip
}

// Solve runs the reduction chain for a moraine crest of the given trend
// displaced by dip-slip motion on the fault:
//
//	fault + trend -> apparent dip -> rake -> horizontal offset
//
// All inputs are validated before any computation begins; the first stage to
// hit a singular condition aborts the chain with ErrSingularity.
func Solve(fault FaultPlane, slip SlipVector, moraineTrend geomath.Degrees) (*Solution, error) {
	if err := fault.Validate(); err != nil {
		return nil, err
	}
	if err := slip.Validate(); err != nil {
		return nil, err
	}
	if moraineTrend < 0 || moraineTrend >= 360 {
		return nil, errorsmod.Wrapf(ErrValidation, "moraine trend %g° must be in [0,360)", float64(moraineTrend))
	}

	plunge, err := ApparentDip(fault, moraineTrend)
	if err != nil {
		return nil, errorsmod.Wrap(err, "apparent dip")
	}

	moraine := Line{Trend: moraineTrend, Plunge: plunge}
	rake := Rake(moraine, fault.Strike())

	offset, err := HorizontalOffset(slip, rake)
	if err != nil {
		return nil, errorsmod.Wrap(err, "horizontal offset")
	}

	return &Solution{
		Fault:            fault,
		Slip:             slip,
		MoraineTrend:     moraineTrend,
		Strike:           fault.Strike(),
		ApparentDip:      plunge,
		Rake:             rake,
		HorizontalOffset: offset,
	}, nil
}
