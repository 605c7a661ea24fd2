package analysis

import (
	"errors"
	"log"
	"math"
	"time"

	errorsmod "cosmossdk.io/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/geomorph-lab/moraine-offset/internal/types"
	"github.com/geomorph-lab/moraine-offset/pkg/geomath"
	"github.com/geomorph-lab/moraine-offset/pkg/structgeo"
)

// Manager drives sensitivity sweeps over the offset pipeline. The pipeline
// itself is a pure function of its inputs; the manager just invokes it once
// per trial trend and summarizes the results.
type Manager struct{}

// NewManager creates a new sweep manager
func NewManager() *Manager {
	return &Manager{}
}

// SweepTrends evaluates the offset pipeline for trial moraine trends from
// `from` to `to` inclusive, stepping by `step` degrees. Trends that land on
// a geometric singularity are skipped and counted; validation errors abort
// the sweep. At least one trial trend must produce a finite offset.
func (m *Manager) SweepTrends(fault structgeo.FaultPlane, slip structgeo.SlipVector,
	from, to, step geomath.Degrees) (*types.SweepResult, error) {

	start := time.Now()

	if step <= 0 {
		return nil, errorsmod.Wrapf(structgeo.ErrValidation, "sweep step %g° must be > 0", float64(step))
	}
	if to < from {
		return nil, errorsmod.Wrapf(structgeo.ErrValidation, "sweep window [%g°,%g°] is empty", float64(from), float64(to))
	}

	log.Printf("Sweeping moraine trends %g°..%g° (step %g°) on fault %g/%g",
		float64(from), float64(to), float64(step), float64(fault.DipDirection), float64(fault.Dip))

	result := &types.SweepResult{
		DipDirectionDeg: float64(fault.DipDirection),
		DipDeg:          float64(fault.Dip),
		DipSlipM:        slip.DipSlip,
		FromDeg:         float64(from),
		ToDeg:           float64(to),
		StepDeg:         float64(step),
	}

	// half a step of slack so the upper bound survives accumulated fp error
	var offsets []float64
	for trend := from; trend <= to+step/2; trend += step {
		sol, err := structgeo.Solve(fault, slip, trend.Normalized())
		if err != nil {
			if errors.Is(err, structgeo.ErrSingularity) {
				result.SingularTrends++
				continue
			}
			return nil, err
		}

		result.Samples = append(result.Samples, types.SweepSample{
			TrendDeg:       float64(trend),
			ApparentDipDeg: float64(sol.ApparentDip),
			RakeDeg:        float64(sol.Rake),
			OffsetM:        sol.HorizontalOffset,
		})
		offsets = append(offsets, sol.HorizontalOffset)
	}

	if len(offsets) == 0 {
		return nil, errorsmod.Wrap(structgeo.ErrSingularity, "every trial trend in the sweep window is singular")
	}

	result.MeanOffsetM = stat.Mean(offsets, nil)
	if len(offsets) > 1 {
		result.StdDevOffsetM = stat.StdDev(offsets, nil)
	}
	result.MinOffsetM = floats.Min(offsets)
	result.MaxOffsetM = floats.Max(offsets)

	result.OffsetAtMinAbsM = math.Inf(1)
	for _, s := range result.Samples {
		if math.Abs(s.OffsetM) < math.Abs(result.OffsetAtMinAbsM) {
			result.OffsetAtMinAbsM = s.OffsetM
			result.TrendAtMinAbsDeg = s.TrendDeg
		}
	}

	result.Timestamp = time.Now()
	result.Duration = time.Since(start)

	log.Printf("Sweep done: %d samples, %d singular trends skipped, offset %.1f..%.1f m",
		len(result.Samples), result.SingularTrends, result.MinOffsetM, result.MaxOffsetM)

	return result, nil
}
