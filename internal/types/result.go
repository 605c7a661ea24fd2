package types

import (
	"fmt"
	"time"

	"github.com/geomorph-lab/moraine-offset/pkg/structgeo"
)

// OffsetResult represents the outcome of a single offset computation,
// including every intermediate of the reduction chain.
type OffsetResult struct {
	DipDirectionDeg float64 `json:"dip_direction_deg"`
	DipDeg          float64 `json:"dip_deg"`
	DipSlipM        float64 `json:"dip_slip_m"`
	MoraineTrendDeg float64 `json:"moraine_trend_deg"`

	StrikeDeg         float64 `json:"strike_deg"`
	ApparentDipDeg    float64 `json:"apparent_dip_deg"` // moraine plunge on the fault plane
	RakeDeg           float64 `json:"rake_deg"`
	HorizontalOffsetM float64 `json:"horizontal_offset_m"`

	Timestamp time.Time     `json:"timestamp"`
	Duration  time.Duration `json:"duration"`
}

// NewOffsetResult builds an OffsetResult from a solved reduction chain.
func NewOffsetResult(sol *structgeo.Solution, duration time.Duration) *OffsetResult {
	return &OffsetResult{
		DipDirectionDeg:   float64(sol.Fault.DipDirection),
		DipDeg:            float64(sol.Fault.Dip),
		DipSlipM:          sol.Slip.DipSlip,
		MoraineTrendDeg:   float64(sol.MoraineTrend),
		StrikeDeg:         float64(sol.Strike),
		ApparentDipDeg:    float64(sol.ApparentDip),
		RakeDeg:           float64(sol.Rake),
		HorizontalOffsetM: sol.HorizontalOffset,
		Timestamp:         time.Now(),
		Duration:          duration,
	}
}

// Report returns the one-line field report for the computed offset.
func (r *OffsetResult) Report() string {
	return fmt.Sprintf("Moraine offset: %.1f m", r.HorizontalOffsetM)
}

// SweepSample is one trial trend in a sensitivity sweep.
type SweepSample struct {
	TrendDeg       float64 `json:"trend_deg"`
	ApparentDipDeg float64 `json:"apparent_dip_deg"`
	RakeDeg        float64 `json:"rake_deg"`
	OffsetM        float64 `json:"offset_m"`
}

// SweepResult represents a trend sensitivity sweep over a single fault.
type SweepResult struct {
	DipDirectionDeg float64 `json:"dip_direction_deg"`
	DipDeg          float64 `json:"dip_deg"`
	DipSlipM        float64 `json:"dip_slip_m"`
	FromDeg         float64 `json:"from_deg"`
	ToDeg           float64 `json:"to_deg"`
	StepDeg         float64 `json:"step_deg"`

	Samples        []SweepSample `json:"samples"`
	SingularTrends int           `json:"singular_trends"` // trial trends skipped at a singularity

	MeanOffsetM      float64 `json:"mean_offset_m"`
	StdDevOffsetM    float64 `json:"std_dev_offset_m"`
	MinOffsetM       float64 `json:"min_offset_m"`
	MaxOffsetM       float64 `json:"max_offset_m"`
	TrendAtMinAbsDeg float64 `json:"trend_at_min_abs_deg"` // trend of the smallest |offset|
	OffsetAtMinAbsM  float64 `json:"offset_at_min_abs_m"`  // signed offset at that trend

	Timestamp time.Time     `json:"timestamp"`
	Duration  time.Duration `json:"duration"`
}
