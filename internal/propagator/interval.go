package propagator

import (
	"fmt"
	"math"

	"github.com/astrokit/astroprop/internal/astro"
)

// Interval holds the propagation boundaries and the optional fixed
// output sampling cadence. Setters perform no validation; Validate runs
// at Propagate time so boundaries can be (re)configured in any order.
type Interval struct {
	start, end float64
	hasStart   bool
	hasEnd     bool

	// fixedOutput == 0 means no fixed-interval sampling.
	fixedOutput float64
}

func (iv *Interval) SetStart(t float64) {
	iv.start = t
	iv.hasStart = true
}

func (iv *Interval) SetEnd(t float64) {
	iv.end = t
	iv.hasEnd = true
}

func (iv Interval) Start() float64 { return iv.start }
func (iv Interval) End() float64   { return iv.end }

// SetFixedOutput sets the sampling cadence. Zero disables fixed
// sampling; negative or non-finite values are rejected by Validate.
func (iv *Interval) SetFixedOutput(interval float64) {
	iv.fixedOutput = interval
}

func (iv Interval) FixedOutput() float64 { return iv.fixedOutput }

// SamplingEnabled reports whether a fixed output interval is in effect.
func (iv Interval) SamplingEnabled() bool { return iv.fixedOutput != 0 }

// Direction is +1 for forward propagation, -1 for backward. Degenerate
// intervals (start == end) propagate forward by convention.
func (iv Interval) Direction() float64 {
	if iv.end < iv.start {
		return -1
	}
	return 1
}

// Span is the signed length of the interval.
func (iv Interval) Span() float64 { return iv.end - iv.start }

// Validate checks the full interval configuration. It is called by
// Propagate before any stepping begins.
func (iv Interval) Validate() error {
	if !iv.hasStart || !iv.hasEnd {
		return fmt.Errorf("%w: interval bounds not set (start set: %v, end set: %v)",
			astro.ErrInvalidConfiguration, iv.hasStart, iv.hasEnd)
	}
	if math.IsNaN(iv.start) || math.IsInf(iv.start, 0) {
		return fmt.Errorf("%w: non-finite interval start %v", astro.ErrInvalidConfiguration, iv.start)
	}
	if math.IsNaN(iv.end) || math.IsInf(iv.end, 0) {
		return fmt.Errorf("%w: non-finite interval end %v", astro.ErrInvalidConfiguration, iv.end)
	}
	if math.IsNaN(iv.fixedOutput) || math.IsInf(iv.fixedOutput, 0) {
		return fmt.Errorf("%w: non-finite fixed output interval", astro.ErrInvalidConfiguration)
	}
	if iv.fixedOutput < 0 {
		return fmt.Errorf("%w: fixed output interval must be positive, got %v",
			astro.ErrInvalidConfiguration, iv.fixedOutput)
	}
	return nil
}

// timeEps is the tolerance used when snapping to sample boundaries,
// scaled by the magnitude of the epoch being compared.
func timeEps(t float64) float64 {
	return 1e-9 * math.Max(1, math.Abs(t))
}

// SampleTimes builds the output grid: every multiple of the fixed
// output interval from start toward end, with the end boundary always
// included even when it does not land on the grid. Nil when fixed
// sampling is disabled. A degenerate interval yields the single sample
// {start}.
func (iv Interval) SampleTimes() []float64 {
	if iv.fixedOutput <= 0 {
		return nil
	}
	if iv.start == iv.end {
		return []float64{iv.start}
	}

	dir := iv.Direction()
	times := make([]float64, 0, int(math.Abs(iv.Span())/iv.fixedOutput)+2)
	for k := 0; ; k++ {
		t := iv.start + dir*float64(k)*iv.fixedOutput
		if dir*(t-iv.end) > timeEps(iv.end) {
			break
		}
		times = append(times, t)
	}
	if len(times) == 0 || math.Abs(times[len(times)-1]-iv.end) > timeEps(iv.end) {
		times = append(times, iv.end)
	} else {
		// Snap a grid point that lands on the boundary within tolerance.
		times[len(times)-1] = iv.end
	}
	return times
}
