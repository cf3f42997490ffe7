package propagator

import (
	"errors"
	"math"
	"testing"

	"github.com/astrokit/astroprop/internal/astro"
)

func TestIntervalSampleTimes(t *testing.T) {
	tests := []struct {
		name     string
		start    float64
		end      float64
		fixed    float64
		expected []float64
	}{
		{"grid plus end boundary", 0, 25, 10, []float64{0, 10, 20, 25}},
		{"end on grid", 0, 30, 10, []float64{0, 10, 20, 30}},
		{"backward", 25, 0, 10, []float64{25, 15, 5, 0}},
		{"degenerate", 5, 5, 10, []float64{5}},
		{"cadence longer than span", 0, 7, 10, []float64{0, 7}},
		{"sampling disabled", 0, 25, 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var iv Interval
			iv.SetStart(tt.start)
			iv.SetEnd(tt.end)
			iv.SetFixedOutput(tt.fixed)

			got := iv.SampleTimes()
			if len(got) != len(tt.expected) {
				t.Fatalf("expected %v, got %v", tt.expected, got)
			}
			for i := range got {
				if math.Abs(got[i]-tt.expected[i]) > 1e-9 {
					t.Errorf("sample %d: expected %v, got %v", i, tt.expected[i], got[i])
				}
			}
		})
	}
}

func TestIntervalValidate(t *testing.T) {
	valid := func() Interval {
		var iv Interval
		iv.SetStart(0)
		iv.SetEnd(100)
		return iv
	}

	t.Run("unset bounds rejected", func(t *testing.T) {
		var iv Interval
		if err := iv.Validate(); !errors.Is(err, astro.ErrInvalidConfiguration) {
			t.Errorf("expected ErrInvalidConfiguration, got %v", err)
		}

		iv.SetStart(0)
		if err := iv.Validate(); !errors.Is(err, astro.ErrInvalidConfiguration) {
			t.Errorf("end unset: expected ErrInvalidConfiguration, got %v", err)
		}
	})

	t.Run("non-finite bounds rejected", func(t *testing.T) {
		for _, bad := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
			iv := valid()
			iv.SetStart(bad)
			if err := iv.Validate(); !errors.Is(err, astro.ErrInvalidConfiguration) {
				t.Errorf("start %v: expected ErrInvalidConfiguration, got %v", bad, err)
			}

			iv = valid()
			iv.SetEnd(bad)
			if err := iv.Validate(); !errors.Is(err, astro.ErrInvalidConfiguration) {
				t.Errorf("end %v: expected ErrInvalidConfiguration, got %v", bad, err)
			}
		}
	})

	t.Run("negative fixed output rejected", func(t *testing.T) {
		iv := valid()
		iv.SetFixedOutput(-10)
		if err := iv.Validate(); !errors.Is(err, astro.ErrInvalidConfiguration) {
			t.Errorf("expected ErrInvalidConfiguration, got %v", err)
		}
	})

	t.Run("zero fixed output disables sampling", func(t *testing.T) {
		iv := valid()
		iv.SetFixedOutput(0)
		if err := iv.Validate(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		if iv.SamplingEnabled() {
			t.Error("zero cadence should disable sampling")
		}
	})

	t.Run("backward interval valid", func(t *testing.T) {
		var iv Interval
		iv.SetStart(100)
		iv.SetEnd(0)
		if err := iv.Validate(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		if iv.Direction() != -1 {
			t.Errorf("expected direction -1, got %v", iv.Direction())
		}
	})
}
