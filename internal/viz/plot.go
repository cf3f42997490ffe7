package viz

import (
	"math"

	"github.com/guptarohit/asciigraph"
)

// Plot renders a sampled series as an ASCII graph.
func Plot(values []float64, caption string, height int) string {
	if len(values) < 2 {
		return "not enough samples to plot"
	}
	return asciigraph.Plot(values,
		asciigraph.Height(height),
		asciigraph.Caption(caption),
	)
}

// Component extracts one state component across samples.
func Component(states [][]float64, idx int) []float64 {
	out := make([]float64, 0, len(states))
	for _, s := range states {
		if idx < len(s) {
			out = append(out, s[idx])
		}
	}
	return out
}

// Radius computes the position norm per sample, assuming the first
// half of the state vector holds position components.
func Radius(states [][]float64) []float64 {
	out := make([]float64, 0, len(states))
	for _, s := range states {
		half := len(s) / 2
		sum := 0.0
		for _, v := range s[:half] {
			sum += v * v
		}
		out = append(out, math.Sqrt(sum))
	}
	return out
}
