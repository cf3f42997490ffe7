package config

import (
	"fmt"
	"sort"
)

// Built-in scenarios. Epochs in seconds, states in meters and m/s.
var presets = map[string]func() *Scenario{
	"leo":     leoPreset,
	"gto":     gtoPreset,
	"molniya": molniyaPreset,
}

// Preset returns a named built-in scenario.
func Preset(name string) (*Scenario, error) {
	fn, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("unknown preset: %s", name)
	}
	return fn(), nil
}

// PresetNames lists the built-in scenarios, sorted.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// leoPreset: circular orbit at 400 km altitude, two revolutions.
func leoPreset() *Scenario {
	scn := Default()
	scn.Name = "leo"
	scn.End = 11120
	scn.FixedOutputInterval = 60
	scn.Step = 10
	scn.CentralBody.Radius = 6378137
	scn.CentralBody.J2 = 1.08262668e-3
	scn.Bodies = []BodyConfig{{
		Name:         "sat",
		InitialState: []float64{6778137, 0, 0, 0, 7668.6, 0},
	}}
	return scn
}

// gtoPreset: geostationary transfer orbit, one revolution. The highly
// eccentric arc gets rk45; a hypothetical co-propagated chaser keeps
// the scenario default.
func gtoPreset() *Scenario {
	scn := Default()
	scn.Name = "gto"
	scn.End = 38000
	scn.FixedOutputInterval = 300
	scn.Step = 30
	scn.Bodies = []BodyConfig{
		{
			Name:         "transfer",
			InitialState: []float64{6678137, 0, 0, 0, 10152, 0},
			Integrator:   "rk45",
			Step:         60,
		},
		{
			Name:         "chaser",
			InitialState: []float64{6878137, 0, 0, 0, 7612, 0},
		},
	}
	return scn
}

// molniyaPreset: critically inclined 12-hour orbit, one revolution.
func molniyaPreset() *Scenario {
	scn := Default()
	scn.Name = "molniya"
	scn.End = 43080
	scn.FixedOutputInterval = 600
	scn.Step = 30
	scn.Bodies = []BodyConfig{{
		Name:         "molniya-1",
		InitialState: []float64{6906120, 0, 0, 0, 4487.4, 8961.2},
	}}
	return scn
}
