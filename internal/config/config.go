package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultStep                = 10.0
	DefaultFixedOutputInterval = 60.0
	DefaultIntegrator          = "rk4"
)

// Scenario is a YAML-loadable propagation setup: interval, sampling,
// default scheme, central body and the bodies to propagate.
type Scenario struct {
	Name                string       `yaml:"name"`
	Start               float64      `yaml:"start"`
	End                 float64      `yaml:"end"`
	FixedOutputInterval float64      `yaml:"fixed_output_interval"`
	Integrator          string       `yaml:"integrator"`
	Step                float64      `yaml:"step"`
	CentralBody         CentralBody  `yaml:"central_body"`
	Bodies              []BodyConfig `yaml:"bodies"`
}

// CentralBody describes the attractor all scenario bodies orbit.
type CentralBody struct {
	Name   string  `yaml:"name"`
	Mu     float64 `yaml:"mu"`
	Radius float64 `yaml:"radius"`
	J2     float64 `yaml:"j2"`
}

// BodyConfig seeds one propagated body. Integrator and Step, when set,
// override the scenario defaults for this body only (the propagator
// delegates its advancement to a dedicated scheme).
type BodyConfig struct {
	Name         string    `yaml:"name"`
	InitialState []float64 `yaml:"initial_state"`
	Integrator   string    `yaml:"integrator"`
	Step         float64   `yaml:"step"`
}

func Default() *Scenario {
	return &Scenario{
		Name:                "custom",
		Integrator:          DefaultIntegrator,
		Step:                DefaultStep,
		FixedOutputInterval: DefaultFixedOutputInterval,
		CentralBody: CentralBody{
			Name: "earth",
			Mu:   3.986004418e14,
		},
	}
}

// Load reads a scenario file, applying defaults for omitted fields.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	scn := Default()
	if err := yaml.Unmarshal(data, scn); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	if scn.Integrator == "" {
		scn.Integrator = DefaultIntegrator
	}
	if scn.Step == 0 {
		scn.Step = DefaultStep
	}
	return scn, nil
}

// Save writes the scenario as YAML.
func (s *Scenario) Save(path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
