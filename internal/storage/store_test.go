package storage

import (
	"context"
	"math"
	"testing"

	"github.com/astrokit/astroprop/internal/astro"
	"github.com/astrokit/astroprop/internal/integrators"
	"github.com/astrokit/astroprop/internal/propagator"
)

type unitDynamics struct{}

func (unitDynamics) Derive(x astro.Vector, t float64) astro.Vector {
	return astro.Vector{1, 1}
}

func (unitDynamics) Dim() int { return 2 }

func propagatedFixture(t *testing.T) (*propagator.Propagator, []*astro.Body) {
	t.Helper()

	prop := propagator.New(propagator.NewNumerical(integrators.NewEuler(), 1))
	prop.SetIntervalStart(0)
	prop.SetIntervalEnd(10)
	prop.SetFixedOutputInterval(5)

	body := astro.NewBody("sat")
	prop.AddBody(body)
	prop.SetDynamics(body, unitDynamics{})
	prop.SetInitialState(body, astro.NewState(0, astro.Vector{0, 0}))

	if err := prop.Propagate(context.Background()); err != nil {
		t.Fatalf("propagate: %v", err)
	}
	return prop, []*astro.Body{body}
}

func TestSaveListLoad(t *testing.T) {
	store := New(t.TempDir())
	if err := store.Init(); err != nil {
		t.Fatal(err)
	}

	prop, bodies := propagatedFixture(t)
	runID, err := store.Save("test", "euler", prop, bodies)
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	runs, err := store.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(runs) != 1 || runs[0].ID != runID {
		t.Fatalf("expected the saved run, got %+v", runs)
	}

	meta, err := store.Load(runID)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if meta.Scenario != "test" || meta.Integrator != "euler" {
		t.Errorf("metadata mismatch: %+v", meta)
	}
	if meta.Start != 0 || meta.End != 10 || meta.FixedOutputInterval != 5 {
		t.Errorf("interval metadata mismatch: %+v", meta)
	}

	final := meta.Finals["sat"]
	if len(final) != 2 || math.Abs(final[0]-10) > 1e-9 {
		t.Errorf("expected final [10 10], got %v", final)
	}
}

func TestLoadHistoryRoundTrip(t *testing.T) {
	store := New(t.TempDir())
	if err := store.Init(); err != nil {
		t.Fatal(err)
	}

	prop, bodies := propagatedFixture(t)
	runID, err := store.Save("test", "euler", prop, bodies)
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	times, states, err := store.LoadHistory(runID, "sat")
	if err != nil {
		t.Fatalf("load history: %v", err)
	}

	wantTimes := []float64{0, 5, 10}
	if len(times) != len(wantTimes) {
		t.Fatalf("expected times %v, got %v", wantTimes, times)
	}
	for i, want := range wantTimes {
		if math.Abs(times[i]-want) > 1e-9 {
			t.Errorf("time %d: expected %v, got %v", i, want, times[i])
		}
		if math.Abs(states[i][0]-want) > 1e-9 {
			t.Errorf("state %d: expected %v, got %v", i, want, states[i][0])
		}
	}
}

func TestListEmptyStore(t *testing.T) {
	store := New(t.TempDir() + "/never-created")
	runs, err := store.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}
