package propagator

import (
	"github.com/astrokit/astroprop/internal/astro"
)

// History is the time-ordered record of sampled states for one body
// across one propagation run. Keys are unique: re-sampling an epoch
// overwrites the previous snapshot instead of duplicating it. Each
// stored State is an owned copy. Histories handed out by the core are
// read-only views; samples enter through a run's BodyRecorder.
type History struct {
	times   []float64
	samples map[float64]astro.State
}

func newHistory() *History {
	return &History{samples: make(map[float64]astro.State)}
}

// record stores a snapshot at its epoch, preserving insertion order for
// new epochs.
func (h *History) record(s astro.State) {
	if _, ok := h.samples[s.Time]; !ok {
		h.times = append(h.times, s.Time)
	}
	h.samples[s.Time] = s.Clone()
}

// Times returns the sample epochs in recording order.
func (h *History) Times() []float64 {
	out := make([]float64, len(h.times))
	copy(out, h.times)
	return out
}

// At returns the snapshot recorded at epoch t.
func (h *History) At(t float64) (astro.State, bool) {
	s, ok := h.samples[t]
	if !ok {
		return astro.State{}, false
	}
	return s.Clone(), true
}

// Last returns the most recently recorded snapshot.
func (h *History) Last() (astro.State, bool) {
	if len(h.times) == 0 {
		return astro.State{}, false
	}
	return h.samples[h.times[len(h.times)-1]].Clone(), true
}

func (h *History) Len() int { return len(h.times) }

// bodyRun is one body's results for the most recent propagation run.
type bodyRun struct {
	history *History
	final   *astro.State
}

// Recorder accumulates per-body histories and final states. Re-running
// propagation replaces a body's previous run wholesale; entries are
// never appended across runs.
type Recorder struct {
	runs map[*astro.Body]*bodyRun
}

func newRecorder() *Recorder {
	return &Recorder{runs: make(map[*astro.Body]*bodyRun)}
}

// begin discards any previous run for the body and returns the
// single-body view handed to the advancer. All map mutation happens
// here, so concurrent workers only ever touch their own bodyRun.
func (r *Recorder) begin(body *astro.Body, observers []astro.Observer) *BodyRecorder {
	run := &bodyRun{history: newHistory()}
	r.runs[body] = run
	return &BodyRecorder{body: body, run: run, observers: observers}
}

func (r *Recorder) get(body *astro.Body) (*bodyRun, bool) {
	run, ok := r.runs[body]
	return run, ok
}

// BodyRecorder is the sampling sink an Advancer writes into. It is
// scoped to exactly one body's history slot.
type BodyRecorder struct {
	body      *astro.Body
	run       *bodyRun
	observers []astro.Observer
}

// Body identifies which body this recorder samples for.
func (br *BodyRecorder) Body() *astro.Body { return br.body }

// Sample records a snapshot into the body's history and notifies
// observers.
func (br *BodyRecorder) Sample(s astro.State) {
	br.run.history.record(s)
	for _, o := range br.observers {
		o.OnSample(br.body, s)
	}
}

// Finish retains the final state of the run. The advancer must call it
// with the state at the interval end boundary on success.
func (br *BodyRecorder) Finish(s astro.State) {
	clone := s.Clone()
	br.run.final = &clone
}
