package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/astrokit/astroprop/internal/astro"
	"github.com/astrokit/astroprop/internal/propagator"
)

// Store persists completed propagation runs under a base directory:
// one directory per run holding metadata.json plus a <body>.csv history
// per propagated body.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID                  string               `json:"id"`
	Scenario            string               `json:"scenario"`
	Timestamp           time.Time            `json:"timestamp"`
	Integrator          string               `json:"integrator"`
	Start               float64              `json:"start"`
	End                 float64              `json:"end"`
	FixedOutputInterval float64              `json:"fixed_output_interval"`
	Bodies              []string             `json:"bodies"`
	Finals              map[string][]float64 `json:"finals"`
}

// Save writes the results of the most recent run of prop for the given
// bodies and returns the run ID.
func (s *Store) Save(scenario, integrator string, prop *propagator.Propagator, bodies []*astro.Body) (string, error) {
	runID := fmt.Sprintf("%s_%s", scenario, uuid.NewString()[:8])
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:                  runID,
		Scenario:            scenario,
		Timestamp:           time.Now(),
		Integrator:          integrator,
		Start:               prop.IntervalStart(),
		End:                 prop.IntervalEnd(),
		FixedOutputInterval: prop.FixedOutputInterval(),
		Finals:              make(map[string][]float64),
	}

	for _, body := range bodies {
		meta.Bodies = append(meta.Bodies, body.Name)

		final, err := prop.FinalState(body)
		if err != nil {
			return "", fmt.Errorf("save %s: %w", body.Name, err)
		}
		meta.Finals[body.Name] = final.Vector

		hist, err := prop.PropagationHistory(body)
		if err != nil {
			return "", err
		}
		if err := writeHistoryCSV(filepath.Join(runDir, body.Name+".csv"), hist); err != nil {
			return "", err
		}
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	return runID, nil
}

func writeHistoryCSV(path string, hist *propagator.History) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	defer w.Flush()

	times := hist.Times()
	if len(times) == 0 {
		return nil
	}

	first, _ := hist.At(times[0])
	header := []string{"time"}
	for i := range first.Vector {
		header = append(header, fmt.Sprintf("x%d", i))
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, t := range times {
		snap, _ := hist.At(t)
		row := []string{strconv.FormatFloat(t, 'g', -1, 64)}
		for _, val := range snap.Vector {
			row = append(row, strconv.FormatFloat(val, 'g', -1, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// List returns metadata for every stored run.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		runs = append(runs, meta)
	}

	return runs, nil
}

// Load returns the metadata of one stored run.
func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadHistory reads one body's sampled states back from a stored run.
func (s *Store) LoadHistory(runID, bodyName string) ([]float64, [][]float64, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, bodyName+".csv"))
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(records) < 2 {
		return []float64{}, [][]float64{}, nil
	}

	times := make([]float64, 0, len(records)-1)
	states := make([][]float64, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) < 2 {
			continue
		}
		t, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}

		state := make([]float64, 0, len(record)-1)
		for _, field := range record[1:] {
			val, err := strconv.ParseFloat(field, 64)
			if err != nil {
				continue
			}
			state = append(state, val)
		}

		times = append(times, t)
		states = append(states, state)
	}

	return times, states, nil
}
