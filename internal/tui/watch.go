// Package tui provides a live terminal view of an in-progress
// propagation run, fed by the propagator's sampling observer.
package tui

import (
	"context"
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/astrokit/astroprop/internal/astro"
	"github.com/astrokit/astroprop/internal/propagator"
	"github.com/astrokit/astroprop/internal/viz"
)

const sparkCapacity = 120

type sampleMsg struct {
	body   string
	t      float64
	radius float64
}

type doneMsg struct {
	err error
}

type bodyTrack struct {
	name   string
	t      float64
	radius float64
	series []float64
}

type model struct {
	start, end float64
	order      []string
	tracks     map[string]*bodyTrack
	done       bool
	err        error
}

func newModel(prop *propagator.Propagator, bodies []*astro.Body) model {
	m := model{
		start:  prop.IntervalStart(),
		end:    prop.IntervalEnd(),
		tracks: make(map[string]*bodyTrack),
	}
	for _, b := range bodies {
		m.order = append(m.order, b.Name)
		m.tracks[b.Name] = &bodyTrack{name: b.Name, t: m.start}
	}
	return m
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	case sampleMsg:
		if tr, ok := m.tracks[msg.body]; ok {
			tr.t = msg.t
			tr.radius = msg.radius
			tr.series = append(tr.series, msg.radius)
			if len(tr.series) > sparkCapacity {
				tr.series = tr.series[1:]
			}
		}
	case doneMsg:
		m.done = true
		m.err = msg.err
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString(viz.HeaderStyle.Render("propagation"))
	b.WriteString("\n\n")

	for _, name := range m.order {
		tr := m.tracks[name]
		b.WriteString(viz.BodyStyle.Render(tr.name))
		b.WriteString("\n")
		b.WriteString(viz.PanelStyle.Render(m.trackView(tr)))
		b.WriteString("\n")
	}

	switch {
	case m.err != nil:
		b.WriteString(viz.ErrStyle.Render(fmt.Sprintf("failed: %v", m.err)))
		b.WriteString("\n")
	case m.done:
		b.WriteString(viz.ValueStyle.Render("completed"))
		b.WriteString("\n")
	}
	b.WriteString(viz.HelpStyle.Render("q: quit"))
	return b.String()
}

func (m model) trackView(tr *bodyTrack) string {
	var b strings.Builder
	b.WriteString(viz.Row("epoch", fmt.Sprintf("%.1f / %.1f", tr.t, m.end)))
	b.WriteString("\n")
	b.WriteString(progressBar(m.progress(tr.t), 40))
	b.WriteString("\n")
	if len(tr.series) >= 2 {
		b.WriteString(viz.Plot(tr.series, "radius", 5))
		b.WriteString("\n")
	}
	return b.String()
}

func (m model) progress(t float64) float64 {
	span := m.end - m.start
	if span == 0 {
		return 1
	}
	frac := (t - m.start) / span
	return math.Max(0, math.Min(1, frac))
}

func progressBar(frac float64, width int) string {
	filled := int(frac * float64(width))
	return "[" + strings.Repeat("=", filled) + strings.Repeat(" ", width-filled) + "]"
}

// Watch runs the propagation while rendering live per-body progress.
// It blocks until the run finishes and the user quits the view.
func Watch(prop *propagator.Propagator, bodies []*astro.Body) error {
	prog := tea.NewProgram(newModel(prop, bodies))

	prop.AddObserver(astro.ObserverFunc(func(b *astro.Body, s astro.State) {
		radius := s.Vector.Norm()
		if len(s.Vector) >= 6 {
			radius = s.Vector[:3].Norm()
		}
		prog.Send(sampleMsg{body: b.Name, t: s.Time, radius: radius})
	}))

	errc := make(chan error, 1)
	go func() {
		err := prop.Propagate(context.Background())
		prog.Send(doneMsg{err: err})
		errc <- err
	}()

	if _, err := prog.Run(); err != nil {
		return err
	}
	return <-errc
}
