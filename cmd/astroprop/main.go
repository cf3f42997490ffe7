package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/astrokit/astroprop/internal/astro"
	"github.com/astrokit/astroprop/internal/config"
	"github.com/astrokit/astroprop/internal/propagator"
	"github.com/astrokit/astroprop/internal/storage"
	"github.com/astrokit/astroprop/internal/tui"
	"github.com/astrokit/astroprop/internal/viz"
)

var (
	dataDir    string
	preset     string
	start      float64
	end        float64
	sample     float64
	step       float64
	integrator string
	parallel   bool
	noSave     bool
	// Plot selection
	plotBody      string
	plotComponent int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "astroprop",
		Short: "orbital state propagation toolkit",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".astroprop", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [scenario.yaml]",
		Short: "propagate a scenario and store the result",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runScenario,
	}
	addScenarioFlags(runCmd)
	runCmd.Flags().BoolVar(&parallel, "parallel", false, "advance bodies on separate goroutines")
	runCmd.Flags().BoolVar(&noSave, "no-save", false, "skip storing the run")

	watchCmd := &cobra.Command{
		Use:   "watch [scenario.yaml]",
		Short: "propagate with a live terminal view",
		Args:  cobra.MaximumNArgs(1),
		RunE:  watchScenario,
	}
	addScenarioFlags(watchCmd)

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in scenarios",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.PresetNames() {
				fmt.Println(name)
			}
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show <run-id>",
		Short: "show a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}

	plotCmd := &cobra.Command{
		Use:   "plot <run-id>",
		Short: "plot a stored body history",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringVar(&plotBody, "body", "", "body name (defaults to the first body of the run)")
	plotCmd.Flags().IntVar(&plotComponent, "component", -1, "state component index (-1 plots the position radius)")

	rootCmd.AddCommand(runCmd, watchCmd, presetsCmd, listCmd, showCmd, plotCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addScenarioFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&preset, "preset", "", "use a built-in scenario")
	cmd.Flags().Float64Var(&start, "start", 0, "interval start override")
	cmd.Flags().Float64Var(&end, "end", 0, "interval end override")
	cmd.Flags().Float64Var(&sample, "sample", -1, "fixed output interval override (0 disables sampling)")
	cmd.Flags().Float64Var(&step, "step", 0, "integration step override")
	cmd.Flags().StringVar(&integrator, "integrator", "", "integration scheme override")
}

func loadScenario(cmd *cobra.Command, args []string) (*config.Scenario, error) {
	var scn *config.Scenario
	var err error
	switch {
	case preset != "":
		scn, err = config.Preset(preset)
	case len(args) == 1:
		scn, err = config.Load(args[0])
	default:
		return nil, fmt.Errorf("provide a scenario file or --preset (see 'astroprop presets')")
	}
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("start") {
		scn.Start = start
	}
	if cmd.Flags().Changed("end") {
		scn.End = end
	}
	if cmd.Flags().Changed("sample") {
		scn.FixedOutputInterval = sample
	}
	if cmd.Flags().Changed("step") {
		scn.Step = step
	}
	if integrator != "" {
		scn.Integrator = integrator
	}
	return scn, nil
}

func runScenario(cmd *cobra.Command, args []string) error {
	scn, err := loadScenario(cmd, args)
	if err != nil {
		return err
	}

	prop, bodies, err := config.Build(scn)
	if err != nil {
		return err
	}

	fmt.Print(prop.Describe())

	ctx := context.Background()
	if parallel {
		err = prop.PropagateParallel(ctx)
	} else {
		err = prop.Propagate(ctx)
	}
	if err != nil {
		// Decoupled bodies keep their partial results; report the
		// failure but still summarize what completed.
		fmt.Println(viz.ErrStyle.Render(fmt.Sprintf("propagation failed: %v", err)))
	}

	printSummary(prop, bodies)

	if !noSave && err == nil {
		store := storage.New(dataDir)
		if err := store.Init(); err != nil {
			return err
		}
		runID, err := store.Save(scn.Name, scn.Integrator, prop, bodies)
		if err != nil {
			return err
		}
		fmt.Printf("saved run %s\n", runID)
	}
	return err
}

func printSummary(prop *propagator.Propagator, bodies []*astro.Body) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "BODY\tFINAL EPOCH\tFINAL STATE")
	for _, body := range bodies {
		final, err := prop.FinalState(body)
		if err != nil {
			fmt.Fprintf(w, "%s\t-\t%v\n", body.Name, err)
			continue
		}
		fmt.Fprintf(w, "%s\t%g\t%.6g\n", body.Name, final.Time, final.Vector)
	}
	w.Flush()
}

func watchScenario(cmd *cobra.Command, args []string) error {
	scn, err := loadScenario(cmd, args)
	if err != nil {
		return err
	}

	prop, bodies, err := config.Build(scn)
	if err != nil {
		return err
	}
	return tui.Watch(prop, bodies)
}

func listRuns(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir)
	runs, err := store.List()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSCENARIO\tINTEGRATOR\tINTERVAL\tBODIES\tWHEN")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t[%g, %g]\t%d\t%s\n",
			run.ID, run.Scenario, run.Integrator, run.Start, run.End,
			len(run.Bodies), run.Timestamp.Format("2006-01-02 15:04:05"))
	}
	return w.Flush()
}

func showRun(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir)
	meta, err := store.Load(args[0])
	if err != nil {
		return err
	}

	fmt.Println(viz.HeaderStyle.Render(meta.ID))
	fmt.Println(viz.Row("scenario", meta.Scenario))
	fmt.Println(viz.Row("integrator", meta.Integrator))
	fmt.Println(viz.Row("interval", fmt.Sprintf("[%g, %g]", meta.Start, meta.End)))
	fmt.Println(viz.Row("sampling", fmt.Sprintf("%g", meta.FixedOutputInterval)))

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "BODY\tFINAL STATE")
	for _, name := range meta.Bodies {
		fmt.Fprintf(w, "%s\t%.6g\n", name, meta.Finals[name])
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir)
	meta, err := store.Load(args[0])
	if err != nil {
		return err
	}

	body := plotBody
	if body == "" {
		if len(meta.Bodies) == 0 {
			return fmt.Errorf("run %s has no bodies", meta.ID)
		}
		body = meta.Bodies[0]
	}

	_, states, err := store.LoadHistory(meta.ID, body)
	if err != nil {
		return err
	}

	var series []float64
	caption := fmt.Sprintf("%s: position radius", body)
	if plotComponent >= 0 {
		series = viz.Component(states, plotComponent)
		caption = fmt.Sprintf("%s: x%d", body, plotComponent)
	} else {
		series = viz.Radius(states)
	}

	fmt.Println(viz.Plot(series, caption, 12))
	return nil
}
