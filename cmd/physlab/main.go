package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/physlab/internal/analysis"
	"github.com/san-kum/physlab/internal/config"
	"github.com/san-kum/physlab/internal/dynamo"
	"github.com/san-kum/physlab/internal/experiment"
	"github.com/san-kum/physlab/internal/physics"
	"github.com/san-kum/physlab/internal/storage"
	"github.com/san-kum/physlab/internal/viz"
)

var (
	dataDir    string
	figuresDir string
	dt         float64
	duration   float64
	theta      float64
	omega      float64
	omega0     float64
	driveFreq  float64
	driveAmp   float64
	damping    float64
	integrator string
	configFile string
	preset     string
	// Phase plot axes
	xAxis int
	yAxis int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "physlab",
		Short: "computational physics exercise lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".physlab", "data directory")
	rootCmd.PersistentFlags().StringVar(&figuresDir, "figures", config.DefaultFiguresDir, "figures output directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a pendulum simulation",
		RunE:  runSimulation,
	}
	addPendulumFlags(runCmd)
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	studyCmd := &cobra.Command{
		Use:   "study [name]",
		Short: "run a named study; no argument lists them",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runStudy,
	}
	studyCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot run results in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "period and frequency from zero crossings",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}

	phaseCmd := &cobra.Command{
		Use:   "phase [run_id]",
		Short: "phase space plot",
		Args:  cobra.ExactArgs(1),
		RunE:  phasePlot,
	}
	phaseCmd.Flags().IntVar(&xAxis, "x-axis", 0, "state index for x-axis")
	phaseCmd.Flags().IntVar(&yAxis, "y-axis", 1, "state index for y-axis")

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run data to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "watch the pendulum swing in the terminal",
		RunE:  runLive,
	}
	addPendulumFlags(liveCmd)

	compareCmd := &cobra.Command{
		Use:   "compare [integrator1] [integrator2] ...",
		Short: "compare integrators on the same pendulum",
		Args:  cobra.MinimumNArgs(1),
		RunE:  compareIntegrators,
	}
	addPendulumFlags(compareCmd)

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range config.ListPresets() {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, studyCmd, listCmd, plotCmd, analyzeCmd, phaseCmd,
		exportCmd, exportCSVCmd, exportJSONCmd, liveCmd, compareCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addPendulumFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	cmd.Flags().Float64Var(&duration, "time", 60.0, "duration")
	cmd.Flags().Float64Var(&theta, "theta", config.DefaultTheta, "initial angle")
	cmd.Flags().Float64Var(&omega, "omega", 0.0, "initial angular velocity")
	cmd.Flags().Float64Var(&omega0, "omega0", config.DefaultOmega0, "natural frequency")
	cmd.Flags().Float64Var(&driveFreq, "drive-freq", config.DefaultDriveFreq, "drive frequency")
	cmd.Flags().Float64Var(&driveAmp, "drive-amp", 0.0, "drive amplitude")
	cmd.Flags().Float64Var(&damping, "q", 0.0, "damping coefficient")
	cmd.Flags().StringVar(&integrator, "integrator", "rk4", "integrator (euler, rk4, rk45, verlet, leapfrog)")
}

// applyConfig folds preset and config-file values into the flag variables;
// flags the user set explicitly win.
func applyConfig(cmd *cobra.Command) error {
	if preset != "" {
		cfg := config.GetPreset(preset)
		if cfg == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		applyPendulum(cmd, cfg.Pendulum, cfg.Integrator)
	}

	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		applyPendulum(cmd, cfg.Pendulum, cfg.Integrator)
	}
	return nil
}

func applyPendulum(cmd *cobra.Command, pc config.PendulumConfig, integ string) {
	if !cmd.Flags().Changed("dt") && pc.Dt > 0 {
		dt = pc.Dt
	}
	if !cmd.Flags().Changed("time") && pc.Duration > 0 {
		duration = pc.Duration
	}
	if !cmd.Flags().Changed("theta") {
		theta = pc.Theta
	}
	if !cmd.Flags().Changed("omega") {
		omega = pc.Omega
	}
	if !cmd.Flags().Changed("omega0") && pc.Omega0 > 0 {
		omega0 = pc.Omega0
	}
	if !cmd.Flags().Changed("drive-freq") && pc.DriveFreq > 0 {
		driveFreq = pc.DriveFreq
	}
	if !cmd.Flags().Changed("drive-amp") {
		driveAmp = pc.DriveAmp
	}
	if !cmd.Flags().Changed("q") {
		damping = pc.Q
	}
	if !cmd.Flags().Changed("integrator") && integ != "" {
		integrator = integ
	}
}

func buildPendulum() *physics.Pendulum {
	return physics.NewPendulum(omega0, driveFreq, damping, driveAmp, dynamo.State{theta, omega})
}

func runSimulation(cmd *cobra.Command, args []string) error {
	if err := applyConfig(cmd); err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	registry := experiment.NewRegistry()
	pend := buildPendulum()
	params := map[string]float64{
		"omega0":     omega0,
		"drive_freq": driveFreq,
		"drive_amp":  driveAmp,
		"q":          damping,
		"theta0":     theta,
	}

	exp := experiment.New(experiment.Config{
		Integrator: integrator,
		InitState:  pend.Y0,
		Dt:         dt,
		Duration:   duration,
	})
	if err := exp.Setup(pend, registry.DefaultMetrics(pend)); err != nil {
		return err
	}

	fmt.Println("running pendulum simulation...")
	start := time.Now()

	result, err := exp.Run(context.Background())
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	runID, err := st.Save("pendulum", dt, duration, integrator, params, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("steps: %d\n", len(result.States))
	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6f\n", name, val)
	}

	return nil
}

func runStudy(cmd *cobra.Command, args []string) error {
	registry := experiment.NewRegistry()

	if len(args) == 0 {
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		for _, s := range registry.ListStudies() {
			fmt.Fprintf(w, "%s\t%s\n", s.Name, s.Description)
		}
		return w.Flush()
	}

	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if cmd.Flags().Changed("figures") || cfg.FiguresDir == "" {
		cfg.FiguresDir = figuresDir
	}

	return registry.RunStudy(context.Background(), args[0], cfg)
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTUDY\tTIME\tDURATION\tDT\tINTEG")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2fs\t%.4fs\t%s\n",
			run.ID,
			run.Study,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Duration,
			run.Dt,
			run.Integrator,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	states, _, err := st.LoadStates(runID)
	if err != nil {
		return err
	}

	if len(states) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("samples: %d\n\n", len(states))

	captions := []string{"theta (angle)", "omega (angular velocity)"}
	for varIdx := 0; varIdx < len(states[0]); varIdx++ {
		data := make([]float64, len(states))
		for i := range states {
			if varIdx < len(states[i]) {
				data[i] = states[i][varIdx]
			}
		}

		caption := fmt.Sprintf("x%d vs time", varIdx)
		if varIdx < len(captions) {
			caption = captions[varIdx]
		}

		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(caption),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	states, times, err := st.LoadStates(runID)
	if err != nil {
		return err
	}

	result := &dynamo.Result{Times: times}
	result.States = make([]dynamo.State, len(states))
	for i, s := range states {
		result.States[i] = s
	}

	fmt.Printf("crossing analysis: %s\n\n", meta.ID)

	crossings, err := analysis.Crossings(result, 0)
	if err != nil {
		return err
	}
	fmt.Printf("rising zero crossings: %d\n", len(crossings))

	period, err := analysis.Period(result, 0)
	if err != nil {
		return err
	}
	freq, err := analysis.Frequency(result, 0)
	if err != nil {
		return err
	}

	fmt.Printf("period: %.6f s\n", period)
	fmt.Printf("frequency: %.6f hz\n", freq)
	return nil
}

func phasePlot(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	states, _, err := st.LoadStates(runID)
	if err != nil {
		return err
	}

	if len(states) == 0 {
		return fmt.Errorf("no data to plot")
	}

	if len(states[0]) <= xAxis || len(states[0]) <= yAxis {
		return fmt.Errorf("state dimension too small for selected axes")
	}

	fmt.Printf("phase space plot: %s\n", meta.ID)
	fmt.Printf("x-axis: x%d, y-axis: x%d\n\n", xAxis, yAxis)

	xData := make([]float64, len(states))
	yData := make([]float64, len(states))
	for i := range states {
		xData[i] = analysis.Wrap(states[i][xAxis])
		yData[i] = states[i][yAxis]
	}

	xMin, xMax := xData[0], xData[0]
	yMin, yMax := yData[0], yData[0]
	for i := range xData {
		if xData[i] < xMin {
			xMin = xData[i]
		}
		if xData[i] > xMax {
			xMax = xData[i]
		}
		if yData[i] < yMin {
			yMin = yData[i]
		}
		if yData[i] > yMax {
			yMax = yData[i]
		}
	}

	xRange := xMax - xMin
	yRange := yMax - yMin
	if xRange == 0 {
		xRange = 1
	}
	if yRange == 0 {
		yRange = 1
	}

	width := 70
	height := 20
	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = make([]rune, width)
		for j := range canvas[i] {
			canvas[i][j] = ' '
		}
	}

	for i := range xData {
		px := int(float64(width-1) * (xData[i] - xMin) / xRange)
		py := int(float64(height-1) * (yData[i] - yMin) / yRange)
		py = height - 1 - py
		if px >= 0 && px < width && py >= 0 && py < height {
			if i < len(xData)/3 {
				canvas[py][px] = '.'
			} else if i < 2*len(xData)/3 {
				canvas[py][px] = 'o'
			} else {
				canvas[py][px] = '●'
			}
		}
	}

	fmt.Printf("  %.2f ┌", yMax)
	fmt.Print(strings.Repeat("─", width))
	fmt.Println("┐")

	for i := range canvas {
		if i == height/2 {
			fmt.Printf("  %.2f │", (yMax+yMin)/2)
		} else {
			fmt.Print("       │")
		}
		fmt.Print(string(canvas[i]))
		fmt.Println("│")
	}

	fmt.Printf("  %.2f └", yMin)
	fmt.Print(strings.Repeat("─", width))
	fmt.Println("┘")

	fmt.Printf("       %.2f%s%.2f\n", xMin, strings.Repeat(" ", width-20), xMax)
	fmt.Printf("\nLegend: . = early, o = middle, ● = late\n")

	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	states, times, err := st.LoadStates(runID)
	if err != nil {
		return err
	}

	if len(states) == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	header := []string{"time"}
	for i := range states[0] {
		header = append(header, fmt.Sprintf("x%d", i))
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for i := range states {
		row := []string{strconv.FormatFloat(times[i], 'f', 6, 64)}
		for _, val := range states[i] {
			row = append(row, strconv.FormatFloat(val, 'f', 6, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	states, times, err := st.LoadStates(runID)
	if err != nil {
		return err
	}

	result := &dynamo.Result{
		States:  make([]dynamo.State, len(states)),
		Times:   times,
		Metrics: meta.Metrics,
	}
	for i, s := range states {
		result.States[i] = s
	}

	return storage.ExportJSONStdout(meta.Study, meta.Integrator, meta.Dt, meta.Duration, result)
}

func runLive(cmd *cobra.Command, args []string) error {
	if err := applyConfig(cmd); err != nil {
		return err
	}

	registry := experiment.NewRegistry()
	integ, err := registry.GetIntegrator(integrator)
	if err != nil {
		return err
	}

	m := viz.NewModel(buildPendulum(), integ, dt)
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func compareIntegrators(cmd *cobra.Command, args []string) error {
	registry := experiment.NewRegistry()
	pend := buildPendulum()

	fmt.Printf("comparing integrators (dt=%.4f, duration=%.1fs)\n\n", dt, duration)
	fmt.Printf("%-12s  %-12s  %-12s  %-12s\n", "integrator", "final_theta", "energy_drift", "time_ms")
	fmt.Println(strings.Repeat("-", 52))

	for _, intName := range args {
		integ, err := registry.GetIntegrator(intName)
		if err != nil {
			fmt.Printf("%-12s  error: %v\n", intName, err)
			continue
		}

		s := dynamo.New(pend, integ)
		cfg := dynamo.DefaultConfig()
		cfg.Dt = dt
		cfg.Duration = duration

		start := time.Now()
		result, err := s.Run(context.Background(), pend.Y0, cfg)
		elapsed := time.Since(start)

		if err != nil {
			fmt.Printf("%-12s  error: %v\n", intName, err)
			continue
		}

		finalTheta := 0.0
		if len(result.States) > 0 {
			finalTheta = result.States[len(result.States)-1][0]
		}

		fmt.Printf("%-12s  %12.6f  %12.2e  %12.2f\n",
			intName, finalTheta, result.EnergyDrift, float64(elapsed.Microseconds())/1000)
	}

	return nil
}
