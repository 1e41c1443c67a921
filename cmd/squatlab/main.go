package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/squatlab/internal/biomech"
	"github.com/san-kum/squatlab/internal/config"
	"github.com/san-kum/squatlab/internal/export"
	"github.com/san-kum/squatlab/internal/tui"
	"github.com/san-kum/squatlab/internal/viz"
)

var (
	thighAngle float64
	shinAngle  float64
	torsoLen   float64
	femurLen   float64
	shinLen    float64
	feetLen    float64

	duration float64
	cycles   int
	samples  int
	plot     bool

	draw       bool
	configFile string
	preset     string
	outFile    string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "squatlab",
		Short: "squat biomechanics lab",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig()
			if err != nil {
				return err
			}
			return tui.Run(cfg)
		},
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")

	poseCmd := &cobra.Command{
		Use:   "pose",
		Short: "compute a pose from parameters",
		RunE:  runPose,
	}
	addFigureFlags(poseCmd)
	poseCmd.Flags().BoolVar(&draw, "draw", false, "render the figure to the terminal")

	animateCmd := &cobra.Command{
		Use:   "animate",
		Short: "sample the squat animation cycle",
		RunE:  runAnimate,
	}
	animateCmd.Flags().Float64Var(&duration, "duration", config.DefaultDuration, "seconds per cycle")
	animateCmd.Flags().IntVar(&cycles, "cycles", config.DefaultCycles, "cycle count")
	animateCmd.Flags().IntVar(&samples, "samples", 24, "frames to sample")
	animateCmd.Flags().BoolVar(&plot, "plot", false, "plot the angle curves")

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "export the pose as svg",
		RunE:  runExport,
	}
	addFigureFlags(exportCmd)
	exportCmd.Flags().StringVar(&outFile, "out", "pose.svg", "output file")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
			return nil
		},
	}

	rootCmd.AddCommand(poseCmd, animateCmd, exportCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func addFigureFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&thighAngle, "thigh", config.DefaultThighAngle, "thigh angle (deg)")
	cmd.Flags().Float64Var(&shinAngle, "shin-angle", config.DefaultShinAngle, "shin angle (deg)")
	cmd.Flags().Float64Var(&torsoLen, "torso", config.DefaultTorso, "torso length (m)")
	cmd.Flags().Float64Var(&femurLen, "femur", config.DefaultFemur, "femur length (m)")
	cmd.Flags().Float64Var(&shinLen, "shin", config.DefaultShin, "shin length (m)")
	cmd.Flags().Float64Var(&feetLen, "feet", config.DefaultFeet, "feet length (m)")
}

func resolveConfig() (*config.Config, error) {
	if configFile != "" {
		return config.Load(configFile)
	}
	if preset != "" {
		cfg := config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (try 'squatlab presets')", preset)
		}
		return cfg, nil
	}
	return config.DefaultConfig(), nil
}

func figureParams(cmd *cobra.Command) (*config.Config, biomech.Parameters, error) {
	cfg, err := resolveConfig()
	if err != nil {
		return nil, biomech.Parameters{}, err
	}
	p := cfg.Parameters()
	if cmd.Flags().Changed("thigh") {
		p.ThighAngle = thighAngle
	}
	if cmd.Flags().Changed("shin-angle") {
		p.ShinAngle = shinAngle
	}
	if cmd.Flags().Changed("torso") {
		p.TorsoLength = torsoLen
	}
	if cmd.Flags().Changed("femur") {
		p.FemurLength = femurLen
	}
	if cmd.Flags().Changed("shin") {
		p.ShinLength = shinLen
	}
	if cmd.Flags().Changed("feet") {
		p.FeetLength = feetLen
	}
	return cfg, p, nil
}

func runPose(cmd *cobra.Command, args []string) error {
	cfg, p, err := figureParams(cmd)
	if err != nil {
		return err
	}
	d := biomech.Evaluate(p)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "back angle\t%.3f deg\n", d.TorsoAngleDeg)
	fmt.Fprintf(w, "shoulder height\t%.3f m\n", d.ShoulderHeight)
	fmt.Fprintf(w, "torso/shin\t%.4f\n", d.TorsoShinRatio)
	fmt.Fprintf(w, "shin/torso angle\t%.4f\n", d.ShinTorsoAngleRatio)
	fmt.Fprintf(w, "ankle\t(%.3f, %.3f)\n", d.Joints.Ankle.X, d.Joints.Ankle.Y)
	fmt.Fprintf(w, "knee\t(%.3f, %.3f)\n", d.Joints.Knee.X, d.Joints.Knee.Y)
	fmt.Fprintf(w, "hip\t(%.3f, %.3f)\n", d.Joints.Hip.X, d.Joints.Hip.Y)
	fmt.Fprintf(w, "torso top\t(%.3f, %.3f)\n", d.Joints.TorsoTop.X, d.Joints.TorsoTop.Y)
	if err := w.Flush(); err != nil {
		return err
	}

	if draw {
		c := viz.NewCanvas(cfg.Display.Width, cfg.Display.Height)
		viz.DrawFigure(c, d, p, cfg.Frame(), cfg.Display.Scale)
		fmt.Println()
		fmt.Println(c.String())
	}
	return nil
}

func runAnimate(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	sched := cfg.Schedule()
	if cmd.Flags().Changed("duration") {
		sched.Duration = duration
	}
	if cmd.Flags().Changed("cycles") {
		sched.Cycles = cycles
	}

	total := sched.Duration * float64(sched.Cycles)
	if samples < 2 {
		samples = 2
	}

	if plot {
		thigh := make([]float64, samples)
		shin := make([]float64, samples)
		for i := 0; i < samples; i++ {
			f := sched.FrameAt(total * float64(i) / float64(samples-1))
			thigh[i] = f.Thigh
			shin[i] = f.Shin
		}
		graph := asciigraph.Plot(thigh,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("thigh angle (deg)"),
		)
		fmt.Println(graph)
		fmt.Println()
		graph = asciigraph.Plot(shin,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("shin angle (deg)"),
		)
		fmt.Println(graph)
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "t\tthigh\tshin\tback angle\tdone")
	p := cfg.Parameters()
	for i := 0; i < samples; i++ {
		t := total * float64(i) / float64(samples-1)
		f := sched.FrameAt(t)
		p.ThighAngle = f.Thigh
		p.ShinAngle = f.Shin
		d := biomech.Evaluate(p)
		fmt.Fprintf(w, "%.2fs\t%.1f\t%.1f\t%.2f\t%v\n", t, f.Thigh, f.Shin, d.TorsoAngleDeg, f.Complete)
	}
	return w.Flush()
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, p, err := figureParams(cmd)
	if err != nil {
		return err
	}
	d := biomech.Evaluate(p)

	svg := export.PoseToSVG(d, p, cfg.Frame(), 400, 600)
	if err := export.Write(outFile, svg); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", outFile)
	return nil
}
