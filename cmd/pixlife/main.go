package main

import (
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"pixlife/internal/app"
	"pixlife/internal/config"
	"pixlife/internal/render"
	"pixlife/internal/tui"
)

var (
	configFile  string
	width       int
	height      int
	seed        uint64
	stream      uint64
	density     float64
	scheme      string
	pattern     string
	scale       int
	tps         int
	parallel    bool
	generations int
)

// bindGridFlags attaches the shared board flags to a command. Flags override
// values loaded from the config file only when explicitly set.
func bindGridFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&configFile, "config", "", "config file path (yaml)")
	f.IntVar(&width, "width", 400, "grid width in cells")
	f.IntVar(&height, "height", 300, "grid height in cells")
	f.Uint64Var(&seed, "seed", 1, "seed state")
	f.Uint64Var(&stream, "stream", 1, "seed stream")
	f.Float64Var(&density, "density", 0.10, "initial alive probability")
	f.StringVar(&scheme, "scheme", "binary", "color scheme: binary, heat, neighbors")
	f.StringVar(&pattern, "pattern", "random", "starting pattern: random, glider, blinker")
	f.IntVar(&scale, "scale", 3, "pixel scale multiplier")
	f.IntVar(&tps, "tps", 30, "generations per second")
	f.BoolVar(&parallel, "parallel", false, "advance generations with row-parallel workers")
}

// loadConfig resolves defaults, the optional config file, and flag overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	f := cmd.Flags()
	if f.Changed("width") {
		cfg.Width = width
	}
	if f.Changed("height") {
		cfg.Height = height
	}
	if f.Changed("seed") {
		cfg.Seed = seed
	}
	if f.Changed("stream") {
		cfg.Stream = stream
	}
	if f.Changed("density") {
		cfg.Density = density
	}
	if f.Changed("scheme") {
		cfg.Scheme = scheme
	}
	if f.Changed("pattern") {
		cfg.Pattern = pattern
	}
	if f.Changed("scale") {
		cfg.Scale = scale
	}
	if f.Changed("tps") {
		cfg.TPS = tps
	}
	if f.Changed("parallel") {
		cfg.Parallel = parallel
	}
	return cfg, cfg.Validate()
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	sch, err := render.ParseScheme(cfg.Scheme)
	if err != nil {
		return err
	}
	return app.Run(cfg.NewGrid(), render.NewPainter(sch), cfg)
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	return tui.Run(cfg.NewGrid(), cfg)
}

// runHeadless advances the board a fixed number of generations and reports
// the population curve.
func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	grid := cfg.NewGrid()
	population := make([]float64, 0, generations+1)
	population = append(population, float64(grid.Population()))
	for i := 0; i < generations; i++ {
		cfg.Advance(grid)
		population = append(population, float64(grid.Population()))
	}

	if generations > 0 {
		fmt.Println(asciigraph.Plot(population,
			asciigraph.Height(12),
			asciigraph.Caption("live cells per generation")))
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintf(w, "grid\t%dx%d\n", grid.Width(), grid.Height())
	fmt.Fprintf(w, "generations\t%d\n", grid.Generation())
	fmt.Fprintf(w, "population\t%d\n", grid.Population())
	return w.Flush()
}

func main() {
	rootCmd := &cobra.Command{
		Use:           "pixlife",
		Short:         "Conway's Game of Life on a pixel buffer",
		RunE:          runGUI,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "watch the board in the terminal",
		RunE:  runTUI,
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "advance generations headless and plot the population",
		RunE:  runHeadless,
	}
	runCmd.Flags().IntVar(&generations, "generations", 100, "generations to advance")

	for _, cmd := range []*cobra.Command{rootCmd, tuiCmd, runCmd} {
		bindGridFlags(cmd)
	}
	rootCmd.AddCommand(tuiCmd, runCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
