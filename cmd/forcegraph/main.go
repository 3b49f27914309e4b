// Command forcegraph runs a headless force-directed layout and writes a
// snapshot of the settled graph with one of the bundled renderers.
package main

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/TFMV/forcegraph/graph"
	"github.com/TFMV/forcegraph/physics"
	"github.com/TFMV/forcegraph/render"
)

var (
	vertices   int
	extraEdges int
	ticks      int
	stepMillis int
	format     string
	output     string
	configFile string
	seed       uint64
	debugMode  bool
)

var rootCmd = &cobra.Command{
	Use:   "forcegraph",
	Short: "forcegraph — force-directed graph layout snapshots",
	Long: "forcegraph builds a random connected graph, settles it with the\n" +
		"graph-distance force layout, and writes the result as SVG, JSON, or DOT.",
	RunE: run,
}

func init() {
	rootCmd.Flags().IntVarP(&vertices, "vertices", "n", 30, "Number of vertices in the seed graph")
	rootCmd.Flags().IntVar(&extraEdges, "extra-edges", 10, "Edges added on top of the random spanning tree")
	rootCmd.Flags().IntVar(&ticks, "ticks", 2000, "Simulation ticks to run before the snapshot")
	rootCmd.Flags().IntVar(&stepMillis, "step", 16, "Tick duration in milliseconds")
	rootCmd.Flags().StringVarP(&format, "format", "f", "svg", "Output format: svg, json, dot")
	rootCmd.Flags().StringVarP(&output, "output", "o", "", "Output file (defaults to layout.<format>)")
	rootCmd.Flags().StringVarP(&configFile, "config", "c", "", "TOML file overriding the physics constants")
	rootCmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for the random graph (0 uses the clock)")
	rootCmd.Flags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
}

func run(cmd *cobra.Command, args []string) error {
	level := slog.LevelInfo
	if debugMode {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg, err := loadConfig(configFile)
	if err != nil {
		return err
	}
	if vertices < 1 {
		return fmt.Errorf("need at least one vertex, got %d", vertices)
	}

	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	g := seedGraph(vertices, extraEdges, rand.New(rand.NewPCG(seed, seed)))

	layout := physics.NewLayout2D(g, cfg)
	slog.Debug("layout created", "layout", layout.ID(), "vertices", g.VertexCount(), "edges", g.EdgeCount())

	step := time.Duration(stepMillis) * time.Millisecond
	start := time.Now()
	for i := 0; i < ticks; i++ {
		layout.Tick(step)
	}
	slog.Debug("simulation finished", "ticks", ticks, "elapsed", time.Since(start))

	renderer, err := render.GetRenderer(format)
	if err != nil {
		return err
	}
	data, err := renderer.Render(layout, render.NewDefaultOptions())
	if err != nil {
		return fmt.Errorf("rendering failed: %w", err)
	}

	if output == "" {
		output = "layout." + format
	}
	if err := os.WriteFile(output, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	color.Green("wrote %s (%d vertices, %d edges, %d ticks)", output, g.VertexCount(), g.EdgeCount(), ticks)
	return nil
}

// loadConfig starts from the 2D defaults and overlays any TOML file the
// user supplied.
func loadConfig(path string) (physics.Config, error) {
	cfg := physics.DefaultConfig2D()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	return cfg, nil
}

// seedGraph builds a random spanning tree over n vertices, then sprinkles
// extra edges so the layout has cycles to work against.
func seedGraph(n, extra int, rng *rand.Rand) *graph.Store {
	g := graph.New(n)
	for v := 1; v < n; v++ {
		g.AddEdge(rng.IntN(v), v)
	}
	for i := 0; i < extra && n > 2; i++ {
		u, v := rng.IntN(n), rng.IntN(n)
		if u != v {
			g.AddEdge(u, v)
		}
	}
	return g
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		color.Red("forcegraph: %v", err)
		os.Exit(1)
	}
}
