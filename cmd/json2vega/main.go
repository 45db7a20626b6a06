package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/ffarhour/vegagraph/engine"
	"github.com/ffarhour/vegagraph/export"
	"github.com/ffarhour/vegagraph/helpers"
	"github.com/ffarhour/vegagraph/render"
)

// ============================================================================
// JSON2VEGA CLI — Benchmark JSON → Vega chart specs
// ============================================================================

const version = "0.1.0"

// ANSI palette for status lines.
const (
	colorGreen = "\033[92m"
	colorRed   = "\033[91m"
	colorBold  = "\033[1m"
	colorEnd   = "\033[0m"
)

func main() {
	// ── Flags ─────────────────────────────────────────────────────────────
	inputDir := flag.String("input", "../gunrock-output/", "Directory containing benchmark result JSON files")
	outputDir := flag.String("output", "output/", "Directory for generated chart specs")
	configDir := flag.String("config", "config_files/", "Directory containing <charttype>_config.json templates")
	chartType := flag.String("type", "bar", "Chart type: bar, scatter, heatmap")
	engineName := flag.String("engine", "gunrock", "Engine name used for file naming")
	algorithm := flag.String("algorithm", "", "Algorithm name: selects input files and names output")
	xField := flag.String("x", "dataset", "Field plotted on the x axis")
	yField := flag.String("y", "m_teps", "Field plotted on the y axis")
	xLabel := flag.String("x-label", "", "X axis display title (defaults to the x field)")
	yLabel := flag.String("y-label", "", "Y axis display title (defaults to the y field)")
	conditions := flag.String("conditions", "", `Equality filters as JSON, e.g. '{"algorithm":"BFS","undirected":true}'`)
	suffix := flag.String("suffix", "", "Output file suffix (random when empty)")
	manifestPath := flag.String("manifest", "", "Chart manifest YAML (batch mode; overrides single-chart flags)")
	rendererCmd := flag.String("renderer", "", "Chart compiler command (default vl2vg, or $VEGAGRAPH_RENDERER)")
	timeout := flag.Duration("timeout", render.DefaultTimeout, "Renderer subprocess timeout")
	exportTxt := flag.String("export-tableau", "", "Write Tableau two-line txt for --input to this file and exit")
	showVersion := flag.Bool("version", false, "Print version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `json2vega — converts benchmark JSON from graph-algorithm runs to Vega specs

Usage:
  json2vega --algorithm BFS --conditions '{"algorithm":"BFS","undirected":true}'
  json2vega --manifest charts.yaml
  json2vega --input results/ --export-tableau output.txt

Flags:
`)
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Environment (also read from .env):
  VEGAGRAPH_RENDERER    Chart compiler command (default vl2vg)

The compiler receives the assembled vega-lite spec on stdin and must emit
the compiled vega spec on stdout. Output files are named
_<engine>_<algorithm>_<suffix>.json; the leading underscore keeps them out
of later input scans.
`)
	}

	flag.Parse()
	_ = godotenv.Load()

	if *showVersion {
		fmt.Printf("json2vega %s\n", version)
		os.Exit(0)
	}

	// ── Export mode ───────────────────────────────────────────────────────
	if *exportTxt != "" {
		f, err := os.Create(*exportTxt)
		if err != nil {
			fatalf("Failed to create export file: %v", err)
		}
		defer f.Close()
		if err := export.Tableau(f, *inputDir); err != nil {
			fatalf("Export failed: %v", err)
		}
		okf("Wrote %s", *exportTxt)
		return
	}

	// ── Renderer ──────────────────────────────────────────────────────────
	cmdPath := *rendererCmd
	if cmdPath == "" {
		cmdPath = os.Getenv("VEGAGRAPH_RENDERER")
	}
	opts := []render.Option{render.WithTimeout(*timeout)}
	if cmdPath != "" {
		opts = append(opts, render.WithCommand(cmdPath))
	}
	renderer := render.NewCommand(opts...)

	// ── Manifest mode ─────────────────────────────────────────────────────
	if *manifestPath != "" {
		runManifest(*manifestPath, renderer)
		return
	}

	// ── Single chart mode ─────────────────────────────────────────────────
	if *algorithm == "" {
		fmt.Fprintln(os.Stderr, "Error: --algorithm is required")
		flag.Usage()
		os.Exit(1)
	}

	filters := engine.Filters{}
	if *conditions != "" {
		if err := json.Unmarshal([]byte(*conditions), &filters); err != nil {
			fatalf("Invalid --conditions JSON: %v", err)
		}
	}

	variant, err := engine.ParseVariant(*chartType)
	if err != nil {
		fatalf("%v", err)
	}

	xTitle := *xLabel
	if xTitle == "" {
		xTitle = *xField
	}
	yTitle := *yLabel
	if yTitle == "" {
		yTitle = *yField
	}

	chart := engine.Chart{
		Variant: variant,
		Filters: filters,
		Axes:    engine.AxisMapping{X: *xField, Y: *yField},
		Labels: engine.Labels{
			Engine:     *engineName,
			Algorithm:  *algorithm,
			XAxis:      xTitle,
			YAxis:      yTitle,
			FileSuffix: *suffix,
		},
	}

	store, err := helpers.NewTemplateStore(*configDir)
	if err != nil {
		fatalf("%v", err)
	}

	name, err := generate(chart, *inputDir, *outputDir, store, renderer)
	if err != nil {
		fatalf("%v", err)
	}
	okf("Wrote %s", name)
}

// ============================================================================
// GENERATION — one chart per call, invocations fully independent
// ============================================================================

// generate runs the full pipeline for one chart and writes the compiled
// spec. Returns the output path.
func generate(chart engine.Chart, inputDir, outputDir string, store *helpers.TemplateStore, renderer render.Renderer) (string, error) {
	table, err := helpers.LoadTable(inputDir, chart.Labels.Algorithm)
	if err != nil {
		return "", fmt.Errorf("load: %w", err)
	}
	log.Printf("Loaded %d %s records from %s", table.Len(), chart.Labels.Algorithm, inputDir)

	tpl, err := store.Load(chart.Variant.String())
	if err != nil {
		return "", fmt.Errorf("config: %w", err)
	}

	spec, err := engine.Assemble(tpl, table, chart)
	if err != nil {
		return "", fmt.Errorf("assemble: %w", err)
	}

	compiled, err := renderer.Render(context.Background(), spec)
	if err != nil {
		return "", fmt.Errorf("render: %w", err)
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(outputDir, helpers.OutputFileName(chart.Labels))
	if err := os.WriteFile(path, compiled, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// runManifest generates every chart in the manifest, skipping failed ones.
func runManifest(path string, renderer render.Renderer) {
	m, err := helpers.LoadManifest(path)
	if err != nil {
		fatalf("%v", err)
	}

	store, err := helpers.NewTemplateStore(m.ConfigDir)
	if err != nil {
		fatalf("%v", err)
	}

	failed := 0
	for i, entry := range m.Charts {
		chart, err := entry.ToChart()
		if err != nil {
			warnf("Chart %d: %v", i+1, err)
			failed++
			continue
		}
		name, err := generate(chart, m.InputDir, m.OutputDir, store, renderer)
		if err != nil {
			warnf("Chart %d (%s %s): %v", i+1, entry.Type, entry.Algorithm, err)
			failed++
			continue
		}
		okf("Chart %d: wrote %s", i+1, name)
	}

	if failed > 0 {
		fatalf("%d of %d charts failed", failed, len(m.Charts))
	}
}

// ============================================================================
// HELPERS
// ============================================================================

func okf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorGreen+format+colorEnd+"\n", args...)
}

func warnf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorRed+format+colorEnd+"\n", args...)
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorBold+colorRed+"Error: "+format+colorEnd+"\n", args...)
	os.Exit(1)
}
