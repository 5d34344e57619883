// Command annotdemo draws a scene of annotations and saves it as PNG, prints
// it as braille, or shows it in an interactive terminal viewer.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gogpu/annotate"
	"github.com/gogpu/annotate/recording"
	"github.com/gogpu/annotate/recording/backends/braille"
	_ "github.com/gogpu/annotate/recording/backends/raster"
)

func main() {
	var (
		scenePath = flag.String("scene", "", "YAML scene file (built-in scene if empty)")
		width     = flag.Int("width", 0, "image width, overrides the scene")
		height    = flag.Int("height", 0, "image height, overrides the scene")
		output    = flag.String("output", "demo.png", "output file")
		backend   = flag.String("backend", "raster", "playback backend: raster or braille")
		tui       = flag.Bool("tui", false, "open the interactive viewer")
		verbose   = flag.Bool("v", false, "log diagnostics to stderr")
	)
	flag.Parse()

	if *verbose {
		annotate.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	scene, err := loadScene(*scenePath)
	if err != nil {
		log.Fatalf("Failed to load scene: %v", err)
	}
	if *width > 0 {
		scene.Width = *width
	}
	if *height > 0 {
		scene.Height = *height
	}

	rec, plots, err := scene.Build()
	if err != nil {
		log.Fatalf("Failed to build scene: %v", err)
	}

	if *tui {
		if _, err := tea.NewProgram(newViewer(rec), tea.WithAltScreen()).Run(); err != nil {
			log.Fatalf("Viewer failed: %v", err)
		}
		teardown(plots)
		return
	}

	b, err := recording.NewBackend(*backend)
	if err != nil {
		log.Fatalf("Failed to create backend: %v", err)
	}
	if err := rec.Playback(b); err != nil {
		log.Fatalf("Playback failed: %v", err)
	}

	switch b := b.(type) {
	case *braille.Backend:
		if _, err := b.WriteTo(os.Stdout); err != nil {
			log.Fatalf("Failed to write: %v", err)
		}
	case recording.WriterBackend:
		if err := writeFile(*output, b); err != nil {
			log.Fatalf("Failed to save: %v", err)
		}
		log.Printf("Demo saved to %s (%dx%d)\n", *output, scene.Width, scene.Height)
	}
	teardown(plots)
}

func loadScene(path string) (*Scene, error) {
	if path == "" {
		return ParseScene([]byte(defaultScene))
	}
	return LoadScene(path)
}

func writeFile(path string, b recording.WriterBackend) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := b.WriteTo(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func teardown(plots []*annotate.Plot) {
	for _, p := range plots {
		p.Teardown()
	}
}

const defaultScene = `
width: 800
height: 600
xlim: [0, 10]
ylim: [0, 10]
ranges:
  score: [0, 1]
styles:
  - {color: C0}
  - {color: C1}
  - {color: C2}
annotations:
  - kind: VSpan
    x0: 2
    x1: 3.5
    style: {facecolor: C2, alpha: 0.25}
  - kind: HLine
    y: 8
    cycle: 1
    style: {linestyle: "--"}
  - kind: VLine
    x: 7
  - kind: Slope
    gradient: 0.6
    intercept: 1
    cycle: 2
  - kind: Text
    x: 1
    y: 9
    text: annotations
    fontsize: 18
  - kind: Arrow
    x: 7
    y: 5.2
    text: crossing
    direction: v
    points: 40
  - kind: Labels
    xs: [1, 4, 5.5, 8.5]
    ys: [2, 6, 3, 7.5]
    texts: [low, mid, dip, high]
    dims:
      score: [0.1, 0.5, 0.3, 0.95]
    color_by: score
    offset: [0, 0.3]
  - kind: Spline
    vertices: [[4, 1], [5, 4], [6, 0.5], [8, 2]]
    codes: [1, 4, 4, 4]
    style: {edgecolor: C3, linewidth: 2}
`
