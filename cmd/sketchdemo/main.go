// Command sketchdemo replays a drawing scenario and writes the final frame
// as a PNG image.
//
// Usage:
//
//	sketchdemo -script zigzag.yaml -output zigzag.png -zoom 2
//
// Without -script a built-in scenario is replayed.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"

	"golang.org/x/image/draw"

	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/internal/script"
)

const builtin = `
name: builtin
canvas: {width: 240, height: 240}
steps:
  - {op: down, x: 20, y: 20}
  - {op: move, points: [[60, 40], [100, 30], [140, 80], [180, 60], [220, 120]]}
  - {op: up}
  - {op: pick, angle: 120}
  - {op: down, x: 30, y: 200}
  - {op: move, points: [[80, 150], [120, 210], [170, 150], [210, 200]]}
  - {op: up}
  - {op: rotate, angle: 60}
  - {op: down, x: 120, y: 120}
  - {op: up}
`

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "sketchdemo: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		scriptPath = flag.String("script", "", "scenario file (YAML); empty replays a built-in demo")
		output     = flag.String("output", "sketch.png", "output file")
		wheel      = flag.String("wheel", "", "also write the color wheel to this file")
		zoom       = flag.Int("zoom", 1, "integer upscale factor for the written images")
		verbose    = flag.Bool("v", false, "log stroke events")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	sketch.SetLogger(logger)

	if *zoom < 1 {
		return fmt.Errorf("zoom must be at least 1, got %d", *zoom)
	}

	s, err := loadScenario(*scriptPath)
	if err != nil {
		return err
	}

	player, err := script.NewPlayer(s)
	if err != nil {
		return err
	}
	if err := player.Run(); err != nil {
		return fmt.Errorf("replay %s: %w", s.Name, err)
	}

	if err := writePNG(*output, player.Frame(), *zoom); err != nil {
		return err
	}
	logger.Info("frame written", "path", *output, "scenario", s.Name, "strokes", player.Commits())

	if *wheel != "" {
		w, h := player.Picker.Size()
		buf := sketch.NewRasterBuffer(w, h)
		player.Picker.Render(buf)
		if err := writePNG(*wheel, buf, *zoom); err != nil {
			return err
		}
		logger.Info("wheel written", "path", *wheel)
	}
	return nil
}

func loadScenario(path string) (script.Scenario, error) {
	if path == "" {
		return script.Parse([]byte(builtin))
	}
	return script.Load(path)
}

func writePNG(path string, buf *sketch.RasterBuffer, zoom int) error {
	var img image.Image = buf.ToImage()
	if zoom > 1 {
		b := img.Bounds()
		dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*zoom, b.Dy()*zoom))
		draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
		img = dst
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
