package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/df07/go-fresnel/pkg/config"
	"github.com/df07/go-fresnel/pkg/core"
	"github.com/df07/go-fresnel/pkg/device"
	"github.com/df07/go-fresnel/pkg/imagetest"
	"github.com/df07/go-fresnel/pkg/renderer"
	"github.com/df07/go-fresnel/pkg/scene"
	"golang.org/x/image/draw"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run parses args, renders the selected scene and writes it below the
// output directory. Progress is printed to stdout.
func run(args []string, stdout io.Writer) error {
	flags := flag.NewFlagSet("fresnel", flag.ContinueOnError)
	flags.SetOutput(stdout)

	configPath := flags.String("config", "", "TOML configuration file")
	sceneID := flags.String("scene", "", "Builtin scene id (see -list)")
	width := flags.Int("width", 0, "Image width")
	height := flags.Int("height", 0, "Image height")
	mode := flags.String("device", "", "Execution device: 'cpu' or 'gpu'")
	limit := flags.Int("limit", 0, "Maximum CPU workers (0 = all CPUs)")
	aa := flags.Int("aa", 0, "Antialiasing samples per pixel along each axis")
	scale := flags.Float64("scale", 0, "Also write a preview scaled by this factor")
	output := flags.String("output", "", "Output root directory")
	list := flags.Bool("list", false, "List builtin scenes and exit")
	printConfig := flags.Bool("print-config", false, "Print the effective configuration and exit")
	verbose := flags.Bool("v", false, "Verbose logging")
	help := flags.Bool("help", false, "Show help information")

	flags.Usage = func() {
		fmt.Fprintln(stdout, "Fresnel Raytracer")
		fmt.Fprintln(stdout, "Usage: fresnel [options]")
		fmt.Fprintln(stdout)
		fmt.Fprintln(stdout, "Options:")
		flags.PrintDefaults()
		fmt.Fprintln(stdout)
		fmt.Fprintln(stdout, "Output will be saved to <output>/<scene>/render_<timestamp>.png")
	}

	if err := flags.Parse(args); err != nil {
		return err
	}
	if *help {
		flags.Usage()
		return nil
	}

	if *list {
		listScenes(stdout)
		return nil
	}

	if *verbose {
		core.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		defer core.SetLogger(nil)
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	// Flags given on the command line override the configuration file
	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "scene":
			cfg.Scene = *sceneID
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		case "device":
			cfg.Device.Mode = device.Mode(*mode)
		case "limit":
			cfg.Device.Limit = *limit
		case "aa":
			cfg.Tracer.Antialiasing = *aa
		case "scale":
			cfg.Preview.Scale = *scale
		case "output":
			cfg.Output = *output
		}
	})
	if err := cfg.Validate(); err != nil {
		return err
	}

	if *printConfig {
		return cfg.Encode(stdout)
	}

	filename, err := render(cfg, stdout)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Render saved as %s\n", filename)
	return nil
}

func listScenes(w io.Writer) {
	fmt.Fprintln(w, "Available scenes:")
	for _, info := range scene.Builtin() {
		fmt.Fprintf(w, "  %-18s %s\n", info.ID, info.Description)
	}
}

// render creates the device and scene described by cfg, renders it and
// returns the path of the written PNG.
func render(cfg config.Config, stdout io.Writer) (string, error) {
	dev, err := device.New(cfg.Device)
	if err != nil {
		return "", err
	}

	sc, err := scene.Create(cfg.Scene, dev)
	if err != nil {
		return "", err
	}

	tracer, err := renderer.NewDirect(dev, cfg.Width, cfg.Height)
	if err != nil {
		return "", err
	}
	if err := tracer.SetAntialiasing(cfg.Tracer.Antialiasing); err != nil {
		return "", err
	}

	fmt.Fprintf(stdout, "Rendering %s at %dx%d on %s...\n", cfg.Scene, cfg.Width, cfg.Height, dev)
	out, err := tracer.Render(sc)
	if err != nil {
		return "", err
	}

	stats := tracer.Stats()
	fmt.Fprintf(stdout, "Render completed in %v (%d tiles, %d workers, %.1f samples per pixel)\n",
		stats.Duration, stats.Tiles, stats.Workers, stats.AverageSamples)

	outputDir := filepath.Join(cfg.Output, cfg.Scene)
	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(outputDir, fmt.Sprintf("render_%s.png", timestamp))
	if err := imagetest.Save(out.Image(), filename); err != nil {
		return "", err
	}

	if cfg.Preview.Scale != 1 {
		preview := scaleImage(out.Image(), cfg.Preview.Scale)
		previewName := filepath.Join(outputDir, fmt.Sprintf("preview_%s.png", timestamp))
		if err := imagetest.Save(preview, previewName); err != nil {
			return "", err
		}
		fmt.Fprintf(stdout, "Preview saved as %s\n", previewName)
	}

	return filename, nil
}

// scaleImage resamples img by factor with a Catmull-Rom filter
func scaleImage(img *image.NRGBA, factor float64) *image.NRGBA {
	w := max(1, int(float64(img.Rect.Dx())*factor+0.5))
	h := max(1, int(float64(img.Rect.Dy())*factor+0.5))
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}
