package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/raytracer101/go-raytracer/pkg/core"
	"github.com/raytracer101/go-raytracer/pkg/imageio"
	"github.com/raytracer101/go-raytracer/pkg/renderer"
	"github.com/raytracer101/go-raytracer/pkg/scene"
)

// options holds the parsed command line. Zero overrides and a negative seed
// keep the scene's defaults.
type options struct {
	sceneType string
	output    string
	overrides renderer.SamplingConfig
	seed      int64
}

func main() {
	// Parse command line flags
	sceneType := flag.String("scene", "default", "Scene type (see -help for the list)")
	width := flag.Int("width", 0, "Image width in pixels (0 = scene default)")
	height := flag.Int("height", 0, "Image height in pixels (0 = scene default)")
	samples := flag.Int("samples", 0, "Samples per pixel (0 = scene default)")
	depth := flag.Int("depth", 0, "Maximum bounce depth (0 = scene default)")
	workers := flag.Int("workers", 0, "Number of parallel workers (0 = auto)")
	seed := flag.Int64("seed", -1, "Random seed (negative = scene default)")
	output := flag.String("output", "out.ppm", "Output file (.ppm or .png)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		showHelp()
		return
	}

	opts := options{
		sceneType: *sceneType,
		output:    *output,
		overrides: renderer.SamplingConfig{
			Width:           *width,
			Height:          *height,
			SamplesPerPixel: *samples,
			MaxDepth:        *depth,
			NumWorkers:      *workers,
		},
		seed: *seed,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, opts, renderer.NewDefaultLogger()); err != nil {
		fmt.Printf("Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func showHelp() {
	fmt.Println("Go Raytracer")
	fmt.Println("Usage: raytracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Available scenes:")
	for _, info := range scene.ListScenes() {
		fmt.Printf("  %-8s - %s\n", info.ID, info.Description)
	}
}

// createScene builds the named scene and applies any size override
func createScene(sceneType string, overrides renderer.SamplingConfig) (*scene.Scene, error) {
	s, err := scene.NewSceneByName(sceneType)
	if err != nil {
		return nil, err
	}

	if overrides.Width > 0 || overrides.Height > 0 {
		width, height := s.SamplingConfig.Width, s.SamplingConfig.Height
		if overrides.Width > 0 {
			width = overrides.Width
		}
		if overrides.Height > 0 {
			height = overrides.Height
		}
		if err := s.Resize(width, height); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// samplingConfig merges the command line overrides into the scene's recommended config
func samplingConfig(s *scene.Scene, opts options) renderer.SamplingConfig {
	config := renderer.MergeSamplingConfig(s.SamplingConfig, opts.overrides)
	// Zero is a valid seed, so it cannot ride on the zero-means-unset merge
	if opts.seed >= 0 {
		config.Seed = opts.seed
	}
	return config
}

// run renders the selected scene into opts.output. The output file is
// created before rendering starts so an unwritable target costs nothing.
func run(ctx context.Context, opts options, logger core.Logger) error {
	s, err := createScene(opts.sceneType, opts.overrides)
	if err != nil {
		return err
	}
	config := samplingConfig(s, opts)

	out, err := imageio.Create(opts.output)
	if err != nil {
		return err
	}

	raytracer, err := renderer.NewRaytracer(s, config, logger)
	if err != nil {
		out.Discard()
		return err
	}

	logger.Printf("Using %s scene...\n", opts.sceneType)
	img, _, err := raytracer.Render(ctx)
	if err != nil {
		out.Discard()
		return err
	}

	if err := out.Write(img); err != nil {
		return err
	}

	logger.Printf("Render saved as %s\n", out.Path())
	return nil
}
