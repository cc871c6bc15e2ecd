package renderer

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"math"
	"runtime"
	"time"

	"github.com/raytracer101/go-raytracer/pkg/core"
	"github.com/raytracer101/go-raytracer/pkg/geometry"
	"github.com/raytracer101/go-raytracer/pkg/integrator"
)

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	Width           int   // Image width in pixels
	Height          int   // Image height in pixels
	SamplesPerPixel int   // Number of rays per pixel
	MaxDepth        int   // Maximum ray bounce depth
	NumWorkers      int   // Number of parallel workers (0 = use CPU count)
	TileSize        int   // Size of each square tile
	Seed            int64 // Base seed; tile i uses Seed+i
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		Width:           400,
		Height:          200,
		SamplesPerPixel: 20,
		MaxDepth:        integrator.DefaultMaxDepth,
		NumWorkers:      runtime.NumCPU(),
		TileSize:        32,
		Seed:            42,
	}
}

// MergeSamplingConfig returns base with every non-zero field of override applied.
// A zero Seed counts as unset; callers that accept seed 0 must apply it themselves.
func MergeSamplingConfig(base, override SamplingConfig) SamplingConfig {
	result := base
	if override.Width > 0 {
		result.Width = override.Width
	}
	if override.Height > 0 {
		result.Height = override.Height
	}
	if override.SamplesPerPixel > 0 {
		result.SamplesPerPixel = override.SamplesPerPixel
	}
	if override.MaxDepth > 0 {
		result.MaxDepth = override.MaxDepth
	}
	if override.NumWorkers > 0 {
		result.NumWorkers = override.NumWorkers
	}
	if override.TileSize > 0 {
		result.TileSize = override.TileSize
	}
	if override.Seed != 0 {
		result.Seed = override.Seed
	}
	return result
}

// Validate reports configuration values the renderer cannot work with
func (c SamplingConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid image size %dx%d", c.Width, c.Height)
	}
	if c.SamplesPerPixel <= 0 {
		return fmt.Errorf("invalid samples per pixel %d", c.SamplesPerPixel)
	}
	if c.MaxDepth <= 0 {
		return fmt.Errorf("invalid max depth %d", c.MaxDepth)
	}
	if c.TileSize <= 0 {
		return fmt.Errorf("invalid tile size %d", c.TileSize)
	}
	return nil
}

// Scene interface to avoid circular imports
type Scene interface {
	GetCamera() *Camera
	GetWorld() geometry.Shape
	GetBackgroundColors() (topColor, bottomColor core.Vec3)
}

// Raytracer handles the rendering process
type Raytracer struct {
	scene      Scene
	config     SamplingConfig
	integrator integrator.Integrator
	logger     core.Logger
}

// NewRaytracer creates a new raytracer using a path tracing integrator
func NewRaytracer(scene Scene, config SamplingConfig, logger core.Logger) (*Raytracer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = NewDefaultLogger()
	}

	topColor, bottomColor := scene.GetBackgroundColors()
	background := integrator.Background{Top: topColor, Bottom: bottomColor}

	return &Raytracer{
		scene:      scene,
		config:     config,
		integrator: integrator.NewPathTracingIntegrator(config.MaxDepth, background),
		logger:     logger,
	}, nil
}

// Config returns the sampling configuration in use
func (rt *Raytracer) Config() SamplingConfig {
	return rt.config
}

// Render traces every pixel in parallel tiles and returns the gamma-corrected image
func (rt *Raytracer) Render(ctx context.Context) (*image.RGBA, RenderStats, error) {
	pixelStats, stats, err := rt.RenderLinear(ctx)
	if err != nil {
		return nil, RenderStats{}, err
	}

	img := image.NewRGBA(image.Rect(0, 0, rt.config.Width, rt.config.Height))
	for y := range pixelStats {
		for x := range pixelStats[y] {
			img.SetRGBA(x, y, Vec3ToColor(pixelStats[y][x].GetColor()))
		}
	}

	rt.logger.Printf("Average luminance: %.4f\n", CalculateAverageLuminance(img))
	return img, stats, nil
}

// RenderLinear renders into per-pixel accumulators without tone mapping.
// The returned array is indexed [y][x] with y=0 at the top of the image.
func (rt *Raytracer) RenderLinear(ctx context.Context) ([][]PixelStats, RenderStats, error) {
	width, height := rt.config.Width, rt.config.Height

	pixelStats := make([][]PixelStats, height)
	for y := range pixelStats {
		pixelStats[y] = make([]PixelStats, width)
	}

	tiles := NewTileGrid(width, height, rt.config.TileSize)
	tileRenderer := NewTileRenderer(rt.scene.GetCamera(), rt.scene.GetWorld(), rt.integrator,
		width, height, rt.config.SamplesPerPixel)
	pool := NewWorkerPool(tileRenderer, len(tiles), rt.config.NumWorkers)

	rt.logger.Printf("Rendering %dx%d, %d samples per pixel, max depth %d, %d tiles on %d workers...\n",
		width, height, rt.config.SamplesPerPixel, rt.config.MaxDepth, len(tiles), pool.GetNumWorkers())

	startTime := time.Now()
	pool.Start(ctx)
	for taskID, tile := range tiles {
		pool.SubmitTask(TileTask{
			Tile:       tile,
			Seed:       rt.config.Seed + int64(tile.ID),
			TaskID:     taskID,
			PixelStats: pixelStats,
		})
	}
	if err := pool.Stop(); err != nil {
		return nil, RenderStats{}, fmt.Errorf("render cancelled: %w", err)
	}

	var stats RenderStats
	for {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		stats.Merge(result.Stats)
	}

	rt.logger.Printf("Render completed in %v: %d tiles, %d samples (%.1f per pixel)\n",
		time.Since(startTime), stats.TilesRendered, stats.TotalSamples, stats.AverageSamples)

	return pixelStats, stats, nil
}

// QuantizeChannel converts a linear channel value to an 8-bit gamma-2 byte
func QuantizeChannel(c float64) uint8 {
	return Vec3ToColor(core.NewVec3(c, c, c)).R
}

// Vec3ToColor converts a linear Vec3 color to RGBA with clamping and gamma correction
func Vec3ToColor(colorVec core.Vec3) color.RGBA {
	// Clamp first so sqrt never sees a negative and bytes stay <= 255
	corrected := sanitize(colorVec).Clamp(0.0, 1.0).GammaCorrect()

	return color.RGBA{
		R: uint8(math.Floor(255.999 * corrected.X)),
		G: uint8(math.Floor(255.999 * corrected.Y)),
		B: uint8(math.Floor(255.999 * corrected.Z)),
		A: 255,
	}
}

// sanitize replaces NaN components with zero
func sanitize(v core.Vec3) core.Vec3 {
	if math.IsNaN(v.X) {
		v.X = 0
	}
	if math.IsNaN(v.Y) {
		v.Y = 0
	}
	if math.IsNaN(v.Z) {
		v.Z = 0
	}
	return v
}
