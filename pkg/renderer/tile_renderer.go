package renderer

import (
	"image"

	"github.com/raytracer101/go-raytracer/pkg/core"
	"github.com/raytracer101/go-raytracer/pkg/geometry"
	"github.com/raytracer101/go-raytracer/pkg/integrator"
)

// TileRenderer renders individual tiles using an integrator.
// It holds only read-only state and may be shared by all workers.
type TileRenderer struct {
	camera          *Camera
	world           geometry.Shape
	integrator      integrator.Integrator
	width, height   int
	samplesPerPixel int
}

// NewTileRenderer creates a new tile renderer for a width x height image
func NewTileRenderer(camera *Camera, world geometry.Shape, integratorInst integrator.Integrator, width, height, samplesPerPixel int) *TileRenderer {
	return &TileRenderer{
		camera:          camera,
		world:           world,
		integrator:      integratorInst,
		width:           width,
		height:          height,
		samplesPerPixel: samplesPerPixel,
	}
}

// RenderTileBounds renders pixels within bounds into pixelStats, which is
// indexed [y][x] in image coordinates with y=0 at the top
func (tr *TileRenderer) RenderTileBounds(bounds image.Rectangle, pixelStats [][]PixelStats, sampler core.Sampler) RenderStats {
	stats := RenderStats{TotalPixels: bounds.Dx() * bounds.Dy(), TilesRendered: 1}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			stats.TotalSamples += tr.samplePixel(x, y, &pixelStats[y][x], sampler)
		}
	}

	if stats.TotalPixels > 0 {
		stats.AverageSamples = float64(stats.TotalSamples) / float64(stats.TotalPixels)
	}
	return stats
}

// samplePixel accumulates jittered samples for the pixel at image coordinates (x, y)
func (tr *TileRenderer) samplePixel(x, y int, ps *PixelStats, sampler core.Sampler) int {
	// Camera space counts rows from the bottom
	j := tr.height - 1 - y

	for sample := 0; sample < tr.samplesPerPixel; sample++ {
		s := (float64(x) + sampler.Get1D()) / float64(tr.width)
		t := (float64(j) + sampler.Get1D()) / float64(tr.height)

		ray := tr.camera.GetRay(s, t)
		ps.AddSample(tr.integrator.RayColor(ray, tr.world, sampler))
	}

	return tr.samplesPerPixel
}
