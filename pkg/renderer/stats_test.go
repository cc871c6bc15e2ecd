package renderer

import (
	"image"
	"image/color"
	"testing"

	"github.com/raytracer101/go-raytracer/pkg/core"
)

func TestCalculateAverageLuminance(t *testing.T) {
	// Red 0.2126 + green 0.7152 + blue 0.0722 + black 0 = 1.0, averaged over 4 pixels
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{255, 0, 0, 255})
	img.Set(1, 0, color.RGBA{0, 255, 0, 255})
	img.Set(0, 1, color.RGBA{0, 0, 255, 255})
	img.Set(1, 1, color.RGBA{0, 0, 0, 255})

	avgLum := CalculateAverageLuminance(img)
	expected := 0.25
	tolerance := 0.0001

	if avgLum < expected-tolerance || avgLum > expected+tolerance {
		t.Errorf("Expected average luminosity %f, got %f", expected, avgLum)
	}
}

func TestCalculateAverageLuminance_White(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, color.RGBA{255, 255, 255, 255})

	avgLum := CalculateAverageLuminance(img)
	expected := 1.0
	tolerance := 0.0001

	if avgLum < expected-tolerance || avgLum > expected+tolerance {
		t.Errorf("Expected average luminosity %f, got %f", expected, avgLum)
	}
}

func TestPixelStats_Average(t *testing.T) {
	var ps PixelStats
	if !ps.GetColor().Equals(core.Vec3{}) {
		t.Errorf("Empty pixel should be black, got %v", ps.GetColor())
	}

	ps.AddSample(core.NewVec3(1, 0, 0.5))
	ps.AddSample(core.NewVec3(0, 1, 0.5))
	if ps.SampleCount != 2 {
		t.Errorf("Expected 2 samples, got %d", ps.SampleCount)
	}
	if !ps.GetColor().Equals(core.NewVec3(0.5, 0.5, 0.5)) {
		t.Errorf("Expected average (0.5, 0.5, 0.5), got %v", ps.GetColor())
	}
}

func TestRenderStats_Merge(t *testing.T) {
	var stats RenderStats
	stats.Merge(RenderStats{TotalPixels: 4, TotalSamples: 8, TilesRendered: 1})
	stats.Merge(RenderStats{TotalPixels: 2, TotalSamples: 4, TilesRendered: 1})

	if stats.TotalPixels != 6 || stats.TotalSamples != 12 || stats.TilesRendered != 2 {
		t.Errorf("Unexpected merged stats %+v", stats)
	}
	if stats.AverageSamples != 2 {
		t.Errorf("Expected 2 samples per pixel, got %f", stats.AverageSamples)
	}
}
