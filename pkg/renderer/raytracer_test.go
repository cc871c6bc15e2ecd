package renderer

import (
	"context"
	"errors"
	"testing"

	"github.com/raytracer101/go-raytracer/pkg/core"
	"github.com/raytracer101/go-raytracer/pkg/geometry"
	"github.com/raytracer101/go-raytracer/pkg/material"
)

// testLogger routes raytracer logging to the test log
type testLogger struct {
	t *testing.T
}

func (l testLogger) Printf(format string, args ...interface{}) {
	l.t.Logf(format, args...)
}

// MockScene implements Scene for testing
type MockScene struct {
	camera *Camera
	world  *geometry.HittableList
}

func (m *MockScene) GetCamera() *Camera       { return m.camera }
func (m *MockScene) GetWorld() geometry.Shape { return m.world }
func (m *MockScene) GetBackgroundColors() (core.Vec3, core.Vec3) {
	return core.NewVec3(0.5, 0.7, 1.0), core.NewVec3(1, 1, 1)
}

func createMockScene(t *testing.T) *MockScene {
	t.Helper()
	metal, err := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.3)
	if err != nil {
		t.Fatalf("NewMetal failed: %v", err)
	}
	glass, err := material.NewDielectric(1.5)
	if err != nil {
		t.Fatalf("NewDielectric failed: %v", err)
	}

	world := geometry.NewHittableList()
	for _, sp := range []struct {
		center core.Vec3
		radius float64
		mat    material.Material
	}{
		{core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(core.NewVec3(0.8, 0.3, 0.3))},
		{core.NewVec3(0, -100.5, -1), 100, material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))},
		{core.NewVec3(1, 0, -1), 0.5, metal},
		{core.NewVec3(-1, 0, -1), 0.5, glass},
	} {
		sphere, err := geometry.NewSphere(sp.center, sp.radius, sp.mat)
		if err != nil {
			t.Fatalf("NewSphere failed: %v", err)
		}
		world.Add(sphere)
	}

	return &MockScene{camera: newTestCamera(t), world: world}
}

func TestQuantizeChannel_GammaRoundTrip(t *testing.T) {
	tests := []struct {
		linear   float64
		expected uint8
	}{
		{0, 0},
		{0.25, 127},
		{1.0, 255},
		{4.0, 255}, // Clamped
		{-0.5, 0},  // Clamped
		{0.5, 181}, // floor(255.999 * 0.7071)
	}

	for _, tt := range tests {
		if got := QuantizeChannel(tt.linear); got != tt.expected {
			t.Errorf("QuantizeChannel(%f) = %d, expected %d", tt.linear, got, tt.expected)
		}
	}
}

func TestVec3ToColor(t *testing.T) {
	c := Vec3ToColor(core.NewVec3(1, 0.25, 0))
	if c.R != 255 || c.G != 127 || c.B != 0 || c.A != 255 {
		t.Errorf("Unexpected color %v", c)
	}
}

func TestMergeSamplingConfig(t *testing.T) {
	base := DefaultSamplingConfig()
	merged := MergeSamplingConfig(base, SamplingConfig{SamplesPerPixel: 7, Seed: 9})

	if merged.SamplesPerPixel != 7 || merged.Seed != 9 {
		t.Errorf("Override fields not applied: %+v", merged)
	}
	if merged.Width != base.Width || merged.MaxDepth != base.MaxDepth || merged.TileSize != base.TileSize {
		t.Errorf("Zero override fields should keep base values: %+v", merged)
	}
}

func TestNewRaytracer_RejectsInvalidConfig(t *testing.T) {
	scene := createMockScene(t)
	invalid := []SamplingConfig{
		{Width: 0, Height: 10, SamplesPerPixel: 1, MaxDepth: 50, TileSize: 8},
		{Width: 10, Height: 10, SamplesPerPixel: 0, MaxDepth: 50, TileSize: 8},
		{Width: 10, Height: 10, SamplesPerPixel: 1, MaxDepth: 0, TileSize: 8},
		{Width: 10, Height: 10, SamplesPerPixel: 1, MaxDepth: 50, TileSize: 0},
	}
	for _, config := range invalid {
		if _, err := NewRaytracer(scene, config, testLogger{t}); err == nil {
			t.Errorf("Expected error for config %+v", config)
		}
	}
}

func TestRaytracer_DeterministicAcrossWorkerCounts(t *testing.T) {
	scene := createMockScene(t)
	config := SamplingConfig{Width: 24, Height: 12, SamplesPerPixel: 2, MaxDepth: 50, TileSize: 5, Seed: 42}

	var images [][]uint8
	for _, workers := range []int{1, 4} {
		config.NumWorkers = workers
		rt, err := NewRaytracer(scene, config, testLogger{t})
		if err != nil {
			t.Fatalf("NewRaytracer failed: %v", err)
		}
		img, stats, err := rt.Render(context.Background())
		if err != nil {
			t.Fatalf("Render with %d workers failed: %v", workers, err)
		}
		if stats.TotalPixels != 24*12 || stats.TotalSamples != 24*12*2 || stats.TilesRendered != 15 {
			t.Errorf("Unexpected stats with %d workers: %+v", workers, stats)
		}
		images = append(images, img.Pix)
	}

	if string(images[0]) != string(images[1]) {
		t.Error("Expected identical images for the same seed regardless of worker count")
	}
}

func TestRaytracer_Cancelled(t *testing.T) {
	scene := createMockScene(t)
	config := SamplingConfig{Width: 16, Height: 8, SamplesPerPixel: 1, MaxDepth: 50, TileSize: 4, NumWorkers: 2, Seed: 1}
	rt, err := NewRaytracer(scene, config, testLogger{t})
	if err != nil {
		t.Fatalf("NewRaytracer failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	img, _, err := rt.Render(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
	if img != nil {
		t.Error("Expected no image from a cancelled render")
	}
}

func TestRaytracer_RenderProducesOpaqueImage(t *testing.T) {
	scene := createMockScene(t)
	config := SamplingConfig{Width: 20, Height: 10, SamplesPerPixel: 1, MaxDepth: 50, TileSize: 8, NumWorkers: 2, Seed: 3}
	rt, err := NewRaytracer(scene, config, testLogger{t})
	if err != nil {
		t.Fatalf("NewRaytracer failed: %v", err)
	}
	if rt.Config() != config {
		t.Errorf("Config should round-trip, got %+v", rt.Config())
	}

	img, _, err := rt.Render(context.Background())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if img.Bounds().Dx() != 20 || img.Bounds().Dy() != 10 {
		t.Fatalf("Expected 20x10 image, got %v", img.Bounds())
	}
	for y := 0; y < 10; y++ {
		for x := 0; x < 20; x++ {
			if img.RGBAAt(x, y).A != 255 {
				t.Fatalf("Pixel (%d, %d) is not opaque", x, y)
			}
		}
	}
}
