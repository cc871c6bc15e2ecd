package scene

import (
	"fmt"

	"github.com/raytracer101/go-raytracer/pkg/core"
	"github.com/raytracer101/go-raytracer/pkg/geometry"
	"github.com/raytracer101/go-raytracer/pkg/material"
	"github.com/raytracer101/go-raytracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering.
// It is not modified once a render starts.
type Scene struct {
	Camera         *renderer.Camera
	CameraConfig   renderer.CameraConfig
	World          *geometry.HittableList  // Objects in the scene
	SamplingConfig renderer.SamplingConfig // Recommended sampling for this scene
	TopColor       core.Vec3               // Sky color straight up
	BottomColor    core.Vec3               // Sky color straight down
}

// newScene creates an empty scene with the default sky and a camera built from cameraConfig
func newScene(cameraConfig renderer.CameraConfig, samplingConfig renderer.SamplingConfig) (*Scene, error) {
	camera, err := renderer.NewCamera(cameraConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create camera: %w", err)
	}

	return &Scene{
		Camera:         camera,
		CameraConfig:   cameraConfig,
		World:          geometry.NewHittableList(),
		SamplingConfig: samplingConfig,
		TopColor:       core.NewVec3(0.5, 0.7, 1.0), // blue sky
		BottomColor:    core.NewVec3(1.0, 1.0, 1.0), // white horizon
	}, nil
}

// GetCamera returns the scene camera
func (s *Scene) GetCamera() *renderer.Camera {
	return s.Camera
}

// GetWorld returns the shapes to intersect
func (s *Scene) GetWorld() geometry.Shape {
	return s.World
}

// GetBackgroundColors returns the sky gradient endpoints
func (s *Scene) GetBackgroundColors() (topColor, bottomColor core.Vec3) {
	return s.TopColor, s.BottomColor
}

// AddSphere adds a sphere with the given material to the scene
func (s *Scene) AddSphere(center core.Vec3, radius float64, mat material.Material) error {
	sphere, err := geometry.NewSphere(center, radius, mat)
	if err != nil {
		return err
	}
	s.World.Add(sphere)
	return nil
}

// Resize changes the output resolution and rebuilds the camera for the new aspect ratio
func (s *Scene) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid image size %dx%d", width, height)
	}

	cameraConfig := s.CameraConfig
	cameraConfig.AspectRatio = float64(width) / float64(height)
	camera, err := renderer.NewCamera(cameraConfig)
	if err != nil {
		return fmt.Errorf("failed to resize camera: %w", err)
	}

	s.Camera = camera
	s.CameraConfig = cameraConfig
	s.SamplingConfig.Width = width
	s.SamplingConfig.Height = height
	return nil
}
