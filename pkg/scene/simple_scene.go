package scene

import (
	"github.com/raytracer101/go-raytracer/pkg/core"
	"github.com/raytracer101/go-raytracer/pkg/material"
	"github.com/raytracer101/go-raytracer/pkg/renderer"
)

// NewSimpleScene creates a single diffuse sphere on a ground sphere, seen by a
// camera at the origin looking down -z with a 90° vertical field of view
func NewSimpleScene() (*Scene, error) {
	samplingConfig := renderer.DefaultSamplingConfig()
	samplingConfig.SamplesPerPixel = 1

	cameraConfig := renderer.CameraConfig{
		LookFrom:    core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        90.0,
		AspectRatio: float64(samplingConfig.Width) / float64(samplingConfig.Height),
	}

	s, err := newScene(cameraConfig, samplingConfig)
	if err != nil {
		return nil, err
	}

	if err := s.AddSphere(core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(core.NewVec3(0.8, 0.3, 0.3))); err != nil {
		return nil, err
	}
	if err := s.AddSphere(core.NewVec3(0, -100.5, -1), 100, material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))); err != nil {
		return nil, err
	}

	return s, nil
}
