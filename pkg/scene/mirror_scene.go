package scene

import (
	"github.com/raytracer101/go-raytracer/pkg/core"
	"github.com/raytracer101/go-raytracer/pkg/material"
	"github.com/raytracer101/go-raytracer/pkg/renderer"
)

// NewMirrorScene places the camera between two large perfect mirrors so the
// center of the image bounces until the depth cutoff
func NewMirrorScene() (*Scene, error) {
	samplingConfig := renderer.DefaultSamplingConfig()
	samplingConfig.SamplesPerPixel = 4

	cameraConfig := renderer.CameraConfig{
		LookFrom:    core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        60.0,
		AspectRatio: float64(samplingConfig.Width) / float64(samplingConfig.Height),
	}

	s, err := newScene(cameraConfig, samplingConfig)
	if err != nil {
		return nil, err
	}

	mirror, err := material.NewMetal(core.NewVec3(0.95, 0.95, 0.95), 0.0)
	if err != nil {
		return nil, err
	}
	tinted, err := material.NewMetal(core.NewVec3(0.9, 0.8, 0.7), 0.05)
	if err != nil {
		return nil, err
	}

	if err := s.AddSphere(core.NewVec3(0, 0, -6), 5, mirror); err != nil {
		return nil, err
	}
	if err := s.AddSphere(core.NewVec3(0, 0, 6), 5, tinted); err != nil {
		return nil, err
	}

	return s, nil
}
