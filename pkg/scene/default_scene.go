package scene

import (
	"github.com/raytracer101/go-raytracer/pkg/core"
	"github.com/raytracer101/go-raytracer/pkg/material"
	"github.com/raytracer101/go-raytracer/pkg/renderer"
)

// NewDefaultScene creates the four-sphere scene: a diffuse sphere, a fuzzy
// gold metal sphere and a glass sphere resting on a large diffuse ground sphere
func NewDefaultScene() (*Scene, error) {
	samplingConfig := renderer.DefaultSamplingConfig()

	cameraConfig := renderer.CameraConfig{
		LookFrom:    core.NewVec3(-2, 2, 1),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        75.0,
		AspectRatio: float64(samplingConfig.Width) / float64(samplingConfig.Height),
	}

	s, err := newScene(cameraConfig, samplingConfig)
	if err != nil {
		return nil, err
	}

	// Create materials
	lambertianRed := material.NewLambertian(core.NewVec3(0.8, 0.3, 0.3))
	lambertianGround := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	metalGold, err := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.3)
	if err != nil {
		return nil, err
	}
	glass, err := material.NewDielectric(1.5)
	if err != nil {
		return nil, err
	}

	spheres := []struct {
		center core.Vec3
		radius float64
		mat    material.Material
	}{
		{core.NewVec3(0, 0, -1), 0.5, lambertianRed},
		{core.NewVec3(0, -100.5, -1), 100, lambertianGround},
		{core.NewVec3(1, 0, -1), 0.5, metalGold},
		{core.NewVec3(-1, 0, -1), 0.5, glass},
	}
	for _, sp := range spheres {
		if err := s.AddSphere(sp.center, sp.radius, sp.mat); err != nil {
			return nil, err
		}
	}

	return s, nil
}
