package integrator

import (
	"github.com/raytracer101/go-raytracer/pkg/core"
	"github.com/raytracer101/go-raytracer/pkg/geometry"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor returns the linear radiance arriving along ray.
	// world is read-only; sampler must not be shared between goroutines.
	RayColor(ray core.Ray, world geometry.Shape, sampler core.Sampler) core.Vec3
}

// Background is the vertical sky gradient seen by rays that escape the scene
type Background struct {
	Top    core.Vec3 // Color for straight-up rays
	Bottom core.Vec3 // Color for straight-down rays
}

// DefaultBackground blends white (down) to sky blue (up)
func DefaultBackground() Background {
	return Background{
		Top:    core.NewVec3(0.5, 0.7, 1.0),
		Bottom: core.NewVec3(1.0, 1.0, 1.0),
	}
}

// Evaluate returns the gradient color for a ray direction
func (b Background) Evaluate(direction core.Vec3) core.Vec3 {
	unitDirection := direction.Normalize()

	// Map y from [-1,1] to [0,1]
	t := 0.5 * (unitDirection.Y + 1.0)
	return b.Bottom.Lerp(b.Top, t)
}
