package integrator

import (
	"math"

	"github.com/raytracer101/go-raytracer/pkg/core"
	"github.com/raytracer101/go-raytracer/pkg/geometry"
)

const (
	// DefaultMaxDepth is the number of scattering events before a path returns black
	DefaultMaxDepth = 50
	// ShadowEpsilon is the minimum hit distance, keeping rays off their own surface
	ShadowEpsilon = 0.001
)

// PathTracingIntegrator implements unidirectional path tracing with a hard depth cutoff
type PathTracingIntegrator struct {
	maxDepth   int
	background Background
}

// NewPathTracingIntegrator creates a new path tracing integrator.
// A non-positive maxDepth selects DefaultMaxDepth.
func NewPathTracingIntegrator(maxDepth int, background Background) *PathTracingIntegrator {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return &PathTracingIntegrator{
		maxDepth:   maxDepth,
		background: background,
	}
}

// MaxDepth returns the recursion cutoff
func (pt *PathTracingIntegrator) MaxDepth() int {
	return pt.maxDepth
}

// RayColor computes the color for a camera ray
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world geometry.Shape, sampler core.Sampler) core.Vec3 {
	return pt.Radiance(ray, world, sampler, 0)
}

// Radiance estimates light arriving along ray after depth scattering events.
// Each call returns on a miss, an absorption or the depth cutoff, or makes
// exactly one recursive call, so at most maxDepth+1 calls are ever active.
func (pt *PathTracingIntegrator) Radiance(ray core.Ray, world geometry.Shape, sampler core.Sampler, depth int) core.Vec3 {
	hit, isHit := world.Hit(ray, ShadowEpsilon, math.Inf(1))
	if !isHit {
		return pt.background.Evaluate(ray.Direction)
	}

	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth >= pt.maxDepth {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}

	scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
	if !didScatter {
		return core.Vec3{X: 0, Y: 0, Z: 0} // Material absorbed the ray
	}

	return scatter.Attenuation.MultiplyVec(pt.Radiance(scatter.Scattered, world, sampler, depth+1))
}
