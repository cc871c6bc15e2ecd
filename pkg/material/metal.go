package material

import (
	"fmt"

	"github.com/raytracer101/go-raytracer/pkg/core"
)

// NewMetal creates a new metal material. Fuzz outside [0, 1] is rejected.
func NewMetal(albedo core.Vec3, fuzz float64) (Material, error) {
	if !(fuzz >= 0 && fuzz <= 1) {
		return Material{}, fmt.Errorf("metal fuzz %v: %w", fuzz, ErrInvalidFuzz)
	}
	return Material{Kind: KindMetal, Albedo: albedo, Fuzz: fuzz}, nil
}

// scatterMetal mirrors the ray about the normal and perturbs it by fuzz
func (m Material) scatterMetal(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	reflected := core.Reflect(rayIn.Direction.Normalize(), hit.Normal)

	if m.Fuzz > 0 {
		reflected = reflected.Add(core.RandomInUnitSphere(sampler).Multiply(m.Fuzz))
	}

	scattered := core.NewRay(hit.Point, reflected)

	// Perturbed directions that point into the surface are absorbed
	scatters := scattered.Direction.Dot(hit.Normal) > 0

	return ScatterResult{
		Scattered:   scattered,
		Attenuation: m.Albedo,
	}, scatters
}
