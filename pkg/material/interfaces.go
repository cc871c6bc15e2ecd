package material

import (
	"errors"

	"github.com/raytracer101/go-raytracer/pkg/core"
)

var (
	// ErrInvalidFuzz is returned when a metal's fuzz lies outside [0, 1]
	ErrInvalidFuzz = errors.New("fuzz must be in [0, 1]")
	// ErrInvalidRefractiveIndex is returned for a non-positive refractive index
	ErrInvalidRefractiveIndex = errors.New("refractive index must be positive")
)

// Kind identifies one of the scattering models a Material can carry
type Kind int

const (
	KindLambertian Kind = iota
	KindMetal
	KindDielectric
)

func (k Kind) String() string {
	switch k {
	case KindLambertian:
		return "lambertian"
	case KindMetal:
		return "metal"
	case KindDielectric:
		return "dielectric"
	default:
		return "unknown"
	}
}

// Material is a closed set of scattering models selected by Kind.
// Only the fields relevant to Kind are meaningful; materials are values and
// are stored inline in the shapes that use them.
type Material struct {
	Kind            Kind
	Albedo          core.Vec3 // Lambertian and metal reflectance
	Fuzz            float64   // Metal only: 0 = perfect mirror, 1 = very fuzzy
	RefractiveIndex float64   // Dielectric only
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray  // The scattered ray
	Attenuation core.Vec3 // Color attenuation
}

// HitRecord contains information about a ray-object intersection.
// Normal is the unit outward surface normal; it is not flipped toward the ray.
type HitRecord struct {
	Point    core.Vec3 // Point of intersection
	Normal   core.Vec3 // Outward surface normal at intersection
	T        float64   // Parameter t along the ray
	Material Material  // Material of the hit object
}

// Scatter computes the attenuation and scattered ray for rayIn at hit.
// A false result means the ray was absorbed.
func (m Material) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	switch m.Kind {
	case KindLambertian:
		return m.scatterLambertian(hit, sampler)
	case KindMetal:
		return m.scatterMetal(rayIn, hit, sampler)
	case KindDielectric:
		return m.scatterDielectric(rayIn, hit, sampler)
	default:
		return ScatterResult{}, false
	}
}
