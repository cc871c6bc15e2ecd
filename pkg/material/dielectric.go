package material

import (
	"fmt"
	"math"

	"github.com/raytracer101/go-raytracer/pkg/core"
)

// NewDielectric creates a new transparent material like glass
func NewDielectric(refractiveIndex float64) (Material, error) {
	if !(refractiveIndex > 0) || math.IsInf(refractiveIndex, 1) {
		return Material{}, fmt.Errorf("dielectric index %v: %w", refractiveIndex, ErrInvalidRefractiveIndex)
	}
	return Material{Kind: KindDielectric, RefractiveIndex: refractiveIndex}, nil
}

// Interface describes which side of a dielectric boundary a ray arrives from
type Interface struct {
	Entering        bool      // Ray travels from outside into the medium
	Normal          core.Vec3 // Normal on the incoming side of the surface
	RefractionRatio float64   // eta_incident / eta_transmitted
}

// Orient resolves the boundary for a ray with direction dir hitting a surface
// with outward normal n. A ray is entering when it travels against the normal.
func Orient(dir, n core.Vec3, refractiveIndex float64) Interface {
	if dir.Dot(n) < 0 {
		return Interface{Entering: true, Normal: n, RefractionRatio: 1.0 / refractiveIndex}
	}
	return Interface{Entering: false, Normal: n.Negate(), RefractionRatio: refractiveIndex}
}

// CannotRefract reports total internal reflection for the given cosine
func CannotRefract(cosTheta, refractionRatio float64) bool {
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)
	return refractionRatio*sinTheta > 1.0
}

// ShouldReflect decides between reflection and refraction. draw is a uniform
// sample in [0, 1) compared against the Schlick reflectance.
func ShouldReflect(cosTheta, refractionRatio, draw float64) bool {
	return CannotRefract(cosTheta, refractionRatio) || draw < Reflectance(cosTheta, refractionRatio)
}

// scatterDielectric reflects or refracts; glass absorbs nothing
func (m Material) scatterDielectric(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	unitDirection := rayIn.Direction.Normalize()
	boundary := Orient(unitDirection, hit.Normal, m.RefractiveIndex)

	cosTheta := math.Min(unitDirection.Negate().Dot(boundary.Normal), 1.0)

	var direction core.Vec3
	if ShouldReflect(cosTheta, boundary.RefractionRatio, sampler.Get1D()) {
		direction = core.Reflect(unitDirection, boundary.Normal)
	} else {
		direction = Refract(unitDirection, boundary.Normal, boundary.RefractionRatio)
	}

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, direction),
		Attenuation: core.NewVec3(1.0, 1.0, 1.0),
	}, true
}

// Refract bends the unit vector uv through a surface with normal n using Snell's law
func Refract(uv, n core.Vec3, etaiOverEtat float64) core.Vec3 {
	cosTheta := math.Min(uv.Negate().Dot(n), 1.0)
	rOutPerp := uv.Add(n.Multiply(cosTheta)).Multiply(etaiOverEtat)
	rOutParallel := n.Multiply(-math.Sqrt(math.Abs(1.0 - rOutPerp.LengthSquared())))
	return rOutPerp.Add(rOutParallel)
}

// Reflectance calculates the Fresnel reflectance using Schlick's approximation
func Reflectance(cosine, refractionRatio float64) float64 {
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
