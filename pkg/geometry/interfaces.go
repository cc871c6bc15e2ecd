package geometry

import (
	"github.com/raytracer101/go-raytracer/pkg/core"
	"github.com/raytracer101/go-raytracer/pkg/material"
)

// Shape interface for objects that can be hit by rays.
// Hit reports the nearest intersection with t strictly inside (tMin, tMax).
type Shape interface {
	Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool)
}
