package renderer

import (
	"errors"
	"fmt"
	"math"

	"github.com/raytracer101/go-raytracer/pkg/core"
)

// ErrDegenerateCamera is returned when a camera configuration cannot form a view basis
var ErrDegenerateCamera = errors.New("degenerate camera configuration")

// CameraConfig contains all camera configuration parameters
type CameraConfig struct {
	LookFrom    core.Vec3 // Camera position
	LookAt      core.Vec3 // Point the camera is looking at
	Up          core.Vec3 // Up direction (must not be parallel to the view direction)
	VFov        float64   // Vertical field of view in degrees
	AspectRatio float64   // Viewport width / height
}

// Camera generates rays for rendering using a pinhole model
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	config          CameraConfig
}

// NewCamera derives the viewport from config
func NewCamera(config CameraConfig) (*Camera, error) {
	if !(config.VFov > 0 && config.VFov < 180) {
		return nil, fmt.Errorf("vertical fov %v outside (0, 180): %w", config.VFov, ErrDegenerateCamera)
	}
	if !(config.AspectRatio > 0) || math.IsInf(config.AspectRatio, 1) {
		return nil, fmt.Errorf("aspect ratio %v: %w", config.AspectRatio, ErrDegenerateCamera)
	}

	forward := config.LookFrom.Subtract(config.LookAt)
	if forward.NearZero() {
		return nil, fmt.Errorf("look-from equals look-at %v: %w", config.LookAt, ErrDegenerateCamera)
	}
	side := config.Up.Cross(forward)
	if side.NearZero() {
		return nil, fmt.Errorf("up %v parallel to view direction: %w", config.Up, ErrDegenerateCamera)
	}

	theta := config.VFov * math.Pi / 180
	halfHeight := math.Tan(theta / 2)
	halfWidth := config.AspectRatio * halfHeight

	// Orthonormal basis; w points backward out of the screen
	w := forward.Normalize()
	u := side.Normalize()
	v := w.Cross(u)

	origin := config.LookFrom
	lowerLeftCorner := origin.
		Subtract(u.Multiply(halfWidth)).
		Subtract(v.Multiply(halfHeight)).
		Subtract(w)

	return &Camera{
		origin:          origin,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      u.Multiply(2 * halfWidth),
		vertical:        v.Multiply(2 * halfHeight),
		config:          config,
	}, nil
}

// GetRay generates a ray for screen coordinates (s, t) where 0 <= s,t <= 1
// and (0, 0) is the lower-left corner of the image
func (c *Camera) GetRay(s, t float64) core.Ray {
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(c.origin)

	return core.NewRay(c.origin, direction)
}

// Config returns the configuration the camera was built from
func (c *Camera) Config() CameraConfig {
	return c.config
}
