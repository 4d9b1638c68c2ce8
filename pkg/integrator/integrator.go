package integrator

import (
	"github.com/df07/go-fresnel/pkg/core"
	"github.com/df07/go-fresnel/pkg/scene"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor computes the linear color and alpha seen along a camera ray.
	// A non-nil error aborts the render and is returned to the caller as is.
	RayColor(ray core.Ray, sc *scene.Scene) (core.Color, float32, error)
}
