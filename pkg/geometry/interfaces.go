package geometry

import (
	"github.com/df07/go-fresnel/pkg/core"
	"github.com/df07/go-fresnel/pkg/material"
)

// Object is a geometry collection attached to a scene. It owns the
// authoritative material and outline material records for all of its
// primitives and exposes them through snapshot getters and setters.
//
// Objects are not safe for concurrent mutation.
type Object interface {
	material.Owner

	// Material and OutlineMaterial return handles that forward to this
	// object's records.
	Material() material.Handle
	OutlineMaterial() material.Handle

	OutlineWidth() float32
	SetOutlineWidth(w float32)

	// Len returns the primitive count.
	Len() int
	Color(i int) (core.Color, error)
	SetColor(i int, rgb []float32) error

	Hit(ray core.Ray, tMin, tMax float64) (*Hit, bool)
	BoundingBox() core.AABB
}

// Container accepts newly constructed geometry. Scenes implement it.
type Container interface {
	AddGeometry(obj Object)
}

// Hit contains information about a ray-primitive intersection
type Hit struct {
	T         float64    // Parameter t along the ray
	Point     core.Vec3  // Point of intersection
	Normal    core.Vec3  // Surface normal, facing against the ray
	FrontFace bool       // Whether ray hit the front face
	Primitive int        // Index of the primitive that was hit
	Color     core.Color // Per-primitive color

	// EdgeDistance is the distance from the primitive's silhouette edge,
	// measured perpendicular to the ray. Outlines are drawn where it is
	// smaller than the object's outline width.
	EdgeDistance float64

	Object Object // Geometry that was hit
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *Hit) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}
