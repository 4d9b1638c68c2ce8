package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-fresnel/pkg/core"
	"github.com/df07/go-fresnel/pkg/material"
)

// Sphere is a collection of spheres that share one material and one
// outline material. Each sphere has its own position, radius and color.
type Sphere struct {
	position []core.Vec3
	radius   []float64
	color    []core.Color

	material        material.Record
	outlineMaterial material.Record
	outlineWidth    float32
}

// NewSphere creates sphere geometry with one primitive per position and
// attaches it to c. Every position must have three components. Colors and
// radii given through options must have one entry per position.
func NewSphere(c Container, positions [][]float64, radius float64, opts ...Option) (*Sphere, error) {
	if c == nil {
		return nil, fmt.Errorf("%w: sphere geometry needs a scene", core.ErrInvalidArgument)
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	n := len(positions)
	s := &Sphere{
		position:        make([]core.Vec3, n),
		radius:          make([]float64, n),
		color:           make([]core.Color, n),
		material:        defaultMaterial(),
		outlineMaterial: defaultOutlineMaterial(),
		outlineWidth:    o.outlineWidth,
	}

	for i, p := range positions {
		v, err := core.Vec3FromSlice(p)
		if err != nil {
			return nil, fmt.Errorf("position %d: %w", i, err)
		}
		s.position[i] = v
	}

	switch {
	case o.radii != nil:
		if len(o.radii) != n {
			return nil, fmt.Errorf("%w: got %d radii for %d spheres", core.ErrInvalidArgument, len(o.radii), n)
		}
		copy(s.radius, o.radii)
	case radius <= 0:
		return nil, fmt.Errorf("%w: radius must be positive, got %g", core.ErrInvalidArgument, radius)
	default:
		for i := range s.radius {
			s.radius[i] = radius
		}
	}

	if o.colors != nil {
		if len(o.colors) != n {
			return nil, fmt.Errorf("%w: got %d colors for %d spheres", core.ErrInvalidArgument, len(o.colors), n)
		}
		for i, rgb := range o.colors {
			col, err := core.ColorFromSlice(rgb)
			if err != nil {
				return nil, fmt.Errorf("color %d: %w", i, err)
			}
			s.color[i] = col
		}
	}

	if o.material != nil {
		s.material = *o.material
	}
	if o.outlineMaterial != nil {
		s.outlineMaterial = *o.outlineMaterial
	}

	c.AddGeometry(s)
	return s, nil
}

// GetMaterial returns a copy of the primary material record
func (s *Sphere) GetMaterial() material.Record { return s.material }

// SetMaterial replaces the primary material record
func (s *Sphere) SetMaterial(r material.Record) { s.material = r }

// GetOutlineMaterial returns a copy of the outline material record
func (s *Sphere) GetOutlineMaterial() material.Record { return s.outlineMaterial }

// SetOutlineMaterial replaces the outline material record
func (s *Sphere) SetOutlineMaterial(r material.Record) { s.outlineMaterial = r }

// Material returns a handle bound to the primary material
func (s *Sphere) Material() material.Handle { return material.Attach(s) }

// OutlineMaterial returns a handle bound to the outline material
func (s *Sphere) OutlineMaterial() material.Handle { return material.AttachOutline(s) }

func (s *Sphere) OutlineWidth() float32 { return s.outlineWidth }

func (s *Sphere) SetOutlineWidth(w float32) { s.outlineWidth = w }

// Len returns the number of spheres
func (s *Sphere) Len() int { return len(s.position) }

func (s *Sphere) checkIndex(i int) error {
	if i < 0 || i >= len(s.position) {
		return fmt.Errorf("%w: primitive %d, have %d", core.ErrOutOfRange, i, len(s.position))
	}
	return nil
}

// Color returns the color of sphere i
func (s *Sphere) Color(i int) (core.Color, error) {
	if err := s.checkIndex(i); err != nil {
		return core.Color{}, err
	}
	return s.color[i], nil
}

// SetColor replaces the color of sphere i
func (s *Sphere) SetColor(i int, rgb []float32) error {
	if err := s.checkIndex(i); err != nil {
		return err
	}
	col, err := core.ColorFromSlice(rgb)
	if err != nil {
		return err
	}
	s.color[i] = col
	return nil
}

// Position returns the center of sphere i
func (s *Sphere) Position(i int) (core.Vec3, error) {
	if err := s.checkIndex(i); err != nil {
		return core.Vec3{}, err
	}
	return s.position[i], nil
}

// SetPosition moves sphere i
func (s *Sphere) SetPosition(i int, p []float64) error {
	if err := s.checkIndex(i); err != nil {
		return err
	}
	v, err := core.Vec3FromSlice(p)
	if err != nil {
		return err
	}
	s.position[i] = v
	return nil
}

// Radius returns the radius of sphere i
func (s *Sphere) Radius(i int) (float64, error) {
	if err := s.checkIndex(i); err != nil {
		return 0, err
	}
	return s.radius[i], nil
}

// SetRadius changes the radius of sphere i
func (s *Sphere) SetRadius(i int, r float64) error {
	if err := s.checkIndex(i); err != nil {
		return err
	}
	if r <= 0 {
		return fmt.Errorf("%w: radius must be positive, got %g", core.ErrInvalidArgument, r)
	}
	s.radius[i] = r
	return nil
}

// Hit returns the nearest sphere intersection within [tMin, tMax]
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (*Hit, bool) {
	var closest *Hit
	for i := range s.position {
		if hit, ok := s.hitPrimitive(i, ray, tMin, tMax); ok {
			closest = hit
			tMax = hit.T
		}
	}
	return closest, closest != nil
}

func (s *Sphere) hitPrimitive(i int, ray core.Ray, tMin, tMax float64) (*Hit, bool) {
	center := s.position[i]
	radius := s.radius[i]

	// Quadratic equation coefficients: at² + bt + c = 0
	oc := ray.Origin.Subtract(center)
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - radius*radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}

	sqrtD := math.Sqrt(discriminant)
	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			return nil, false
		}
	}

	hit := &Hit{
		T:         root,
		Point:     ray.At(root),
		Primitive: i,
		Color:     s.color[i],
		Object:    s,
	}
	outwardNormal := hit.Point.Subtract(center).Multiply(1.0 / radius)
	hit.SetFaceNormal(ray, outwardNormal)

	// Perpendicular distance from the center to the ray line is
	// sqrt(|oc|² - (oc·d)²/|d|²) = sqrt(r² - discriminant/a)
	perp := math.Sqrt(math.Max(0, radius*radius-discriminant/a))
	hit.EdgeDistance = radius - perp

	return hit, true
}

// BoundingBox returns the axis-aligned box around all spheres
func (s *Sphere) BoundingBox() core.AABB {
	box := core.EmptyAABB()
	for i, p := range s.position {
		r := core.NewVec3(s.radius[i], s.radius[i], s.radius[i])
		box = box.Union(core.NewAABB(p.Subtract(r), p.Add(r)))
	}
	return box
}

var _ Object = (*Sphere)(nil)
