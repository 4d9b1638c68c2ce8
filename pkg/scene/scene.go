package scene

import (
	"fmt"

	"github.com/df07/go-fresnel/pkg/camera"
	"github.com/df07/go-fresnel/pkg/core"
	"github.com/df07/go-fresnel/pkg/device"
	"github.com/df07/go-fresnel/pkg/geometry"
)

// Scene contains all the elements needed for rendering. A scene is bound
// to one device for its lifetime; geometry is attached at construction
// time and never shared between scenes.
//
// Scenes are built from a single goroutine before rendering.
type Scene struct {
	device          *device.Device
	camera          camera.Camera
	lightDirection  core.Vec3
	background      core.Color
	backgroundAlpha float32
	geometry        []geometry.Object
}

// New creates an empty scene bound to dev
func New(dev *device.Device) (*Scene, error) {
	if dev == nil {
		return nil, fmt.Errorf("%w: scene requires a device", core.ErrInvalidArgument)
	}
	return &Scene{
		device:         dev,
		lightDirection: core.NewVec3(0, 0, 1),
	}, nil
}

// Device returns the device the scene was created on
func (s *Scene) Device() *device.Device { return s.device }

// Camera returns the scene camera. A nil camera is fitted to the scene
// bounds at render time.
func (s *Scene) Camera() camera.Camera { return s.camera }

func (s *Scene) SetCamera(c camera.Camera) { s.camera = c }

// LightDirection returns the direction towards the directional light.
// It is not required to be normalized.
func (s *Scene) LightDirection() core.Vec3 { return s.lightDirection }

func (s *Scene) SetLightDirection(d core.Vec3) { s.lightDirection = d }

// Background returns the color and alpha seen by rays that miss all geometry
func (s *Scene) Background() (core.Color, float32) {
	return s.background, s.backgroundAlpha
}

func (s *Scene) SetBackground(c core.Color, alpha float32) {
	s.background = c
	s.backgroundAlpha = alpha
}

// AddGeometry appends obj to the scene. Geometry constructors call this.
func (s *Scene) AddGeometry(obj geometry.Object) {
	s.geometry = append(s.geometry, obj)
}

// Remove detaches obj from the scene and reports whether it was present
func (s *Scene) Remove(obj geometry.Object) bool {
	for i, g := range s.geometry {
		if g == obj {
			s.geometry = append(s.geometry[:i], s.geometry[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of geometry objects in the scene
func (s *Scene) Len() int { return len(s.geometry) }

// Geometry returns the i-th geometry object in insertion order
func (s *Scene) Geometry(i int) (geometry.Object, error) {
	if i < 0 || i >= len(s.geometry) {
		return nil, fmt.Errorf("%w: geometry index %d, scene has %d", core.ErrOutOfRange, i, len(s.geometry))
	}
	return s.geometry[i], nil
}

// Geometries returns a copy of the geometry list
func (s *Scene) Geometries() []geometry.Object {
	out := make([]geometry.Object, len(s.geometry))
	copy(out, s.geometry)
	return out
}

// Hit finds the nearest intersection over all geometry in the scene.
// Objects whose bounding box the ray misses are skipped.
func (s *Scene) Hit(ray core.Ray, tMin, tMax float64) (*geometry.Hit, bool) {
	var closest *geometry.Hit
	for _, g := range s.geometry {
		if !g.BoundingBox().Hit(ray, tMin, tMax) {
			continue
		}
		if hit, ok := g.Hit(ray, tMin, tMax); ok {
			closest = hit
			tMax = hit.T
		}
	}
	return closest, closest != nil
}

// Bounds returns the union of all geometry bounding boxes. An empty scene
// has invalid bounds.
func (s *Scene) Bounds() core.AABB {
	bounds := core.EmptyAABB()
	for _, g := range s.geometry {
		bounds = bounds.Union(g.BoundingBox())
	}
	return bounds
}

// PrimitiveCount returns the total number of primitives in the scene
func (s *Scene) PrimitiveCount() int {
	count := 0
	for _, g := range s.geometry {
		count += g.Len()
	}
	return count
}

var _ geometry.Container = (*Scene)(nil)
