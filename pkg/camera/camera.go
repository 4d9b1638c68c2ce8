// Package camera generates primary rays for orthographic and perspective
// projections.
package camera

import (
	"fmt"
	"math"

	"github.com/df07/go-fresnel/pkg/core"
)

// Camera generates rays for rendering.
//
// GenerateRay maps screen coordinates x and y in [-0.5, 0.5] (x to the
// right, y up) to a world space ray. aspect is width / height of the image.
type Camera interface {
	GenerateRay(x, y, aspect float64) core.Ray
}

// basis is the orthonormal camera frame. w points from the look-at target
// back toward the camera.
type basis struct {
	u, v, w core.Vec3
}

func newBasis(position, lookAt, up core.Vec3) basis {
	w := position.Subtract(lookAt).Normalize()
	u := up.Cross(w).Normalize()
	v := w.Cross(u)
	return basis{u: u, v: v, w: w}
}

// Orthographic projects parallel rays. Height is the visible extent along
// the up direction in world units.
type Orthographic struct {
	Position core.Vec3
	LookAt   core.Vec3
	Up       core.Vec3
	Height   float64
}

// NewOrthographic creates an orthographic camera
func NewOrthographic(position, lookAt, up core.Vec3, height float64) *Orthographic {
	return &Orthographic{Position: position, LookAt: lookAt, Up: up, Height: height}
}

// GenerateRay returns a ray parallel to the view direction
func (c *Orthographic) GenerateRay(x, y, aspect float64) core.Ray {
	b := newBasis(c.Position, c.LookAt, c.Up)
	origin := c.Position.
		Add(b.u.Multiply(x * c.Height * aspect)).
		Add(b.v.Multiply(y * c.Height))
	return core.NewRay(origin, b.w.Negate())
}

func (c *Orthographic) String() string {
	return fmt.Sprintf("Orthographic(position=%v, look_at=%v, up=%v, height=%g)",
		c.Position, c.LookAt, c.Up, c.Height)
}

// Perspective projects rays from a single eye point. FieldOfView is the
// vertical field of view in degrees.
type Perspective struct {
	Position    core.Vec3
	LookAt      core.Vec3
	Up          core.Vec3
	FieldOfView float64
}

// NewPerspective creates a perspective camera
func NewPerspective(position, lookAt, up core.Vec3, fieldOfView float64) *Perspective {
	return &Perspective{Position: position, LookAt: lookAt, Up: up, FieldOfView: fieldOfView}
}

// GenerateRay returns a normalized ray from the eye through the screen point
func (c *Perspective) GenerateRay(x, y, aspect float64) core.Ray {
	b := newBasis(c.Position, c.LookAt, c.Up)
	viewportHeight := 2 * math.Tan(c.FieldOfView*math.Pi/360)
	direction := b.w.Negate().
		Add(b.u.Multiply(x * viewportHeight * aspect)).
		Add(b.v.Multiply(y * viewportHeight))
	return core.NewRay(c.Position, direction.Normalize())
}

func (c *Perspective) String() string {
	return fmt.Sprintf("Perspective(position=%v, look_at=%v, up=%v, fov=%g)",
		c.Position, c.LookAt, c.Up, c.FieldOfView)
}
