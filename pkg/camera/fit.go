package camera

import (
	"math"

	"github.com/df07/go-fresnel/pkg/core"
)

// DefaultFitMargin is the fractional border Fit leaves around the bounds
const DefaultFitMargin = 0.05

// Fit returns an orthographic camera looking down -z that frames bounds in
// an image with the given aspect ratio, leaving margin (a fraction of the
// view height) on each side. Invalid or empty bounds produce a camera
// centered on the origin with unit height.
func Fit(bounds core.AABB, aspect, margin float64) *Orthographic {
	up := core.NewVec3(0, 1, 0)
	if !bounds.IsValid() {
		return NewOrthographic(core.NewVec3(0, 0, 10), core.Vec3{}, up, 1)
	}
	if aspect <= 0 {
		aspect = 1
	}

	center := bounds.Center()
	size := bounds.Size()

	height := math.Max(size.Y, size.X/aspect)
	if height == 0 {
		height = 1
	}
	height *= 1 + 2*margin

	// Stand back far enough to be outside the bounds along z
	distance := size.Z + height
	position := core.NewVec3(center.X, center.Y, bounds.Max.Z+distance)
	return NewOrthographic(position, center, up, height)
}
