package integrator

import (
	"math"

	"github.com/df07/go-fresnel/pkg/core"
	"github.com/df07/go-fresnel/pkg/geometry"
	"github.com/df07/go-fresnel/pkg/material"
	"github.com/df07/go-fresnel/pkg/scene"
)

// DirectIntegrator shades the first surface a ray hits with a single
// directional light and no shadows or secondary bounces.
type DirectIntegrator struct{}

// NewDirectIntegrator creates a new direct lighting integrator
func NewDirectIntegrator() *DirectIntegrator {
	return &DirectIntegrator{}
}

// RayColor returns the scene background for rays that miss, otherwise the
// shaded material color with alpha 1.
func (d *DirectIntegrator) RayColor(ray core.Ray, sc *scene.Scene) (core.Color, float32, error) {
	hit, isHit := sc.Hit(ray, 0.001, math.Inf(1))
	if !isHit {
		bg, alpha := sc.Background()
		return bg, alpha, nil
	}

	mat := surfaceMaterial(hit)
	base := mat.BaseColor(hit.Color)

	light := sc.LightDirection().Normalize()
	diffuse := float32(math.Max(hit.Normal.Dot(light), 0))
	shaded := base.Scale(diffuse)

	// Solid blends from the lit color towards the flat base color
	return shaded.Lerp(base, mat.Solid), 1, nil
}

// surfaceMaterial picks the outline material inside the outline band
// along the silhouette and the primary material elsewhere.
func surfaceMaterial(hit *geometry.Hit) material.Record {
	if hit.EdgeDistance < float64(hit.Object.OutlineWidth()) {
		return hit.Object.GetOutlineMaterial()
	}
	return hit.Object.GetMaterial()
}

var _ Integrator = (*DirectIntegrator)(nil)
