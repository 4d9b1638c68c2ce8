package geometry

import (
	"github.com/df07/go-fresnel/pkg/core"
	"github.com/df07/go-fresnel/pkg/material"
)

// Option configures geometry during construction.
//
// Example:
//
//	geom, err := geometry.NewSphere(sc, positions, 1.0,
//	    geometry.WithMaterial(material.Record{Color: core.LinearizeRGB(0.42, 0.267, 1)}),
//	    geometry.WithColors(colors))
type Option func(*options)

type options struct {
	material        *material.Record
	outlineMaterial *material.Record
	colors          [][]float32
	radii           []float64
	outlineWidth    float32
}

// defaultMaterial is magenta so unassigned geometry stands out
func defaultMaterial() material.Record {
	return material.Record{Color: core.NewColor(1, 0, 1)}
}

// defaultOutlineMaterial is solid black
func defaultOutlineMaterial() material.Record {
	return material.Record{Solid: 1, Color: core.NewColor(0, 0, 0)}
}

// WithMaterial sets the initial primary material.
func WithMaterial(r material.Record) Option {
	return func(o *options) {
		o.material = &r
	}
}

// WithOutlineMaterial sets the initial outline material.
func WithOutlineMaterial(r material.Record) Option {
	return func(o *options) {
		o.outlineMaterial = &r
	}
}

// WithColors sets per-primitive colors. The list must have one entry of
// length 3 per primitive.
func WithColors(colors [][]float32) Option {
	return func(o *options) {
		o.colors = colors
	}
}

// WithRadii sets a radius per primitive, overriding the shared radius.
func WithRadii(radii []float64) Option {
	return func(o *options) {
		o.radii = radii
	}
}

// WithOutlineWidth sets the initial outline width.
func WithOutlineWidth(w float32) Option {
	return func(o *options) {
		o.outlineWidth = w
	}
}
