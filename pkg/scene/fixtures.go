package scene

import (
	"math"

	"github.com/df07/go-fresnel/pkg/camera"
	"github.com/df07/go-fresnel/pkg/core"
	"github.com/df07/go-fresnel/pkg/device"
	"github.com/df07/go-fresnel/pkg/geometry"
	"github.com/df07/go-fresnel/pkg/material"
)

// NewHexSphere creates six unit spheres on a circle of radius 2 in the
// z=0 plane, viewed head-on by an orthographic camera.
func NewHexSphere(dev *device.Device) (*Scene, error) {
	s, err := New(dev)
	if err != nil {
		return nil, err
	}

	positions := make([][]float64, 6)
	for i := range positions {
		angle := float64(i) * 2 * math.Pi / 6
		positions[i] = []float64{2 * math.Cos(angle), 2 * math.Sin(angle), 0}
	}

	_, err = geometry.NewSphere(s, positions, 1.0,
		geometry.WithMaterial(material.Record{
			Solid: 0,
			Color: core.LinearizeRGB(1, 0.874, 0.169),
		}),
		geometry.WithOutlineWidth(0.12),
	)
	if err != nil {
		return nil, err
	}

	s.SetCamera(camera.NewOrthographic(
		core.NewVec3(0, 0, 10), core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), 6))
	return s, nil
}

// NewFourSpheres creates four unit spheres at the corners of a square in
// the y=0 plane with red, green, blue and magenta primitive colors, viewed
// from the (1,1,1) diagonal and lit from the side.
func NewFourSpheres(dev *device.Device) (*Scene, error) {
	s, err := New(dev)
	if err != nil {
		return nil, err
	}

	_, err = geometry.NewSphere(s,
		[][]float64{{1, 0, 1}, {1, 0, -1}, {-1, 0, 1}, {-1, 0, -1}},
		1.0,
		geometry.WithMaterial(material.Record{Color: core.LinearizeRGB(0.42, 0.267, 1)}),
		geometry.WithColors([][]float32{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {1, 0, 1}}),
	)
	if err != nil {
		return nil, err
	}

	s.SetCamera(camera.NewOrthographic(
		core.NewVec3(10, 10, 10), core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), 4))
	s.SetLightDirection(core.NewVec3(4, 3, 0))
	return s, nil
}

// NewOutlineMaterial is the hex sphere scene with a wide, solid outline
// that takes its color from the per-primitive colors.
func NewOutlineMaterial(dev *device.Device) (*Scene, error) {
	s, err := NewHexSphere(dev)
	if err != nil {
		return nil, err
	}

	g, err := s.Geometry(0)
	if err != nil {
		return nil, err
	}
	g.SetOutlineWidth(0.3)
	g.SetOutlineMaterial(material.Record{
		Solid:             1,
		Color:             core.LinearizeRGB(1, 0, 0),
		PrimitiveColorMix: 1,
	})

	colors := [][]float32{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {1, 0, 1}, {0, 1, 1}, {0, 0, 0}}
	for i, c := range colors {
		if err := g.SetColor(i, core.LinearizeRGB(c[0], c[1], c[2]).Slice()); err != nil {
			return nil, err
		}
	}
	return s, nil
}
