package material

import (
	"testing"

	"github.com/df07/go-fresnel/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingOwner stores records by value and counts accesses
type recordingOwner struct {
	primary, outline         Record
	gets, sets               int
	outlineGets, outlineSets int
}

func (o *recordingOwner) GetMaterial() Record {
	o.gets++
	return o.primary
}

func (o *recordingOwner) SetMaterial(r Record) {
	o.sets++
	o.primary = r
}

func (o *recordingOwner) GetOutlineMaterial() Record {
	o.outlineGets++
	return o.outline
}

func (o *recordingOwner) SetOutlineMaterial(r Record) {
	o.outlineSets++
	o.outline = r
}

// handleVariants builds one handle of each kind over fresh storage
func handleVariants() map[string]func() Handle {
	return map[string]func() Handle{
		"standalone": func() Handle { return New(Record{}) },
		"geometry":   func() Handle { return Attach(&recordingOwner{}) },
		"outline":    func() Handle { return AttachOutline(&recordingOwner{}) },
	}
}

func TestHandle_RoundTrip(t *testing.T) {
	colors := []core.Color{
		{0, 0, 0},
		{1, 0.874, 0.169},
		core.LinearizeRGB(0.42, 0.267, 1),
		{-0.5, 2, 1e-6},
	}
	scalars := []float32{0, 1, 0.25, -3, 7.5}

	for name, newHandle := range handleVariants() {
		t.Run(name, func(t *testing.T) {
			h := newHandle()
			for _, c := range colors {
				require.NoError(t, h.SetColor(c.Slice()))
				assert.Equal(t, c, h.Color())
			}
			for _, v := range scalars {
				h.SetSolid(v)
				assert.Equal(t, v, h.Solid())
				h.SetPrimitiveColorMix(v)
				assert.Equal(t, v, h.PrimitiveColorMix())
			}
		})
	}
}

func TestHandle_InvalidColorLeavesStateUnchanged(t *testing.T) {
	for name, newHandle := range handleVariants() {
		t.Run(name, func(t *testing.T) {
			h := newHandle()
			require.NoError(t, h.SetColor([]float32{0.1, 0.2, 0.3}))
			h.SetSolid(0.5)
			before := h.Record()

			for _, bad := range [][]float32{{1, 0}, {}, {1, 0, 0, 0}} {
				err := h.SetColor(bad)
				assert.ErrorIs(t, err, core.ErrInvalidArgument)
			}
			assert.Equal(t, before, h.Record())
		})
	}
}

func TestProxy_FullRecordRoundTrip(t *testing.T) {
	owner := &recordingOwner{primary: Record{Solid: 0.3, Color: core.NewColor(1, 2, 3), PrimitiveColorMix: 0.7}}
	h := Attach(owner)

	h.SetSolid(1)
	assert.Equal(t, 1, owner.gets)
	assert.Equal(t, 1, owner.sets)
	// Untouched fields survive the write-back
	assert.Equal(t, Record{Solid: 1, Color: core.NewColor(1, 2, 3), PrimitiveColorMix: 0.7}, owner.primary)

	require.NoError(t, h.SetColor([]float32{0, 0, 1}))
	h.SetPrimitiveColorMix(0)
	assert.Equal(t, 3, owner.gets)
	assert.Equal(t, 3, owner.sets)

	// Failed validation does not touch the owner at all
	assert.Error(t, h.SetColor([]float32{1}))
	assert.Equal(t, 3, owner.gets)
	assert.Equal(t, 3, owner.sets)

	// Getters never cache
	owner.primary.Solid = 0.125
	assert.Equal(t, float32(0.125), h.Solid())
	assert.Equal(t, 0, owner.outlineGets+owner.outlineSets)
}

func TestProxy_OutlineIsolation(t *testing.T) {
	owner := &recordingOwner{}
	primary := Attach(owner)
	outline := AttachOutline(owner)

	outline.SetSolid(1)
	require.NoError(t, outline.SetColor([]float32{1, 0, 0}))
	assert.Equal(t, float32(0), primary.Solid())
	assert.Equal(t, core.Color{}, primary.Color())

	primary.SetSolid(0.25)
	primary.SetPrimitiveColorMix(1)
	assert.Equal(t, float32(1), outline.Solid())
	assert.Equal(t, float32(0), outline.PrimitiveColorMix())
	assert.Equal(t, 2, owner.outlineSets)
	assert.Equal(t, 2, owner.sets)
}

func TestProxy_VariantEquivalence(t *testing.T) {
	m := New(Record{Solid: 0.5, Color: core.LinearizeRGB(1, 0, 0), PrimitiveColorMix: 0.25})
	owner := &recordingOwner{}
	owner.SetMaterial(m.Record())
	owner.SetOutlineMaterial(m.Record())

	for _, h := range []Handle{Attach(owner), AttachOutline(owner)} {
		assert.Equal(t, m.Solid(), h.Solid())
		assert.Equal(t, m.Color(), h.Color())
		assert.Equal(t, m.PrimitiveColorMix(), h.PrimitiveColorMix())
		assert.Equal(t, m.Record(), h.Record())
	}

	// The copy is a snapshot: later changes to m do not reach the owner
	m.SetSolid(0)
	assert.Equal(t, float32(0.5), Attach(owner).Solid())
}

func TestRecord_String(t *testing.T) {
	r := Record{Solid: 1, Color: core.NewColor(0, 0.5, 1), PrimitiveColorMix: 0.25}
	assert.Equal(t, "Material(solid=1, color=(0, 0.5, 1), primitive_color_mix=0.25)", r.String())
	assert.Equal(t, r.String(), New(r).String())
}

func TestRecord_BaseColor(t *testing.T) {
	r := Record{Color: core.NewColor(1, 0, 0)}
	prim := core.NewColor(0, 0, 1)

	assert.Equal(t, core.NewColor(1, 0, 0), r.BaseColor(prim))
	r.PrimitiveColorMix = 1
	assert.Equal(t, prim, r.BaseColor(prim))
	r.PrimitiveColorMix = 0.5
	assert.Equal(t, core.NewColor(0.5, 0, 0.5), r.BaseColor(prim))
}
