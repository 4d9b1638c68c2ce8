package material

import (
	"github.com/df07/go-fresnel/pkg/core"
)

// slot addresses one material record stored by an Owner.
type slot interface {
	load() Record
	store(r Record)
}

// primarySlot targets the owner's primary material.
type primarySlot struct{ owner Owner }

func (s primarySlot) load() Record   { return s.owner.GetMaterial() }
func (s primarySlot) store(r Record) { s.owner.SetMaterial(r) }

// outlineSlot targets the owner's outline material.
type outlineSlot struct{ owner Owner }

func (s outlineSlot) load() Record   { return s.owner.GetOutlineMaterial() }
func (s outlineSlot) store(r Record) { s.owner.SetOutlineMaterial(r) }

// proxy forwards every access to an owner-held record. It keeps no copy
// between calls: each getter loads a fresh snapshot and each setter performs
// one load and one store of the complete record.
type proxy struct {
	slot slot
}

// Attach returns a handle over the owner's primary material.
func Attach(owner Owner) Handle {
	return &proxy{slot: primarySlot{owner: owner}}
}

// AttachOutline returns a handle over the owner's outline material.
func AttachOutline(owner Owner) Handle {
	return &proxy{slot: outlineSlot{owner: owner}}
}

func (p *proxy) Solid() float32 {
	return p.slot.load().Solid
}

func (p *proxy) SetSolid(v float32) {
	r := p.slot.load()
	r.Solid = v
	p.slot.store(r)
}

func (p *proxy) Color() core.Color {
	return p.slot.load().Color
}

func (p *proxy) SetColor(rgb []float32) error {
	c, err := core.ColorFromSlice(rgb)
	if err != nil {
		return err
	}
	r := p.slot.load()
	r.Color = c
	p.slot.store(r)
	return nil
}

func (p *proxy) PrimitiveColorMix() float32 {
	return p.slot.load().PrimitiveColorMix
}

func (p *proxy) SetPrimitiveColorMix(v float32) {
	r := p.slot.load()
	r.PrimitiveColorMix = v
	p.slot.store(r)
}

func (p *proxy) Record() Record {
	return p.slot.load()
}

func (p *proxy) String() string {
	return p.slot.load().String()
}
