package material

import (
	"github.com/df07/go-fresnel/pkg/core"
)

// Material is a standalone handle that owns its record. Assign it to
// geometry by copying its snapshot: geom.SetMaterial(m.Record()).
type Material struct {
	record Record
}

// New creates a standalone material from initial parameters. The zero
// Record gives solid=0, black, primitive_color_mix=0.
func New(r Record) *Material {
	return &Material{record: r}
}

func (m *Material) Solid() float32 { return m.record.Solid }

func (m *Material) SetSolid(v float32) { m.record.Solid = v }

func (m *Material) Color() core.Color { return m.record.Color }

func (m *Material) SetColor(rgb []float32) error {
	c, err := core.ColorFromSlice(rgb)
	if err != nil {
		return err
	}
	m.record.Color = c
	return nil
}

func (m *Material) PrimitiveColorMix() float32 { return m.record.PrimitiveColorMix }

func (m *Material) SetPrimitiveColorMix(v float32) { m.record.PrimitiveColorMix = v }

func (m *Material) Record() Record { return m.record }

func (m *Material) String() string { return m.record.String() }

var _ Handle = (*Material)(nil)
