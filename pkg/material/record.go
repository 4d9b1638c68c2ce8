package material

import (
	"fmt"

	"github.com/df07/go-fresnel/pkg/core"
)

// Record is the value-type material understood by the tracing engine.
//
// No field is validated or clamped. Solid and PrimitiveColorMix are
// meaningful in [0,1]; values outside that range extrapolate in the shader.
type Record struct {
	Solid             float32    // 0 = use the shading model, 1 = flat unshaded color
	Color             core.Color // Linear material color
	PrimitiveColorMix float32    // 0 = material color, 1 = per-primitive color
}

// BaseColor resolves the color seen at a surface whose primitive carries
// primitiveColor.
func (r Record) BaseColor(primitiveColor core.Color) core.Color {
	return r.Color.Lerp(primitiveColor, r.PrimitiveColorMix)
}

func (r Record) String() string {
	return fmt.Sprintf("Material(solid=%g, color=%s, primitive_color_mix=%g)",
		r.Solid, r.Color, r.PrimitiveColorMix)
}
