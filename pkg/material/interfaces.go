package material

import (
	"github.com/df07/go-fresnel/pkg/core"
)

// Handle is a mutable view of a material's parameters. A handle may own its
// Record (Material) or forward every access to the geometry that owns the
// storage (Attach, AttachOutline). All variants behave identically from the
// caller's point of view.
//
// Setters on attached handles read the owner's full record, change one
// field and write the whole record back. Handles are not safe for concurrent
// use: two goroutines setting fields through handles on the same owner race
// on that read-modify-write and the later write silently drops the earlier
// one.
type Handle interface {
	// Solid returns the flat-color weight: 0 is shaded, 1 is unshaded.
	Solid() float32
	SetSolid(v float32)

	// Color returns the linear material color.
	Color() core.Color
	// SetColor replaces the material color. It fails with
	// core.ErrInvalidArgument unless exactly three components are given,
	// and leaves the stored record untouched on failure.
	SetColor(rgb []float32) error

	// PrimitiveColorMix returns the blend weight between the material color
	// (0) and the per-primitive color (1).
	PrimitiveColorMix() float32
	SetPrimitiveColorMix(v float32)

	// Record exports a snapshot of the current parameters.
	Record() Record
}

// Owner stores material records on behalf of attached handles. Every call
// exchanges a full copy; implementations never hand out references into
// their storage.
type Owner interface {
	GetMaterial() Record
	SetMaterial(r Record)
	GetOutlineMaterial() Record
	SetOutlineMaterial(r Record)
}
