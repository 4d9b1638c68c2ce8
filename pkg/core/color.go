package core

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Color is a linear-light RGB triple. It always has exactly three
// components and is never clamped.
type Color [3]float32

// NewColor creates a color from its three channels
func NewColor(r, g, b float32) Color {
	return Color{r, g, b}
}

// ColorFromSlice copies exactly three components into a Color
func ColorFromSlice(values []float32) (Color, error) {
	if len(values) != 3 {
		return Color{}, fmt.Errorf("%w: colors must have length 3, got %d", ErrInvalidArgument, len(values))
	}
	return Color{values[0], values[1], values[2]}, nil
}

// R returns the red channel
func (c Color) R() float32 { return c[0] }

// G returns the green channel
func (c Color) G() float32 { return c[1] }

// B returns the blue channel
func (c Color) B() float32 { return c[2] }

// Slice returns the channels as a new slice
func (c Color) Slice() []float32 {
	return []float32{c[0], c[1], c[2]}
}

// Scale multiplies every channel by s
func (c Color) Scale(s float32) Color {
	return Color{c[0] * s, c[1] * s, c[2] * s}
}

// Lerp interpolates from c to other. t is not clamped, so values outside
// [0,1] extrapolate.
func (c Color) Lerp(other Color, t float32) Color {
	return Color{
		c[0] + (other[0]-c[0])*t,
		c[1] + (other[1]-c[1])*t,
		c[2] + (other[2]-c[2])*t,
	}
}

func (c Color) String() string {
	return fmt.Sprintf("(%g, %g, %g)", c[0], c[1], c[2])
}

// Linearize converts a gamma encoded sRGB color into the linear space
// used by materials.
func Linearize(srgb Color) Color {
	var out Color
	for i, v := range srgb {
		if v <= 0.04045 {
			out[i] = v / 12.92
		} else {
			out[i] = math32.Pow((v+0.055)/1.055, 2.4)
		}
	}
	return out
}

// LinearizeRGB is shorthand for Linearize(NewColor(r, g, b))
func LinearizeRGB(r, g, b float32) Color {
	return Linearize(NewColor(r, g, b))
}

// EncodeSRGB8 converts a linear color into 8-bit sRGB channels, clamping
// only at the output stage.
func EncodeSRGB8(linear Color) [3]uint8 {
	var out [3]uint8
	for i, v := range linear {
		v = math32.Max(0, math32.Min(1, v))
		if v <= 0.0031308 {
			v *= 12.92
		} else {
			v = 1.055*math32.Pow(v, 1/2.4) - 0.055
		}
		out[i] = uint8(math32.Round(v * 255))
	}
	return out
}
