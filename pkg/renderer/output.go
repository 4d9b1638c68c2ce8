package renderer

import (
	"image"
	"image/color"
)

// Output is a rendered RGBA8 image. Pixels are stored non-premultiplied,
// row-major, with row 0 at the top of the image.
//
// A tracer replaces its output on every render or resize; an Output
// returned earlier keeps its contents.
type Output struct {
	img *image.NRGBA
}

func newOutput(width, height int) *Output {
	return &Output{img: image.NewNRGBA(image.Rect(0, 0, width, height))}
}

// Shape returns the buffer dimensions as (height, width, channels)
func (o *Output) Shape() [3]int {
	return [3]int{o.Height(), o.Width(), 4}
}

func (o *Output) Width() int  { return o.img.Rect.Dx() }
func (o *Output) Height() int { return o.img.Rect.Dy() }

// Pix returns the raw pixel bytes, 4 per pixel in R, G, B, A order
func (o *Output) Pix() []uint8 { return o.img.Pix }

// Image returns the underlying image, suitable for PNG encoding
func (o *Output) Image() *image.NRGBA { return o.img }

// At returns the pixel in column x of row y
func (o *Output) At(x, y int) color.NRGBA { return o.img.NRGBAAt(x, y) }
