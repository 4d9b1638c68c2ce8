package renderer

import (
	"image"
	"image/color"

	"github.com/chewxy/math32"
	"github.com/df07/go-fresnel/pkg/camera"
	"github.com/df07/go-fresnel/pkg/core"
	"github.com/df07/go-fresnel/pkg/integrator"
	"github.com/df07/go-fresnel/pkg/scene"
)

// Tile represents a rectangular region of the image to be rendered
type Tile struct {
	ID     int             // Unique tile identifier
	Bounds image.Rectangle // Pixel bounds of this tile
}

// NewTileGrid covers a width x height image with tiles of at most
// tileSize pixels on a side, in row-major order.
func NewTileGrid(width, height, tileSize int) []*Tile {
	var tiles []*Tile
	tileID := 0

	tilesX := (width + tileSize - 1) / tileSize // Ceiling division
	tilesY := (height + tileSize - 1) / tileSize

	for tileY := 0; tileY < tilesY; tileY++ {
		for tileX := 0; tileX < tilesX; tileX++ {
			x0 := tileX * tileSize
			y0 := tileY * tileSize
			x1 := min(x0+tileSize, width) // Don't exceed image bounds
			y1 := min(y0+tileSize, height)

			tiles = append(tiles, &Tile{ID: tileID, Bounds: image.Rect(x0, y0, x1, y1)})
			tileID++
		}
	}

	return tiles
}

// TileRenderer handles the actual rendering of individual tiles using an
// integrator. It holds no per-tile state and is shared by all workers.
type TileRenderer struct {
	scene         *scene.Scene
	integrator    integrator.Integrator
	camera        camera.Camera
	width, height int
	aspect        float64
	antialiasing  int
}

// NewTileRenderer creates a tile renderer for a width x height image.
// Each pixel is sampled on an antialiasing x antialiasing grid.
func NewTileRenderer(sc *scene.Scene, integ integrator.Integrator, cam camera.Camera, width, height, antialiasing int) *TileRenderer {
	return &TileRenderer{
		scene:        sc,
		integrator:   integ,
		camera:       cam,
		width:        width,
		height:       height,
		aspect:       float64(width) / float64(height),
		antialiasing: max(antialiasing, 1),
	}
}

// RenderTileBounds renders the pixels within bounds into out. Tiles never
// overlap, so concurrent calls with distinct bounds are safe. The first
// integrator error stops the tile and is returned unchanged.
func (tr *TileRenderer) RenderTileBounds(bounds image.Rectangle, out *image.NRGBA) (RenderStats, error) {
	stats := RenderStats{TotalPixels: bounds.Dx() * bounds.Dy()}

	for j := bounds.Min.Y; j < bounds.Max.Y; j++ {
		for i := bounds.Min.X; i < bounds.Max.X; i++ {
			c, samples, err := tr.samplePixel(i, j)
			if err != nil {
				return stats, err
			}
			out.SetNRGBA(i, j, c)
			stats.TotalSamples += samples
		}
	}

	return stats, nil
}

// samplePixel traces a stratified grid of rays through pixel (i, j) and
// averages them with alpha weighting so transparent samples do not darken
// the covered ones.
func (tr *TileRenderer) samplePixel(i, j int) (color.NRGBA, int, error) {
	n := tr.antialiasing
	var colorAccum core.Color
	var alphaAccum float32

	for sy := 0; sy < n; sy++ {
		for sx := 0; sx < n; sx++ {
			// Screen coordinates in [-0.5, 0.5] with y up and row 0 at the top
			u := (float64(i)+(float64(sx)+0.5)/float64(n))/float64(tr.width) - 0.5
			v := 0.5 - (float64(j)+(float64(sy)+0.5)/float64(n))/float64(tr.height)

			ray := tr.camera.GenerateRay(u, v, tr.aspect)
			c, alpha, err := tr.integrator.RayColor(ray, tr.scene)
			if err != nil {
				return color.NRGBA{}, 0, err
			}
			for k := range colorAccum {
				colorAccum[k] += c[k] * alpha
			}
			alphaAccum += alpha
		}
	}

	samples := n * n
	var linear core.Color
	if alphaAccum > 0 {
		linear = colorAccum.Scale(1 / alphaAccum)
	}
	rgb := core.EncodeSRGB8(linear)
	alpha := math32.Max(0, math32.Min(1, alphaAccum/float32(samples)))

	return color.NRGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: uint8(math32.Round(alpha * 255))}, samples, nil
}
