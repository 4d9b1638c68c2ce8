// Package renderer turns scenes into RGBA images by dispatching tiles of
// camera rays to an integrator on a pool of workers.
package renderer

import (
	"fmt"
	"time"

	"github.com/df07/go-fresnel/pkg/camera"
	"github.com/df07/go-fresnel/pkg/core"
	"github.com/df07/go-fresnel/pkg/device"
	"github.com/df07/go-fresnel/pkg/integrator"
	"github.com/df07/go-fresnel/pkg/scene"
)

// DefaultTileSize is the edge length in pixels of a render tile
const DefaultTileSize = 32

// Tracer renders scenes created on its device into an output buffer of a
// fixed size. A tracer is used from one goroutine at a time.
type Tracer struct {
	device       *device.Device
	integrator   integrator.Integrator
	output       *Output
	stats        RenderStats
	tileSize     int
	antialiasing int
}

// NewTracer creates a tracer that shades rays with integ. The initial
// output is a zeroed width x height buffer.
func NewTracer(dev *device.Device, integ integrator.Integrator, width, height int) (*Tracer, error) {
	if dev == nil {
		return nil, fmt.Errorf("%w: tracer requires a device", core.ErrInvalidArgument)
	}
	if integ == nil {
		return nil, fmt.Errorf("%w: tracer requires an integrator", core.ErrInvalidArgument)
	}
	if err := checkSize(width, height); err != nil {
		return nil, err
	}
	return &Tracer{
		device:       dev,
		integrator:   integ,
		output:       newOutput(width, height),
		tileSize:     DefaultTileSize,
		antialiasing: 1,
	}, nil
}

// NewDirect creates a tracer using direct lighting
func NewDirect(dev *device.Device, width, height int) (*Tracer, error) {
	return NewTracer(dev, integrator.NewDirectIntegrator(), width, height)
}

func checkSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: image size must be positive, got %dx%d", core.ErrInvalidArgument, width, height)
	}
	return nil
}

// Device returns the device the tracer renders on
func (t *Tracer) Device() *device.Device { return t.device }

// Output returns the most recent render, or the zeroed buffer allocated by
// the last resize if nothing has been rendered since.
func (t *Tracer) Output() *Output { return t.output }

// Stats returns statistics for the most recent render
func (t *Tracer) Stats() RenderStats { return t.stats }

// Antialiasing returns the per-axis sample count for each pixel
func (t *Tracer) Antialiasing() int { return t.antialiasing }

// SetAntialiasing samples each pixel on an n x n grid. The default of 1
// traces a single ray through the pixel center.
func (t *Tracer) SetAntialiasing(n int) error {
	if n < 1 {
		return fmt.Errorf("%w: antialiasing must be at least 1, got %d", core.ErrInvalidArgument, n)
	}
	t.antialiasing = n
	return nil
}

// Resize replaces the output with a zeroed width x height buffer. The
// previous contents are discarded, not scaled.
func (t *Tracer) Resize(width, height int) error {
	if err := checkSize(width, height); err != nil {
		return err
	}
	t.output = newOutput(width, height)
	return nil
}

// Render traces sc into a new output buffer and returns it. The scene
// must have been created on the tracer's device. A scene without a camera
// is framed with camera.Fit. Errors from the integrator are returned
// unchanged and leave the previous output in place.
func (t *Tracer) Render(sc *scene.Scene) (*Output, error) {
	if sc == nil {
		return nil, fmt.Errorf("%w: nil scene", core.ErrInvalidArgument)
	}
	if sc.Device() != t.device {
		return nil, fmt.Errorf("%w: scene device %s, tracer device %s", core.ErrDeviceMismatch, sc.Device(), t.device)
	}

	start := time.Now()
	width, height := t.output.Width(), t.output.Height()
	out := newOutput(width, height)

	cam := sc.Camera()
	if cam == nil {
		cam = camera.Fit(sc.Bounds(), float64(width)/float64(height), camera.DefaultFitMargin)
	}

	tiles := NewTileGrid(width, height, t.tileSize)
	tr := NewTileRenderer(sc, t.integrator, cam, width, height, t.antialiasing)
	pool := NewWorkerPool(tr, out.img, len(tiles), t.device.Workers())

	pool.Start()
	for i, tile := range tiles {
		pool.SubmitTask(TileTask{Tile: tile, TaskID: i})
	}
	pool.Stop()

	stats := RenderStats{Tiles: len(tiles), Workers: pool.GetNumWorkers()}
	var firstErr error
	firstErrTask := len(tiles)
	for result, ok := pool.GetResult(); ok; result, ok = pool.GetResult() {
		if result.Error != nil {
			// Report the error of the earliest tile regardless of scheduling
			if result.TaskID < firstErrTask {
				firstErr, firstErrTask = result.Error, result.TaskID
			}
			continue
		}
		stats.merge(result.Stats)
	}
	if firstErr != nil {
		return nil, firstErr
	}

	stats.finalize()
	stats.Duration = time.Since(start)
	stats.AverageLuminance = CalculateAverageLuminance(out.img)

	t.output = out
	t.stats = stats

	core.Logger().Debug("render complete",
		"width", width,
		"height", height,
		"tiles", stats.Tiles,
		"workers", stats.Workers,
		"samples", stats.TotalSamples,
		"luminance", stats.AverageLuminance,
		"duration", stats.Duration)

	return out, nil
}

// Render traces sc at width x height with a direct lighting tracer on the
// scene's device.
func Render(sc *scene.Scene, width, height int) (*Output, error) {
	if sc == nil {
		return nil, fmt.Errorf("%w: nil scene", core.ErrInvalidArgument)
	}
	t, err := NewDirect(sc.Device(), width, height)
	if err != nil {
		return nil, err
	}
	return t.Render(sc)
}
