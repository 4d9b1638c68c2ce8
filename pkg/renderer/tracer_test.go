package renderer

import (
	"errors"
	"testing"

	"github.com/df07/go-fresnel/pkg/core"
	"github.com/df07/go-fresnel/pkg/device"
	"github.com/df07/go-fresnel/pkg/geometry"
	"github.com/df07/go-fresnel/pkg/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingIntegrator fails every ray with the same error
type failingIntegrator struct {
	err error
}

func (f failingIntegrator) RayColor(core.Ray, *scene.Scene) (core.Color, float32, error) {
	return core.Color{}, 0, f.err
}

func TestNewDirect_OutputShape(t *testing.T) {
	tracer, err := NewDirect(device.NewCPU(0), 100, 100)
	require.NoError(t, err)

	out := tracer.Output()
	assert.Equal(t, [3]int{100, 100, 4}, out.Shape())
	assert.Len(t, out.Pix(), 100*100*4)
	for _, b := range out.Pix() {
		if b != 0 {
			t.Fatal("initial output is not zeroed")
		}
	}
}

func TestNewTracer_InvalidArguments(t *testing.T) {
	dev := device.NewCPU(0)

	tests := []struct {
		name          string
		dev           *device.Device
		width, height int
	}{
		{"nil device", nil, 10, 10},
		{"zero width", dev, 0, 10},
		{"negative height", dev, 10, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDirect(tt.dev, tt.width, tt.height)
			assert.ErrorIs(t, err, core.ErrInvalidArgument)
		})
	}

	_, err := NewTracer(dev, nil, 10, 10)
	assert.ErrorIs(t, err, core.ErrInvalidArgument)
}

func TestTracer_Resize(t *testing.T) {
	sc, err := scene.NewHexSphere(device.NewCPU(0))
	require.NoError(t, err)

	tracer, err := NewDirect(sc.Device(), 100, 100)
	require.NoError(t, err)
	_, err = tracer.Render(sc)
	require.NoError(t, err)

	require.NoError(t, tracer.Resize(200, 300))
	out := tracer.Output()
	assert.Equal(t, [3]int{300, 200, 4}, out.Shape())
	assert.Equal(t, 200, out.Width())
	assert.Equal(t, 300, out.Height())

	// Resizing discards the previous render
	for _, b := range out.Pix() {
		if b != 0 {
			t.Fatal("resized output is not zeroed")
		}
	}

	assert.ErrorIs(t, tracer.Resize(0, 10), core.ErrInvalidArgument)
	assert.Equal(t, [3]int{300, 200, 4}, tracer.Output().Shape())

	rendered, err := tracer.Render(sc)
	require.NoError(t, err)
	assert.Equal(t, [3]int{300, 200, 4}, rendered.Shape())
}

func TestTracer_DeviceMismatch(t *testing.T) {
	devA := device.NewCPU(0)
	devB := device.NewCPU(0)

	sc, err := scene.NewHexSphere(devB)
	require.NoError(t, err)

	tracer, err := NewDirect(devA, 10, 10)
	require.NoError(t, err)

	_, err = tracer.Render(sc)
	assert.ErrorIs(t, err, core.ErrDeviceMismatch)

	_, err = tracer.Render(nil)
	assert.ErrorIs(t, err, core.ErrInvalidArgument)
}

func TestTracer_IntegratorErrorPassesThrough(t *testing.T) {
	dev := device.NewCPU(0)
	sc, err := scene.NewHexSphere(dev)
	require.NoError(t, err)

	engineErr := errors.New("engine failure")
	tracer, err := NewTracer(dev, failingIntegrator{err: engineErr}, 40, 40)
	require.NoError(t, err)
	initial := tracer.Output()

	out, err := tracer.Render(sc)
	assert.Nil(t, out)
	// The engine error is returned as is, not wrapped
	assert.Equal(t, engineErr, err)
	assert.Same(t, initial, tracer.Output())
}

func TestTracer_WorkerLimit(t *testing.T) {
	for _, limit := range []int{1, 2} {
		dev := device.NewCPU(limit)
		sc, err := scene.NewHexSphere(dev)
		require.NoError(t, err)

		tracer, err := NewDirect(dev, 100, 100)
		require.NoError(t, err)
		_, err = tracer.Render(sc)
		require.NoError(t, err)

		stats := tracer.Stats()
		assert.Equal(t, dev.Workers(), stats.Workers)
		assert.LessOrEqual(t, stats.Workers, limit)
		assert.Equal(t, 16, stats.Tiles)
		assert.Equal(t, 100*100, stats.TotalPixels)
		assert.Equal(t, 1.0, stats.AverageSamples)
	}
}

func TestTracer_Antialiasing(t *testing.T) {
	tracer, err := NewDirect(device.NewCPU(0), 10, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, tracer.Antialiasing())

	assert.ErrorIs(t, tracer.SetAntialiasing(0), core.ErrInvalidArgument)
	require.NoError(t, tracer.SetAntialiasing(3))
	assert.Equal(t, 3, tracer.Antialiasing())
}

func TestTracer_AutoFitCamera(t *testing.T) {
	dev := device.NewCPU(0)
	sc, err := scene.New(dev)
	require.NoError(t, err)
	_, err = geometry.NewSphere(sc, [][]float64{{40, 40, 0}}, 2)
	require.NoError(t, err)

	out, err := Render(sc, 32, 32)
	require.NoError(t, err)

	// The fitted camera centers the sphere in the frame
	assert.Equal(t, uint8(255), out.At(16, 16).A)
	assert.Equal(t, uint8(0), out.At(0, 0).A)
}

func TestRender(t *testing.T) {
	_, err := Render(nil, 10, 10)
	assert.ErrorIs(t, err, core.ErrInvalidArgument)

	sc, err := scene.NewHexSphere(device.NewCPU(0))
	require.NoError(t, err)
	_, err = Render(sc, 0, 10)
	assert.ErrorIs(t, err, core.ErrInvalidArgument)

	out, err := Render(sc, 50, 30)
	require.NoError(t, err)
	assert.Equal(t, [3]int{30, 50, 4}, out.Shape())
}
