package core

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorFromSlice(t *testing.T) {
	c, err := ColorFromSlice([]float32{0.1, 0.2, 0.3})
	require.NoError(t, err)
	assert.Equal(t, NewColor(0.1, 0.2, 0.3), c)
	assert.Equal(t, []float32{0.1, 0.2, 0.3}, c.Slice())

	for _, bad := range [][]float32{nil, {1, 0}, {1, 0, 0, 1}} {
		_, err := ColorFromSlice(bad)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	}
}

func TestColor_NoClamping(t *testing.T) {
	c := NewColor(-1, 2.5, 0)
	assert.Equal(t, float32(-1), c.R())
	assert.Equal(t, float32(2.5), c.G())

	// Interpolation factors outside [0,1] extrapolate
	mixed := NewColor(0, 0, 0).Lerp(NewColor(1, 1, 1), 2)
	assert.Equal(t, NewColor(2, 2, 2), mixed)
}

func TestLinearize(t *testing.T) {
	tests := []struct {
		name     string
		in, want float32
	}{
		{"black", 0, 0},
		{"white", 1, 1},
		{"linear segment", 0.04, 0.04 / 12.92},
		{"mid grey", 0.5, 0.21404114},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Linearize(NewColor(tt.in, tt.in, tt.in))
			for i := 0; i < 3; i++ {
				assert.InDelta(t, tt.want, got[i], 1e-6)
			}
		})
	}
}

func TestEncodeSRGB8_RoundTrip(t *testing.T) {
	for _, v := range []uint8{0, 1, 17, 64, 128, 200, 255} {
		srgb := float32(v) / 255
		got := EncodeSRGB8(Linearize(NewColor(srgb, srgb, srgb)))
		assert.Equal(t, [3]uint8{v, v, v}, got, "value %d", v)
	}

	// Out of range linear values clamp at encode time only
	assert.Equal(t, [3]uint8{0, 255, 255}, EncodeSRGB8(NewColor(-3, 4, 1)))
}

func TestSetLogger(t *testing.T) {
	defer SetLogger(nil)

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	Logger().Debug("render finished", "pixels", 4)
	assert.Contains(t, buf.String(), "render finished")

	SetLogger(nil)
	buf.Reset()
	Logger().Info("dropped")
	assert.Empty(t, buf.String())
}
