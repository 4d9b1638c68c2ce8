// Package device selects the execution context used for tracing.
//
// A Device is created once and shared read-only by any number of scenes and
// tracers. CPU devices trace with a bounded pool of goroutines; GPU devices
// require a WebGPU adapter to be present.
package device

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/df07/go-fresnel/pkg/core"
)

// Mode names an execution mode
type Mode string

const (
	CPU Mode = "cpu"
	GPU Mode = "gpu"
)

// Config describes a device to create. Limit bounds the number of CPU
// workers; zero or negative means use every available CPU. Limit is ignored
// in GPU mode.
type Config struct {
	Mode  Mode `toml:"mode"`
	Limit int  `toml:"limit"`
}

// DefaultConfig returns an unbounded CPU configuration
func DefaultConfig() Config {
	return Config{Mode: CPU}
}

func (c Config) String() string {
	if c.Mode == CPU && c.Limit > 0 {
		return fmt.Sprintf("%s-limit-%d", c.Mode, c.Limit)
	}
	return string(c.Mode)
}

// StandardConfigs enumerates the device configurations renderer tests run
// against: all CPUs, a single CPU worker, and GPU.
func StandardConfigs() []Config {
	return []Config{
		{Mode: CPU},
		{Mode: CPU, Limit: 1},
		{Mode: GPU},
	}
}

// gpuProbe runs the adapter probe once per process
var gpuProbe = sync.OnceValues(probeGPU)

// Device is an execution context for tracing
type Device struct {
	mode    Mode
	limit   int
	workers int
	adapter *gpuAdapter
}

// New creates a device. GPU mode fails with core.ErrUnsupportedDevice when
// no adapter is available; an unknown mode fails with
// core.ErrInvalidArgument.
func New(cfg Config) (*Device, error) {
	switch cfg.Mode {
	case CPU:
		d := &Device{mode: CPU, limit: max(cfg.Limit, 0), workers: runtime.NumCPU()}
		if d.limit > 0 {
			d.workers = min(d.limit, d.workers)
		}
		core.Logger().Info("device created", "mode", d.mode, "workers", d.workers)
		return d, nil

	case GPU:
		adapter, err := gpuProbe()
		if err != nil {
			return nil, fmt.Errorf("%w: gpu: %w", core.ErrUnsupportedDevice, err)
		}
		d := &Device{mode: GPU, adapter: adapter, workers: runtime.NumCPU()}
		core.Logger().Info("device created", "mode", d.mode, "adapter", adapter.String())
		return d, nil

	default:
		return nil, fmt.Errorf("%w: unknown device mode %q", core.ErrInvalidArgument, cfg.Mode)
	}
}

// NewCPU creates a CPU device with at most limit workers (0 for all CPUs).
// CPU devices are always available.
func NewCPU(limit int) *Device {
	d, err := New(Config{Mode: CPU, Limit: limit})
	if err != nil {
		panic(fmt.Sprintf("device: cpu device construction failed: %v", err))
	}
	return d
}

// AvailableModes reports the execution modes usable in this process
func AvailableModes() []Mode {
	modes := []Mode{CPU}
	if _, err := gpuProbe(); err == nil {
		modes = append(modes, GPU)
	}
	return modes
}

// Mode returns the execution mode
func (d *Device) Mode() Mode { return d.mode }

// Limit returns the configured worker limit, 0 when unbounded
func (d *Device) Limit() int { return d.limit }

// Workers returns the number of goroutines a tracer may use on this device.
// GPU devices report the host CPU count used for tile dispatch.
func (d *Device) Workers() int { return d.workers }

// Adapter describes the GPU adapter, or returns "" for CPU devices
func (d *Device) Adapter() string {
	if d.adapter == nil {
		return ""
	}
	return d.adapter.String()
}

func (d *Device) String() string {
	if d.mode == GPU {
		return fmt.Sprintf("Device(mode=gpu, adapter=%s)", d.Adapter())
	}
	return fmt.Sprintf("Device(mode=cpu, workers=%d)", d.workers)
}
