//go:build !nogpu

package device

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
	wgpucore "github.com/gogpu/wgpu/core"
)

// errNoAdapter reports that the instance returned no usable adapter
var errNoAdapter = errors.New("no GPU adapter available")

// gpuAdapter holds the WebGPU instance and the adapter selected for tracing
type gpuAdapter struct {
	instance *wgpucore.Instance
	id       wgpucore.AdapterID
	name     string
}

// probeGPU creates a WebGPU instance on the primary backends (Vulkan,
// Metal, DX12) and requests a high performance adapter.
func probeGPU() (*gpuAdapter, error) {
	instance := wgpucore.NewInstance(&gputypes.InstanceDescriptor{
		Backends: gputypes.BackendsPrimary,
		Flags:    0,
	})

	id, err := instance.RequestAdapter(&gputypes.RequestAdapterOptions{
		PowerPreference: gputypes.PowerPreferenceHighPerformance,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errNoAdapter, err)
	}
	if id.IsZero() {
		return nil, errNoAdapter
	}

	adapter := &gpuAdapter{instance: instance, id: id, name: "unknown adapter"}
	if info, err := wgpucore.GetAdapterInfo(id); err == nil {
		adapter.name = fmt.Sprintf("%s (%v)", info.Name, info.Backend)
	}
	return adapter, nil
}

func (a *gpuAdapter) String() string {
	return a.name
}
