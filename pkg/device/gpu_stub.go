//go:build nogpu

package device

import "errors"

type gpuAdapter struct{}

func probeGPU() (*gpuAdapter, error) {
	return nil, errors.New("built with the nogpu tag")
}

func (a *gpuAdapter) String() string { return "" }
