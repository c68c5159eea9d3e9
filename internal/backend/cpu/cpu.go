// Package cpu implements the CPU backend with pure Go loops.
// It is the reference implementation: the GPU kernels must match its
// float semantics exactly.
package cpu

import (
	"github.com/flashlight-ml/flashlight/internal/tensor"
)

// CPUBackend computes tensor operations sequentially on the host.
type CPUBackend struct{}

// New creates a new CPU backend.
func New() *CPUBackend {
	return &CPUBackend{}
}

// Name returns the backend name.
func (c *CPUBackend) Name() string {
	return "CPU"
}

// Device returns the compute device.
func (c *CPUBackend) Device() tensor.Device {
	return tensor.CPU
}

// ReLU applies the rectified linear unit element-wise.
//
// The branch form (rather than max) is deliberate: NaN > 0 is false, so
// NaN maps to 0, and -0.0 maps to +0.0. math.Max(0, NaN) would return NaN.
func (c *CPUBackend) ReLU(x *tensor.Tensor) *tensor.Tensor {
	out := tensor.Zeros(x.Shape())
	src := x.Data()
	dst := out.Data()
	for i, v := range src {
		if v > 0 {
			dst[i] = v
		}
	}
	return out
}
