package tensor

// Device represents the compute device for tensor operations.
type Device int

// Supported compute devices.
const (
	CPU Device = iota
	WebGPU
)

// String returns a human-readable device name.
func (d Device) String() string {
	switch d {
	case CPU:
		return "CPU"
	case WebGPU:
		return "WebGPU"
	default:
		return "Unknown"
	}
}

// Backend executes tensor operations on a specific device.
//
// Compute methods panic on internal device failure; backend constructors
// return errors for initialization problems (missing adapter, no driver).
type Backend interface {
	// Name returns a human-readable backend description.
	Name() string

	// Device returns the device this backend computes on.
	Device() Device

	// ReLU applies the rectified linear unit element-wise and returns a
	// new tensor of the same shape. Inputs > 0 pass through unchanged;
	// everything else (zero, negatives, NaN, -Inf) maps to 0.
	ReLU(x *Tensor) *Tensor
}
