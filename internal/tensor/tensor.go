// Package tensor implements flat, row-major float32 tensors.
//
// A Tensor is a contiguous []float32 plus a Shape. All operations keep the
// invariant len(data) == shape.NumElements().
package tensor

import "fmt"

// Tensor is a dense float32 tensor with row-major layout.
type Tensor struct {
	data  []float32
	shape Shape
}

// FromData creates a tensor from a flat slice and a shape.
// The slice is copied. Returns an error if the shape is invalid or the
// element count does not match the slice length.
func FromData(data []float32, shape Shape) (*Tensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("tensor: %w", err)
	}
	if len(data) != shape.NumElements() {
		return nil, fmt.Errorf("tensor: data length %d does not match shape %v (%d elements)",
			len(data), shape, shape.NumElements())
	}
	d := make([]float32, len(data))
	copy(d, data)
	return &Tensor{data: d, shape: shape.Clone()}, nil
}

// Zeros creates a tensor filled with zeros.
// Panics if the shape is invalid.
func Zeros(shape Shape) *Tensor {
	if err := shape.Validate(); err != nil {
		panic(fmt.Sprintf("tensor: Zeros: %v", err))
	}
	return &Tensor{
		data:  make([]float32, shape.NumElements()),
		shape: shape.Clone(),
	}
}

// Ones creates a tensor filled with ones.
func Ones(shape Shape) *Tensor {
	return Full(shape, 1)
}

// Full creates a tensor filled with a specific value.
// Panics if the shape is invalid.
func Full(shape Shape, value float32) *Tensor {
	t := Zeros(shape)
	for i := range t.data {
		t.data[i] = value
	}
	return t
}

// Data returns the underlying flat slice. The slice is shared with the
// tensor; mutating it mutates the tensor.
func (t *Tensor) Data() []float32 {
	return t.data
}

// Shape returns the tensor's shape.
func (t *Tensor) Shape() Shape {
	return t.shape
}

// NumElements returns the total number of elements.
func (t *Tensor) NumElements() int {
	return len(t.data)
}

// ByteSize returns the size of the tensor data in bytes.
func (t *Tensor) ByteSize() int {
	return len(t.data) * 4 // float32 = 4 bytes
}

// Clone returns a deep copy of the tensor.
func (t *Tensor) Clone() *Tensor {
	d := make([]float32, len(t.data))
	copy(d, t.data)
	return &Tensor{data: d, shape: t.shape.Clone()}
}

// Value returns the element at the given coordinates.
func (t *Tensor) Value(coords ...int) (float32, error) {
	if len(coords) != len(t.shape) {
		return 0, fmt.Errorf("tensor: expected %d coordinates for shape %v, got %d",
			len(t.shape), t.shape, len(coords))
	}
	strides := t.shape.ComputeStrides()
	offset := 0
	for i, c := range coords {
		if c < 0 || c >= t.shape[i] {
			return 0, fmt.Errorf("tensor: coordinate %d out of range for dimension %d (size %d)",
				c, i, t.shape[i])
		}
		offset += c * strides[i]
	}
	return t.data[offset], nil
}
