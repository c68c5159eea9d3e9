// Copyright 2025 Flashlight ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API for flat float32 tensors.
//
// The package defines the core types:
//   - Tensor: dense, row-major float32 tensor
//   - Shape: tensor dimensions
//   - Backend: interface for device-specific compute implementations
//   - Device: compute device enumeration
//
// Example:
//
//	backend := cpu.New()
//	x, _ := tensor.FromData([]float32{1.5, -2, 0, 3}, tensor.Shape{4})
//	y := backend.ReLU(x)  // [1.5, 0, 0, 3]
package tensor

import (
	"github.com/flashlight-ml/flashlight/internal/tensor"
)

// Type aliases for public API

// Tensor is a dense float32 tensor with row-major layout.
type Tensor = tensor.Tensor

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3} represents a 2D tensor with dimensions 2×3.
type Shape = tensor.Shape

// Backend executes tensor operations on a specific device.
type Backend = tensor.Backend

// Device represents the device where tensor data resides.
type Device = tensor.Device

// Device constants.
const (
	CPU    Device = tensor.CPU
	WebGPU Device = tensor.WebGPU
)

// Creation functions

// FromData creates a tensor from a flat slice and a shape.
//
// Example:
//
//	x, err := tensor.FromData([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
func FromData(data []float32, shape Shape) (*Tensor, error) {
	return tensor.FromData(data, shape)
}

// Zeros creates a tensor filled with zeros.
func Zeros(shape Shape) *Tensor {
	return tensor.Zeros(shape)
}

// Ones creates a tensor filled with ones.
func Ones(shape Shape) *Tensor {
	return tensor.Ones(shape)
}

// Full creates a tensor filled with a specific value.
func Full(shape Shape, value float32) *Tensor {
	return tensor.Full(shape, value)
}
