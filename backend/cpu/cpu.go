// Copyright 2025 Flashlight ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides the CPU backend for tensor operations.
package cpu

import (
	internalcpu "github.com/flashlight-ml/flashlight/internal/backend/cpu"
	"github.com/flashlight-ml/flashlight/tensor"
)

// Backend represents the CPU backend implementation.
//
// CPU backend provides pure Go implementations of all tensor operations
// and serves as the reference for GPU kernel semantics.
type Backend = internalcpu.CPUBackend

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend = (*Backend)(nil)

// New creates a new CPU backend.
//
// Example:
//
//	backend := cpu.New()
//	y := backend.ReLU(x)
func New() *Backend {
	return internalcpu.New()
}
