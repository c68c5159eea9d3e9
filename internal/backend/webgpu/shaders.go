// Package webgpu provides embedded WGSL compute shaders for tensor operations.
package webgpu

// WGSL compute shaders for tensor operations.
// Using string constants instead of embed for simplicity.

// Dispatch geometry for elementwise kernels. Some backends cap the number
// of workgroups along a single grid axis at 65535, so buffers longer than
// maxColumns elements wrap into global_id.y: each y row addresses exactly
// maxColumns consecutive elements.
const (
	// workgroupSize is the number of invocations per group on the primary axis.
	workgroupSize = 64
	// maxColumns is the flat-index row stride of the dispatch grid.
	maxColumns = 65535
)

// reluShader applies ReLU: output = input if input > 0, else 0.
//
// Bindings 1 and 2 are reserved so the group numbering stays stable for
// hosts sharing one bind group layout across kernels.
//
// The flat index is y * 65535 + x; invocations at x >= 65535 bail out
// before decoding so every output slot is written by exactly one
// invocation (column 65535 of row y would alias column 0 of row y+1).
// The branch (rather than max) pins NaN inputs to 0: NaN > 0 is false.
const reluShader = `
@group(0) @binding(0) var<storage, read> input: array<f32>;
@group(0) @binding(3) var<storage, read_write> output: array<f32>;

@compute @workgroup_size(64)
fn main(@builtin(global_invocation_id) global_id: vec3<u32>) {
    let x = global_id.x;
    let y = global_id.y;
    if (x >= 65535u) {
        return;
    }
    let idx = y * 65535u + x;
    if (idx >= arrayLength(&input)) {
        return;
    }
    if (input[idx] > 0.0) {
        output[idx] = input[idx];
    } else {
        output[idx] = 0.0;
    }
}
`
