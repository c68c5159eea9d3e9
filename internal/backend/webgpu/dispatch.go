package webgpu

// groupCounts returns the (x, y) workgroup counts whose invocation grid
// covers n elements under the y*65535+x flat-index decode.
//
// Buffers that fit in one row dispatch ceil(n/64) groups along x. Longer
// buffers dispatch a full 65535-column row (1024 groups of 64; the kernel
// discards columns past 65534) and ceil(n/65535) rows along y.
func groupCounts(n int) (x, y uint32) {
	if n <= maxColumns {
		//nolint:gosec // G115: n is a positive element count
		return uint32((n + workgroupSize - 1) / workgroupSize), 1
	}
	x = uint32((maxColumns + workgroupSize - 1) / workgroupSize)
	//nolint:gosec // G115: n is a positive element count
	y = uint32((n + maxColumns - 1) / maxColumns)
	return x, y
}
