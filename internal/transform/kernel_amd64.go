//go:build amd64 && !purego

package transform

import "golang.org/x/sys/cpu"

// defaultKernel picks the butterfly kernel for the host. AVX2 machines
// get the 8-wide unroll; anything with SSE2 (every amd64) gets 4-wide.
func defaultKernel() (string, butterflyFn, int) {
	if cpu.X86.HasAVX2 {
		return "unroll8-avx2", butterflyUnroll8, 8
	}
	return "unroll4-sse2", butterflyUnroll4, 4
}
