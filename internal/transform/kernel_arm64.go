//go:build arm64 && !purego

package transform

import "golang.org/x/sys/cpu"

// defaultKernel picks the butterfly kernel for the host. ASIMD is
// architectural on arm64, but honor the feature bit in case the runtime
// masked it.
func defaultKernel() (string, butterflyFn, int) {
	if cpu.ARM64.HasASIMD {
		return "unroll8-asimd", butterflyUnroll8, 8
	}
	return "unroll4", butterflyUnroll4, 4
}
