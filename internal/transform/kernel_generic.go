//go:build (!amd64 && !arm64) || purego

package transform

// defaultKernel is the scalar fallback for platforms without a tuned
// kernel selection.
func defaultKernel() (string, butterflyFn, int) {
	return "scalar", butterflyScalar, 1
}
