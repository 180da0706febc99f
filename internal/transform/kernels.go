package transform

// butterflyFn processes the half butterflies of one FFT stage block.
// re/im are the block's 2*half samples; cos/sin are the full-size
// twiddle tables indexed at k*stride.
type butterflyFn func(re, im []float32, half int, cos, sin []float32, stride int)

func butterflyScalar(re, im []float32, half int, cos, sin []float32, stride int) {
	for k := 0; k < half; k++ {
		wr := cos[k*stride]
		wi := sin[k*stride]
		xr := re[k+half]
		xi := im[k+half]
		tr := xr*wr - xi*wi
		ti := xr*wi + xi*wr
		re[k+half] = re[k] - tr
		im[k+half] = im[k] - ti
		re[k] += tr
		im[k] += ti
	}
}

// butterflyUnroll4 is the 4-wide kernel. The compiler keeps the four
// independent butterflies in registers, which is what SSE-class hardware
// needs to saturate its multiply units.
func butterflyUnroll4(re, im []float32, half int, cos, sin []float32, stride int) {
	k := 0
	for ; k+4 <= half; k += 4 {
		butterfly4(re, im, k, half, cos, sin, stride)
	}
	for ; k < half; k++ {
		butterfly1(re, im, k, half, cos[k*stride], sin[k*stride])
	}
}

// butterflyUnroll8 is the 8-wide kernel for AVX2/ASIMD-class hardware.
func butterflyUnroll8(re, im []float32, half int, cos, sin []float32, stride int) {
	k := 0
	for ; k+8 <= half; k += 8 {
		butterfly4(re, im, k, half, cos, sin, stride)
		butterfly4(re, im, k+4, half, cos, sin, stride)
	}
	for ; k < half; k++ {
		butterfly1(re, im, k, half, cos[k*stride], sin[k*stride])
	}
}

func butterfly1(re, im []float32, k, half int, wr, wi float32) {
	xr := re[k+half]
	xi := im[k+half]
	tr := xr*wr - xi*wi
	ti := xr*wi + xi*wr
	re[k+half] = re[k] - tr
	im[k+half] = im[k] - ti
	re[k] += tr
	im[k] += ti
}

func butterfly4(re, im []float32, k, half int, cos, sin []float32, stride int) {
	i0, i1, i2, i3 := k, k+1, k+2, k+3
	j0, j1, j2, j3 := k+half, k+half+1, k+half+2, k+half+3

	wr0, wi0 := cos[i0*stride], sin[i0*stride]
	wr1, wi1 := cos[i1*stride], sin[i1*stride]
	wr2, wi2 := cos[i2*stride], sin[i2*stride]
	wr3, wi3 := cos[i3*stride], sin[i3*stride]

	tr0 := re[j0]*wr0 - im[j0]*wi0
	ti0 := re[j0]*wi0 + im[j0]*wr0
	tr1 := re[j1]*wr1 - im[j1]*wi1
	ti1 := re[j1]*wi1 + im[j1]*wr1
	tr2 := re[j2]*wr2 - im[j2]*wi2
	ti2 := re[j2]*wi2 + im[j2]*wr2
	tr3 := re[j3]*wr3 - im[j3]*wi3
	ti3 := re[j3]*wi3 + im[j3]*wr3

	re[j0] = re[i0] - tr0
	im[j0] = im[i0] - ti0
	re[j1] = re[i1] - tr1
	im[j1] = im[i1] - ti1
	re[j2] = re[i2] - tr2
	im[j2] = im[i2] - ti2
	re[j3] = re[i3] - tr3
	im[j3] = im[i3] - ti3

	re[i0] += tr0
	im[i0] += ti0
	re[i1] += tr1
	im[i1] += ti1
	re[i2] += tr2
	im[i2] += ti2
	re[i3] += tr3
	im[i3] += ti3
}
