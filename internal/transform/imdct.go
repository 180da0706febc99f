package transform

import (
	"math"

	"github.com/hvlib/audiodec"
)

// IMDCT is an inverse MDCT plan for one transform size. It owns the
// pre/post rotation tables and scratch buffers for that size, so codec
// decoders keep one instance per block size they use.
//
// The transform maps M spectral coefficients onto N = 2M time samples:
//
//	out[n] = (2/M) * sum_k spec[k] * cos(pi/M * (n + 0.5 + M/2) * (k + 0.5))
//
// The 2/M scale makes windowed overlap-add reconstruction unity-gain for
// any window with the Princen-Bradley property, which is how every codec
// here uses it.
//
// Internally the coefficients run through a DCT-IV; when M/2 is a power
// of two within the engine's limit that is an M/2-point complex FFT with
// pre and post rotations (AAC 2048/256, all Vorbis sizes), otherwise a
// rotation-recurrence direct evaluation (the MP3 36/12 hybrid sizes and
// the CELT 1920).
type IMDCT struct {
	n   int // output length
	m   int // spectral length = n/2
	eng *Engine

	fftPath bool
	preC    []float32 // cos(pi*p/M)
	preS    []float32 // sin(pi*p/M)
	postC   []float32 // cos(alpha_q), alpha_q = pi*(2q+0.5)/(2M)
	postS   []float32 // sin(alpha_q)

	workR []float32
	workI []float32
	dct   []float32
}

// NewIMDCT builds a plan producing n output samples. n must be a
// multiple of 4; the FFT fast path additionally requires n/4 to be a
// power of two within the engine's configured maximum, and is selected
// automatically when available.
func NewIMDCT(eng *Engine, n int) (*IMDCT, error) {
	if n < 4 || n%4 != 0 {
		return nil, audiodec.ErrUnsupportedTransformSize
	}
	m := n / 2
	t := &IMDCT{n: n, m: m, eng: eng, dct: make([]float32, m)}

	p := m / 2
	if p >= 2 && p&(p-1) == 0 && p <= eng.maxSize {
		t.fftPath = true
		t.preC = make([]float32, p)
		t.preS = make([]float32, p)
		t.postC = make([]float32, p)
		t.postS = make([]float32, p)
		for i := 0; i < p; i++ {
			s, c := math.Sincos(math.Pi * float64(i) / float64(m))
			t.preC[i] = float32(c)
			t.preS[i] = float32(s)
			alpha := math.Pi * (2*float64(i) + 0.5) / (2 * float64(m))
			s, c = math.Sincos(alpha)
			t.postC[i] = float32(c)
			t.postS[i] = float32(s)
		}
		t.workR = make([]float32, p)
		t.workI = make([]float32, p)
	}
	return t, nil
}

// Size returns the output length N.
func (t *IMDCT) Size() int { return t.n }

// Transform runs the inverse MDCT: len(spec) must be N/2 and len(out)
// at least N. spec is not modified.
func (t *IMDCT) Transform(spec, out []float32) error {
	if len(spec) < t.m || len(out) < t.n {
		return audiodec.ErrUnsupportedTransformSize
	}
	if t.fftPath {
		t.dctIVFFT(spec)
	} else {
		dctIVDirect(spec[:t.m], t.dct)
	}

	// Shift and mirror the DCT-IV output into the IMDCT layout.
	m := t.m
	h := m / 2
	scale := float32(2) / float32(m)
	d := t.dct
	for n := 0; n < h; n++ {
		out[n] = scale * d[n+h]
	}
	for n := h; n < m+h; n++ {
		out[n] = -scale * d[m+h-1-n]
	}
	for n := m + h; n < 2*m; n++ {
		out[n] = -scale * d[n-m-h]
	}
	return nil
}

// dctIVFFT computes the unscaled DCT-IV of spec into t.dct using an
// M/2-point complex FFT with pre/post rotation.
func (t *IMDCT) dctIVFFT(spec []float32) {
	m := t.m
	p := m / 2

	// Pre-rotation: pair even-index coefficients with reversed
	// odd-index ones and rotate by exp(-i*pi*k/M).
	for k := 0; k < p; k++ {
		ur := spec[2*k]
		ui := spec[m-1-2*k]
		c := t.preC[k]
		s := t.preS[k]
		t.workR[k] = ur*c + ui*s
		t.workI[k] = ui*c - ur*s
	}

	// The size was validated at plan construction.
	_ = t.eng.fft(t.workR, t.workI, false)

	// Post-rotation by exp(-i*alpha_q) and interleave the outputs.
	for q := 0; q < p; q++ {
		fr := t.workR[q]
		fi := t.workI[q]
		c := t.postC[q]
		s := t.postS[q]
		t.dct[2*q] = fr*c + fi*s
		t.dct[m-1-2*q] = -(fi*c - fr*s)
	}
}

// dctIVDirect evaluates the DCT-IV by definition with a per-row rotation
// recurrence, avoiding trig calls in the inner loop. Quadratic, kept for
// the sizes whose quarter length is not a power of two.
func dctIVDirect(spec, out []float32) {
	m := len(spec)
	for n := range out {
		delta := math.Pi / float64(m) * (float64(n) + 0.5)
		stepSin, stepCos := math.Sincos(delta)
		curSin, curCos := math.Sincos(delta * 0.5)
		var sum float64
		for _, x := range spec {
			sum += float64(x) * curCos
			curCos, curSin = curCos*stepCos-curSin*stepSin, curSin*stepCos+curCos*stepSin
		}
		out[n] = float32(sum)
	}
}

// MDCTForward is the analysis companion, used by tests to build spectra
// with known time-domain content. Direct evaluation; not a hot path.
func MDCTForward(x, spec []float32) {
	n := len(x)
	m := n / 2
	for k := 0; k < m && k < len(spec); k++ {
		delta := math.Pi / float64(m) * (float64(k) + 0.5)
		stepSin, stepCos := math.Sincos(delta)
		curSin, curCos := math.Sincos(delta * (0.5 + float64(m)/2))
		var sum float64
		for _, v := range x {
			sum += float64(v) * curCos
			curCos, curSin = curCos*stepCos-curSin*stepSin, curSin*stepCos+curCos*stepSin
		}
		spec[k] = float32(sum)
	}
}
