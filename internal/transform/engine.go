// Package transform implements the shared FFT/IMDCT core used by every
// codec package.
//
// The FFT is an in-place radix-2 Cooley-Tukey over separate real and
// imaginary float32 slices. Bit-reversal permutations and twiddle tables
// are computed once per size and cached read-only, so engines in
// different decoder instances share them safely.
//
// The butterfly inner loop is the single platform-dependent point in the
// library: NewEngine picks the widest kernel the host supports (8-wide
// unroll, 4-wide unroll, or scalar) and every caller above it is
// width-agnostic.
package transform

import (
	"github.com/hvlib/audiodec"
)

// DefaultMaxSize is the largest FFT length an engine accepts unless
// configured otherwise. Covers AAC long blocks (512-point complex FFT
// for the 2048 IMDCT) and all Vorbis block sizes up to 8192.
const DefaultMaxSize = 4096

// Engine carries the kernel selection and size limit. It holds no
// mutable per-frame state; one engine may serve any number of transforms.
type Engine struct {
	maxSize int
	kern    butterflyFn
	width   int
	name    string
}

// Option configures an Engine.
type Option func(*Engine)

// WithMaxSize sets the largest accepted FFT length. n must be a power of
// two; sizes above it fail with ErrUnsupportedTransformSize.
func WithMaxSize(n int) Option {
	return func(e *Engine) { e.maxSize = n }
}

// WithScalarKernel forces the scalar butterfly kernel regardless of CPU
// features. Used by tests to cross-check the vector kernels.
func WithScalarKernel() Option {
	return func(e *Engine) {
		e.kern = butterflyScalar
		e.width = 1
		e.name = "scalar"
	}
}

// NewEngine builds an engine, selecting the butterfly kernel for the
// host CPU exactly once.
func NewEngine(opts ...Option) *Engine {
	name, fn, width := defaultKernel()
	e := &Engine{
		maxSize: DefaultMaxSize,
		kern:    fn,
		width:   width,
		name:    name,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// KernelName reports which butterfly kernel the engine selected.
func (e *Engine) KernelName() string { return e.name }

// KernelWidth reports the unroll width of the selected kernel.
func (e *Engine) KernelWidth() int { return e.width }

func (e *Engine) checkSize(n int) error {
	if n < 2 || n&(n-1) != 0 || n > e.maxSize {
		return audiodec.ErrUnsupportedTransformSize
	}
	return nil
}

// ForwardFFT computes the in-place forward DFT of the paired re/im
// slices: X[k] = sum x[n]*exp(-2*pi*i*k*n/N). Lengths must match and be
// a power of two no larger than the configured maximum.
func (e *Engine) ForwardFFT(re, im []float32) error {
	return e.fft(re, im, false)
}

// InverseFFT computes the in-place inverse DFT including the 1/N scale,
// so InverseFFT(ForwardFFT(x)) reproduces x up to rounding.
func (e *Engine) InverseFFT(re, im []float32) error {
	return e.fft(re, im, true)
}

func (e *Engine) fft(re, im []float32, inverse bool) error {
	n := len(re)
	if len(im) != n {
		return audiodec.ErrUnsupportedTransformSize
	}
	if err := e.checkSize(n); err != nil {
		return err
	}
	t := tablesFor(n)

	// One-time bit-reversal permutation, table driven.
	for i, j := range t.bitrev {
		if int(j) > i {
			re[i], re[j] = re[j], re[i]
			im[i], im[j] = im[j], im[i]
		}
	}

	sin := t.sinFwd
	if inverse {
		sin = t.sinInv
	}

	// Butterfly stages, smallest span first. The twiddle stride maps
	// stage-local indices onto the full-size tables.
	for size := 2; size <= n; size <<= 1 {
		half := size >> 1
		stride := n / size
		for base := 0; base < n; base += size {
			e.kern(re[base:base+size], im[base:base+size], half, t.cos, sin, stride)
		}
	}

	if inverse {
		inv := float32(1) / float32(n)
		for i := range re {
			re[i] *= inv
			im[i] *= inv
		}
	}
	return nil
}

// RealFFT computes the half-complex spectrum of the real input x using a
// packed N/2 complex FFT. On return re and im (length N/2+1) hold bins 0
// through N/2; the remaining bins are the conjugate mirror and are not
// produced. Used by analysis paths that never need the full spectrum.
func (e *Engine) RealFFT(x []float32, re, im []float32) error {
	n := len(x)
	if err := e.checkSize(n); err != nil {
		return err
	}
	h := n / 2
	if len(re) < h+1 || len(im) < h+1 {
		return audiodec.ErrUnsupportedTransformSize
	}

	// Pack even samples as real, odd as imaginary, and transform at
	// half length.
	pr := make([]float32, h)
	pi := make([]float32, h)
	for i := 0; i < h; i++ {
		pr[i] = x[2*i]
		pi[i] = x[2*i+1]
	}
	if err := e.fft(pr, pi, false); err != nil {
		return err
	}

	// Untangle the packed spectrum: split into the even-sample and
	// odd-sample DFTs, then recombine with a twiddle.
	t := tablesFor(n)
	re[0] = pr[0] + pi[0]
	im[0] = 0
	re[h] = pr[0] - pi[0]
	im[h] = 0
	for k := 1; k < h; k++ {
		fr := 0.5 * (pr[k] + pr[h-k])
		fi := 0.5 * (pi[k] - pi[h-k])
		gr := 0.5 * (pi[k] + pi[h-k])
		gi := 0.5 * (pr[h-k] - pr[k])
		c := t.cos[k]
		s := t.sinFwd[k]
		re[k] = fr + c*gr - s*gi
		im[k] = fi + c*gi + s*gr
	}
	return nil
}
