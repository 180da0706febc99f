package transform

import (
	"math"
	"math/bits"
	"sync"
)

// fftTables holds the precomputed constants for one FFT size. Immutable
// after construction; shared across every engine that uses the size.
type fftTables struct {
	cos    []float32 // cos(2*pi*j/n), j < n/2
	sinFwd []float32 // -sin(2*pi*j/n)
	sinInv []float32 // +sin(2*pi*j/n)
	bitrev []uint32
}

var (
	tableMu    sync.RWMutex
	tableCache = map[int]*fftTables{}
)

// tablesFor returns the cached tables for size n, building them on first
// use. n has been validated by the caller.
func tablesFor(n int) *fftTables {
	tableMu.RLock()
	t := tableCache[n]
	tableMu.RUnlock()
	if t != nil {
		return t
	}

	tableMu.Lock()
	defer tableMu.Unlock()
	if t = tableCache[n]; t != nil {
		return t
	}

	t = &fftTables{
		cos:    make([]float32, n/2),
		sinFwd: make([]float32, n/2),
		sinInv: make([]float32, n/2),
		bitrev: make([]uint32, n),
	}
	for j := 0; j < n/2; j++ {
		arg := 2 * math.Pi * float64(j) / float64(n)
		s, c := math.Sincos(arg)
		t.cos[j] = float32(c)
		t.sinFwd[j] = float32(-s)
		t.sinInv[j] = float32(s)
	}
	shift := 32 - uint(bits.TrailingZeros(uint(n)))
	for i := 0; i < n; i++ {
		t.bitrev[i] = bits.Reverse32(uint32(i)) >> shift
	}
	tableCache[n] = t
	return t
}
