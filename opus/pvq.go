package opus

import (
	"math"
	"sync"
)

// Pyramid vector quantization: a band shape is a point on the unit
// sphere picked from the set of integer vectors with L1 norm K, indexed
// combinatorially (RFC 6716 §4.3.4.2).

var (
	vMu    sync.Mutex
	vCache = map[[2]int]uint64{}
)

// vCount is V(n, k): the number of n-dimensional integer vectors whose
// absolute values sum to k.
func vCount(n, k int) uint64 {
	if k == 0 {
		return 1
	}
	if n == 0 {
		return 0
	}
	key := [2]int{n, k}
	vMu.Lock()
	v, ok := vCache[key]
	vMu.Unlock()
	if ok {
		return v
	}
	v = vCount(n-1, k) + vCount(n, k-1) + vCount(n-1, k-1)
	vMu.Lock()
	vCache[key] = v
	vMu.Unlock()
	return v
}

// decodePulses expands a combinatorial index into its pulse vector.
// Position values are ranked zero first, then by magnitude with the
// positive sign ordered before the negative.
func decodePulses(idx uint64, n, k int) []int {
	y := make([]int, n)
	for i := 0; i < n && k > 0; i++ {
		rest := n - i - 1
		p := vCount(rest, k)
		if idx < p {
			continue // y[i] = 0
		}
		idx -= p
		for m := 1; m <= k; m++ {
			p = vCount(rest, k-m)
			if idx < p {
				y[i] = m
				k -= m
				break
			}
			idx -= p
			if idx < p {
				y[i] = -m
				k -= m
				break
			}
			idx -= p
		}
	}
	return y
}

// encodePulses is the inverse ranking, used by tests to round-trip the
// enumeration.
func encodePulses(y []int) uint64 {
	k := 0
	for _, v := range y {
		if v < 0 {
			k -= v
		} else {
			k += v
		}
	}
	var idx uint64
	for i, v := range y {
		if k == 0 {
			break
		}
		rest := len(y) - i - 1
		if v == 0 {
			continue
		}
		idx += vCount(rest, k)
		m := v
		if m < 0 {
			m = -m
		}
		for j := 1; j < m; j++ {
			idx += 2 * vCount(rest, k-j)
		}
		if v < 0 {
			idx += vCount(rest, k-m)
		}
		k -= m
	}
	return idx
}

// normalizePulses scales an integer pulse vector onto the unit sphere.
func normalizePulses(y []int, out []float32) {
	var sum float64
	for _, v := range y {
		sum += float64(v) * float64(v)
	}
	if sum == 0 {
		for i := range out[:len(y)] {
			out[i] = 0
		}
		return
	}
	g := 1 / math.Sqrt(sum)
	for i, v := range y {
		out[i] = float32(float64(v) * g)
	}
}

// pulsesForBits returns the largest pulse count whose codebook fits in
// the given bit budget for an n-dimensional band.
func pulsesForBits(n, bits int) int {
	if n < 1 || bits <= 0 {
		return 0
	}
	k := 0
	for k < 128 {
		need := math.Log2(float64(vCount(n, k+1)))
		if int(math.Ceil(need)) > bits {
			break
		}
		k++
	}
	return k
}
