package opus

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBitexactCos(t *testing.T) {
	// Q15 cosine of pi*x/32768 for Q14 split angles.
	tests := []struct{ x, want int }{
		{4096, 30274},  // cos(pi/8)
		{8192, 23171},  // cos(pi/4)
		{12288, 12540}, // cos(3pi/8)
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, bitexactCos(tc.x), "x=%d", tc.x)
	}
}

func TestBitexactLog2tan(t *testing.T) {
	// Equal legs give a zero log-ratio; swapping the legs negates it.
	for _, v := range []int{1, 100, 12540, 23171, 30274} {
		require.Zero(t, bitexactLog2tan(v, v), "v=%d", v)
	}
	pairs := [][2]int{{12540, 30274}, {23171, 30274}, {1, 32767}}
	for _, p := range pairs {
		require.Equal(t, -bitexactLog2tan(p[1], p[0]), bitexactLog2tan(p[0], p[1]),
			"isin=%d icos=%d", p[0], p[1])
		require.Negative(t, bitexactLog2tan(p[0], p[1]),
			"isin=%d icos=%d", p[0], p[1])
	}
}

func TestPvqPulses(t *testing.T) {
	// Identity below 8, then (8+q%8) << (q/8 - 1).
	tests := []struct{ q, want int }{
		{0, 0}, {1, 1}, {7, 7},
		{8, 8}, {9, 9}, {15, 15},
		{16, 16}, {17, 18}, {24, 32}, {25, 36}, {32, 64},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, pvqPulses(tc.q), "q=%d", tc.q)
	}
}

func TestPulseCache_MonotoneAndConsistent(t *testing.T) {
	seen := map[int16]bool{}
	for _, idx := range celtCacheIndex {
		if idx < 0 || seen[idx] {
			continue
		}
		seen[idx] = true
		cache := celtCacheBits[idx:]
		count := int(cache[0])
		require.Greater(t, count, 0, "row %d", idx)
		for q := 2; q <= count; q++ {
			require.GreaterOrEqual(t, cache[q], cache[q-1],
				"row %d entry %d", idx, q)
		}
		// A pulse count converted to bits must convert back to a count
		// with the same bit cost.
		for q := 0; q <= count; q++ {
			bits := pulses2Bits(cache, q)
			q2 := bits2Pulses(cache, bits)
			require.Equal(t, bits, pulses2Bits(cache, q2),
				"row %d pulses %d", idx, q)
		}
	}
}

func TestLaplaceFreq1(t *testing.T) {
	tests := []struct{ fs0, decay, want int }{
		{16384, 16000, 191},
		{12288, 8000, 5231},
		{32736, 0, 0},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, laplaceFreq1(tc.fs0, tc.decay),
			"fs0=%d decay=%d", tc.fs0, tc.decay)
	}
}

func TestCeltEndBand(t *testing.T) {
	tests := []struct {
		b    bandwidth
		want int
	}{
		{bandNarrow, 13},
		{bandMedium, 17},
		{bandWide, 17},
		{bandSuperWide, 19},
		{bandFull, celtNumBands},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, celtEndBand(tc.b))
	}
}

func TestCeltBands_StrictlyIncreasing(t *testing.T) {
	for i := 1; i < len(celtBands); i++ {
		require.Greater(t, celtBands[i], celtBands[i-1], "boundary %d", i)
	}
}

func TestCeltICDFs_Terminated(t *testing.T) {
	for name, icdf := range map[string][]uint8{
		"smallEnergy": celtSmallEnergyICDF,
		"spread":      celtSpreadICDF,
		"tapset":      celtTapsetICDF,
		"trim":        celtTrimICDF,
	} {
		require.NotEmpty(t, icdf, name)
		require.Zero(t, icdf[len(icdf)-1], name)
		for i := 1; i < len(icdf); i++ {
			require.Greater(t, icdf[i-1], icdf[i], "%s entry %d", name, i)
		}
	}
}
