package rangecoding

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func randomBuf(n int, seed int64) []byte {
	rng := rand.New(rand.NewSource(seed))
	b := make([]byte, n)
	rng.Read(b)
	return b
}

func TestInit_TellIsOneBit(t *testing.T) {
	// RFC 6716 §4.1: a freshly initialized decoder reports exactly one
	// bit consumed, independent of the buffer contents.
	for _, buf := range [][]byte{nil, {0x00}, {0xFF, 0xFF}, randomBuf(32, 1)} {
		var d Decoder
		d.Init(buf)
		require.Equal(t, 1, d.Tell())
		require.Equal(t, 8, d.TellFrac())
	}
}

func TestDecodeBit_AllZerosAndAllOnes(t *testing.T) {
	// The all-zeros packet keeps val at rng-1, so every equiprobable
	// bit decodes as 1; the all-ones packet decodes 0s.
	var d Decoder
	d.Init(make([]byte, 16))
	for i := 0; i < 32; i++ {
		require.Equal(t, 1, d.DecodeBit(1), "bit %d", i)
	}

	ones := make([]byte, 16)
	for i := range ones {
		ones[i] = 0xFF
	}
	d.Init(ones)
	for i := 0; i < 32; i++ {
		require.Equal(t, 0, d.DecodeBit(1), "bit %d", i)
	}
}

func TestDecodeICDF_SymbolsInRange(t *testing.T) {
	// A strictly decreasing ICDF terminated by 0 (4 symbols, 8-bit).
	icdf := []uint8{200, 120, 30, 0}

	var d Decoder
	d.Init(randomBuf(128, 7))
	counts := make([]int, len(icdf))
	for i := 0; i < 200; i++ {
		k := d.DecodeICDF(icdf, 8)
		require.GreaterOrEqual(t, k, 0)
		require.Less(t, k, len(icdf))
		counts[k]++
	}
	// With 200 draws from a random buffer every symbol should appear.
	for k, c := range counts {
		require.Greater(t, c, 0, "symbol %d never decoded", k)
	}
}

func TestDecodeUniform_InRange(t *testing.T) {
	var d Decoder
	d.Init(randomBuf(256, 13))
	for _, ft := range []uint32{1, 2, 5, 8, 100, 256, 1000, 1 << 16, 1 << 24} {
		for i := 0; i < 20; i++ {
			v := d.DecodeUniform(ft)
			require.Less(t, v, ft, "ft=%d", ft)
		}
	}
}

func TestDecodeBinUpdate_MatchesICDF(t *testing.T) {
	// DecodeBin exposes the cumulative frequency so the caller can walk
	// an arbitrary model; committing the located symbol with Update must
	// track DecodeICDF bit for bit over the same stream.
	buf := randomBuf(96, 41)
	icdf := []uint8{192, 112, 44, 8, 0}
	const ftb = 8
	const ft = 1 << ftb

	var ref, alt Decoder
	ref.Init(buf)
	alt.Init(buf)
	for i := 0; i < 120; i++ {
		want := ref.DecodeICDF(icdf, ftb)

		fm := alt.DecodeBin(ftb)
		k := 0
		for fm >= ft-uint32(icdf[k]) {
			k++
		}
		var fl uint32
		if k > 0 {
			fl = ft - uint32(icdf[k-1])
		}
		alt.Update(fl, ft-uint32(icdf[k]), ft)

		require.Equal(t, want, k, "symbol %d", i)
		require.Equal(t, ref.TellFrac(), alt.TellFrac(), "symbol %d", i)
	}
}

func TestDecodeRawBits_ReadFromBack(t *testing.T) {
	buf := append(randomBuf(8, 3), 0x3C, 0xA5)

	var d Decoder
	d.Init(buf)
	require.Equal(t, uint32(0xA5), d.DecodeRawBits(8))
	require.Equal(t, uint32(0x3C), d.DecodeRawBits(8))

	// Sub-byte reads come low bits first within the back byte.
	d.Init(buf)
	require.Equal(t, uint32(0x5), d.DecodeRawBits(4))
	require.Equal(t, uint32(0xA), d.DecodeRawBits(4))
}

func TestDecode_Deterministic(t *testing.T) {
	buf := randomBuf(48, 21)
	icdf := []uint8{180, 90, 40, 10, 0}

	run := func() []int {
		var d Decoder
		d.Init(buf)
		var out []int
		for i := 0; i < 30; i++ {
			out = append(out, d.DecodeICDF(icdf, 8))
			out = append(out, d.DecodeBit(3))
			out = append(out, int(d.DecodeUniform(97)))
		}
		return out
	}
	require.Equal(t, run(), run())
}

func TestTell_MonotonicAndConsistent(t *testing.T) {
	var d Decoder
	d.Init(randomBuf(128, 9))
	icdf := []uint8{128, 0}

	prev := d.Tell()
	prevFrac := d.TellFrac()
	for i := 0; i < 100; i++ {
		d.DecodeICDF(icdf, 8)
		d.DecodeRawBits(3)

		tell := d.Tell()
		frac := d.TellFrac()
		require.GreaterOrEqual(t, tell, prev)
		require.GreaterOrEqual(t, frac, prevFrac)
		// Tell is the ceiling of the fractional count.
		require.Equal(t, (frac+7)>>3, tell)
		prev, prevFrac = tell, frac
	}
}

func TestDecodeStep_InRange(t *testing.T) {
	var d Decoder
	d.Init(randomBuf(256, 11))
	for i := 0; i < 60; i++ {
		k0 := uint32(1 + i%12)
		k := d.DecodeStep(k0)
		require.LessOrEqual(t, k, 2*k0, "draw %d", i)
	}
}

func TestDecodeTriangular_InRange(t *testing.T) {
	var d Decoder
	d.Init(randomBuf(256, 13))
	for i := 0; i < 60; i++ {
		qn := uint32(2 + 2*(i%8))
		k := d.DecodeTriangular(qn)
		require.LessOrEqual(t, k, qn, "draw %d", i)
	}
}

func TestIsqrt32(t *testing.T) {
	for _, tc := range []struct{ v, want uint32 }{
		{1, 1}, {2, 1}, {3, 1}, {4, 2}, {8, 2}, {9, 3},
		{15, 3}, {16, 4}, {255, 15}, {256, 16},
		{1 << 30, 1 << 15}, {1<<32 - 1, 65535},
	} {
		require.Equal(t, tc.want, isqrt32(tc.v), "v=%d", tc.v)
	}
}
