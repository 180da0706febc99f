package bits

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hvlib/audiodec"
)

func TestReader_ExactFieldSplit(t *testing.T) {
	r := NewReader([]byte{0xFF, 0x00, 0xAA})

	v, err := r.ReadBits(4)
	require.NoError(t, err)
	require.Equal(t, uint32(0xF), v)

	v, err = r.ReadBits(4)
	require.NoError(t, err)
	require.Equal(t, uint32(0xF), v)

	v, err = r.ReadBits(8)
	require.NoError(t, err)
	require.Equal(t, uint32(0x00), v)

	v, err = r.ReadBits(8)
	require.NoError(t, err)
	require.Equal(t, uint32(0xAA), v)

	_, err = r.ReadBits(8)
	require.ErrorIs(t, err, audiodec.ErrBitstreamExhausted)
	require.Zero(t, r.BitsRemaining())
}

func TestReader_PeekDoesNotAdvance(t *testing.T) {
	r := NewReader([]byte{0xB7, 0x21})

	v, err := r.PeekBits(6)
	require.NoError(t, err)
	require.Equal(t, uint32(0x2D), v) // 101101

	require.Equal(t, 0, r.Position())

	v, err = r.ReadBits(6)
	require.NoError(t, err)
	require.Equal(t, uint32(0x2D), v)
	require.Equal(t, 6, r.Position())
}

func TestReader_CrossesWordBoundaries(t *testing.T) {
	// 12 bytes so reads straddle both the staged word and the
	// look-ahead reload.
	data := []byte{0x12, 0x34, 0x56, 0x78, 0x9A, 0xBC, 0xDE, 0xF0, 0x11, 0x22, 0x33, 0x44}
	r := NewReader(data)

	v, err := r.ReadBits(28)
	require.NoError(t, err)
	require.Equal(t, uint32(0x1234567), v)

	// 24 bits spanning the bufa/bufb seam.
	v, err = r.ReadBits(24)
	require.NoError(t, err)
	require.Equal(t, uint32(0x89ABCD), v)

	v, err = r.ReadBits(32)
	require.NoError(t, err)
	require.Equal(t, uint32(0xEF011223), v)

	require.Equal(t, 12, r.BitsRemaining())
}

func TestReader_AgainstBitByBit(t *testing.T) {
	data := []byte{0xDE, 0xAD, 0xBE, 0xEF, 0x01, 0x23, 0x45, 0x67, 0x89}
	widths := []uint{3, 1, 7, 13, 2, 32, 5, 9}

	r := NewReader(data)
	pos := 0
	for _, n := range widths {
		var want uint32
		for i := 0; i < int(n); i++ {
			bit := data[pos>>3] >> (7 - uint(pos&7)) & 1
			want = want<<1 | uint32(bit)
			pos++
		}
		got, err := r.ReadBits(n)
		require.NoError(t, err)
		require.Equal(t, want, got, "width %d at bit %d", n, pos)
	}
}

func TestReader_SignedBits(t *testing.T) {
	// 1111 0001 -> 4-bit fields -1 and 1.
	r := NewReader([]byte{0xF1})

	v, err := r.ReadSignedBits(4)
	require.NoError(t, err)
	require.Equal(t, int32(-1), v)

	v, err = r.ReadSignedBits(4)
	require.NoError(t, err)
	require.Equal(t, int32(1), v)
}

func TestReader_SkipAndAlign(t *testing.T) {
	data := make([]byte, 16)
	data[9] = 0x5C
	r := NewReader(data)

	require.NoError(t, r.Skip(70)) // > 32, crosses multiple words
	require.Equal(t, 70, r.Position())

	r.ByteAlign()
	require.Equal(t, 72, r.Position())

	v, err := r.ReadBits(8)
	require.NoError(t, err)
	require.Equal(t, uint32(0x5C), v)

	require.ErrorIs(t, r.Skip(1000), audiodec.ErrBitstreamExhausted)
}

func TestReader_ErrorLeavesCursor(t *testing.T) {
	r := NewReader([]byte{0xAB})
	_, err := r.ReadBits(4)
	require.NoError(t, err)

	_, err = r.ReadBits(8)
	require.ErrorIs(t, err, audiodec.ErrBitstreamExhausted)
	require.Equal(t, 4, r.Position())

	v, err := r.ReadBits(4)
	require.NoError(t, err)
	require.Equal(t, uint32(0xB), v)
}

func TestLSBReader_VorbisPacking(t *testing.T) {
	// Vorbis I spec packing example: fields 0b0, 0b11, 0b10101 packed
	// low bit first give the byte 0b10101_11_0 = 0xAE.
	r := NewLSBReader([]byte{0xAE})

	v, err := r.ReadBits(1)
	require.NoError(t, err)
	require.Equal(t, uint32(0), v)

	v, err = r.ReadBits(2)
	require.NoError(t, err)
	require.Equal(t, uint32(3), v)

	v, err = r.ReadBits(5)
	require.NoError(t, err)
	require.Equal(t, uint32(0x15), v)

	_, err = r.ReadBit()
	require.ErrorIs(t, err, audiodec.ErrBitstreamExhausted)
}

func TestLSBReader_MultiByteFields(t *testing.T) {
	// 24-bit field spanning three bytes, assembled low byte first.
	r := NewLSBReader([]byte{0x78, 0x56, 0x34, 0x12})

	v, err := r.ReadBits(24)
	require.NoError(t, err)
	require.Equal(t, uint32(0x345678), v)

	require.Equal(t, 8, r.BitsRemaining())
	require.Equal(t, 24, r.Position())

	flag, err := r.ReadFlag()
	require.NoError(t, err)
	require.False(t, flag) // low bit of 0x12
}

func TestLSBReader_PeekDoesNotAdvance(t *testing.T) {
	r := NewLSBReader([]byte{0x9D})
	v, err := r.PeekBits(4)
	require.NoError(t, err)
	require.Equal(t, uint32(0xD), v)
	require.Equal(t, 0, r.Position())
}
