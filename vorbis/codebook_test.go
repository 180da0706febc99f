package vorbis

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hvlib/audiodec/internal/bits"
)

// lsbWriter builds packet and header payloads in the stream's LSB-first
// bit order. writeCode emits a Huffman codeword, which the format reads
// most significant bit first.
type lsbWriter struct {
	buf []byte
	bit uint
}

func (w *lsbWriter) write(v uint32, n uint) {
	for i := uint(0); i < n; i++ {
		if w.bit == 0 {
			w.buf = append(w.buf, 0)
		}
		if v>>i&1 != 0 {
			w.buf[len(w.buf)-1] |= 1 << w.bit
		}
		w.bit = (w.bit + 1) & 7
	}
}

func (w *lsbWriter) writeCode(c uint32, n uint) {
	for d := int(n) - 1; d >= 0; d-- {
		w.write(c>>uint(d)&1, 1)
	}
}

func TestAssignCodewords_WorkedExample(t *testing.T) {
	// The eight-entry example from the format document, §3.2.1.
	codes, err := assignCodewords([]uint8{2, 4, 4, 4, 4, 2, 3, 3})
	require.NoError(t, err)
	require.Equal(t, []uint32{0b00, 0b0100, 0b0101, 0b0110, 0b0111, 0b10, 0b110, 0b111}, codes)
}

func TestAssignCodewords_Oversubscribed(t *testing.T) {
	_, err := assignCodewords([]uint8{1, 1, 1})
	require.Error(t, err)
}

func TestParseCodebook_ScalarRoundTrip(t *testing.T) {
	w := &lsbWriter{}
	w.write(0x564342, 24)
	w.write(1, 16) // dims
	w.write(4, 24) // entries
	w.write(0, 1)  // not ordered
	w.write(0, 1)  // not sparse
	for i := 0; i < 4; i++ {
		w.write(1, 5) // length 2
	}
	w.write(0, 4) // no lookup

	cb, err := parseCodebook(bits.NewLSBReader(w.buf))
	require.NoError(t, err)
	require.Equal(t, 4, cb.entries)

	codes, err := assignCodewords(cb.lens)
	require.NoError(t, err)
	for want := 0; want < 4; want++ {
		pw := &lsbWriter{}
		pw.writeCode(codes[want], uint(cb.lens[want]))
		got, err := cb.decodeScalar(bits.NewLSBReader(pw.buf))
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

func TestParseCodebook_OrderedLengths(t *testing.T) {
	// Ordered coding: runs of ascending lengths. One entry of length 1,
	// one of length 2, two of length 3 is a complete code.
	w := &lsbWriter{}
	w.write(0x564342, 24)
	w.write(1, 16)
	w.write(4, 24)
	w.write(1, 1) // ordered
	w.write(0, 5) // initial length 1
	w.write(1, 3) // one entry of length 1 (ilog(4) = 3 bits)
	w.write(1, 2) // one entry of length 2 (ilog(3) = 2 bits)
	w.write(2, 2) // two entries of length 3 (ilog(2) = 2 bits)
	w.write(0, 4) // no lookup

	cb, err := parseCodebook(bits.NewLSBReader(w.buf))
	require.NoError(t, err)
	require.Equal(t, []uint8{1, 2, 3, 3}, cb.lens)

	codes, err := assignCodewords(cb.lens)
	require.NoError(t, err)
	require.Equal(t, []uint32{0b0, 0b10, 0b110, 0b111}, codes)
}

func TestParseCodebook_BadSync(t *testing.T) {
	w := &lsbWriter{}
	w.write(0x123456, 24)
	w.write(1, 16)
	w.write(1, 24)
	_, err := parseCodebook(bits.NewLSBReader(w.buf))
	require.Error(t, err)
}

func TestParseCodebook_VQLookup2(t *testing.T) {
	w := &lsbWriter{}
	w.write(0x564342, 24)
	w.write(4, 16) // dims
	w.write(2, 24) // entries
	w.write(0, 1)
	w.write(0, 1)
	w.write(0, 5) // length 1
	w.write(0, 5) // length 1
	w.write(2, 4)           // lookup type 2
	w.write(0, 32)          // minimum 0.0
	w.write(788<<21|1, 32)  // delta 1.0
	w.write(0, 4)           // 1 bit per multiplicand
	w.write(0, 1)           // no sequence
	for i := 0; i < 8; i++ { // entry 0: (0,1,0,1); entry 1: zeros
		if i == 1 || i == 3 {
			w.write(1, 1)
		} else {
			w.write(0, 1)
		}
	}

	cb, err := parseCodebook(bits.NewLSBReader(w.buf))
	require.NoError(t, err)
	require.Equal(t, [][]float32{{0, 1, 0, 1}, {0, 0, 0, 0}}, cb.vectors)
}

func TestFloat32Unpack(t *testing.T) {
	require.Equal(t, float32(0), float32Unpack(0))
	require.Equal(t, float32(1), float32Unpack(788<<21|1))
	require.Equal(t, float32(-1), float32Unpack(1<<31|788<<21|1))
	require.Equal(t, float32(0.5), float32Unpack(787<<21|1))
}

func TestIlog(t *testing.T) {
	require.Equal(t, 0, ilog(0))
	require.Equal(t, 1, ilog(1))
	require.Equal(t, 3, ilog(7))
	require.Equal(t, 4, ilog(8))
}
