package vorbis

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hvlib/audiodec/internal/bits"
)

// testResidueBooks is a two-book set: a one-bit scalar classification
// book and a VQ book whose entry 0 carries known values.
func testResidueBooks(t *testing.T, dims int, entry0 []float32) []*codebook {
	t.Helper()
	class := &codebook{dims: 1, entries: 2, lens: []uint8{1, 1}}
	require.NoError(t, class.buildTree())

	vq := &codebook{dims: dims, entries: 2, lens: []uint8{1, 1}}
	require.NoError(t, vq.buildTree())
	vq.vectors = [][]float32{entry0, make([]float32, dims)}
	return []*codebook{class, vq}
}

func noBooks() [8]int {
	return [8]int{-1, -1, -1, -1, -1, -1, -1, -1}
}

func TestResidue_Format1(t *testing.T) {
	books := testResidueBooks(t, 4, []float32{1, 2, 3, 4})
	res := &residue{
		resType:       1,
		begin:         0,
		end:           8,
		partitionSize: 4,
		classes:       2,
		classbook:     0,
		books:         [][8]int{noBooks(), {1, -1, -1, -1, -1, -1, -1, -1}},
	}

	// Partition 0 silent (class 0), partition 1 carries entry 0.
	w := &lsbWriter{}
	w.writeCode(0, 1) // class 0
	w.writeCode(1, 1) // class 1
	w.writeCode(0, 1) // VQ entry 0

	out := [][]float32{make([]float32, 8)}
	require.NoError(t, res.decode(bits.NewLSBReader(w.buf), books,
		[]bool{false}, 8, out))
	require.Equal(t, []float32{0, 0, 0, 0, 1, 2, 3, 4}, out[0])
}

func TestResidue_Format0_Interleaves(t *testing.T) {
	books := testResidueBooks(t, 2, []float32{1, 2})
	res := &residue{
		resType:       0,
		begin:         0,
		end:           4,
		partitionSize: 4,
		classes:       2,
		classbook:     0,
		books:         [][8]int{noBooks(), {1, -1, -1, -1, -1, -1, -1, -1}},
	}

	// One partition of 4 with dims-2 vectors: two decodes, components
	// laid down at stride partitionSize/dims = 2.
	w := &lsbWriter{}
	w.writeCode(1, 1) // class 1
	w.writeCode(0, 1)
	w.writeCode(0, 1)

	out := [][]float32{make([]float32, 4)}
	require.NoError(t, res.decode(bits.NewLSBReader(w.buf), books,
		[]bool{false}, 4, out))
	require.Equal(t, []float32{1, 1, 2, 2}, out[0])
}

func TestResidue_Format2_Deinterleaves(t *testing.T) {
	books := testResidueBooks(t, 4, []float32{1, 2, 3, 4})
	res := &residue{
		resType:       2,
		begin:         0,
		end:           4,
		partitionSize: 4,
		classes:       2,
		classbook:     0,
		books:         [][8]int{noBooks(), {1, -1, -1, -1, -1, -1, -1, -1}},
	}

	w := &lsbWriter{}
	w.writeCode(1, 1) // class 1
	w.writeCode(0, 1) // VQ entry 0

	out := [][]float32{make([]float32, 2), make([]float32, 2)}
	require.NoError(t, res.decode(bits.NewLSBReader(w.buf), books,
		[]bool{false, false}, 2, out))
	require.Equal(t, []float32{1, 3}, out[0])
	require.Equal(t, []float32{2, 4}, out[1])
}

func TestResidue_Format2_AllChannelsSilent(t *testing.T) {
	books := testResidueBooks(t, 4, []float32{1, 2, 3, 4})
	res := &residue{
		resType:       2,
		begin:         0,
		end:           4,
		partitionSize: 4,
		classes:       2,
		classbook:     0,
		books:         [][8]int{noBooks(), {1, -1, -1, -1, -1, -1, -1, -1}},
	}

	// No channel decodes, so no bits are consumed at all.
	r := bits.NewLSBReader(nil)
	out := [][]float32{make([]float32, 2), make([]float32, 2)}
	require.NoError(t, res.decode(r, books, []bool{true, true}, 2, out))
	require.Equal(t, []float32{0, 0}, out[0])
}

func TestResidue_TruncatedPacketKeepsPartial(t *testing.T) {
	books := testResidueBooks(t, 4, []float32{1, 2, 3, 4})
	res := &residue{
		resType:       1,
		begin:         0,
		end:           8,
		partitionSize: 4,
		classes:       2,
		classbook:     0,
		books:         [][8]int{noBooks(), {1, -1, -1, -1, -1, -1, -1, -1}},
	}

	// The stream ends before the first classword: decode stops cleanly
	// and the spectrum stays at whatever was accumulated (here, zero).
	r := bits.NewLSBReader(nil)
	out := [][]float32{make([]float32, 8)}
	require.NoError(t, res.decode(r, books, []bool{false}, 8, out))
	require.Equal(t, make([]float32, 8), out[0])
}

func TestParseResidue_BadClassbook(t *testing.T) {
	w := &lsbWriter{}
	w.write(1, 16)
	w.write(0, 24)
	w.write(8, 24)
	w.write(3, 24)
	w.write(0, 6)
	w.write(9, 8) // out of range
	_, err := parseResidue(bits.NewLSBReader(w.buf), make([]*codebook, 2))
	require.Error(t, err)
}
