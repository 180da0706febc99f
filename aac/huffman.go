package aac

import (
	"github.com/hvlib/audiodec"
	"github.com/hvlib/audiodec/internal/bits"
)

// Codebook indices with special meaning in section data.
const (
	zeroHCB       = 0
	firstPairHCB  = 5
	escapeHCB     = 11
	noiseHCB      = 13
	intensityHCB2 = 14
	intensityHCB  = 15
)

// codebook pairs a canonical prefix code with its output tuples. dim is
// 4 for the quad books and 2 for the pairs; signed books carry the sign
// inside vals, unsigned books read sign bits separately.
type codebook struct {
	dim      int
	unsigned bool
	lens     []uint8
	codes    []uint32
	vals     []int8

	tree []int32
}

var spectralBooks = [12]*codebook{
	nil, // 0: zero codebook, no data
	{dim: 4, lens: hcbLens1, codes: hcbCodes1, vals: hcbVals1},
	{dim: 4, lens: hcbLens2, codes: hcbCodes2, vals: hcbVals2},
	{dim: 4, unsigned: true, lens: hcbLens3, codes: hcbCodes3, vals: hcbVals3},
	{dim: 4, unsigned: true, lens: hcbLens4, codes: hcbCodes4, vals: hcbVals4},
	{dim: 2, lens: hcbLens5, codes: hcbCodes5, vals: hcbVals5},
	{dim: 2, lens: hcbLens6, codes: hcbCodes6, vals: hcbVals6},
	{dim: 2, unsigned: true, lens: hcbLens7, codes: hcbCodes7, vals: hcbVals7},
	{dim: 2, unsigned: true, lens: hcbLens8, codes: hcbCodes8, vals: hcbVals8},
	{dim: 2, unsigned: true, lens: hcbLens9, codes: hcbCodes9, vals: hcbVals9},
	{dim: 2, unsigned: true, lens: hcbLens10, codes: hcbCodes10, vals: hcbVals10},
	{dim: 2, unsigned: true, lens: hcbLens11, codes: hcbCodes11, vals: hcbVals11},
}

var sfBook = &codebook{dim: 1, lens: hcbLensSF, codes: hcbCodesSF}

func init() {
	for _, cb := range spectralBooks {
		if cb != nil {
			cb.build()
		}
	}
	sfBook.build()
}

// build compiles the length/code arrays into a flat binary tree. Node n
// branches at tree[2n+bit]; a negative entry is -(symbol+1).
func (cb *codebook) build() {
	cb.tree = make([]int32, 2)
	next := int32(1)
	for sym, l := range cb.lens {
		node := int32(0)
		code := cb.codes[sym]
		for d := int(l) - 1; d >= 0; d-- {
			b := (code >> uint(d)) & 1
			slot := 2*node + int32(b)
			if d == 0 {
				cb.tree[slot] = -int32(sym + 1)
				break
			}
			if cb.tree[slot] == 0 {
				cb.tree[slot] = next
				cb.tree = append(cb.tree, 0, 0)
				next++
			}
			node = cb.tree[slot]
		}
	}
}

// decode walks the tree one bit at a time and returns the symbol index.
func (cb *codebook) decode(r *bits.Reader) (int, error) {
	node := int32(0)
	for {
		b, err := r.ReadBit()
		if err != nil {
			return 0, err
		}
		next := cb.tree[2*node+int32(b)]
		if next < 0 {
			return int(-next) - 1, nil
		}
		if next == 0 {
			return 0, audiodec.ErrCorruptSpectralData
		}
		node = next
	}
}

// decodeScaleFactor returns one scalefactor delta in [-60, 60].
func decodeScaleFactor(r *bits.Reader) (int, error) {
	sym, err := sfBook.decode(r)
	if err != nil {
		return 0, err
	}
	return sym - 60, nil
}

// decodeSpectral decodes one tuple of codebook cb into sp[0:dim],
// applying sign bits and the codebook-11 escape extension.
func decodeSpectral(cb int, r *bits.Reader, sp []int32) error {
	book := spectralBooks[cb]
	sym, err := book.decode(r)
	if err != nil {
		return err
	}
	for i := 0; i < book.dim; i++ {
		sp[i] = int32(book.vals[sym*book.dim+i])
	}
	if book.unsigned {
		for i := 0; i < book.dim; i++ {
			if sp[i] != 0 {
				b, err := r.ReadBit()
				if err != nil {
					return err
				}
				if b != 0 {
					sp[i] = -sp[i]
				}
			}
		}
	}
	if cb == escapeHCB {
		for i := 0; i < book.dim; i++ {
			if sp[i] == 16 || sp[i] == -16 {
				v, err := readEscape(r)
				if err != nil {
					return err
				}
				if sp[i] < 0 {
					v = -v
				}
				sp[i] = v
			}
		}
	}
	return nil
}

// readEscape reads the codebook-11 escape: N-4 leading ones, a zero,
// then N magnitude bits, yielding (1<<N) + bits.
func readEscape(r *bits.Reader) (int32, error) {
	n := uint(4)
	for {
		b, err := r.ReadBit()
		if err != nil {
			return 0, err
		}
		if b == 0 {
			break
		}
		n++
		if n >= 16 {
			return 0, audiodec.ErrCorruptSpectralData
		}
	}
	off, err := r.ReadBits(n)
	if err != nil {
		return 0, err
	}
	return int32(1)<<n | int32(off), nil
}
