package vorbis

import (
	"math"

	"github.com/hvlib/audiodec"
	"github.com/hvlib/audiodec/internal/bits"
)

// codebook is one parsed Vorbis codebook: a canonical Huffman code over
// entries, optionally backed by a VQ lookup table (Vorbis I §3.2).
type codebook struct {
	dims    int
	entries int
	lens    []uint8 // 0 marks an unused (sparse) entry

	lookupType int
	sequenceP  bool
	vectors    [][]float32 // per entry, lookupType 1/2

	tree []int32
}

// parseCodebook reads one codebook definition from the setup header.
func parseCodebook(r *bits.LSBReader) (*codebook, error) {
	var err error
	read := func(n uint) int {
		var v uint32
		if err == nil {
			v, err = r.ReadBits(n)
		}
		return int(v)
	}

	if read(24) != 0x564342 { // "BCV"
		if err != nil {
			return nil, err
		}
		return nil, audiodec.ErrCorruptSideInfo
	}
	cb := &codebook{
		dims:    read(16),
		entries: read(24),
	}
	if err != nil {
		return nil, err
	}
	if cb.dims == 0 || cb.entries == 0 {
		return nil, audiodec.ErrCorruptSideInfo
	}
	cb.lens = make([]uint8, cb.entries)

	ordered := read(1)
	if ordered == 0 {
		sparse := read(1)
		for i := 0; i < cb.entries; i++ {
			if sparse != 0 {
				if read(1) == 0 {
					continue // unused entry
				}
			}
			cb.lens[i] = uint8(read(5) + 1)
		}
	} else {
		length := read(5) + 1
		for i := 0; i < cb.entries; {
			count := read(uint(ilog(cb.entries - i)))
			if err != nil {
				return nil, err
			}
			if i+count > cb.entries {
				return nil, audiodec.ErrCorruptSideInfo
			}
			for j := 0; j < count; j++ {
				cb.lens[i+j] = uint8(length)
			}
			i += count
			length++
		}
	}
	if err != nil {
		return nil, err
	}
	if err := cb.buildTree(); err != nil {
		return nil, err
	}

	cb.lookupType = read(4)
	switch cb.lookupType {
	case 0:
		return cb, err

	case 1, 2:
		minVal := float32Unpack(uint32(read(32)))
		delta := float32Unpack(uint32(read(32)))
		valueBits := uint(read(4) + 1)
		cb.sequenceP = read(1) != 0

		var count int
		if cb.lookupType == 1 {
			count = lookup1Values(cb.entries, cb.dims)
		} else {
			count = cb.entries * cb.dims
		}
		mult := make([]float32, count)
		for i := range mult {
			mult[i] = float32(read(valueBits))
		}
		if err != nil {
			return nil, err
		}

		cb.vectors = make([][]float32, cb.entries)
		for e := 0; e < cb.entries; e++ {
			v := make([]float32, cb.dims)
			last := float32(0)
			if cb.lookupType == 1 {
				idx := e
				for j := 0; j < cb.dims; j++ {
					v[j] = mult[idx%count]*delta + minVal + last
					if cb.sequenceP {
						last = v[j]
					}
					idx /= count
				}
			} else {
				for j := 0; j < cb.dims; j++ {
					v[j] = mult[e*cb.dims+j]*delta + minVal + last
					if cb.sequenceP {
						last = v[j]
					}
				}
			}
			cb.vectors[e] = v
		}
		return cb, nil

	default:
		return nil, audiodec.ErrCorruptSideInfo
	}
}

// buildTree assigns canonical codewords in entry order (Vorbis I
// §3.2.1, the sparse left-first tree allocation) and compiles them into
// a flat binary tree. Node n branches at tree[2n+bit]; a negative entry
// is -(entry+1).
func (cb *codebook) buildTree() error {
	codes, err := assignCodewords(cb.lens)
	if err != nil {
		return err
	}

	cb.tree = make([]int32, 2)
	nodes := int32(1)
	for e, l := range cb.lens {
		if l == 0 {
			continue
		}
		code := codes[e]
		node := int32(0)
		for d := int(l) - 1; d >= 0; d-- {
			b := (code >> uint(d)) & 1
			slot := 2*node + int32(b)
			if d == 0 {
				if cb.tree[slot] != 0 {
					return audiodec.ErrCorruptSideInfo
				}
				cb.tree[slot] = -int32(e + 1)
				break
			}
			if cb.tree[slot] == 0 {
				cb.tree[slot] = nodes
				cb.tree = append(cb.tree, 0, 0)
				nodes++
			} else if cb.tree[slot] < 0 {
				return audiodec.ErrCorruptSideInfo
			}
			node = cb.tree[slot]
		}
	}
	return nil
}

// assignCodewords hands each used entry, in entry order, the leftmost
// free leaf of its depth, maintaining per-depth markers the way the
// reference decoder does.
func assignCodewords(lens []uint8) ([]uint32, error) {
	var marker [33]uint32
	codes := make([]uint32, len(lens))

	for i, l8 := range lens {
		l := int(l8)
		if l == 0 {
			continue
		}
		entry := marker[l]
		if l < 32 && entry>>uint(l) != 0 {
			return nil, audiodec.ErrCorruptSideInfo // over-subscribed
		}
		codes[i] = entry

		// Climb toward the root: the first branch whose low bit is set
		// absorbs the increment, everything below resets under it.
		for j := l; j > 0; j-- {
			if marker[j]&1 != 0 {
				if j == 1 {
					marker[1]++
				} else {
					marker[j] = marker[j-1] << 1
				}
				break
			}
			marker[j]++
		}

		// Re-dangle deeper markers that hung off the leaf just taken.
		for j := l + 1; j <= 32; j++ {
			if marker[j]>>1 == entry {
				entry = marker[j]
				marker[j] = marker[j-1] << 1
			} else {
				break
			}
		}
	}
	return codes, nil
}

// decodeScalar reads one codeword, bit by bit in stream order, and
// returns its entry number.
func (cb *codebook) decodeScalar(r *bits.LSBReader) (int, error) {
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

// decodeVector reads one codeword and returns its VQ vector.
func (cb *codebook) decodeVector(r *bits.LSBReader) ([]float32, error) {
	e, err := cb.decodeScalar(r)
	if err != nil {
		return nil, err
	}
	if cb.vectors == nil {
		return nil, audiodec.ErrCorruptSpectralData
	}
	return cb.vectors[e], nil
}

// lookup1Values is the largest integer with pow(v, dims) <= entries.
func lookup1Values(entries, dims int) int {
	v := int(math.Floor(math.Pow(float64(entries), 1/float64(dims))))
	for pow(v+1, dims) <= entries {
		v++
	}
	for v > 0 && pow(v, dims) > entries {
		v--
	}
	return v
}

func pow(base, exp int) int {
	r := 1
	for i := 0; i < exp; i++ {
		if r > 1<<24 {
			return r
		}
		r *= base
	}
	return r
}

// float32Unpack decodes the 32-bit packed float of Vorbis I §9.2.2.
func float32Unpack(x uint32) float32 {
	mant := float64(x & 0x1fffff)
	exp := int((x & 0x7fe00000) >> 21)
	if x&0x80000000 != 0 {
		mant = -mant
	}
	return float32(math.Ldexp(mant, exp-788))
}

// ilog returns the position of the highest set bit of v, per the
// Vorbis I helper: ilog(0) = 0, ilog(1) = 1, ilog(7) = 3.
func ilog(v int) int {
	n := 0
	for v > 0 {
		n++
		v >>= 1
	}
	return n
}
