package vorbis

import (
	"github.com/hvlib/audiodec"
	"github.com/hvlib/audiodec/internal/bits"
)

// residue reconstructs the fine spectral detail under the floor curve
// (Vorbis I §8). The coded range is split into fixed-size partitions,
// each tagged with a classification that selects a VQ codebook cascade
// of up to eight accumulation passes.
type residue struct {
	resType       int
	begin, end    int
	partitionSize int
	classes       int
	classbook     int
	books         [][8]int // per class, per pass; -1 marks no book

	// per-channel classification scratch, grown on demand
	classif [][]int
}

// parseResidue reads one residue configuration from the setup header.
func parseResidue(r *bits.LSBReader, books []*codebook) (*residue, error) {
	var err error
	read := func(n uint) int {
		var v uint32
		if err == nil {
			v, err = r.ReadBits(n)
		}
		return int(v)
	}

	res := &residue{
		resType:       read(16),
		begin:         read(24),
		end:           read(24),
		partitionSize: read(24) + 1,
		classes:       read(6) + 1,
		classbook:     read(8),
	}
	if err != nil {
		return nil, err
	}
	if res.resType > 2 || res.begin > res.end || res.classbook >= len(books) {
		return nil, audiodec.ErrCorruptSideInfo
	}

	cascade := make([]int, res.classes)
	for i := range cascade {
		low := read(3)
		if read(1) != 0 {
			cascade[i] = read(5)<<3 | low
		} else {
			cascade[i] = low
		}
	}
	for i := 0; i < res.classes; i++ {
		var row [8]int
		for j := 0; j < 8; j++ {
			row[j] = -1
			if cascade[i]&(1<<uint(j)) != 0 {
				b := read(8)
				if err == nil && (b >= len(books) || books[b].vectors == nil) {
					return nil, audiodec.ErrCorruptSideInfo
				}
				row[j] = b
			}
		}
		res.books = append(res.books, row)
	}
	if err != nil {
		return nil, err
	}
	return res, nil
}

// decode accumulates residue vectors into out, one half-spectrum per
// channel. Channels flagged in doNotDecode carry no residue this frame
// (their floor was unused). Truncated packets end decode early with the
// partial spectrum kept, per the format's lenient end-of-packet rule.
func (res *residue) decode(r *bits.LSBReader, books []*codebook, doNotDecode []bool, n int, out [][]float32) error {
	if res.resType == 2 {
		return res.decode2(r, books, doNotDecode, n, out)
	}
	return res.decodeCore(r, books, doNotDecode, n, out, res.resType)
}

// decode2 runs format 2: all channels interleaved into a single vector
// decoded with format 1 semantics, then split back per channel.
func (res *residue) decode2(r *bits.LSBReader, books []*codebook, doNotDecode []bool, n int, out [][]float32) error {
	ch := len(out)
	any := false
	for _, dnd := range doNotDecode {
		if !dnd {
			any = true
			break
		}
	}
	if !any {
		return nil
	}

	joined := make([]float32, n*ch)
	if err := res.decodeCore(r, books, []bool{false}, n*ch,
		[][]float32{joined}, 1); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		for j := 0; j < ch; j++ {
			out[j][i] += joined[i*ch+j]
		}
	}
	return nil
}

func (res *residue) decodeCore(r *bits.LSBReader, books []*codebook, doNotDecode []bool, n int, out [][]float32, format int) error {
	ch := len(out)
	classbook := books[res.classbook]
	classwords := classbook.dims

	limitBegin := res.begin
	if limitBegin > n {
		limitBegin = n
	}
	limitEnd := res.end
	if limitEnd > n {
		limitEnd = n
	}
	toRead := limitEnd - limitBegin
	if toRead <= 0 {
		return nil
	}
	partitions := toRead / res.partitionSize

	for len(res.classif) < ch {
		res.classif = append(res.classif, nil)
	}
	for j := 0; j < ch; j++ {
		if len(res.classif[j]) < partitions+classwords {
			res.classif[j] = make([]int, partitions+classwords)
		}
	}

	for pass := 0; pass < 8; pass++ {
		for pc := 0; pc < partitions; {
			if pass == 0 {
				for j := 0; j < ch; j++ {
					if doNotDecode[j] {
						continue
					}
					temp, err := classbook.decodeScalar(r)
					if err != nil {
						return eopOK(err)
					}
					for i := classwords - 1; i >= 0; i-- {
						res.classif[j][pc+i] = temp % res.classes
						temp /= res.classes
					}
				}
			}
			for i := 0; i < classwords && pc < partitions; i, pc = i+1, pc+1 {
				for j := 0; j < ch; j++ {
					if doNotDecode[j] {
						continue
					}
					cls := res.classif[j][pc]
					if cls >= res.classes {
						return audiodec.ErrCorruptSpectralData
					}
					book := res.books[cls][pass]
					if book < 0 {
						continue
					}
					offset := limitBegin + pc*res.partitionSize
					if err := res.decodePartition(r, books[book], format,
						out[j][offset:offset+res.partitionSize]); err != nil {
						return eopOK(err)
					}
				}
			}
		}
	}
	return nil
}

// decodePartition accumulates one partition's worth of VQ vectors:
// format 0 strides the vector across the partition, format 1 lays
// vectors down contiguously.
func (res *residue) decodePartition(r *bits.LSBReader, book *codebook, format int, part []float32) error {
	dims := book.dims
	if format == 0 {
		step := len(part) / dims
		for k := 0; k < step; k++ {
			v, err := book.decodeVector(r)
			if err != nil {
				return err
			}
			for l, e := range v {
				part[k+l*step] += e
			}
		}
		return nil
	}
	for i := 0; i < len(part); {
		v, err := book.decodeVector(r)
		if err != nil {
			return err
		}
		for _, e := range v {
			if i >= len(part) {
				break
			}
			part[i] += e
			i++
		}
	}
	return nil
}

// eopOK converts a truncated-packet error to a clean stop; anything
// else propagates.
func eopOK(err error) error {
	if err == audiodec.ErrBitstreamExhausted {
		return nil
	}
	return err
}
