package bits

import (
	"github.com/hvlib/audiodec"
)

// LSBReader is a sequential LSB-first bit cursor, the packing order the
// Vorbis I specification mandates: bit 0 of byte 0 is the first bit of
// the stream, and multi-bit fields are assembled low bit first.
type LSBReader struct {
	data     []byte
	consumed int
	total    int
}

// NewLSBReader returns an LSBReader positioned at the first bit of data.
func NewLSBReader(data []byte) *LSBReader {
	return &LSBReader{data: data, total: len(data) * 8}
}

// ReadBits reads n bits (n <= 32) LSB-first.
func (r *LSBReader) ReadBits(n uint) (uint32, error) {
	v, err := r.PeekBits(n)
	if err != nil {
		return 0, err
	}
	r.consumed += int(n)
	return v, nil
}

// PeekBits returns the next n bits (n <= 32) without advancing.
func (r *LSBReader) PeekBits(n uint) (uint32, error) {
	if n == 0 {
		return 0, nil
	}
	if n > 32 || r.consumed+int(n) > r.total {
		return 0, audiodec.ErrBitstreamExhausted
	}
	var v uint32
	pos := r.consumed
	for got := uint(0); got < n; {
		byteIdx := pos >> 3
		bitIdx := uint(pos & 7)
		take := 8 - bitIdx
		if take > n-got {
			take = n - got
		}
		chunk := uint32(r.data[byteIdx]>>bitIdx) & (1<<take - 1)
		v |= chunk << got
		got += take
		pos += int(take)
	}
	return v, nil
}

// ReadBit reads a single bit.
func (r *LSBReader) ReadBit() (uint32, error) {
	return r.ReadBits(1)
}

// ReadFlag reads a single bit as a bool.
func (r *LSBReader) ReadFlag() (bool, error) {
	v, err := r.ReadBits(1)
	return v != 0, err
}

// BitsRemaining reports how many bits are left to read.
func (r *LSBReader) BitsRemaining() int {
	return r.total - r.consumed
}

// Position reports the number of bits consumed so far.
func (r *LSBReader) Position() int {
	return r.consumed
}
