// Package bits implements bit-granular readers over frame byte ranges.
//
// Two cursor flavors exist because the codecs disagree on packing order:
// Reader consumes bits MSB-first within each byte (MPEG audio, AAC),
// LSBReader consumes them LSB-first (Vorbis I, per Xiph spec §2).
package bits

import (
	"github.com/hvlib/audiodec"
)

// Reader is a sequential MSB-first bit cursor over a byte slice.
//
// It keeps the next 32 bits staged in a word and pre-loads a second word
// for look-ahead, so PeekBits up to 32 never touches the slice twice.
// Reads past the end of the buffer fail with ErrBitstreamExhausted and
// leave the cursor where it was; callers treat that as a corrupt frame.
type Reader struct {
	data     []byte
	bufa     uint32 // staged bits, MSB-aligned consumption
	bufb     uint32 // look-ahead word
	bitsLeft uint   // valid bits remaining in bufa (0..32)
	loadPos  int    // next byte offset to stage into bufb
	consumed int    // bits handed out so far
	total    int    // len(data) * 8
}

// NewReader returns a Reader positioned at the first bit of data.
func NewReader(data []byte) *Reader {
	r := &Reader{data: data, total: len(data) * 8}
	r.bufa = loadWord(data, 0)
	r.bufb = loadWord(data, 4)
	r.loadPos = 8
	r.bitsLeft = 32
	return r
}

// loadWord stages up to 4 bytes at offset as a big-endian word, padding
// with zeros past the end of the buffer.
func loadWord(data []byte, offset int) uint32 {
	var w uint32
	for i := 0; i < 4; i++ {
		w <<= 8
		if offset+i < len(data) {
			w |= uint32(data[offset+i])
		}
	}
	return w
}

// PeekBits returns the next n bits (n <= 32) without moving the cursor.
func (r *Reader) PeekBits(n uint) (uint32, error) {
	if n == 0 {
		return 0, nil
	}
	if n > 32 || r.consumed+int(n) > r.total {
		return 0, audiodec.ErrBitstreamExhausted
	}
	return r.peek(n), nil
}

// peek assumes n is in range; split out so hot Huffman loops can probe
// cheaply after a single bounds check.
func (r *Reader) peek(n uint) uint32 {
	if n <= r.bitsLeft {
		return (r.bufa << (32 - r.bitsLeft)) >> (32 - n)
	}
	fromB := n - r.bitsLeft
	var hi uint32
	if r.bitsLeft > 0 {
		hi = (r.bufa & (1<<r.bitsLeft - 1)) << fromB
	}
	return hi | r.bufb>>(32-fromB)
}

// ReadBits reads and returns the next n bits (n <= 32) as an unsigned
// integer, advancing the cursor.
func (r *Reader) ReadBits(n uint) (uint32, error) {
	v, err := r.PeekBits(n)
	if err != nil {
		return 0, err
	}
	r.advance(n)
	return v, nil
}

// ReadBit reads a single bit.
func (r *Reader) ReadBit() (uint32, error) {
	return r.ReadBits(1)
}

// ReadSignedBits reads n bits and sign-extends the result.
func (r *Reader) ReadSignedBits(n uint) (int32, error) {
	v, err := r.ReadBits(n)
	if err != nil {
		return 0, err
	}
	shift := 32 - n
	return int32(v<<shift) >> shift, nil
}

// Skip discards n bits. Unlike ReadBits it allows n > 32.
func (r *Reader) Skip(n uint) error {
	if r.consumed+int(n) > r.total {
		return audiodec.ErrBitstreamExhausted
	}
	for n > 32 {
		r.advance(32)
		n -= 32
	}
	if n > 0 {
		r.advance(n)
	}
	return nil
}

func (r *Reader) advance(n uint) {
	r.consumed += int(n)
	if n < r.bitsLeft {
		r.bitsLeft -= n
		return
	}
	n -= r.bitsLeft
	r.bufa = r.bufb
	r.bufb = loadWord(r.data, r.loadPos)
	r.loadPos += 4
	r.bitsLeft = 32 - n
}

// ByteAlign rounds the cursor up to the next byte boundary.
func (r *Reader) ByteAlign() {
	if rem := uint(r.consumed % 8); rem != 0 {
		r.advance(8 - rem)
	}
}

// BitsRemaining reports how many bits are left to read.
func (r *Reader) BitsRemaining() int {
	return r.total - r.consumed
}

// Position reports the number of bits consumed so far.
func (r *Reader) Position() int {
	return r.consumed
}
