// Package rangecoding implements the entropy range decoder of RFC 6716
// Section 4.1, consumed by the opus package for both the SILK and CELT
// layers. Raw bits read from the back of the buffer share the same
// packet, as the RFC requires.
package rangecoding

import "math/bits"

const (
	symBits   = 8
	codeBits  = 32
	symMax    = (1 << symBits) - 1
	codeExtra = (codeBits-2)%symBits + 1 // carry bits read with the first byte
	codeTop   = uint32(1) << (codeBits - 1)
	codeBot   = codeTop >> symBits
)

// Decoder is the range decoder state for one packet. The zero value is
// unusable; call Init.
type Decoder struct {
	buf       []byte
	offs      uint32 // next byte from the front
	endOffs   uint32 // bytes consumed from the back (raw bits)
	endWindow uint32
	nendBits  int
	nbitsTot  int
	rng       uint32
	val       uint32
	ext       uint32 // rng>>ftb saved by DecodeBin for Update
	rem       int
}

// Init resets the decoder over buf and primes the range state.
func (d *Decoder) Init(buf []byte) {
	d.buf = buf
	d.offs = 0
	d.endOffs = 0
	d.endWindow = 0
	d.nendBits = 0
	d.rng = 1 << codeExtra
	d.rem = int(d.readByte())
	d.val = d.rng - 1 - uint32(d.rem>>(symBits-codeExtra))
	// Bias so Tell reports exactly one bit consumed after priming.
	d.nbitsTot = codeBits + 1 - (codeBits-codeExtra)/symBits*symBits
	d.normalize()
}

func (d *Decoder) readByte() byte {
	if d.offs < uint32(len(d.buf)) {
		b := d.buf[d.offs]
		d.offs++
		return b
	}
	return 0
}

func (d *Decoder) readByteFromEnd() byte {
	if d.endOffs < uint32(len(d.buf)) {
		d.endOffs++
		return d.buf[uint32(len(d.buf))-d.endOffs]
	}
	return 0
}

func (d *Decoder) normalize() {
	for d.rng <= codeBot {
		d.nbitsTot += symBits
		d.rng <<= symBits
		sym := d.rem
		d.rem = int(d.readByte())
		sym = (sym<<symBits | d.rem) >> (symBits - codeExtra)
		d.val = (d.val<<symBits + uint32(symMax&^sym)) & (codeTop - 1)
	}
}

// DecodeICDF decodes one symbol against an inverse CDF table with ftb
// bits of precision. The table is strictly decreasing and ends at 0.
func (d *Decoder) DecodeICDF(icdf []uint8, ftb uint) int {
	r := d.rng >> ftb
	k := 0
	for d.val < r*uint32(icdf[k]) {
		k++
	}
	d.val -= r * uint32(icdf[k])
	if k > 0 {
		d.rng = r * uint32(icdf[k-1]-icdf[k])
	} else {
		d.rng -= r * uint32(icdf[0])
	}
	d.normalize()
	return k
}

// DecodeBit decodes a single bit whose probability of being one is
// 1/2^logp.
func (d *Decoder) DecodeBit(logp uint) int {
	r := d.rng >> logp
	if d.val >= r {
		d.val -= r
		d.rng -= r
		d.normalize()
		return 1
	}
	d.rng = r
	d.normalize()
	return 0
}

// DecodeBin returns the cumulative frequency of the next symbol under
// a total of 1<<ftb, without consuming it. The caller locates the
// symbol whose [fl, fh) interval contains the result and commits with
// Update(fl, fh, 1<<ftb).
func (d *Decoder) DecodeBin(ftb uint) uint32 {
	d.ext = d.rng >> ftb
	s := d.val / d.ext
	total := uint32(1) << ftb
	if s+1 < total {
		return total - (s + 1)
	}
	return 0
}

// Update commits the symbol located after DecodeBin.
func (d *Decoder) Update(fl, fh, ft uint32) {
	s := d.ext * (ft - fh)
	d.val -= s
	if fl > 0 {
		d.rng = d.ext * (fh - fl)
	} else {
		d.rng -= s
	}
	d.normalize()
}

// decode returns the cumulative frequency of the next symbol under an
// arbitrary total ft, saving the scale for Update.
func (d *Decoder) decode(ft uint32) uint32 {
	d.ext = d.rng / ft
	s := d.val / d.ext
	if s+1 < ft {
		return ft - (s + 1)
	}
	return 0
}

// DecodeStep decodes the stepped distribution used for the stereo
// angle of two-phase bands: symbols 0..k0 carry weight 3, the rest
// weight 1.
func (d *Decoder) DecodeStep(k0 uint32) uint32 {
	k1 := 3 * (k0 + 1)
	total := k1 + k0
	fm := d.decode(total)
	var k uint32
	if fm < k1 {
		k = fm / 3
	} else {
		k = fm - 2*(k0+1)
	}
	if k <= k0 {
		d.Update(3*k, 3*(k+1), total)
	} else {
		d.Update(k1+(k-1-k0), k1+(k-k0), total)
	}
	return k
}

// DecodeTriangular decodes the triangular distribution over [0, qn]
// used for the mono split angle of long frames.
func (d *Decoder) DecodeTriangular(qn uint32) uint32 {
	qn2 := qn >> 1
	total := (qn2 + 1) * (qn2 + 1)
	fm := d.decode(total)
	var k, fl, fs uint32
	if fm < qn2*(qn2+1)>>1 {
		k = (isqrt32(8*fm+1) - 1) >> 1
		fl = k * (k + 1) >> 1
		fs = k + 1
	} else {
		k = (2*(qn+1) - isqrt32(8*(total-fm-1)+1)) >> 1
		fl = total - (qn+1-k)*(qn+2-k)>>1
		fs = qn + 1 - k
	}
	d.Update(fl, fl+fs, total)
	return k
}

func isqrt32(v uint32) uint32 {
	var g, b uint32
	b = 1 << (uint(bits.Len32(v)-1) >> 1)
	for ; b > 0; b >>= 1 {
		t := (g + b) * (g + b)
		if t <= v {
			g += b
		}
	}
	return g
}

// DecodeUniform decodes an integer uniformly distributed in [0, ft).
func (d *Decoder) DecodeUniform(ft uint32) uint32 {
	if ft <= 1 {
		return 0
	}
	ftb := uint(32 - bits.LeadingZeros32(ft-1))
	if ftb > 8 {
		ftb -= 8
		ft1 := ((ft - 1) >> ftb) + 1
		t := d.decodeRange(ft1)
		t = t<<ftb | d.DecodeRawBits(ftb)
		if t >= ft {
			// Out-of-range composite index marks a corrupt stream;
			// clamp like the reference decoder.
			t = ft - 1
		}
		return t
	}
	return d.decodeRange(ft)
}

// decodeRange decodes a uniform symbol in [0, ft) with ft <= 256 worth
// of direct range precision.
func (d *Decoder) decodeRange(ft uint32) uint32 {
	r := d.rng / ft
	t := d.val / r
	if t >= ft {
		t = ft - 1
	}
	d.val -= r * t
	if t+1 < ft {
		d.rng = r
	} else {
		d.rng -= r * t
	}
	d.normalize()
	return t
}

// DecodeRawBits reads n raw bits from the back of the packet.
func (d *Decoder) DecodeRawBits(n uint) uint32 {
	for d.nendBits < int(n) {
		d.endWindow |= uint32(d.readByteFromEnd()) << d.nendBits
		d.nendBits += symBits
	}
	v := d.endWindow & (1<<n - 1)
	d.endWindow >>= n
	d.nendBits -= int(n)
	d.nbitsTot += int(n)
	return v
}

// Tell reports whole bits consumed so far.
func (d *Decoder) Tell() int {
	return d.nbitsTot - (32 - bits.LeadingZeros32(d.rng))
}

// TellFrac reports bits consumed in 1/8-bit units.
func (d *Decoder) TellFrac() int {
	l := 32 - bits.LeadingZeros32(d.rng)
	nbits := d.nbitsTot << 3
	var r uint32
	if l > 16 {
		r = d.rng >> (uint(l) - 16)
	} else {
		r = d.rng << (16 - uint(l))
	}
	for i := 0; i < 3; i++ {
		r = r * r >> 15
		b := r >> 16
		l = l<<1 | int(b)
		r >>= b
	}
	return nbits - l
}
