package mp3

import "github.com/hvlib/audiodec"

const invSqrt2 = float32(0.7071067811865476)

// stereo undoes the joint-stereo coding of one granule in place over
// d.xr (ISO/IEC 11172-3 §2.4.3.4.9). M/S reconstructs
// L=(M+S)/sqrt2, R=(M-S)/sqrt2. Intensity stereo rebuilds the right
// channel from the left using the position coded in the right
// channel's scalefactors; it applies to the scalefactor bands at and
// above the right channel's zero boundary.
func (d *Decoder) stereo(g *granuleInfo, h header) error {
	if h.Channels < 2 {
		if h.intensityStereo() {
			return audiodec.ErrCorruptSideInfo
		}
		return nil
	}
	ms := h.msStereo()
	intensity := h.intensityStereo()
	if !ms && !intensity {
		return nil
	}

	// End of the M/S region in reordered-spectrum positions. With no
	// intensity coding M/S covers the whole granule.
	msEnd := granuleSamples

	if intensity {
		if g.shortBlocks() {
			short := &sfbShort[h.sfreq]
			bI := 13
			for b := 0; b < 13; b++ {
				if 3*short[b] >= d.nonzero[1] {
					bI = b
					break
				}
			}
			msEnd = 3 * short[min13(bI)]
			for b := bI; b < 13; b++ {
				width := short[b+1] - short[b]
				for w := 0; w < 3; w++ {
					d.intensityShortBand(ms, short[b], width, w, d.sf[1].s[b][w])
				}
			}
		} else {
			long := &sfbLong[h.sfreq]
			bI := 22
			for b := 0; b < 22; b++ {
				if long[b] >= d.nonzero[1] {
					bI = b
					break
				}
			}
			if bI < 22 {
				msEnd = long[bI]
			}
			for b := bI; b < 22; b++ {
				pos := 7
				if b < 21 {
					pos = d.sf[1].l[b]
				}
				d.intensityLongBand(ms, long[b], long[b+1], pos)
			}
		}
	}

	if ms {
		L, R := &d.xr[0], &d.xr[1]
		for i := 0; i < msEnd; i++ {
			m, s := L[i], R[i]
			L[i] = (m + s) * invSqrt2
			R[i] = (m - s) * invSqrt2
		}
	}
	return nil
}

func min13(b int) int {
	if b > 13 {
		return 13
	}
	return b
}

func (d *Decoder) intensityLongBand(ms bool, from, to, pos int) {
	if pos == 7 {
		if ms {
			d.msBand(from, to)
		}
		return
	}
	l, r := intensityFactors(pos)
	L, R := &d.xr[0], &d.xr[1]
	for i := from; i < to; i++ {
		v := L[i]
		L[i] = v * l
		R[i] = v * r
	}
}

func (d *Decoder) intensityShortBand(ms bool, start, width, w, pos int) {
	L, R := &d.xr[0], &d.xr[1]
	if pos == 7 {
		if !ms {
			return
		}
		for k := 0; k < width; k++ {
			line := start + k
			i := line/6*18 + w*6 + line%6
			m, s := L[i], R[i]
			L[i] = (m + s) * invSqrt2
			R[i] = (m - s) * invSqrt2
		}
		return
	}
	l, r := intensityFactors(pos)
	for k := 0; k < width; k++ {
		line := start + k
		i := line/6*18 + w*6 + line%6
		v := L[i]
		L[i] = v * l
		R[i] = v * r
	}
}

func (d *Decoder) msBand(from, to int) {
	L, R := &d.xr[0], &d.xr[1]
	for i := from; i < to; i++ {
		m, s := L[i], R[i]
		L[i] = (m + s) * invSqrt2
		R[i] = (m - s) * invSqrt2
	}
}

// intensityFactors splits a unit signal between the channels for an
// intensity position 0..6.
func intensityFactors(pos int) (l, r float32) {
	if pos == 6 {
		return 1, 0
	}
	ratio := intensityRatio[pos]
	return ratio / (1 + ratio), 1 / (1 + ratio)
}
