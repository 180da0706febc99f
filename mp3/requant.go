package mp3

import "math"

// requantize turns the integer Huffman output for one channel into
// dequantized spectral values: |x|^(4/3) scaled by the global gain and
// the per-band scalefactor (ISO/IEC 11172-3 §2.4.3.4.7).
//
// Short-block coefficients arrive subband-interleaved per window; they
// are written straight to their reordered position, so d.xr is always
// in frequency order afterwards.
func (d *Decoder) requantize(g *granuleInfo, h header, ch int) {
	xr := &d.xr[ch]
	for i := range xr {
		xr[i] = 0
	}

	scaleStep := 0.5
	if g.scalefacScale == 1 {
		scaleStep = 1
	}
	gain := float64(g.globalGain) - 210

	if !g.shortBlocks() {
		d.requantLong(g, h, ch, 0, 22, gain, scaleStep)
		return
	}

	firstShort := 0
	if g.mixedBlock {
		// Lines 0..35 stay long-coded; that is 8 scalefactor bands at
		// the MPEG-1 rates and 6 at the wider LSF bands. The short
		// bands start at band 3 either way.
		longBands := 8
		if h.LSF {
			longBands = 6
		}
		d.requantLong(g, h, ch, 0, longBands, gain, scaleStep)
		firstShort = 3
	}

	sf := &d.sf[ch]
	short := &sfbShort[h.sfreq]
	for b := firstShort; b < 13; b++ {
		width := short[b+1] - short[b]
		for w := 0; w < 3; w++ {
			e := 0.25*(gain-8*float64(g.subblockGain[w])) - scaleStep*float64(sf.s[b][w])
			m := float32(math.Exp2(e))
			for k := 0; k < width; k++ {
				src := 3*short[b] + w*width + k
				line := short[b] + k
				dst := line/6*18 + w*6 + line%6
				xr[dst] = m * pow43(d.is[src])
			}
		}
	}
}

func (d *Decoder) requantLong(g *granuleInfo, h header, ch, from, to int, gain, scaleStep float64) {
	xr := &d.xr[ch]
	sf := &d.sf[ch]
	long := &sfbLong[h.sfreq]
	for b := from; b < to; b++ {
		pre := 0
		if g.preflag {
			pre = pretab[b]
		}
		e := 0.25*gain - scaleStep*float64(sf.l[b]+pre)
		m := float32(math.Exp2(e))
		for i := long[b]; i < long[b+1]; i++ {
			xr[i] = m * pow43(d.is[i])
		}
	}
}
