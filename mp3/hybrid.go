package mp3

import "math"

// Hybrid filterbank windows (ISO/IEC 11172-3 §2.4.3.4.10.3): normal,
// start, and stop windows over 36 points, and the 12-point short
// window. Built once at init.
var (
	winNormal [36]float32
	winStart  [36]float32
	winStop   [36]float32
	winShort  [12]float32
)

func init() {
	for i := 0; i < 36; i++ {
		winNormal[i] = float32(math.Sin(math.Pi / 36 * (float64(i) + 0.5)))
	}
	for i := 0; i < 12; i++ {
		winShort[i] = float32(math.Sin(math.Pi / 12 * (float64(i) + 0.5)))
	}
	for i := 0; i < 36; i++ {
		switch {
		case i < 18:
			winStart[i] = winNormal[i]
		case i < 24:
			winStart[i] = 1
		case i < 30:
			winStart[i] = float32(math.Sin(math.Pi / 12 * (float64(i) - 18 + 0.5)))
		default:
			winStart[i] = 0
		}
		winStop[35-i] = winStart[i]
	}
}

// antialias runs the eight alias-reduction butterflies across each
// adjacent subband boundary. Short blocks skip it entirely; mixed
// blocks keep only the boundary between the two long subbands.
func (d *Decoder) antialias(g *granuleInfo, ch int) {
	if g.shortBlocks() && !g.mixedBlock {
		return
	}
	sbMax := subbands
	if g.shortBlocks() {
		sbMax = 2
	}
	xr := &d.xr[ch]
	for sb := 1; sb < sbMax; sb++ {
		for i := 0; i < 8; i++ {
			lo := sb*subbandSamples - 1 - i
			hi := sb*subbandSamples + i
			a, b := xr[lo], xr[hi]
			xr[lo] = a*antialiasCS[i] - b*antialiasCA[i]
			xr[hi] = b*antialiasCS[i] + a*antialiasCA[i]
		}
	}
}

// hybrid runs the per-subband IMDCT, windows per block type,
// overlap-adds against the stored previous half, and applies the
// frequency inversion, leaving 18 time samples per subband in d.hyb.
func (d *Decoder) hybrid(g *granuleInfo, ch int) {
	var raw [36]float32
	var short12 [12]float32
	xr := &d.xr[ch]

	for sb := 0; sb < subbands; sb++ {
		spec := xr[sb*subbandSamples : (sb+1)*subbandSamples]
		shortBlock := g.shortBlocks() && (!g.mixedBlock || sb >= 2)

		if shortBlock {
			for i := range raw {
				raw[i] = 0
			}
			for w := 0; w < 3; w++ {
				_ = d.imdctShort.Transform(spec[w*6:(w+1)*6], short12[:])
				for i := 0; i < 12; i++ {
					// Undo the transform's unity-gain normalization;
					// the polyphase stage supplies the chain gain.
					raw[6+w*6+i] += 3 * short12[i] * winShort[i]
				}
			}
		} else {
			_ = d.imdctLong.Transform(spec, raw[:])
			win := &winNormal
			if g.windowSwitching && (!g.mixedBlock || sb >= 2) {
				switch g.blockType {
				case blockStart:
					win = &winStart
				case blockStop:
					win = &winStop
				}
			}
			for i := range raw {
				raw[i] *= 9 * win[i]
			}
		}

		st := &d.store[ch][sb]
		out := &d.hyb[sb]
		for i := 0; i < subbandSamples; i++ {
			out[i] = raw[i] + st[i]
			st[i] = raw[subbandSamples+i]
		}
		if sb&1 == 1 {
			for i := 1; i < subbandSamples; i += 2 {
				out[i] = -out[i]
			}
		}
	}
}
