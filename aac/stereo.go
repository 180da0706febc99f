package aac

import "math"

// msDecode converts M/S coded bands back to L/R in the grouped spectral
// order. Intensity bands (right channel) and noise bands (left channel)
// are excluded; those stages consume the ms_used flag themselves.
func msDecode(l, r *icStream, lSpec, rSpec []float32) {
	if l.msMaskPresent == 0 {
		return
	}
	base := 0
	for g := 0; g < l.info.numWindowGroups; g++ {
		for sfb := 0; sfb < l.info.maxSfb; sfb++ {
			use := l.msMaskPresent == 2 || l.msUsed[g][sfb]
			if !use || isIntensity(r, g, sfb) != 0 || l.sfbCB[g][sfb] == noiseHCB {
				continue
			}
			start := base + l.info.sectSfbOffset[g][sfb]
			end := base + l.info.sectSfbOffset[g][sfb+1]
			for k := start; k < end; k++ {
				s := lSpec[k] - rSpec[k]
				lSpec[k] += rSpec[k]
				rSpec[k] = s
			}
		}
		base += l.info.sectSfbOffset[g][l.info.numSwb]
	}
}

// isIntensity reports the intensity direction of a right-channel band:
// +1 for in-phase (codebook 15), -1 for out-of-phase (14), 0 otherwise.
func isIntensity(ics *icStream, g, sfb int) int {
	switch ics.sfbCB[g][sfb] {
	case intensityHCB:
		return 1
	case intensityHCB2:
		return -1
	}
	return 0
}

// isDecode reconstructs the right channel of intensity-coded bands from
// the left spectrum with scale 0.5^(0.25*position); the ms_used flag
// flips the phase (ISO/IEC 13818-7 §12.3).
func isDecode(l, r *icStream, lSpec, rSpec []float32) {
	base := 0
	for g := 0; g < r.info.numWindowGroups; g++ {
		for sfb := 0; sfb < r.info.maxSfb; sfb++ {
			dir := isIntensity(r, g, sfb)
			if dir == 0 {
				continue
			}
			scale := float32(math.Pow(0.5, 0.25*float64(r.scaleFactors[g][sfb])))
			if l.msMaskPresent == 2 || (l.msMaskPresent == 1 && l.msUsed[g][sfb]) {
				dir = -dir
			}
			if dir < 0 {
				scale = -scale
			}
			start := base + r.info.sectSfbOffset[g][sfb]
			end := base + r.info.sectSfbOffset[g][sfb+1]
			for k := start; k < end; k++ {
				rSpec[k] = lSpec[k] * scale
			}
		}
		base += r.info.sectSfbOffset[g][r.info.numSwb]
	}
}

// pnsRand steps the dual-LFSR noise generator shared by every PNS band
// of the instance. State survives across frames.
func (d *Decoder) pnsRand() int32 {
	t1 := d.pnsR1
	t2 := d.pnsR2
	d.pnsR1 = t1>>1 | uint32(parity8(t1&0xF5))<<31
	d.pnsR2 = t2<<1 | uint32(parity8(t2>>25&0x63))
	return int32(d.pnsR1 ^ d.pnsR2)
}

func parity8(v uint32) uint32 {
	v ^= v >> 4
	v ^= v >> 2
	v ^= v >> 1
	return v & 1
}

// pnsDecode fills noise-substituted bands with pseudo-random spectra
// scaled to the transmitted noise energy. In a channel pair with
// ms_used set, the right band reuses the left band's noise vector
// rescaled to its own energy, keeping the channels correlated. Callers
// pass pair=true only when the two streams share a window layout.
func (d *Decoder) pnsDecode(l, r *icStream, lSpec, rSpec []float32, pair bool) {
	base := 0
	for g := 0; g < l.info.numWindowGroups; g++ {
		for sfb := 0; sfb < l.info.maxSfb; sfb++ {
			start := base + l.info.sectSfbOffset[g][sfb]
			end := base + l.info.sectSfbOffset[g][sfb+1]

			leftNoise := l.sfbCB[g][sfb] == noiseHCB
			if leftNoise {
				d.genNoise(lSpec[start:end], l.scaleFactors[g][sfb])
			}
			if !pair || r.sfbCB[g][sfb] != noiseHCB {
				continue
			}
			correlated := leftNoise &&
				(l.msMaskPresent == 2 || (l.msMaskPresent == 1 && l.msUsed[g][sfb]))
			if correlated {
				ratio := float32(math.Exp2(0.25 * float64(r.scaleFactors[g][sfb]-l.scaleFactors[g][sfb])))
				for k := start; k < end; k++ {
					rSpec[k] = lSpec[k] * ratio
				}
			} else {
				d.genNoise(rSpec[start:end], r.scaleFactors[g][sfb])
			}
		}
		base += l.info.sectSfbOffset[g][l.info.numSwb]
	}
}

// genNoise fills band with unit-energy noise scaled by 2^(0.25*sf).
func (d *Decoder) genNoise(band []float32, sf int) {
	if len(band) == 0 {
		return
	}
	var energy float64
	for i := range band {
		v := float32(d.pnsRand())
		band[i] = v
		energy += float64(v) * float64(v)
	}
	if energy == 0 {
		return
	}
	if sf < -120 {
		sf = -120
	} else if sf > 120 {
		sf = 120
	}
	scale := float32(math.Exp2(0.25*float64(sf)) / math.Sqrt(energy))
	for i := range band {
		band[i] *= scale
	}
}
