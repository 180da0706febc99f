package aac

import "math"

// iqTabSize covers direct lookup for the common small magnitudes; the
// escape range falls back to math.Pow.
const iqTabSize = 1024

var iqTab [iqTabSize]float32

func init() {
	for i := range iqTab {
		iqTab[i] = float32(math.Pow(float64(i), 4.0/3.0))
	}
}

// iquant is the sign-preserving 4/3-power expansion of one quantized
// coefficient.
func iquant(q int32) float32 {
	if q < 0 {
		return -iquant(-q)
	}
	if q < iqTabSize {
		return iqTab[q]
	}
	return float32(math.Pow(float64(q), 4.0/3.0))
}

// sfGain converts a scalefactor to its linear gain 2^(0.25*(sf-100)).
func sfGain(sf int) float32 {
	return float32(math.Exp2(0.25 * float64(sf-100)))
}

// requantize expands the quantized coefficients and applies the band
// gains, writing into spec in the bitstream's grouped order. Zero,
// noise, and intensity bands stay silent here; noise and intensity are
// synthesized by the stereo stage.
func requantize(ics *icStream, spec []float32) {
	for i := range spec {
		spec[i] = 0
	}
	base := 0
	for g := 0; g < ics.info.numWindowGroups; g++ {
		for sfb := 0; sfb < ics.info.maxSfb; sfb++ {
			switch ics.sfbCB[g][sfb] {
			case zeroHCB, noiseHCB, intensityHCB, intensityHCB2:
				continue
			}
			gain := sfGain(ics.scaleFactors[g][sfb])
			start := base + ics.info.sectSfbOffset[g][sfb]
			end := base + ics.info.sectSfbOffset[g][sfb+1]
			for k := start; k < end; k++ {
				spec[k] = iquant(ics.quant[k]) * gain
			}
		}
		base += ics.info.sectSfbOffset[g][ics.info.numSwb]
	}
}

// deinterleave reorders a grouped eight-short spectrum into
// window-major order (eight runs of 128 lines) for the filterbank.
// Long sequences are already in transform order.
func deinterleave(ics *icStream, spec, tmp []float32) {
	if !ics.info.short() {
		return
	}
	copy(tmp, spec[:frameLen])
	for i := range spec[:frameLen] {
		spec[i] = 0
	}

	src := 0
	winBase := 0
	for g := 0; g < ics.info.numWindowGroups; g++ {
		for sfb := 0; sfb < ics.info.numSwb; sfb++ {
			width := ics.info.swb[sfb+1] - ics.info.swb[sfb]
			for w := 0; w < ics.info.groupLen[g]; w++ {
				dst := (winBase+w)*shortLen + ics.info.swb[sfb]
				copy(spec[dst:dst+width], tmp[src:src+width])
				src += width
			}
		}
		winBase += ics.info.groupLen[g]
	}
}
