package aac

import (
	"github.com/hvlib/audiodec"
	"github.com/hvlib/audiodec/internal/bits"
	"github.com/hvlib/audiodec/internal/window"
)

const (
	frameLen = 1024
	shortLen = 128

	maxSfb          = 51
	maxWindowGroups = 8
	maxTNSOrder     = 20
)

// icsInfo is the decoded ics_info() element plus the window grouping
// derived from it (ISO/IEC 13818-7 §8.3.4).
type icsInfo struct {
	windowSequence window.Sequence
	windowShape    int // 0 sine, 1 KBD
	maxSfb         int

	numWindows      int
	numWindowGroups int
	groupLen        [maxWindowGroups]int
	numSwb          int
	swb             []int // band offsets within one window

	// Flattened per-group band offsets: grouped short spectra store a
	// band's lines for every window of the group contiguously.
	sectSfbOffset [maxWindowGroups][maxSfb + 1]int
}

func (info *icsInfo) short() bool { return info.windowSequence == window.EightShort }

// icStream is one individual_channel_stream: side info plus quantized
// spectral data, reused across frames.
type icStream struct {
	info       icsInfo
	globalGain int

	sfbCB        [maxWindowGroups][maxSfb]uint8
	scaleFactors [maxWindowGroups][maxSfb]int

	pulsePresent bool
	pulse        pulseData

	tnsPresent bool
	tns        tnsData

	msMaskPresent int
	msUsed        [maxWindowGroups][maxSfb]bool

	quant [frameLen]int32
}

type pulseData struct {
	count    int
	startSfb int
	offset   [4]int
	amp      [4]int
}

type tnsData struct {
	nFilt     [8]int
	coefRes   [8]int
	length    [8][4]int
	order     [8][4]int
	direction [8][4]int
	compress  [8][4]int
	coef      [8][4][maxTNSOrder]int
}

// parseICSInfo reads ics_info() and derives the window grouping. The
// predictor bit must be clear for the LC object type.
func (d *Decoder) parseICSInfo(r *bits.Reader, info *icsInfo) error {
	var err error
	read := func(n uint) int {
		var v uint32
		if err == nil {
			v, err = r.ReadBits(n)
		}
		return int(v)
	}

	reserved := read(1)
	info.windowSequence = window.Sequence(read(2))
	info.windowShape = read(1)

	grouping := 0
	predictor := 0
	if info.short() {
		info.maxSfb = read(4)
		grouping = read(7)
	} else {
		info.maxSfb = read(6)
		predictor = read(1)
	}
	if err != nil {
		return err
	}
	if reserved != 0 {
		return audiodec.ErrCorruptSideInfo
	}
	if predictor != 0 { // Main/LTP profile prediction, not LC
		return audiodec.ErrUnsupportedConfig
	}
	return d.windowGrouping(info, grouping)
}

// windowGrouping fills the window counts, group lengths, and flattened
// band offsets for the current sequence.
func (d *Decoder) windowGrouping(info *icsInfo, grouping int) error {
	if info.short() {
		info.numWindows = 8
		info.swb = swbOffsetsShort[d.srIdx]
		info.numSwb = len(info.swb) - 1
		if info.maxSfb > info.numSwb {
			return audiodec.ErrCorruptSideInfo
		}

		// scale_factor_grouping: a set bit keeps window i+1 in the
		// group of window i.
		info.numWindowGroups = 1
		info.groupLen[0] = 1
		for i := 0; i < 7; i++ {
			if grouping&(1<<(6-i)) != 0 {
				info.groupLen[info.numWindowGroups-1]++
			} else {
				info.numWindowGroups++
				info.groupLen[info.numWindowGroups-1] = 1
			}
		}

		for g := 0; g < info.numWindowGroups; g++ {
			off := 0
			for sfb := 0; sfb < info.numSwb; sfb++ {
				info.sectSfbOffset[g][sfb] = off
				off += (info.swb[sfb+1] - info.swb[sfb]) * info.groupLen[g]
			}
			info.sectSfbOffset[g][info.numSwb] = off
		}
		return nil
	}

	info.numWindows = 1
	info.numWindowGroups = 1
	info.groupLen[0] = 1
	info.swb = swbOffsetsLong[d.srIdx]
	info.numSwb = len(info.swb) - 1
	if info.maxSfb > info.numSwb {
		return audiodec.ErrCorruptSideInfo
	}
	for sfb := 0; sfb <= info.numSwb; sfb++ {
		info.sectSfbOffset[0][sfb] = info.swb[sfb]
	}
	return nil
}

// parseSectionData assigns a codebook to every scalefactor band
// (ISO/IEC 13818-7 §8.3.5). Codebook 12 is reserved.
func parseSectionData(r *bits.Reader, ics *icStream) error {
	sectBits := uint(5)
	if ics.info.short() {
		sectBits = 3
	}
	escape := 1<<sectBits - 1

	for g := 0; g < ics.info.numWindowGroups; g++ {
		for k := 0; k < ics.info.maxSfb; {
			cb, err := r.ReadBits(4)
			if err != nil {
				return err
			}
			if cb == 12 {
				return audiodec.ErrCorruptSideInfo
			}

			sectLen := 0
			for {
				incr, err := r.ReadBits(sectBits)
				if err != nil {
					return err
				}
				sectLen += int(incr)
				if int(incr) != escape {
					break
				}
			}
			if k+sectLen > ics.info.maxSfb {
				return audiodec.ErrCorruptSideInfo
			}
			for sfb := k; sfb < k+sectLen; sfb++ {
				ics.sfbCB[g][sfb] = uint8(cb)
			}
			k += sectLen
		}
	}
	return nil
}

// parseScaleFactors decodes the three differentially coded ladders:
// scalefactors for spectral bands, positions for intensity bands, and
// energies for noise bands (ISO/IEC 13818-7 §8.3.6).
func parseScaleFactors(r *bits.Reader, ics *icStream) error {
	sf := ics.globalGain
	isPos := 0
	noise := ics.globalGain - 90
	noisePCM := true

	for g := 0; g < ics.info.numWindowGroups; g++ {
		for sfb := 0; sfb < ics.info.maxSfb; sfb++ {
			switch ics.sfbCB[g][sfb] {
			case zeroHCB:
				ics.scaleFactors[g][sfb] = 0

			case intensityHCB, intensityHCB2:
				delta, err := decodeScaleFactor(r)
				if err != nil {
					return err
				}
				isPos += delta
				ics.scaleFactors[g][sfb] = isPos

			case noiseHCB:
				if noisePCM {
					noisePCM = false
					v, err := r.ReadBits(9)
					if err != nil {
						return err
					}
					noise += int(v) - 256
				} else {
					delta, err := decodeScaleFactor(r)
					if err != nil {
						return err
					}
					noise += delta
				}
				ics.scaleFactors[g][sfb] = noise

			default:
				delta, err := decodeScaleFactor(r)
				if err != nil {
					return err
				}
				sf += delta
				if sf < 0 || sf > 255 {
					return audiodec.ErrCorruptSideInfo
				}
				ics.scaleFactors[g][sfb] = sf
			}
		}
	}
	return nil
}

// parsePulseData reads pulse_data(); pulses are only legal on long
// windows and are added to the quantized values before requantization.
func parsePulseData(r *bits.Reader, ics *icStream) error {
	if ics.info.short() {
		return audiodec.ErrCorruptSideInfo
	}
	var err error
	read := func(n uint) int {
		var v uint32
		if err == nil {
			v, err = r.ReadBits(n)
		}
		return int(v)
	}

	ics.pulse.count = read(2) + 1
	ics.pulse.startSfb = read(6)
	for i := 0; i < ics.pulse.count; i++ {
		ics.pulse.offset[i] = read(5)
		ics.pulse.amp[i] = read(4)
	}
	if err != nil {
		return err
	}
	if ics.pulse.startSfb > ics.info.numSwb {
		return audiodec.ErrCorruptSideInfo
	}
	return nil
}

// applyPulses adds the transmitted pulse amplitudes onto the quantized
// coefficients, preserving their sign.
func applyPulses(ics *icStream) error {
	k := ics.info.swb[ics.pulse.startSfb]
	for i := 0; i < ics.pulse.count; i++ {
		k += ics.pulse.offset[i]
		if k >= frameLen {
			return audiodec.ErrCorruptSpectralData
		}
		if ics.quant[k] < 0 {
			ics.quant[k] -= int32(ics.pulse.amp[i])
		} else {
			ics.quant[k] += int32(ics.pulse.amp[i])
		}
	}
	return nil
}

// parseTNSData reads tns_data(); field widths depend on the window
// sequence (ISO/IEC 13818-7 §8.3.7).
func parseTNSData(r *bits.Reader, ics *icStream) error {
	nFiltBits, lengthBits, orderBits := uint(2), uint(6), uint(5)
	if ics.info.short() {
		nFiltBits, lengthBits, orderBits = 1, 4, 3
	}
	var err error
	read := func(n uint) int {
		var v uint32
		if err == nil {
			v, err = r.ReadBits(n)
		}
		return int(v)
	}

	tns := &ics.tns
	for w := 0; w < ics.info.numWindows; w++ {
		tns.nFilt[w] = read(nFiltBits)
		coefBits := 3
		if tns.nFilt[w] != 0 {
			tns.coefRes[w] = read(1)
			coefBits += tns.coefRes[w]
		}
		for f := 0; f < tns.nFilt[w]; f++ {
			tns.length[w][f] = read(lengthBits)
			tns.order[w][f] = read(orderBits)
			if err == nil && tns.order[w][f] > maxTNSOrder {
				return audiodec.ErrCorruptSideInfo
			}
			if tns.order[w][f] != 0 {
				tns.direction[w][f] = read(1)
				tns.compress[w][f] = read(1)
				for i := 0; i < tns.order[w][f]; i++ {
					tns.coef[w][f][i] = read(uint(coefBits - tns.compress[w][f]))
				}
			}
		}
	}
	return err
}

// parseSpectralData Huffman-decodes the quantized coefficients for
// every spectral band; zero, noise, and intensity bands carry none.
func parseSpectralData(r *bits.Reader, ics *icStream) error {
	for i := range ics.quant {
		ics.quant[i] = 0
	}
	var sp [4]int32
	base := 0
	for g := 0; g < ics.info.numWindowGroups; g++ {
		for sfb := 0; sfb < ics.info.maxSfb; sfb++ {
			cb := ics.sfbCB[g][sfb]
			switch cb {
			case zeroHCB, noiseHCB, intensityHCB, intensityHCB2:
				continue
			}
			dim := 4
			if cb >= firstPairHCB {
				dim = 2
			}
			start := base + ics.info.sectSfbOffset[g][sfb]
			end := base + ics.info.sectSfbOffset[g][sfb+1]
			for k := start; k < end; k += dim {
				if err := decodeSpectral(int(cb), r, sp[:dim]); err != nil {
					return err
				}
				copy(ics.quant[k:k+dim], sp[:dim])
			}
		}
		base += ics.info.sectSfbOffset[g][ics.info.numSwb]
	}
	return nil
}
