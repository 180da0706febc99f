package opus

import (
	"math"
	"math/bits"

	"github.com/hvlib/audiodec/internal/rangecoding"
	"github.com/hvlib/audiodec/internal/transform"
	"github.com/hvlib/audiodec/internal/window"
)

const (
	celtSeedInit = 0x3c5f92a1
	celtLCGMul   = 1664525
	celtLCGAdd   = 1013904223

	spreadNone       = 0
	spreadLight      = 1
	spreadNormal     = 2
	spreadAggressive = 3

	qthetaOffset         = 4
	qthetaOffsetTwoPhase = 16

	invSqrt2 = float32(0.7071067811865476)
)

// celtDecoder is the MDCT layer: coarse+fine energy per band, PVQ band
// shapes with spectral folding, denormalization, and the inverse
// transform with overlap-add (RFC 6716 Section 4.3).
type celtDecoder struct {
	channels int
	eng      *transform.Engine

	imdct   map[int]*transform.IMDCT
	overlap map[int]*window.Overlap

	prevEnergy [2][celtNumBands]float32
	seed       uint32

	specL, specR []float32
	normL, normR []float32
	block        []float32
	ch           []float32
	scratch      []float32

	// Per-frame coding state, valid for the duration of one decode call.
	lm              int
	blocks          int
	frameBits       int
	spread          int
	intensity       int
	dualStereo      bool
	codedBand       int
	anticollapseRsv int
	remaining       int // bit balance carried between bands, 1/8 bit units
	remaining2      int // bits usable by the current band
	energy          [2][celtNumBands]float32
	tfChange        [celtNumBands]int
	pulses          [celtNumBands]int
	fineQuant       [celtNumBands]int
	finePriority    [celtNumBands]bool
	collapse        [2][celtNumBands]uint8
}

func newCELTDecoder(channels int, eng *transform.Engine) *celtDecoder {
	return &celtDecoder{
		channels: channels,
		eng:      eng,
		imdct:    map[int]*transform.IMDCT{},
		overlap:  map[int]*window.Overlap{},
		seed:     celtSeedInit,
		specL:    make([]float32, 960),
		specR:    make([]float32, 960),
		normL:    make([]float32, 960),
		normR:    make([]float32, 960),
		block:    make([]float32, 1920),
		ch:       make([]float32, 960),
		scratch:  make([]float32, 960),
	}
}

func (c *celtDecoder) reset() {
	c.prevEnergy = [2][celtNumBands]float32{}
	c.seed = celtSeedInit
	for _, o := range c.overlap {
		o.Reset()
	}
}

func (c *celtDecoder) plan(frameSize int) (*transform.IMDCT, *window.Overlap, error) {
	t, ok := c.imdct[frameSize]
	if !ok {
		var err error
		t, err = transform.NewIMDCT(c.eng, 2*frameSize)
		if err != nil {
			return nil, nil, err
		}
		c.imdct[frameSize] = t
	}
	o, ok := c.overlap[frameSize]
	if !ok {
		o = window.NewOverlap(c.channels, frameSize)
		c.overlap[frameSize] = o
	}
	return t, o, nil
}

func (c *celtDecoder) rand() uint32 {
	c.seed = c.seed*celtLCGMul + celtLCGAdd
	return c.seed
}

// celtEndBand maps the signalled audio bandwidth to the last coded
// band.
func celtEndBand(b bandwidth) int {
	switch b {
	case bandNarrow:
		return 13
	case bandMedium, bandWide:
		return 17
	case bandSuperWide:
		return 19
	default:
		return celtNumBands
	}
}

// decode runs one CELT frame of frameSize samples per channel at 48 kHz
// and adds the result into out (interleaved). In hybrid mode start is
// the SILK crossover band; bands outside [start, end) are not coded.
func (c *celtDecoder) decode(rd *rangecoding.Decoder, frameSize, packetBits, start, end int, out []float32) error {
	imdct, ov, err := c.plan(frameSize)
	if err != nil {
		return err
	}

	lm := 0
	for 120<<lm < frameSize {
		lm++
	}
	c.lm = lm
	c.frameBits = packetBits

	tell := rd.Tell()
	silence := tell >= packetBits
	if !silence && tell == 1 {
		silence = rd.DecodeBit(15) == 1
	}
	if silence {
		for b := 0; b < celtNumBands; b++ {
			c.prevEnergy[0][b] = -28
			c.prevEnergy[1][b] = -28
		}
		for ch := 0; ch < c.channels; ch++ {
			c.emitSilence(ov, ch, frameSize, out)
		}
		return nil
	}

	// Post-filter parameters are parsed for bitstream position but the
	// comb filter itself is not applied.
	tell = rd.Tell()
	if start == 0 && tell+16 <= packetBits {
		if rd.DecodeBit(1) == 1 {
			octave := rd.DecodeUniform(6)
			rd.DecodeRawBits(uint(4 + octave)) // period
			rd.DecodeRawBits(3)               // gain
			if rd.Tell()+2 <= packetBits {
				rd.DecodeICDF(celtTapsetICDF, 2)
			}
		}
		tell = rd.Tell()
	}

	transient := false
	if lm > 0 && tell+3 <= packetBits {
		transient = rd.DecodeBit(3) == 1
		tell = rd.Tell()
	}
	c.blocks = 1
	if transient {
		c.blocks = 1 << lm
	}
	intra := false
	if tell+3 <= packetBits {
		intra = rd.DecodeBit(3) == 1
	}

	c.decodeCoarseEnergy(rd, start, end, intra)
	c.decodeTF(rd, start, end, transient)

	c.spread = spreadNormal
	if rd.Tell()+4 <= packetBits {
		c.spread = rd.DecodeICDF(celtSpreadICDF, 5)
	}

	var caps, offsets [celtNumBands]int
	for i := 0; i < celtNumBands; i++ {
		n := (celtBands[i+1] - celtBands[i]) << lm
		caps[i] = (int(celtCacheCaps[celtNumBands*(2*lm+c.channels-1)+i]) + 64) * c.channels * n >> 2
	}

	// Dynamic allocation boosts.
	totalQ3 := packetBits << 3
	tellQ3 := rd.TellFrac()
	totalBoost := 0
	dynallocLogp := 6
	for i := start; i < end; i++ {
		width := c.channels * (celtBands[i+1] - celtBands[i]) << lm
		quanta := min(width<<3, max(6<<3, width))
		loopLogp := dynallocLogp
		boost := 0
		for tellQ3+loopLogp<<3 < totalQ3-totalBoost && boost < caps[i] {
			flag := rd.DecodeBit(uint(loopLogp))
			tellQ3 = rd.TellFrac()
			if flag == 0 {
				break
			}
			boost += quanta
			totalBoost += quanta
			loopLogp = 1
		}
		offsets[i] = boost
		if boost > 0 {
			dynallocLogp = max(2, dynallocLogp-1)
		}
	}

	trim := 5
	if rd.TellFrac()+6<<3 <= totalQ3-totalBoost {
		trim = rd.DecodeICDF(celtTrimICDF, 7)
	}

	bitsQ3 := totalQ3 - rd.TellFrac() - 1
	c.anticollapseRsv = 0
	if transient && lm >= 2 && bitsQ3 >= (lm+2)<<3 {
		c.anticollapseRsv = 1 << 3
	}
	bitsQ3 -= c.anticollapseRsv

	c.computeAllocation(rd, start, end, offsets[:], caps[:], trim, bitsQ3)
	c.decodeFineEnergy(rd, start, end)

	for i := range c.specL[:frameSize] {
		c.specL[i] = 0
		c.specR[i] = 0
	}
	var specR []float32
	if c.channels == 2 {
		specR = c.specR
	}
	c.decodeBands(rd, start, end, c.specL, specR)

	if c.anticollapseRsv > 0 {
		// Anti-collapse renormalization is not applied; the flag is
		// consumed to keep the raw-bit stream aligned.
		rd.DecodeRawBits(1)
	}
	c.decodeFinalEnergy(rd, start, end, packetBits-rd.Tell())

	for ch := 0; ch < c.channels; ch++ {
		spec := c.specL
		if ch == 1 {
			spec = c.specR
		}
		for b := start; b < end; b++ {
			g := float32(math.Exp2(float64(c.energy[ch][b] + celtEMeans[b])))
			lo := celtBands[b] << lm
			hi := celtBands[b+1] << lm
			for i := lo; i < hi; i++ {
				spec[i] *= g / float32(frameSize)
			}
			c.prevEnergy[ch][b] = c.energy[ch][b]
		}
		if err := imdct.Transform(spec[:frameSize], c.block[:2*frameSize]); err != nil {
			return err
		}
		ov.ApplyAndOverlap(ch, window.OnlyLong, window.Sine, window.Sine,
			c.block[:2*frameSize], c.ch[:frameSize])
		for i := 0; i < frameSize; i++ {
			out[i*c.channels+ch] += c.ch[i]
		}
	}
	return nil
}

// emitSilence runs the overlap engine on a zero block so a silent frame
// still drains the previous frame's tail smoothly.
func (c *celtDecoder) emitSilence(ov *window.Overlap, ch, frameSize int, out []float32) {
	for i := range c.block[:2*frameSize] {
		c.block[i] = 0
	}
	ov.ApplyAndOverlap(ch, window.OnlyLong, window.Sine, window.Sine,
		c.block[:2*frameSize], c.ch[:frameSize])
	for i := 0; i < frameSize; i++ {
		out[i*c.channels+ch] += c.ch[i]
	}
}

// decodeCoarseEnergy reads the per-band energy deltas against a 2-D
// prediction filter: alpha across frames, beta across bands. The
// Laplace model degrades to a fixed iCDF and then to sign bits as the
// budget runs out.
func (c *celtDecoder) decodeCoarseEnergy(rd *rangecoding.Decoder, start, end int, intra bool) {
	var coef, beta float32
	var model *[42]uint8
	if intra {
		beta = celtBetaIntra
		model = &celtEProbModel[c.lm][1]
	} else {
		coef = celtAlphaCoef[c.lm]
		beta = celtBetaCoef[c.lm]
		model = &celtEProbModel[c.lm][0]
	}
	var prev [2]float32
	for i := start; i < end; i++ {
		for ch := 0; ch < c.channels; ch++ {
			tell := rd.Tell()
			var qi int
			switch {
			case c.frameBits-tell >= 15:
				pi := 2 * min(i, 20)
				fs := int(model[pi]) << 7
				decay := int(model[pi+1]) << 6
				qi = decodeLaplace(rd, fs, decay)
			case c.frameBits-tell >= 2:
				qi = rd.DecodeICDF(celtSmallEnergyICDF, 2)
				qi = (qi >> 1) ^ -(qi & 1)
			case c.frameBits-tell >= 1:
				qi = -rd.DecodeBit(1)
			default:
				qi = -1
			}
			oldE := max(c.prevEnergy[ch][i], -9)
			q := float32(qi)
			c.energy[ch][i] = coef*oldE + prev[ch] + q
			prev[ch] += q - beta*q
		}
	}
}

func decodeLaplace(rd *rangecoding.Decoder, fs, decay int) int {
	fm := int(rd.DecodeBin(15))
	val := 0
	fl := 0
	if fm >= fs {
		val++
		fl = fs
		fs = laplaceFreq1(fs, decay) + laplaceMinP
		for fs > laplaceMinP && fm >= fl+2*fs {
			fs *= 2
			fl += fs
			fs = (fs-2*laplaceMinP)*decay>>15 + laplaceMinP
			val++
		}
		if fs <= laplaceMinP {
			di := (fm - fl) >> 1
			val += di
			fl += 2 * di * laplaceMinP
		}
		if fm < fl+fs {
			val = -val
		} else {
			fl += fs
		}
	}
	rd.Update(uint32(fl), uint32(min(fl+fs, 32768)), 32768)
	return val
}

func laplaceFreq1(fs0, decay int) int {
	ft := 32768 - laplaceMinP*(2*laplaceNMin) - fs0
	return ft * (16384 - decay) >> 15
}

// decodeTF reads the per-band time-frequency switches and resolves them
// through the tf_select table.
func (c *celtDecoder) decodeTF(rd *rangecoding.Decoder, start, end int, transient bool) {
	budget := c.frameBits
	tell := rd.Tell()
	logp := 4
	if transient {
		logp = 2
	}
	selectRsv := c.lm > 0 && tell+logp+1 <= budget
	if selectRsv {
		budget--
	}
	curr, changed := 0, 0
	for i := start; i < end; i++ {
		if tell+logp <= budget {
			curr ^= rd.DecodeBit(uint(logp))
			tell = rd.Tell()
			changed |= curr
		}
		c.tfChange[i] = curr
		logp = 5
		if transient {
			logp = 4
		}
	}
	t4 := 0
	if transient {
		t4 = 4
	}
	sel := 0
	if selectRsv && celtTFSelect[c.lm][t4+changed] != celtTFSelect[c.lm][t4+2+changed] {
		sel = rd.DecodeBit(1)
	}
	for i := start; i < end; i++ {
		c.tfChange[i] = int(celtTFSelect[c.lm][t4+2*sel+c.tfChange[i]])
	}
}

// computeAllocation mirrors the encoder's bit allocation: a coarse
// search over the static quality rows, six interpolation steps, skip
// decisions from the top band down, then the split of each band's bits
// into fine energy and PVQ pulses.
func (c *celtDecoder) computeAllocation(rd *rangecoding.Decoder, start, end int, offsets, caps []int, trim, total int) {
	chs := c.channels
	lm := c.lm
	total = max(total, 0)
	allocFloor := chs << 3

	skipStart := start
	skipRsv := 0
	if total >= 1<<3 {
		skipRsv = 1 << 3
	}
	total -= skipRsv
	intensityRsv, dualRsv := 0, 0
	if chs == 2 {
		intensityRsv = int(celtLog2Frac[end-start])
		if intensityRsv > total>>3 {
			intensityRsv = 0
		} else {
			total -= intensityRsv
			if total >= 1<<3 {
				dualRsv = 1 << 3
			}
			total -= dualRsv
		}
	}

	var thresh, trimOffset, bits1, bits2, bandBits [celtNumBands]int
	for j := start; j < end; j++ {
		w := celtBands[j+1] - celtBands[j]
		thresh[j] = max(chs<<3, 3*w<<lm<<3>>4)
		trimOffset[j] = chs * w * (trim - 5 - lm) * (end - j - 1) * (1 << (uint(lm) + 3)) >> 6
		if w<<lm == 1 {
			trimOffset[j] -= chs << 3
		}
	}

	lo, hi := 1, 10
	for lo <= hi {
		mid := (lo + hi) >> 1
		psum, done := 0, false
		for j := end - 1; j >= start; j-- {
			bandBitsJ := chs * (celtBands[j+1] - celtBands[j]) * celtBandAlloc[mid][j] << lm >> 2
			if bandBitsJ > 0 {
				bandBitsJ = max(0, bandBitsJ+trimOffset[j])
			}
			bandBitsJ += offsets[j]
			if bandBitsJ >= thresh[j] || done {
				done = true
				psum += min(bandBitsJ, caps[j])
			} else if bandBitsJ >= allocFloor {
				psum += allocFloor
			}
		}
		if psum > total {
			hi = mid - 1
		} else {
			lo = mid + 1
		}
	}
	hi = lo
	lo--

	for j := start; j < end; j++ {
		b1 := chs * (celtBands[j+1] - celtBands[j]) * celtBandAlloc[lo][j] << lm >> 2
		b2 := caps[j]
		if hi < 11 {
			b2 = chs * (celtBands[j+1] - celtBands[j]) * celtBandAlloc[hi][j] << lm >> 2
		}
		if b1 > 0 {
			b1 = max(0, b1+trimOffset[j])
		}
		if b2 > 0 {
			b2 = max(0, b2+trimOffset[j])
		}
		if lo > 0 {
			b1 += offsets[j]
		}
		b2 += offsets[j]
		if offsets[j] > 0 {
			skipStart = j
		}
		bits1[j] = b1
		bits2[j] = max(0, b2-b1)
	}

	flo, fhi := 0, 1<<allocSteps
	for i := 0; i < allocSteps; i++ {
		mid := (flo + fhi) >> 1
		psum, done := 0, false
		for j := end - 1; j >= start; j-- {
			tmp := bits1[j] + mid*bits2[j]>>allocSteps
			if tmp >= thresh[j] || done {
				done = true
				psum += min(tmp, caps[j])
			} else if tmp >= allocFloor {
				psum += allocFloor
			}
		}
		if psum > total {
			fhi = mid
		} else {
			flo = mid
		}
	}
	psum := 0
	done := false
	for j := end - 1; j >= start; j-- {
		tmp := bits1[j] + flo*bits2[j]>>allocSteps
		if tmp < thresh[j] && !done {
			if tmp >= allocFloor {
				tmp = allocFloor
			} else {
				tmp = 0
			}
		} else {
			done = true
		}
		tmp = min(tmp, caps[j])
		bandBits[j] = tmp
		psum += tmp
	}

	// Skip bands from the top down while the stream says so. The first
	// band and dynalloc-boosted bands are never skipped.
	codedBand := end
	for ; ; codedBand-- {
		j := codedBand - 1
		if j <= skipStart {
			total += skipRsv
			break
		}
		left := total - psum
		perCoeff := left / (celtBands[codedBand] - celtBands[start])
		left -= (celtBands[codedBand] - celtBands[start]) * perCoeff
		rem := max(left-(celtBands[j]-celtBands[start]), 0)
		bandWidth := celtBands[codedBand] - celtBands[j]
		bb := bandBits[j] + perCoeff*bandWidth + rem
		if bb >= max(thresh[j], allocFloor+1<<3) {
			if rd.DecodeBit(1) == 1 {
				break
			}
			psum += 1 << 3
			bb -= 1 << 3
		}
		psum -= bandBits[j] + intensityRsv
		if intensityRsv > 0 {
			intensityRsv = int(celtLog2Frac[j-start])
		}
		psum += intensityRsv
		if bb >= allocFloor {
			psum += allocFloor
			bandBits[j] = allocFloor
		} else {
			bandBits[j] = 0
		}
	}

	c.intensity = 0
	if intensityRsv > 0 {
		c.intensity = start + int(rd.DecodeUniform(uint32(codedBand+1-start)))
	}
	if c.intensity <= start {
		total += dualRsv
		dualRsv = 0
	}
	c.dualStereo = false
	if dualRsv > 0 {
		c.dualStereo = rd.DecodeBit(1) == 1
	}

	left := total - psum
	perCoeff := left / (celtBands[codedBand] - celtBands[start])
	left -= (celtBands[codedBand] - celtBands[start]) * perCoeff
	for j := start; j < codedBand; j++ {
		bandBits[j] += perCoeff * (celtBands[j+1] - celtBands[j])
	}
	for j := start; j < codedBand; j++ {
		tmp := min(left, celtBands[j+1]-celtBands[j])
		bandBits[j] += tmp
		left -= tmp
	}

	stereo := 0
	if chs == 2 {
		stereo = 1
	}
	balance := 0
	for j := start; j < codedBand; j++ {
		n := (celtBands[j+1] - celtBands[j]) << lm
		bit := bandBits[j] + balance
		excess := 0
		if n > 1 {
			excess = max(bit-caps[j], 0)
			bandBits[j] = bit - excess
			den := chs * n
			if chs == 2 && n > 2 && !c.dualStereo && j < c.intensity {
				den++
			}
			nclogn := den * (celtLogN[j] + lm<<3)
			offset := nclogn>>1 - den*fineOffset
			if n == 2 {
				offset += den << 3 >> 2
			}
			if bandBits[j]+offset < den*2<<3 {
				offset += nclogn >> 2
			} else if bandBits[j]+offset < den*3<<3 {
				offset += nclogn >> 3
			}
			eb := max(0, bandBits[j]+offset+den<<2)
			eb = (eb / den) >> 3
			if chs*eb > bandBits[j]>>3 {
				eb = bandBits[j] >> stereo >> 3
			}
			eb = min(eb, maxFineBits)
			c.finePriority[j] = eb*(den<<3) >= bandBits[j]+offset
			c.fineQuant[j] = eb
			bandBits[j] -= chs * eb << 3
		} else {
			// A single coefficient: everything but one sign bit per
			// channel goes to fine energy.
			excess = max(0, bit-(chs<<3))
			bandBits[j] = bit - excess
			c.fineQuant[j] = 0
			c.finePriority[j] = true
		}
		if excess > 0 {
			extra := min(excess>>(uint(stereo)+3), maxFineBits-c.fineQuant[j])
			c.fineQuant[j] += extra
			extraBits := extra * chs << 3
			c.finePriority[j] = extraBits >= excess-balance
			excess -= extraBits
		}
		balance = excess
		c.pulses[j] = bandBits[j]
	}
	for j := codedBand; j < end; j++ {
		c.fineQuant[j] = bandBits[j] >> stereo >> 3
		c.pulses[j] = 0
		c.finePriority[j] = c.fineQuant[j] < 1
	}
	c.codedBand = codedBand
	c.remaining = balance
}

func (c *celtDecoder) decodeFineEnergy(rd *rangecoding.Decoder, start, end int) {
	for i := start; i < end; i++ {
		if c.fineQuant[i] <= 0 {
			continue
		}
		for ch := 0; ch < c.channels; ch++ {
			q2 := int(rd.DecodeRawBits(uint(c.fineQuant[i])))
			c.energy[ch][i] += (float32(q2)+0.5)*float32(int(1)<<(14-c.fineQuant[i]))/16384 - 0.5
		}
	}
}

// decodeFinalEnergy spends leftover bits on one more fine energy bit
// per band, low-priority bands first.
func (c *celtDecoder) decodeFinalEnergy(rd *rangecoding.Decoder, start, end, bitsLeft int) {
	for prio := 0; prio < 2; prio++ {
		for i := start; i < end && bitsLeft >= c.channels; i++ {
			if c.fineQuant[i] >= maxFineBits || c.finePriority[i] != (prio == 1) {
				continue
			}
			for ch := 0; ch < c.channels; ch++ {
				q2 := int(rd.DecodeRawBits(1))
				c.energy[ch][i] += (float32(q2) - 0.5) * float32(int(1)<<(14-c.fineQuant[i]-1)) / 16384
				bitsLeft--
			}
		}
	}
}

// decodeBands walks the coded bands, computing each band's bit budget
// from the allocation and the running balance, tracking the fold
// source, and leaving unit-norm shapes in x (and y for stereo).
func (c *celtDecoder) decodeBands(rd *rangecoding.Decoder, start, end int, x, y []float32) {
	lm := c.lm
	updateLowband := true
	lowbandOffset := 0
	normOffset := celtBands[start] << lm
	totalQ3 := c.frameBits<<3 - c.anticollapseRsv

	for i := start; i < end; i++ {
		w := celtBands[i+1] - celtBands[i]
		n := w << lm
		off := celtBands[i] << lm
		bx := x[off : off+n]
		var by []float32
		if y != nil {
			by = y[off : off+n]
		}

		consumed := rd.TellFrac()
		if i != start {
			c.remaining -= consumed
		}
		c.remaining2 = totalQ3 - consumed - 1
		b := 0
		if i <= c.codedBand-1 {
			curr := c.remaining / min(3, c.codedBand-i)
			b = max(0, min(16383, min(c.remaining2+1, c.pulses[i]+curr)))
		}

		if celtBands[i]-w >= celtBands[start] && (updateLowband || lowbandOffset == 0) {
			lowbandOffset = i
		}

		foldable := lowbandOffset != 0 &&
			(c.spread != spreadAggressive || c.blocks > 1 || c.tfChange[i] < 0)
		xcm, ycm := 0, 0
		effective := 0
		if foldable {
			effective = max(celtBands[start], celtBands[lowbandOffset]-w)
			foldStart := lowbandOffset
			for j := lowbandOffset - 1; j >= 0; j-- {
				if celtBands[j] <= effective {
					foldStart = j
					break
				}
			}
			foldEnd := lowbandOffset
			for foldEnd < i && celtBands[foldEnd] < effective+w {
				foldEnd++
			}
			for j := foldStart; j < foldEnd; j++ {
				xcm |= int(c.collapse[0][j])
				ycm |= int(c.collapse[c.channels-1][j])
			}
		} else {
			xcm = 1<<c.blocks - 1
			ycm = xcm
		}

		if c.dualStereo && i == c.intensity {
			c.dualStereo = false
			for j := normOffset; j < off; j++ {
				c.normL[j] = (c.normL[j] + c.normR[j]) / 2
			}
		}

		var lowMid, lowMidOut, lowSide, lowSideOut []float32
		if foldable {
			lowMid = c.normL[effective<<lm : effective<<lm+n]
		}
		if i != end-1 {
			lowMidOut = c.normL[off : off+n]
		}

		switch {
		case y != nil && c.dualStereo:
			if foldable {
				lowSide = c.normR[effective<<lm : effective<<lm+n]
			}
			if i != end-1 {
				lowSideOut = c.normR[off : off+n]
			}
			xcm = c.decodeBand(rd, i, bx, nil, n, b/2, c.blocks, lowMid, lowMidOut, lm, 0, 1, xcm)
			ycm = c.decodeBand(rd, i, by, nil, n, b/2, c.blocks, lowSide, lowSideOut, lm, 0, 1, ycm)
		case y != nil:
			xcm = c.decodeBand(rd, i, bx, by, n, b, c.blocks, lowMid, lowMidOut, lm, 0, 1, xcm|ycm)
			ycm = xcm
		default:
			xcm = c.decodeBand(rd, i, bx, nil, n, b, c.blocks, lowMid, lowMidOut, lm, 0, 1, xcm)
			ycm = xcm
		}

		c.collapse[0][i] = uint8(xcm)
		if c.channels == 2 {
			c.collapse[1][i] = uint8(ycm)
		}
		c.remaining += c.pulses[i] + consumed
		updateLowband = b > n<<3
	}
}

// decodeBand is the recursive band shape decoder: theta splits for
// stereo and for bands too wide for a single PVQ codeword, Haar
// recombination for transient frames, then pulse decode or folding at
// the leaves. Returns the collapse mask across short blocks.
func (c *celtDecoder) decodeBand(rd *rangecoding.Decoder, band int, x, y []float32,
	n, b, blocks int, lowband, lowbandOut []float32, lm, level int, gain float32, fill int) int {

	if n == 1 {
		return c.decodeBand1(rd, x, y, lowbandOut)
	}

	dualstereo := y != nil
	n0 := n
	b0 := blocks
	nB := n / blocks
	nB0 := nB
	longBlocks := b0 == 1
	x0 := x

	var lowbandCopy []float32
	if lowband != nil {
		lowbandCopy = append([]float32(nil), lowband[:n]...)
	}

	recombine := 0
	timeDivide := 0
	if !dualstereo && level == 0 {
		tfChange := c.tfChange[band]
		if tfChange > 0 {
			recombine = tfChange
		}
		for k := 0; k < recombine; k++ {
			if lowbandCopy != nil {
				celtHaar1(lowbandCopy, n>>k, 1<<k)
			}
			fill = int(celtBitInterleave[fill&0xf] | celtBitInterleave[fill>>4]<<2)
		}
		blocks >>= recombine
		nB <<= recombine
		for nB&1 == 0 && tfChange < 0 {
			if lowbandCopy != nil {
				celtHaar1(lowbandCopy, nB, blocks)
			}
			fill |= fill << blocks
			blocks <<= 1
			nB >>= 1
			timeDivide++
			tfChange++
		}
		b0 = blocks
		nB0 = nB
		if b0 > 1 && lowbandCopy != nil {
			celtDeinterleaveHadamard(c.scratch, lowbandCopy, nB>>recombine, b0<<recombine, longBlocks)
		}
	}
	lowband = lowbandCopy

	cache := celtCacheBits[celtCacheIndex[(lm+1)*celtNumBands+band]:]
	split := dualstereo
	if !dualstereo && lm != -1 && b > int(cache[cache[0]])+12 && n > 2 {
		n >>= 1
		y = x[n : n*2]
		x = x[:n]
		lm--
		if blocks == 1 {
			fill = fill&1 | fill<<1
		}
		blocks = (blocks + 1) >> 1
		split = true
	}

	var cm int
	if split {
		ti := c.decodeTheta(rd, band, lm, n, b, b0, blocks, dualstereo, fill)
		itheta, delta, fill2 := ti.itheta, ti.delta, ti.fill
		mid, side := ti.mid, ti.side
		b -= ti.qalloc

		if n == 2 && dualstereo {
			sbits := 0
			if itheta != 0 && itheta != 16384 {
				sbits = 1 << 3
			}
			mbits := b - sbits
			c.remaining2 -= ti.qalloc + sbits

			x2, y2 := x, y
			if itheta > 8192 {
				x2, y2 = y, x
			}
			sign := float32(1)
			if sbits != 0 && rd.DecodeRawBits(1) == 1 {
				sign = -1
			}
			cm = c.decodeBand(rd, band, x2, nil, n, mbits, blocks, lowband, lowbandOut, lm, level, gain, fill2)
			y2[0] = -sign * x2[1]
			y2[1] = sign * x2[0]

			x[0] *= mid
			x[1] *= mid
			y[0] *= side
			y[1] *= side
			t := x[0]
			x[0] = t - y[0]
			y[0] = t + y[0]
			t = x[1]
			x[1] = t - y[1]
			y[1] = t + y[1]
		} else {
			if b0 > 1 && !dualstereo && itheta&0x3fff != 0 {
				if itheta > 8192 {
					delta -= delta >> uint(4-lm)
				} else {
					delta = min(0, delta+n<<3>>uint(5-lm))
				}
			}
			mbits := max(0, min(b, (b-delta)/2))
			sbits := b - mbits
			c.remaining2 -= ti.qalloc

			var nextLowband2 []float32
			if !dualstereo && lowband != nil {
				nextLowband2 = lowband[n:]
				lowband = lowband[:n]
			}
			var midLowbandOut []float32
			nextLevel := level
			sideShift := b0 >> 1
			midGain := gain * mid
			if dualstereo {
				// The mid channel carries the fold source forward and
				// keeps unit gain: stereoMerge applies mid afterwards.
				midLowbandOut = lowbandOut
				sideShift = 0
				midGain = gain
			} else {
				nextLevel = level + 1
			}

			rebalance := c.remaining2
			if mbits >= sbits {
				cm = c.decodeBand(rd, band, x, nil, n, mbits, blocks,
					lowband, midLowbandOut, lm, nextLevel, midGain, fill2)
				rebalance = mbits - (rebalance - c.remaining2)
				if rebalance > 3<<3 && itheta != 0 {
					sbits += rebalance - 3<<3
				}
				cm |= c.decodeBand(rd, band, y, nil, n, sbits, blocks,
					nextLowband2, nil, lm, nextLevel, gain*side, fill2>>blocks) << uint(sideShift)
			} else {
				cm = c.decodeBand(rd, band, y, nil, n, sbits, blocks,
					nextLowband2, nil, lm, nextLevel, gain*side, fill2>>blocks) << uint(sideShift)
				rebalance = sbits - (rebalance - c.remaining2)
				if rebalance > 3<<3 && itheta != 16384 {
					mbits += rebalance - 3<<3
				}
				cm |= c.decodeBand(rd, band, x, nil, n, mbits, blocks,
					lowband, midLowbandOut, lm, nextLevel, midGain, fill2)
			}
			if dualstereo {
				stereoMerge(x, y, mid, n)
			}
		}
		if dualstereo && ti.inv {
			for i := range y[:n] {
				y[i] = -y[i]
			}
		}
	} else {
		cm = c.decodeBandNoSplit(rd, x, lowband, n, blocks, gain, cache, b, fill)
	}

	if level == 0 && !dualstereo {
		if b0 > 1 {
			celtInterleaveHadamard(c.scratch, x0, nB>>recombine, b0<<recombine, longBlocks)
		}
		nB = nB0
		blocks = b0
		for k := 0; k < timeDivide; k++ {
			blocks >>= 1
			nB <<= 1
			cm |= cm >> blocks
			celtHaar1(x0, nB, blocks)
		}
		for k := 0; k < recombine; k++ {
			cm = int(celtBitDeinterleave[cm])
			celtHaar1(x0, n0>>k, 1<<k)
		}
		blocks <<= recombine

		if lowbandOut != nil {
			s := float32(math.Sqrt(float64(n0)))
			for i := 0; i < n0; i++ {
				lowbandOut[i] = s * x0[i]
			}
		}
		cm &= 1<<blocks - 1
	}
	return cm
}

func (c *celtDecoder) decodeBand1(rd *rangecoding.Decoder, x, y, lowbandOut []float32) int {
	one := func() float32 {
		if c.remaining2 >= 1<<3 {
			c.remaining2 -= 1 << 3
			if rd.DecodeRawBits(1) == 1 {
				return -1
			}
		}
		return 1
	}
	x[0] = one()
	if y != nil {
		y[0] = one()
	}
	if lowbandOut != nil {
		lowbandOut[0] = x[0]
	}
	return 1
}

// decodeBandNoSplit is the leaf: pick the pulse count for the budget
// from the cache curve, decode the codeword, or fold/noise-fill when
// nothing fits.
func (c *celtDecoder) decodeBandNoSplit(rd *rangecoding.Decoder, x, lowband []float32,
	n, blocks int, gain float32, cache []uint8, b, fill int) int {

	q := bits2Pulses(cache, b)
	curBits := pulses2Bits(cache, q)
	c.remaining2 -= curBits
	for c.remaining2 < 0 && q > 0 {
		c.remaining2 += curBits
		q--
		curBits = pulses2Bits(cache, q)
		c.remaining2 -= curBits
	}

	if q != 0 {
		return c.unquantize(rd, x, n, pvqPulses(q), blocks, gain)
	}

	cmMask := 1<<blocks - 1
	fill &= cmMask
	if fill == 0 {
		for i := 0; i < n; i++ {
			x[i] = 0
		}
		return 0
	}
	cm := cmMask
	if lowband != nil {
		// Fold the lower spectrum with a pseudo-random sign dither.
		for i := 0; i < n; i++ {
			d := float32(-1.0 / 256)
			if c.rand()&0x8000 != 0 {
				d = 1.0 / 256
			}
			x[i] = lowband[i] + d
		}
		cm = fill
	} else {
		for i := 0; i < n; i++ {
			x[i] = float32(int32(c.rand()) >> 20)
		}
	}
	renormalizeVector(x[:n], gain)
	return cm
}

func (c *celtDecoder) unquantize(rd *rangecoding.Decoder, x []float32, n, k, blocks int, gain float32) int {
	idx := rd.DecodeUniform(uint32(vCount(n, k)))
	yv := decodePulses(uint64(idx), n, k)
	var sum float64
	for _, v := range yv {
		sum += float64(v) * float64(v)
	}
	g := float64(gain)
	if sum > 0 {
		g /= math.Sqrt(sum)
	}
	for i := 0; i < n; i++ {
		x[i] = float32(g * float64(yv[i]))
	}
	expRotation(x, n, blocks, k, c.spread)
	return extractCollapseMask(yv, blocks)
}

type thetaInfo struct {
	itheta int
	inv    bool
	mid    float32
	side   float32
	delta  int
	qalloc int
	fill   int
}

// decodeTheta reads the mid/side angle of a split band. The resolution
// qn shrinks with the bit budget; intensity-coded stereo bands get no
// angle at all.
func (c *celtDecoder) decodeTheta(rd *rangecoding.Decoder, band, lm, n, b, b0, blocks int,
	dualstereo bool, fill int) thetaInfo {

	pulseCap := celtLogN[band] + lm<<3
	offset := pulseCap >> 1
	if dualstereo && n == 2 {
		offset -= qthetaOffsetTwoPhase
	} else {
		offset -= qthetaOffset
	}

	qn := 1
	if !(dualstereo && band >= c.intensity) {
		n2 := 2*n - 1
		if dualstereo && n == 2 {
			n2 = 2*n - 2
		}
		qb := min((b+n2*offset)/n2, b-pulseCap-4<<3)
		qb = min(qb, 8<<3)
		if qb >= 1<<3>>1 {
			qn = int(celtQNExp2[qb&7]) >> (14 - uint(qb>>3))
			qn = (qn + 1) >> 1 << 1
		}
	}

	tell := rd.TellFrac()
	itheta := 0
	inv := false
	if qn != 1 {
		switch {
		case dualstereo && n > 2:
			itheta = int(rd.DecodeStep(uint32(qn / 2)))
		case dualstereo || b0 > 1:
			itheta = int(rd.DecodeUniform(uint32(qn + 1)))
		default:
			itheta = int(rd.DecodeTriangular(uint32(qn)))
		}
		itheta = itheta * 16384 / qn
	} else if dualstereo {
		if b > 2<<3 && c.remaining2 > 2<<3 {
			inv = rd.DecodeBit(2) == 1
		}
	}
	qalloc := rd.TellFrac() - tell

	var imid, iside, delta int
	switch itheta {
	case 0:
		imid = 32767
		fill &= 1<<blocks - 1
		delta = -16384
	case 16384:
		iside = 32767
		fill &= (1<<blocks - 1) << blocks
		delta = 16384
	default:
		imid = bitexactCos(itheta)
		iside = bitexactCos(16384 - itheta)
		delta = fracMul16((n-1)<<7, bitexactLog2tan(iside, imid))
	}

	return thetaInfo{
		itheta: itheta,
		inv:    inv,
		mid:    float32(imid) / 32768,
		side:   float32(iside) / 32768,
		delta:  delta,
		qalloc: qalloc,
		fill:   fill,
	}
}

func bits2Pulses(cache []uint8, bits int) int {
	lo, hi := 0, int(cache[0])
	bits--
	for i := 0; i < 6; i++ {
		mid := (lo + hi + 1) >> 1
		if int(cache[mid]) >= bits {
			hi = mid
		} else {
			lo = mid
		}
	}
	loDiff := bits + 1
	if lo != 0 {
		loDiff = bits - int(cache[lo])
	}
	if loDiff <= int(cache[hi])-bits {
		return lo
	}
	return hi
}

func pulses2Bits(cache []uint8, pulses int) int {
	if pulses == 0 {
		return 0
	}
	return int(cache[pulses]) + 1
}

// pvqPulses expands a pseudo-pulse index into the real pulse count;
// past 40 the counts grow exponentially.
func pvqPulses(q int) int {
	if q < 8 {
		return q
	}
	return (8 + q&7) << (uint(q>>3) - 1)
}

func fracMul16(a, b int) int {
	return (16384 + a*b) >> 15
}

func bitexactCos(x int) int {
	x2 := (4096 + x*x) >> 13
	x2 = 32767 - x2 + fracMul16(x2, -7651+fracMul16(x2, 8277+fracMul16(-626, x2)))
	return 1 + x2
}

func bitexactLog2tan(isin, icos int) int {
	lc := bits.Len32(uint32(icos))
	ls := bits.Len32(uint32(isin))
	icos <<= 15 - uint(lc)
	isin <<= 15 - uint(ls)
	return (ls-lc)<<11 +
		fracMul16(isin, fracMul16(isin, -2597)+7932) -
		fracMul16(icos, fracMul16(icos, -2597)+7932)
}

func celtHaar1(x []float32, n0, stride int) {
	n0 >>= 1
	for i := 0; i < stride; i++ {
		for j := 0; j < n0; j++ {
			a := invSqrt2 * x[stride*2*j+i]
			b := invSqrt2 * x[stride*(2*j+1)+i]
			x[stride*2*j+i] = a + b
			x[stride*(2*j+1)+i] = a - b
		}
	}
}

func celtInterleaveHadamard(scratch, x []float32, n0, stride int, hadamard bool) {
	size := n0 * stride
	if hadamard {
		shuffle := celtHadamardOrder[stride-2:]
		for i := 0; i < stride; i++ {
			for j := 0; j < n0; j++ {
				scratch[j*stride+i] = x[int(shuffle[i])*n0+j]
			}
		}
	} else {
		for i := 0; i < stride; i++ {
			for j := 0; j < n0; j++ {
				scratch[j*stride+i] = x[i*n0+j]
			}
		}
	}
	copy(x[:size], scratch[:size])
}

func celtDeinterleaveHadamard(scratch, x []float32, n0, stride int, hadamard bool) {
	size := n0 * stride
	if hadamard {
		shuffle := celtHadamardOrder[stride-2:]
		for i := 0; i < stride; i++ {
			for j := 0; j < n0; j++ {
				scratch[int(shuffle[i])*n0+j] = x[j*stride+i]
			}
		}
	} else {
		for i := 0; i < stride; i++ {
			for j := 0; j < n0; j++ {
				scratch[i*n0+j] = x[j*stride+i]
			}
		}
	}
	copy(x[:size], scratch[:size])
}

func expRotation(x []float32, n, blocks, k, spread int) {
	if 2*k >= n || spread == spreadNone {
		return
	}
	factor := [3]int{15, 10, 5}[spread-1]
	gain := float64(n) / float64(n+factor*k)
	theta := math.Pi * gain * gain / 4
	cs := float32(math.Cos(theta))
	sn := float32(math.Sin(theta))

	stride2 := 0
	if n >= blocks<<3 {
		stride2 = 1
		for (stride2*stride2+stride2)*blocks+blocks>>2 < n {
			stride2++
		}
	}
	ln := n / blocks
	for i := 0; i < blocks; i++ {
		seg := x[i*ln : (i+1)*ln]
		if stride2 != 0 {
			expRotation1(seg, ln, stride2*blocks, sn, cs)
		}
		expRotation1(seg, ln, blocks, cs, sn)
	}
}

func expRotation1(x []float32, n, stride int, cs, sn float32) {
	ms := -sn
	for i := 0; i < n-stride; i++ {
		x1, x2 := x[i], x[i+stride]
		x[i+stride] = cs*x2 + sn*x1
		x[i] = cs*x1 + ms*x2
	}
	for i := n - 2*stride - 1; i >= 0; i-- {
		x1, x2 := x[i], x[i+stride]
		x[i+stride] = cs*x2 + sn*x1
		x[i] = cs*x1 + ms*x2
	}
}

func extractCollapseMask(y []int, blocks int) int {
	if blocks <= 1 {
		return 1
	}
	n0 := len(y) / blocks
	mask := 0
	for i := 0; i < blocks; i++ {
		for j := 0; j < n0; j++ {
			if y[i*n0+j] != 0 {
				mask |= 1 << uint(i)
				break
			}
		}
	}
	return mask
}

func renormalizeVector(x []float32, gain float32) {
	var sum float64
	for _, v := range x {
		sum += float64(v) * float64(v)
	}
	if sum == 0 {
		return
	}
	g := float64(gain) / math.Sqrt(sum)
	for i := range x {
		x[i] = float32(float64(x[i]) * g)
	}
}

func stereoMerge(x, y []float32, mid float32, n int) {
	var xp, side float64
	for i := 0; i < n; i++ {
		xp += float64(x[i]) * float64(y[i])
		side += float64(y[i]) * float64(y[i])
	}
	xp *= float64(mid)
	e := float64(mid)*float64(mid) + side
	el := e - 2*xp
	er := e + 2*xp
	if el < 6e-4 || er < 6e-4 {
		copy(y[:n], x[:n])
		return
	}
	lg := float32(1 / math.Sqrt(el))
	rg := float32(1 / math.Sqrt(er))
	for i := 0; i < n; i++ {
		l := mid * x[i]
		s := y[i]
		x[i] = lg * (l - s)
		y[i] = rg * (l + s)
	}
}
