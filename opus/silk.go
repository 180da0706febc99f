package opus

import (
	"math"
	"math/bits"
	"sort"

	"github.com/hvlib/audiodec/internal/rangecoding"
)

const (
	silkMaxOrder   = 16
	silkLTPOrder   = 5
	silkHistLen    = 322 // synthesis history, covers the longest pitch lag
	silkResHistLen = 290 // rewhitened residual history
	silkShellBlock = 16
)

// silkFrameType is the decoded signal class of one frame.
type silkFrameType struct {
	active bool
	voiced bool
	high   bool // high quantization offset
}

func (t silkFrameType) signalTypeIndex() int {
	switch {
	case !t.active:
		return 0
	case !t.voiced:
		return 1
	default:
		return 2
	}
}

func (t silkFrameType) voicedIndex() int {
	if t.voiced {
		return 1
	}
	return 0
}

func (t silkFrameType) qoffsetIndex() int {
	if t.high {
		return 1
	}
	return 0
}

// silkBand collects the per-bandwidth NLSF quantizer layout.
type silkBand struct {
	order      int
	step       int32
	stage1ICDF *[2][]uint8
	stage2ICDF *[8][]uint8
	predQ8     []uint8
	minSpacing []int16
	codebook   [][]uint8
}

var silkBandNB = silkBand{
	order:      10,
	step:       silkNLSFStepNB,
	stage1ICDF: &silkNLSFStage1NBICDF,
	stage2ICDF: &silkNLSFStage2NBICDF,
	predQ8:     silkNLSFPredNB[:],
	minSpacing: silkNLSFMinSpacingNB[:],
	codebook:   silkNLSFCodebookNB,
}

var silkBandWB = silkBand{
	order:      16,
	step:       silkNLSFStepWB,
	stage1ICDF: &silkNLSFStage1WBICDF,
	stage2ICDF: &silkNLSFStage2WBICDF,
	predQ8:     silkNLSFPredWB[:],
	minSpacing: silkNLSFMinSpacingWB[:],
	codebook:   silkNLSFCodebookWB,
}

// silkPitch collects the per-bandwidth pitch lag coding layout.
type silkPitch struct {
	minLag, maxLag int32
	scale          int32
	lowICDF        []uint8
	contourICDF    *[2][]uint8
	offsets        *[2][][]int8
}

var (
	silkPitchNB = silkPitch{16, 144, 4, silkUniform4ICDF, &silkContourNBICDF, &silkContourOffsetsNB}
	silkPitchMB = silkPitch{24, 216, 6, silkUniform6ICDF, &silkContourMBWBICDF, &silkContourOffsetsMBWB}
	silkPitchWB = silkPitch{32, 288, 8, silkUniform8ICDF, &silkContourMBWBICDF, &silkContourOffsetsMBWB}
)

// silkShellBlocks gives the shell block count for 10 and 20 ms frames
// per bandwidth.
var silkShellBlocks = map[int][2]int{
	8000:  {5, 10},
	12000: {8, 15},
	16000: {10, 20},
}

// silkSubframe holds the decoded per-subframe parameters.
type silkSubframe struct {
	gain     float32
	pitchLag int32
	ltpTaps  [silkLTPOrder]float32
}

// silkChannel is the per-channel linear-prediction state that survives
// across frames.
type silkChannel struct {
	frameType  silkFrameType
	logGain    int
	coded      bool
	prevVoiced bool
	prevLag    int32

	nlsf      [silkMaxOrder]int16
	lpc       [silkMaxOrder]float32
	interpLPC [silkMaxOrder]float32

	interpolated  bool
	interpFactor4 bool

	output  []float32 // clamped synthesis history plus current frame
	lpcHist []float32 // unclamped synthesis history

	resamp float32 // last internal-rate sample, for interpolation
}

func newSilkChannel() *silkChannel {
	return &silkChannel{
		output:  make([]float32, 2*silkHistLen),
		lpcHist: make([]float32, 2*silkHistLen),
	}
}

func (ch *silkChannel) flush() {
	if !ch.coded {
		return
	}
	*ch = silkChannel{output: ch.output, lpcHist: ch.lpcHist}
	for i := range ch.output {
		ch.output[i] = 0
		ch.lpcHist[i] = 0
	}
}

// silkDecoder decodes the linear-prediction layer: NLSF-coded
// short-term filters, pitch-lag long-term prediction, and shell-coded
// excitation, synthesized at the internal rate and upsampled to 48 kHz.
type silkDecoder struct {
	channels int
	mid      *silkChannel
	side     *silkChannel

	prevW0, prevW1 float32 // stereo weights of the previous frame

	left  []float32 // internal-rate per-packet scratch
	right []float32
}

func newSILKDecoder(channels int) *silkDecoder {
	return &silkDecoder{
		channels: channels,
		mid:      newSilkChannel(),
		side:     newSilkChannel(),
		left:     make([]float32, 960),
		right:    make([]float32, 960),
	}
}

func (s *silkDecoder) reset() {
	s.mid.coded = true
	s.side.coded = true
	s.mid.flush()
	s.side.flush()
	s.mid.resamp = 0
	s.side.resamp = 0
	s.prevW0 = 0
	s.prevW1 = 0
}

// internalRate maps the signalled bandwidth to the SILK sample rate.
// Hybrid packets always run the LP layer wideband.
func internalRate(b bandwidth) int {
	switch b {
	case bandNarrow:
		return 8000
	case bandMedium:
		return 12000
	default:
		return 16000
	}
}

// decode runs the SILK layer for one packet frame and adds the
// upsampled result into out (interleaved at 48 kHz).
func (s *silkDecoder) decode(rd *rangecoding.Decoder, toc tocInfo, out []float32) error {
	rate := internalRate(toc.band)
	frames20 := toc.frame48 / 960 // 40/60 ms packets hold 2 or 3 frames
	subframes := 4
	if frames20 == 0 {
		frames20 = 1 // a single 10 ms frame
		subframes = 2
	}
	sfSize := rate / 200 // 5 ms
	fSize := sfSize * subframes
	stereo := toc.stereo

	// Header bits: VAD per frame then the LBRR flag, mid before side.
	var vad [2][3]bool
	var lbrr [2]bool
	nch := 1
	if stereo {
		nch = 2
	}
	for c := 0; c < nch; c++ {
		for f := 0; f < frames20; f++ {
			vad[c][f] = rd.DecodeBit(1) == 1
		}
		lbrr[c] = rd.DecodeBit(1) == 1
	}
	for c := 0; c < nch; c++ {
		if !lbrr[c] {
			continue
		}
		// Redundancy frames are parsed to keep the stream aligned and
		// then discarded.
		flags := 1
		if frames20 > 1 {
			flags = rd.DecodeICDF(silkLBRRFlagICDF[frames20-2], 8) + 1
		}
		scratch := newSilkChannel()
		for f := 0; f < frames20; f++ {
			if flags>>uint(f)&1 != 0 {
				s.decodeFrame(rd, scratch, rate, subframes, true, true)
			}
		}
	}

	for f := 0; f < frames20; f++ {
		first := f == 0
		midOnly := false
		var w0, w1 float32
		if stereo {
			w0, w1, midOnly = s.parseStereoWeights(rd, vad[1][f])
		}

		s.decodeFrame(rd, s.mid, rate, subframes, vad[0][f], first)
		if stereo && !midOnly {
			s.decodeFrame(rd, s.side, rate, subframes, vad[1][f], first)
		} else if stereo {
			s.side.flush()
		}

		off := f * fSize
		if stereo {
			s.unmixMS(rate, fSize, w0, w1, s.left[off:off+fSize], s.right[off:off+fSize])
		} else {
			in := s.mid.output[silkHistLen-fSize-2 : silkHistLen-2]
			copy(s.left[off:off+fSize], in)
		}
	}

	// Upsample to 48 kHz and accumulate into the interleaved output.
	n := frames20 * fSize
	factor := SampleRate / rate
	prevL := s.mid.resamp
	prevR := s.side.resamp
	for i := 0; i < n; i++ {
		l := s.left[i]
		r := l
		if stereo {
			r = s.right[i]
		}
		for j := 0; j < factor; j++ {
			t := float32(j+1) / float32(factor)
			k := (i*factor + j) * s.channels
			out[k] += prevL + t*(l-prevL)
			if s.channels == 2 {
				out[k+1] += prevR + t*(r-prevR)
			}
		}
		prevL = l
		prevR = r
	}
	s.mid.resamp = prevL
	s.side.resamp = prevR
	return nil
}

// parseStereoWeights decodes the mid/side prediction weights and, when
// the side channel is inactive, the mid-only flag.
func (s *silkDecoder) parseStereoWeights(rd *rangecoding.Decoder, sideVAD bool) (w0, w1 float32, midOnly bool) {
	n := rd.DecodeICDF(silkStereoWeightICDF, 8)
	i0 := rd.DecodeICDF(silkUniform3ICDF, 8) + 3*(n/5)
	i1 := rd.DecodeICDF(silkUniform5ICDF, 8)*2 + 1
	i2 := rd.DecodeICDF(silkUniform3ICDF, 8) + 3*(n%5)
	i3 := rd.DecodeICDF(silkUniform5ICDF, 8)*2 + 1

	weight := func(idx, scale int) int32 {
		w := int32(silkStereoWQ13[idx])
		w1 := int32(silkStereoWQ13[idx+1])
		return w + ((w1-w)*6554>>16)*int32(scale)
	}
	w0q := weight(i0, i1)
	w1q := weight(i2, i3)
	w0 = float32(w0q-w1q) / 8192
	w1 = float32(w1q) / 8192

	if !sideVAD {
		midOnly = rd.DecodeICDF(silkMidOnlyICDF, 8) != 0
	}
	return w0, w1, midOnly
}

// unmixMS converts the mid/side synthesis into left/right at the
// internal rate, ramping the weights over the start of the frame and
// low-pass filtering the mid prediction.
func (s *silkDecoder) unmixMS(rate, fSize int, w0, w1 float32, left, right []float32) {
	n1 := 128
	switch rate {
	case 8000:
		n1 = 64
	case 12000:
		n1 = 96
	}
	w0d := (w0 - s.prevW0) / float32(n1)
	w1d := (w1 - s.prevW1) / float32(n1)

	in := silkHistLen - fSize
	mid := s.mid.output[in-2 : in+fSize]
	side := s.side.output[in-1 : in+fSize-1]

	for i := 0; i < fSize; i++ {
		var interp0, interp1 float32
		if i < n1 {
			interp0 = s.prevW0 + float32(i)*w0d
			interp1 = s.prevW1 + float32(i)*w1d
		} else {
			interp0 = w0
			interp1 = w1
		}

		var p0 float32
		if i < fSize-2 {
			p0 = 0.25 * (mid[i] + 2*mid[i+1] + mid[i+2])
		} else {
			p0 = mid[i+1]
		}

		si0 := side[i] + interp0*p0
		right[i] = clampF((1+interp1)*mid[i+1]+si0, -1, 1)
		left[i] = clampF((1-interp1)*mid[i+1]-si0, -1, 1)
	}

	s.prevW0 = w0
	s.prevW1 = w1
}

// decodeFrame decodes one 10/20 ms frame for one channel. The
// synthesis lands in the channel's output history; callers slice it out
// afterwards.
func (s *silkDecoder) decodeFrame(rd *rangecoding.Decoder, ch *silkChannel, rate, subframes int, vad, first bool) {
	sfSize := rate / 200
	fSize := sfSize * subframes
	band := &silkBandNB
	pitch := &silkPitchNB
	switch rate {
	case 12000:
		pitch = &silkPitchMB
	case 16000:
		band = &silkBandWB
		pitch = &silkPitchWB
	}
	order := band.order

	// Frame type.
	if vad {
		switch rd.DecodeICDF(silkFrameTypeICDF[1], 8) {
		case 0:
			ch.frameType = silkFrameType{active: true}
		case 1:
			ch.frameType = silkFrameType{active: true, high: true}
		case 2:
			ch.frameType = silkFrameType{active: true, voiced: true}
		case 3:
			ch.frameType = silkFrameType{active: true, voiced: true, high: true}
		}
	} else {
		ch.frameType = silkFrameType{high: rd.DecodeICDF(silkFrameTypeICDF[0], 8) != 0}
	}

	// Subframe gains: absolute for the first when no usable previous
	// gain exists, deltas otherwise.
	sf := make([]silkSubframe, subframes)
	for i := range sf {
		sf[i].gain = ch.decodeGain(rd, i == 0 && (first || !ch.coded))
	}

	// Short-term predictor.
	ch.decodeLPC(rd, band, subframes == 4)

	// Long-term predictor.
	if ch.frameType.voiced {
		ch.decodePitchLags(rd, sf, first || !ch.prevVoiced, pitch)
		decodeLTPFilters(rd, sf)
	}
	ltpScale := float32(15565) / 16384
	if ch.frameType.voiced && first {
		ltpScale = float32(silkLTPScaleQ14[rd.DecodeICDF(silkLTPScaleICDF, 8)]) / 16384
	}

	// Excitation.
	residuals := make([]float32, silkResHistLen+silkHistLen)
	ch.decodeExcitation(rd, rate, residuals[silkResHistLen:], subframes == 4)

	// Synthesis, subframe by subframe.
	for i := range sf {
		lpc := ch.lpc[:order]
		if i < 2 && ch.interpolated {
			lpc = ch.interpLPC[:order]
		}

		if ch.frameType.voiced {
			before := int(sf[i].pitchLag) + silkLTPOrder/2
			end := 0
			scale := float32(1)
			if i < 2 || ch.interpFactor4 {
				end = i * sfSize
				scale = ltpScale
			} else {
				end = (i - 2) * sfSize
			}

			// Rewhiten past output through the current predictor so the
			// long-term filter reads residual-domain history.
			if before > end {
				start := silkHistLen + i*sfSize - before
				stop := silkHistLen + i*sfSize - end
				startRes := silkResHistLen + i*sfSize - before
				for j := start; j < stop; j++ {
					sum := ch.output[j]
					for k := 0; k < order; k++ {
						sum -= lpc[k] * ch.output[j-1-k]
					}
					residuals[startRes+j-start] = clampF(sum, -1, 1) * scale / sf[i].gain
				}
			}

			// Rescale residuals already in this frame's gain domain.
			if end != 0 {
				rescale := sf[i-1].gain / sf[i].gain
				for j := silkResHistLen + i*sfSize - end; j < silkResHistLen+i*sfSize; j++ {
					residuals[j] *= rescale
				}
			}

			start := silkResHistLen + i*sfSize
			for j := start; j < start+sfSize; j++ {
				sum := residuals[j]
				for k := 0; k < silkLTPOrder; k++ {
					sum += sf[i].ltpTaps[k] * residuals[j-int(sf[i].pitchLag)+silkLTPOrder/2-k]
				}
				residuals[j] = sum
			}
		}

		startLPC := silkHistLen + i*sfSize
		startRes := silkResHistLen + i*sfSize
		for j := 0; j < sfSize; j++ {
			sum := residuals[startRes+j] * sf[i].gain
			for k := 0; k < order; k++ {
				sum += lpc[k] * ch.lpcHist[startLPC+j-1-k]
			}
			ch.lpcHist[startLPC+j] = sum
			ch.output[startLPC+j] = clampF(sum, -1, 1)
		}
	}

	ch.prevVoiced = ch.frameType.voiced
	ch.coded = true

	copy(ch.lpcHist, ch.lpcHist[fSize:fSize+silkHistLen])
	copy(ch.output, ch.output[fSize:fSize+silkHistLen])
}

// decodeGain reads one subframe gain index, absolute or delta-coded,
// and dequantizes it to a linear scale.
func (ch *silkChannel) decodeGain(rd *rangecoding.Decoder, absolute bool) float32 {
	if absolute {
		msb := rd.DecodeICDF(silkGainHighICDF[ch.frameType.signalTypeIndex()], 8)
		lsb := rd.DecodeICDF(silkUniform8ICDF, 8)
		idx := msb<<3 | lsb
		if prev := ch.logGain - 16; idx < prev {
			idx = prev
		}
		ch.logGain = idx
	} else {
		delta := rd.DecodeICDF(silkGainDeltaICDF, 8)
		idx := 2*delta - 16
		if v := ch.logGain + delta - 4; v > idx {
			idx = v
		}
		ch.logGain = clampInt(idx, 0, 63)
	}

	logGain := (ch.logGain*0x1D1C71)>>16 + 2090
	return float32(silkLog2Lin(logGain)) / 65536
}

// silkLog2Lin converts a Q7 log2 value to linear, with a correction
// term on the fractional part.
func silkLog2Lin(val int) int {
	i := 1 << (val >> 7)
	f := val & 127
	return i + ((-174*f*(128-f)>>16)+f)*(i>>7)
}

// decodeLPC reads the two-stage NLSF quantization, stabilizes the
// result, and derives the prediction coefficients, including the
// interpolated first-half set of a 20 ms frame.
func (ch *silkChannel) decodeLPC(rd *rangecoding.Decoder, band *silkBand, interpolate bool) {
	order := band.order
	s1 := rd.DecodeICDF(band.stage1ICDF[ch.frameType.voicedIndex()], 8)
	codebook := band.codebook[s1]
	stage2 := band.stage2ICDF[s1>>2]

	// Residual indices, -4..4, widened past either extreme by the
	// extension distribution.
	idx := make([]int32, order)
	for i := 0; i < order; i++ {
		r := int32(rd.DecodeICDF(stage2, 8)) - 4
		if r == -4 {
			r -= int32(rd.DecodeICDF(silkNLSFExtICDF, 8))
		} else if r == 4 {
			r += int32(rd.DecodeICDF(silkNLSFExtICDF, 8))
		}
		idx[i] = r
	}
	res := band.dequantResiduals(idx)

	nlsf := make([]int16, order)
	for i := 0; i < order; i++ {
		v := int32(codebook[i])<<7 + res[i]<<14/nlsfWeightQ9(codebook, i)
		nlsf[i] = int16(clampInt32(v, 0, 32767))
	}
	band.stabilize(nlsf)

	// Optional interpolation against the previous frame's NLSFs for
	// the first half of a 20 ms frame.
	ch.interpolated = false
	ch.interpFactor4 = true
	if interpolate {
		weight := rd.DecodeICDF(silkNLSFInterpICDF, 8)
		if weight != 4 && ch.coded {
			ch.interpolated = true
			ch.interpFactor4 = false
			if weight != 0 {
				blended := make([]int16, order)
				for i := range blended {
					prev := int32(ch.nlsf[i])
					blended[i] = int16(prev + (int32(nlsf[i])-prev)*int32(weight)>>2)
				}
				band.lsfToLPC(ch.interpLPC[:order], blended)
			} else {
				copy(ch.interpLPC[:order], ch.lpc[:order])
			}
		}
	}

	copy(ch.nlsf[:], nlsf)
	band.lsfToLPC(ch.lpc[:order], nlsf)
}

// dequantResiduals runs the backwards prediction over the stage-2
// indices and applies the quantization step. The last coefficient has
// no successor to predict from.
func (b *silkBand) dequantResiduals(idx []int32) []int32 {
	res := make([]int32, len(idx))
	out := int32(0)
	for i := len(idx) - 1; i >= 0; i-- {
		pred := int32(0)
		if i+1 < len(idx) {
			pred = out * int32(b.predQ8[i]) >> 8
		}
		out = idx[i] << 10
		if out > 0 {
			out -= 102
		} else if out < 0 {
			out += 102
		}
		out = pred + out*b.step>>16
		res[i] = out
	}
	return res
}

// nlsfWeightQ9 derives the reconstruction weight for one coefficient
// from the spacing of its stage-1 codebook neighbours, with the
// boundaries pinned at 0 and 256.
func nlsfWeightQ9(cb []uint8, i int) int32 {
	lo, hi := int32(0), int32(256)
	if i > 0 {
		lo = int32(cb[i-1])
	}
	if i+1 < len(cb) {
		hi = int32(cb[i+1])
	}
	c := int32(cb[i])
	w2 := (1024/(c-lo) + 1024/(hi-c)) << 16
	n := bits.Len32(uint32(w2))
	f := w2 >> (n - 8) & 127
	y := int32(46214)
	if n&1 != 0 {
		y = 32768
	}
	y >>= uint(32-n) >> 1
	return y + 213*f*y>>16
}

// stabilize enforces the minimum spacing between NLSFs, moving the
// tightest pair toward a feasible center, then sorting and clamping.
func (b *silkBand) stabilize(nlsfs []int16) {
	n := b.order
	for iter := 0; iter < 20; iter++ {
		minDiff := int32(0)
		minK := -1
		for i := 0; i <= n; i++ {
			var low, high int32
			if i > 0 {
				low = int32(nlsfs[i-1])
			}
			if i < n {
				high = int32(nlsfs[i])
			} else {
				high = 32768
			}
			diff := high - low - int32(b.minSpacing[i])
			if minK < 0 || diff < minDiff {
				minDiff = diff
				minK = i
			}
		}
		if minDiff >= 0 {
			return
		}

		switch {
		case minK == 0:
			nlsfs[0] = b.minSpacing[0]
		case minK == n:
			nlsfs[n-1] = int16(32768 - int32(b.minSpacing[n]))
		default:
			halfDelta := int32(b.minSpacing[minK]) / 2
			minCenter := halfDelta
			for j := 0; j < minK; j++ {
				minCenter += int32(b.minSpacing[j])
			}
			maxCenter := int32(32768) - halfDelta
			for j := minK + 1; j <= n; j++ {
				maxCenter -= int32(b.minSpacing[j])
			}
			sum := int32(nlsfs[minK-1]) + int32(nlsfs[minK])
			center := clampInt32(sum/2+sum%2, minCenter, maxCenter)
			nlsfs[minK-1] = int16(center - halfDelta)
			nlsfs[minK] = int16(center + halfDelta)
		}
	}

	sort.Slice(nlsfs[:n], func(i, j int) bool { return nlsfs[i] < nlsfs[j] })
	prev := int32(0)
	for i := 0; i < n; i++ {
		if min := prev + int32(b.minSpacing[i]); int32(nlsfs[i]) < min {
			nlsfs[i] = int16(min)
		}
		prev = int32(nlsfs[i])
	}
	next := int32(32768)
	for i := n - 1; i >= 0; i-- {
		if max := next - int32(b.minSpacing[i+1]); int32(nlsfs[i]) > max {
			nlsfs[i] = int16(max)
		}
		next = int32(nlsfs[i])
	}
}

// lsfToLPC converts stabilized NLSFs into direct-form coefficients via
// the P/Q polynomial recurrence, then bounds them to a stable filter.
func (b *silkBand) lsfToLPC(lpcs []float32, nlsfs []int16) {
	order := b.order
	lsps := make([]int32, order)
	p := make([]int32, order/2+1)
	q := make([]int32, order/2+1)

	for i := 0; i < order; i++ {
		idx := nlsfs[i] >> 8
		off := int32(nlsfs[i] & 255)
		cos := int32(silkCosQ12[idx])
		nextCos := int32(silkCosQ12[idx+1])
		lsps[i] = (cos*256 + (nextCos-cos)*off + 4) >> 3
	}

	p[0], q[0] = 65536, 65536
	p[1], q[1] = -lsps[0], -lsps[1]
	for i := 0; i < order/2-1; i++ {
		lsp0 := lsps[2+i*2]
		lsp1 := lsps[3+i*2]
		p[i+2] = p[i]*2 - mulRound32(lsp0, p[i+1], 16)
		q[i+2] = q[i]*2 - mulRound32(lsp1, q[i+1], 16)
		for j := i + 1; j > 1; j-- {
			p[j] += p[j-2] - mulRound32(lsp0, p[j-1], 16)
			q[j] += q[j-2] - mulRound32(lsp1, q[j-1], 16)
		}
		p[1] -= lsp0
		q[1] -= lsp1
	}

	a := make([]int32, order)
	for i := 0; i < order/2; i++ {
		ps := p[i] + p[i+1]
		qs := q[i+1] - q[i]
		a[i] = -ps - qs
		a[order-i-1] = -ps + qs
	}

	b.rangeLimit(lpcs, a)
}

// rangeLimit bandwidth-expands Q17 coefficients until they fit Q12
// int16 and the filter is stable.
func (b *silkBand) rangeLimit(lpcs []float32, a []int32) {
	lpc := make([]int16, b.order)
	saturated := true

	for iter := 0; iter < 10; iter++ {
		maxabs := int32(0)
		k := 0
		for i, v := range a {
			if av := abs32(v); av >= maxabs {
				maxabs = av
				k = i
			}
		}
		maxabs = (maxabs + 16) >> 5
		if maxabs <= 32767 {
			saturated = false
			break
		}
		if maxabs > 163838 {
			maxabs = 163838
		}
		start := 65470 - ((maxabs-32767)<<14)/(maxabs*int32(k+1)>>2)
		chirp := start
		for i := range a {
			a[i] = mulRound32(a[i], chirp, 16)
			chirp = (start*chirp + 32768) >> 16
		}
	}

	for i, v := range a {
		q := (v + 16) >> 5
		if saturated {
			q = clampInt32(q, math.MinInt16, math.MaxInt16)
			a[i] = q << 5
		}
		lpc[i] = int16(q)
	}

	for i := 1; i <= 16 && !lpcStable(lpc); i++ {
		start := int32(65536 - 1<<i)
		chirp := start
		for j := range a {
			a[j] = mulRound32(a[j], chirp, 16)
			lpc[j] = int16((a[j] + 16) >> 5)
			chirp = (start*chirp + 32768) >> 16
		}
	}

	for i := range lpcs {
		lpcs[i] = float32(lpc[i]) / 4096
	}
}

// lpcStable runs the step-down recursion and reports whether every
// reflection coefficient stays inside the unit circle.
func lpcStable(lpc []int16) bool {
	n := len(lpc)
	a := make([]float64, n)
	dc := 0
	for i, v := range lpc {
		a[i] = float64(v) / 4096
		dc += int(v)
	}
	if dc > 4096 {
		return false
	}
	for k := n - 1; k > 0; k-- {
		rc := a[k]
		if rc <= -0.9995 || rc >= 0.9995 {
			return false
		}
		den := 1 - rc*rc
		for j := 0; j < k/2; j++ {
			x, y := a[j], a[k-1-j]
			a[j] = (x - rc*y) / den
			a[k-1-j] = (y - rc*x) / den
		}
		if k&1 != 0 {
			a[k/2] /= 1 + rc
		}
	}
	return a[0] > -0.9995 && a[0] < 0.9995
}

// decodePitchLags reads the frame lag, absolute or relative to the
// previous frame, plus the per-subframe contour offsets.
func (ch *silkChannel) decodePitchLags(rd *rangecoding.Decoder, sf []silkSubframe, absolute bool, pitch *silkPitch) {
	absoluteLag := func() int32 {
		high := int32(rd.DecodeICDF(silkLagHighICDF, 8))
		low := int32(rd.DecodeICDF(pitch.lowICDF, 8))
		return high*pitch.scale + low + pitch.minLag
	}

	var lag int32
	if !absolute {
		if delta := rd.DecodeICDF(silkLagDeltaICDF, 8); delta != 0 {
			lag = ch.prevLag + int32(delta) - 9
		} else {
			lag = absoluteLag()
		}
	} else {
		lag = absoluteLag()
	}
	ch.prevLag = lag

	ci := 0
	if len(sf) == 4 {
		ci = 1
	}
	idx := rd.DecodeICDF(pitch.contourICDF[ci], 8)
	offsets := pitch.offsets[ci][idx]
	for i := range sf {
		sf[i].pitchLag = clampInt32(lag+int32(offsets[i]), pitch.minLag, pitch.maxLag)
	}
}

// decodeLTPFilters reads the periodicity class then one 5-tap filter
// per subframe from that class's codebook.
func decodeLTPFilters(rd *rangecoding.Decoder, sf []silkSubframe) {
	per := rd.DecodeICDF(silkPerIndexICDF, 8)
	for i := range sf {
		taps := silkLTPTaps[per][rd.DecodeICDF(silkLTPFilterICDF[per], 8)]
		for k, t := range taps {
			sf[i].ltpTaps[k] = float32(t) / 128
		}
	}
}

// decodeExcitation reads the shell-coded pulse trains and reconstructs
// the residual with the pseudorandom sign inversion of the LCG seed.
func (ch *silkChannel) decodeExcitation(rd *rangecoding.Decoder, rate int, residuals []float32, longFrame bool) {
	blocks := silkShellBlocks[rate][0]
	if longFrame {
		blocks = silkShellBlocks[rate][1]
	}

	seed := uint32(rd.DecodeICDF(silkUniform4ICDF, 8))
	rateLevel := rd.DecodeICDF(silkRateLevelICDF[ch.frameType.voicedIndex()], 8)

	pulseCount := make([]int, blocks)
	lsbCount := make([]int, blocks)
	excitation := make([]int32, blocks*silkShellBlock)

	for i := 0; i < blocks; i++ {
		p := rd.DecodeICDF(silkPulseCountICDF[rateLevel], 8)
		if p == 17 {
			l := 0
			for l < 10 {
				l++
				p = rd.DecodeICDF(silkPulseCountICDF[9], 8)
				if p != 17 {
					break
				}
			}
			if l == 10 {
				p = rd.DecodeICDF(silkPulseCountICDF[10], 8)
			}
			lsbCount[i] = l
		}
		pulseCount[i] = p
	}

	// Pulse locations by recursive halving: 16 to 8 to 4 to 2 to 1.
	split := func(level int, avail int32) (int32, int32) {
		if avail == 0 {
			return 0, 0
		}
		left := int32(rd.DecodeICDF(silkPulseLocationICDF[level][avail-1], 8))
		return left, avail - left
	}
	for i := 0; i < blocks; i++ {
		loc := excitation[i*silkShellBlock : (i+1)*silkShellBlock]
		if pulseCount[i] == 0 {
			continue
		}
		l0, r0 := split(0, int32(pulseCount[i]))
		for j, half := range [2]int32{l0, r0} {
			q := loc[j*8 : (j+1)*8]
			l1, r1 := split(1, half)
			for k, quarter := range [2]int32{l1, r1} {
				qq := q[k*4 : (k+1)*4]
				l2, r2 := split(2, quarter)
				for m, pair := range [2]int32{l2, r2} {
					qq[m*2], qq[m*2+1] = split(3, pair)
				}
			}
		}
	}

	for i := 0; i < blocks; i++ {
		loc := excitation[i*silkShellBlock : (i+1)*silkShellBlock]
		for j := range loc {
			for b := 0; b < lsbCount[i]; b++ {
				loc[j] = loc[j]<<1 | int32(rd.DecodeICDF(silkLSBICDF, 8))
			}
		}
	}

	st := ch.frameType.signalTypeIndex()
	qt := ch.frameType.qoffsetIndex()
	for i := 0; i < blocks; i++ {
		loc := excitation[i*silkShellBlock : (i+1)*silkShellBlock]
		p := pulseCount[i]
		if p > 6 {
			p = 6
		}
		for j := range loc {
			if loc[j] != 0 && rd.DecodeICDF(silkSignICDF[st][qt][p], 8) == 0 {
				loc[j] = -loc[j]
			}
		}
	}

	offset := silkQuantOffset[ch.frameType.voicedIndex()][qt]
	for i, l := range excitation {
		ex := l*256 + offset - 20
		if l < 0 {
			ex += 40
		}
		seed = seed*196314165 + 907633515
		if seed&0x80000000 != 0 {
			ex = -ex
		}
		seed += uint32(l)
		if i < len(residuals) {
			residuals[i] = float32(ex) / 8388608
		}
	}
}

func abs32(x int32) int32 {
	if x < 0 {
		return -x
	}
	return x
}

func mulRound32(a, b int32, shift uint) int32 {
	return int32((int64(a)*int64(b) + 1<<(shift-1)) >> shift)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampInt32(v, lo, hi int32) int32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampF(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
