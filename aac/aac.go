// Package aac decodes MPEG-4 AAC Low Complexity frames (ISO/IEC
// 14496-3, ISO/IEC 13818-7) into interleaved float32 PCM.
//
// A frame is one raw_data_block, either bare (with the stream
// parameters supplied out of band through Config) or wrapped in an ADTS
// header, which the decoder detects by its syncword. Each frame yields
// 1024 samples per channel.
package aac

import (
	"github.com/hvlib/audiodec"
	"github.com/hvlib/audiodec/internal/bits"
	"github.com/hvlib/audiodec/internal/transform"
	"github.com/hvlib/audiodec/internal/window"
)

// SamplesPerFrame is the PCM sample count per channel per frame.
const SamplesPerFrame = frameLen

// Syntactic element identifiers (ISO/IEC 13818-7 table 6.2).
const (
	idSCE = iota
	idCPE
	idCCE
	idLFE
	idDSE
	idPCE
	idFIL
	idEND
)

// Config selects the stream parameters. Either set SampleRate and
// Channels directly, or supply the two-byte-plus AudioSpecificConfig
// from the container and leave them zero.
type Config struct {
	SampleRate int
	Channels   int

	// AudioSpecificConfig is the out-of-band MPEG-4 decoder config
	// (object type, sampling frequency, channel configuration). Only
	// the LC object type is accepted.
	AudioSpecificConfig []byte
}

// Decoder decodes AAC-LC raw data blocks. It owns the filterbank
// overlap state, the window-shape history, and the PNS generator state,
// so instances are not safe for concurrent use.
type Decoder struct {
	srIdx    int
	channels int

	imdctLong  *transform.IMDCT // 2048
	imdctShort *transform.IMDCT // 256
	overlap    *window.Overlap

	// Window shape of the previous frame per channel; the left half of
	// the current frame is windowed with it.
	prevShape [2]window.Shape

	pnsR1, pnsR2 uint32

	ics   [2]icStream
	spec  [2][frameLen]float32
	tmp   [frameLen]float32
	block [2 * frameLen]float32

	closed bool
}

// NewDecoder validates cfg, parsing AudioSpecificConfig when present,
// and allocates all per-instance state.
func NewDecoder(cfg Config) (*Decoder, error) {
	d := &Decoder{}

	if len(cfg.AudioSpecificConfig) > 0 {
		if err := d.parseASC(cfg.AudioSpecificConfig); err != nil {
			return nil, err
		}
	} else {
		d.srIdx = sampleRateIndex(cfg.SampleRate)
		d.channels = cfg.Channels
	}
	if d.srIdx < 0 || d.channels < 1 || d.channels > 2 {
		return nil, audiodec.ErrUnsupportedConfig
	}

	eng := transform.NewEngine()
	var err error
	if d.imdctLong, err = transform.NewIMDCT(eng, 2*frameLen); err != nil {
		return nil, err
	}
	if d.imdctShort, err = transform.NewIMDCT(eng, 2*shortLen); err != nil {
		return nil, err
	}
	d.overlap = window.NewOverlap(d.channels, frameLen)
	d.Reset()
	return d, nil
}

// parseASC reads the AudioSpecificConfig header. Only object type 2
// (LC) with channel configuration 1 or 2 is decodable here.
func (d *Decoder) parseASC(asc []byte) error {
	r := bits.NewReader(asc)
	var err error
	read := func(n uint) int {
		var v uint32
		if err == nil {
			v, err = r.ReadBits(n)
		}
		return int(v)
	}

	objectType := read(5)
	if objectType == 31 {
		objectType = 32 + read(6)
	}
	srIdx := read(4)
	if srIdx == 15 {
		rate := read(24)
		srIdx = sampleRateIndex(rate)
	}
	channels := read(4)
	if err != nil {
		return err
	}
	if objectType != 2 || srIdx < 0 || srIdx > 11 {
		return audiodec.ErrUnsupportedConfig
	}
	d.srIdx = srIdx
	d.channels = channels
	return nil
}

// Reset clears the overlap tails, window-shape history, and PNS state
// without reallocating.
func (d *Decoder) Reset() {
	d.overlap.Reset()
	for ch := range d.prevShape {
		d.prevShape[ch] = window.Sine
	}
	// Generator state equivalent to seed (1, 1) advanced one frame.
	d.pnsR1 = 0x2bb431ea
	d.pnsR2 = 0x206155b7
}

// Close releases the decoder. Further DecodeFrame calls fail.
func (d *Decoder) Close() error {
	d.closed = true
	return nil
}

// DecodeFrame decodes one raw data block (or one ADTS frame) into pcm
// as interleaved float32 and returns the number of samples written,
// always 1024 per channel on success.
func (d *Decoder) DecodeFrame(frame []byte, pcm []float32) (int, error) {
	if d.closed {
		return 0, audiodec.ErrUnsupportedConfig
	}
	n := SamplesPerFrame * d.channels
	if len(pcm) < n {
		return 0, audiodec.ErrOutputBufferTooSmall
	}

	if len(frame) >= 2 && frame[0] == 0xFF && frame[1]&0xF6 == 0xF0 {
		var err error
		if frame, err = d.stripADTS(frame); err != nil {
			return 0, err
		}
	}

	r := bits.NewReader(frame)
	decoded := 0
	for {
		id, err := r.ReadBits(3)
		if err != nil {
			return 0, err
		}
		switch id {
		case idEND:
			return n, d.output(decoded, pcm)

		case idSCE, idLFE:
			if decoded+1 > d.channels {
				return 0, audiodec.ErrUnsupportedConfig
			}
			if err := d.decodeSCE(r, decoded); err != nil {
				return 0, err
			}
			decoded++

		case idCPE:
			if decoded+2 > d.channels {
				return 0, audiodec.ErrUnsupportedConfig
			}
			if err := d.decodeCPE(r); err != nil {
				return 0, err
			}
			decoded += 2

		case idDSE:
			if err := skipDSE(r); err != nil {
				return 0, err
			}

		case idFIL:
			if err := skipFIL(r); err != nil {
				return 0, err
			}

		default: // CCE, PCE
			return 0, audiodec.ErrUnsupportedConfig
		}
	}
}

// stripADTS validates the ADTS fixed header against the configured
// stream parameters and returns the raw data block payload.
func (d *Decoder) stripADTS(frame []byte) ([]byte, error) {
	if len(frame) < 7 {
		return nil, audiodec.ErrBitstreamExhausted
	}
	r := bits.NewReader(frame)
	var err error
	read := func(n uint) int {
		var v uint32
		if err == nil {
			v, err = r.ReadBits(n)
		}
		return int(v)
	}

	read(12) // syncword, checked by the caller
	read(1)  // ID
	layer := read(2)
	noCRC := read(1)
	profile := read(2)
	srIdx := read(4)
	read(1) // private
	channels := read(3)
	read(4) // original/copy, home, copyright bits
	length := read(13)
	read(11) // buffer fullness
	blocks := read(2)
	if err != nil {
		return nil, err
	}

	// profile 1 is LC; one raw data block per ADTS frame.
	if layer != 0 || profile != 1 || blocks != 0 {
		return nil, audiodec.ErrUnsupportedConfig
	}
	if srIdx != d.srIdx || channels != d.channels {
		return nil, audiodec.ErrUnsupportedConfig
	}
	if length > len(frame) {
		return nil, audiodec.ErrBitstreamExhausted
	}

	header := 7
	if noCRC == 0 {
		header = 9
	}
	return frame[header:length], nil
}

// decodeSCE decodes a single_channel_element into channel slot ch.
func (d *Decoder) decodeSCE(r *bits.Reader, ch int) error {
	if _, err := r.ReadBits(4); err != nil { // element_instance_tag
		return err
	}
	ics := &d.ics[ch]
	ics.msMaskPresent = 0
	if err := d.decodeICS(r, ics, false); err != nil {
		return err
	}
	// Intensity coding needs a pair partner.
	if ics.isUsed() {
		return audiodec.ErrCorruptSideInfo
	}
	d.processChannel(ics, d.spec[ch][:])
	d.pnsDecode(ics, nil, d.spec[ch][:], nil, false)
	d.finishChannel(ics, ch, d.spec[ch][:])
	return nil
}

// decodeCPE decodes a channel_pair_element into slots 0 and 1.
func (d *Decoder) decodeCPE(r *bits.Reader) error {
	if _, err := r.ReadBits(4); err != nil {
		return err
	}
	l, rt := &d.ics[0], &d.ics[1]

	common, err := r.ReadBit()
	if err != nil {
		return err
	}
	l.msMaskPresent = 0
	if common != 0 {
		if err := d.parseICSInfo(r, &l.info); err != nil {
			return err
		}
		mask, err := r.ReadBits(2)
		if err != nil {
			return err
		}
		l.msMaskPresent = int(mask)
		if mask == 1 {
			for g := 0; g < l.info.numWindowGroups; g++ {
				for sfb := 0; sfb < l.info.maxSfb; sfb++ {
					b, err := r.ReadBit()
					if err != nil {
						return err
					}
					l.msUsed[g][sfb] = b != 0
				}
			}
		}
		rt.info = l.info
	}

	if err := d.decodeICS(r, l, common != 0); err != nil {
		return err
	}
	if err := d.decodeICS(r, rt, common != 0); err != nil {
		return err
	}

	d.processChannel(l, d.spec[0][:])
	d.processChannel(rt, d.spec[1][:])

	if common != 0 {
		msDecode(l, rt, d.spec[0][:], d.spec[1][:])
		isDecode(l, rt, d.spec[0][:], d.spec[1][:])
		d.pnsDecode(l, rt, d.spec[0][:], d.spec[1][:], true)
	} else {
		if rt.isUsed() {
			return audiodec.ErrCorruptSideInfo
		}
		d.pnsDecode(l, nil, d.spec[0][:], nil, false)
		d.pnsDecode(rt, nil, d.spec[1][:], nil, false)
	}

	d.finishChannel(l, 0, d.spec[0][:])
	d.finishChannel(rt, 1, d.spec[1][:])
	return nil
}

// isUsed reports whether any band of the stream is intensity coded.
func (ics *icStream) isUsed() bool {
	for g := 0; g < ics.info.numWindowGroups; g++ {
		for sfb := 0; sfb < ics.info.maxSfb; sfb++ {
			if isIntensity(ics, g, sfb) != 0 {
				return true
			}
		}
	}
	return false
}

// decodeICS parses one individual_channel_stream (ISO/IEC 13818-7
// §8.3.3): side info, optional pulse and TNS data, spectral data.
func (d *Decoder) decodeICS(r *bits.Reader, ics *icStream, commonWindow bool) error {
	gg, err := r.ReadBits(8)
	if err != nil {
		return err
	}
	ics.globalGain = int(gg)

	if !commonWindow {
		if err := d.parseICSInfo(r, &ics.info); err != nil {
			return err
		}
	}
	if err := parseSectionData(r, ics); err != nil {
		return err
	}
	if err := parseScaleFactors(r, ics); err != nil {
		return err
	}

	flag, err := r.ReadBit()
	if err != nil {
		return err
	}
	ics.pulsePresent = flag != 0
	if ics.pulsePresent {
		if err := parsePulseData(r, ics); err != nil {
			return err
		}
	}

	if flag, err = r.ReadBit(); err != nil {
		return err
	}
	ics.tnsPresent = flag != 0
	if ics.tnsPresent {
		if err := parseTNSData(r, ics); err != nil {
			return err
		}
	} else {
		for w := range ics.tns.nFilt {
			ics.tns.nFilt[w] = 0
		}
	}

	if flag, err = r.ReadBit(); err != nil {
		return err
	}
	if flag != 0 { // gain_control_data, SSR only
		return audiodec.ErrUnsupportedConfig
	}

	if err := parseSpectralData(r, ics); err != nil {
		return err
	}
	if ics.pulsePresent {
		return applyPulses(ics)
	}
	return nil
}

// processChannel requantizes one channel's spectrum into grouped order.
// Stereo tools run on this order before finishChannel.
func (d *Decoder) processChannel(ics *icStream, spec []float32) {
	requantize(ics, spec)
}

// finishChannel deinterleaves short blocks, applies TNS, and runs the
// channel through the filterbank into its PCM staging buffer.
func (d *Decoder) finishChannel(ics *icStream, ch int, spec []float32) {
	deinterleave(ics, spec, d.tmp[:])
	if ics.tnsPresent {
		d.applyTNS(ics, spec)
	}

	if ics.info.short() {
		for w := 0; w < 8; w++ {
			_ = d.imdctShort.Transform(spec[w*shortLen:(w+1)*shortLen], d.block[w*2*shortLen:])
		}
	} else {
		_ = d.imdctLong.Transform(spec[:frameLen], d.block[:])
	}

	shape := window.Sine
	if ics.info.windowShape == 1 {
		shape = window.KBD
	}
	d.overlap.ApplyAndOverlap(ch, ics.info.windowSequence, d.prevShape[ch], shape,
		d.block[:], d.tmp[:])
	d.prevShape[ch] = shape

	// Stage the windowed output back into spec; output() interleaves.
	copy(spec[:frameLen], d.tmp[:frameLen])
}

// output interleaves the staged channel buffers into pcm.
func (d *Decoder) output(decoded int, pcm []float32) error {
	if decoded != d.channels {
		return audiodec.ErrCorruptSideInfo
	}
	if d.channels == 1 {
		copy(pcm[:frameLen], d.spec[0][:])
		return nil
	}
	for i := 0; i < frameLen; i++ {
		pcm[2*i] = d.spec[0][i]
		pcm[2*i+1] = d.spec[1][i]
	}
	return nil
}

// skipDSE discards a data_stream_element.
func skipDSE(r *bits.Reader) error {
	var err error
	read := func(n uint) int {
		var v uint32
		if err == nil {
			v, err = r.ReadBits(n)
		}
		return int(v)
	}
	read(4) // element_instance_tag
	align := read(1)
	count := read(8)
	if count == 255 {
		count += read(8)
	}
	if err != nil {
		return err
	}
	if align != 0 {
		r.ByteAlign()
	}
	return r.Skip(uint(count) * 8)
}

// skipFIL discards a fill element, including any extension payload.
func skipFIL(r *bits.Reader) error {
	count, err := r.ReadBits(4)
	if err != nil {
		return err
	}
	n := int(count)
	if n == 15 {
		esc, err := r.ReadBits(8)
		if err != nil {
			return err
		}
		n += int(esc) - 1
	}
	return r.Skip(uint(n) * 8)
}
