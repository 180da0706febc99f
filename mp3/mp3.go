// Package mp3 decodes MPEG-1 and MPEG-2 Layer III frames (ISO/IEC
// 11172-3, ISO/IEC 13818-3) into interleaved float32 PCM.
//
// The decoder consumes whole physical frames, header included, and
// relies on the bit reservoir to assemble the main data that may span
// frame boundaries. A frame whose main-data pointer reaches further
// back than the reservoir holds is skipped with silence so stream
// timing is preserved.
package mp3

import (
	"github.com/hvlib/audiodec"
	"github.com/hvlib/audiodec/internal/bits"
	"github.com/hvlib/audiodec/internal/transform"
)

const (
	// SamplesPerFrame is the PCM sample count per channel for an
	// MPEG-1 frame. MPEG-2 low-sampling-frequency frames carry half.
	SamplesPerFrame = 1152

	granuleSamples = 576
	subbands       = 32
	subbandSamples = 18
)

// Config selects the expected stream parameters. Zero values accept
// whatever the first frame header declares; non-zero values reject
// frames that disagree.
type Config struct {
	SampleRate int
	Channels   int
}

// Decoder holds all cross-frame Layer III state: the bit reservoir,
// the hybrid filterbank overlap, and the polyphase synthesis history.
// Instances are not safe for concurrent use.
type Decoder struct {
	cfg Config

	res reservoir

	imdctLong  *transform.IMDCT // 18 -> 36
	imdctShort *transform.IMDCT // 6 -> 12

	// Hybrid filterbank overlap, per channel per subband.
	store [2][subbands][subbandSamples]float32

	// Polyphase synthesis ring buffer and write position, per channel.
	v    [2][1024]float32
	vPos [2]int

	// Hybrid filterbank output, time samples per subband.
	hyb [subbands][subbandSamples]float32

	// Per-frame scratch, reused across calls.
	is      [granuleSamples]int32
	xr      [2][granuleSamples]float32
	sf      [2]scaleFactors
	prevSf  [2]scaleFactors // scfsi reference from granule 0
	nonzero [2]int          // coded-line count, zero region above

	closed bool
}

// NewDecoder validates cfg and allocates a decoder with all state
// buffers sized for the worst case (stereo MPEG-1).
func NewDecoder(cfg Config) (*Decoder, error) {
	if cfg.SampleRate != 0 && sampleRateIndex(cfg.SampleRate) < 0 {
		return nil, audiodec.ErrUnsupportedConfig
	}
	if cfg.Channels < 0 || cfg.Channels > 2 {
		return nil, audiodec.ErrUnsupportedConfig
	}
	eng := transform.NewEngine(transform.WithMaxSize(64))
	long, err := transform.NewIMDCT(eng, 36)
	if err != nil {
		return nil, err
	}
	short, err := transform.NewIMDCT(eng, 12)
	if err != nil {
		return nil, err
	}
	d := &Decoder{cfg: cfg, imdctLong: long, imdctShort: short}
	d.res.init()
	return d, nil
}

// Reset clears all cross-frame state without reallocating, for stream
// discontinuities such as a seek.
func (d *Decoder) Reset() {
	d.res.reset()
	for ch := range d.store {
		for sb := range d.store[ch] {
			for i := range d.store[ch][sb] {
				d.store[ch][sb][i] = 0
			}
		}
		for i := range d.v[ch] {
			d.v[ch][i] = 0
		}
		d.vPos[ch] = 0
	}
	d.prevSf = [2]scaleFactors{}
}

// Close releases the decoder. Further DecodeFrame calls fail.
func (d *Decoder) Close() error {
	d.closed = true
	return nil
}

// DecodeFrame decodes one physical frame into pcm as interleaved
// float32 and returns the number of samples written: 1152 per channel
// for MPEG-1, 576 for MPEG-2 LSF.
//
// On ErrReservoirUnderflow the frame's span of pcm is zero-filled and
// the sample count is still returned, so callers keep timing by
// playing the silence. All errors are frame-local; the next frame may
// decode normally.
func (d *Decoder) DecodeFrame(frame []byte, pcm []float32) (int, error) {
	if d.closed {
		return 0, audiodec.ErrUnsupportedConfig
	}
	h, err := parseHeader(frame)
	if err != nil {
		return 0, err
	}
	if d.cfg.SampleRate != 0 && d.cfg.SampleRate != h.SampleRate {
		return 0, audiodec.ErrUnsupportedConfig
	}
	if d.cfg.Channels != 0 && d.cfg.Channels != h.Channels {
		return 0, audiodec.ErrUnsupportedConfig
	}

	n := h.samples() * h.Channels
	if len(pcm) < n {
		return 0, audiodec.ErrOutputBufferTooSmall
	}

	off := 4
	if h.Protected {
		off += 2 // CRC-16, not verified
	}
	if len(frame) < off+h.sideInfoSize() {
		return 0, audiodec.ErrBitstreamExhausted
	}
	si, err := parseSideInfo(frame[off:off+h.sideInfoSize()], h)
	if err != nil {
		return 0, err
	}
	off += h.sideInfoSize()

	main, err := d.res.assemble(frame[off:], si.mainDataBegin)
	if err != nil {
		for i := 0; i < n; i++ {
			pcm[i] = 0
		}
		return n, err
	}

	r := bits.NewReader(main)
	for gr := 0; gr < h.granules(); gr++ {
		for ch := 0; ch < h.Channels; ch++ {
			start := r.Position()
			g := &si.gr[gr][ch]
			if h.LSF {
				err = d.readScaleFactorsLSF(r, g, h, ch, si)
			} else {
				err = d.readScaleFactors(r, g, gr, ch, si)
			}
			if err != nil {
				return 0, err
			}
			if d.nonzero[ch], err = d.readSpectral(r, g, h, start); err != nil {
				return 0, err
			}
			// Land exactly on the granule boundary: skip ancillary
			// bits, or rewind past a count1 overshoot.
			want := start + g.part23Length
			if cur := r.Position(); cur < want {
				if err = r.Skip(uint(want - cur)); err != nil {
					return 0, audiodec.ErrCorruptSpectralData
				}
			} else if cur > want {
				r = bits.NewReader(main)
				_ = r.Skip(uint(want))
			}
			d.requantize(g, h, ch)
		}
		if err = d.stereo(&si.gr[gr][0], h); err != nil {
			return 0, err
		}
		for ch := 0; ch < h.Channels; ch++ {
			g := &si.gr[gr][ch]
			d.antialias(g, ch)
			d.hybrid(g, ch)
			d.synth(ch, h.Channels, pcm[gr*granuleSamples*h.Channels:])
		}
	}
	return n, nil
}
