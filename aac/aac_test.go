package aac

import (
	"bytes"
	"math"
	"testing"

	"github.com/icza/bitio"
	"github.com/stretchr/testify/require"

	"github.com/hvlib/audiodec"
	"github.com/hvlib/audiodec/internal/transform"
)

// sceSpec drives the synthetic raw_data_block builder: a mono SCE with
// an only-long window, max_sfb bands of which all but toneBand use the
// zero codebook, and a single +1 coefficient at the start of toneBand.
type sceSpec struct {
	globalGain int
	maxSfb     int
	toneBand   int // -1 for silence
}

// writeSCE appends one single_channel_element to w.
func writeSCE(t *testing.T, w *bitio.Writer, s sceSpec) {
	t.Helper()
	w.WriteBits(idSCE, 3)
	w.WriteBits(0, 4) // element_instance_tag
	w.WriteBits(uint64(s.globalGain), 8)

	// ics_info: only-long, sine shape
	w.WriteBits(0, 1) // reserved
	w.WriteBits(0, 2) // window_sequence
	w.WriteBits(0, 1) // window_shape
	w.WriteBits(uint64(s.maxSfb), 6)
	w.WriteBits(0, 1) // predictor_data_present

	// section data
	if s.toneBand < 0 {
		w.WriteBits(0, 4) // zero codebook
		w.WriteBits(uint64(s.maxSfb), 5)
	} else {
		if s.toneBand > 0 {
			w.WriteBits(0, 4)
			w.WriteBits(uint64(s.toneBand), 5)
		}
		w.WriteBits(1, 4) // codebook 1 for the tone band
		w.WriteBits(1, 5)
		if rest := s.maxSfb - s.toneBand - 1; rest > 0 {
			w.WriteBits(0, 4)
			w.WriteBits(uint64(rest), 5)
		}
	}

	// scalefactors: only the tone band reads one, delta 0
	if s.toneBand >= 0 {
		w.WriteBits(uint64(sfBook.codes[60]), sfBook.lens[60])
	}

	w.WriteBits(0, 1) // pulse_data_present
	w.WriteBits(0, 1) // tns_data_present
	w.WriteBits(0, 1) // gain_control_data_present

	// spectral data: quads of codebook 1 covering the tone band, the
	// first quad (1,0,0,0), the rest all-zero
	if s.toneBand >= 0 {
		cb := spectralBooks[1]
		tone := findTuple(t, cb, 1, 0, 0, 0)
		zero := findTuple(t, cb, 0, 0, 0, 0)
		width := swbLong48[s.toneBand+1] - swbLong48[s.toneBand]
		for q := 0; q < width/4; q++ {
			sym := zero
			if q == 0 {
				sym = tone
			}
			w.WriteBits(uint64(cb.codes[sym]), cb.lens[sym])
		}
	}
}

// buildFrame wraps elements in a raw data block terminated by END.
func buildFrame(t *testing.T, write func(w *bitio.Writer)) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)
	write(w)
	w.WriteBits(idEND, 3)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

// Line 20 of the 1024-line spectrum at 44.1 kHz sits at
// (20+0.5)*44100/2048 = 441.4 Hz; band 5 of the 44.1 kHz long-window
// table covers lines 20-23.
var toneSpec = sceSpec{globalGain: 124, maxSfb: 6, toneBand: 5}

func TestNewDecoder_ConfigValidation(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		ok   bool
	}{
		{"explicit", Config{SampleRate: 44100, Channels: 2}, true},
		{"asc_lc_44100_mono", Config{AudioSpecificConfig: []byte{0x12, 0x08}}, true},
		{"bad_rate", Config{SampleRate: 44000, Channels: 1}, false},
		{"no_channels", Config{SampleRate: 44100}, false},
		{"asc_he_aac", Config{AudioSpecificConfig: []byte{0x2B, 0x92, 0x08, 0x00}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dec, err := NewDecoder(tt.cfg)
			if tt.ok {
				require.NoError(t, err)
				require.NotNil(t, dec)
			} else {
				require.ErrorIs(t, err, audiodec.ErrUnsupportedConfig)
			}
		})
	}
}

func TestParseASC(t *testing.T) {
	// 0x12 0x08: object type 2, frequency index 4 (44.1 kHz), one
	// channel.
	d := &Decoder{}
	require.NoError(t, d.parseASC([]byte{0x12, 0x08}))
	require.Equal(t, 4, d.srIdx)
	require.Equal(t, 1, d.channels)
}

func TestDecodeFrame_SilentFrameSizeInvariant(t *testing.T) {
	dec, err := NewDecoder(Config{SampleRate: 44100, Channels: 1})
	require.NoError(t, err)
	defer dec.Close()

	frame := buildFrame(t, func(w *bitio.Writer) {
		writeSCE(t, w, sceSpec{globalGain: 100, maxSfb: 6, toneBand: -1})
	})
	pcm := make([]float32, SamplesPerFrame)
	n, err := dec.DecodeFrame(frame, pcm)
	require.NoError(t, err)
	require.Equal(t, SamplesPerFrame, n)
	for i, v := range pcm {
		if v != 0 {
			t.Fatalf("sample %d = %g, want silence", i, v)
		}
	}
}

func TestDecodeFrame_OutputBufferTooSmall(t *testing.T) {
	dec, err := NewDecoder(Config{SampleRate: 44100, Channels: 1})
	require.NoError(t, err)
	_, err = dec.DecodeFrame([]byte{0xE0}, make([]float32, 100))
	require.ErrorIs(t, err, audiodec.ErrOutputBufferTooSmall)
}

func TestDecodeFrame_ChannelOverflow(t *testing.T) {
	// A CPE in a mono-configured stream must be rejected.
	dec, err := NewDecoder(Config{SampleRate: 44100, Channels: 1})
	require.NoError(t, err)
	frame := buildFrame(t, func(w *bitio.Writer) {
		w.WriteBits(idCPE, 3)
		w.WriteBits(0, 4)
	})
	_, err = dec.DecodeFrame(frame, make([]float32, SamplesPerFrame))
	require.ErrorIs(t, err, audiodec.ErrUnsupportedConfig)
}

func TestDecodeFrame_SpectralPeak441(t *testing.T) {
	dec, err := NewDecoder(Config{SampleRate: 44100, Channels: 1})
	require.NoError(t, err)

	frame := buildFrame(t, func(w *bitio.Writer) { writeSCE(t, w, toneSpec) })
	const frames = 8
	pcm := make([]float32, 0, frames*SamplesPerFrame)
	buf := make([]float32, SamplesPerFrame)
	for i := 0; i < frames; i++ {
		n, err := dec.DecodeFrame(frame, buf)
		require.NoError(t, err)
		require.Equal(t, SamplesPerFrame, n)
		pcm = append(pcm, buf[:n]...)
	}

	const fftSize = 4096
	x := pcm[2*SamplesPerFrame : 2*SamplesPerFrame+fftSize]
	re := make([]float32, fftSize/2+1)
	im := make([]float32, fftSize/2+1)
	eng := transform.NewEngine()
	require.NoError(t, eng.RealFFT(x, re, im))

	peak, peakMag := 0, 0.0
	for k := 1; k < fftSize/2; k++ {
		mag := math.Hypot(float64(re[k]), float64(im[k]))
		if mag > peakMag {
			peak, peakMag = k, mag
		}
	}
	peakHz := float64(peak) * 44100 / fftSize
	if math.Abs(peakHz-441.4) > 15 {
		t.Fatalf("spectral peak at %.1f Hz, want ~441 Hz", peakHz)
	}
	require.Greater(t, peakMag, 0.0, "decoded to silence")
}

func TestDecodeFrame_OverlapContinuity(t *testing.T) {
	// Identical tone frames: the overlap-add seam between frames must
	// not produce a step beyond the tone's own slope.
	dec, err := NewDecoder(Config{SampleRate: 44100, Channels: 1})
	require.NoError(t, err)

	frame := buildFrame(t, func(w *bitio.Writer) { writeSCE(t, w, toneSpec) })
	var pcm []float32
	buf := make([]float32, SamplesPerFrame)
	for i := 0; i < 6; i++ {
		_, err := dec.DecodeFrame(frame, buf)
		require.NoError(t, err)
		pcm = append(pcm, buf...)
	}

	steady := pcm[2*SamplesPerFrame:]
	var amp float64
	for _, v := range steady {
		if a := math.Abs(float64(v)); a > amp {
			amp = a
		}
	}
	require.Greater(t, amp, 0.0, "decoded to silence")

	maxStep := 2 * amp * 2 * math.Pi * 441.4 / 44100
	for i := 1; i < len(steady); i++ {
		step := math.Abs(float64(steady[i] - steady[i-1]))
		if step > maxStep {
			t.Fatalf("discontinuity %.4g at sample %d (limit %.4g)",
				step, 2*SamplesPerFrame+i, maxStep)
		}
	}
}

func TestDecodeFrame_CPEMidSide(t *testing.T) {
	// A common-window CPE with ms_mask_present=2 and a tone in the mid
	// channel only: both output channels must carry the same tone.
	dec, err := NewDecoder(Config{SampleRate: 44100, Channels: 2})
	require.NoError(t, err)

	writeChannel := func(w *bitio.Writer, tone bool) {
		w.WriteBits(uint64(toneSpec.globalGain), 8)
		// section data for max_sfb 6
		if tone {
			w.WriteBits(0, 4)
			w.WriteBits(5, 5)
			w.WriteBits(1, 4)
			w.WriteBits(1, 5)
		} else {
			w.WriteBits(0, 4)
			w.WriteBits(6, 5)
		}
		if tone {
			w.WriteBits(uint64(sfBook.codes[60]), sfBook.lens[60])
		}
		w.WriteBits(0, 1) // pulse
		w.WriteBits(0, 1) // tns
		w.WriteBits(0, 1) // gain control
		if tone {
			cb := spectralBooks[1]
			sym := findTuple(t, cb, 1, 0, 0, 0)
			w.WriteBits(uint64(cb.codes[sym]), cb.lens[sym])
		}
	}

	frame := buildFrame(t, func(w *bitio.Writer) {
		w.WriteBits(idCPE, 3)
		w.WriteBits(0, 4) // tag
		w.WriteBits(1, 1) // common_window
		// shared ics_info
		w.WriteBits(0, 1)
		w.WriteBits(0, 2)
		w.WriteBits(0, 1)
		w.WriteBits(6, 6)
		w.WriteBits(0, 1)
		w.WriteBits(2, 2)      // ms_mask_present: all bands
		writeChannel(w, true)  // mid carries the tone
		writeChannel(w, false) // side silent
	})

	pcm := make([]float32, 2*SamplesPerFrame)
	for i := 0; i < 4; i++ {
		_, err = dec.DecodeFrame(frame, pcm)
		require.NoError(t, err)
	}

	// L = M+S, R = M-S with S = 0: channels identical and nonzero.
	var energy float64
	for i := 0; i < SamplesPerFrame; i++ {
		l, r := pcm[2*i], pcm[2*i+1]
		require.InDelta(t, l, r, 1e-6, "sample %d", i)
		energy += float64(l) * float64(l)
	}
	require.Greater(t, energy, 0.0)
}

func TestDecodeFrame_ADTS(t *testing.T) {
	dec, err := NewDecoder(Config{SampleRate: 44100, Channels: 1})
	require.NoError(t, err)

	raw := buildFrame(t, func(w *bitio.Writer) {
		writeSCE(t, w, sceSpec{globalGain: 100, maxSfb: 6, toneBand: -1})
	})

	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)
	w.WriteBits(0xFFF, 12)                 // syncword
	w.WriteBits(0, 1)                      // MPEG-4
	w.WriteBits(0, 2)                      // layer
	w.WriteBits(1, 1)                      // no CRC
	w.WriteBits(1, 2)                      // profile: LC
	w.WriteBits(4, 4)                      // 44.1 kHz
	w.WriteBits(0, 1)                      // private
	w.WriteBits(1, 3)                      // channel configuration
	w.WriteBits(0, 4)                      // orig/home/copyright
	w.WriteBits(uint64(7+len(raw)), 13)    // frame length
	w.WriteBits(0x7FF, 11)                 // buffer fullness
	w.WriteBits(0, 2)                      // one raw data block
	require.NoError(t, w.Close())
	frame := append(buf.Bytes(), raw...)

	pcm := make([]float32, SamplesPerFrame)
	n, err := dec.DecodeFrame(frame, pcm)
	require.NoError(t, err)
	require.Equal(t, SamplesPerFrame, n)

	// Mismatched channel configuration must be rejected.
	bad := append([]byte{}, frame...)
	bad[3] = bad[3]&0x3F | 0x80 // channel configuration 2
	_, err = dec.DecodeFrame(bad, pcm)
	require.ErrorIs(t, err, audiodec.ErrUnsupportedConfig)
}

func TestDecoder_ResetReproducibility(t *testing.T) {
	frame := buildFrame(t, func(w *bitio.Writer) { writeSCE(t, w, toneSpec) })

	decode3 := func(dec *Decoder) []float32 {
		var out []float32
		buf := make([]float32, SamplesPerFrame)
		for i := 0; i < 3; i++ {
			_, err := dec.DecodeFrame(frame, buf)
			require.NoError(t, err)
			out = append(out, buf...)
		}
		return out
	}

	dec, err := NewDecoder(Config{SampleRate: 44100, Channels: 1})
	require.NoError(t, err)
	first := decode3(dec)
	dec.Reset()
	second := decode3(dec)

	fresh, err := NewDecoder(Config{SampleRate: 44100, Channels: 1})
	require.NoError(t, err)
	require.Equal(t, decode3(fresh), first)
	require.Equal(t, first, second)
}
