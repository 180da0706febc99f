package vorbis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hvlib/audiodec"
)

// testIdentHeader is a mono 8 kHz stream with 256-sample blocks.
func testIdentHeader() []byte {
	h := []byte{1, 'v', 'o', 'r', 'b', 'i', 's'}
	w := &lsbWriter{}
	w.write(0, 32)    // version
	w.write(1, 8)     // channels
	w.write(8000, 32) // sample rate
	w.write(0, 32)    // bitrate maximum
	w.write(0, 32)    // bitrate nominal
	w.write(0, 32)    // bitrate minimum
	w.write(8, 4)     // blocksize 0 = 256
	w.write(8, 4)     // blocksize 1 = 256
	w.write(1, 1)     // framing
	return append(h, w.buf...)
}

// testSetupHeader wires the smallest decodable configuration: a one-bit
// classification book, a dims-8 VQ book whose entry 0 is a single unit
// line at component 3, a flat two-point floor 1, a format-1 residue
// with 16 partitions of 8, one mapping, one short-block mode.
func testSetupHeader() []byte {
	h := []byte{5, 'v', 'o', 'r', 'b', 'i', 's'}
	w := &lsbWriter{}
	w.write(1, 8) // two codebooks

	// codebook 0: scalar classifications, entries 0 and 1, one bit each
	w.write(0x564342, 24)
	w.write(1, 16)
	w.write(2, 24)
	w.write(0, 1)
	w.write(0, 1)
	w.write(0, 5)
	w.write(0, 5)
	w.write(0, 4)

	// codebook 1: lookup type 2, entry 0 = unit line at component 3
	w.write(0x564342, 24)
	w.write(8, 16)
	w.write(2, 24)
	w.write(0, 1)
	w.write(0, 1)
	w.write(0, 5)
	w.write(0, 5)
	w.write(2, 4)
	w.write(0, 32)         // minimum 0.0
	w.write(788<<21|1, 32) // delta 1.0
	w.write(0, 4)          // one bit per multiplicand
	w.write(0, 1)          // no sequence
	for i := 0; i < 16; i++ {
		if i == 3 {
			w.write(1, 1)
		} else {
			w.write(0, 1)
		}
	}

	w.write(0, 6)  // one time transform
	w.write(0, 16) // which must read zero

	w.write(0, 6) // one floor
	w.write(1, 16)
	w.write(0, 5) // no partitions
	w.write(0, 2) // multiplier 1
	w.write(7, 4) // range bits

	w.write(0, 6) // one residue
	w.write(1, 16)
	w.write(0, 24)   // begin
	w.write(128, 24) // end
	w.write(7, 24)   // partition size 8
	w.write(1, 6)    // two classes
	w.write(0, 8)    // classbook 0
	w.write(0, 3)    // class 0: no passes
	w.write(0, 1)
	w.write(1, 3) // class 1: pass 0 only
	w.write(0, 1)
	w.write(1, 8) // class 1 pass 0 -> codebook 1

	w.write(0, 6) // one mapping
	w.write(0, 16)
	w.write(0, 1) // one submap
	w.write(0, 1) // no coupling
	w.write(0, 2) // reserved
	w.write(0, 8) // time configuration (unused)
	w.write(0, 8) // floor 0
	w.write(0, 8) // residue 0

	w.write(0, 6) // one mode
	w.write(0, 1) // short block
	w.write(0, 16)
	w.write(0, 16)
	w.write(0, 8)
	w.write(1, 1) // framing
	return append(h, w.buf...)
}

// testTonePacket carries a flat full-scale floor and one residue line
// at spectral bin 19 (partition 2, component 3).
func testTonePacket() []byte {
	w := &lsbWriter{}
	w.write(0, 1) // audio packet; a single mode needs no mode bits
	w.write(1, 1) // floor in use
	w.write(255, 8)
	w.write(255, 8)
	for pc := 0; pc < 16; pc++ {
		if pc == 2 {
			w.writeCode(1, 1) // class 1
			w.writeCode(0, 1) // VQ entry 0
		} else {
			w.writeCode(0, 1) // class 0
		}
	}
	return w.buf
}

func newTestDecoder(t *testing.T) *Decoder {
	t.Helper()
	d, err := NewDecoder(Config{
		IdentificationHeader: testIdentHeader(),
		SetupHeader:          testSetupHeader(),
	})
	require.NoError(t, err)
	return d
}

func TestNewDecoder_ConfigValidation(t *testing.T) {
	id := testIdentHeader()
	setup := testSetupHeader()

	tests := []struct {
		name string
		cfg  Config
	}{
		{"missing headers", Config{}},
		{"bad ident magic", Config{
			IdentificationHeader: append([]byte{1, 'x', 'o', 'r', 'b', 'i', 's'}, id[7:]...),
			SetupHeader:          setup,
		}},
		{"bad setup type", Config{
			IdentificationHeader: id,
			SetupHeader:          append([]byte{3}, setup[1:]...),
		}},
		{"channel mismatch", Config{
			Channels:             2,
			IdentificationHeader: id,
			SetupHeader:          setup,
		}},
		{"rate mismatch", Config{
			SampleRate:           44100,
			IdentificationHeader: id,
			SetupHeader:          setup,
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDecoder(tt.cfg)
			require.Error(t, err)
		})
	}

	d, err := NewDecoder(Config{
		SampleRate:           8000,
		Channels:             1,
		IdentificationHeader: id,
		SetupHeader:          setup,
	})
	require.NoError(t, err)
	require.Equal(t, [2]int{256, 256}, d.blocksize)
}

func TestNewDecoder_BadVersion(t *testing.T) {
	id := testIdentHeader()
	bad := append([]byte(nil), id...)
	bad[7] = 2 // version LSB
	_, err := NewDecoder(Config{IdentificationHeader: bad, SetupHeader: testSetupHeader()})
	require.ErrorIs(t, err, audiodec.ErrUnsupportedConfig)
}

func TestDecodeFrame_FirstPacketPrimes(t *testing.T) {
	d := newTestDecoder(t)
	n, err := d.DecodeFrame(testTonePacket(), make([]float32, 256))
	require.NoError(t, err)
	require.Zero(t, n)

	n, err = d.DecodeFrame(testTonePacket(), make([]float32, 256))
	require.NoError(t, err)
	require.Equal(t, 128, n)
}

// TestDecodeFrame_ToneReconstruction checks the full pipeline against a
// direct evaluation of the transform and window math: a constant
// spectrum repeated every packet must overlap-add to the same windowed
// cosine sum each frame.
func TestDecodeFrame_ToneReconstruction(t *testing.T) {
	const (
		blockLen = 256
		half     = blockLen / 2
		bin      = 19
	)
	amp := 2.0 / float64(half) * float64(inverseDB[255])

	imdctOut := func(n int) float64 {
		return amp * math.Cos(math.Pi/float64(half)*
			(float64(n)+0.5+float64(half)/2)*(float64(bin)+0.5))
	}
	win := func(n int) float64 {
		s := math.Sin(math.Pi / float64(blockLen) * (float64(n) + 0.5))
		return math.Sin(math.Pi / 2 * s * s)
	}
	want := make([]float64, half)
	for tm := 0; tm < half; tm++ {
		want[tm] = win(tm+half)*imdctOut(tm+half) + win(tm)*imdctOut(tm)
	}

	d := newTestDecoder(t)
	pcm := make([]float32, half)
	_, err := d.DecodeFrame(testTonePacket(), pcm)
	require.NoError(t, err)

	for frame := 0; frame < 6; frame++ {
		n, err := d.DecodeFrame(testTonePacket(), pcm)
		require.NoError(t, err)
		require.Equal(t, half, n)
		for i := 0; i < n; i++ {
			require.InDelta(t, want[i], float64(pcm[i]), 1e-4,
				"frame %d sample %d", frame, i)
		}
	}
}

func TestDecodeFrame_SilentFloor(t *testing.T) {
	w := &lsbWriter{}
	w.write(0, 1) // audio packet
	w.write(0, 1) // floor unused: whole channel is silence
	pkt := w.buf

	d := newTestDecoder(t)
	pcm := make([]float32, 128)
	_, err := d.DecodeFrame(pkt, pcm)
	require.NoError(t, err)

	n, err := d.DecodeFrame(pkt, pcm)
	require.NoError(t, err)
	require.Equal(t, 128, n)
	for i, v := range pcm[:n] {
		require.Zero(t, v, "sample %d", i)
	}
}

func TestDecodeFrame_HeaderPacketRejected(t *testing.T) {
	d := newTestDecoder(t)
	_, err := d.DecodeFrame([]byte{0x01, 0x00}, make([]float32, 256))
	require.ErrorIs(t, err, audiodec.ErrCorruptSideInfo)

	// The lapping state must be untouched: the next packet still
	// behaves as the first of the stream.
	n, err := d.DecodeFrame(testTonePacket(), make([]float32, 256))
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestDecodeFrame_OutputBufferTooSmall(t *testing.T) {
	d := newTestDecoder(t)
	_, err := d.DecodeFrame(testTonePacket(), make([]float32, 256))
	require.NoError(t, err)

	_, err = d.DecodeFrame(testTonePacket(), make([]float32, 10))
	require.ErrorIs(t, err, audiodec.ErrOutputBufferTooSmall)
}

func TestDecoder_ResetReproducibility(t *testing.T) {
	decodeAll := func(d *Decoder) []float32 {
		var out []float32
		pcm := make([]float32, 128)
		for i := 0; i < 5; i++ {
			n, err := d.DecodeFrame(testTonePacket(), pcm)
			require.NoError(t, err)
			out = append(out, pcm[:n]...)
		}
		return out
	}

	d := newTestDecoder(t)
	first := decodeAll(d)
	d.Reset()
	second := decodeAll(d)
	require.Equal(t, first, second)
}

func TestDecoder_Closed(t *testing.T) {
	d := newTestDecoder(t)
	require.NoError(t, d.Close())
	_, err := d.DecodeFrame(testTonePacket(), make([]float32, 256))
	require.ErrorIs(t, err, audiodec.ErrUnsupportedConfig)
}
