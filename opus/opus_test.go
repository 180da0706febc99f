package opus

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hvlib/audiodec"
)

// testPayload fills a deterministic pseudo-random payload so decode
// tests exercise the entropy decoders without a reference encoder.
func testPayload(n int, seed uint32) []byte {
	b := make([]byte, n)
	for i := range b {
		seed = seed*1664525 + 1013904223
		b[i] = byte(seed >> 24)
	}
	return b
}

func requireFinite(t *testing.T, pcm []float32) {
	t.Helper()
	for i, v := range pcm {
		f := float64(v)
		require.False(t, math.IsNaN(f) || math.IsInf(f, 0), "sample %d", i)
	}
}

func TestNewDecoder_ConfigValidation(t *testing.T) {
	_, err := NewDecoder(Config{SampleRate: 44100, Channels: 1})
	require.ErrorIs(t, err, audiodec.ErrUnsupportedConfig)
	_, err = NewDecoder(Config{Channels: 0})
	require.ErrorIs(t, err, audiodec.ErrUnsupportedConfig)
	_, err = NewDecoder(Config{Channels: 3})
	require.ErrorIs(t, err, audiodec.ErrUnsupportedConfig)

	d, err := NewDecoder(Config{SampleRate: 48000, Channels: 2})
	require.NoError(t, err)
	require.NotNil(t, d)
}

func TestDecodeFrame_FrameSizeInvariant(t *testing.T) {
	tests := []struct {
		name     string
		toc      byte
		channels int
		want     int
	}{
		{"celt fb 20ms mono", 31 << 3, 1, 960},
		{"celt fb 20ms stereo", 31<<3 | 4, 2, 960},
		{"celt nb 2.5ms mono", 16 << 3, 1, 120},
		{"silk nb 20ms mono", 1 << 3, 1, 960},
		{"silk wb 20ms stereo", 9<<3 | 4, 2, 960},
		{"silk wb 60ms mono", 11 << 3, 1, 2880},
		{"hybrid swb 20ms mono", 13 << 3, 1, 960},
		{"hybrid fb 20ms stereo", 15<<3 | 4, 2, 960},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := NewDecoder(Config{Channels: tt.channels})
			require.NoError(t, err)

			pkt := append([]byte{tt.toc}, testPayload(60, 7)...)
			pcm := make([]float32, maxPacketSamples*tt.channels)
			n, err := d.DecodeFrame(pkt, pcm)
			require.NoError(t, err)
			require.Equal(t, tt.want*tt.channels, n)
			requireFinite(t, pcm[:n])
		})
	}
}

func TestDecodeFrame_MultiFramePacket(t *testing.T) {
	d, err := NewDecoder(Config{Channels: 1})
	require.NoError(t, err)

	// Code 3 CBR with two 10 ms CELT frames.
	pkt := append([]byte{30<<3 | 3, 0x02}, testPayload(40, 3)...)
	pcm := make([]float32, 2*480)
	n, err := d.DecodeFrame(pkt, pcm)
	require.NoError(t, err)
	require.Equal(t, 2*480, n)
	requireFinite(t, pcm[:n])
}

func TestDecodeFrame_DTXSilence(t *testing.T) {
	d, err := NewDecoder(Config{Channels: 1})
	require.NoError(t, err)

	// A zero-length frame decodes to silence of the full frame size.
	pcm := make([]float32, 960)
	n, err := d.DecodeFrame([]byte{1 << 3}, pcm)
	require.NoError(t, err)
	require.Equal(t, 960, n)
	for i, v := range pcm[:n] {
		require.Zero(t, v, "sample %d", i)
	}
}

func TestDecodeFrame_OutputBufferTooSmall(t *testing.T) {
	d, err := NewDecoder(Config{Channels: 1})
	require.NoError(t, err)

	pkt := append([]byte{31 << 3}, testPayload(20, 1)...)
	_, err = d.DecodeFrame(pkt, make([]float32, 100))
	require.ErrorIs(t, err, audiodec.ErrOutputBufferTooSmall)
}

func energyOf(pcm []float32) float64 {
	var e float64
	for _, v := range pcm {
		e += float64(v) * float64(v)
	}
	return e
}

func TestDecodeFrame_ConcealmentFade(t *testing.T) {
	d, err := NewDecoder(Config{Channels: 1})
	require.NoError(t, err)

	pkt := append([]byte{31 << 3}, testPayload(80, 11)...)
	pcm := make([]float32, 960)
	n, err := d.DecodeFrame(pkt, pcm)
	require.NoError(t, err)
	require.Equal(t, 960, n)

	prev := math.Inf(1)
	for loss := 1; loss <= 8; loss++ {
		n, err := d.DecodeFrame(nil, pcm)
		require.NoError(t, err)
		require.Equal(t, 960, n, "loss %d", loss)

		e := energyOf(pcm[:n])
		require.LessOrEqual(t, e, prev, "loss %d", loss)
		if loss >= plcSilenceAt {
			require.Zero(t, e, "loss %d", loss)
		}
		prev = e
	}
}

func TestDecodeFrame_ConcealmentBeforeFirstPacket(t *testing.T) {
	d, err := NewDecoder(Config{Channels: 2})
	require.NoError(t, err)

	pcm := make([]float32, 2*defaultFrame)
	n, err := d.DecodeFrame(nil, pcm)
	require.NoError(t, err)
	require.Equal(t, 2*defaultFrame, n)
	for i, v := range pcm[:n] {
		require.Zero(t, v, "sample %d", i)
	}
}

func TestDecodeFrame_RecoveryAfterLoss(t *testing.T) {
	d, err := NewDecoder(Config{Channels: 1})
	require.NoError(t, err)

	pkt := append([]byte{31 << 3}, testPayload(60, 21)...)
	pcm := make([]float32, 960)
	_, err = d.DecodeFrame(pkt, pcm)
	require.NoError(t, err)
	_, err = d.DecodeFrame(nil, pcm)
	require.NoError(t, err)

	// A good packet resets the loss counter: the next loss fades from
	// the new frame, not deeper into the fade ladder.
	_, err = d.DecodeFrame(pkt, pcm)
	require.NoError(t, err)
	require.Equal(t, 0, d.lossCount)
}

func TestDecoder_ResetReproducibility(t *testing.T) {
	packets := [][]byte{
		append([]byte{31 << 3}, testPayload(50, 5)...),
		append([]byte{1 << 3}, testPayload(40, 9)...),
		append([]byte{13 << 3}, testPayload(70, 13)...),
		nil,
		append([]byte{31 << 3}, testPayload(30, 17)...),
	}
	decodeAll := func(d *Decoder) []float32 {
		var out []float32
		pcm := make([]float32, maxPacketSamples)
		for _, pkt := range packets {
			n, err := d.DecodeFrame(pkt, pcm)
			require.NoError(t, err)
			out = append(out, pcm[:n]...)
		}
		return out
	}

	d, err := NewDecoder(Config{Channels: 1})
	require.NoError(t, err)
	first := decodeAll(d)
	d.Reset()
	second := decodeAll(d)
	require.Equal(t, first, second)
}

func TestDecoder_Closed(t *testing.T) {
	d, err := NewDecoder(Config{Channels: 1})
	require.NoError(t, err)
	require.NoError(t, d.Close())
	_, err = d.DecodeFrame([]byte{31 << 3}, make([]float32, 960))
	require.ErrorIs(t, err, audiodec.ErrUnsupportedConfig)
}
