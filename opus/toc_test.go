package opus

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseTOC(t *testing.T) {
	tests := []struct {
		name    string
		b       byte
		layer   layer
		band    bandwidth
		frame48 int
		stereo  bool
		code    int
	}{
		{"silk nb 10ms", 0 << 3, layerSILK, bandNarrow, 480, false, 0},
		{"silk nb 60ms", 3 << 3, layerSILK, bandNarrow, 2880, false, 0},
		{"silk mb 20ms", 5 << 3, layerSILK, bandMedium, 960, false, 0},
		{"silk wb 20ms stereo", 9<<3 | 4, layerSILK, bandWide, 960, true, 0},
		{"hybrid swb 10ms", 12 << 3, layerHybrid, bandSuperWide, 480, false, 0},
		{"hybrid fb 20ms", 15<<3 | 1, layerHybrid, bandFull, 960, false, 1},
		{"celt nb 2.5ms", 16 << 3, layerCELT, bandNarrow, 120, false, 0},
		{"celt wb 5ms", 21 << 3, layerCELT, bandWide, 240, false, 0},
		{"celt fb 20ms code3", 31<<3 | 3, layerCELT, bandFull, 960, false, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toc := parseTOC(tt.b)
			require.Equal(t, tt.layer, toc.layer)
			require.Equal(t, tt.band, toc.band)
			require.Equal(t, tt.frame48, toc.frame48)
			require.Equal(t, tt.stereo, toc.stereo)
			require.Equal(t, tt.code, toc.code)
		})
	}
}

func TestSplitPacket(t *testing.T) {
	payload := func(n int) []byte {
		b := make([]byte, n)
		for i := range b {
			b[i] = byte(i + 1)
		}
		return b
	}

	t.Run("empty packet", func(t *testing.T) {
		_, _, err := splitPacket(nil)
		require.Error(t, err)
	})

	t.Run("code 0", func(t *testing.T) {
		pkt := append([]byte{0x00}, payload(10)...)
		_, frames, err := splitPacket(pkt)
		require.NoError(t, err)
		require.Len(t, frames, 1)
		require.Equal(t, payload(10), frames[0])
	})

	t.Run("code 1 equal halves", func(t *testing.T) {
		pkt := append([]byte{0x01}, payload(8)...)
		_, frames, err := splitPacket(pkt)
		require.NoError(t, err)
		require.Len(t, frames, 2)
		require.Equal(t, payload(8)[:4], frames[0])
		require.Equal(t, payload(8)[4:], frames[1])
	})

	t.Run("code 1 odd length", func(t *testing.T) {
		_, _, err := splitPacket(append([]byte{0x01}, payload(7)...))
		require.Error(t, err)
	})

	t.Run("code 2 explicit first length", func(t *testing.T) {
		pkt := append([]byte{0x02, 3}, payload(9)...)
		_, frames, err := splitPacket(pkt)
		require.NoError(t, err)
		require.Len(t, frames, 2)
		require.Equal(t, payload(9)[:3], frames[0])
		require.Equal(t, payload(9)[3:], frames[1])
	})

	t.Run("code 2 length overruns", func(t *testing.T) {
		_, _, err := splitPacket([]byte{0x02, 50, 1, 2})
		require.Error(t, err)
	})

	t.Run("code 3 cbr", func(t *testing.T) {
		pkt := append([]byte{0x03, 0x03}, payload(9)...)
		_, frames, err := splitPacket(pkt)
		require.NoError(t, err)
		require.Len(t, frames, 3)
		for i, f := range frames {
			require.Equal(t, payload(9)[i*3:(i+1)*3], f)
		}
	})

	t.Run("code 3 vbr", func(t *testing.T) {
		// Two frames: explicit length 2, remainder 3.
		pkt := append([]byte{0x03, 0x82, 2}, payload(5)...)
		_, frames, err := splitPacket(pkt)
		require.NoError(t, err)
		require.Len(t, frames, 2)
		require.Equal(t, payload(5)[:2], frames[0])
		require.Equal(t, payload(5)[2:], frames[1])
	})

	t.Run("code 3 padding", func(t *testing.T) {
		// Padding flag set, 2 padding bytes stripped from the end.
		pkt := append([]byte{0x03, 0x42, 2}, payload(8)...)
		_, frames, err := splitPacket(pkt)
		require.NoError(t, err)
		require.Len(t, frames, 2)
		require.Equal(t, payload(8)[:3], frames[0])
		require.Equal(t, payload(8)[3:6], frames[1])
	})

	t.Run("code 3 zero frames", func(t *testing.T) {
		_, _, err := splitPacket([]byte{0x03, 0x00})
		require.Error(t, err)
	})

	t.Run("code 3 over 120ms", func(t *testing.T) {
		// 7 frames of 60 ms exceed the packet duration cap.
		_, _, err := splitPacket(append([]byte{3<<3 | 3, 0x07}, payload(7)...))
		require.Error(t, err)
	})

	t.Run("frame length extension", func(t *testing.T) {
		n, used, err := frameLen([]byte{252, 1})
		require.NoError(t, err)
		require.Equal(t, 256, n)
		require.Equal(t, 2, used)
	})
}
