package opus

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// fixtureConfig mirrors the .json sidecar written by testdata/generate.go.
type fixtureConfig struct {
	Codec       string `json:"codec"`
	SampleRate  int    `json:"sample_rate"`
	NumChannels int    `json:"num_channels"`
	Bitrate     int    `json:"bitrate"`
}

// oggPackets strips Ogg page framing and returns the logical packets,
// reassembling packets that span page boundaries. Enough of RFC 3533
// for single-stream test captures; checksums are not verified.
func oggPackets(data []byte) [][]byte {
	var packets [][]byte
	var cur []byte
	for off := 0; off+27 <= len(data); {
		if string(data[off:off+4]) != "OggS" {
			off++
			continue
		}
		nseg := int(data[off+26])
		if off+27+nseg > len(data) {
			break
		}
		segs := data[off+27 : off+27+nseg]
		p := off + 27 + nseg
		for _, s := range segs {
			if p+int(s) > len(data) {
				return packets
			}
			cur = append(cur, data[p:p+int(s)]...)
			p += int(s)
			if s < 255 {
				packets = append(packets, cur)
				cur = nil
			}
		}
		off = p
	}
	return packets
}

// TestDecodeFrame_EncodedFixtures decodes FFmpeg-encoded Ogg Opus
// fixtures and checks the recovered duration against the reference
// decode. Fixtures come from `go run testdata/generate.go` and are
// absent from a fresh checkout.
func TestDecodeFrame_EncodedFixtures(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("..", "testdata", "generated", "opus", "*", "*.opus"))
	require.NoError(t, err)
	if len(paths) == 0 {
		t.Skip("no encoded fixtures; run `go run testdata/generate.go`")
	}

	for _, path := range paths {
		base := strings.TrimSuffix(path, ".opus")
		name := filepath.Base(filepath.Dir(path)) + "/" + filepath.Base(base)
		t.Run(name, func(t *testing.T) {
			var cfg fixtureConfig
			cfgData, err := os.ReadFile(base + ".json")
			require.NoError(t, err)
			require.NoError(t, json.Unmarshal(cfgData, &cfg))
			ref, err := os.ReadFile(base + ".raw")
			require.NoError(t, err)
			stream, err := os.ReadFile(path)
			require.NoError(t, err)

			packets := oggPackets(stream)
			require.GreaterOrEqual(t, len(packets), 3,
				"stream must carry OpusHead, OpusTags, and audio")
			require.True(t, strings.HasPrefix(string(packets[0]), "OpusHead"))
			require.True(t, strings.HasPrefix(string(packets[1]), "OpusTags"))

			d, err := NewDecoder(Config{SampleRate: SampleRate, Channels: cfg.NumChannels})
			require.NoError(t, err)
			defer d.Close()

			pcm := make([]float32, maxPacketSamples*cfg.NumChannels)
			total := 0
			for _, pk := range packets[2:] {
				n, err := d.DecodeFrame(pk, pcm)
				require.NoError(t, err)
				total += n
			}

			// The reference decode trims the OpusHead pre-skip and any
			// trailing padding, so compare loosely.
			refTotal := len(ref) / 2 // interleaved s16le
			require.InEpsilon(t, refTotal, total, 0.25,
				"decoded duration diverges from the reference decode")
		})
	}
}
