package aac

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

// TestDecodeFrame_EncodedFixtures feeds FFmpeg-encoded ADTS fixtures
// through the decoder frame by frame and checks the recovered duration
// against the reference decode. Fixtures come from
// `go run testdata/generate.go` and are absent from a fresh checkout.
func TestDecodeFrame_EncodedFixtures(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("..", "testdata", "generated", "aac", "*", "*.aac"))
	require.NoError(t, err)
	if len(paths) == 0 {
		t.Skip("no encoded fixtures; run `go run testdata/generate.go`")
	}

	for _, path := range paths {
		base := strings.TrimSuffix(path, ".aac")
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

			d, err := NewDecoder(Config{SampleRate: cfg.SampleRate, Channels: cfg.NumChannels})
			require.NoError(t, err)
			defer d.Close()

			pcm := make([]float32, SamplesPerFrame*cfg.NumChannels)
			total, frames := 0, 0
			for off := 0; off+7 <= len(stream); {
				if stream[off] != 0xFF || stream[off+1]&0xF6 != 0xF0 {
					off++
					continue
				}
				size := int(stream[off+3]&0x03)<<11 |
					int(stream[off+4])<<3 | int(stream[off+5])>>5
				if size < 7 {
					off++
					continue
				}
				if off+size > len(stream) {
					break
				}
				n, err := d.DecodeFrame(stream[off:off+size], pcm)
				require.NoError(t, err, "frame at offset %d", off)
				total += n
				frames++
				off += size
			}

			require.Greater(t, frames, 10, "too few frames decoded")
			refTotal := len(ref) / 2 // interleaved s16le
			require.InEpsilon(t, refTotal, total, 0.25,
				"decoded duration diverges from the reference decode")
		})
	}
}
