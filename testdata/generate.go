//go:build ignore

// This script generates encoded fixtures for decoder conformance runs.
// Run with: go run testdata/generate.go
//
// Requirements: FFmpeg must be installed and available in PATH. Vorbis
// and Opus fixtures additionally need the libvorbis/libopus encoders
// compiled in (true for stock FFmpeg builds).
//
// Generated layout:
//   testdata/generated/
//   ├── mp3/
//   │   ├── 44100_mono_64k/
//   │   │   ├── sine1k.mp3    encoded frames
//   │   │   ├── sine1k.raw    FFmpeg reference decode, s16le
//   │   │   └── sine1k.json   configuration
//   │   └── ...
//   ├── aac/
//   ├── vorbis/
//   └── opus/
package main

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// TestConfig describes one fixture configuration.
type TestConfig struct {
	Codec       string `json:"codec"` // "mp3", "aac", "vorbis", "opus"
	SampleRate  int    `json:"sample_rate"`
	NumChannels int    `json:"num_channels"`
	Bitrate     int    `json:"bitrate"` // kbps
}

var configs = []TestConfig{
	{"mp3", 44100, 1, 64},
	{"mp3", 44100, 2, 128},
	{"mp3", 48000, 2, 192},
	{"mp3", 32000, 2, 96},

	{"aac", 44100, 1, 64},
	{"aac", 44100, 2, 128},
	{"aac", 48000, 2, 192},
	{"aac", 22050, 1, 32},

	{"vorbis", 44100, 2, 128},
	{"vorbis", 48000, 2, 160},
	{"vorbis", 8000, 1, 32},

	{"opus", 48000, 1, 32},
	{"opus", 48000, 2, 96},
}

var audioTypes = []string{"silence", "sine1k", "sweep", "noise", "impulse", "speech_like"}

func main() {
	if err := exec.Command("ffmpeg", "-version").Run(); err != nil {
		fmt.Fprintf(os.Stderr, "ffmpeg not found: %v\n", err)
		os.Exit(1)
	}

	baseDir := filepath.Join("testdata", "generated")
	for _, cfg := range configs {
		dir := filepath.Join(baseDir, cfg.Codec, fmt.Sprintf("%d_%s_%dk",
			cfg.SampleRate, channelName(cfg.NumChannels), cfg.Bitrate))
		if err := os.MkdirAll(dir, 0755); err != nil {
			fmt.Fprintf(os.Stderr, "creating %s: %v\n", dir, err)
			continue
		}
		for _, audioType := range audioTypes {
			if err := generateTestCase(dir, audioType, cfg); err != nil {
				fmt.Fprintf(os.Stderr, "%s/%s: %v\n", dir, audioType, err)
			} else {
				fmt.Printf("generated %s/%s\n", dir, audioType)
			}
		}
	}
	fmt.Println("done")
}

func channelName(n int) string {
	if n == 1 {
		return "mono"
	}
	return "stereo"
}

// codecArgs maps a codec name to its FFmpeg encoder, muxer, and output
// extension.
func codecArgs(codec string) (encoder, format, ext string) {
	switch codec {
	case "mp3":
		return "libmp3lame", "mp3", ".mp3"
	case "aac":
		return "aac", "adts", ".aac"
	case "vorbis":
		return "libvorbis", "ogg", ".ogg"
	default:
		return "libopus", "ogg", ".opus"
	}
}

func generateTestCase(dir, audioType string, cfg TestConfig) error {
	_, _, ext := codecArgs(cfg.Codec)
	wavPath := filepath.Join(dir, audioType+".wav")
	encPath := filepath.Join(dir, audioType+ext)
	rawPath := filepath.Join(dir, audioType+".raw")
	jsonPath := filepath.Join(dir, audioType+".json")

	if fileExists(encPath) && fileExists(rawPath) && fileExists(jsonPath) {
		return nil
	}

	samples := cfg.SampleRate // one second
	if err := generateWAV(wavPath, audioType, cfg, samples); err != nil {
		return fmt.Errorf("generating WAV: %w", err)
	}
	defer os.Remove(wavPath)

	if err := encode(wavPath, encPath, cfg); err != nil {
		return fmt.Errorf("encoding: %w", err)
	}
	if err := decodeToRaw(encPath, rawPath); err != nil {
		return fmt.Errorf("reference decode: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(jsonPath, data, 0644)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func generateWAV(path, audioType string, cfg TestConfig, samples int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	dataSize := samples * cfg.NumChannels * 2
	if err := writeWAVHeader(f, cfg, dataSize); err != nil {
		return err
	}

	for i := 0; i < samples; i++ {
		for ch := 0; ch < cfg.NumChannels; ch++ {
			var sample float64
			t := float64(i) / float64(cfg.SampleRate)

			switch audioType {
			case "silence":
				sample = 0

			case "sine1k":
				sample = 0.8 * math.Sin(2*math.Pi*1000*t)

			case "sweep":
				// Logarithmic sweep from 20 Hz to a quarter of the rate.
				maxFreq := float64(cfg.SampleRate) / 4
				progress := float64(i) / float64(samples)
				freq := 20 * math.Pow(maxFreq/20, progress)
				sample = 0.7 * math.Sin(2*math.Pi*freq*t)

			case "noise":
				// Deterministic LCG noise.
				seed := uint32(i*cfg.NumChannels + ch + 12345)
				seed = seed*1103515245 + 12345
				sample = float64(int32(seed)) / float64(math.MaxInt32) * 0.5

			case "impulse":
				// Ten impulses per second, exercises transient handling.
				period := cfg.SampleRate / 10
				if i%period == 0 {
					sample = 0.9
				}

			case "speech_like":
				// Harmonic stack with syllable-rate amplitude modulation.
				f0 := 150.0
				sample = 0.3 * math.Sin(2*math.Pi*f0*t)
				sample += 0.2 * math.Sin(2*math.Pi*2*f0*t)
				sample += 0.15 * math.Sin(2*math.Pi*3*f0*t)
				sample += 0.1 * math.Sin(2*math.Pi*4*f0*t)
				seed := uint32(i*cfg.NumChannels + ch + 54321)
				seed = seed*1103515245 + 12345
				sample += float64(int32(seed)) / float64(math.MaxInt32) * 0.05
				sample *= 0.5 + 0.5*math.Sin(2*math.Pi*4*t)
			}

			if cfg.NumChannels == 2 && ch == 1 && audioType != "silence" {
				sample *= 0.95
			}

			if sample > 1 {
				sample = 1
			} else if sample < -1 {
				sample = -1
			}
			binary.Write(f, binary.LittleEndian, int16(sample*32767))
		}
	}
	return nil
}

func writeWAVHeader(f *os.File, cfg TestConfig, dataSize int) error {
	blockAlign := cfg.NumChannels * 2
	byteRate := cfg.SampleRate * blockAlign

	f.Write([]byte("RIFF"))
	binary.Write(f, binary.LittleEndian, uint32(36+dataSize))
	f.Write([]byte("WAVE"))

	f.Write([]byte("fmt "))
	binary.Write(f, binary.LittleEndian, uint32(16))
	binary.Write(f, binary.LittleEndian, uint16(1)) // PCM
	binary.Write(f, binary.LittleEndian, uint16(cfg.NumChannels))
	binary.Write(f, binary.LittleEndian, uint32(cfg.SampleRate))
	binary.Write(f, binary.LittleEndian, uint32(byteRate))
	binary.Write(f, binary.LittleEndian, uint16(blockAlign))
	binary.Write(f, binary.LittleEndian, uint16(16))

	f.Write([]byte("data"))
	binary.Write(f, binary.LittleEndian, uint32(dataSize))
	return nil
}

func encode(wavPath, encPath string, cfg TestConfig) error {
	encoder, format, _ := codecArgs(cfg.Codec)
	if !hasEncoder(encoder) {
		return fmt.Errorf("ffmpeg encoder %s not available", encoder)
	}
	args := []string{"-y", "-i", wavPath, "-c:a", encoder,
		"-b:a", fmt.Sprintf("%dk", cfg.Bitrate), "-f", format, encPath}
	cmd := exec.Command("ffmpeg", args...)
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func hasEncoder(encoder string) bool {
	out, err := exec.Command("ffmpeg", "-encoders").Output()
	if err != nil {
		return false
	}
	return strings.Contains(string(out), encoder)
}

func decodeToRaw(encPath, rawPath string) error {
	cmd := exec.Command("ffmpeg", "-y", "-i", encPath,
		"-f", "s16le", "-acodec", "pcm_s16le", rawPath)
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
