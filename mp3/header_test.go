package mp3

import (
	"errors"
	"testing"

	"github.com/hvlib/audiodec"
)

// hdr packs the four header bytes from the named fields, mirroring
// ISO/IEC 11172-3 §2.4.1.3 bit layout.
func hdr(version, layer, protection, bitrateIdx, srIdx, padding, mode, modeExt uint32) []byte {
	w := uint32(0x7FF)<<21 | version<<19 | layer<<17 | protection<<16 |
		bitrateIdx<<12 | srIdx<<10 | padding<<9 | mode<<6 | modeExt<<4
	return []byte{byte(w >> 24), byte(w >> 16), byte(w >> 8), byte(w)}
}

func TestParseHeader(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		wantErr error
		check   func(t *testing.T, h header)
	}{
		{
			name: "mpeg1_stereo_128k_44100",
			data: hdr(3, 1, 1, 9, 0, 0, 0, 0),
			check: func(t *testing.T, h header) {
				if h.LSF || h.SampleRate != 44100 || h.Bitrate != 128000 || h.Channels != 2 {
					t.Errorf("got %+v", h)
				}
				if h.frameSize() != 417 {
					t.Errorf("frameSize = %d, want 417", h.frameSize())
				}
				if h.sideInfoSize() != 32 {
					t.Errorf("sideInfoSize = %d, want 32", h.sideInfoSize())
				}
				if h.samples() != 1152 || h.granules() != 2 {
					t.Errorf("samples/granules = %d/%d", h.samples(), h.granules())
				}
			},
		},
		{
			name: "mpeg1_mono_crc_padding",
			data: hdr(3, 1, 0, 9, 1, 1, 3, 0),
			check: func(t *testing.T, h header) {
				if !h.Protected || !h.Padding || h.Channels != 1 || h.SampleRate != 48000 {
					t.Errorf("got %+v", h)
				}
				if h.frameSize() != 385 {
					t.Errorf("frameSize = %d, want 385", h.frameSize())
				}
				if h.sideInfoSize() != 17 {
					t.Errorf("sideInfoSize = %d, want 17", h.sideInfoSize())
				}
			},
		},
		{
			name: "mpeg2_lsf_mono",
			data: hdr(2, 1, 1, 4, 1, 0, 3, 0),
			check: func(t *testing.T, h header) {
				if !h.LSF || h.SampleRate != 24000 || h.Bitrate != 32000 {
					t.Errorf("got %+v", h)
				}
				if h.samples() != 576 || h.granules() != 1 {
					t.Errorf("samples/granules = %d/%d", h.samples(), h.granules())
				}
				if h.sideInfoSize() != 9 {
					t.Errorf("sideInfoSize = %d, want 9", h.sideInfoSize())
				}
			},
		},
		{
			name: "joint_stereo_ms_intensity",
			data: hdr(3, 1, 1, 9, 0, 0, 1, 3),
			check: func(t *testing.T, h header) {
				if !h.msStereo() || !h.intensityStereo() {
					t.Errorf("mode ext not decoded: %+v", h)
				}
			},
		},
		{
			name:    "bad_sync",
			data:    []byte{0x12, 0x34, 0x56, 0x78},
			wantErr: audiodec.ErrCorruptSideInfo,
		},
		{
			name:    "layer_ii_rejected",
			data:    hdr(3, 2, 1, 9, 0, 0, 0, 0),
			wantErr: audiodec.ErrCorruptSideInfo,
		},
		{
			name:    "free_format_rejected",
			data:    hdr(3, 1, 1, 0, 0, 0, 0, 0),
			wantErr: audiodec.ErrCorruptSideInfo,
		},
		{
			name:    "reserved_samplerate",
			data:    hdr(3, 1, 1, 9, 3, 0, 0, 0),
			wantErr: audiodec.ErrCorruptSideInfo,
		},
		{
			name:    "mpeg25_rejected",
			data:    hdr(0, 1, 1, 9, 0, 0, 0, 0),
			wantErr: audiodec.ErrCorruptSideInfo,
		},
		{
			name:    "truncated",
			data:    []byte{0xFF, 0xFB},
			wantErr: audiodec.ErrBitstreamExhausted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := parseHeader(tt.data)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			tt.check(t, h)
		})
	}
}

func TestSampleRateIndex(t *testing.T) {
	for want, rate := range []int{44100, 48000, 32000, 22050, 24000, 16000} {
		if got := sampleRateIndex(rate); got != want {
			t.Errorf("sampleRateIndex(%d) = %d, want %d", rate, got, want)
		}
	}
	if sampleRateIndex(8000) != -1 {
		t.Error("unknown rate must map to -1")
	}
}
