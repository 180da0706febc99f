package mp3

import "github.com/hvlib/audiodec"

// header carries the decoded fields of the 32-bit frame header
// (ISO/IEC 11172-3 §2.4.1.3).
type header struct {
	LSF        bool // MPEG-2 low sampling frequency
	SampleRate int
	Bitrate    int // bits per second
	Channels   int
	Mode       int
	ModeExt    int
	Protected  bool
	Padding    bool

	sfreq int // row into the scalefactor band tables
}

const (
	modeStereo = iota
	modeJointStereo
	modeDualChannel
	modeMono
)

var sampleRates = [2][3]int{
	{44100, 48000, 32000}, // MPEG-1
	{22050, 24000, 16000}, // MPEG-2
}

// Layer III bitrates in kbit/s, index 1..14. Index 0 (free format) is
// not supported.
var bitrates = [2][15]int{
	{0, 32, 40, 48, 56, 64, 80, 96, 112, 128, 160, 192, 224, 256, 320},
	{0, 8, 16, 24, 32, 40, 48, 56, 64, 80, 96, 112, 128, 144, 160},
}

func sampleRateIndex(rate int) int {
	for v := 0; v < 2; v++ {
		for i, r := range sampleRates[v] {
			if r == rate {
				return v*3 + i
			}
		}
	}
	return -1
}

func parseHeader(frame []byte) (header, error) {
	var h header
	if len(frame) < 4 {
		return h, audiodec.ErrBitstreamExhausted
	}
	w := uint32(frame[0])<<24 | uint32(frame[1])<<16 | uint32(frame[2])<<8 | uint32(frame[3])
	if w>>21 != 0x7FF {
		return h, audiodec.ErrCorruptSideInfo
	}
	version := w >> 19 & 3
	layer := w >> 17 & 3
	if layer != 1 { // Layer III
		return h, audiodec.ErrCorruptSideInfo
	}
	switch version {
	case 3: // MPEG-1
	case 2: // MPEG-2
		h.LSF = true
	default: // MPEG-2.5 and the reserved value
		return h, audiodec.ErrCorruptSideInfo
	}
	h.Protected = w>>16&1 == 0

	ver := 0
	if h.LSF {
		ver = 1
	}
	bi := int(w >> 12 & 0xF)
	if bi == 0 || bi == 15 {
		return h, audiodec.ErrCorruptSideInfo
	}
	h.Bitrate = bitrates[ver][bi] * 1000

	si := int(w >> 10 & 3)
	if si == 3 {
		return h, audiodec.ErrCorruptSideInfo
	}
	h.SampleRate = sampleRates[ver][si]
	h.sfreq = ver*3 + si

	h.Padding = w>>9&1 == 1
	h.Mode = int(w >> 6 & 3)
	h.ModeExt = int(w >> 4 & 3)
	h.Channels = 2
	if h.Mode == modeMono {
		h.Channels = 1
	}
	return h, nil
}

// samples is the PCM count per channel this frame decodes to.
func (h header) samples() int {
	if h.LSF {
		return granuleSamples
	}
	return SamplesPerFrame
}

func (h header) granules() int {
	if h.LSF {
		return 1
	}
	return 2
}

// sideInfoSize per ISO/IEC 11172-3 §2.4.1.7 and 13818-3 §2.4.1.7.
func (h header) sideInfoSize() int {
	switch {
	case h.LSF && h.Channels == 1:
		return 9
	case h.LSF:
		return 17
	case h.Channels == 1:
		return 17
	default:
		return 32
	}
}

// frameSize is the byte length of the whole physical frame.
func (h header) frameSize() int {
	slots := 144
	if h.LSF {
		slots = 72
	}
	n := slots * h.Bitrate / h.SampleRate
	if h.Padding {
		n++
	}
	return n
}

func (h header) msStereo() bool {
	return h.Mode == modeJointStereo && h.ModeExt&2 != 0
}

func (h header) intensityStereo() bool {
	return h.Mode == modeJointStereo && h.ModeExt&1 != 0
}
