package audiodec

// Error is a decoder error code shared by all codec packages.
//
// Codes below ErrUnsupportedConfig are frame-local: DecodeFrame returns
// them, emits no samples, and the decoder stays usable for the next
// frame. ErrUnsupportedConfig is only returned at construction.
type Error int

const (
	// ErrNone is the zero value; never returned.
	ErrNone Error = iota

	// ErrBitstreamExhausted is returned when a read would cross the end
	// of the frame buffer. The frame is corrupt or truncated.
	ErrBitstreamExhausted

	// ErrCorruptSideInfo is returned when a header or side-information
	// field holds a value the bitstream syntax does not allow.
	ErrCorruptSideInfo

	// ErrCorruptSpectralData is returned when an entropy-coded symbol
	// has no table entry: a Huffman code outside the codebook, a VQ
	// index past the codebook length, or a malformed escape sequence.
	ErrCorruptSpectralData

	// ErrReservoirUnderflow is returned by the MP3 decoder when a frame
	// claims more bit-reservoir bytes than previous frames left behind.
	ErrReservoirUnderflow

	// ErrUnsupportedTransformSize is returned when a transform is
	// requested above the engine's configured maximum.
	ErrUnsupportedTransformSize

	// ErrUnsupportedConfig is returned by NewDecoder when the sample
	// rate, channel count, or codec profile is outside what the codec
	// supports.
	ErrUnsupportedConfig

	// ErrOutputBufferTooSmall is returned when the PCM buffer cannot
	// hold one frame of interleaved output.
	ErrOutputBufferTooSmall
)

var errMessages = [...]string{
	"no error",
	"bitstream exhausted",
	"corrupt side information",
	"corrupt spectral data",
	"bit reservoir underflow",
	"unsupported transform size",
	"unsupported decoder configuration",
	"output buffer too small",
}

// Error implements the error interface.
func (e Error) Error() string {
	if e >= 0 && int(e) < len(errMessages) {
		return errMessages[e]
	}
	return "unknown error"
}

// Version identifies this release of the decoding library, for hosts
// that report the versions of the codecs they bundle.
const Version = "1.2.0"
