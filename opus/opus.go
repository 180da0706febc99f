// Package opus decodes Opus packets (RFC 6716) into interleaved
// float32 PCM at 48 kHz.
//
// A packet's TOC byte selects the SILK linear-prediction layer, the
// CELT transform layer, or the hybrid of both; the decoder follows that
// choice per packet. Passing a nil packet to DecodeFrame signals a lost
// packet and runs concealment instead: the previous output is repeated
// with decaying gain, reaching silence after a bounded number of
// losses, and always fills a full frame so the output clock never
// slips.
package opus

import (
	"github.com/hvlib/audiodec"
	"github.com/hvlib/audiodec/internal/rangecoding"
	"github.com/hvlib/audiodec/internal/transform"
)

const (
	// SampleRate is the only output rate; Opus decoders operate at
	// 48 kHz and leave resampling to the caller.
	SampleRate = 48000

	// maxPacketSamples caps a packet at 120 ms per channel.
	maxPacketSamples = 5760

	defaultFrame = 960 // 20 ms, used for concealment before any decode
	plcSilenceAt = 6   // consecutive losses until full silence
)

// Config selects the output layout. SampleRate, when set, must be
// 48000.
type Config struct {
	SampleRate int
	Channels   int
}

// Decoder decodes one Opus stream. It owns the SILK and CELT layer
// state and the concealment history, so instances are not safe for
// concurrent use.
type Decoder struct {
	channels int
	eng      *transform.Engine
	rd       rangecoding.Decoder

	silk *silkDecoder
	celt *celtDecoder

	last        []float32 // previous frame's output, for concealment
	lastSamples int       // per channel
	lossCount   int

	closed bool
}

// NewDecoder validates cfg and allocates the decoder.
func NewDecoder(cfg Config) (*Decoder, error) {
	if cfg.SampleRate != 0 && cfg.SampleRate != SampleRate {
		return nil, audiodec.ErrUnsupportedConfig
	}
	if cfg.Channels < 1 || cfg.Channels > 2 {
		return nil, audiodec.ErrUnsupportedConfig
	}
	eng := transform.NewEngine()
	return &Decoder{
		channels: cfg.Channels,
		eng:      eng,
		silk:     newSILKDecoder(cfg.Channels),
		celt:     newCELTDecoder(cfg.Channels, eng),
		last:     make([]float32, maxPacketSamples*cfg.Channels),
	}, nil
}

// Reset returns the decoder to its initial state without reallocating.
func (d *Decoder) Reset() {
	d.silk.reset()
	d.celt.reset()
	for i := range d.last {
		d.last[i] = 0
	}
	d.lastSamples = 0
	d.lossCount = 0
}

// Close releases the decoder. Further DecodeFrame calls fail.
func (d *Decoder) Close() error {
	d.closed = true
	return nil
}

// DecodeFrame decodes one packet into pcm as interleaved float32 and
// returns the number of samples written. A nil packet signals packet
// loss and produces a full concealment frame; an empty frame inside a
// packet is DTX and decodes to silence.
func (d *Decoder) DecodeFrame(packet []byte, pcm []float32) (int, error) {
	if d.closed {
		return 0, audiodec.ErrUnsupportedConfig
	}
	if packet == nil {
		return d.conceal(pcm)
	}

	toc, frames, err := splitPacket(packet)
	if err != nil {
		return 0, err
	}
	total := len(frames) * toc.frame48 * d.channels
	if len(pcm) < total {
		return 0, audiodec.ErrOutputBufferTooSmall
	}

	off := 0
	for _, frame := range frames {
		out := pcm[off : off+toc.frame48*d.channels]
		for i := range out {
			out[i] = 0
		}
		if len(frame) > 0 {
			if err := d.decodeOne(toc, frame, out); err != nil {
				return 0, err
			}
		}
		off += len(out)
	}

	d.lastSamples = toc.frame48
	copy(d.last[:toc.frame48*d.channels], pcm[off-toc.frame48*d.channels:off])
	d.lossCount = 0
	return total, nil
}

func (d *Decoder) decodeOne(toc tocInfo, frame []byte, out []float32) error {
	d.rd.Init(frame)
	switch toc.layer {
	case layerSILK:
		return d.silk.decode(&d.rd, toc, out)
	case layerCELT:
		return d.celt.decode(&d.rd, toc.frame48, len(frame)*8, 0, celtEndBand(toc.band), out)
	default: // hybrid: SILK below the crossover, CELT above, summed
		if err := d.silk.decode(&d.rd, toc, out); err != nil {
			return err
		}
		return d.celt.decode(&d.rd, toc.frame48, len(frame)*8, hybridStart, celtEndBand(toc.band), out)
	}
}

// conceal synthesizes output for a lost packet: the previous frame
// repeated with a gain that decays to zero, so energy is non-increasing
// across consecutive losses.
func (d *Decoder) conceal(pcm []float32) (int, error) {
	n := d.lastSamples
	if n == 0 {
		n = defaultFrame
	}
	total := n * d.channels
	if len(pcm) < total {
		return 0, audiodec.ErrOutputBufferTooSmall
	}

	d.lossCount++
	var gain float32
	if d.lossCount < plcSilenceAt {
		gain = 0.8
		for i := 1; i < d.lossCount; i++ {
			gain *= 0.5
		}
	}
	for i := 0; i < total; i++ {
		pcm[i] = d.last[i] * gain
	}
	return total, nil
}
