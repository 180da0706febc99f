// Package audiodec is the shared surface of a pure Go audio decoding core
// covering MPEG-1/2 Layer III, MPEG-4 AAC-LC, Vorbis I, and Opus.
//
// The codec decoders live in the mp3, aac, vorbis, and opus subpackages.
// They share a common contract:
//
//	dec, err := mp3.NewDecoder(mp3.Config{SampleRate: 44100, Channels: 2})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer dec.Close()
//
//	pcm := make([]float32, 1152*2)
//	for _, frame := range frames { // raw frame bytes from a demuxer
//	    n, err := dec.DecodeFrame(frame, pcm)
//	    if err != nil {
//	        continue // frame-local error; the decoder stays usable
//	    }
//	    play(pcm[:n])
//	}
//
// Frame extraction is the caller's job: the decoders consume raw frame
// byte ranges already stripped of container framing (Ogg pages, ADTS
// headers, MP4 boxes) and produce interleaved float32 PCM in [-1, 1].
//
// # Error model
//
// All per-frame failures are values of the Error code type in this
// package. They are fatal to the current frame only; the decoder remains
// valid for the next frame without calling Reset.
//
// # Thread safety
//
// Decoder instances are not safe for concurrent use. Independent
// instances share no mutable state and may run on separate goroutines.
package audiodec
